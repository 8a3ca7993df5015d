// Package rules builds the target-inventory recording and alert rules as
// Prometheus Operator PrometheusRule resources.
package rules

const (
	apiVersion = "monitoring.coreos.com/v1"
	kind       = "PrometheusRule"

	// selectorLabel is matched by the cluster Prometheus ruleSelector.
	selectorLabel = "system-rules-prometheus"
)

// Severity is the value of an alert's severity label.
type Severity string

// Alert severities routed by Alertmanager.
const (
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// PrometheusRule is the Prometheus Operator custom resource.
type PrometheusRule struct {
	APIVersion string                 `yaml:"apiVersion"`
	Kind       string                 `yaml:"kind"`
	Metadata   PrometheusRuleMetadata `yaml:"metadata"`
	Spec       PrometheusRuleSpec     `yaml:"spec"`
}

// PrometheusRuleMetadata holds the resource name and labels.
type PrometheusRuleMetadata struct {
	Name   string            `yaml:"name"`
	Labels map[string]string `yaml:"labels,omitempty"`
}

// PrometheusRuleSpec holds the rule groups.
type PrometheusRuleSpec struct {
	Groups []RuleGroup `yaml:"groups"`
}

// RuleGroup is a named set of rules evaluated together.
type RuleGroup struct {
	Name     string `yaml:"name"`
	Interval string `yaml:"interval,omitempty"`
	Rules    []Rule `yaml:"rules"`
}

// Rule is a recording rule when Record is set and an alerting rule when
// Alert is set.
type Rule struct {
	Record      string            `yaml:"record,omitempty"`
	Alert       string            `yaml:"alert,omitempty"`
	Expr        string            `yaml:"expr"`
	For         string            `yaml:"for,omitempty"`
	Labels      map[string]string `yaml:"labels,omitempty"`
	Annotations map[string]string `yaml:"annotations,omitempty"`
}

// newPrometheusRule wraps a single group named after the resource.
func newPrometheusRule(name, group string, rules ...Rule) PrometheusRule {
	return PrometheusRule{
		APIVersion: apiVersion,
		Kind:       kind,
		Metadata: PrometheusRuleMetadata{
			Name:   name,
			Labels: map[string]string{"prometheus": selectorLabel},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{{Name: group, Rules: rules}},
		},
	}
}

func record(name, expr string) Rule {
	return Rule{Record: name, Expr: expr}
}

func alert(name, expr, pending string, sev Severity, summary, description string) Rule {
	return Rule{
		Alert:  name,
		Expr:   expr,
		For:    pending,
		Labels: map[string]string{"severity": string(sev)},
		Annotations: map[string]string{
			"summary":     summary,
			"description": description,
		},
	}
}

// Names returns the record or alert name of every rule, in order.
func (p PrometheusRule) Names() []string {
	var names []string
	for _, g := range p.Spec.Groups {
		for _, r := range g.Rules {
			if r.Record != "" {
				names = append(names, r.Record)
			} else {
				names = append(names, r.Alert)
			}
		}
	}
	return names
}
