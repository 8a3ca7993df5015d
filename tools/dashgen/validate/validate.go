// Package validate checks generated dashboards and rules: every PromQL
// expression must parse and every metric it selects must be known.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/target-inventory/tools/dashgen/rules"
)

// histogramSuffixes are stripped before looking a series up in the known set.
var histogramSuffixes = []string{"_bucket", "_sum", "_count"}

// Result collects validation problems. Errors fail generation; warnings
// are reported but do not.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether no errors were found.
func (r *Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Expr parses expr and checks the metric names it selects against known.
func Expr(expr string, known map[string]bool) []string {
	node, err := parser.ParseExpr(expr)
	if err != nil {
		return []string{fmt.Sprintf("parsing %q: %v", expr, err)}
	}

	var problems []string
	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		vs, ok := n.(*parser.VectorSelector)
		if !ok || vs.Name == "" {
			return nil
		}
		if !isKnown(vs.Name, known) {
			problems = append(problems, fmt.Sprintf("unknown metric %q in %q", vs.Name, expr))
		}
		return nil
	})
	return problems
}

func isKnown(name string, known map[string]bool) bool {
	if known[name] {
		return true
	}
	for _, suffix := range histogramSuffixes {
		if base, ok := strings.CutSuffix(name, suffix); ok && known[base] {
			return true
		}
	}
	return false
}

// Dashboard validates every Prometheus target of every panel in dash.
func Dashboard(dash dashboard.Dashboard, known map[string]bool) Result {
	var res Result
	for _, p := range dash.Panels {
		switch {
		case p.RowPanel != nil:
			for i := range p.RowPanel.Panels {
				checkPanel(&res, &p.RowPanel.Panels[i], known)
			}
		case p.Panel != nil:
			checkPanel(&res, p.Panel, known)
		}
	}
	return res
}

func checkPanel(res *Result, p *dashboard.Panel, known map[string]bool) {
	title := "<untitled>"
	if p.Title != nil {
		title = *p.Title
	}
	if p.Description == nil || *p.Description == "" {
		res.warnf("panel %q has no description", title)
	}
	if len(p.Targets) == 0 {
		res.errorf("panel %q has no targets", title)
		return
	}

	for _, target := range p.Targets {
		expr, err := targetExpr(target)
		if err != nil {
			res.errorf("panel %q: %v", title, err)
			continue
		}
		for _, problem := range Expr(expr, known) {
			res.errorf("panel %q: %s", title, problem)
		}
	}
}

// targetExpr reads the expr field through JSON so any Prometheus dataquery
// shape is accepted.
func targetExpr(target any) (string, error) {
	raw, err := json.Marshal(target)
	if err != nil {
		return "", fmt.Errorf("encoding target: %w", err)
	}
	var q struct {
		Expr string `json:"expr"`
	}
	if err := json.Unmarshal(raw, &q); err != nil {
		return "", fmt.Errorf("decoding target: %w", err)
	}
	if q.Expr == "" {
		return "", fmt.Errorf("target has no expr")
	}
	return q.Expr, nil
}

// Rules validates every rule expression in cr. Recording rule names become
// known to the alert rules that follow them.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	var res Result
	for _, g := range cr.Spec.Groups {
		for _, r := range g.Rules {
			name := r.Record + r.Alert
			if r.Record != "" && r.Alert != "" {
				res.errorf("rule %q sets both record and alert", name)
			}
			if name == "" {
				res.errorf("rule in group %q has neither record nor alert", g.Name)
			}
			if r.Alert != "" && r.Labels["severity"] == "" {
				res.warnf("alert %q has no severity", r.Alert)
			}
			for _, problem := range Expr(r.Expr, known) {
				res.errorf("rule %q: %s", name, problem)
			}
		}
	}
	return res
}
