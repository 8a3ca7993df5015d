package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/donaldgifford/target-inventory/tools/dashgen/rules"
)

func TestExpr(t *testing.T) {
	t.Parallel()

	known := map[string]bool{"tgt_requests_total": true, "tgt_latency_seconds": true}

	tests := []struct {
		name         string
		expr         string
		wantProblems int
	}{
		{"known counter", `rate(tgt_requests_total[5m])`, 0},
		{"histogram bucket", `histogram_quantile(0.95, sum(rate(tgt_latency_seconds_bucket[5m])) by (le))`, 0},
		{"unknown metric", `rate(tgt_missing_total[5m])`, 1},
		{"two unknown", `tgt_a / tgt_b`, 2},
		{"function only", `time()`, 0},
		{"syntax error", `rate(tgt_requests_total[5m]`, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Len(t, Expr(tt.expr, known), tt.wantProblems)
		})
	}
}

func TestRules(t *testing.T) {
	t.Parallel()

	cr := rules.PrometheusRule{
		Spec: rules.PrometheusRuleSpec{
			Groups: []rules.RuleGroup{{
				Name: "g",
				Rules: []rules.Rule{
					{Record: "tgt:x:rate5m", Expr: `rate(tgt_x_total[5m])`},
					{Alert: "NoSeverity", Expr: `tgt:x:rate5m > 1`},
					{Expr: `tgt_x_total`},
				},
			}},
		},
	}

	res := Rules(cr, map[string]bool{"tgt_x_total": true, "tgt:x:rate5m": true})
	assert.False(t, res.Ok())
	assert.Len(t, res.Errors, 1)
	assert.Len(t, res.Warnings, 1)
}
