package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return newRuleSet("mpt-recording-rules", RuleGroup{
		Name: "mpt-recording",
		Rules: []Rule{
			{
				Record: "mpt:http_requests:rate5m",
				Expr:   `sum(rate(mpt_http_requests_total[5m]))`,
			},
			{
				Record: "mpt:http_errors:rate5m",
				Expr:   `sum(rate(mpt_http_requests_total{status=~"5.."}[5m]))`,
			},
			{
				Record: "mpt:cycle_items:rate1h",
				Expr:   `sum(increase(mpt_cycle_items_total[1h])) by (outcome)`,
			},
			{
				Record: "mpt:vendor_quotes:rate1h",
				Expr:   `sum(increase(mpt_vendor_quotes_total[1h])) by (vendor, outcome)`,
			},
			{
				Record: "mpt:vendor_errors:ratio6h",
				Expr:   `sum(increase(mpt_vendor_quotes_total{outcome="error"}[6h])) by (vendor) / sum(increase(mpt_vendor_quotes_total[6h])) by (vendor)`,
			},
		},
	})
}
