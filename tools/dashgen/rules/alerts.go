package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// mtg-price-tracker operational monitoring.
func AlertRules() PrometheusRule {
	return newRuleSet("mpt-alerts", RuleGroup{
		Name: "mpt-alerts",
		Rules: []Rule{
			{
				Alert: "MptDown",
				Expr:  `absent(up{job="mtg-price-tracker"})`,
				For:   "2m",
				Labels: map[string]string{
					"severity": "critical",
				},
				Annotations: map[string]string{
					"summary":     "MTG Price Tracker is down",
					"description": "The mtg-price-tracker job has been absent for more than 2 minutes.",
				},
			},
			{
				Alert: "MptReadinessDown",
				Expr:  `mpt_ready == 0`,
				For:   "2m",
				Labels: map[string]string{
					"severity": "critical",
				},
				Annotations: map[string]string{
					"summary":     "MTG Price Tracker readiness check is failing",
					"description": "The database has been unreachable for more than 2 minutes.",
				},
			},
			{
				Alert: "MptHighErrorRate",
				Expr:  `mpt:http_errors:rate5m / mpt:http_requests:rate5m > 0.05`,
				For:   "5m",
				Labels: map[string]string{
					"severity": "warning",
				},
				Annotations: map[string]string{
					"summary":     "High HTTP error rate on MTG Price Tracker",
					"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
				},
			},
			{
				Alert: "MptNoCycles",
				Expr:  `increase(mpt_cycles_total{outcome="success"}[6h]) == 0`,
				For:   "30m",
				Labels: map[string]string{
					"severity": "warning",
				},
				Annotations: map[string]string{
					"summary":     "No watcher cycle has completed recently",
					"description": "The watcher has not finished a cycle in the last 6 hours.",
				},
			},
			{
				Alert: "MptVendorFailing",
				Expr:  `mpt:vendor_errors:ratio6h > 0.5`,
				For:   "30m",
				Labels: map[string]string{
					"severity": "warning",
				},
				Annotations: map[string]string{
					"summary":     "A vendor is failing most scrapes",
					"description": "More than half of {{ $labels.vendor }} quotes failed over the last 6 hours. The page layout may have changed.",
				},
			},
			{
				Alert: "MptPersistenceFailures",
				Expr:  `increase(mpt_persistence_failures_total[15m]) > 0`,
				For:   "0m",
				Labels: map[string]string{
					"severity": "critical",
				},
				Annotations: map[string]string{
					"summary":     "Price snapshots are failing to save",
					"description": "One or more price history writes failed in the last 15 minutes.",
				},
			},
			{
				Alert: "MptDashboardFailures",
				Expr:  `increase(mpt_dashboard_updates_total{outcome="error"}[1h]) > 0`,
				For:   "5m",
				Labels: map[string]string{
					"severity": "warning",
				},
				Annotations: map[string]string{
					"summary":     "Discord dashboard updates are failing",
					"description": "One or more dashboard message edits failed in the last hour.",
				},
			},
		},
	})
}
