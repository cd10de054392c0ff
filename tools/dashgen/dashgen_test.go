package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/mtg-price-tracker/tools/dashgen/dashboards"
	"github.com/donaldgifford/mtg-price-tracker/tools/dashgen/rules"
	"github.com/donaldgifford/mtg-price-tracker/tools/dashgen/validate"
)

func TestDefaultConfigValid(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate_EmptyOutputDir(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "", DashboardEnabled: true}
	assert.Error(t, cfg.Validate())
}

func TestConfigValidate_NothingEnabled(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "/tmp", DashboardEnabled: false, RulesEnabled: false}
	assert.Error(t, cfg.Validate())
}

func TestBuildOverviewDashboard(t *testing.T) {
	t.Parallel()

	builder := dashboards.BuildOverview()
	dash, err := builder.Build()
	require.NoError(t, err)

	require.NotNil(t, dash.Uid)
	assert.Equal(t, "mpt-overview", *dash.Uid)

	require.NotNil(t, dash.Title)
	assert.Equal(t, "MPT Overview", *dash.Title)

	require.NotNil(t, dash.Templating)
	assert.Len(t, dash.Templating.List, 1)
	assert.Equal(t, "datasource", dash.Templating.List[0].Name)

	assert.Len(t, dash.Panels, 5)

	totalPanels := 0
	for _, p := range dash.Panels {
		if p.RowPanel != nil {
			totalPanels += len(p.RowPanel.Panels)
		}
	}
	assert.Equal(t, 19, totalPanels)

	result := validate.Dashboard(dash, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
	assert.Empty(t, result.Warnings, "unexpected warnings: %v", result.Warnings)
}

func TestRecordingRules(t *testing.T) {
	t.Parallel()

	cr := rules.RecordingRules()
	assert.Equal(t, "monitoring.coreos.com/v1", cr.APIVersion)
	assert.Equal(t, "PrometheusRule", cr.Kind)
	assert.Equal(t, "mpt-recording-rules", cr.Metadata.Name)
	assert.Equal(t, "system-rules-prometheus", cr.Metadata.Labels["prometheus"])

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "mpt-recording", group.Name)

	expectedRecords := []string{
		"mpt:http_requests:rate5m",
		"mpt:http_errors:rate5m",
		"mpt:cycle_items:rate1h",
		"mpt:vendor_quotes:rate1h",
		"mpt:vendor_errors:ratio6h",
	}
	require.Len(t, group.Rules, len(expectedRecords))
	for i, rule := range group.Rules {
		assert.Equal(t, expectedRecords[i], rule.Record)
		assert.True(t, KnownMetrics[rule.Record], "%s missing from KnownMetrics", rule.Record)
	}

	result := validate.Rules(cr, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)

	data, err := yaml.Marshal(cr)
	require.NoError(t, err)
	assert.Contains(t, string(data), "apiVersion: monitoring.coreos.com/v1")
}

func TestAlertRules(t *testing.T) {
	t.Parallel()

	cr := rules.AlertRules()
	assert.Equal(t, "mpt-alerts", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "mpt-alerts", group.Name)

	expectedAlerts := []string{
		"MptDown",
		"MptReadinessDown",
		"MptHighErrorRate",
		"MptNoCycles",
		"MptVendorFailing",
		"MptPersistenceFailures",
		"MptDashboardFailures",
	}
	require.Len(t, group.Rules, len(expectedAlerts))
	for i, rule := range group.Rules {
		assert.Equal(t, expectedAlerts[i], rule.Alert)
		assert.NotEmpty(t, rule.Labels["severity"], "alert %s missing severity", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["summary"], "alert %s missing summary", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["description"], "alert %s missing description", rule.Alert)
	}

	result := validate.Rules(cr, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
	assert.Empty(t, result.Warnings)
}

func TestValidateExpr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		expr    string
		wantErr bool
	}{
		{name: "known counter", expr: `rate(mpt_http_requests_total[5m])`},
		{name: "histogram bucket", expr: `histogram_quantile(0.9, sum(rate(mpt_item_duration_seconds_bucket[5m])) by (le))`},
		{name: "recording rule", expr: `mpt:http_errors:rate5m / mpt:http_requests:rate5m`},
		{name: "unknown metric", expr: `rate(mpt_listings_total[5m])`, wantErr: true},
		{name: "invalid syntax", expr: `sum(rate(mpt_http_requests_total[5m])`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := validate.Expr("test", tt.expr, KnownMetrics)
			assert.Equal(t, tt.wantErr, !res.Ok(), "errors: %v", res.Errors)
		})
	}
}

func TestValidateRules_Duplicate(t *testing.T) {
	t.Parallel()

	cr := rules.PrometheusRule{Spec: rules.PrometheusRuleSpec{Groups: []rules.RuleGroup{{
		Name: "g",
		Rules: []rules.Rule{
			{Record: "mpt:http_requests:rate5m", Expr: `sum(rate(mpt_http_requests_total[5m]))`},
			{Record: "mpt:http_requests:rate5m", Expr: `sum(rate(mpt_http_requests_total[5m]))`},
		},
	}}}}

	res := validate.Rules(cr, KnownMetrics)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "duplicate")
}

func TestRun_WritesArtifacts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := Config{OutputDir: dir, DashboardEnabled: true, RulesEnabled: true}
	require.NoError(t, run(cfg, false))

	for _, path := range []string{
		filepath.Join(dir, "grafana", "data", "mpt-overview.json"),
		filepath.Join(dir, "prometheus", "mpt-recording-rules.yaml"),
		filepath.Join(dir, "prometheus", "mpt-alerts.yaml"),
	} {
		data, err := os.ReadFile(path)
		require.NoError(t, err, "reading %s", path)
		assert.NotEmpty(t, data)
	}

	alerts, err := os.ReadFile(filepath.Join(dir, "prometheus", "mpt-alerts.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(alerts), generatedHeader)
}

func TestRun_ValidateOnlyWritesNothing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := Config{OutputDir: dir, DashboardEnabled: true, RulesEnabled: false}
	require.NoError(t, run(cfg, true))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
