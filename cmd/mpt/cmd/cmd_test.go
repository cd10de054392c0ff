package cmd

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/mtg-price-tracker/internal/api/handlers"
	domain "github.com/donaldgifford/mtg-price-tracker/pkg/types"
)

func TestProgressBar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		done, total int
		want        string
	}{
		{name: "empty total", done: 0, total: 0, want: "[....]"},
		{name: "half", done: 2, total: 4, want: "[##..]"},
		{name: "complete", done: 4, total: 4, want: "[####]"},
		{name: "overflow clamps", done: 9, total: 4, want: "[####]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, progressBar(tt.done, tt.total, 4))
		})
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "Jace, t...", truncate("Jace, the Mind Sculptor", 10))
}

func TestPrintStatus(t *testing.T) {
	t.Parallel()

	next := time.Date(2026, 1, 2, 3, 0, 0, 0, time.UTC)
	var buf bytes.Buffer
	err := printStatus(&buf, &handlers.WatcherStatusBody{
		WatcherRunStatus: domain.WatcherRunStatus{
			IsRunning:              true,
			Phase:                  domain.PhaseRunning,
			CurrentItem:            "Lightning Bolt (Magic 2011)",
			ItemsCompleted:         5,
			ItemsTotal:             10,
			AverageItemSeconds:     12.5,
			EstimatedTimeRemaining: "1m 2s",
		},
		NextRun: &next,
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Running")
	assert.Contains(t, out, "Lightning Bolt (Magic 2011)")
	assert.Contains(t, out, "[##########..........] 5/10")
	assert.Contains(t, out, "12.5s")
	assert.Contains(t, out, "1m 2s")
	assert.Contains(t, out, "Next run:")
}

func TestPrintStatus_Idle(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := handlers.WatcherStatusBody{WatcherRunStatus: domain.IdleStatus()}
	require.NoError(t, printStatus(&buf, &s))

	assert.Contains(t, buf.String(), "Idle")
	assert.NotContains(t, buf.String(), "Progress:")
}

func TestPrintHistoryTable(t *testing.T) {
	t.Parallel()

	ref := decimal.RequireFromString("2.5")
	var buf bytes.Buffer
	err := printHistoryTable(&buf, []domain.PriceHistoryPoint{{
		ExternalID: "abc",
		Timestamp:  time.Date(2026, 1, 2, 3, 0, 0, 0, time.UTC),
		Prices: map[domain.Vendor]map[domain.Condition]decimal.Decimal{
			domain.VendorTCGPlayer: {domain.ConditionNM: decimal.RequireFromString("2.1")},
		},
		ReferencePrice: &ref,
	}})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "TCGPLAYER NM")
	assert.Contains(t, out, "CARD KINGDOM NM")
	assert.Contains(t, out, "$2.10")
	assert.Contains(t, out, "$2.50")
}

func TestPrintAnalysis(t *testing.T) {
	t.Parallel()

	sold := decimal.RequireFromString("1.99")
	tcg := domain.NewPriceQuote(domain.VendorTCGPlayer)
	tcg.LowestPriceByCondition[domain.ConditionNM] = decimal.RequireFromString("2")
	tcg.LastSoldPrice = &sold
	tcg.CurrentListingCount = 40

	result := &domain.AnalysisResult{
		Card: domain.CardDescriptor{CardName: "Lightning Bolt", SetName: "Magic 2011"},
		Quotes: map[domain.Vendor]domain.PriceQuote{
			domain.VendorTCGPlayer: *tcg,
			domain.VendorManaPool: domain.FailedQuote(
				domain.VendorManaPool, context.DeadlineExceeded,
			),
			domain.VendorCardKingdom: *domain.NewPriceQuote(domain.VendorCardKingdom),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, printAnalysis(&buf, result))

	out := buf.String()
	assert.Contains(t, out, "Lightning Bolt (Magic 2011)")
	assert.Contains(t, out, "$2.00")
	assert.Contains(t, out, "last sold $1.99, 40 listed")
	assert.Contains(t, out, "failed: context deadline exceeded")
	assert.Contains(t, out, "no listings")
	assert.NotContains(t, out, "Star City Games")
}

func TestPrintAnalysis_DescriptorError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := printAnalysis(&buf, &domain.AnalysisResult{
		Card:  domain.CardDescriptor{CardName: "Token", SetName: "Promo"},
		Error: "missing product id",
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "missing product id")
	assert.NotContains(t, buf.String(), "VENDOR")
}

// execute runs cmd against a fake API server. It mutates viper globals and
// must not run in parallel.
func execute(t *testing.T, cmd *cobra.Command, handler http.HandlerFunc, args ...string) (string, error) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	viper.Set("server", srv.URL)
	viper.Set("output", "table")
	t.Cleanup(viper.Reset)

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestRunCmd(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    string
		wantErr bool
	}{
		{
			name:   "started",
			status: http.StatusAccepted,
			body:   `{"status":"started"}`,
			want:   "Watcher cycle started.",
		},
		{
			name:   "already running",
			status: http.StatusConflict,
			body:   `{"title":"Conflict","status":409,"detail":"watcher cycle already running"}`,
			want:   "already running",
		},
		{
			name:    "server error",
			status:  http.StatusInternalServerError,
			body:    `{"detail":"boom"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, runCmd(), func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/api/v1/watcher/run", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestWatchlistRemoveCmd_JoinsName(t *testing.T) {
	var gotName string
	out, err := execute(t, watchlistRemoveCmd(), func(w http.ResponseWriter, r *http.Request) {
		gotName = r.URL.Query().Get("name")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"Removed Lightning Bolt"}`))
	}, "Lightning", "Bolt")

	require.NoError(t, err)
	assert.Equal(t, "Lightning Bolt", gotName)
	assert.Contains(t, out, "Removed Lightning Bolt")
}

func TestWatchlistListCmd_Empty(t *testing.T) {
	out, err := execute(t, watchlistListCmd(), func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})

	require.NoError(t, err)
	assert.Contains(t, out, "The watchlist is empty.")
}

func TestHistoryCmd_Limit(t *testing.T) {
	body := `[
		{"external_id":"abc","timestamp":"2026-01-01T00:00:00Z","prices":{}},
		{"external_id":"abc","timestamp":"2026-01-02T00:00:00Z","prices":{}},
		{"external_id":"abc","timestamp":"2026-01-03T00:00:00Z","prices":{}}
	]`
	viper.Set("output", "json")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	viper.Set("server", srv.URL)
	t.Cleanup(viper.Reset)

	cmd := historyCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"abc", "--limit", "1"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	assert.Contains(t, buf.String(), "2026-01-03")
	assert.NotContains(t, buf.String(), "2026-01-01")
}
