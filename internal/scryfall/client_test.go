package scryfall_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/mtg-price-tracker/internal/scryfall"
)

func ptr[T any](v T) *T { return &v }

func newTestClient(t *testing.T, srv *httptest.Server) *scryfall.Client {
	t.Helper()

	c, err := scryfall.NewClient(
		scryfall.WithBaseURL(srv.URL),
		scryfall.WithRateLimit(1000, 10),
		scryfall.WithRetry(2, time.Millisecond),
		scryfall.WithCacheSize(8),
	)
	require.NoError(t, err)
	return c
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestGetCard(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cards/abc-123", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		writeJSON(t, w, http.StatusOK, scryfall.Printing{
			ID:              "abc-123",
			Name:            "Lightning Bolt",
			SetName:         "Magic 2010",
			SetCode:         "m10",
			CollectorNumber: "146",
			TCGPlayerID:     33456,
			ScryfallURI:     "https://scryfall.com/card/m10/146",
			Prices:          scryfall.Prices{USD: ptr("2.15")},
			ImageURIs:       &scryfall.ImageURIs{Normal: "https://img.example/bolt.jpg"},
		})
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	card, err := c.GetCard(context.Background(), "abc-123")
	require.NoError(t, err)

	assert.Equal(t, "Lightning Bolt", card.Name)
	usd, ok := card.USD()
	require.True(t, ok)
	assert.Equal(t, "2.15", usd.StringFixed(2))

	d := card.Descriptor()
	assert.Equal(t, "33456", d.ExternalProductID)
	assert.Equal(t, "m10", d.URLHints.SetCode)
	assert.Equal(t, "146", d.URLHints.CollectorNumber)

	e := card.WatchlistEntry()
	assert.Equal(t, "abc-123", e.ExternalID)
	assert.Equal(t, "https://img.example/bolt.jpg", e.ImageURL)
	assert.Equal(t, "https://scryfall.com/card/m10/146", e.ReferenceURL)
}

func TestDescribe_MissingProductID(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, scryfall.Printing{ID: "x", Name: "Forest", SetName: "Alpha"})
	}))
	defer srv.Close()

	d, err := newTestClient(t, srv).Describe(context.Background(), "x")
	require.NoError(t, err)
	assert.Empty(t, d.ExternalProductID)
}

func TestGetCard_NotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusNotFound, map[string]any{
			"object": "error", "status": 404, "code": "not_found", "details": "No card found",
		})
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv).GetCard(context.Background(), "missing")
	require.ErrorIs(t, err, scryfall.ErrNotFound)
}

func TestGetCard_RetriesRateLimited(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			writeJSON(t, w, http.StatusTooManyRequests, map[string]any{"status": 429})
			return
		}
		writeJSON(t, w, http.StatusOK, scryfall.Printing{ID: "x", Name: "Forest"})
	}))
	defer srv.Close()

	card, err := newTestClient(t, srv).GetCard(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, "Forest", card.Name)
	assert.Equal(t, int32(2), calls.Load())
}

func TestGetCard_ServerError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, map[string]any{"status": 400, "details": "bad id"})
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv).GetCard(context.Background(), "x")
	require.Error(t, err)
	assert.NotErrorIs(t, err, scryfall.ErrNotFound)
	assert.Contains(t, err.Error(), "bad id")
}

func TestSearchPrintings_PaginatesSortsAndCaches(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/cards/search", r.URL.Path)

		if r.URL.Query().Get("page") == "2" {
			writeJSON(t, w, http.StatusOK, map[string]any{
				"data": []scryfall.Printing{
					{ID: "new", Name: "Forest", ReleasedAt: "2024-02-09"},
				},
				"has_more": false,
			})
			return
		}

		assert.Equal(t, `!"Forest"`, r.URL.Query().Get("q"))
		assert.Equal(t, "prints", r.URL.Query().Get("unique"))
		writeJSON(t, w, http.StatusOK, map[string]any{
			"data": []scryfall.Printing{
				{ID: "old", Name: "Forest", ReleasedAt: "1993-08-05"},
				{ID: "mid", Name: "Forest", ReleasedAt: "2009-07-17"},
			},
			"has_more":  true,
			"next_page": srv.URL + "/cards/search?q=%21%22Forest%22&unique=prints&page=2",
		})
	}))
	defer srv.Close()

	c := newTestClient(t, srv)

	got, err := c.SearchPrintings(context.Background(), "Forest")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"new", "mid", "old"}, []string{got[0].ID, got[1].ID, got[2].ID})
	assert.Equal(t, int32(2), calls.Load())

	again, err := c.SearchPrintings(context.Background(), "forest ")
	require.NoError(t, err)
	assert.Len(t, again, 3)
	assert.Equal(t, int32(2), calls.Load(), "second search served from cache")
}

func TestSearchPrintings_NoResults(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusNotFound, map[string]any{"status": 404, "code": "not_found"})
	}))
	defer srv.Close()

	got, err := newTestClient(t, srv).SearchPrintings(context.Background(), "Nonexistent Card")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearchPrintings_EmptyName(t *testing.T) {
	t.Parallel()

	c, err := scryfall.NewClient()
	require.NoError(t, err)

	_, err = c.SearchPrintings(context.Background(), "  ")
	require.Error(t, err)
}

func TestPrinting_ImageURLFallsBackToFace(t *testing.T) {
	t.Parallel()

	p := scryfall.Printing{
		CardFaces: []scryfall.CardFace{
			{Name: "Delver of Secrets", ImageURIs: &scryfall.ImageURIs{Normal: "front.jpg"}},
			{Name: "Insectile Aberration", ImageURIs: &scryfall.ImageURIs{Normal: "back.jpg"}},
		},
	}
	assert.Equal(t, "front.jpg", p.ImageURL())

	_, ok := p.USD()
	assert.False(t, ok)
}
