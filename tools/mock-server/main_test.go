package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/donaldgifford/mtg-price-tracker/internal/scryfall"
)

func loadTestFixture(t *testing.T) []card {
	t.Helper()
	cards, err := loadFixture(filepath.Join("testdata", "cards.json"))
	if err != nil {
		t.Fatalf("loading fixture: %v", err)
	}
	return cards
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func searchURL(name string) string {
	return "/cards/search?" + url.Values{
		"q":      {`!"` + name + `"`},
		"unique": {"prints"},
		"order":  {"released"},
	}.Encode()
}

func TestLoadFixture(t *testing.T) {
	cards := loadTestFixture(t)
	if len(cards) != 4 {
		t.Fatalf("cards=%d, want 4", len(cards))
	}
	if cards[0].name != "Lightning Bolt" {
		t.Errorf("name=%q, want Lightning Bolt", cards[0].name)
	}
}

func TestLoadFixture_MissingFile(t *testing.T) {
	if _, err := loadFixture(filepath.Join("testdata", "nope.json")); err == nil {
		t.Fatal("expected error for missing fixture")
	}
}

func TestParseExactName(t *testing.T) {
	tests := []struct {
		q         string
		wantName  string
		wantExact bool
	}{
		{q: `!"Lightning Bolt"`, wantName: "Lightning Bolt", wantExact: true},
		{q: `!Sol Ring`, wantName: "Sol Ring", wantExact: true},
		{q: `bolt`, wantName: "bolt", wantExact: false},
	}
	for _, tt := range tests {
		name, exact := parseExactName(tt.q)
		if name != tt.wantName || exact != tt.wantExact {
			t.Errorf("parseExactName(%q)=(%q, %v), want (%q, %v)",
				tt.q, name, exact, tt.wantName, tt.wantExact)
		}
	}
}

func TestCardHandler(t *testing.T) {
	mux := newMux(testLogger(), loadTestFixture(t), defaultPageSize)

	req := httptest.NewRequest(http.MethodGet, "/cards/e3285e6b-3e79-4d7c-bf96-d920f973b80d", http.NoBody)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusOK)
	}
	var got map[string]any
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if got["set_name"] != "Magic 2011" {
		t.Errorf("set_name=%v, want Magic 2011", got["set_name"])
	}
}

func TestCardHandler_NotFound(t *testing.T) {
	mux := newMux(testLogger(), loadTestFixture(t), defaultPageSize)

	req := httptest.NewRequest(http.MethodGet, "/cards/unknown", http.NoBody)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusNotFound)
	}
	var got errorResponse
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if got.Code != "not_found" {
		t.Errorf("code=%q, want not_found", got.Code)
	}
}

func TestSearchHandler_ExactName(t *testing.T) {
	mux := newMux(testLogger(), loadTestFixture(t), defaultPageSize)

	req := httptest.NewRequest(http.MethodGet, searchURL("lightning bolt"), http.NoBody)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusOK)
	}
	var got searchResponse
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if got.TotalCards != 2 || len(got.Data) != 2 {
		t.Errorf("total=%d data=%d, want 2 and 2", got.TotalCards, len(got.Data))
	}
	if got.HasMore {
		t.Error("expected has_more=false")
	}
}

func TestSearchHandler_NoResults(t *testing.T) {
	mux := newMux(testLogger(), loadTestFixture(t), defaultPageSize)

	req := httptest.NewRequest(http.MethodGet, searchURL("Black Lotus"), http.NoBody)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestSearchHandler_Pagination(t *testing.T) {
	mux := newMux(testLogger(), loadTestFixture(t), 1)

	req := httptest.NewRequest(http.MethodGet, searchURL("Lightning Bolt"), http.NoBody)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	var got searchResponse
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(got.Data) != 1 || !got.HasMore {
		t.Fatalf("data=%d has_more=%v, want 1 and true", len(got.Data), got.HasMore)
	}

	next, err := url.Parse(got.NextPage)
	if err != nil {
		t.Fatalf("parsing next_page: %v", err)
	}
	if next.Query().Get("page") != "2" {
		t.Errorf("next page=%q, want 2", next.Query().Get("page"))
	}
	if next.Query().Get("q") != `!"Lightning Bolt"` {
		t.Errorf("next q=%q, want the original query", next.Query().Get("q"))
	}
}

// The scryfall client must read the mock the same way it reads the real API.
func TestScryfallClientAgainstMock(t *testing.T) {
	srv := httptest.NewServer(newMux(testLogger(), loadTestFixture(t), 1))
	defer srv.Close()

	c, err := scryfall.NewClient(
		scryfall.WithBaseURL(srv.URL),
		scryfall.WithRateLimit(1000, 10),
		scryfall.WithRetry(0, 0),
	)
	if err != nil {
		t.Fatalf("creating client: %v", err)
	}
	ctx := context.Background()

	printings, err := c.SearchPrintings(ctx, "Lightning Bolt")
	if err != nil {
		t.Fatalf("searching printings: %v", err)
	}
	if len(printings) != 2 {
		t.Fatalf("printings=%d, want 2", len(printings))
	}
	if printings[0].SetCode != "m11" {
		t.Errorf("first set=%q, want newest release m11", printings[0].SetCode)
	}

	card, err := c.GetCard(ctx, "a9b5f1d2-6c3e-4b7a-8d9e-0f1a2b3c4d5e")
	if err != nil {
		t.Fatalf("getting card: %v", err)
	}
	if card.ImageURL() == "" {
		t.Error("expected image url from the front face")
	}

	if _, err := c.GetCard(ctx, "missing"); !errors.Is(err, scryfall.ErrNotFound) {
		t.Errorf("err=%v, want ErrNotFound", err)
	}
}
