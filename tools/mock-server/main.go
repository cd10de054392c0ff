// Package main implements a mock Scryfall API server for local development.
// It serves card printings from a JSON fixture so the watcher and the
// printings endpoint can run without reaching api.scryfall.com.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

const defaultPageSize = 175

type card struct {
	raw        json.RawMessage
	id         string
	name       string
	releasedAt string
}

type searchResponse struct {
	Object     string            `json:"object"`
	TotalCards int               `json:"total_cards"`
	Data       []json.RawMessage `json:"data"`
	HasMore    bool              `json:"has_more"`
	NextPage   string            `json:"next_page,omitempty"`
}

type errorResponse struct {
	Object  string `json:"object"`
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Details string `json:"details"`
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-server/testdata/cards.json", "path to card fixture")
	pageSize := flag.Int("page-size", defaultPageSize, "search results per page")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cards, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "cards", len(cards))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock Scryfall server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, newMux(logger, cards, *pageSize)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newMux(logger *slog.Logger, cards []card, pageSize int) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /cards/search", searchHandler(logger, cards, pageSize))
	mux.HandleFunc("GET /cards/{id}", cardHandler(logger, cards))
	return mux
}

func loadFixture(path string) ([]card, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}

	cards := make([]card, 0, len(raws))
	for i, raw := range raws {
		var head struct {
			ID         string `json:"id"`
			Name       string `json:"name"`
			ReleasedAt string `json:"released_at"`
		}
		if err := json.Unmarshal(raw, &head); err != nil {
			return nil, fmt.Errorf("parsing fixture card %d: %w", i, err)
		}
		if head.ID == "" {
			return nil, fmt.Errorf("fixture card %d has no id", i)
		}
		cards = append(cards, card{raw: raw, id: head.ID, name: head.Name, releasedAt: head.ReleasedAt})
	}
	return cards, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

func cardHandler(logger *slog.Logger, cards []card) http.HandlerFunc {
	byID := make(map[string]json.RawMessage, len(cards))
	for _, c := range cards {
		byID[c.id] = c.raw
	}

	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		raw, ok := byID[id]
		if !ok {
			writeNotFound(w, "No card found with the given ID or set code and collector number.")
			logger.Info("card not found", "id", id)
			return
		}
		writeJSON(w, http.StatusOK, raw)
	}
}

// searchHandler answers exact-name searches of the form !"Card Name".
// Other query syntax matches by case-insensitive substring.
func searchHandler(logger *slog.Logger, cards []card, pageSize int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		name, exact := parseExactName(q)

		var matched []json.RawMessage
		for _, c := range cards {
			if exact && strings.EqualFold(c.name, name) ||
				!exact && strings.Contains(strings.ToLower(c.name), strings.ToLower(q)) {
				matched = append(matched, c.raw)
			}
		}

		if len(matched) == 0 {
			writeNotFound(w, "Your query didn't match any cards.")
			logger.Info("search", "query", q, "matched", 0)
			return
		}

		page := 1
		if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
			page = v
		}
		start := min((page-1)*pageSize, len(matched))
		end := min(start+pageSize, len(matched))

		resp := searchResponse{
			Object:     "list",
			TotalCards: len(matched),
			Data:       matched[start:end],
		}
		if resp.Data == nil {
			resp.Data = []json.RawMessage{}
		}
		if end < len(matched) {
			next := *r.URL
			query := next.Query()
			query.Set("page", strconv.Itoa(page+1))
			next.RawQuery = query.Encode()
			resp.HasMore = true
			resp.NextPage = "http://" + r.Host + next.RequestURI()
		}

		writeJSON(w, http.StatusOK, resp)
		logger.Info("search", "query", q, "matched", len(matched), "page", page, "returned", len(resp.Data))
	}
}

func parseExactName(q string) (string, bool) {
	if !strings.HasPrefix(q, "!") {
		return q, false
	}
	rest := q[1:]
	if name, err := strconv.Unquote(rest); err == nil {
		return name, true
	}
	return strings.Trim(rest, `"`), true
}

func writeNotFound(w http.ResponseWriter, details string) {
	writeJSON(w, http.StatusNotFound, errorResponse{
		Object:  "error",
		Status:  http.StatusNotFound,
		Code:    "not_found",
		Details: details,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}
