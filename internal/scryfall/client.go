// Package scryfall is a rate-limited client for the Scryfall card catalog,
// used to resolve watched printings into fresh card descriptors and to
// search a card's printings.
package scryfall

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/donaldgifford/mtg-price-tracker/internal/metrics"
	domain "github.com/donaldgifford/mtg-price-tracker/pkg/types"
)

// ErrNotFound is returned when Scryfall has no card for the given id.
var ErrNotFound = errors.New("scryfall: not found")

// maxSearchPages bounds next_page traversal for a single search.
const maxSearchPages = 10

// Client talks to the Scryfall REST API.
type Client struct {
	http    *resty.Client
	limiter *rate.Limiter
	cache   *lru.Cache[string, []Printing]
	tracer  trace.Tracer
	log     *slog.Logger
}

// Option configures the Client.
type Option func(*clientOptions)

type clientOptions struct {
	baseURL    string
	userAgent  string
	timeout    time.Duration
	perSecond  float64
	burst      int
	cacheSize  int
	retryWait  time.Duration
	retries    int
	httpClient *http.Client
	log        *slog.Logger
}

// WithBaseURL overrides the API base URL.
func WithBaseURL(u string) Option {
	return func(o *clientOptions) { o.baseURL = strings.TrimRight(u, "/") }
}

// WithUserAgent sets the User-Agent header Scryfall requires.
func WithUserAgent(ua string) Option {
	return func(o *clientOptions) { o.userAgent = ua }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *clientOptions) { o.timeout = d }
}

// WithRateLimit sets the request rate. Scryfall asks for at most 10/s.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(o *clientOptions) {
		o.perSecond = perSecond
		o.burst = burst
	}
}

// WithCacheSize sets the number of printing searches kept in memory.
func WithCacheSize(n int) Option {
	return func(o *clientOptions) { o.cacheSize = n }
}

// WithRetry sets the retry count and base wait for 429 and 5xx responses.
func WithRetry(count int, wait time.Duration) Option {
	return func(o *clientOptions) {
		o.retries = count
		o.retryWait = wait
	}
}

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(o *clientOptions) { o.httpClient = c }
}

// WithLogger sets the client logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *clientOptions) { o.log = l }
}

// NewClient creates a Scryfall client.
func NewClient(opts ...Option) (*Client, error) {
	o := clientOptions{
		baseURL:   "https://api.scryfall.com",
		userAgent: "mtg-price-tracker/1.0",
		timeout:   15 * time.Second,
		perSecond: 10,
		burst:     1,
		cacheSize: 256,
		retries:   3,
		retryWait: 500 * time.Millisecond,
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	cache, err := lru.New[string, []Printing](o.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating search cache: %w", err)
	}

	var hc *resty.Client
	if o.httpClient != nil {
		hc = resty.NewWithClient(o.httpClient)
	} else {
		hc = resty.New()
	}

	c := &Client{
		http:    hc,
		limiter: rate.NewLimiter(rate.Limit(o.perSecond), o.burst),
		cache:   cache,
		tracer:  otel.Tracer("github.com/donaldgifford/mtg-price-tracker/internal/scryfall"),
		log:     o.log,
	}

	hc.SetBaseURL(o.baseURL).
		SetTimeout(o.timeout).
		SetHeader("User-Agent", o.userAgent).
		SetHeader("Accept", "application/json").
		SetRetryCount(o.retries).
		SetRetryWaitTime(o.retryWait).
		SetRetryMaxWaitTime(10 * o.retryWait).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if err != nil {
				return false
			}
			return r.StatusCode() == http.StatusTooManyRequests ||
				r.StatusCode() >= http.StatusInternalServerError
		}).
		OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			if err := c.limiter.Wait(req.Context()); err != nil {
				return fmt.Errorf("rate limiter wait: %w", err)
			}
			return nil
		})

	return c, nil
}

// GetCard fetches one printing by Scryfall id.
func (c *Client) GetCard(ctx context.Context, id string) (*Printing, error) {
	ctx, span := c.tracer.Start(ctx, "scryfall.GetCard", trace.WithAttributes(
		attribute.String("scryfall.id", id),
	))
	defer span.End()

	var card Printing
	var apiErr apiError
	res, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetResult(&card).
		SetError(&apiErr).
		Get("/cards/{id}")
	observe("card", res, err)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("fetching card %s: %w", id, err)
	}

	switch {
	case res.StatusCode() == http.StatusNotFound:
		return nil, fmt.Errorf("fetching card %s: %w", id, ErrNotFound)
	case res.IsError():
		span.SetStatus(codes.Error, res.Status())
		return nil, fmt.Errorf("fetching card %s: %s: %s", id, res.Status(), apiErr.Details)
	}

	return &card, nil
}

// Describe resolves a watched printing into a fresh card descriptor. It is
// never cached so product ids that changed upstream heal on the next cycle.
func (c *Client) Describe(ctx context.Context, id string) (*domain.CardDescriptor, error) {
	card, err := c.GetCard(ctx, id)
	if err != nil {
		return nil, err
	}
	return card.Descriptor(), nil
}

// SearchPrintings returns every paper printing with exactly the given
// name, newest release first. Results are cached by name.
func (c *Client) SearchPrintings(ctx context.Context, name string) ([]Printing, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return nil, fmt.Errorf("searching printings: empty name")
	}

	if cached, ok := c.cache.Get(key); ok {
		metrics.ScryfallCacheHitsTotal.Inc()
		return slices.Clone(cached), nil
	}

	ctx, span := c.tracer.Start(ctx, "scryfall.SearchPrintings", trace.WithAttributes(
		attribute.String("card.name", name),
	))
	defer span.End()

	var all []Printing
	req := c.http.R().SetQueryParams(map[string]string{
		"q":      fmt.Sprintf("!%q", name),
		"unique": "prints",
		"order":  "released",
	})
	url := "/cards/search"

	for page := 0; page < maxSearchPages; page++ {
		var result searchPage
		var apiErr apiError
		res, err := req.SetContext(ctx).SetResult(&result).SetError(&apiErr).Get(url)
		observe("search", res, err)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			return nil, fmt.Errorf("searching printings for %q: %w", name, err)
		}

		if res.StatusCode() == http.StatusNotFound {
			// Scryfall answers an empty search with 404.
			break
		}
		if res.IsError() {
			span.SetStatus(codes.Error, res.Status())
			return nil, fmt.Errorf("searching printings for %q: %s: %s", name, res.Status(), apiErr.Details)
		}

		all = append(all, result.Data...)
		if !result.HasMore || result.NextPage == "" {
			break
		}

		// next_page is absolute and already carries the query.
		url = result.NextPage
		req = c.http.R()
	}

	slices.SortStableFunc(all, func(a, b Printing) int {
		return b.Released().Compare(a.Released())
	})

	c.cache.Add(key, all)
	c.log.Debug("printings fetched", "card", name, "count", len(all))
	span.SetAttributes(attribute.Int("printings.count", len(all)))

	return slices.Clone(all), nil
}

func observe(endpoint string, res *resty.Response, err error) {
	status := "error"
	if err == nil && res != nil {
		status = fmt.Sprintf("%dxx", res.StatusCode()/100)
	}
	metrics.ScryfallRequestsTotal.WithLabelValues(endpoint, status).Inc()
}
