package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	domain "github.com/donaldgifford/mtg-price-tracker/pkg/types"
)

// SQLStore implements Store over database/sql. SQLite and PostgreSQL share
// the same queries; only placeholders and timestamp encoding differ.
type SQLStore struct {
	db      *sql.DB
	dialect dialect
	now     func() time.Time
	log     *slog.Logger
	closers []func()
}

var _ Store = (*SQLStore)(nil)

// Option configures a SQLStore.
type Option func(*SQLStore)

// WithNowFunc overrides the clock used to stamp history points and new
// watchlist entries.
func WithNowFunc(fn func() time.Time) Option {
	return func(s *SQLStore) { s.now = fn }
}

// WithLogger sets the store logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *SQLStore) { s.log = l }
}

func newSQLStore(db *sql.DB, d dialect, opts ...Option) *SQLStore {
	s := &SQLStore{
		db:      db,
		dialect: d,
		now:     time.Now,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("component", "store", "driver", d.String())
	return s
}

// Close closes the underlying connection pool.
func (s *SQLStore) Close() error {
	err := s.db.Close()
	for _, c := range s.closers {
		c()
	}
	return err
}

// Ping verifies the database connection is alive.
func (s *SQLStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *SQLStore) Migrate(ctx context.Context) error {
	return runMigrations(ctx, s.db, s.dialect)
}

func (s *SQLStore) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return s.db.ExecContext(ctx, s.dialect.rebind(query), args...)
}

// GetWatchlist returns every watchlist entry in insertion order.
func (s *SQLStore) GetWatchlist(ctx context.Context) ([]domain.WatchlistEntry, error) {
	rows, err := s.db.QueryContext(ctx, s.dialect.rebind(queryGetWatchlist))
	if err != nil {
		return nil, fmt.Errorf("querying watchlist: %w", err)
	}
	defer rows.Close()

	var entries []domain.WatchlistEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating watchlist: %w", err)
	}
	return entries, nil
}

// GetWatchlistEntry returns one entry, or ErrNotFound.
func (s *SQLStore) GetWatchlistEntry(ctx context.Context, externalID string) (*domain.WatchlistEntry, error) {
	row := s.db.QueryRowContext(ctx, s.dialect.rebind(queryGetWatchlistEntry), externalID)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("watchlist entry %s: %w", externalID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*domain.WatchlistEntry, error) {
	var (
		e       domain.WatchlistEntry
		scraped scanTime
		ref     sql.NullString
	)
	err := row.Scan(
		&e.ExternalID, &e.CardName, &e.SetName, &e.CollectorNumber,
		&e.ReferenceURL, &e.ImageURL, &scraped, &ref,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning watchlist entry: %w", err)
	}
	e.LastScrapedAt = scraped.ptr()
	e.DashboardMessageRef = ref.String
	return &e, nil
}

// AddToWatchlist inserts e unless its external id is already present. The
// returned message is suitable for showing to the user either way.
func (s *SQLStore) AddToWatchlist(ctx context.Context, e *domain.WatchlistEntry) (string, error) {
	if e.ExternalID == "" {
		return "", errors.New("adding to watchlist: external id is required")
	}

	res, err := s.exec(ctx, queryInsertWatchlist,
		e.ExternalID, e.CardName, e.SetName, e.CollectorNumber,
		e.ReferenceURL, e.ImageURL, s.dialect.timeArg(s.now()),
	)
	if err != nil {
		return "", fmt.Errorf("adding %s to watchlist: %w", e.ExternalID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return "", fmt.Errorf("adding %s to watchlist: %w", e.ExternalID, err)
	}
	if n == 0 {
		return fmt.Sprintf("**%s** is already on the watchlist.", e.Label()), nil
	}

	s.log.Info("added to watchlist", "external_id", e.ExternalID, "card", e.Label())
	return fmt.Sprintf("Successfully added **%s** to the watchlist.", e.Label()), nil
}

// RemoveFromWatchlist deletes every printing whose card name matches
// cardName case-insensitively. Names are compared with Unicode case folding
// in Go, since SQLite's lower() only folds ASCII. Price history is kept.
func (s *SQLStore) RemoveFromWatchlist(ctx context.Context, cardName string) (string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("removing %q from watchlist: %w", cardName, err)
	}
	defer func() { _ = tx.Rollback() }()

	ids, err := matchingNames(ctx, tx, s.dialect.rebind(queryWatchlistNames), cardName)
	if err != nil {
		return "", fmt.Errorf("removing %q from watchlist: %w", cardName, err)
	}
	if len(ids) == 0 {
		return fmt.Sprintf("**%s** was not found on the watchlist.", cardName), nil
	}

	del := s.dialect.rebind(queryDeleteWatchlistEntry)
	for _, id := range ids {
		if _, err := tx.ExecContext(ctx, del, id); err != nil {
			return "", fmt.Errorf("removing %s from watchlist: %w", id, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("removing %q from watchlist: %w", cardName, err)
	}

	s.log.Info("removed from watchlist", "card", cardName, "printings", len(ids))
	return fmt.Sprintf("Removed %d printing(s) of **%s** from the watchlist.", len(ids), cardName), nil
}

// matchingNames returns the external ids of entries named cardName under
// Unicode case folding.
func matchingNames(ctx context.Context, tx *sql.Tx, query, cardName string) ([]string, error) {
	rows, err := tx.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		if strings.EqualFold(name, cardName) {
			ids = append(ids, id)
		}
	}
	return ids, rows.Err()
}

// MarkScraped records when an entry was last scraped.
func (s *SQLStore) MarkScraped(ctx context.Context, externalID string, at time.Time) error {
	if _, err := s.exec(ctx, queryMarkScraped, s.dialect.timeArg(at), externalID); err != nil {
		return fmt.Errorf("marking %s scraped: %w", externalID, err)
	}
	return nil
}

// SetDashboardMessageRef stores the presenter's handle for an entry.
func (s *SQLStore) SetDashboardMessageRef(ctx context.Context, externalID, ref string) error {
	if _, err := s.exec(ctx, querySetDashboardMessageRef, ref, externalID); err != nil {
		return fmt.Errorf("setting dashboard message for %s: %w", externalID, err)
	}
	return nil
}

// SaveScrapeData appends one price history row built from r. Conditions a
// vendor did not report, and every field of a failed quote, are NULL.
func (s *SQLStore) SaveScrapeData(ctx context.Context, externalID string, r *domain.AnalysisResult) error {
	if r == nil {
		return errors.New("saving scrape data: nil result")
	}
	if r.Error != "" {
		return fmt.Errorf("saving scrape data for %s: analysis failed: %s", externalID, r.Error)
	}

	args := make([]any, 0, len(priceColumns)+len(historyTailColumns)+2)
	args = append(args, externalID, s.dialect.timeArg(s.now()))

	for _, pc := range priceColumns {
		args = append(args, quotePrice(r.Quote(pc.vendor), pc.condition))
	}

	args = append(args, quotePrice(r.Quote(domain.VendorScryfall), domain.ConditionNM))

	var (
		lastSold   decimal.NullDecimal
		totalSold  sql.NullInt64
		listings   sql.NullInt64
		volatility sql.NullString
	)
	if q := r.Quote(domain.VendorTCGPlayer); q != nil && !q.Failed() {
		if q.LastSoldPrice != nil {
			lastSold = decimal.NewNullDecimal(*q.LastSoldPrice)
		}
		totalSold = sql.NullInt64{Int64: int64(q.TotalSold), Valid: true}
		listings = sql.NullInt64{Int64: int64(q.CurrentListingCount), Valid: true}
		volatility = sql.NullString{String: q.VolatilityLabel, Valid: q.VolatilityLabel != ""}
	}
	args = append(args, lastSold, totalSold, listings, volatility)

	if _, err := s.exec(ctx, queryInsertHistory, args...); err != nil {
		return fmt.Errorf("saving scrape data for %s: %w", externalID, err)
	}
	return nil
}

func quotePrice(q *domain.PriceQuote, cond domain.Condition) decimal.NullDecimal {
	if q == nil {
		return decimal.NullDecimal{}
	}
	p, ok := q.Price(cond)
	if !ok {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(p)
}

// GetPriceHistory returns every history point for externalID, oldest
// first.
func (s *SQLStore) GetPriceHistory(ctx context.Context, externalID string) ([]domain.PriceHistoryPoint, error) {
	rows, err := s.db.QueryContext(ctx, s.dialect.rebind(queryGetPriceHistory), externalID)
	if err != nil {
		return nil, fmt.Errorf("querying price history for %s: %w", externalID, err)
	}
	defer rows.Close()

	var points []domain.PriceHistoryPoint
	for rows.Next() {
		p, err := scanHistoryPoint(rows)
		if err != nil {
			return nil, err
		}
		points = append(points, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating price history: %w", err)
	}
	return points, nil
}

func scanHistoryPoint(row rowScanner) (*domain.PriceHistoryPoint, error) {
	var (
		p          domain.PriceHistoryPoint
		ts         scanTime
		prices     = make([]decimal.NullDecimal, len(priceColumns))
		reference  decimal.NullDecimal
		lastSold   decimal.NullDecimal
		totalSold  sql.NullInt64
		listings   sql.NullInt64
		volatility sql.NullString
	)

	dest := make([]any, 0, len(priceColumns)+len(historyTailColumns)+2)
	dest = append(dest, &p.ExternalID, &ts)
	for i := range prices {
		dest = append(dest, &prices[i])
	}
	dest = append(dest, &reference, &lastSold, &totalSold, &listings, &volatility)

	if err := row.Scan(dest...); err != nil {
		return nil, fmt.Errorf("scanning price history: %w", err)
	}

	p.Timestamp = ts.Time
	p.Prices = make(map[domain.Vendor]map[domain.Condition]decimal.Decimal)
	for i, pc := range priceColumns {
		if !prices[i].Valid {
			continue
		}
		byCond, ok := p.Prices[pc.vendor]
		if !ok {
			byCond = make(map[domain.Condition]decimal.Decimal)
			p.Prices[pc.vendor] = byCond
		}
		byCond[pc.condition] = prices[i].Decimal
	}

	if reference.Valid {
		p.ReferencePrice = &reference.Decimal
	}
	if lastSold.Valid {
		p.LastSoldPrice = &lastSold.Decimal
	}
	if totalSold.Valid {
		n := int(totalSold.Int64)
		p.TotalSold = &n
	}
	if listings.Valid {
		n := int(listings.Int64)
		p.ListingCount = &n
	}
	if volatility.Valid {
		p.Volatility = &volatility.String
	}
	return &p, nil
}
