package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/guttosm/stockpulse/internal/domain/models"
	pq "github.com/lib/pq"
)

// PricesRepository defines the contract for all asset/price DB operations.
type PricesRepository interface {
	GetOrCreateAsset(ctx context.Context, ticker string) (*models.Asset, error)
	AssetByTicker(ctx context.Context, ticker string) (*models.Asset, error)
	GetAssets(ctx context.Context, ticker string) ([]models.Asset, error)
	DeleteAsset(ctx context.Context, ticker string) (bool, error)
	InsertPricesBatch(ctx context.Context, assetID int64, records []models.PriceRecord) error
	UpsertPrices(ctx context.Context, assetID int64, records []models.PriceRecord) (insertions int, updates int, err error)
	GetHighestVolume(ctx context.Context, ticker string, startDate, endDate *time.Time) (*models.VolumePoint, error)
	GetLowestClosingPrice(ctx context.Context, ticker string, startDate, endDate *time.Time) (*models.ClosingPoint, error)
	GetMeanDailyPrice(ctx context.Context, ticker string, startDate, endDate *time.Time) ([]models.MeanPrice, error)
	GetDailyVariation(ctx context.Context, ticker string, startDate, endDate *time.Time) ([]models.Variation, error)
	GetConsolidatedData(ctx context.Context, ticker string, startDate, endDate *time.Time) ([]models.Consolidated, error)
}

type pricesRepository struct {
	db *sql.DB
}

func NewPricesRepository(db *sql.DB) PricesRepository {
	return &pricesRepository{db: db}
}

// GetOrCreateAsset returns the asset for a ticker, creating it when absent.
// The insert uses ON CONFLICT DO NOTHING against the unique ticker
// constraint, so concurrent first uploads of the same ticker resolve to a
// single row instead of duplicates.
func (r *pricesRepository) GetOrCreateAsset(ctx context.Context, ticker string) (*models.Asset, error) {
	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO assets (ticker) VALUES ($1) ON CONFLICT (ticker) DO NOTHING`, ticker); err != nil {
		return nil, fmt.Errorf("insert asset: %w", err)
	}

	asset, err := r.AssetByTicker(ctx, ticker)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, fmt.Errorf("asset %q not found after insert", ticker)
	}
	return asset, nil
}

// AssetByTicker returns the asset with the exact ticker, or nil when none
// exists.
func (r *pricesRepository) AssetByTicker(ctx context.Context, ticker string) (*models.Asset, error) {
	var a models.Asset
	err := r.db.QueryRowContext(ctx,
		`SELECT id, ticker FROM assets WHERE ticker = $1`, ticker).Scan(&a.ID, &a.Ticker)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetAssets lists assets ordered by ticker, optionally filtered by exact
// ticker match.
func (r *pricesRepository) GetAssets(ctx context.Context, ticker string) ([]models.Asset, error) {
	query := `SELECT id, ticker FROM assets`
	var args []any
	if ticker != "" {
		query += ` WHERE ticker = $1`
		args = append(args, ticker)
	}
	query += ` ORDER BY ticker`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var assets []models.Asset
	for rows.Next() {
		var a models.Asset
		if err := rows.Scan(&a.ID, &a.Ticker); err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}

// DeleteAsset removes an asset and all its price rows inside a single
// transaction. Returns false when no asset with that ticker exists.
func (r *pricesRepository) DeleteAsset(ctx context.Context, ticker string) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}

	var assetID int64
	err = tx.QueryRowContext(ctx, `SELECT id FROM assets WHERE ticker = $1`, ticker).Scan(&assetID)
	if errors.Is(err, sql.ErrNoRows) {
		_ = tx.Rollback()
		return false, nil
	}
	if err != nil {
		_ = tx.Rollback()
		return false, err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM prices WHERE asset_id = $1`, assetID); err != nil {
		_ = tx.Rollback()
		return false, err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM assets WHERE id = $1`, assetID); err != nil {
		_ = tx.Rollback()
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	return true, nil
}

// InsertPricesBatch inserts one price row per record unconditionally, in a
// single transaction using COPY. Duplicate (asset_id, date) rows are
// allowed on this path; use UpsertPrices for merge semantics.
func (r *pricesRepository) InsertPricesBatch(ctx context.Context, assetID int64, records []models.PriceRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	// Small optimization for bulk load
	if _, err := tx.ExecContext(ctx, `SET LOCAL synchronous_commit = OFF`); err != nil {
		_ = tx.Rollback()
		return err
	}

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(
		"prices",
		"asset_id",
		"date",
		"open_price",
		"high",
		"low",
		"close",
		"adj_close",
		"volume",
	))
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	for _, rec := range records {
		if _, err := stmt.ExecContext(ctx,
			assetID,
			rec.Date,
			rec.Open,
			rec.High,
			rec.Low,
			rec.Close,
			rec.AdjClose,
			rec.Volume,
		); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return err
		}
	}

	if _, err := stmt.ExecContext(ctx); err != nil {
		_ = stmt.Close()
		_ = tx.Rollback()
		return err
	}
	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

// UpsertPrices merges records into the prices table keyed by
// (asset_id, date): an existing row is overwritten in place, a missing one
// is inserted. The whole batch runs in one transaction and commits once.
// Returns how many records were inserted and how many updated.
func (r *pricesRepository) UpsertPrices(ctx context.Context, assetID int64, records []models.PriceRecord) (int, int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, 0, err
	}

	var insertions, updates int
	for _, rec := range records {
		res, err := tx.ExecContext(ctx, `
			UPDATE prices
			SET open_price = $1, high = $2, low = $3, close = $4, adj_close = $5, volume = $6
			WHERE asset_id = $7 AND date = $8
		`, rec.Open, rec.High, rec.Low, rec.Close, rec.AdjClose, rec.Volume, assetID, rec.Date)
		if err != nil {
			_ = tx.Rollback()
			return 0, 0, err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			_ = tx.Rollback()
			return 0, 0, err
		}
		if affected > 0 {
			updates++
			continue
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO prices (asset_id, date, open_price, high, low, close, adj_close, volume)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, assetID, rec.Date, rec.Open, rec.High, rec.Low, rec.Close, rec.AdjClose, rec.Volume); err != nil {
			_ = tx.Rollback()
			return 0, 0, err
		}
		insertions++
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, err
	}
	return insertions, updates, nil
}

// priceFilters builds the WHERE clause for statistic queries. Ticker is an
// exact match when non-empty; dates are inclusive bounds on the price date.
func priceFilters(ticker string, startDate, endDate *time.Time) (string, []any) {
	var conds []string
	var args []any

	if ticker != "" {
		args = append(args, ticker)
		conds = append(conds, fmt.Sprintf("a.ticker = $%d", len(args)))
	}
	if startDate != nil {
		args = append(args, *startDate)
		conds = append(conds, fmt.Sprintf("p.date >= $%d", len(args)))
	}
	if endDate != nil {
		args = append(args, *endDate)
		conds = append(conds, fmt.Sprintf("p.date <= $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// GetHighestVolume returns the single matching row with maximum volume, or
// nil when no rows match. Ties break on the earliest date.
func (r *pricesRepository) GetHighestVolume(ctx context.Context, ticker string, startDate, endDate *time.Time) (*models.VolumePoint, error) {
	where, args := priceFilters(ticker, startDate, endDate)
	query := fmt.Sprintf(`
		SELECT a.ticker, p.date, p.volume
		FROM prices p
		JOIN assets a ON p.asset_id = a.id%s
		ORDER BY p.volume DESC, p.date ASC
		LIMIT 1
	`, where)

	var out models.VolumePoint
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&out.Ticker, &out.Date, &out.Volume)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetLowestClosingPrice returns the single matching row with minimum
// closing price, or nil when no rows match.
func (r *pricesRepository) GetLowestClosingPrice(ctx context.Context, ticker string, startDate, endDate *time.Time) (*models.ClosingPoint, error) {
	where, args := priceFilters(ticker, startDate, endDate)
	query := fmt.Sprintf(`
		SELECT a.ticker, p.date, p.close
		FROM prices p
		JOIN assets a ON p.asset_id = a.id%s
		ORDER BY p.close ASC, p.date ASC
		LIMIT 1
	`, where)

	var out models.ClosingPoint
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&out.Ticker, &out.Date, &out.Close)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetMeanDailyPrice returns (open + close) / 2 for every matching day,
// ordered by date so pagination is stable.
func (r *pricesRepository) GetMeanDailyPrice(ctx context.Context, ticker string, startDate, endDate *time.Time) ([]models.MeanPrice, error) {
	where, args := priceFilters(ticker, startDate, endDate)
	query := fmt.Sprintf(`
		SELECT a.ticker, p.date, (p.open_price + p.close) / 2 AS mean_price
		FROM prices p
		JOIN assets a ON p.asset_id = a.id%s
		ORDER BY p.date ASC
	`, where)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []models.MeanPrice
	for rows.Next() {
		var m models.MeanPrice
		if err := rows.Scan(&m.Ticker, &m.Date, &m.MeanPrice); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// GetDailyVariation returns ((close - open) / open) * 100 for every
// matching day. Days with a zero opening price are excluded: the variation
// is undefined for them.
func (r *pricesRepository) GetDailyVariation(ctx context.Context, ticker string, startDate, endDate *time.Time) ([]models.Variation, error) {
	where, args := priceFilters(ticker, startDate, endDate)
	query := fmt.Sprintf(`
		SELECT p.date, ((p.close - p.open_price) / p.open_price) * 100 AS variation
		FROM prices p
		JOIN assets a ON p.asset_id = a.id%s
		ORDER BY p.date ASC
	`, whereAnd(where, "p.open_price <> 0"))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []models.Variation
	for rows.Next() {
		var v models.Variation
		if err := rows.Scan(&v.Date, &v.Variation); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// GetConsolidatedData combines mean price and variation per matching day,
// with the same zero-open exclusion as GetDailyVariation.
func (r *pricesRepository) GetConsolidatedData(ctx context.Context, ticker string, startDate, endDate *time.Time) ([]models.Consolidated, error) {
	where, args := priceFilters(ticker, startDate, endDate)
	query := fmt.Sprintf(`
		SELECT p.date,
			(p.open_price + p.close) / 2 AS mean_price,
			((p.close - p.open_price) / p.open_price) * 100 AS variation
		FROM prices p
		JOIN assets a ON p.asset_id = a.id%s
		ORDER BY p.date ASC
	`, whereAnd(where, "p.open_price <> 0"))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []models.Consolidated
	for rows.Next() {
		var cd models.Consolidated
		if err := rows.Scan(&cd.Date, &cd.MeanPrice, &cd.Variation); err != nil {
			return nil, err
		}
		out = append(out, cd)
	}
	return out, rows.Err()
}

// whereAnd appends an extra condition to an already-built WHERE clause,
// starting one when the clause is empty.
func whereAnd(where, cond string) string {
	if where == "" {
		return " WHERE " + cond
	}
	return where + " AND " + cond
}
