//go:build integration
// +build integration

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/lib/pq"
	goose "github.com/pressly/goose/v3"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/guttosm/stockpulse/internal/domain/models"
)

// startPostgres spins up a Postgres container and returns a DSN and terminate func.
func startPostgres(t *testing.T) (dsn string, terminate func()) {
	t.Helper()
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "stockpulse",
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
		},
		WaitingFor: wait.ForSQL("5432/tcp", "postgres", func(host string, port nat.Port) string {
			return fmt.Sprintf("host=%s port=%s user=postgres password=postgres dbname=stockpulse sslmode=disable", host, port.Port())
		}).WithStartupTimeout(60 * time.Second),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	if err != nil {
		t.Fatalf("container start: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}

	dsn = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", "postgres", "postgres", host, port.Port(), "stockpulse")
	terminate = func() { _ = container.Terminate(context.Background()) }
	return dsn, terminate
}

func openDB(t *testing.T, dsn string) *sql.DB {
	t.Helper()
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Fatalf("ping: %v", err)
	}
	return db
}

func runMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	if err := goose.SetDialect("postgres"); err != nil {
		t.Fatalf("dialect: %v", err)
	}
	// migrations path relative to this test file (internal/storage → ../../db/migrations)
	path := filepath.Join("..", "..", "db", "migrations")
	if err := goose.Up(db, path); err != nil {
		t.Fatalf("migrate up: %v", err)
	}
}

func day(d int) time.Time {
	return time.Date(2024, 6, d, 0, 0, 0, 0, time.UTC)
}

func seedRecords() []models.PriceRecord {
	return []models.PriceRecord{
		{Date: day(3), Open: 10.0, High: 12.0, Low: 9.0, Close: 11.0, AdjClose: 11.0, Volume: 100},
		{Date: day(4), Open: 11.0, High: 13.0, Low: 10.0, Close: 10.0, AdjClose: 10.0, Volume: 300},
		{Date: day(5), Open: 0.0, High: 13.0, Low: 10.0, Close: 12.0, AdjClose: 12.0, Volume: 200},
	}
}

func TestRepository_Integration(t *testing.T) {
	dsn, terminate := startPostgres(t)
	defer terminate()
	db := openDB(t, dsn)
	defer db.Close()
	runMigrations(t, db)

	ctx := context.Background()
	repo := NewPricesRepository(db)

	asset, err := repo.GetOrCreateAsset(ctx, "TEST4")
	if err != nil {
		t.Fatalf("GetOrCreateAsset: %v", err)
	}

	t.Run("get-or-create is idempotent", func(t *testing.T) {
		again, err := repo.GetOrCreateAsset(ctx, "TEST4")
		if err != nil {
			t.Fatalf("second GetOrCreateAsset: %v", err)
		}
		if again.ID != asset.ID {
			t.Fatalf("expected same asset ID, got %d and %d", asset.ID, again.ID)
		}
	})

	if err := repo.InsertPricesBatch(ctx, asset.ID, seedRecords()); err != nil {
		t.Fatalf("InsertPricesBatch: %v", err)
	}

	t.Run("insert path allows duplicates", func(t *testing.T) {
		if err := repo.InsertPricesBatch(ctx, asset.ID, seedRecords()[:1]); err != nil {
			t.Fatalf("duplicate insert: %v", err)
		}
		var cnt int
		if err := db.QueryRow(`SELECT COUNT(*) FROM prices WHERE asset_id = $1 AND date = $2`, asset.ID, day(3)).Scan(&cnt); err != nil {
			t.Fatalf("count: %v", err)
		}
		if cnt != 2 {
			t.Fatalf("expected 2 rows for duplicated day, got %d", cnt)
		}
		// remove the duplicate again so statistic checks stay deterministic
		if _, err := db.Exec(`DELETE FROM prices WHERE asset_id = $1 AND date = $2`, asset.ID, day(3)); err != nil {
			t.Fatalf("cleanup: %v", err)
		}
		if err := repo.InsertPricesBatch(ctx, asset.ID, seedRecords()[:1]); err != nil {
			t.Fatalf("re-insert: %v", err)
		}
	})

	t.Run("highest volume", func(t *testing.T) {
		out, err := repo.GetHighestVolume(ctx, "TEST4", nil, nil)
		if err != nil || out == nil {
			t.Fatalf("GetHighestVolume: out=%+v err=%v", out, err)
		}
		if out.Volume != 300 || !out.Date.Equal(day(4)) {
			t.Fatalf("unexpected point: %+v", out)
		}
	})

	t.Run("lowest closing price with range", func(t *testing.T) {
		start := day(4)
		out, err := repo.GetLowestClosingPrice(ctx, "TEST4", &start, nil)
		if err != nil || out == nil {
			t.Fatalf("GetLowestClosingPrice: out=%+v err=%v", out, err)
		}
		if out.Close != 10.0 || !out.Date.Equal(day(4)) {
			t.Fatalf("unexpected point: %+v", out)
		}
	})

	t.Run("mean daily price includes zero-open day", func(t *testing.T) {
		out, err := repo.GetMeanDailyPrice(ctx, "TEST4", nil, nil)
		if err != nil {
			t.Fatalf("GetMeanDailyPrice: %v", err)
		}
		if len(out) != 3 {
			t.Fatalf("expected 3 rows, got %d", len(out))
		}
		if out[0].MeanPrice != 10.5 { // (10 + 11) / 2
			t.Fatalf("unexpected first mean: %v", out[0].MeanPrice)
		}
	})

	t.Run("daily variation excludes zero-open day", func(t *testing.T) {
		out, err := repo.GetDailyVariation(ctx, "TEST4", nil, nil)
		if err != nil {
			t.Fatalf("GetDailyVariation: %v", err)
		}
		if len(out) != 2 {
			t.Fatalf("expected 2 rows (zero open excluded), got %d", len(out))
		}
		if out[0].Variation != 10.0 { // ((11 - 10) / 10) * 100
			t.Fatalf("unexpected first variation: %v", out[0].Variation)
		}
	})

	t.Run("consolidated data", func(t *testing.T) {
		out, err := repo.GetConsolidatedData(ctx, "TEST4", nil, nil)
		if err != nil {
			t.Fatalf("GetConsolidatedData: %v", err)
		}
		if len(out) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(out))
		}
	})

	t.Run("upsert counts insertions and updates", func(t *testing.T) {
		records := []models.PriceRecord{
			{Date: day(3), Open: 20.0, High: 22.0, Low: 19.0, Close: 21.0, AdjClose: 21.0, Volume: 500}, // existing
			{Date: day(6), Open: 30.0, High: 33.0, Low: 29.0, Close: 31.0, AdjClose: 31.0, Volume: 600}, // new
		}
		insertions, updates, err := repo.UpsertPrices(ctx, asset.ID, records)
		if err != nil {
			t.Fatalf("UpsertPrices: %v", err)
		}
		if insertions != 1 || updates != 1 {
			t.Fatalf("counts = %d/%d, want 1/1", insertions, updates)
		}

		var open float64
		if err := db.QueryRow(`SELECT open_price FROM prices WHERE asset_id = $1 AND date = $2`, asset.ID, day(3)).Scan(&open); err != nil {
			t.Fatalf("read back: %v", err)
		}
		if open != 20.0 {
			t.Fatalf("row not updated in place: open=%v", open)
		}
	})

	t.Run("delete asset removes prices", func(t *testing.T) {
		found, err := repo.DeleteAsset(ctx, "TEST4")
		if err != nil || !found {
			t.Fatalf("DeleteAsset: found=%v err=%v", found, err)
		}
		var cnt int
		if err := db.QueryRow(`SELECT COUNT(*) FROM prices WHERE asset_id = $1`, asset.ID).Scan(&cnt); err != nil {
			t.Fatalf("count: %v", err)
		}
		if cnt != 0 {
			t.Fatalf("expected 0 price rows after delete, got %d", cnt)
		}

		found, err = repo.DeleteAsset(ctx, "TEST4")
		if err != nil || found {
			t.Fatalf("second delete: found=%v err=%v", found, err)
		}
	})
}
