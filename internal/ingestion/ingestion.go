package ingestion

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/stockpulse/internal/domain/models"
	"github.com/guttosm/stockpulse/internal/logger"
	"github.com/guttosm/stockpulse/internal/service"
	"github.com/guttosm/stockpulse/internal/storage"
)

const maxFileParallel = 8

// svcCtor is an indirection for creating the service; tests can override it.
var svcCtor = func(db *sql.DB) service.PriceService {
	return service.NewPriceService(storage.NewPricesRepository(db))
}

// ProcessDirectory bulk-loads every *.csv file in dir. The ticker for each
// file comes from its name ("AAPL.csv" → AAPL), same as the upload
// endpoints.
//
// Behavior:
//   - Files are processed concurrently, capped at min(maxFileParallel,
//     NumCPU) or the provided parallel override.
//   - With upsert=false each file's rows are inserted unconditionally;
//     with upsert=true rows merge by (asset, date) and the totals are
//     logged at the end.
//   - The first failing file cancels the remaining ones and its error is
//     returned.
func ProcessDirectory(ctx context.Context, dir string, db *sql.DB, parallel int, upsert bool) error {
	svc := svcCtor(db)

	files, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return fmt.Errorf("list csv files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no .csv files found in %s", dir)
	}

	maxParallel := maxFileParallel
	if parallel > 0 {
		if parallel > maxFileParallel {
			parallel = maxFileParallel
		}
		maxParallel = parallel
	} else if c := runtime.NumCPU(); c < maxParallel {
		maxParallel = c
	}

	logger.L().Info().Int("files", len(files)).Str("dir", dir).Int("max_parallel", maxParallel).Bool("upsert", upsert).Msg("bulk load start")

	var totalInsertions, totalUpdates atomic.Int64

	// errgroup cancels siblings on first error.
	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, maxParallel)

	for i, file := range files {
		idx := i
		f := file
		sem <- struct{}{}

		g.Go(func() error {
			defer func() { <-sem }()
			start := time.Now()
			base := filepath.Base(f)
			ticker := TickerFromFilename(base)
			logger.L().Info().Int("idx", idx+1).Int("total", len(files)).Str("file", base).Str("ticker", ticker).Msg("file start")

			records, err := parseFile(f)
			if err != nil {
				logger.L().Error().Str("file", base).Err(err).Msg("file failed")
				return fmt.Errorf("file %s: %w", f, err)
			}

			if upsert {
				ins, upd, err := svc.UpdatePrices(gctx, ticker, records)
				if err != nil {
					logger.L().Error().Str("file", base).Err(err).Msg("upsert failed")
					return fmt.Errorf("file %s: %w", f, err)
				}
				totalInsertions.Add(int64(ins))
				totalUpdates.Add(int64(upd))
			} else {
				if err := svc.CreatePrices(gctx, ticker, records); err != nil {
					logger.L().Error().Str("file", base).Err(err).Msg("insert failed")
					return fmt.Errorf("file %s: %w", f, err)
				}
				totalInsertions.Add(int64(len(records)))
			}

			logger.L().Info().Int("idx", idx+1).Int("total", len(files)).Str("file", base).Int("rows", len(records)).Dur("elapsed", time.Since(start)).Msg("file done")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	logger.L().Info().
		Int64("insertions", totalInsertions.Load()).
		Int64("updates", totalUpdates.Load()).
		Msg("bulk load completed")
	return nil
}

func parseFile(path string) ([]models.PriceRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()
	return ParseCSV(f)
}
