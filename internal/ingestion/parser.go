package ingestion

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/stockpulse/internal/domain/models"
)

const dateLayout = "2006-01-02"

// requiredColumns are the headers every uploaded CSV must carry. Order does
// not matter and extra columns are ignored; only the presence of each
// required column is enforced.
var requiredColumns = []string{
	"Date",
	"Open",
	"High",
	"Low",
	"Close",
	"Adj Close",
	"Volume",
}

// TickerFromFilename derives the ticker from an uploaded file's name:
// everything before the first dot, upper-cased. "aapl.csv" → "AAPL".
func TickerFromFilename(name string) string {
	base := filepath.Base(name)
	if i := strings.IndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	return strings.ToUpper(strings.TrimSpace(base))
}

// ParseCSV reads one CSV stream of daily OHLCV rows into price records.
//
// It fails on:
//   - a header missing any required column
//   - a row with a malformed date, price, or volume
//
// It tolerates:
//   - required columns in any order
//   - extra columns (they are ignored)
func ParseCSV(r io.Reader) ([]models.PriceRecord, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty file")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	// Map column name → position; validate the required set is present.
	colIndex := make(map[string]int, len(header))
	for i, h := range header {
		colIndex[strings.TrimSpace(h)] = i
	}
	var missing []string
	for _, col := range requiredColumns {
		if _, ok := colIndex[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	var records []models.PriceRecord
	lineNumber := 1 // header already read

	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read line after %d: %w", lineNumber, err)
		}
		lineNumber++

		pr, err := recordToPrice(rec, colIndex)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNumber, err)
		}
		records = append(records, pr)
	}

	return records, nil
}

// recordToPrice converts one CSV row into a PriceRecord using the header's
// column positions. All fields are required and strictly typed.
func recordToPrice(rec []string, colIndex map[string]int) (models.PriceRecord, error) {
	var p models.PriceRecord

	field := func(name string) string {
		return strings.TrimSpace(rec[colIndex[name]])
	}

	d, err := time.Parse(dateLayout, field("Date"))
	if err != nil {
		return p, fmt.Errorf("invalid Date: %v", err)
	}
	p.Date = d

	floats := []struct {
		col string
		dst *float64
	}{
		{"Open", &p.Open},
		{"High", &p.High},
		{"Low", &p.Low},
		{"Close", &p.Close},
		{"Adj Close", &p.AdjClose},
	}
	for _, f := range floats {
		v, err := strconv.ParseFloat(field(f.col), 64)
		if err != nil {
			return p, fmt.Errorf("invalid %s: %v", f.col, err)
		}
		*f.dst = v
	}

	vol, err := strconv.ParseInt(field("Volume"), 10, 64)
	if err != nil {
		return p, fmt.Errorf("invalid Volume: %v", err)
	}
	p.Volume = vol

	return p, nil
}
