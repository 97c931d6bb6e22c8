package models

import "time"

// PriceRecord is one parsed daily OHLCV row from an uploaded CSV file,
// before it is attached to an asset.
//
// Column order in the source file:
//  1. Date
//  2. Open
//  3. High
//  4. Low
//  5. Close
//  6. Adj Close
//  7. Volume
type PriceRecord struct {
	Date     time.Time
	Open     float64
	High     float64
	Low      float64
	Close    float64
	AdjClose float64
	Volume   int64
}

// Price is a persisted daily price row, owned by one asset.
type Price struct {
	ID       int64
	AssetID  int64
	Date     time.Time
	Open     float64
	High     float64
	Low      float64
	Close    float64
	AdjClose float64
	Volume   int64
}
