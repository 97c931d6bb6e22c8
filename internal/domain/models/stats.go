package models

import "time"

// VolumePoint is the result of the highest-volume query: the single row
// whose traded volume is the maximum over the selected range.
type VolumePoint struct {
	Ticker string
	Date   time.Time
	Volume int64
}

// ClosingPoint is the result of the lowest-closing-price query.
type ClosingPoint struct {
	Ticker string
	Date   time.Time
	Close  float64
}

// MeanPrice is one entry of the mean-daily-price series:
// (open + close) / 2 for a single trading day.
type MeanPrice struct {
	Ticker    string
	Date      time.Time
	MeanPrice float64
}

// Variation is one entry of the daily-variation series:
// ((close - open) / open) * 100 for a single trading day.
// Days with a zero opening price are excluded from the series.
type Variation struct {
	Date      time.Time
	Variation float64
}

// Consolidated combines mean price and variation for a single trading day.
type Consolidated struct {
	Date      time.Time
	MeanPrice float64
	Variation float64
}
