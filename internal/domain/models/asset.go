package models

// Asset is a row in the assets table: a registered ticker symbol.
//
// Tickers are unique at the schema level; an asset is created implicitly
// the first time prices are uploaded for an unseen ticker.
type Asset struct {
	ID     int64  `json:"id"`
	Ticker string `json:"ticker" example:"AAPL"`
}
