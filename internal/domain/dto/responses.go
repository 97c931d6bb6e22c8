package dto

// MessageResponse is returned by mutation endpoints (uploads, deletes).
type MessageResponse struct {
	Message string `json:"message" example:"Data uploaded successfully"`
}

// AssetResponse is one entry of the GET /assets/ listing.
type AssetResponse struct {
	Ticker string `json:"ticker" example:"AAPL"`
}

// VolumeResponse is the projection returned by GET /highest-volume/.
type VolumeResponse struct {
	Ticker string `json:"ticker" example:"AAPL"`
	Date   string `json:"date" example:"2024-06-03"`
	Volume int64  `json:"volume" example:"98234200"`
}

// LowestClosingPriceResponse is the projection returned by
// GET /lowest-closing-price/.
type LowestClosingPriceResponse struct {
	Ticker string  `json:"ticker" example:"AAPL"`
	Date   string  `json:"date" example:"2024-06-03"`
	Close  float64 `json:"close" example:"172.51"`
}

// MeanPriceResponse is one entry of the mean-daily-price series.
type MeanPriceResponse struct {
	Ticker    string  `json:"ticker" example:"AAPL"`
	Date      string  `json:"date" example:"2024-06-03"`
	MeanPrice float64 `json:"mean_price" example:"173.02"`
}

// DailyVariationResponse is one entry of the daily-variation series.
type DailyVariationResponse struct {
	Date      string  `json:"date" example:"2024-06-03"`
	Variation float64 `json:"variation" example:"1.25"`
}

// ConsolidatedResponse combines mean price and variation for one day.
type ConsolidatedResponse struct {
	Date      string  `json:"date" example:"2024-06-03"`
	MeanPrice float64 `json:"mean_price" example:"173.02"`
	Variation float64 `json:"variation" example:"1.25"`
}

// PaginatedResponse wraps one page of a list statistic.
//
// Data holds the slice of items for the requested page; Page is the 1-based
// page number echoed back; TotalPages is ceil(total items / page size).
type PaginatedResponse struct {
	Data       any `json:"data"`
	Page       int `json:"page" example:"1"`
	TotalPages int `json:"total_pages" example:"3"`
}
