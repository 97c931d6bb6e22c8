package api

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/stockpulse/internal/domain/dto"
	"github.com/guttosm/stockpulse/internal/domain/models"
	"github.com/guttosm/stockpulse/internal/ingestion"
	"github.com/guttosm/stockpulse/internal/service"
)

const dateLayout = "2006-01-02"

// Handler provides HTTP handlers for asset management and statistics
// endpoints.
//
// Responsibilities:
//   - Validate incoming query parameters and uploads
//   - Interact with the service layer for data access
//   - Translate results into response DTOs
//   - Return structured JSON responses with appropriate HTTP status codes
type Handler struct {
	svc service.PriceService
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.PriceService) *Handler {
	return &Handler{svc: svc}
}

// parseDateRange reads the optional start_date / end_date query parameters
// (YYYY-MM-DD) and runs the sanity checks before any query executes:
// neither date may be in the future and start_date must not exceed
// end_date. On failure it writes a 400 response and returns ok=false.
func parseDateRange(c *gin.Context) (startDate, endDate *time.Time, ok bool) {
	parse := func(param string) (*time.Time, bool) {
		s := c.Query(param)
		if s == "" {
			return nil, true
		}
		d, err := time.Parse(dateLayout, s)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(fmt.Sprintf("invalid %s format, expected YYYY-MM-DD", param), err))
			return nil, false
		}
		return &d, true
	}

	startDate, ok = parse("start_date")
	if !ok {
		return nil, nil, false
	}
	endDate, ok = parse("end_date")
	if !ok {
		return nil, nil, false
	}

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if startDate != nil && startDate.After(today) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("start_date must be less than or equal to today", nil))
		return nil, nil, false
	}
	if endDate != nil && endDate.After(today) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("end_date must be less than or equal to today", nil))
		return nil, nil, false
	}
	if startDate != nil && endDate != nil && startDate.After(*endDate) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("start_date must be less than or equal to end_date", nil))
		return nil, nil, false
	}

	return startDate, endDate, true
}

// checkTicker verifies that a non-empty ticker is registered. Unknown
// tickers fail with 400 before the statistic query runs.
func (h *Handler) checkTicker(c *gin.Context, ticker string) bool {
	exists, err := h.svc.AssetExists(c.Request.Context(), ticker)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to check ticker", err))
		return false
	}
	if !exists {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("ticker isn't on the database", nil))
		return false
	}
	return true
}

// parsePagination reads page (default 1) and page_size (default 10), both
// required to be >= 1.
func parsePagination(c *gin.Context) (page, pageSize int, ok bool) {
	parse := func(param string, def int) (int, bool) {
		s := c.Query(param)
		if s == "" {
			return def, true
		}
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(fmt.Sprintf("%s must be an integer greater than or equal to 1", param), err))
			return 0, false
		}
		return v, true
	}

	page, ok = parse("page", 1)
	if !ok {
		return 0, 0, false
	}
	pageSize, ok = parse("page_size", 10)
	if !ok {
		return 0, 0, false
	}
	return page, pageSize, true
}

// forEachUpload opens every file of the multipart "files" field in order
// and passes its parsed records to fn. Processing stops at the first
// failing file: any parse or persistence error surfaces as a 500 naming
// the file (column failures included).
func (h *Handler) forEachUpload(c *gin.Context, fn func(ticker string, records []models.PriceRecord) error) bool {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid multipart form", err))
		return false
	}
	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("at least one file is required", nil))
		return false
	}

	for _, fh := range files {
		if err := h.processUpload(fh, fn); err != nil {
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(fmt.Sprintf("Error processing file %s", fh.Filename), err))
			return false
		}
	}
	return true
}

func (h *Handler) processUpload(fh *multipart.FileHeader, fn func(ticker string, records []models.PriceRecord) error) error {
	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	records, err := ingestion.ParseCSV(f)
	if err != nil {
		return err
	}
	return fn(ingestion.TickerFromFilename(fh.Filename), records)
}

// UploadPrices godoc
// @Summary      Upload price CSV files (insert)
// @Description  Inserts one price row per CSV row. Re-uploading an already stored ticker duplicates its rows; use PUT /assets/ for merge semantics.
// @Tags         manage-data
// @Accept       multipart/form-data
// @Produce      json
// @Param        files  formData  file  true  "CSV files named <TICKER>.csv with columns Date, Open, High, Low, Close, Adj Close, Volume"
// @Success      200  {object}  dto.MessageResponse    "Success"
// @Failure      400  {object}  dto.ErrorResponse      "Bad Request"
// @Failure      500  {object}  dto.ErrorResponse      "Processing Failure"
// @Router       /assets/ [post]
func (h *Handler) UploadPrices(c *gin.Context) {
	ok := h.forEachUpload(c, func(ticker string, records []models.PriceRecord) error {
		return h.svc.CreatePrices(c.Request.Context(), ticker, records)
	})
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Data uploaded successfully"})
}

// MergePrices godoc
// @Summary      Upload price CSV files (upsert)
// @Description  Merges CSV rows by (ticker, date): existing days are overwritten, new days inserted. Returns total insertions and updates across all files.
// @Tags         manage-data
// @Accept       multipart/form-data
// @Produce      json
// @Param        files  formData  file  true  "CSV files named <TICKER>.csv"
// @Success      200  {object}  dto.MessageResponse    "Success"
// @Failure      400  {object}  dto.ErrorResponse      "Bad Request"
// @Failure      500  {object}  dto.ErrorResponse      "Processing Failure"
// @Router       /assets/ [put]
func (h *Handler) MergePrices(c *gin.Context) {
	var totalInsertions, totalUpdates int
	ok := h.forEachUpload(c, func(ticker string, records []models.PriceRecord) error {
		insertions, updates, err := h.svc.UpdatePrices(c.Request.Context(), ticker, records)
		if err != nil {
			return err
		}
		totalInsertions += insertions
		totalUpdates += updates
		return nil
	})
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: fmt.Sprintf("Data uploaded successfully: %d insertions, %d updates", totalInsertions, totalUpdates),
	})
}

// ListAssets godoc
// @Summary      List assets
// @Description  Lists all registered tickers, optionally filtered by one ticker (case-insensitive).
// @Tags         manage-data
// @Produce      json
// @Param        ticker  query  string  false  "Ticker filter" example(AAPL)
// @Success      200  {array}   dto.AssetResponse
// @Failure      404  {object}  dto.ErrorResponse  "Not Found"
// @Failure      500  {object}  dto.ErrorResponse  "Internal Error"
// @Router       /assets/ [get]
func (h *Handler) ListAssets(c *gin.Context) {
	ticker := strings.ToUpper(strings.TrimSpace(c.Query("ticker")))

	assets, err := h.svc.GetAssets(c.Request.Context(), ticker)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch assets", err))
		return
	}
	if len(assets) == 0 {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("No assets found", nil))
		return
	}

	resp := make([]dto.AssetResponse, 0, len(assets))
	for _, a := range assets {
		resp = append(resp, dto.AssetResponse{Ticker: a.Ticker})
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteAsset godoc
// @Summary      Delete an asset
// @Description  Removes the asset and all its price rows in one transaction.
// @Tags         manage-data
// @Produce      json
// @Param        ticker  path  string  true  "Ticker" example(AAPL)
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse  "Not Found"
// @Failure      500  {object}  dto.ErrorResponse  "Internal Error"
// @Router       /assets/{ticker} [delete]
func (h *Handler) DeleteAsset(c *gin.Context) {
	ticker := strings.ToUpper(strings.TrimSpace(c.Param("ticker")))

	found, err := h.svc.DeleteAsset(c.Request.Context(), ticker)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to delete asset", err))
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Asset not found", nil))
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Asset deleted successfully"})
}

// HighestVolume godoc
// @Summary      Highest traded volume
// @Description  Returns the day with the highest traded volume, optionally filtered by ticker and inclusive date range.
// @Tags         statistics
// @Produce      json
// @Param        ticker      query  string  false  "Ticker" example(AAPL)
// @Param        start_date  query  string  false  "Start date YYYY-MM-DD" example(2024-01-02)
// @Param        end_date    query  string  false  "End date YYYY-MM-DD" example(2024-06-28)
// @Success      200  {object}  dto.VolumeResponse
// @Failure      400  {object}  dto.ErrorResponse  "Bad Request"
// @Failure      404  {object}  dto.ErrorResponse  "Not Found"
// @Failure      500  {object}  dto.ErrorResponse  "Internal Error"
// @Router       /highest-volume/ [get]
func (h *Handler) HighestVolume(c *gin.Context) {
	ticker := strings.ToUpper(strings.TrimSpace(c.Query("ticker")))
	if ticker != "" && !h.checkTicker(c, ticker) {
		return
	}
	startDate, endDate, ok := parseDateRange(c)
	if !ok {
		return
	}

	point, err := h.svc.GetHighestVolume(c.Request.Context(), ticker, startDate, endDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch highest volume", err))
		return
	}
	if point == nil {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("No data found", nil))
		return
	}

	c.JSON(http.StatusOK, dto.VolumeResponse{
		Ticker: point.Ticker,
		Date:   point.Date.Format(dateLayout),
		Volume: point.Volume,
	})
}

// LowestClosingPrice godoc
// @Summary      Lowest closing price
// @Description  Returns the day with the lowest closing price, optionally filtered by ticker and inclusive date range.
// @Tags         statistics
// @Produce      json
// @Param        ticker      query  string  false  "Ticker" example(AAPL)
// @Param        start_date  query  string  false  "Start date YYYY-MM-DD" example(2024-01-02)
// @Param        end_date    query  string  false  "End date YYYY-MM-DD" example(2024-06-28)
// @Success      200  {object}  dto.LowestClosingPriceResponse
// @Failure      400  {object}  dto.ErrorResponse  "Bad Request"
// @Failure      404  {object}  dto.ErrorResponse  "Not Found"
// @Failure      500  {object}  dto.ErrorResponse  "Internal Error"
// @Router       /lowest-closing-price/ [get]
func (h *Handler) LowestClosingPrice(c *gin.Context) {
	ticker := strings.ToUpper(strings.TrimSpace(c.Query("ticker")))
	if ticker != "" && !h.checkTicker(c, ticker) {
		return
	}
	startDate, endDate, ok := parseDateRange(c)
	if !ok {
		return
	}

	point, err := h.svc.GetLowestClosingPrice(c.Request.Context(), ticker, startDate, endDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch lowest closing price", err))
		return
	}
	if point == nil {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("No data found", nil))
		return
	}

	c.JSON(http.StatusOK, dto.LowestClosingPriceResponse{
		Ticker: point.Ticker,
		Date:   point.Date.Format(dateLayout),
		Close:  point.Close,
	})
}

// requireTicker extracts the mandatory ticker parameter for the paginated
// statistics and validates it exists.
func (h *Handler) requireTicker(c *gin.Context) (string, bool) {
	ticker := strings.ToUpper(strings.TrimSpace(c.Query("ticker")))
	if ticker == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("ticker is required", nil))
		return "", false
	}
	if !h.checkTicker(c, ticker) {
		return "", false
	}
	return ticker, true
}

// writePage paginates an already-materialized DTO slice and writes the
// envelope, mapping a page past the end to 400.
func writePage[T any](c *gin.Context, items []T, page, pageSize int) {
	pageItems, totalPages, err := service.Paginate(items, page, pageSize)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error(), nil))
		return
	}
	c.JSON(http.StatusOK, dto.PaginatedResponse{Data: pageItems, Page: page, TotalPages: totalPages})
}

// MeanDailyPrice godoc
// @Summary      Mean daily price
// @Description  Returns (open + close) / 2 per trading day for a ticker, paginated.
// @Tags         statistics
// @Produce      json
// @Param        ticker      query  string  true   "Ticker" example(AAPL)
// @Param        start_date  query  string  false  "Start date YYYY-MM-DD"
// @Param        end_date    query  string  false  "End date YYYY-MM-DD"
// @Param        page        query  int     false  "Page (1-based)" default(1)
// @Param        page_size   query  int     false  "Page size" default(10)
// @Success      200  {object}  dto.PaginatedResponse
// @Failure      400  {object}  dto.ErrorResponse  "Bad Request"
// @Failure      404  {object}  dto.ErrorResponse  "Not Found"
// @Failure      500  {object}  dto.ErrorResponse  "Internal Error"
// @Router       /mean-daily-price/ [get]
func (h *Handler) MeanDailyPrice(c *gin.Context) {
	ticker, ok := h.requireTicker(c)
	if !ok {
		return
	}
	startDate, endDate, ok := parseDateRange(c)
	if !ok {
		return
	}
	page, pageSize, ok := parsePagination(c)
	if !ok {
		return
	}

	prices, err := h.svc.GetMeanDailyPrice(c.Request.Context(), ticker, startDate, endDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch mean daily prices", err))
		return
	}
	if len(prices) == 0 {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("No data found", nil))
		return
	}

	items := make([]dto.MeanPriceResponse, 0, len(prices))
	for _, p := range prices {
		items = append(items, dto.MeanPriceResponse{
			Ticker:    p.Ticker,
			Date:      p.Date.Format(dateLayout),
			MeanPrice: p.MeanPrice,
		})
	}
	writePage(c, items, page, pageSize)
}

// DailyVariation godoc
// @Summary      Daily variation
// @Description  Returns ((close - open) / open) * 100 per trading day for a ticker, paginated. Days with a zero opening price are excluded.
// @Tags         statistics
// @Produce      json
// @Param        ticker      query  string  true   "Ticker" example(AAPL)
// @Param        start_date  query  string  false  "Start date YYYY-MM-DD"
// @Param        end_date    query  string  false  "End date YYYY-MM-DD"
// @Param        page        query  int     false  "Page (1-based)" default(1)
// @Param        page_size   query  int     false  "Page size" default(10)
// @Success      200  {object}  dto.PaginatedResponse
// @Failure      400  {object}  dto.ErrorResponse  "Bad Request"
// @Failure      404  {object}  dto.ErrorResponse  "Not Found"
// @Failure      500  {object}  dto.ErrorResponse  "Internal Error"
// @Router       /daily-variation/ [get]
func (h *Handler) DailyVariation(c *gin.Context) {
	ticker, ok := h.requireTicker(c)
	if !ok {
		return
	}
	startDate, endDate, ok := parseDateRange(c)
	if !ok {
		return
	}
	page, pageSize, ok := parsePagination(c)
	if !ok {
		return
	}

	variations, err := h.svc.GetDailyVariation(c.Request.Context(), ticker, startDate, endDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch daily variations", err))
		return
	}
	if len(variations) == 0 {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("No data found", nil))
		return
	}

	items := make([]dto.DailyVariationResponse, 0, len(variations))
	for _, v := range variations {
		items = append(items, dto.DailyVariationResponse{
			Date:      v.Date.Format(dateLayout),
			Variation: v.Variation,
		})
	}
	writePage(c, items, page, pageSize)
}

// ConsolidatedData godoc
// @Summary      Consolidated data
// @Description  Returns mean price and variation per trading day for a ticker, paginated.
// @Tags         statistics
// @Produce      json
// @Param        ticker      query  string  true   "Ticker" example(AAPL)
// @Param        start_date  query  string  false  "Start date YYYY-MM-DD"
// @Param        end_date    query  string  false  "End date YYYY-MM-DD"
// @Param        page        query  int     false  "Page (1-based)" default(1)
// @Param        page_size   query  int     false  "Page size" default(10)
// @Success      200  {object}  dto.PaginatedResponse
// @Failure      400  {object}  dto.ErrorResponse  "Bad Request"
// @Failure      404  {object}  dto.ErrorResponse  "Not Found"
// @Failure      500  {object}  dto.ErrorResponse  "Internal Error"
// @Router       /consolidated-data/ [get]
func (h *Handler) ConsolidatedData(c *gin.Context) {
	ticker, ok := h.requireTicker(c)
	if !ok {
		return
	}
	startDate, endDate, ok := parseDateRange(c)
	if !ok {
		return
	}
	page, pageSize, ok := parsePagination(c)
	if !ok {
		return
	}

	data, err := h.svc.GetConsolidatedData(c.Request.Context(), ticker, startDate, endDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch consolidated data", err))
		return
	}
	if len(data) == 0 {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("No data found", nil))
		return
	}

	items := make([]dto.ConsolidatedResponse, 0, len(data))
	for _, d := range data {
		items = append(items, dto.ConsolidatedResponse{
			Date:      d.Date.Format(dateLayout),
			MeanPrice: d.MeanPrice,
			Variation: d.Variation,
		})
	}
	writePage(c, items, page, pageSize)
}
