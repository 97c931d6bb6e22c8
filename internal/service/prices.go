package service

import (
	"context"
	"time"

	"github.com/guttosm/stockpulse/internal/domain/models"
	"github.com/guttosm/stockpulse/internal/storage"
)

// PriceService defines the business operations exposed to the HTTP layer.
// It decouples handlers from data access; the repository stays swappable
// for tests.
type PriceService interface {
	CreatePrices(ctx context.Context, ticker string, records []models.PriceRecord) error
	UpdatePrices(ctx context.Context, ticker string, records []models.PriceRecord) (insertions int, updates int, err error)
	GetAssets(ctx context.Context, ticker string) ([]models.Asset, error)
	DeleteAsset(ctx context.Context, ticker string) (bool, error)
	AssetExists(ctx context.Context, ticker string) (bool, error)
	GetHighestVolume(ctx context.Context, ticker string, startDate, endDate *time.Time) (*models.VolumePoint, error)
	GetLowestClosingPrice(ctx context.Context, ticker string, startDate, endDate *time.Time) (*models.ClosingPoint, error)
	GetMeanDailyPrice(ctx context.Context, ticker string, startDate, endDate *time.Time) ([]models.MeanPrice, error)
	GetDailyVariation(ctx context.Context, ticker string, startDate, endDate *time.Time) ([]models.Variation, error)
	GetConsolidatedData(ctx context.Context, ticker string, startDate, endDate *time.Time) ([]models.Consolidated, error)
}

type priceService struct {
	repo storage.PricesRepository
}

func NewPriceService(repo storage.PricesRepository) PriceService {
	return &priceService{repo: repo}
}

// CreatePrices resolves (or creates) the asset and inserts one price row
// per record unconditionally. Re-uploading the same file duplicates rows;
// that is the documented contract of the insert path.
func (s *priceService) CreatePrices(ctx context.Context, ticker string, records []models.PriceRecord) error {
	asset, err := s.repo.GetOrCreateAsset(ctx, ticker)
	if err != nil {
		return err
	}
	return s.repo.InsertPricesBatch(ctx, asset.ID, records)
}

// UpdatePrices resolves (or creates) the asset and merges records by
// (asset, date), returning insertion and update counts.
func (s *priceService) UpdatePrices(ctx context.Context, ticker string, records []models.PriceRecord) (int, int, error) {
	asset, err := s.repo.GetOrCreateAsset(ctx, ticker)
	if err != nil {
		return 0, 0, err
	}
	return s.repo.UpsertPrices(ctx, asset.ID, records)
}

func (s *priceService) GetAssets(ctx context.Context, ticker string) ([]models.Asset, error) {
	return s.repo.GetAssets(ctx, ticker)
}

func (s *priceService) DeleteAsset(ctx context.Context, ticker string) (bool, error) {
	return s.repo.DeleteAsset(ctx, ticker)
}

func (s *priceService) AssetExists(ctx context.Context, ticker string) (bool, error) {
	asset, err := s.repo.AssetByTicker(ctx, ticker)
	if err != nil {
		return false, err
	}
	return asset != nil, nil
}

func (s *priceService) GetHighestVolume(ctx context.Context, ticker string, startDate, endDate *time.Time) (*models.VolumePoint, error) {
	return s.repo.GetHighestVolume(ctx, ticker, startDate, endDate)
}

func (s *priceService) GetLowestClosingPrice(ctx context.Context, ticker string, startDate, endDate *time.Time) (*models.ClosingPoint, error) {
	return s.repo.GetLowestClosingPrice(ctx, ticker, startDate, endDate)
}

func (s *priceService) GetMeanDailyPrice(ctx context.Context, ticker string, startDate, endDate *time.Time) ([]models.MeanPrice, error) {
	return s.repo.GetMeanDailyPrice(ctx, ticker, startDate, endDate)
}

func (s *priceService) GetDailyVariation(ctx context.Context, ticker string, startDate, endDate *time.Time) ([]models.Variation, error) {
	return s.repo.GetDailyVariation(ctx, ticker, startDate, endDate)
}

func (s *priceService) GetConsolidatedData(ctx context.Context, ticker string, startDate, endDate *time.Time) ([]models.Consolidated, error) {
	return s.repo.GetConsolidatedData(ctx, ticker, startDate, endDate)
}
