package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/zewarhq/zewar-api/internal/application/dto"
	"github.com/zewarhq/zewar-api/internal/domain"
	"github.com/zewarhq/zewar-api/internal/domain/entity"
	"github.com/zewarhq/zewar-api/internal/domain/repository"
	"github.com/zewarhq/zewar-api/internal/domain/valuation"
)

// GoldRateUseCase manages the append-only 24k rate series. The series drives
// the per-karat display table only; it never feeds valuation or sale totals.
type GoldRateUseCase struct {
	repo repository.GoldRateRepository
}

// NewGoldRateUseCase builds the use case.
func NewGoldRateUseCase(repo repository.GoldRateRepository) *GoldRateUseCase {
	return &GoldRateUseCase{repo: repo}
}

// Save appends a new rate snapshot. The rate must be positive.
func (uc *GoldRateUseCase) Save(userID string, in dto.SaveGoldRateRequest) (*dto.GoldRateResponse, error) {
	if !in.Rate24K.GreaterThan(decimal.Zero) {
		return nil, domain.ErrValidation
	}
	rate := &entity.GoldRate{
		ID:        uuid.New().String(),
		Rate24K:   in.Rate24K,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(rate); err != nil {
		return nil, err
	}
	return toGoldRateResponse(rate), nil
}

// Latest returns the most recent snapshot with its derived karat table.
// When no rate has ever been saved, Latest is nil and the table empty.
func (uc *GoldRateUseCase) Latest() (*dto.GoldRateTableResponse, error) {
	latest, err := uc.repo.Latest()
	if err != nil {
		return nil, err
	}
	out := &dto.GoldRateTableResponse{Rates: []dto.KaratRateRow{}}
	if latest == nil {
		return out, nil
	}
	out.Latest = toGoldRateResponse(latest)
	for _, kr := range valuation.KaratRates(latest.Rate24K) {
		out.Rates = append(out.Rates, dto.KaratRateRow{Karat: kr.Karat, Rate: kr.Rate})
	}
	return out, nil
}

// History returns the most recent snapshots, newest first.
func (uc *GoldRateUseCase) History(limit int) ([]dto.GoldRateResponse, error) {
	if limit <= 0 {
		limit = 30
	}
	if limit > 100 {
		limit = 100
	}
	list, err := uc.repo.List(limit)
	if err != nil {
		return nil, err
	}
	rates := make([]dto.GoldRateResponse, 0, len(list))
	for _, r := range list {
		rates = append(rates, *toGoldRateResponse(r))
	}
	return rates, nil
}

func toGoldRateResponse(r *entity.GoldRate) *dto.GoldRateResponse {
	if r == nil {
		return nil
	}
	return &dto.GoldRateResponse{
		ID:        r.ID,
		Rate24K:   r.Rate24K,
		CreatedAt: r.CreatedAt,
	}
}
