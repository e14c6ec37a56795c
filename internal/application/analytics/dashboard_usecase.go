// Package analytics holds read-only reporting use cases for the dashboard.
package analytics

import (
	"fmt"
	"time"

	"github.com/zewarhq/zewar-api/internal/application/dto"
	"github.com/zewarhq/zewar-api/internal/domain/repository"
)

// DashboardUseCase builds the stock-and-money summary shown on the dashboard.
// All figures come from AnalyticsRepository; this never touches the write path.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase builds the use case.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary returns the aggregates for the given period. Zero times mean
// all-time; when only from is set the period runs to now.
func (uc *DashboardUseCase) GetSummary(from, to time.Time) (*dto.DashboardResponse, error) {
	if !from.IsZero() && to.IsZero() {
		to = time.Now()
	}
	summary, err := uc.analyticsRepo.DashboardSummary(from, to)
	if err != nil {
		return nil, fmt.Errorf("dashboard summary: %w", err)
	}
	return &dto.DashboardResponse{
		AvailableUnits: summary.AvailableUnits,
		SoldUnits:      summary.SoldUnits,
		TotalWeight:    summary.TotalWeight,
		TotalPureGold:  summary.TotalPureGold,
		SalesCount:     summary.SalesCount,
		SalesRevenue:   summary.SalesRevenue,
		ExpenseTotal:   summary.ExpenseTotal,
	}, nil
}
