package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/zewarhq/zewar-api/internal/domain/entity"
	"github.com/zewarhq/zewar-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo read-only aggregate queries for the dashboard.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository builds the adapter. Pass pool or tx (Querier).
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// DashboardSummary aggregates stock counts and weights over all inventory, and
// sales/expense totals over the given period. Zero times mean unbounded.
func (r *AnalyticsRepo) DashboardSummary(from, to time.Time) (*repository.DashboardSummary, error) {
	ctx := context.Background()
	summary := &repository.DashboardSummary{}

	// Stock figures: weights are summed over available units only.
	stockQuery := `
		SELECT
			COUNT(*) FILTER (WHERE status = $1),
			COUNT(*) FILTER (WHERE status = $2),
			COALESCE(SUM(total_weight) FILTER (WHERE status = $1), 0),
			COALESCE(SUM(pure_gold) FILTER (WHERE status = $1), 0)
		FROM inventory`
	err := r.q.QueryRow(ctx, stockQuery, entity.StatusAvailable, entity.StatusSold).Scan(
		&summary.AvailableUnits, &summary.SoldUnits, &summary.TotalWeight, &summary.TotalPureGold,
	)
	if err != nil {
		return nil, fmt.Errorf("stock summary: %w", err)
	}

	salesQuery := `
		SELECT COUNT(*), COALESCE(SUM(total_amount), 0)
		FROM sales
		WHERE ($1::timestamptz IS NULL OR created_at >= $1)
		  AND ($2::timestamptz IS NULL OR created_at <= $2)`
	err = r.q.QueryRow(ctx, salesQuery, nullIfZeroTime(from), nullIfZeroTime(to)).Scan(
		&summary.SalesCount, &summary.SalesRevenue,
	)
	if err != nil {
		return nil, fmt.Errorf("sales summary: %w", err)
	}

	expenseQuery := `
		SELECT COALESCE(SUM(amount), 0)
		FROM expenses
		WHERE ($1::date IS NULL OR expense_date >= $1)
		  AND ($2::date IS NULL OR expense_date <= $2)`
	err = r.q.QueryRow(ctx, expenseQuery, nullIfZeroTime(from), nullIfZeroTime(to)).Scan(
		&summary.ExpenseTotal,
	)
	if err != nil {
		return nil, fmt.Errorf("expense summary: %w", err)
	}

	return summary, nil
}

func nullIfZeroTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
