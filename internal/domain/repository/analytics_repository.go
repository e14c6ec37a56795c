package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardSummary aggregates stock and money figures for the dashboard.
type DashboardSummary struct {
	AvailableUnits int
	SoldUnits      int
	TotalWeight    decimal.Decimal // grams on hand (available units)
	TotalPureGold  decimal.Decimal // grams of pure gold on hand
	SalesCount     int
	SalesRevenue   decimal.Decimal
	ExpenseTotal   decimal.Decimal
}

// AnalyticsRepository serves read-only aggregates. Zero times mean unbounded.
type AnalyticsRepository interface {
	DashboardSummary(from, to time.Time) (*DashboardSummary, error)
}
