package dto

import "github.com/shopspring/decimal"

// DashboardResponse aggregate figures for the dashboard screen.
type DashboardResponse struct {
	AvailableUnits int             `json:"available_units"`
	SoldUnits      int             `json:"sold_units"`
	TotalWeight    decimal.Decimal `json:"total_weight"`
	TotalPureGold  decimal.Decimal `json:"total_pure_gold"`
	SalesCount     int             `json:"sales_count"`
	SalesRevenue   decimal.Decimal `json:"sales_revenue"`
	ExpenseTotal   decimal.Decimal `json:"expense_total"`
}
