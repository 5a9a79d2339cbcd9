package dashboard

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DashboardView is the aggregate snapshot returned by GET /dashboard.
type DashboardView struct {
	StoreID       uuid.UUID       `json:"store_id"`
	Date          string          `json:"date"`
	RevenueToday  decimal.Decimal `json:"revenue_today"`
	IncomeTotal   decimal.Decimal `json:"income_total"`
	ExpenseTotal  decimal.Decimal `json:"expense_total"`
	LowStockCount int64           `json:"low_stock_count"`
}
