package incomes

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateIncomeInput carries the fields accepted by POST /incomes.
type CreateIncomeInput struct {
	StoreID uuid.UUID
	Amount  decimal.Decimal
	Date    time.Time
}

// UpdateIncomeInput carries the optional fields accepted by PUT /incomes/{id}.
type UpdateIncomeInput struct {
	Amount *decimal.Decimal
	Date   *time.Time
}

// IncomeView is the representation returned to clients.
type IncomeView struct {
	ID        uuid.UUID       `json:"id"`
	StoreID   uuid.UUID       `json:"store_id"`
	Amount    decimal.Decimal `json:"amount"`
	Date      time.Time       `json:"date"`
	CreatedAt time.Time       `json:"created_at"`
}

// IncomeSummary is the aggregate returned by GET /incomes/summary.
type IncomeSummary struct {
	StoreID uuid.UUID       `json:"store_id"`
	Total   decimal.Decimal `json:"total"`
	Count   int64           `json:"count"`
}
