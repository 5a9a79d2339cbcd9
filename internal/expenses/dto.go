package expenses

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateExpenseInput carries the fields accepted by POST /expenses. A zero
// Date means "now".
type CreateExpenseInput struct {
	StoreID uuid.UUID
	Amount  decimal.Decimal
	Date    time.Time
}

// ExpenseView is the representation returned to clients.
type ExpenseView struct {
	ID        uuid.UUID       `json:"id"`
	StoreID   uuid.UUID       `json:"store_id"`
	Amount    decimal.Decimal `json:"amount"`
	Date      time.Time       `json:"date"`
	CreatedAt time.Time       `json:"created_at"`
}
