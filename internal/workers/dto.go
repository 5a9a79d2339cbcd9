package workers

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateWorkerInput carries the fields accepted by POST /workers.
type CreateWorkerInput struct {
	Name      string
	DailyWage *decimal.Decimal
	StoreIDs  []uuid.UUID
}

// WorkerView is the representation returned to clients.
type WorkerView struct {
	ID        uuid.UUID        `json:"id"`
	Name      string           `json:"name"`
	DailyWage *decimal.Decimal `json:"daily_wage,omitempty"`
	StoreIDs  []uuid.UUID      `json:"store_ids"`
	CreatedAt time.Time        `json:"created_at"`
}

// WageView is one accrued wage row.
type WageView struct {
	ID          uuid.UUID       `json:"id"`
	WorkerID    uuid.UUID       `json:"worker_id"`
	WorkShiftID uuid.UUID       `json:"work_shift_id"`
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
}
