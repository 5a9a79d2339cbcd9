package shifts

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecordShiftInput carries everything needed to record a shift atomically.
type RecordShiftInput struct {
	WorkerID    uuid.UUID
	StoreID     uuid.UUID
	Date        time.Time
	Note        *string
	ActorUserID uuid.UUID
}

// ShiftFilters describe the inputs supported by the shift listing.
type ShiftFilters struct {
	StoreID  *uuid.UUID
	WorkerID *uuid.UUID
	Date     *time.Time
}

// WageSnapshot is the wage attached to a shift, when one was accrued.
type WageSnapshot struct {
	ID     uuid.UUID       `json:"id"`
	Amount decimal.Decimal `json:"amount"`
}

// ShiftView is the representation returned to clients.
type ShiftView struct {
	ID        uuid.UUID     `json:"id"`
	WorkerID  uuid.UUID     `json:"worker_id"`
	StoreID   uuid.UUID     `json:"store_id"`
	Date      time.Time     `json:"date"`
	Note      *string       `json:"note,omitempty"`
	Wage      *WageSnapshot `json:"wage,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

// ShiftRecordedEvent is the outbox payload for shift.recorded.
type ShiftRecordedEvent struct {
	ShiftID    uuid.UUID        `json:"shift_id"`
	WorkerID   uuid.UUID        `json:"worker_id"`
	StoreID    uuid.UUID        `json:"store_id"`
	Date       string           `json:"date"`
	WageAmount *decimal.Decimal `json:"wage_amount,omitempty"`
}

// ShiftDeletedEvent is the outbox payload for shift.deleted.
type ShiftDeletedEvent struct {
	ShiftID uuid.UUID `json:"shift_id"`
}
