package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Wage is the amount accrued for a single shift. Amount is a snapshot of the
// worker's daily rate at recording time and is never rewritten.
type Wage struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	WorkerID    uuid.UUID       `gorm:"column:worker_id;type:uuid;not null;index"`
	WorkShiftID uuid.UUID       `gorm:"column:work_shift_id;type:uuid;not null;uniqueIndex"`
	Date        time.Time       `gorm:"column:date;type:date;not null"`
	Amount      decimal.Decimal `gorm:"column:amount;type:numeric(12,2);not null"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
}
