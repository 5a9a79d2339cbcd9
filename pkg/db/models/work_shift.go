package models

import (
	"time"

	"github.com/google/uuid"
)

// WorkShift records that a worker was present at a store on a calendar date.
// At most one wage is attached, created in the same transaction when the
// worker had a daily rate configured.
type WorkShift struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	WorkerID  uuid.UUID `gorm:"column:worker_id;type:uuid;not null;index"`
	StoreID   uuid.UUID `gorm:"column:store_id;type:uuid;not null;index"`
	Date      time.Time `gorm:"column:date;type:date;not null"`
	Note      *string   `gorm:"column:note"`
	Wage      *Wage     `gorm:"foreignKey:WorkShiftID"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
