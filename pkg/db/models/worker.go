package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Worker is an employee who can take shifts at one or more stores. DailyWage
// is the current daily rate; wage rows snapshot it per shift.
type Worker struct {
	ID        uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string           `gorm:"column:name;not null"`
	DailyWage *decimal.Decimal `gorm:"column:daily_wage;type:numeric(12,2)"`
	Stores    []Store          `gorm:"many2many:store_workers"`
	CreatedAt time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}
