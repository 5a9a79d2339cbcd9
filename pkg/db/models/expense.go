package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense is a manually recorded cost entry for a store.
type Expense struct {
	ID        uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	StoreID   uuid.UUID       `gorm:"column:store_id;type:uuid;not null;index"`
	Amount    decimal.Decimal `gorm:"column:amount;type:numeric(12,2);not null"`
	Date      time.Time       `gorm:"column:date;not null;autoCreateTime"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
}
