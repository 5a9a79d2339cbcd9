package orders

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PlaceOrderItemInput is one line of a new order. Price is the point-in-time
// unit price supplied by the caller.
type PlaceOrderItemInput struct {
	ProductID uuid.UUID
	Quantity  int
	Price     decimal.Decimal
}

// PlaceOrderInput carries everything needed to place an order atomically.
type PlaceOrderInput struct {
	StoreID     uuid.UUID
	Items       []PlaceOrderItemInput
	Total       decimal.Decimal
	ActorUserID uuid.UUID
}

// OrderItemView is the representation of one order line.
type OrderItemView struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// OrderView is the representation returned to clients.
type OrderView struct {
	ID        uuid.UUID       `json:"id"`
	StoreID   uuid.UUID       `json:"store_id"`
	Total     decimal.Decimal `json:"total"`
	Items     []OrderItemView `json:"items"`
	CreatedAt time.Time       `json:"created_at"`
}

// OrderList wraps the paginated orders plus the next page cursor.
type OrderList struct {
	Orders     []OrderView `json:"orders"`
	NextCursor string      `json:"next_cursor,omitempty"`
}

// RevenueView is the aggregate returned by GET /orders/revenue/today.
type RevenueView struct {
	StoreID    uuid.UUID       `json:"store_id"`
	Date       string          `json:"date"`
	Revenue    decimal.Decimal `json:"revenue"`
	OrderCount int64           `json:"order_count"`
}

// OrderPlacedEvent is the outbox payload for order.placed.
type OrderPlacedEvent struct {
	OrderID   uuid.UUID       `json:"order_id"`
	StoreID   uuid.UUID       `json:"store_id"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"item_count"`
}
