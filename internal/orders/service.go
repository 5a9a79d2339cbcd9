package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mfekete/backoffice-backend/pkg/db/models"
	"github.com/mfekete/backoffice-backend/pkg/enums"
	pkgerrors "github.com/mfekete/backoffice-backend/pkg/errors"
	"github.com/mfekete/backoffice-backend/pkg/metrics"
	"github.com/mfekete/backoffice-backend/pkg/outbox"
	"github.com/mfekete/backoffice-backend/pkg/pagination"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type outboxPublisher interface {
	Emit(ctx context.Context, tx *gorm.DB, event outbox.DomainEvent) error
}

type service struct {
	repo    Repository
	tx      txRunner
	outbox  outboxPublisher
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewService builds an orders service with the required dependencies.
// Metrics may be nil.
func NewService(repo Repository, tx txRunner, ob outboxPublisher, m *metrics.Metrics) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if ob == nil {
		return nil, fmt.Errorf("outbox publisher required")
	}
	return &service{
		repo:    repo,
		tx:      tx,
		outbox:  ob,
		metrics: m,
		now:     time.Now,
	}, nil
}

// PlaceOrder creates the order, its items and the stock decrements in one
// transaction. The guarded decrement keeps stock from going negative under
// concurrent placement; any failure rolls the whole order back.
func (s *service) PlaceOrder(ctx context.Context, input PlaceOrderInput) (*OrderView, error) {
	if err := validatePlaceOrder(input); err != nil {
		return nil, err
	}

	var created *models.Order
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		order, err := repo.CreateOrder(ctx, &models.Order{
			ID:      uuid.New(),
			StoreID: input.StoreID,
			Total:   input.Total,
		})
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order")
		}

		items := make([]models.OrderItem, 0, len(input.Items))
		for _, item := range input.Items {
			items = append(items, models.OrderItem{
				ID:        uuid.New(),
				OrderID:   order.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     item.Price,
			})
		}
		if err := repo.CreateOrderItems(ctx, items); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order items")
		}

		for _, item := range input.Items {
			affected, err := repo.DecrementStock(ctx, item.ProductID, item.Quantity)
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decrement stock")
			}
			if affected == 0 {
				exists, err := repo.ProductExists(ctx, item.ProductID)
				if err != nil {
					return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check product")
				}
				if !exists {
					return pkgerrors.New(pkgerrors.CodeNotFound, "product not found").
						WithDetails(map[string]any{"product_id": item.ProductID.String()})
				}
				return pkgerrors.New(pkgerrors.CodeStateConflict, "insufficient stock").
					WithDetails(map[string]any{"product_id": item.ProductID.String()})
			}
		}

		event := outbox.DomainEvent{
			EventType:     enums.EventOrderPlaced,
			AggregateType: enums.AggregateOrder,
			AggregateID:   order.ID,
			Data: OrderPlacedEvent{
				OrderID:   order.ID,
				StoreID:   order.StoreID,
				Total:     order.Total,
				ItemCount: len(items),
			},
		}
		if input.ActorUserID != uuid.Nil {
			event.Actor = &outbox.ActorRef{UserID: input.ActorUserID, StoreID: &input.StoreID}
		}
		if err := s.outbox.Emit(ctx, tx, event); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "emit order event")
		}

		order.Items = items
		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncOrdersPlaced(input.StoreID.String())

	view := toView(*created)
	return &view, nil
}

func (s *service) GetOrder(ctx context.Context, id uuid.UUID) (*OrderView, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id required")
	}
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	view := toView(*order)
	return &view, nil
}

func (s *service) ListOrders(ctx context.Context, storeID uuid.UUID, params pagination.Params) (*OrderList, error) {
	if storeID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "store id required")
	}
	list, err := s.repo.ListByStore(ctx, storeID, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}
	return list, nil
}

func (s *service) RevenueToday(ctx context.Context, storeID uuid.UUID) (*RevenueView, error) {
	if storeID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "store id required")
	}

	now := s.now().UTC()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	revenue, count, err := s.repo.SumTotals(ctx, storeID, from, to)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "sum order totals")
	}
	return &RevenueView{
		StoreID:    storeID,
		Date:       from.Format("2006-01-02"),
		Revenue:    revenue,
		OrderCount: count,
	}, nil
}

func validatePlaceOrder(input PlaceOrderInput) error {
	if input.StoreID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "store id required")
	}
	if len(input.Items) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "order requires at least one item")
	}
	for _, item := range input.Items {
		if item.ProductID == uuid.Nil {
			return pkgerrors.New(pkgerrors.CodeValidation, "product id required")
		}
		if item.Quantity <= 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
		}
		if !item.Price.IsPositive() {
			return pkgerrors.New(pkgerrors.CodeValidation, "price must be positive")
		}
	}
	if !input.Total.IsPositive() {
		return pkgerrors.New(pkgerrors.CodeValidation, "total must be positive")
	}
	return nil
}

func toView(order models.Order) OrderView {
	items := make([]OrderItemView, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemView{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}
	return OrderView{
		ID:        order.ID,
		StoreID:   order.StoreID,
		Total:     order.Total,
		Items:     items,
		CreatedAt: order.CreatedAt,
	}
}
