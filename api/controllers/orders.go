package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/mfekete/backoffice-backend/api/responses"
	"github.com/mfekete/backoffice-backend/api/validators"
	ordersvc "github.com/mfekete/backoffice-backend/internal/orders"
	pkgerrors "github.com/mfekete/backoffice-backend/pkg/errors"
	"github.com/mfekete/backoffice-backend/pkg/logger"
)

type placeOrderItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
	Price     string `json:"price" validate:"required"`
}

type placeOrderRequest struct {
	StoreID string                  `json:"store_id" validate:"required,uuid"`
	Total   string                  `json:"total" validate:"required"`
	Items   []placeOrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// PlaceOrder records a sale, decrementing stock atomically.
func PlaceOrder(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actorID, err := actorUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload placeOrderRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toInput(actorID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.PlaceOrder(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}

// GetOrder returns one order with its line items.
func GetOrder(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := pathUUID(r, "orderId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.GetOrder(r.Context(), orderID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, order)
	}
}

// ListOrders returns a store's order page, newest first.
func ListOrders(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storeID, err := requiredQueryUUID(r, "store_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		params, err := paginationParams(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, err := svc.ListOrders(r.Context(), storeID, params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, list)
	}
}

// RevenueToday returns the store's order revenue for the current UTC day.
func RevenueToday(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storeID, err := requiredQueryUUID(r, "store_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		revenue, err := svc.RevenueToday(r.Context(), storeID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, revenue)
	}
}

func (p placeOrderRequest) toInput(actorID uuid.UUID) (ordersvc.PlaceOrderInput, error) {
	storeID, err := uuid.Parse(p.StoreID)
	if err != nil {
		return ordersvc.PlaceOrderInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid store id")
	}

	total, err := parseMoney(p.Total, "total")
	if err != nil {
		return ordersvc.PlaceOrderInput{}, err
	}

	items := make([]ordersvc.PlaceOrderItemInput, 0, len(p.Items))
	for _, item := range p.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			return ordersvc.PlaceOrderInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id")
		}
		price, err := parseMoney(item.Price, "items.price")
		if err != nil {
			return ordersvc.PlaceOrderInput{}, err
		}
		items = append(items, ordersvc.PlaceOrderItemInput{
			ProductID: productID,
			Quantity:  item.Quantity,
			Price:     price,
		})
	}

	return ordersvc.PlaceOrderInput{
		StoreID:     storeID,
		Items:       items,
		Total:       total,
		ActorUserID: actorID,
	}, nil
}
