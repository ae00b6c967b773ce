package controllers

import (
	"net/http"
	"time"

	"github.com/feedstorehq/feedstore-backend/api/responses"
	"github.com/feedstorehq/feedstore-backend/api/validators"
	"github.com/feedstorehq/feedstore-backend/internal/orders"
	"github.com/feedstorehq/feedstore-backend/pkg/logger"
)

type orderItemRequest struct {
	ProductName     string  `json:"product_name" validate:"required"`
	Description     *string `json:"description,omitempty"`
	Quantity        int     `json:"quantity" validate:"required,min=1"`
	SackWeight      int     `json:"sack_weight" validate:"gte=0"`
	UnitPrice       float64 `json:"unit_price" validate:"gte=0"`
	CommissionType  *string `json:"commission_type,omitempty" validate:"omitempty,oneof=percentage fixed"`
	CommissionValue float64 `json:"commission_value" validate:"gte=0"`
}

type createOrderRequest struct {
	ClientID    string             `json:"client_id" validate:"required,uuid"`
	OrderDate   *time.Time         `json:"order_date,omitempty"`
	Freight     float64            `json:"freight" validate:"gte=0"`
	Origin      *string            `json:"origin,omitempty"`
	Destination *string            `json:"destination,omitempty"`
	Notes       *string            `json:"notes,omitempty"`
	Items       []orderItemRequest `json:"items" validate:"required,min=1,dive"`
}

func (r createOrderRequest) toInput() (orders.CreateOrderInput, error) {
	clientID, err := parseUUID(r.ClientID, "client_id")
	if err != nil {
		return orders.CreateOrderInput{}, err
	}

	input := orders.CreateOrderInput{
		ClientID:    clientID,
		Freight:     r.Freight,
		Origin:      r.Origin,
		Destination: r.Destination,
		Notes:       r.Notes,
	}
	if r.OrderDate != nil {
		input.OrderDate = *r.OrderDate
	}

	for _, item := range r.Items {
		in := orders.CreateOrderItemInput{
			ProductName:     item.ProductName,
			Description:     item.Description,
			Quantity:        item.Quantity,
			SackWeight:      item.SackWeight,
			UnitPrice:       item.UnitPrice,
			CommissionValue: item.CommissionValue,
		}
		if item.CommissionType != nil {
			parsed, err := parseCommissionType(*item.CommissionType)
			if err != nil {
				return orders.CreateOrderInput{}, err
			}
			in.CommissionType = parsed
		}
		input.Items = append(input.Items, in)
	}
	return input, nil
}

func CreateOrder(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createOrderRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, orders.ToOrderDTO(*order))
	}
}

func ListOrders(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if raw := r.URL.Query().Get("client_id"); raw != "" {
			clientID, err := parseUUID(raw, "client_id")
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			list, err := svc.ListByClient(r.Context(), clientID)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			responses.WriteSuccess(w, orders.ToOrderDTOs(list))
			return
		}

		list, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, orders.ToOrderDTOs(list))
	}
}

// ClientOrders lists the order history of a single client.
func ClientOrders(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientID, err := pathUUID(r, "clientID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, err := svc.ListByClient(r.Context(), clientID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, orders.ToOrderDTOs(list))
	}
}

func GetOrder(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "orderID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, orders.ToOrderDTO(*order))
	}
}

type setStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func SetOrderStatus(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "orderID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload setStatusRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.SetStatus(r.Context(), id, payload.Status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, orders.ToOrderDTO(*order))
	}
}

func DeleteOrder(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "orderID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

// OrderStatusTable serves the status display lookup for the back office.
func OrderStatusTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, orders.DisplayTable())
	}
}
