package order_status_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"storefront/internal/entities"
	"storefront/internal/generated/dto"
	"storefront/internal/pkg/auth"
	"storefront/internal/service/order"
	"storefront/pkg/logger"
)

// Handler обслуживает и PUT /orders/{id}, и PATCH /orders/{id}/status:
// оба маршрута меняют только статус заказа.
type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	id := mux.Vars(r)["id"]

	var statusDTO dto.OrderStatusUpdate
	err := json.NewDecoder(r.Body).Decode(&statusDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	updated, err := h.service.UpdateStatus(r.Context(), actor, id, statusDTO.Status)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidStatus),
			errors.Is(err, order.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	orderDTO := toDTO(updated)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(orderDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toDTO(orderEntity *entities.Order) dto.Order {
	items := make([]dto.OrderItem, len(orderEntity.Items))
	for i, item := range orderEntity.Items {
		items[i] = dto.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		}
	}

	return dto.Order{
		ID:              orderEntity.ID,
		UserID:          orderEntity.UserID,
		UserName:        orderEntity.UserName,
		UserEmail:       orderEntity.UserEmail,
		Items:           items,
		Total:           orderEntity.Total,
		Status:          orderEntity.Status.String(),
		ShippingAddress: orderEntity.ShippingAddress,
		Phone:           orderEntity.Phone,
		PaymentInfo:     orderEntity.PaymentInfo,
		CreatedAt:       orderEntity.CreatedAt,
		UpdatedAt:       orderEntity.UpdatedAt,
	}
}
