package order_get

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

	orderEntity, err := h.service.Get(r.Context(), actor, id)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	orderDTO := toDTO(orderEntity)

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
