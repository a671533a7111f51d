package orders_get

import (
	"encoding/json"
	"errors"
	"net/http"

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

	var filter entities.OrderFilter
	if userID := r.URL.Query().Get("user_id"); userID != "" {
		filter.UserID = &userID
	}

	orderEntities, err := h.service.List(r.Context(), actor, filter)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingPurchaser):
			w.WriteHeader(http.StatusUnauthorized)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	orderDTOs := make([]dto.Order, len(orderEntities))
	for i, orderEntity := range orderEntities {
		items := make([]dto.OrderItem, len(orderEntity.Items))
		for j, item := range orderEntity.Items {
			items[j] = dto.OrderItem{
				ProductID: item.ProductID,
				Name:      item.Name,
				Price:     item.Price,
				Quantity:  item.Quantity,
			}
		}

		orderDTOs[i] = dto.Order{
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

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(orderDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
