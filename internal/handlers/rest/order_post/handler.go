package order_post

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

	var orderCreateDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	cart := entities.Cart{
		Items: make([]entities.CartItem, len(orderCreateDTO.Items)),
	}
	for i, item := range orderCreateDTO.Items {
		cart.Items[i] = entities.CartItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		}
	}

	details := order.CheckoutDetails{
		Total:           orderCreateDTO.Total,
		ShippingAddress: orderCreateDTO.ShippingAddress,
		PaymentInfo:     orderCreateDTO.PaymentInfo,
	}
	if orderCreateDTO.Phone != nil {
		details.Phone = *orderCreateDTO.Phone
	}

	created, err := h.service.Checkout(r.Context(), actor, cart, details)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrEmptyCart),
			errors.Is(err, order.ErrInvalidItem),
			errors.Is(err, order.ErrInvalidQuantity),
			errors.Is(err, order.ErrTotalMismatch):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrMissingPurchaser):
			w.WriteHeader(http.StatusUnauthorized)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toDTO(created)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
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
