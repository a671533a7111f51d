package products_get

import (
	"encoding/json"
	"net/http"

	"storefront/internal/generated/dto"
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
	productEntities, err := h.service.GetProducts(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	productDTOs := make([]dto.Product, len(productEntities))
	for i, productEntity := range productEntities {
		productDTOs[i] = dto.Product{
			ID:          productEntity.ID,
			Name:        productEntity.Name,
			Description: productEntity.Description,
			Price:       productEntity.Price,
			Image:       productEntity.Image,
			Category:    productEntity.Category,
			Stock:       productEntity.Stock,
			CreatedAt:   productEntity.CreatedAt,
			UpdatedAt:   productEntity.UpdatedAt,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(productDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
