package product_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"storefront/internal/entities"
	"storefront/internal/generated/dto"
	"storefront/internal/pkg/auth"
	"storefront/internal/service/product"
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

	var productCreateDTO dto.ProductCreate
	err := json.NewDecoder(r.Body).Decode(&productCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	productModify := entities.ProductModify{
		Name:        &productCreateDTO.Name,
		Description: productCreateDTO.Description,
		Price:       &productCreateDTO.Price,
		Image:       productCreateDTO.Image,
		Category:    productCreateDTO.Category,
		Stock:       productCreateDTO.Stock,
	}

	created, err := h.service.CreateProduct(r.Context(), actor, productModify)
	if err != nil {
		switch {
		case errors.Is(err, product.ErrMissingRequiredFields),
			errors.Is(err, product.ErrInvalidName),
			errors.Is(err, product.ErrInvalidPrice),
			errors.Is(err, product.ErrInvalidStock):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, product.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.ProductCreateResponse{
		ID: created.ID,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
