package product_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
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

	id := mux.Vars(r)["id"]

	var productUpdateDTO dto.ProductUpdate
	err := json.NewDecoder(r.Body).Decode(&productUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	productModify := entities.ProductModify{
		ID:          &id,
		Name:        productUpdateDTO.Name,
		Description: productUpdateDTO.Description,
		Price:       productUpdateDTO.Price,
		Image:       productUpdateDTO.Image,
		Category:    productUpdateDTO.Category,
		Stock:       productUpdateDTO.Stock,
	}

	updated, err := h.service.UpdateProduct(r.Context(), actor, productModify)
	if err != nil {
		switch {
		case errors.Is(err, product.ErrMissingRequiredFields),
			errors.Is(err, product.ErrInvalidProductID),
			errors.Is(err, product.ErrInvalidName),
			errors.Is(err, product.ErrInvalidPrice),
			errors.Is(err, product.ErrInvalidStock):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, product.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, product.ErrProductNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	productDTO := dto.Product{
		ID:          updated.ID,
		Name:        updated.Name,
		Description: updated.Description,
		Price:       updated.Price,
		Image:       updated.Image,
		Category:    updated.Category,
		Stock:       updated.Stock,
		CreatedAt:   updated.CreatedAt,
		UpdatedAt:   updated.UpdatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(productDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
