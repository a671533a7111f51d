package product_delete

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"storefront/internal/pkg/auth"
	"storefront/internal/service/product"
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

	err := h.service.DeleteProduct(r.Context(), actor, id)
	if err != nil {
		switch {
		case errors.Is(err, product.ErrInvalidProductID):
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

	w.WriteHeader(http.StatusNoContent)
}
