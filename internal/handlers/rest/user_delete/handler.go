package user_delete

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"storefront/internal/pkg/auth"
	"storefront/internal/service/user"
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

	err := h.service.DeleteUser(r.Context(), actor, id)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidUserID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, user.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, user.ErrUserNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, user.ErrLastAdmin):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
