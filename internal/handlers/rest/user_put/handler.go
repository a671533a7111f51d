package user_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"storefront/internal/entities"
	"storefront/internal/generated/dto"
	"storefront/internal/pkg/auth"
	"storefront/internal/service/user"
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

	var userUpdateDTO dto.UserUpdate
	err := json.NewDecoder(r.Body).Decode(&userUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	userModify := entities.UserModify{
		ID:      &id,
		Name:    userUpdateDTO.Name,
		Email:   userUpdateDTO.Email,
		Blocked: userUpdateDTO.Blocked,
	}
	if userUpdateDTO.Role != nil {
		role, ok := entities.ParseRole(*userUpdateDTO.Role)
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		userModify.Role = &role
	}

	updated, err := h.service.UpdateUser(r.Context(), actor, userModify)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrMissingRequiredFields),
			errors.Is(err, user.ErrInvalidUserID),
			errors.Is(err, user.ErrInvalidEmail),
			errors.Is(err, user.ErrInvalidRole):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, user.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, user.ErrUserNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, user.ErrEmailTaken),
			errors.Is(err, user.ErrLastAdmin):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	userDTO := dto.User{
		ID:        updated.ID,
		Name:      updated.Name,
		Email:     updated.Email,
		Role:      updated.Role.String(),
		Blocked:   updated.Blocked,
		CreatedAt: updated.CreatedAt,
		UpdatedAt: updated.UpdatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(userDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
