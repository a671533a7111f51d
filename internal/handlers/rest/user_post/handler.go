package user_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"storefront/internal/generated/dto"
	"storefront/internal/service/user"
	"storefront/pkg/logger"
)

// Handler регистрирует нового покупателя. Единственная пишущая ручка
// без авторизации: регистрация и есть способ получить учетку.
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
	var userCreateDTO dto.UserCreate
	err := json.NewDecoder(r.Body).Decode(&userCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	created, err := h.service.Register(r.Context(), user.Registration{
		Name:     userCreateDTO.Name,
		Email:    userCreateDTO.Email,
		Password: userCreateDTO.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrMissingRequiredFields),
			errors.Is(err, user.ErrInvalidEmail),
			errors.Is(err, user.ErrInvalidPassword):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, user.ErrEmailTaken):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.UserCreateResponse{
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
