package users_get

import (
	"encoding/json"
	"errors"
	"net/http"

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

	userEntities, err := h.service.GetUsers(r.Context(), actor)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	userDTOs := make([]dto.User, len(userEntities))
	for i, userEntity := range userEntities {
		userDTOs[i] = dto.User{
			ID:        userEntity.ID,
			Name:      userEntity.Name,
			Email:     userEntity.Email,
			Role:      userEntity.Role.String(),
			Blocked:   userEntity.Blocked,
			CreatedAt: userEntity.CreatedAt,
			UpdatedAt: userEntity.UpdatedAt,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(userDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
