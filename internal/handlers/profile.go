package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/viagemtrack/travelog/internal/logger"
	"github.com/viagemtrack/travelog/internal/models"
	"github.com/viagemtrack/travelog/internal/services"
)

// ProfileReader defines the interface that the service must implement.
type ProfileReader interface {
	Profile(ctx context.Context, id int64) (*models.UserProfile, error)
}

// NewUserProfileHandler returns an HTTP handler for fetching a user profile.
// @Summary Get a user profile
// @Description Returns the user's public profile with the visit count.
// @Tags auth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.UserProfile "User profile"
// @Failure 400 {object} handlers.ErrorResponse "Invalid user ID"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /api/users/{id} [get]
// @Security BearerAuth
func NewUserProfileHandler(svc ProfileReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid user ID")
			return
		}

		profile, err := svc.Profile(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("failed to fetch user profile", "userID", id, "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, profile)
	}
}
