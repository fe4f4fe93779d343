package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/viagemtrack/travelog/internal/logger"
	"github.com/viagemtrack/travelog/internal/models"
	"github.com/viagemtrack/travelog/internal/services"
)

// VisitReader defines the read methods the handlers need from the service.
type VisitReader interface {
	ListByUser(ctx context.Context, userID int64, page, limit int) ([]models.VisitListItem, int64, error)
	Check(ctx context.Context, userID, cityID int64) (bool, *models.VisitDB, error)
}

// VisitWriter defines the write methods the handlers need from the service.
type VisitWriter interface {
	Create(ctx context.Context, userID, cityID int64, visitDate time.Time, comment *string) (*models.VisitDB, error)
	Update(ctx context.Context, id int64, visitDate *time.Time, comment *string, commentSet bool) (*models.VisitDB, error)
	Delete(ctx context.Context, id int64) error
}

// CreateVisitRequest represents the JSON body for recording a visit
// swagger:model CreateVisitRequest
type CreateVisitRequest struct {
	// Visiting user
	// required: true
	UserID *int64 `json:"userId"`

	// Visited city
	// required: true
	CityID *int64 `json:"cityId"`

	// Visit date; defaults to now when absent
	// default: 2024-06-01
	VisitDate *string `json:"visitDate"`

	// Free-text comment
	Comment *string `json:"comment"`
}

// UpdateVisitRequest represents the JSON body for updating a visit. A
// comment key set to null clears the comment; an absent key keeps it.
// swagger:model UpdateVisitRequest
type UpdateVisitRequest struct {
	// New visit date
	VisitDate *string `json:"visitDate"`

	// New comment, or null to clear it
	Comment *string `json:"comment"`
}

// VisitListResponse is one page of a user's visits
// swagger:model VisitListResponse
type VisitListResponse struct {
	Data       []models.VisitListItem `json:"data"`
	Pagination models.Pagination      `json:"pagination"`
}

// VisitCheckResponse reports whether a user has visited a city
// swagger:model VisitCheckResponse
type VisitCheckResponse struct {
	// Whether a visit is recorded
	Visited bool `json:"visited"`

	// The recorded visit, when one exists
	Visit *models.VisitDB `json:"visit,omitempty"`
}

// parseVisitDate accepts a calendar date or a full timestamp.
func parseVisitDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

// NewListVisitsByUserHandler returns an HTTP handler for a user's journal.
// @Summary List a user's visits
// @Description Returns the user's visits ordered by visit date descending, each with its city, country and continent.
// @Tags visits
// @Produce json
// @Param id path int true "User ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} handlers.VisitListResponse "One page of visits"
// @Failure 400 {object} handlers.ErrorResponse "Invalid user ID"
// @Router /api/users/{id}/visits [get]
func NewListVisitsByUserHandler(svc VisitReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := parseIDParam(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid user ID")
			return
		}
		page, limit := parsePagination(r)

		visits, total, err := svc.ListByUser(r.Context(), userID, page, limit)
		if err != nil {
			logger.Log.Errorw("failed to list visits", "userID", userID, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, VisitListResponse{
			Data:       visits,
			Pagination: models.NewPagination(page, limit, total),
		})
	}
}

// NewCreateVisitHandler returns an HTTP handler for recording a visit.
// @Summary Record a visit
// @Description Records that a user visited a city. Each user can record a city at most once.
// @Tags visits
// @Accept json
// @Produce json
// @Param createVisitRequest body handlers.CreateVisitRequest true "Visit to record"
// @Success 201 {object} models.VisitDB "Recorded visit"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request / unknown user or city"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 409 {object} handlers.ErrorResponse "City already recorded as visited"
// @Router /api/visits [post]
// @Security BearerAuth
func NewCreateVisitHandler(svc VisitWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateVisitRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.UserID == nil || req.CityID == nil {
			writeError(w, http.StatusBadRequest, "User ID and city ID are required")
			return
		}

		var visitDate time.Time
		if req.VisitDate != nil {
			parsed, err := parseVisitDate(*req.VisitDate)
			if err != nil {
				writeError(w, http.StatusBadRequest, "Invalid visit date")
				return
			}
			visitDate = parsed
		}

		visit, err := svc.Create(r.Context(), *req.UserID, *req.CityID, visitDate, req.Comment)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrVisitAlreadyRecorded):
				writeError(w, http.StatusConflict, "City already recorded as visited")
			case errors.Is(err, services.ErrVisitTargetDoesNotExist):
				writeError(w, http.StatusBadRequest, "Referenced user or city does not exist")
			default:
				logger.Log.Errorw("failed to record visit", "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, visit)
	}
}

// NewUpdateVisitHandler returns an HTTP handler for updating a visit.
// @Summary Update a visit
// @Description Updates the visit date or the comment. Sending "comment": null clears the comment; omitting the key keeps it.
// @Tags visits
// @Accept json
// @Produce json
// @Param id path int true "Visit ID"
// @Param updateVisitRequest body handlers.UpdateVisitRequest true "Fields to update"
// @Success 200 {object} models.VisitDB "Updated visit"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Visit not found"
// @Router /api/visits/{id} [put]
// @Security BearerAuth
func NewUpdateVisitHandler(svc VisitWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid visit ID")
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		var req UpdateVisitRequest
		if err := json.Unmarshal(body, &req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		// An absent comment key and a null comment both decode to nil;
		// only the raw body tells them apart.
		var keys map[string]json.RawMessage
		if err := json.Unmarshal(body, &keys); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		_, commentSet := keys["comment"]

		var visitDate *time.Time
		if req.VisitDate != nil {
			parsed, err := parseVisitDate(*req.VisitDate)
			if err != nil {
				writeError(w, http.StatusBadRequest, "Invalid visit date")
				return
			}
			visitDate = &parsed
		}

		visit, err := svc.Update(r.Context(), id, visitDate, req.Comment, commentSet)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrVisitNotFound):
				writeError(w, http.StatusNotFound, "Visit not found")
			default:
				logger.Log.Errorw("failed to update visit", "visitID", id, "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, visit)
	}
}

// NewDeleteVisitHandler returns an HTTP handler for deleting a visit.
// @Summary Delete a visit
// @Tags visits
// @Produce json
// @Param id path int true "Visit ID"
// @Success 200 {object} handlers.MessageResponse "Visit deleted"
// @Failure 400 {object} handlers.ErrorResponse "Invalid visit ID"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Visit not found"
// @Router /api/visits/{id} [delete]
// @Security BearerAuth
func NewDeleteVisitHandler(svc VisitWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid visit ID")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			switch {
			case errors.Is(err, services.ErrVisitNotFound):
				writeError(w, http.StatusNotFound, "Visit not found")
			default:
				logger.Log.Errorw("failed to delete visit", "visitID", id, "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Visit deleted successfully"})
	}
}

// NewCheckVisitHandler returns an HTTP handler for the visited-city check.
// @Summary Check whether a user visited a city
// @Description Absence of a visit is a normal answer, not an error.
// @Tags visits
// @Produce json
// @Param userId path int true "User ID"
// @Param cityId path int true "City ID"
// @Success 200 {object} handlers.VisitCheckResponse "Check result"
// @Failure 400 {object} handlers.ErrorResponse "Invalid ID"
// @Router /api/visits/check/{userId}/{cityId} [get]
func NewCheckVisitHandler(svc VisitReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := parseIDParam(r, "userId")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid user ID")
			return
		}
		cityID, err := parseIDParam(r, "cityId")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid city ID")
			return
		}

		visited, visit, err := svc.Check(r.Context(), userID, cityID)
		if err != nil {
			logger.Log.Errorw("failed to check visit", "userID", userID, "cityID", cityID, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, VisitCheckResponse{Visited: visited, Visit: visit})
	}
}
