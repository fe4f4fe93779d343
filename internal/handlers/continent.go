package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/viagemtrack/travelog/internal/logger"
	"github.com/viagemtrack/travelog/internal/models"
	"github.com/viagemtrack/travelog/internal/services"
)

// ContinentReader defines the read methods the handlers need from the service.
type ContinentReader interface {
	List(ctx context.Context, page, limit int) ([]models.ContinentListItem, int64, error)
	Get(ctx context.Context, id int64) (*models.ContinentDetail, error)
}

// ContinentWriter defines the write methods the handlers need from the service.
type ContinentWriter interface {
	Create(ctx context.Context, name string, description *string) (*models.ContinentDB, error)
	Update(ctx context.Context, id int64, name, description *string) (*models.ContinentDB, error)
	Delete(ctx context.Context, id int64) error
}

// ContinentRequest represents the JSON body for creating or updating a continent
// swagger:model ContinentRequest
type ContinentRequest struct {
	// Continent name, unique
	// required: true
	// default: South America
	Name *string `json:"name"`

	// Free-text description
	Description *string `json:"description"`
}

// ContinentListResponse is one page of continents
// swagger:model ContinentListResponse
type ContinentListResponse struct {
	Data       []models.ContinentListItem `json:"data"`
	Pagination models.Pagination          `json:"pagination"`
}

// NewListContinentsHandler returns an HTTP handler for listing continents.
// @Summary List continents
// @Description Returns continents ordered by name with their country counts.
// @Tags continents
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} handlers.ContinentListResponse "One page of continents"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/continents [get]
func NewListContinentsHandler(svc ContinentReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, limit := parsePagination(r)

		continents, total, err := svc.List(r.Context(), page, limit)
		if err != nil {
			logger.Log.Errorw("failed to list continents", "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, ContinentListResponse{
			Data:       continents,
			Pagination: models.NewPagination(page, limit, total),
		})
	}
}

// NewGetContinentHandler returns an HTTP handler for fetching one continent.
// @Summary Get a continent
// @Description Returns the continent with its countries.
// @Tags continents
// @Produce json
// @Param id path int true "Continent ID"
// @Success 200 {object} models.ContinentDetail "Continent with countries"
// @Failure 400 {object} handlers.ErrorResponse "Invalid continent ID"
// @Failure 404 {object} handlers.ErrorResponse "Continent not found"
// @Router /api/continents/{id} [get]
func NewGetContinentHandler(svc ContinentReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid continent ID")
			return
		}

		continent, err := svc.Get(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrContinentNotFound):
				writeError(w, http.StatusNotFound, "Continent not found")
			default:
				logger.Log.Errorw("failed to fetch continent", "continentID", id, "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, continent)
	}
}

// NewCreateContinentHandler returns an HTTP handler for creating a continent.
// @Summary Create a continent
// @Tags continents
// @Accept json
// @Produce json
// @Param continentRequest body handlers.ContinentRequest true "Continent to create"
// @Success 201 {object} models.ContinentDB "Created continent"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 409 {object} handlers.ErrorResponse "Continent name already exists"
// @Router /api/continents [post]
func NewCreateContinentHandler(svc ContinentWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ContinentRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
			writeError(w, http.StatusBadRequest, "Name is required")
			return
		}

		continent, err := svc.Create(r.Context(), *req.Name, req.Description)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrContinentNameTaken):
				writeError(w, http.StatusConflict, "Continent name already exists")
			default:
				logger.Log.Errorw("failed to create continent", "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, continent)
	}
}

// NewUpdateContinentHandler returns an HTTP handler for updating a continent.
// Absent fields keep their current values.
// @Summary Update a continent
// @Tags continents
// @Accept json
// @Produce json
// @Param id path int true "Continent ID"
// @Param continentRequest body handlers.ContinentRequest true "Fields to update"
// @Success 200 {object} models.ContinentDB "Updated continent"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Continent not found"
// @Failure 409 {object} handlers.ErrorResponse "Continent name already exists"
// @Router /api/continents/{id} [put]
func NewUpdateContinentHandler(svc ContinentWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid continent ID")
			return
		}

		var req ContinentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		continent, err := svc.Update(r.Context(), id, req.Name, req.Description)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrContinentNotFound):
				writeError(w, http.StatusNotFound, "Continent not found")
			case errors.Is(err, services.ErrContinentNameTaken):
				writeError(w, http.StatusConflict, "Continent name already exists")
			default:
				logger.Log.Errorw("failed to update continent", "continentID", id, "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, continent)
	}
}

// NewDeleteContinentHandler returns an HTTP handler for deleting a continent.
// @Summary Delete a continent
// @Description Deletion is rejected while the continent still has countries.
// @Tags continents
// @Produce json
// @Param id path int true "Continent ID"
// @Success 200 {object} handlers.MessageResponse "Continent deleted"
// @Failure 400 {object} handlers.ErrorResponse "Invalid continent ID"
// @Failure 404 {object} handlers.ErrorResponse "Continent not found"
// @Failure 409 {object} handlers.ErrorResponse "Continent still has countries"
// @Router /api/continents/{id} [delete]
func NewDeleteContinentHandler(svc ContinentWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid continent ID")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			switch {
			case errors.Is(err, services.ErrContinentNotFound):
				writeError(w, http.StatusNotFound, "Continent not found")
			case errors.Is(err, services.ErrContinentInUse):
				writeError(w, http.StatusConflict, "Continent still has countries")
			default:
				logger.Log.Errorw("failed to delete continent", "continentID", id, "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Continent deleted successfully"})
	}
}
