package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/viagemtrack/travelog/internal/logger"
	"github.com/viagemtrack/travelog/internal/models"
	"github.com/viagemtrack/travelog/internal/repositories"
	"github.com/viagemtrack/travelog/internal/services"
)

// CityReader defines the read methods the handlers need from the service.
type CityReader interface {
	List(ctx context.Context, page, limit int, countryID, continentID *int64) ([]models.CityListItem, int64, error)
	ListByCountry(ctx context.Context, countryID int64) ([]models.CityDB, error)
	Get(ctx context.Context, id int64) (*models.CityDetail, error)
}

// CityWriter defines the write methods the handlers need from the service.
type CityWriter interface {
	Create(ctx context.Context, f repositories.CityFields) (*models.CityDB, error)
	Update(ctx context.Context, id int64, f repositories.CityFields) (*models.CityDB, error)
	Delete(ctx context.Context, id int64) error
}

// CityRequest represents the JSON body for creating or updating a city
// swagger:model CityRequest
type CityRequest struct {
	// City name
	// required: true
	// default: São Paulo
	Name *string `json:"name"`

	// City population
	Population *int64 `json:"population"`

	// Latitude in decimal degrees
	Latitude *float64 `json:"latitude"`

	// Longitude in decimal degrees
	Longitude *float64 `json:"longitude"`

	// Climate description
	Climate *string `json:"climate"`

	// Owning country
	// required: true
	CountryID *int64 `json:"countryId"`
}

func (req CityRequest) fields() repositories.CityFields {
	return repositories.CityFields{
		Name:       req.Name,
		Population: req.Population,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		Climate:    req.Climate,
		CountryID:  req.CountryID,
	}
}

// CityListResponse is one page of cities
// swagger:model CityListResponse
type CityListResponse struct {
	Data       []models.CityListItem `json:"data"`
	Pagination models.Pagination     `json:"pagination"`
}

// NewListCitiesHandler returns an HTTP handler for listing cities.
// @Summary List cities
// @Description Returns cities ordered by name with their country and continent. Optionally filtered by country or continent; the country filter wins when both are given.
// @Tags cities
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param countryId query int false "Only cities of this country"
// @Param continentId query int false "Only cities of this continent"
// @Success 200 {object} handlers.CityListResponse "One page of cities"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/cities [get]
func NewListCitiesHandler(svc CityReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, limit := parsePagination(r)

		var countryID, continentID *int64
		if raw := r.URL.Query().Get("countryId"); raw != "" {
			id, err := parseQueryID(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, "Invalid country ID")
				return
			}
			countryID = &id
		}
		if raw := r.URL.Query().Get("continentId"); raw != "" {
			id, err := parseQueryID(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, "Invalid continent ID")
				return
			}
			continentID = &id
		}

		cities, total, err := svc.List(r.Context(), page, limit, countryID, continentID)
		if err != nil {
			logger.Log.Errorw("failed to list cities", "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, CityListResponse{
			Data:       cities,
			Pagination: models.NewPagination(page, limit, total),
		})
	}
}

// NewListCitiesByCountryHandler returns an HTTP handler for listing all
// cities of a country, unpaginated.
// @Summary List cities of a country
// @Tags countries
// @Produce json
// @Param id path int true "Country ID"
// @Success 200 {array} models.CityDB "Cities of the country"
// @Failure 400 {object} handlers.ErrorResponse "Invalid country ID"
// @Router /api/countries/{id}/cities [get]
func NewListCitiesByCountryHandler(svc CityReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid country ID")
			return
		}

		cities, err := svc.ListByCountry(r.Context(), id)
		if err != nil {
			logger.Log.Errorw("failed to list cities of country", "countryID", id, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, cities)
	}
}

// NewGetCityHandler returns an HTTP handler for fetching one city.
// @Summary Get a city
// @Description Returns the city with its country, continent and recorded visits.
// @Tags cities
// @Produce json
// @Param id path int true "City ID"
// @Success 200 {object} models.CityDetail "City with country and visits"
// @Failure 400 {object} handlers.ErrorResponse "Invalid city ID"
// @Failure 404 {object} handlers.ErrorResponse "City not found"
// @Router /api/cities/{id} [get]
func NewGetCityHandler(svc CityReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid city ID")
			return
		}

		city, err := svc.Get(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrCityNotFound):
				writeError(w, http.StatusNotFound, "City not found")
			default:
				logger.Log.Errorw("failed to fetch city", "cityID", id, "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, city)
	}
}

// NewCreateCityHandler returns an HTTP handler for creating a city.
// @Summary Create a city
// @Tags cities
// @Accept json
// @Produce json
// @Param cityRequest body handlers.CityRequest true "City to create"
// @Success 201 {object} models.CityDB "Created city"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request / unknown country"
// @Router /api/cities [post]
func NewCreateCityHandler(svc CityWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CityRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
			writeError(w, http.StatusBadRequest, "Name is required")
			return
		}
		if req.CountryID == nil {
			writeError(w, http.StatusBadRequest, "Country ID is required")
			return
		}

		city, err := svc.Create(r.Context(), req.fields())
		if err != nil {
			switch {
			case errors.Is(err, services.ErrCountryDoesNotExist):
				writeError(w, http.StatusBadRequest, "Referenced country does not exist")
			default:
				logger.Log.Errorw("failed to create city", "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, city)
	}
}

// NewUpdateCityHandler returns an HTTP handler for updating a city.
// Absent fields keep their current values.
// @Summary Update a city
// @Tags cities
// @Accept json
// @Produce json
// @Param id path int true "City ID"
// @Param cityRequest body handlers.CityRequest true "Fields to update"
// @Success 200 {object} models.CityDB "Updated city"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request / unknown country"
// @Failure 404 {object} handlers.ErrorResponse "City not found"
// @Router /api/cities/{id} [put]
func NewUpdateCityHandler(svc CityWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid city ID")
			return
		}

		var req CityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		city, err := svc.Update(r.Context(), id, req.fields())
		if err != nil {
			switch {
			case errors.Is(err, services.ErrCityNotFound):
				writeError(w, http.StatusNotFound, "City not found")
			case errors.Is(err, services.ErrCountryDoesNotExist):
				writeError(w, http.StatusBadRequest, "Referenced country does not exist")
			default:
				logger.Log.Errorw("failed to update city", "cityID", id, "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, city)
	}
}

// NewDeleteCityHandler returns an HTTP handler for deleting a city.
// @Summary Delete a city
// @Description Deletion is rejected while the city still has recorded visits.
// @Tags cities
// @Produce json
// @Param id path int true "City ID"
// @Success 200 {object} handlers.MessageResponse "City deleted"
// @Failure 400 {object} handlers.ErrorResponse "Invalid city ID"
// @Failure 404 {object} handlers.ErrorResponse "City not found"
// @Failure 409 {object} handlers.ErrorResponse "City still has visits"
// @Router /api/cities/{id} [delete]
func NewDeleteCityHandler(svc CityWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid city ID")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			switch {
			case errors.Is(err, services.ErrCityNotFound):
				writeError(w, http.StatusNotFound, "City not found")
			case errors.Is(err, services.ErrCityInUse):
				writeError(w, http.StatusConflict, "City still has recorded visits")
			default:
				logger.Log.Errorw("failed to delete city", "cityID", id, "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "City deleted successfully"})
	}
}
