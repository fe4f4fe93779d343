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

// CountryReader defines the read methods the handlers need from the service.
type CountryReader interface {
	List(ctx context.Context, page, limit int, continentID *int64) ([]models.CountryListItem, int64, error)
	ListByContinent(ctx context.Context, continentID int64) ([]models.CountryListItem, error)
	Get(ctx context.Context, id int64) (*models.CountryDetail, error)
}

// CountryWriter defines the write methods the handlers need from the service.
type CountryWriter interface {
	Create(ctx context.Context, f repositories.CountryFields) (*models.CountryDB, error)
	Update(ctx context.Context, id int64, f repositories.CountryFields) (*models.CountryDB, error)
	Delete(ctx context.Context, id int64) error
}

// CountryRequest represents the JSON body for creating or updating a country
// swagger:model CountryRequest
type CountryRequest struct {
	// Country name
	// required: true
	// default: Brazil
	Name *string `json:"name"`

	// Capital city
	Capital *string `json:"capital"`

	// Primary language
	Language *string `json:"language"`

	// Official language; falls back to language when absent
	OfficialLanguage *string `json:"officialLanguage"`

	// Currency name or code
	Currency *string `json:"currency"`

	// ISO-3166 alpha-2 code
	// default: BR
	ISOCode *string `json:"isoCode"`

	// Lowercase code used for flag lookups; defaults to the ISO code
	CountryCode *string `json:"countryCode"`

	// Population, accepted as a number or a decimal string
	Population *models.Population `json:"population"`

	// Owning continent
	// required: true
	ContinentID *int64 `json:"continentId"`
}

func (req CountryRequest) fields() repositories.CountryFields {
	f := repositories.CountryFields{
		Name:             req.Name,
		Capital:          req.Capital,
		Language:         req.Language,
		OfficialLanguage: req.OfficialLanguage,
		Currency:         req.Currency,
		ISOCode:          req.ISOCode,
		CountryCode:      req.CountryCode,
		ContinentID:      req.ContinentID,
	}
	if req.Population != nil {
		population := req.Population.Int64()
		f.Population = &population
	}
	return f
}

// CountryListResponse is one page of countries
// swagger:model CountryListResponse
type CountryListResponse struct {
	Data       []models.CountryListItem `json:"data"`
	Pagination models.Pagination        `json:"pagination"`
}

// NewListCountriesHandler returns an HTTP handler for listing countries.
// @Summary List countries
// @Description Returns countries ordered by name with their continent and city counts. Optionally filtered by continent.
// @Tags countries
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param continentId query int false "Only countries of this continent"
// @Success 200 {object} handlers.CountryListResponse "One page of countries"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/countries [get]
func NewListCountriesHandler(svc CountryReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, limit := parsePagination(r)

		var continentID *int64
		if raw := r.URL.Query().Get("continentId"); raw != "" {
			id, err := parseQueryID(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, "Invalid continent ID")
				return
			}
			continentID = &id
		}

		countries, total, err := svc.List(r.Context(), page, limit, continentID)
		if err != nil {
			logger.Log.Errorw("failed to list countries", "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, CountryListResponse{
			Data:       countries,
			Pagination: models.NewPagination(page, limit, total),
		})
	}
}

// NewListCountriesByContinentHandler returns an HTTP handler for listing
// all countries of a continent, unpaginated.
// @Summary List countries of a continent
// @Tags continents
// @Produce json
// @Param id path int true "Continent ID"
// @Success 200 {array} models.CountryListItem "Countries of the continent"
// @Failure 400 {object} handlers.ErrorResponse "Invalid continent ID"
// @Router /api/continents/{id}/countries [get]
func NewListCountriesByContinentHandler(svc CountryReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid continent ID")
			return
		}

		countries, err := svc.ListByContinent(r.Context(), id)
		if err != nil {
			logger.Log.Errorw("failed to list countries of continent", "continentID", id, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, countries)
	}
}

// NewGetCountryHandler returns an HTTP handler for fetching one country.
// @Summary Get a country
// @Description Returns the country with its continent and cities.
// @Tags countries
// @Produce json
// @Param id path int true "Country ID"
// @Success 200 {object} models.CountryDetail "Country with continent and cities"
// @Failure 400 {object} handlers.ErrorResponse "Invalid country ID"
// @Failure 404 {object} handlers.ErrorResponse "Country not found"
// @Router /api/countries/{id} [get]
func NewGetCountryHandler(svc CountryReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid country ID")
			return
		}

		country, err := svc.Get(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrCountryNotFound):
				writeError(w, http.StatusNotFound, "Country not found")
			default:
				logger.Log.Errorw("failed to fetch country", "countryID", id, "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, country)
	}
}

// NewCreateCountryHandler returns an HTTP handler for creating a country.
// @Summary Create a country
// @Description Official language defaults to the language and vice versa. The flag code defaults to the lowercased ISO code.
// @Tags countries
// @Accept json
// @Produce json
// @Param countryRequest body handlers.CountryRequest true "Country to create"
// @Success 201 {object} models.CountryDB "Created country"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request / unknown continent"
// @Router /api/countries [post]
func NewCreateCountryHandler(svc CountryWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CountryRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
			writeError(w, http.StatusBadRequest, "Name is required")
			return
		}
		if req.ContinentID == nil {
			writeError(w, http.StatusBadRequest, "Continent ID is required")
			return
		}

		country, err := svc.Create(r.Context(), req.fields())
		if err != nil {
			switch {
			case errors.Is(err, services.ErrContinentDoesNotExist):
				writeError(w, http.StatusBadRequest, "Referenced continent does not exist")
			default:
				logger.Log.Errorw("failed to create country", "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, country)
	}
}

// NewUpdateCountryHandler returns an HTTP handler for updating a country.
// Absent fields keep their current values.
// @Summary Update a country
// @Tags countries
// @Accept json
// @Produce json
// @Param id path int true "Country ID"
// @Param countryRequest body handlers.CountryRequest true "Fields to update"
// @Success 200 {object} models.CountryDB "Updated country"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request / unknown continent"
// @Failure 404 {object} handlers.ErrorResponse "Country not found"
// @Router /api/countries/{id} [put]
func NewUpdateCountryHandler(svc CountryWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid country ID")
			return
		}

		var req CountryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		country, err := svc.Update(r.Context(), id, req.fields())
		if err != nil {
			switch {
			case errors.Is(err, services.ErrCountryNotFound):
				writeError(w, http.StatusNotFound, "Country not found")
			case errors.Is(err, services.ErrContinentDoesNotExist):
				writeError(w, http.StatusBadRequest, "Referenced continent does not exist")
			default:
				logger.Log.Errorw("failed to update country", "countryID", id, "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, country)
	}
}

// NewDeleteCountryHandler returns an HTTP handler for deleting a country.
// @Summary Delete a country
// @Description Deletion is rejected while the country still has cities.
// @Tags countries
// @Produce json
// @Param id path int true "Country ID"
// @Success 200 {object} handlers.MessageResponse "Country deleted"
// @Failure 400 {object} handlers.ErrorResponse "Invalid country ID"
// @Failure 404 {object} handlers.ErrorResponse "Country not found"
// @Failure 409 {object} handlers.ErrorResponse "Country still has cities"
// @Router /api/countries/{id} [delete]
func NewDeleteCountryHandler(svc CountryWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid country ID")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			switch {
			case errors.Is(err, services.ErrCountryNotFound):
				writeError(w, http.StatusNotFound, "Country not found")
			case errors.Is(err, services.ErrCountryInUse):
				writeError(w, http.StatusConflict, "Country still has cities")
			default:
				logger.Log.Errorw("failed to delete country", "countryID", id, "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Country deleted successfully"})
	}
}
