package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viagemtrack/travelog/internal/models"
	"github.com/viagemtrack/travelog/internal/repositories"
	"github.com/viagemtrack/travelog/internal/services"
)

func countryRouter(reader CountryReader, writer CountryWriter) http.Handler {
	r := chi.NewRouter()
	if reader != nil {
		r.Get("/api/countries", NewListCountriesHandler(reader))
		r.Get("/api/countries/{id}", NewGetCountryHandler(reader))
		r.Get("/api/continents/{id}/countries", NewListCountriesByContinentHandler(reader))
	}
	if writer != nil {
		r.Post("/api/countries", NewCreateCountryHandler(writer))
		r.Put("/api/countries/{id}", NewUpdateCountryHandler(writer))
		r.Delete("/api/countries/{id}", NewDeleteCountryHandler(writer))
	}
	return r
}

func TestListCountriesHandler_ContinentFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCountryReader(ctrl)
	mockSvc.EXPECT().
		List(gomock.Any(), 1, 10, gomock.Not(gomock.Nil())).
		DoAndReturn(func(_ context.Context, _, _ int, continentID *int64) ([]models.CountryListItem, int64, error) {
			assert.Equal(t, int64(6), *continentID)
			return []models.CountryListItem{}, 0, nil
		})

	req := httptest.NewRequest(http.MethodGet, "/api/countries?continentId=6", nil)
	rec := httptest.NewRecorder()
	countryRouter(mockSvc, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListCountriesHandler_InvalidFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := httptest.NewRequest(http.MethodGet, "/api/countries?continentId=abc", nil)
	rec := httptest.NewRecorder()
	countryRouter(NewMockCountryReader(ctrl), nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListCountriesByContinentHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCountryReader(ctrl)
	mockSvc.EXPECT().
		ListByContinent(gomock.Any(), int64(6)).
		Return([]models.CountryListItem{
			{CountryDB: models.CountryDB{CountryID: 1, Name: "Brazil"}},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/continents/6/countries", nil)
	rec := httptest.NewRecorder()
	countryRouter(mockSvc, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []models.CountryListItem
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Brazil", resp[0].Name)
}

func TestGetCountryHandler_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCountryReader(ctrl)
	mockSvc.EXPECT().
		Get(gomock.Any(), int64(99)).
		Return(nil, services.ErrCountryNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/countries/99", nil)
	rec := httptest.NewRecorder()
	countryRouter(mockSvc, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateCountryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name          string
		body          string
		mockSetup     func(m *MockCountryWriter)
		expectedCode  int
		expectedError string
	}{
		{
			name: "success with string population",
			body: `{"name":"Brazil","isoCode":"BR","population":"212559417","continentId":6}`,
			mockSetup: func(m *MockCountryWriter) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, f repositories.CountryFields) (*models.CountryDB, error) {
						assert.Equal(t, "Brazil", *f.Name)
						assert.Equal(t, int64(212559417), *f.Population)
						assert.Equal(t, int64(6), *f.ContinentID)
						return &models.CountryDB{CountryID: 1, Name: "Brazil"}, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "unknown continent",
			body: `{"name":"Brazil","continentId":99}`,
			mockSetup: func(m *MockCountryWriter) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(nil, services.ErrContinentDoesNotExist)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Referenced continent does not exist",
		},
		{
			name:          "missing continent",
			body:          `{"name":"Brazil"}`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "Continent ID is required",
		},
		{
			name:          "missing name",
			body:          `{"continentId":6}`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "Name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockCountryWriter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/countries", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			countryRouter(nil, mockSvc).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedError != "" {
				var resp ErrorResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			}
		})
	}
}

func TestDeleteCountryHandler_InUse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCountryWriter(ctrl)
	mockSvc.EXPECT().
		Delete(gomock.Any(), int64(1)).
		Return(services.ErrCountryInUse)

	req := httptest.NewRequest(http.MethodDelete, "/api/countries/1", nil)
	rec := httptest.NewRecorder()
	countryRouter(nil, mockSvc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}
