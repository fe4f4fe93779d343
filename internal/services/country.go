package services

import (
	"context"
	"errors"
	"strings"

	"github.com/viagemtrack/travelog/internal/models"
	"github.com/viagemtrack/travelog/internal/repositories"
)

// Error variables
var (
	ErrCountryNotFound       = errors.New("country not found")
	ErrContinentDoesNotExist = errors.New("referenced continent does not exist")
	ErrCountryInUse          = errors.New("country still has cities")
)

// CountryReader defines read operations for countries.
type CountryReader interface {
	List(ctx context.Context, page, limit int, continentID *int64) ([]models.CountryListItem, int64, error)
	ListByContinent(ctx context.Context, continentID int64) ([]models.CountryListItem, error)
	GetByID(ctx context.Context, id int64) (*models.CountryWithContinent, error)
}

// CountryWriter defines write operations for countries.
type CountryWriter interface {
	Create(ctx context.Context, f repositories.CountryFields) (*models.CountryDB, error)
	Update(ctx context.Context, id int64, f repositories.CountryFields) (*models.CountryDB, error)
	Delete(ctx context.Context, id int64) error
}

// CitySummaryLister lists the city summaries of a country.
type CitySummaryLister interface {
	ListSummariesByCountry(ctx context.Context, countryID int64) ([]models.CitySummary, error)
}

// CountryService handles country CRUD.
type CountryService struct {
	reader CountryReader
	writer CountryWriter
	cities CitySummaryLister
}

// NewCountryService creates a new CountryService instance.
func NewCountryService(reader CountryReader, writer CountryWriter, cities CitySummaryLister) *CountryService {
	return &CountryService{
		reader: reader,
		writer: writer,
		cities: cities,
	}
}

// List returns one page of countries, optionally filtered by continent.
func (svc *CountryService) List(ctx context.Context, page, limit int, continentID *int64) ([]models.CountryListItem, int64, error) {
	return svc.reader.List(ctx, page, limit, continentID)
}

// ListByContinent returns all countries of a continent.
func (svc *CountryService) ListByContinent(ctx context.Context, continentID int64) ([]models.CountryListItem, error) {
	return svc.reader.ListByContinent(ctx, continentID)
}

// Get returns a country with its continent and cities.
func (svc *CountryService) Get(ctx context.Context, id int64) (*models.CountryDetail, error) {
	country, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCountryNotFound
		}
		return nil, err
	}

	cities, err := svc.cities.ListSummariesByCountry(ctx, id)
	if err != nil {
		return nil, err
	}

	return &models.CountryDetail{
		CountryDB: country.CountryDB,
		Continent: country.Continent,
		Cities:    cities,
	}, nil
}

// Create adds a country to a continent. The language fields fall back to
// each other and the lower-cased country code defaults to the ISO code,
// matching how directory imports fill the form.
func (svc *CountryService) Create(ctx context.Context, f repositories.CountryFields) (*models.CountryDB, error) {
	normalizeCountryFields(&f)

	country, err := svc.writer.Create(ctx, f)
	if err != nil {
		if errors.Is(err, repositories.ErrForeignKeyViolation) {
			return nil, ErrContinentDoesNotExist
		}
		return nil, err
	}
	return country, nil
}

// Update applies a partial update to a country.
func (svc *CountryService) Update(ctx context.Context, id int64, f repositories.CountryFields) (*models.CountryDB, error) {
	normalizeCountryFields(&f)

	country, err := svc.writer.Update(ctx, id, f)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return nil, ErrCountryNotFound
		case errors.Is(err, repositories.ErrForeignKeyViolation):
			return nil, ErrContinentDoesNotExist
		}
		return nil, err
	}
	return country, nil
}

// Delete removes a country. A country that still owns cities is not
// deleted.
func (svc *CountryService) Delete(ctx context.Context, id int64) error {
	if err := svc.writer.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return ErrCountryNotFound
		case errors.Is(err, repositories.ErrForeignKeyViolation):
			return ErrCountryInUse
		}
		return err
	}
	return nil
}

func normalizeCountryFields(f *repositories.CountryFields) {
	if f.Language == nil {
		f.Language = f.OfficialLanguage
	}
	if f.OfficialLanguage == nil {
		f.OfficialLanguage = f.Language
	}
	if f.CountryCode == nil && f.ISOCode != nil {
		code := strings.ToLower(*f.ISOCode)
		f.CountryCode = &code
	}
}
