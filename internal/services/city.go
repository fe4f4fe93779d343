package services

import (
	"context"
	"errors"

	"github.com/viagemtrack/travelog/internal/models"
	"github.com/viagemtrack/travelog/internal/repositories"
)

// Error variables
var (
	ErrCityNotFound        = errors.New("city not found")
	ErrCountryDoesNotExist = errors.New("referenced country does not exist")
	ErrCityInUse           = errors.New("city still has recorded visits")
)

// CityReader defines read operations for cities.
type CityReader interface {
	List(ctx context.Context, page, limit int, countryID, continentID *int64) ([]models.CityListItem, int64, error)
	ListByCountry(ctx context.Context, countryID int64) ([]models.CityDB, error)
	GetByID(ctx context.Context, id int64) (*models.CityDetail, error)
}

// CityWriter defines write operations for cities.
type CityWriter interface {
	Create(ctx context.Context, f repositories.CityFields) (*models.CityDB, error)
	Update(ctx context.Context, id int64, f repositories.CityFields) (*models.CityDB, error)
	Delete(ctx context.Context, id int64) error
}

// CityVisitLister lists the visits recorded for a city.
type CityVisitLister interface {
	ListByCity(ctx context.Context, cityID int64) ([]models.CityVisit, error)
}

// CityService handles city CRUD.
type CityService struct {
	reader CityReader
	writer CityWriter
	visits CityVisitLister
}

// NewCityService creates a new CityService instance.
func NewCityService(reader CityReader, writer CityWriter, visits CityVisitLister) *CityService {
	return &CityService{
		reader: reader,
		writer: writer,
		visits: visits,
	}
}

// List returns one page of cities, optionally filtered by country or
// continent. The country filter takes precedence when both are set.
func (svc *CityService) List(ctx context.Context, page, limit int, countryID, continentID *int64) ([]models.CityListItem, int64, error) {
	if countryID != nil {
		continentID = nil
	}
	return svc.reader.List(ctx, page, limit, countryID, continentID)
}

// ListByCountry returns all cities of a country.
func (svc *CityService) ListByCountry(ctx context.Context, countryID int64) ([]models.CityDB, error) {
	return svc.reader.ListByCountry(ctx, countryID)
}

// Get returns a city with its country, continent and recorded visits.
func (svc *CityService) Get(ctx context.Context, id int64) (*models.CityDetail, error) {
	city, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCityNotFound
		}
		return nil, err
	}

	visits, err := svc.visits.ListByCity(ctx, id)
	if err != nil {
		return nil, err
	}
	city.Visits = visits

	return city, nil
}

// Create adds a city to a country.
func (svc *CityService) Create(ctx context.Context, f repositories.CityFields) (*models.CityDB, error) {
	city, err := svc.writer.Create(ctx, f)
	if err != nil {
		if errors.Is(err, repositories.ErrForeignKeyViolation) {
			return nil, ErrCountryDoesNotExist
		}
		return nil, err
	}
	return city, nil
}

// Update applies a partial update to a city.
func (svc *CityService) Update(ctx context.Context, id int64, f repositories.CityFields) (*models.CityDB, error) {
	city, err := svc.writer.Update(ctx, id, f)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return nil, ErrCityNotFound
		case errors.Is(err, repositories.ErrForeignKeyViolation):
			return nil, ErrCountryDoesNotExist
		}
		return nil, err
	}
	return city, nil
}

// Delete removes a city. A city with recorded visits is not deleted.
func (svc *CityService) Delete(ctx context.Context, id int64) error {
	if err := svc.writer.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return ErrCityNotFound
		case errors.Is(err, repositories.ErrForeignKeyViolation):
			return ErrCityInUse
		}
		return err
	}
	return nil
}
