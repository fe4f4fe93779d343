package services

import (
	"context"
	"errors"

	"github.com/viagemtrack/travelog/internal/models"
	"github.com/viagemtrack/travelog/internal/repositories"
)

// Error variables
var (
	ErrContinentNotFound  = errors.New("continent not found")
	ErrContinentNameTaken = errors.New("a continent with this name already exists")
	ErrContinentInUse     = errors.New("continent still has countries")
)

// ContinentReader defines read operations for continents.
type ContinentReader interface {
	List(ctx context.Context, page, limit int) ([]models.ContinentListItem, int64, error)
	GetByID(ctx context.Context, id int64) (*models.ContinentDB, error)
}

// ContinentWriter defines write operations for continents.
type ContinentWriter interface {
	Create(ctx context.Context, name string, description *string) (*models.ContinentDB, error)
	Update(ctx context.Context, id int64, name, description *string) (*models.ContinentDB, error)
	Delete(ctx context.Context, id int64) error
}

// CountrySummaryLister lists the country summaries of a continent.
type CountrySummaryLister interface {
	ListSummariesByContinent(ctx context.Context, continentID int64) ([]models.CountrySummary, error)
}

// ContinentService handles continent CRUD.
type ContinentService struct {
	reader    ContinentReader
	writer    ContinentWriter
	countries CountrySummaryLister
}

// NewContinentService creates a new ContinentService instance.
func NewContinentService(reader ContinentReader, writer ContinentWriter, countries CountrySummaryLister) *ContinentService {
	return &ContinentService{
		reader:    reader,
		writer:    writer,
		countries: countries,
	}
}

// List returns one page of continents with country counts.
func (svc *ContinentService) List(ctx context.Context, page, limit int) ([]models.ContinentListItem, int64, error) {
	return svc.reader.List(ctx, page, limit)
}

// Get returns a continent with its countries.
func (svc *ContinentService) Get(ctx context.Context, id int64) (*models.ContinentDetail, error) {
	continent, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrContinentNotFound
		}
		return nil, err
	}

	countries, err := svc.countries.ListSummariesByContinent(ctx, id)
	if err != nil {
		return nil, err
	}

	return &models.ContinentDetail{ContinentDB: *continent, Countries: countries}, nil
}

// Create adds a continent. Continent names are unique.
func (svc *ContinentService) Create(ctx context.Context, name string, description *string) (*models.ContinentDB, error) {
	continent, err := svc.writer.Create(ctx, name, description)
	if err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			return nil, ErrContinentNameTaken
		}
		return nil, err
	}
	return continent, nil
}

// Update applies a partial update to a continent.
func (svc *ContinentService) Update(ctx context.Context, id int64, name, description *string) (*models.ContinentDB, error) {
	continent, err := svc.writer.Update(ctx, id, name, description)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return nil, ErrContinentNotFound
		case errors.Is(err, repositories.ErrUniqueViolation):
			return nil, ErrContinentNameTaken
		}
		return nil, err
	}
	return continent, nil
}

// Delete removes a continent. A continent that still owns countries is
// not deleted; the caller must move or delete the countries first.
func (svc *ContinentService) Delete(ctx context.Context, id int64) error {
	if err := svc.writer.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return ErrContinentNotFound
		case errors.Is(err, repositories.ErrForeignKeyViolation):
			return ErrContinentInUse
		}
		return err
	}
	return nil
}
