package services

import (
	"context"
	"errors"
	"time"

	"github.com/viagemtrack/travelog/internal/logger"
	"github.com/viagemtrack/travelog/internal/models"
	"github.com/viagemtrack/travelog/internal/repositories"
)

// Error variables
var (
	ErrVisitNotFound           = errors.New("visit not found")
	ErrVisitAlreadyRecorded    = errors.New("city already recorded as visited")
	ErrVisitTargetDoesNotExist = errors.New("referenced user or city does not exist")
)

// VisitReader defines read operations for visits.
type VisitReader interface {
	ListByUser(ctx context.Context, userID int64, page, limit int) ([]models.VisitListItem, int64, error)
	GetByUserAndCity(ctx context.Context, userID, cityID int64) (*models.VisitDB, error)
}

// VisitWriter defines write operations for visits.
type VisitWriter interface {
	Create(ctx context.Context, userID, cityID int64, visitDate time.Time, comment *string) (*models.VisitDB, error)
	Update(ctx context.Context, id int64, visitDate *time.Time, comment *string, commentSet bool) (*models.VisitDB, error)
	Delete(ctx context.Context, id int64) error
}

// VisitService handles the per-user travel journal.
type VisitService struct {
	reader VisitReader
	writer VisitWriter
}

// NewVisitService creates a new VisitService instance.
func NewVisitService(reader VisitReader, writer VisitWriter) *VisitService {
	return &VisitService{
		reader: reader,
		writer: writer,
	}
}

// ListByUser returns one page of a user's visits, newest first.
func (svc *VisitService) ListByUser(ctx context.Context, userID int64, page, limit int) ([]models.VisitListItem, int64, error) {
	return svc.reader.ListByUser(ctx, userID, page, limit)
}

// Create records a city as visited by a user. A user records a city at
// most once; a second attempt is a conflict, never an overwrite. A zero
// visitDate defaults to now.
func (svc *VisitService) Create(ctx context.Context, userID, cityID int64, visitDate time.Time, comment *string) (*models.VisitDB, error) {
	if visitDate.IsZero() {
		visitDate = time.Now()
	}

	visit, err := svc.writer.Create(ctx, userID, cityID, visitDate, comment)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrUniqueViolation):
			logger.Log.Infow("duplicate visit rejected", "user_id", userID, "city_id", cityID)
			return nil, ErrVisitAlreadyRecorded
		case errors.Is(err, repositories.ErrForeignKeyViolation):
			return nil, ErrVisitTargetDoesNotExist
		}
		return nil, err
	}
	return visit, nil
}

// Update changes the visit date and/or comment of a recorded visit.
func (svc *VisitService) Update(ctx context.Context, id int64, visitDate *time.Time, comment *string, commentSet bool) (*models.VisitDB, error) {
	visit, err := svc.writer.Update(ctx, id, visitDate, comment, commentSet)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrVisitNotFound
		}
		return nil, err
	}
	return visit, nil
}

// Delete removes a recorded visit.
func (svc *VisitService) Delete(ctx context.Context, id int64) error {
	if err := svc.writer.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrVisitNotFound
		}
		return err
	}
	return nil
}

// Check reports whether a user has recorded a city as visited, along with
// the visit when one exists. Absence is an expected outcome, not a
// failure.
func (svc *VisitService) Check(ctx context.Context, userID, cityID int64) (bool, *models.VisitDB, error) {
	visit, err := svc.reader.GetByUserAndCity(ctx, userID, cityID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return false, nil, nil
		}
		return false, nil, err
	}
	return true, visit, nil
}
