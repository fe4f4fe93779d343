package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viagemtrack/travelog/internal/models"
	"github.com/viagemtrack/travelog/internal/repositories"
	"github.com/viagemtrack/travelog/internal/services"
)

func TestVisitService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("zero visit date defaults to now", func(t *testing.T) {
		mockWriter := services.NewMockVisitWriter(ctrl)
		svc := services.NewVisitService(services.NewMockVisitReader(ctrl), mockWriter)

		before := time.Now()
		mockWriter.EXPECT().
			Create(gomock.Any(), int64(1), int64(10), gomock.Any(), gomock.Nil()).
			DoAndReturn(func(_ context.Context, userID, cityID int64, visitDate time.Time, comment *string) (*models.VisitDB, error) {
				assert.False(t, visitDate.Before(before))
				return &models.VisitDB{VisitID: 5, UserID: userID, CityID: cityID, VisitDate: visitDate}, nil
			})

		visit, err := svc.Create(context.Background(), 1, 10, time.Time{}, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(5), visit.VisitID)
	})

	t.Run("explicit visit date is kept", func(t *testing.T) {
		mockWriter := services.NewMockVisitWriter(ctrl)
		svc := services.NewVisitService(services.NewMockVisitReader(ctrl), mockWriter)

		date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		mockWriter.EXPECT().
			Create(gomock.Any(), int64(1), int64(10), date, gomock.Nil()).
			Return(&models.VisitDB{VisitID: 5, VisitDate: date}, nil)

		visit, err := svc.Create(context.Background(), 1, 10, date, nil)
		require.NoError(t, err)
		assert.Equal(t, date, visit.VisitDate)
	})

	t.Run("second visit of the same city is a conflict", func(t *testing.T) {
		mockWriter := services.NewMockVisitWriter(ctrl)
		svc := services.NewVisitService(services.NewMockVisitReader(ctrl), mockWriter)

		mockWriter.EXPECT().
			Create(gomock.Any(), int64(1), int64(10), gomock.Any(), gomock.Nil()).
			Return(nil, repositories.ErrUniqueViolation)

		_, err := svc.Create(context.Background(), 1, 10, time.Time{}, nil)
		assert.ErrorIs(t, err, services.ErrVisitAlreadyRecorded)
	})

	t.Run("unknown user or city", func(t *testing.T) {
		mockWriter := services.NewMockVisitWriter(ctrl)
		svc := services.NewVisitService(services.NewMockVisitReader(ctrl), mockWriter)

		mockWriter.EXPECT().
			Create(gomock.Any(), int64(99), int64(10), gomock.Any(), gomock.Nil()).
			Return(nil, repositories.ErrForeignKeyViolation)

		_, err := svc.Create(context.Background(), 99, 10, time.Time{}, nil)
		assert.ErrorIs(t, err, services.ErrVisitTargetDoesNotExist)
	})
}

func TestVisitService_Update_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockVisitWriter(ctrl)
	svc := services.NewVisitService(services.NewMockVisitReader(ctrl), mockWriter)

	mockWriter.EXPECT().
		Update(gomock.Any(), int64(99), gomock.Nil(), gomock.Nil(), false).
		Return(nil, repositories.ErrNotFound)

	_, err := svc.Update(context.Background(), 99, nil, nil, false)
	assert.ErrorIs(t, err, services.ErrVisitNotFound)
}

func TestVisitService_Check(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("visited", func(t *testing.T) {
		mockReader := services.NewMockVisitReader(ctrl)
		svc := services.NewVisitService(mockReader, services.NewMockVisitWriter(ctrl))

		mockReader.EXPECT().
			GetByUserAndCity(gomock.Any(), int64(1), int64(10)).
			Return(&models.VisitDB{VisitID: 5, UserID: 1, CityID: 10}, nil)

		visited, visit, err := svc.Check(context.Background(), 1, 10)
		require.NoError(t, err)
		assert.True(t, visited)
		require.NotNil(t, visit)
		assert.Equal(t, int64(5), visit.VisitID)
	})

	t.Run("absence is not an error", func(t *testing.T) {
		mockReader := services.NewMockVisitReader(ctrl)
		svc := services.NewVisitService(mockReader, services.NewMockVisitWriter(ctrl))

		mockReader.EXPECT().
			GetByUserAndCity(gomock.Any(), int64(1), int64(11)).
			Return(nil, repositories.ErrNotFound)

		visited, visit, err := svc.Check(context.Background(), 1, 11)
		require.NoError(t, err)
		assert.False(t, visited)
		assert.Nil(t, visit)
	})
}
