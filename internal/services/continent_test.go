package services_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viagemtrack/travelog/internal/models"
	"github.com/viagemtrack/travelog/internal/repositories"
	"github.com/viagemtrack/travelog/internal/services"
)

func TestContinentService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("assembles detail with countries", func(t *testing.T) {
		mockReader := services.NewMockContinentReader(ctrl)
		mockCountries := services.NewMockCountrySummaryLister(ctrl)
		svc := services.NewContinentService(mockReader, services.NewMockContinentWriter(ctrl), mockCountries)

		mockReader.EXPECT().
			GetByID(gomock.Any(), int64(6)).
			Return(&models.ContinentDB{ContinentID: 6, Name: "South America"}, nil)
		mockCountries.EXPECT().
			ListSummariesByContinent(gomock.Any(), int64(6)).
			Return([]models.CountrySummary{{CountryID: 1, Name: "Brazil"}}, nil)

		detail, err := svc.Get(context.Background(), 6)
		require.NoError(t, err)
		assert.Equal(t, "South America", detail.Name)
		require.Len(t, detail.Countries, 1)
		assert.Equal(t, "Brazil", detail.Countries[0].Name)
	})

	t.Run("not found", func(t *testing.T) {
		mockReader := services.NewMockContinentReader(ctrl)
		svc := services.NewContinentService(mockReader, services.NewMockContinentWriter(ctrl), services.NewMockCountrySummaryLister(ctrl))

		mockReader.EXPECT().
			GetByID(gomock.Any(), int64(99)).
			Return(nil, repositories.ErrNotFound)

		_, err := svc.Get(context.Background(), 99)
		assert.ErrorIs(t, err, services.ErrContinentNotFound)
	})
}

func TestContinentService_Create_DuplicateName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockContinentWriter(ctrl)
	svc := services.NewContinentService(services.NewMockContinentReader(ctrl), mockWriter, services.NewMockCountrySummaryLister(ctrl))

	mockWriter.EXPECT().
		Create(gomock.Any(), "Oceania", gomock.Nil()).
		Return(nil, repositories.ErrUniqueViolation)

	_, err := svc.Create(context.Background(), "Oceania", nil)
	assert.ErrorIs(t, err, services.ErrContinentNameTaken)
}

func TestContinentService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name      string
		writerErr error
		wantErr   error
	}{
		{name: "success"},
		{name: "not found", writerErr: repositories.ErrNotFound, wantErr: services.ErrContinentNotFound},
		{name: "still has countries", writerErr: repositories.ErrForeignKeyViolation, wantErr: services.ErrContinentInUse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWriter := services.NewMockContinentWriter(ctrl)
			svc := services.NewContinentService(services.NewMockContinentReader(ctrl), mockWriter, services.NewMockCountrySummaryLister(ctrl))

			mockWriter.EXPECT().
				Delete(gomock.Any(), int64(6)).
				Return(tt.writerErr)

			err := svc.Delete(context.Background(), 6)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
