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

func int64Ptr(v int64) *int64 { return &v }

func TestCityService_List_CountryFilterWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockCityReader(ctrl)
	svc := services.NewCityService(mockReader, services.NewMockCityWriter(ctrl), services.NewMockCityVisitLister(ctrl))

	// When both filters are given the continent filter is dropped.
	mockReader.EXPECT().
		List(gomock.Any(), 1, 10, gomock.Not(gomock.Nil()), gomock.Nil()).
		Return([]models.CityListItem{}, int64(0), nil)

	_, _, err := svc.List(context.Background(), 1, 10, int64Ptr(1), int64Ptr(6))
	assert.NoError(t, err)
}

func TestCityService_Get_AttachesVisits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockCityReader(ctrl)
	mockVisits := services.NewMockCityVisitLister(ctrl)
	svc := services.NewCityService(mockReader, services.NewMockCityWriter(ctrl), mockVisits)

	mockReader.EXPECT().
		GetByID(gomock.Any(), int64(10)).
		Return(&models.CityDetail{CityDB: models.CityDB{CityID: 10, Name: "São Paulo"}}, nil)
	mockVisits.EXPECT().
		ListByCity(gomock.Any(), int64(10)).
		Return([]models.CityVisit{{VisitID: 5, User: models.UserSummary{UserID: 1, Name: "Ana"}}}, nil)

	detail, err := svc.Get(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, detail.Visits, 1)
	assert.Equal(t, "Ana", detail.Visits[0].User.Name)
}

func TestCityService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockCityReader(ctrl)
	svc := services.NewCityService(mockReader, services.NewMockCityWriter(ctrl), services.NewMockCityVisitLister(ctrl))

	mockReader.EXPECT().
		GetByID(gomock.Any(), int64(99)).
		Return(nil, repositories.ErrNotFound)

	_, err := svc.Get(context.Background(), 99)
	assert.ErrorIs(t, err, services.ErrCityNotFound)
}

func TestCityService_Create_UnknownCountry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockCityWriter(ctrl)
	svc := services.NewCityService(services.NewMockCityReader(ctrl), mockWriter, services.NewMockCityVisitLister(ctrl))

	mockWriter.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, repositories.ErrForeignKeyViolation)

	_, err := svc.Create(context.Background(), repositories.CityFields{Name: strPtr("Nowhere"), CountryID: int64Ptr(99)})
	assert.ErrorIs(t, err, services.ErrCountryDoesNotExist)
}

func TestCityService_Delete_InUse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockCityWriter(ctrl)
	svc := services.NewCityService(services.NewMockCityReader(ctrl), mockWriter, services.NewMockCityVisitLister(ctrl))

	mockWriter.EXPECT().
		Delete(gomock.Any(), int64(10)).
		Return(repositories.ErrForeignKeyViolation)

	assert.ErrorIs(t, svc.Delete(context.Background(), 10), services.ErrCityInUse)
}
