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

func strPtr(s string) *string { return &s }

func TestCountryService_Create_NormalizesFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name   string
		in     repositories.CountryFields
		verify func(t *testing.T, f repositories.CountryFields)
	}{
		{
			name: "official language falls back to language",
			in:   repositories.CountryFields{Name: strPtr("Brazil"), Language: strPtr("Portuguese")},
			verify: func(t *testing.T, f repositories.CountryFields) {
				require.NotNil(t, f.OfficialLanguage)
				assert.Equal(t, "Portuguese", *f.OfficialLanguage)
			},
		},
		{
			name: "language falls back to official language",
			in:   repositories.CountryFields{Name: strPtr("Brazil"), OfficialLanguage: strPtr("Portuguese")},
			verify: func(t *testing.T, f repositories.CountryFields) {
				require.NotNil(t, f.Language)
				assert.Equal(t, "Portuguese", *f.Language)
			},
		},
		{
			name: "country code defaults to lowercased ISO code",
			in:   repositories.CountryFields{Name: strPtr("Brazil"), ISOCode: strPtr("BR")},
			verify: func(t *testing.T, f repositories.CountryFields) {
				require.NotNil(t, f.CountryCode)
				assert.Equal(t, "br", *f.CountryCode)
			},
		},
		{
			name: "explicit country code wins over ISO code",
			in:   repositories.CountryFields{Name: strPtr("Brazil"), ISOCode: strPtr("BR"), CountryCode: strPtr("bra")},
			verify: func(t *testing.T, f repositories.CountryFields) {
				assert.Equal(t, "bra", *f.CountryCode)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWriter := services.NewMockCountryWriter(ctrl)
			svc := services.NewCountryService(services.NewMockCountryReader(ctrl), mockWriter, services.NewMockCitySummaryLister(ctrl))

			mockWriter.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, f repositories.CountryFields) (*models.CountryDB, error) {
					tt.verify(t, f)
					return &models.CountryDB{CountryID: 1, Name: *f.Name}, nil
				})

			_, err := svc.Create(context.Background(), tt.in)
			require.NoError(t, err)
		})
	}
}

func TestCountryService_Create_UnknownContinent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockCountryWriter(ctrl)
	svc := services.NewCountryService(services.NewMockCountryReader(ctrl), mockWriter, services.NewMockCitySummaryLister(ctrl))

	mockWriter.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, repositories.ErrForeignKeyViolation)

	_, err := svc.Create(context.Background(), repositories.CountryFields{Name: strPtr("Brazil")})
	assert.ErrorIs(t, err, services.ErrContinentDoesNotExist)
}

func TestCountryService_Get_AssemblesDetail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockCountryReader(ctrl)
	mockCities := services.NewMockCitySummaryLister(ctrl)
	svc := services.NewCountryService(mockReader, services.NewMockCountryWriter(ctrl), mockCities)

	mockReader.EXPECT().
		GetByID(gomock.Any(), int64(1)).
		Return(&models.CountryWithContinent{
			CountryDB: models.CountryDB{CountryID: 1, Name: "Brazil"},
			Continent: models.ContinentDB{ContinentID: 6, Name: "South America"},
		}, nil)
	mockCities.EXPECT().
		ListSummariesByCountry(gomock.Any(), int64(1)).
		Return([]models.CitySummary{{CityID: 10, Name: "São Paulo"}}, nil)

	detail, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Brazil", detail.Name)
	assert.Equal(t, "South America", detail.Continent.Name)
	require.Len(t, detail.Cities, 1)
	assert.Equal(t, "São Paulo", detail.Cities[0].Name)
}

func TestCountryService_Delete_InUse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockCountryWriter(ctrl)
	svc := services.NewCountryService(services.NewMockCountryReader(ctrl), mockWriter, services.NewMockCitySummaryLister(ctrl))

	mockWriter.EXPECT().
		Delete(gomock.Any(), int64(1)).
		Return(repositories.ErrForeignKeyViolation)

	assert.ErrorIs(t, svc.Delete(context.Background(), 1), services.ErrCountryInUse)
}
