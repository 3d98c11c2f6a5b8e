package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/taxilake/internal/pkg/constants"
	"github.com/piresc/taxilake/internal/pkg/logger"
	"github.com/piresc/taxilake/internal/pkg/models"
	"github.com/piresc/taxilake/services/dataset"
	"github.com/piresc/taxilake/services/dataset/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ dataset.DatasetRepo = (*mocks.MockDatasetRepo)(nil)

func TestGenerateAll_CallsRepoInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDatasetRepo(ctrl)
	cfg := models.DatasetConfig{Seed: 7, Year: 2017, Months: []int{2, 3}, RecordsPerMonth: 5}
	uc, err := NewDatasetUC(cfg, mockRepo, logger.NewNopLogger())
	require.NoError(t, err)

	gomock.InOrder(
		mockRepo.EXPECT().
			WriteTrips(constants.FileTaxiFull, gomock.Any()).
			DoAndReturn(func(name string, trips []models.TripRecord) (*models.DatasetFile, error) {
				require.Len(t, trips, 10)
				assert.Equal(t, 2, int(trips[0].Pickup.Month()))
				assert.Equal(t, 3, int(trips[9].Pickup.Month()))
				return &models.DatasetFile{Name: name, Rows: len(trips)}, nil
			}),
		mockRepo.EXPECT().
			WriteTrips(constants.FileTaxiEnero, gomock.Any()).
			DoAndReturn(func(name string, trips []models.TripRecord) (*models.DatasetFile, error) {
				require.Len(t, trips, 5)
				for _, trip := range trips {
					assert.Equal(t, 1, int(trip.Pickup.Month()))
				}
				return &models.DatasetFile{Name: name, Rows: len(trips)}, nil
			}),
		mockRepo.EXPECT().
			FilterByPaymentType(constants.FileTaxiFull, constants.FileTaxiTarjeta, models.PaymentCard).
			Return(&models.DatasetFile{Name: constants.FileTaxiTarjeta, Rows: 4}, nil),
	)

	files, err := uc.GenerateAll(context.Background())

	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, constants.FileTaxiFull, files[0].Name)
	assert.Equal(t, constants.FileTaxiEnero, files[1].Name)
	assert.Equal(t, constants.FileTaxiTarjeta, files[2].Name)
	assert.Equal(t, 4, files[2].Rows)
}

func TestGenerateAll_WriteErrorStopsRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDatasetRepo(ctrl)
	uc, err := NewDatasetUC(models.DatasetConfig{Seed: 42, Year: 2017, Months: []int{1}, RecordsPerMonth: 3}, mockRepo, logger.NewNopLogger())
	require.NoError(t, err)
	cause := errors.New("disk full")

	mockRepo.EXPECT().
		WriteTrips(constants.FileTaxiFull, gomock.Any()).
		Return(nil, cause).
		Times(1)

	files, err := uc.GenerateAll(context.Background())

	assert.ErrorIs(t, err, cause)
	assert.Empty(t, files)
}

func TestGenerateAll_FilterErrorKeepsWrittenFiles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDatasetRepo(ctrl)
	uc, err := NewDatasetUC(models.DatasetConfig{Seed: 42, Year: 2017, Months: []int{1}, RecordsPerMonth: 3}, mockRepo, logger.NewNopLogger())
	require.NoError(t, err)
	cause := errors.New("permission denied")

	mockRepo.EXPECT().
		WriteTrips(gomock.Any(), gomock.Any()).
		DoAndReturn(func(name string, trips []models.TripRecord) (*models.DatasetFile, error) {
			return &models.DatasetFile{Name: name, Rows: len(trips)}, nil
		}).
		Times(2)
	mockRepo.EXPECT().
		FilterByPaymentType(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, cause).
		Times(1)

	files, err := uc.GenerateAll(context.Background())

	assert.ErrorIs(t, err, cause)
	assert.Len(t, files, 2)
}
