package dataset

import (
	"github.com/piresc/taxilake/internal/pkg/models"
)

// DatasetRepo defines the file operations behind dataset generation
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/taxilake/services/dataset DatasetRepo
type DatasetRepo interface {
	// WriteTrips writes the header and one row per trip, returning the row count
	WriteTrips(name string, trips []models.TripRecord) (*models.DatasetFile, error)
	// FilterByPaymentType copies rows of src whose paytype matches into dst
	FilterByPaymentType(src, dst string, paytype models.PaymentType) (*models.DatasetFile, error)
}
