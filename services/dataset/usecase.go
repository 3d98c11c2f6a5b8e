package dataset

import (
	"context"

	"github.com/piresc/taxilake/internal/pkg/models"
)

// DatasetUC defines the interface for synthetic dataset generation
type DatasetUC interface {
	// GenerateAll writes the full, enero and tarjeta files in that order
	GenerateAll(ctx context.Context) ([]models.DatasetFile, error)
}
