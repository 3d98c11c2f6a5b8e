package storage

import (
	"context"

	"github.com/piresc/taxilake/internal/pkg/models"
)

// StorageUC defines the bucket provisioning and landing zone upload use cases
type StorageUC interface {
	EnsureBucket(ctx context.Context) models.ProvisionResult
	UploadLanding(ctx context.Context, dir string, plan []models.UploadTarget) ([]models.UploadReport, error)
	ListObjects(ctx context.Context) ([]models.ObjectInfo, error)
}
