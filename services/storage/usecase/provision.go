package usecase

import (
	"context"
	"errors"

	"github.com/piresc/taxilake/internal/pkg/logger"
	"github.com/piresc/taxilake/internal/pkg/models"
	"github.com/piresc/taxilake/services/storage"
)

// EnsureBucket creates the configured bucket unless it already exists.
// It never returns an error; the outcome is carried by the result status.
func (uc *StorageUC) EnsureBucket(ctx context.Context) models.ProvisionResult {
	result := models.ProvisionResult{Bucket: uc.bucket}
	if uc.bucket == "" {
		result.Status = models.ProvisionFailed
		result.Err = storage.ErrEmptyBucketName
		return result
	}

	location, err := uc.storageGW.CreateBucket(ctx, uc.bucket)
	switch {
	case err == nil:
		result.Status = models.ProvisionCreated
		result.Location = location
		uc.logger.Info("Bucket created",
			logger.String("bucket", uc.bucket),
			logger.String("location", location))
	case errors.Is(err, storage.ErrBucketAlreadyOwned):
		result.Status = models.ProvisionAlreadyOwned
		uc.logger.Info("Bucket already exists and is owned by caller",
			logger.String("bucket", uc.bucket))
	case errors.Is(err, storage.ErrBucketNameTaken):
		result.Status = models.ProvisionNameCollision
		result.Err = err
		uc.logger.Warn("Bucket name is taken by another account",
			logger.String("bucket", uc.bucket),
			logger.Err(err))
	default:
		result.Status = models.ProvisionFailed
		result.Err = err
		uc.logger.Error("Failed to create bucket",
			logger.String("bucket", uc.bucket),
			logger.Err(err))
	}
	return result
}
