package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piresc/taxilake/internal/pkg/constants"
	"github.com/piresc/taxilake/internal/pkg/logger"
	"github.com/piresc/taxilake/internal/pkg/models"
)

// UploadLanding pushes every file of the plan from dir to the bucket, in plan
// order. The first failure stops the run; reports for the files already
// uploaded are returned with the error.
func (uc *StorageUC) UploadLanding(ctx context.Context, dir string, plan []models.UploadTarget) ([]models.UploadReport, error) {
	reports := make([]models.UploadReport, 0, len(plan))
	for _, target := range plan {
		if err := ctx.Err(); err != nil {
			return reports, err
		}

		report, err := uc.uploadFile(ctx, dir, target)
		if err != nil {
			uc.logger.Error("Failed to upload file",
				logger.String("file", target.LocalFile),
				logger.String("key", target.Key),
				logger.Err(err))
			return reports, err
		}
		reports = append(reports, *report)
	}
	return reports, nil
}

func (uc *StorageUC) uploadFile(ctx context.Context, dir string, target models.UploadTarget) (*models.UploadReport, error) {
	path := filepath.Join(dir, target.LocalFile)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	printUploadLine(uc.out, target.LocalFile, info.Size(), uc.bucket, target.Key)

	uc.logger.Debug("Starting upload",
		logger.String("path", path),
		logger.String("key", target.Key))
	metadata := map[string]string{constants.MetadataRunID: uc.runID}
	if err := uc.storageGW.UploadObject(ctx, uc.bucket, target.Key, f, metadata); err != nil {
		return nil, err
	}

	uc.logger.Info("File uploaded",
		logger.String("file", target.LocalFile),
		logger.String("bucket", uc.bucket),
		logger.String("key", target.Key),
		logger.Int64("size", info.Size()))

	return &models.UploadReport{UploadTarget: target, Size: info.Size()}, nil
}

// ListObjects lists the whole bucket and prints one line per object
func (uc *StorageUC) ListObjects(ctx context.Context) ([]models.ObjectInfo, error) {
	objects, err := uc.storageGW.ListObjects(ctx, uc.bucket)
	if err != nil {
		uc.logger.Error("Failed to list bucket",
			logger.String("bucket", uc.bucket),
			logger.Err(err))
		return nil, err
	}

	printListing(uc.out, uc.bucket, objects)
	uc.logger.Info("Bucket listed",
		logger.String("bucket", uc.bucket),
		logger.Int("objects", len(objects)))
	return objects, nil
}
