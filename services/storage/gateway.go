package storage

import (
	"context"
	"io"

	"github.com/piresc/taxilake/internal/pkg/models"
)

// StorageGW defines the object storage operations the lab relies on
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/taxilake/services/storage StorageGW
type StorageGW interface {
	// CreateBucket creates the bucket and returns its location.
	// Returns ErrBucketAlreadyOwned or ErrBucketNameTaken for the two
	// "already exists" outcomes.
	CreateBucket(ctx context.Context, bucket string) (string, error)
	UploadObject(ctx context.Context, bucket, key string, body io.Reader, metadata map[string]string) error
	ListObjects(ctx context.Context, bucket string) ([]models.ObjectInfo, error)
}
