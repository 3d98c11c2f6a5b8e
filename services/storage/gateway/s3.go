package gateway

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/piresc/taxilake/internal/pkg/constants"
	"github.com/piresc/taxilake/internal/pkg/models"
	"github.com/piresc/taxilake/services/storage"
)

// S3 error codes returned by CreateBucket
const (
	errCodeBucketAlreadyOwnedByYou = "BucketAlreadyOwnedByYou"
	errCodeBucketAlreadyExists     = "BucketAlreadyExists"
)

// S3API is the subset of the S3 client used by the gateway
type S3API interface {
	CreateBucket(ctx context.Context, params *s3.CreateBucketInput, optFns ...func(*s3.Options)) (*s3.CreateBucketOutput, error)
	s3.ListObjectsV2APIClient
	manager.UploadAPIClient
}

var _ S3API = (*s3.Client)(nil)

type s3GW struct {
	client   S3API
	uploader *manager.Uploader
	region   string
}

// NewS3GW creates a storage gateway backed by S3 in the given region
func NewS3GW(client S3API, region string) storage.StorageGW {
	return &s3GW{
		client:   client,
		uploader: manager.NewUploader(client),
		region:   region,
	}
}

// CreateBucket creates the bucket. Outside us-east-1 S3 requires the region
// as location constraint.
func (g *s3GW) CreateBucket(ctx context.Context, bucket string) (string, error) {
	input := &s3.CreateBucketInput{
		Bucket: aws.String(bucket),
	}
	if g.region != "" && g.region != constants.DefaultRegion {
		input.CreateBucketConfiguration = &types.CreateBucketConfiguration{
			LocationConstraint: types.BucketLocationConstraint(g.region),
		}
	}

	output, err := g.client.CreateBucket(ctx, input)
	if err != nil {
		return "", classifyCreateBucketError(err)
	}
	return aws.ToString(output.Location), nil
}

func classifyCreateBucketError(err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case errCodeBucketAlreadyOwnedByYou:
			return fmt.Errorf("%w: %w", storage.ErrBucketAlreadyOwned, err)
		case errCodeBucketAlreadyExists:
			return fmt.Errorf("%w: %w", storage.ErrBucketNameTaken, err)
		}
	}
	return fmt.Errorf("S3 CreateBucket API call failed: %w", err)
}

// UploadObject streams body to bucket/key through the upload manager
func (g *s3GW) UploadObject(ctx context.Context, bucket, key string, body io.Reader, metadata map[string]string) error {
	_, err := g.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(constants.ContentTypeCSV),
		Metadata:    metadata,
	})
	if err != nil {
		return fmt.Errorf("S3 upload of s3://%s/%s failed: %w", bucket, key, err)
	}
	return nil
}

// ListObjects returns every object in the bucket, following continuation tokens
func (g *s3GW) ListObjects(ctx context.Context, bucket string) ([]models.ObjectInfo, error) {
	paginator := s3.NewListObjectsV2Paginator(g.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
	})

	objects := make([]models.ObjectInfo, 0)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("S3 ListObjectsV2 API call failed: %w", err)
		}
		for _, obj := range page.Contents {
			objects = append(objects, models.ObjectInfo{
				Key:  aws.ToString(obj.Key),
				Size: aws.ToInt64(obj.Size),
			})
		}
	}
	return objects, nil
}
