package usecase

import (
	"io"

	"github.com/piresc/taxilake/internal/pkg/logger"
	"github.com/piresc/taxilake/services/storage"
)

// StorageUC implements the storage use case interface
type StorageUC struct {
	bucket    string
	runID     string
	storageGW storage.StorageGW
	logger    *logger.ZapLogger
	out       io.Writer
}

// NewStorageUC creates a new storage use case. Operator-facing progress lines
// are written to out.
func NewStorageUC(
	bucket string,
	runID string,
	storageGW storage.StorageGW,
	l *logger.ZapLogger,
	out io.Writer,
) *StorageUC {
	return &StorageUC{
		bucket:    bucket,
		runID:     runID,
		storageGW: storageGW,
		logger:    l,
		out:       out,
	}
}

var _ storage.StorageUC = (*StorageUC)(nil)
