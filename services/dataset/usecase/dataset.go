package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/piresc/taxilake/internal/pkg/constants"
	"github.com/piresc/taxilake/internal/pkg/logger"
	"github.com/piresc/taxilake/internal/pkg/models"
	"github.com/piresc/taxilake/services/dataset"
)

var (
	ErrInvalidMonth       = errors.New("month must be between 1 and 12")
	ErrInvalidRecordCount = errors.New("records per month must not be negative")
)

type datasetUC struct {
	cfg    models.DatasetConfig
	repo   dataset.DatasetRepo
	logger *logger.ZapLogger
}

// NewDatasetUC creates a new dataset use case
func NewDatasetUC(cfg models.DatasetConfig, repo dataset.DatasetRepo, l *logger.ZapLogger) (dataset.DatasetUC, error) {
	for _, m := range cfg.Months {
		if m < 1 || m > 12 {
			return nil, fmt.Errorf("%w: got %d", ErrInvalidMonth, m)
		}
	}
	if cfg.RecordsPerMonth < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRecordCount, cfg.RecordsPerMonth)
	}

	return &datasetUC{
		cfg:    cfg,
		repo:   repo,
		logger: l,
	}, nil
}

// GenerateAll writes the three lab datasets from one seeded stream.
// The enero file continues the stream left by the full file, so files must be
// produced in this order to be reproducible.
func (uc *datasetUC) GenerateAll(ctx context.Context) ([]models.DatasetFile, error) {
	gen := NewSeededGenerator(uc.cfg.Seed, uc.cfg.Year)
	files := make([]models.DatasetFile, 0, 3)

	uc.logger.Info("Generating synthetic trips",
		logger.Int64("seed", uc.cfg.Seed),
		logger.Int("year", uc.cfg.Year),
		logger.Ints("months", uc.cfg.Months),
		logger.Int("records_per_month", uc.cfg.RecordsPerMonth))

	full := make([]models.TripRecord, 0, len(uc.cfg.Months)*uc.cfg.RecordsPerMonth)
	for _, m := range uc.cfg.Months {
		full = append(full, gen.Batch(time.Month(m), uc.cfg.RecordsPerMonth)...)
	}
	fullFile, err := uc.repo.WriteTrips(constants.FileTaxiFull, full)
	if err != nil {
		return nil, err
	}
	files = append(files, *fullFile)
	uc.logDataset(fullFile)

	if err := ctx.Err(); err != nil {
		return files, err
	}

	enero := gen.Batch(time.January, uc.cfg.RecordsPerMonth)
	eneroFile, err := uc.repo.WriteTrips(constants.FileTaxiEnero, enero)
	if err != nil {
		return files, err
	}
	files = append(files, *eneroFile)
	uc.logDataset(eneroFile)

	if err := ctx.Err(); err != nil {
		return files, err
	}

	tarjetaFile, err := uc.repo.FilterByPaymentType(constants.FileTaxiFull, constants.FileTaxiTarjeta, models.PaymentCard)
	if err != nil {
		return files, err
	}
	files = append(files, *tarjetaFile)
	uc.logDataset(tarjetaFile)

	return files, nil
}

func (uc *datasetUC) logDataset(file *models.DatasetFile) {
	uc.logger.Info("Dataset written",
		logger.String("file", file.Name),
		logger.String("path", file.Path),
		logger.Int("rows", file.Rows))
}
