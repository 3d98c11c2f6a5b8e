package repository

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/piresc/taxilake/internal/pkg/models"
	"github.com/piresc/taxilake/services/dataset"
)

// ErrMissingColumn is returned when a source file lacks a header column
var ErrMissingColumn = errors.New("missing column in csv header")

// CSVRepository writes dataset files under a base directory
type CSVRepository struct {
	dir string
}

// NewCSVRepository creates a repository rooted at dir
func NewCSVRepository(dir string) dataset.DatasetRepo {
	return &CSVRepository{dir: dir}
}

func (r *CSVRepository) path(name string) string {
	return filepath.Join(r.dir, name)
}

// WriteTrips writes the header followed by one row per trip
func (r *CSVRepository) WriteTrips(name string, trips []models.TripRecord) (file *models.DatasetFile, err error) {
	path := r.path(name)
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(models.TripHeader); err != nil {
		return nil, fmt.Errorf("failed to write header to %s: %w", path, err)
	}
	for _, trip := range trips {
		if err := w.Write(trip.Row()); err != nil {
			return nil, fmt.Errorf("failed to write row to %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush %s: %w", path, err)
	}

	return &models.DatasetFile{Name: name, Path: path, Rows: len(trips)}, nil
}

// FilterByPaymentType reads src back from disk and writes the rows whose
// paytype matches into dst. Columns are emitted in TripHeader order and row
// order is preserved.
func (r *CSVRepository) FilterByPaymentType(src, dst string, paytype models.PaymentType) (file *models.DatasetFile, err error) {
	srcPath := r.path(src)
	in, err := os.Open(srcPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", srcPath, err)
	}
	defer in.Close()

	dstPath := r.path(dst)
	out, err := os.Create(dstPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dstPath, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", dstPath, cerr)
		}
	}()

	rows, err := filterRows(in, out, paytype)
	if err != nil {
		return nil, fmt.Errorf("failed to filter %s into %s: %w", srcPath, dstPath, err)
	}

	return &models.DatasetFile{Name: dst, Path: dstPath, Rows: rows}, nil
}

func filterRows(src io.Reader, dst io.Writer, paytype models.PaymentType) (int, error) {
	reader := csv.NewReader(src)
	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("failed to read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, column := range header {
		index[column] = i
	}
	order := make([]int, len(models.TripHeader))
	for i, column := range models.TripHeader {
		pos, ok := index[column]
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrMissingColumn, column)
		}
		order[i] = pos
	}
	paytypeIdx := order[models.PaytypeColumn]

	writer := csv.NewWriter(dst)
	if err := writer.Write(models.TripHeader); err != nil {
		return 0, err
	}

	rows := 0
	row := make([]string, len(order))
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return rows, err
		}
		if record[paytypeIdx] != string(paytype) {
			continue
		}
		for i, pos := range order {
			row[i] = record[pos]
		}
		if err := writer.Write(row); err != nil {
			return rows, err
		}
		rows++
	}

	writer.Flush()
	return rows, writer.Error()
}
