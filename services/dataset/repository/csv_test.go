package repository

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/piresc/taxilake/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "vendor,pickup,dropoff,count,distance,ratecode,storeflag,pulocid,dolocid,paytype,fare,extra,mta_tax,tip,tolls,surcharge,total"

func sampleTrip(paytype models.PaymentType, tip float64) models.TripRecord {
	pickup := time.Date(2017, time.January, 3, 7, 5, 0, 0, time.UTC)
	return models.TripRecord{
		VendorID:          "2",
		Pickup:            pickup,
		Dropoff:           pickup.Add(17 * time.Minute),
		PassengerCount:    3,
		Distance:          4,
		RateCode:          models.RateCodeStandard,
		StoreAndFwdFlag:   models.StoreFlagYes,
		PickupLocationID:  12,
		DropoffLocationID: 230,
		PaymentType:       paytype,
		Fare:              12.5,
		Extra:             models.ExtraCharge,
		MTATax:            models.MTATax,
		Tip:               tip,
		Tolls:             models.TollsAmount,
		Surcharge:         models.Surcharge,
		Total:             12.5 + tip + 0.80,
	}
}

func TestWriteTrips(t *testing.T) {
	dir := t.TempDir()
	repo := NewCSVRepository(dir)

	file, err := repo.WriteTrips("trips.csv", []models.TripRecord{
		sampleTrip(models.PaymentCard, 1.25),
		sampleTrip(models.PaymentCash, 0),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, file.Rows)
	assert.Equal(t, filepath.Join(dir, "trips.csv"), file.Path)

	data, err := os.ReadFile(file.Path)
	require.NoError(t, err)
	expected := header + "\n" +
		"2,2017-01-03 07:05:00,2017-01-03 07:22:00,3,4,1,Y,12,230,1,12.50,0.00,0.50,1.25,0.00,0.30,14.55\n" +
		"2,2017-01-03 07:05:00,2017-01-03 07:22:00,3,4,1,Y,12,230,2,12.50,0.00,0.50,0.00,0.00,0.30,13.30\n"
	assert.Equal(t, expected, string(data))
}

func TestWriteTrips_EmptyWritesHeaderOnly(t *testing.T) {
	repo := NewCSVRepository(t.TempDir())

	file, err := repo.WriteTrips("empty.csv", nil)
	require.NoError(t, err)
	assert.Zero(t, file.Rows)

	data, err := os.ReadFile(file.Path)
	require.NoError(t, err)
	assert.Equal(t, header+"\n", string(data))
}

func TestFilterByPaymentType(t *testing.T) {
	dir := t.TempDir()
	repo := NewCSVRepository(dir)

	trips := []models.TripRecord{
		sampleTrip(models.PaymentCard, 1.00),
		sampleTrip(models.PaymentCash, 0),
		sampleTrip(models.PaymentCard, 2.00),
		sampleTrip(models.PaymentDispute, 3.00),
		sampleTrip(models.PaymentCard, 3.00),
	}
	_, err := repo.WriteTrips("full.csv", trips)
	require.NoError(t, err)

	file, err := repo.FilterByPaymentType("full.csv", "card.csv", models.PaymentCard)
	require.NoError(t, err)
	assert.Equal(t, 3, file.Rows)

	data, err := os.ReadFile(filepath.Join(dir, "card.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, header, lines[0])
	assert.Equal(t, strings.Join(trips[0].Row(), ","), lines[1])
	assert.Equal(t, strings.Join(trips[2].Row(), ","), lines[2])
	assert.Equal(t, strings.Join(trips[4].Row(), ","), lines[3])
}

func TestFilterRows_ReordersColumns(t *testing.T) {
	// Columns shuffled relative to TripHeader; output must follow TripHeader
	columns := append([]string{}, models.TripHeader...)
	columns[0], columns[9] = columns[9], columns[0]
	row := make([]string, len(columns))
	for i, c := range columns {
		row[i] = c + "-v"
	}
	row[0] = "1"
	src := strings.Join(columns, ",") + "\n" + strings.Join(row, ",") + "\n"

	var out bytes.Buffer
	rows, err := filterRows(strings.NewReader(src), &out, models.PaymentCard)
	require.NoError(t, err)
	assert.Equal(t, 1, rows)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, header, lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "vendor-v,pickup-v,"), lines[1])
}

func TestFilterRows_MissingColumn(t *testing.T) {
	var out bytes.Buffer
	_, err := filterRows(strings.NewReader("vendor,pickup\n1,2017-01-01 00:00:00\n"), &out, models.PaymentCard)

	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestFilterByPaymentType_MissingSource(t *testing.T) {
	repo := NewCSVRepository(t.TempDir())

	_, err := repo.FilterByPaymentType("nope.csv", "card.csv", models.PaymentCard)
	assert.Error(t, err)
}
