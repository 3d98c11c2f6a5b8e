package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTripRecord_Row(t *testing.T) {
	pickup := time.Date(2017, time.February, 28, 23, 50, 0, 0, time.UTC)
	trip := TripRecord{
		VendorID:          "1",
		Pickup:            pickup,
		Dropoff:           pickup.Add(25 * time.Minute),
		PassengerCount:    1,
		Distance:          25,
		RateCode:          RateCodeStandard,
		StoreAndFwdFlag:   StoreFlagYes,
		PickupLocationID:  1,
		DropoffLocationID: 265,
		PaymentType:       PaymentNoCharge,
		Fare:              65,
		MTATax:            MTATax,
		Tip:               9.1,
		Surcharge:         Surcharge,
		Total:             74.9,
	}

	row := trip.Row()

	assert.Len(t, row, len(TripHeader))
	assert.Equal(t, []string{
		"1", "2017-02-28 23:50:00", "2017-03-01 00:15:00", "1", "25", "1", "Y", "1", "265", "3",
		"65.00", "0.00", "0.50", "9.10", "0.00", "0.30", "74.90",
	}, row)
	assert.Equal(t, "paytype", TripHeader[PaytypeColumn])
	assert.Equal(t, 25*time.Minute, trip.Duration())
}

func TestProvisionResult(t *testing.T) {
	assert.True(t, ProvisionResult{Status: ProvisionCreated}.OK())
	assert.True(t, ProvisionResult{Status: ProvisionAlreadyOwned}.OK())
	assert.False(t, ProvisionResult{Status: ProvisionNameCollision}.OK())
	assert.False(t, ProvisionResult{Status: ProvisionFailed}.OK())

	assert.Equal(t, "ALREADY_OWNED", ProvisionAlreadyOwned.String())
	assert.Equal(t, "UNKNOWN", ProvisionStatus(42).String())
}
