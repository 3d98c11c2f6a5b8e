package usecase

import (
	"math"
	"math/rand"
	"time"

	"github.com/piresc/taxilake/internal/pkg/models"
)

// Draw bounds
const (
	minDay, maxDay               = 1, 28
	minDuration, maxDuration     = 5, 60
	minDistance, maxDistance     = 1, 25
	minPassengers, maxPassengers = 1, 4
	minLocationID, maxLocationID = 1, 265
	maxTipFraction               = 0.30
	baseFare                     = 2.50
	farePerUnit                  = 2.50
)

var vendors = []string{"1", "2"}

var paymentTypes = []models.PaymentType{
	models.PaymentCard,
	models.PaymentCash,
	models.PaymentNoCharge,
	models.PaymentDispute,
}

var paymentWeights = []float64{50, 40, 5, 5}

// TripGenerator draws trip records from a single random stream.
// The order of draws inside Generate is fixed; changing it changes every
// dataset produced from a given seed.
type TripGenerator struct {
	rng  *rand.Rand
	year int
}

// NewTripGenerator creates a generator consuming rng for pickups in year
func NewTripGenerator(rng *rand.Rand, year int) *TripGenerator {
	return &TripGenerator{rng: rng, year: year}
}

// NewSeededGenerator creates a generator with its own source seeded with seed
func NewSeededGenerator(seed int64, year int) *TripGenerator {
	return NewTripGenerator(rand.New(rand.NewSource(seed)), year)
}

// Generate draws one trip with a pickup in the given month
func (g *TripGenerator) Generate(month time.Month) models.TripRecord {
	vendor := vendors[g.rng.Intn(len(vendors))]
	day := g.intBetween(minDay, maxDay)
	hour := g.intBetween(0, 23)
	minute := g.intBetween(0, 59)

	pickup := time.Date(g.year, month, day, hour, minute, 0, 0, time.UTC)
	duration := g.intBetween(minDuration, maxDuration)
	dropoff := pickup.Add(time.Duration(duration) * time.Minute)

	distance := g.intBetween(minDistance, maxDistance)
	fare := round2(baseFare + float64(distance)*farePerUnit)
	tip := round2(fare * g.rng.Float64() * maxTipFraction)

	paytype := g.paymentType()
	if paytype == models.PaymentCash {
		tip = 0.00
	}
	total := round2(fare + tip + models.MTATax + models.Surcharge)

	return models.TripRecord{
		VendorID:          vendor,
		Pickup:            pickup,
		Dropoff:           dropoff,
		PassengerCount:    g.intBetween(minPassengers, maxPassengers),
		Distance:          distance,
		RateCode:          models.RateCodeStandard,
		StoreAndFwdFlag:   models.StoreFlagYes,
		PickupLocationID:  g.intBetween(minLocationID, maxLocationID),
		DropoffLocationID: g.intBetween(minLocationID, maxLocationID),
		PaymentType:       paytype,
		Fare:              fare,
		Extra:             models.ExtraCharge,
		MTATax:            models.MTATax,
		Tip:               tip,
		Tolls:             models.TollsAmount,
		Surcharge:         models.Surcharge,
		Total:             total,
	}
}

// Batch draws n trips for the same month
func (g *TripGenerator) Batch(month time.Month, n int) []models.TripRecord {
	trips := make([]models.TripRecord, 0, n)
	for i := 0; i < n; i++ {
		trips = append(trips, g.Generate(month))
	}
	return trips
}

// intBetween draws uniformly from [lo, hi], both inclusive
func (g *TripGenerator) intBetween(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}

func (g *TripGenerator) paymentType() models.PaymentType {
	var total float64
	for _, w := range paymentWeights {
		total += w
	}

	x := g.rng.Float64() * total
	var cumulative float64
	for i, w := range paymentWeights {
		cumulative += w
		if x < cumulative {
			return paymentTypes[i]
		}
	}
	return paymentTypes[len(paymentTypes)-1]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
