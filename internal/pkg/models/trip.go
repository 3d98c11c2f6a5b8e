package models

import (
	"strconv"
	"time"
)

// TimestampLayout is the layout of pickup and dropoff columns
const TimestampLayout = "2006-01-02 15:04:05"

// PaymentType is the settlement code of a trip
type PaymentType string

const (
	PaymentCard     PaymentType = "1"
	PaymentCash     PaymentType = "2"
	PaymentNoCharge PaymentType = "3"
	PaymentDispute  PaymentType = "4"
)

// Fixed charges applied to every trip
const (
	RateCodeStandard = "1"
	StoreFlagYes     = "Y"
	ExtraCharge      = 0.00
	MTATax           = 0.50
	TollsAmount      = 0.00
	Surcharge        = 0.30
)

// TripHeader is the CSV header of every dataset file
var TripHeader = []string{
	"vendor", "pickup", "dropoff", "count", "distance",
	"ratecode", "storeflag", "pulocid", "dolocid",
	"paytype", "fare", "extra", "mta_tax", "tip",
	"tolls", "surcharge", "total",
}

// PaytypeColumn is the index of the paytype column in TripHeader
const PaytypeColumn = 9

// TripRecord represents one synthetic taxi ride
type TripRecord struct {
	VendorID          string      `json:"vendor"`
	Pickup            time.Time   `json:"pickup"`
	Dropoff           time.Time   `json:"dropoff"`
	PassengerCount    int         `json:"count"`
	Distance          int         `json:"distance"`
	RateCode          string      `json:"ratecode"`
	StoreAndFwdFlag   string      `json:"storeflag"`
	PickupLocationID  int         `json:"pulocid"`
	DropoffLocationID int         `json:"dolocid"`
	PaymentType       PaymentType `json:"paytype"`
	Fare              float64     `json:"fare"`
	Extra             float64     `json:"extra"`
	MTATax            float64     `json:"mta_tax"`
	Tip               float64     `json:"tip"`
	Tolls             float64     `json:"tolls"`
	Surcharge         float64     `json:"surcharge"`
	Total             float64     `json:"total"`
}

// Duration returns the time between pickup and dropoff
func (t TripRecord) Duration() time.Duration {
	return t.Dropoff.Sub(t.Pickup)
}

// Row serializes the record in TripHeader order
func (t TripRecord) Row() []string {
	return []string{
		t.VendorID,
		t.Pickup.Format(TimestampLayout),
		t.Dropoff.Format(TimestampLayout),
		strconv.Itoa(t.PassengerCount),
		strconv.Itoa(t.Distance),
		t.RateCode,
		t.StoreAndFwdFlag,
		strconv.Itoa(t.PickupLocationID),
		strconv.Itoa(t.DropoffLocationID),
		string(t.PaymentType),
		formatAmount(t.Fare),
		formatAmount(t.Extra),
		formatAmount(t.MTATax),
		formatAmount(t.Tip),
		formatAmount(t.Tolls),
		formatAmount(t.Surcharge),
		formatAmount(t.Total),
	}
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
