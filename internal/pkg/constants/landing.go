package constants

import "github.com/piresc/taxilake/internal/pkg/models"

// Local dataset file names
const (
	FileTaxiFull    = "taxi_full.csv"
	FileTaxiEnero   = "taxi_enero.csv"
	FileTaxiTarjeta = "taxi_tarjeta.csv"
)

// Landing zone object keys
const (
	KeyLandingTaxiFull    = "landing/taxis/2017/taxi_full.csv"
	KeyLandingTaxiEnero   = "landing/taxis/2017/enero/taxi_enero.csv"
	KeyLandingTaxiTarjeta = "landing/taxis/2017/paytype_1/taxi_tarjeta.csv"
)

// LandingPlan returns the upload plan in the order files are pushed
func LandingPlan() []models.UploadTarget {
	return []models.UploadTarget{
		{LocalFile: FileTaxiFull, Key: KeyLandingTaxiFull},
		{LocalFile: FileTaxiEnero, Key: KeyLandingTaxiEnero},
		{LocalFile: FileTaxiTarjeta, Key: KeyLandingTaxiTarjeta},
	}
}

// Object metadata and content type attached to uploads
const (
	MetadataRunID  = "run-id"
	ContentTypeCSV = "text/csv"
)

// DefaultRegion is the region where CreateBucket takes no location constraint
const DefaultRegion = "us-east-1"
