package models

// Config represents application configuration
type Config struct {
	App     AppConfig
	AWS     AWSConfig
	Bucket  BucketConfig
	Dataset DatasetConfig
	Logger  LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Version     string
}

// AWSConfig contains the credentials profile and endpoint used by the SDK clients
type AWSConfig struct {
	Profile         string
	Region          string
	EndpointURL     string // S3-compatible endpoint (LocalStack, MinIO); empty means AWS
	AccessKeyID     string
	SecretAccessKey string
}

// BucketConfig names the data lake bucket
type BucketConfig struct {
	Name string
}

// DatasetConfig controls synthetic trip generation
type DatasetConfig struct {
	Seed            int64
	Year            int
	Months          []int
	RecordsPerMonth int
	OutputDir       string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
