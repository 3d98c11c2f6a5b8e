package config

import (
	"log"
	"strconv"
	"strings"

	"github.com/piresc/taxilake/internal/pkg/models"
	"github.com/spf13/viper"
)

// DefaultConfigPath is the env file read when no -config flag is given
const DefaultConfigPath = "config/lab.env"

var defaults = map[string]interface{}{
	"APP_NAME":                  "taxilake",
	"APP_ENV":                   "local",
	"APP_VERSION":               "dev",
	"AWS_PROFILE":               "inbest",
	"AWS_REGION":                "us-east-1",
	"BUCKET_NAME":               "datalake-taxi-villarreal-2017",
	"DATASET_SEED":              42,
	"DATASET_YEAR":              2017,
	"DATASET_MONTHS":            "1,2,3",
	"DATASET_RECORDS_PER_MONTH": 200,
	"DATASET_OUTPUT_DIR":        ".",
	"LOG_LEVEL":                 "info",
}

// InitConfig builds the configuration from the env file at configPath and the
// process environment. Environment variables take precedence over the file.
// The file is only read when APP_ENV is "local" (the default).
func InitConfig(configPath string) *models.Config {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if v.GetString("APP_ENV") == "local" && configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			log.Println("error loading config from file", err)
		}
	}

	return loadConfig(v)
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Version = v.GetString("APP_VERSION")

	// AWS config
	configs.AWS.Profile = v.GetString("AWS_PROFILE")
	configs.AWS.Region = v.GetString("AWS_REGION")
	configs.AWS.EndpointURL = v.GetString("AWS_ENDPOINT_URL")
	configs.AWS.AccessKeyID = v.GetString("AWS_ACCESS_KEY_ID")
	configs.AWS.SecretAccessKey = v.GetString("AWS_SECRET_ACCESS_KEY")

	// Bucket config
	configs.Bucket.Name = v.GetString("BUCKET_NAME")

	// Dataset config
	configs.Dataset.Seed = getInt64(v, "DATASET_SEED", 42)
	configs.Dataset.Year = getInt(v, "DATASET_YEAR", 2017)
	configs.Dataset.Months = getIntList(v, "DATASET_MONTHS", []int{1, 2, 3})
	configs.Dataset.RecordsPerMonth = getInt(v, "DATASET_RECORDS_PER_MONTH", 200)
	configs.Dataset.OutputDir = v.GetString("DATASET_OUTPUT_DIR")

	// Logger config
	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	return configs
}

func getInt(v *viper.Viper, key string, defaultValue int) int {
	value, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getInt64(v *viper.Viper, key string, defaultValue int64) int64 {
	value, err := strconv.ParseInt(strings.TrimSpace(v.GetString(key)), 10, 64)
	if err != nil {
		log.Printf("Warning: Invalid int64 value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getIntList(v *viper.Viper, key string, defaultValue []int) []int {
	raw := strings.TrimSpace(v.GetString(key))
	if raw == "" {
		return defaultValue
	}

	parts := strings.Split(raw, ",")
	values := make([]int, 0, len(parts))
	for _, part := range parts {
		value, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			log.Printf("Warning: Invalid integer list for %s, using default: %v", key, defaultValue)
			return defaultValue
		}
		values = append(values, value)
	}
	return values
}
