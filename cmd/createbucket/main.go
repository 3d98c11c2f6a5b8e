package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/piresc/taxilake/internal/pkg/awsclient"
	"github.com/piresc/taxilake/internal/pkg/config"
	"github.com/piresc/taxilake/internal/pkg/logger"
	"github.com/piresc/taxilake/internal/pkg/models"
	"github.com/piresc/taxilake/services/storage/gateway"
	"github.com/piresc/taxilake/services/storage/usecase"
)

const (
	exitOK            = 0
	exitFailed        = 1
	exitNameCollision = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	appName := "createbucket"
	configPath := flag.String("config", config.DefaultConfigPath, "path to the env config file")
	flag.Parse()
	configs := config.InitConfig(*configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, appName)
	if err != nil {
		log.Printf("Failed to create Zap logger: %v", err)
		return exitFailed
	}
	defer zapLogger.Close()

	runLogger := zapLogger.WithRun(uuid.NewString())
	logger.SetGlobalLogger(runLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
		logger.String("bucket", configs.Bucket.Name),
		logger.String("region", configs.AWS.Region))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	awsCfg, err := awsclient.LoadConfig(ctx, configs.AWS)
	if err != nil {
		runLogger.Error("Failed to load AWS configuration", logger.Err(err))
		return exitFailed
	}

	storageGW := gateway.NewS3GW(awsclient.NewS3Client(awsCfg, configs.AWS), configs.AWS.Region)
	storageUC := usecase.NewStorageUC(configs.Bucket.Name, "", storageGW, runLogger, os.Stdout)

	result := storageUC.EnsureBucket(ctx)
	return report(os.Stdout, result)
}

// report prints the outcome for the operator and returns the exit code
func report(w io.Writer, result models.ProvisionResult) int {
	switch result.Status {
	case models.ProvisionCreated:
		fmt.Fprintf(w, "Bucket '%s' created successfully.\n", result.Bucket)
		return exitOK
	case models.ProvisionAlreadyOwned:
		fmt.Fprintf(w, "Bucket '%s' already exists and is yours, nothing to do.\n", result.Bucket)
		return exitOK
	case models.ProvisionNameCollision:
		fmt.Fprintf(w, "Bucket name '%s' is already taken by another account; choose a different name.\n", result.Bucket)
		return exitNameCollision
	default:
		fmt.Fprintf(w, "Error creating bucket '%s': %v\n", result.Bucket, result.Err)
		return exitFailed
	}
}
