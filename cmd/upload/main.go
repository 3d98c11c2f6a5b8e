package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/taxilake/internal/pkg/awsclient"
	"github.com/piresc/taxilake/internal/pkg/config"
	"github.com/piresc/taxilake/internal/pkg/constants"
	"github.com/piresc/taxilake/internal/pkg/logger"
	"github.com/piresc/taxilake/services/storage/gateway"
	"github.com/piresc/taxilake/services/storage/usecase"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	appName := "upload"
	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	configPath := fs.String("config", config.DefaultConfigPath, "path to the env config file")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	configs := config.InitConfig(*configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, appName)
	if err != nil {
		log.Printf("Failed to create Zap logger: %v", err)
		return 1
	}
	defer zapLogger.Close()

	runID := uuid.NewString()
	runLogger := zapLogger.WithRun(runID)
	logger.SetGlobalLogger(runLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("bucket", configs.Bucket.Name),
		logger.String("source_dir", configs.Dataset.OutputDir))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	awsCfg, err := awsclient.LoadConfig(ctx, configs.AWS)
	if err != nil {
		runLogger.Error("Failed to load AWS configuration", logger.Err(err))
		return 1
	}

	storageGW := gateway.NewS3GW(awsclient.NewS3Client(awsCfg, configs.AWS), configs.AWS.Region)
	storageUC := usecase.NewStorageUC(configs.Bucket.Name, runID, storageGW, runLogger, stdout)

	start := time.Now()
	reports, err := storageUC.UploadLanding(ctx, configs.Dataset.OutputDir, constants.LandingPlan())
	if err != nil {
		runLogger.Error("Upload failed", logger.Err(err))
		return 1
	}
	logger.Info("Landing zone uploaded",
		logger.Int("files", len(reports)),
		logger.Duration("elapsed", time.Since(start)))

	if _, err := storageUC.ListObjects(ctx); err != nil {
		runLogger.Error("Listing failed", logger.Err(err))
		return 1
	}
	return 0
}
