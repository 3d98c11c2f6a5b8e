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
	"time"

	"github.com/google/uuid"
	"github.com/piresc/taxilake/internal/pkg/config"
	"github.com/piresc/taxilake/internal/pkg/logger"
	"github.com/piresc/taxilake/services/dataset/repository"
	"github.com/piresc/taxilake/services/dataset/usecase"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	appName := "gendata"
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

	runLogger := zapLogger.WithRun(uuid.NewString())
	logger.SetGlobalLogger(runLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("output_dir", configs.Dataset.OutputDir))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := os.MkdirAll(configs.Dataset.OutputDir, 0o755); err != nil {
		runLogger.Error("Failed to create output directory",
			logger.String("dir", configs.Dataset.OutputDir),
			logger.Err(err))
		return 1
	}

	datasetRepo := repository.NewCSVRepository(configs.Dataset.OutputDir)
	datasetUC, err := usecase.NewDatasetUC(configs.Dataset, datasetRepo, runLogger)
	if err != nil {
		runLogger.Error("Invalid dataset configuration", logger.Err(err))
		return 1
	}

	start := time.Now()
	files, err := datasetUC.GenerateAll(ctx)
	if err != nil {
		runLogger.Error("Failed to generate datasets", logger.Err(err))
		return 1
	}

	for _, file := range files {
		fmt.Fprintf(stdout, "%s: %d rows\n", file.Name, file.Rows)
	}
	logger.Info("Datasets generated",
		logger.Int("files", len(files)),
		logger.Duration("elapsed", time.Since(start)))
	return 0
}
