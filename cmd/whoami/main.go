package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/piresc/taxilake/internal/pkg/awsclient"
	"github.com/piresc/taxilake/internal/pkg/config"
	"github.com/piresc/taxilake/internal/pkg/logger"
	"github.com/piresc/taxilake/services/identity/gateway"
	"github.com/piresc/taxilake/services/identity/usecase"
)

func main() {
	os.Exit(run())
}

func run() int {
	appName := "whoami"
	configPath := flag.String("config", config.DefaultConfigPath, "path to the env config file")
	flag.Parse()
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
		logger.String("profile", configs.AWS.Profile),
		logger.String("region", configs.AWS.Region))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	awsCfg, err := awsclient.LoadConfig(ctx, configs.AWS)
	if err != nil {
		runLogger.Error("Failed to load AWS configuration", logger.Err(err))
		return 1
	}

	identityGW := gateway.NewSTSGW(awsclient.NewSTSClient(awsCfg, configs.AWS))
	identityUC := usecase.NewIdentityUC(identityGW, runLogger, os.Stdout)

	if _, err := identityUC.WhoAmI(ctx); err != nil {
		runLogger.Error("Credential check failed", logger.Err(err))
		return 1
	}
	return 0
}
