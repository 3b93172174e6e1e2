package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avGenie/go-coffee-settlement/internal/app/config"
	"github.com/avGenie/go-coffee-settlement/internal/app/controller/cli"
	"github.com/avGenie/go-coffee-settlement/internal/app/logger"
	storage "github.com/avGenie/go-coffee-settlement/internal/app/storage/api"
	"github.com/avGenie/go-coffee-settlement/internal/app/usecase/settlement"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	config := config.InitConfig()

	err := logger.Initialize(config)
	if err != nil {
		panic(err)
	}
	defer zap.L().Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
	defer cancel()

	runID := uuid.New()
	zap.ReplaceGlobals(zap.L().With(zap.String("run_id", runID.String())))

	printer, err := cli.NewPrinter(os.Stdout, config.OutputFormat)
	if err != nil {
		zap.L().Fatal("error while creating settlement printer", zap.Error(err))
	}

	sources, err := cli.NewPrompter(os.Stdin, os.Stdout).FillSources(config.Sources())
	if err != nil {
		zap.L().Fatal("error while collecting source paths", zap.Error(err))
	}

	fileStorage, err := storage.InitStorage(config)
	if err != nil {
		zap.L().Fatal("error while initializing storage", zap.Error(err))
	}

	evaluator := settlement.New(fileStorage)
	settlements, err := evaluator.EvaluateAmountPaidAndOwedPerUser(ctx, sources)
	if err != nil {
		zap.L().Fatal("error while evaluating settlements",
			zap.Error(err),
			zap.String("payments", sources.Payments),
			zap.String("products", sources.Products),
			zap.String("orders", sources.Orders),
		)
	}

	err = printer.PrintSettlements(runID, time.Now(), settlements)
	if err != nil {
		zap.L().Fatal("error while printing settlements", zap.Error(err))
	}
}
