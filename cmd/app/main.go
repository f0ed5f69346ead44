package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kitchenpos/cmd"
	httpadapter "kitchenpos/internal/adapters/in/http"
	"kitchenpos/internal/adapters/out/kitchenriders"
	"kitchenpos/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	loadDotEnv()
	configs := cmd.ConfigFromEnv()
	logger := newLogger()

	db, err := gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err = postgres.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	mq, err := kitchenriders.Dial(kitchenriders.Config{
		URL:      configs.RabbitMQURL,
		Exchange: configs.DeliveryExchange,
	})
	if err != nil {
		log.Fatalf("Failed to connect to rabbitmq: %v", err)
	}
	defer mq.Close()

	dispatcher, err := kitchenriders.NewDispatcher(mq, configs.DeliveryExchange, configs.DeliveryRoutingKey, logger)
	if err != nil {
		log.Fatalf("Failed to create delivery dispatcher: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, db, dispatcher, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort, logger)
}

// loadDotEnv seeds the environment from .env when the file exists.
func loadDotEnv() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}
}

func newLogger() *slog.Logger {
	hostname, _ := os.Hostname()
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	logger := slog.New(handler).With(
		slog.String("service", "kitchenpos"),
		slog.String("hostname", hostname),
	)
	slog.SetDefault(logger)
	return logger
}

func startWebServer(app cmd.CompositionRoot, port string, logger *slog.Logger) {
	e, err := httpadapter.NewRouter(app.CreateHTTPServer(), logger)
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP shutdown failed", "error", err)
	}
}
