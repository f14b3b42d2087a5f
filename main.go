package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"cinemania/cmd"
	"cinemania/internal/event"
	"cinemania/internal/wire"
	"cinemania/pkg/database"
	"cinemania/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using production defaults.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.InitDB(ctx, config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	if config.Database.AutoMigrate {
		if err := database.Migrate(ctx, config.Database, logger); err != nil {
			logger.Fatal("Failed to apply migrations", zap.Error(err))
		}
	}

	var publisher event.Publisher = event.NoopPublisher{}
	if config.AMQP.URL != "" {
		amqpPublisher, err := event.NewAMQPPublisher(config.AMQP.URL, config.AMQP.Queue, logger)
		if err != nil {
			// events are best effort, keep serving without them
			logger.Warn("Ticket events disabled", zap.Error(err))
		} else {
			publisher = amqpPublisher
			logger.Info("Ticket events enabled", zap.String("queue", config.AMQP.Queue))
		}
	}
	defer publisher.Close()

	app := wire.Wiring(db, config, publisher, logger)

	if err := cmd.APIServer(ctx, app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
		return
	}

	logger.Info("Server stopped")
}
