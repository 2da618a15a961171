package main

import (
	"go.uber.org/zap"

	"github.com/shawalli/contact-card/config"
	"github.com/shawalli/contact-card/gate"
	"github.com/shawalli/contact-card/handler"
	"github.com/shawalli/contact-card/router"
	"github.com/shawalli/contact-card/store"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	db, err := config.InitPostgres(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	contacts := store.NewPostgres(db)
	h := &handler.Handler{
		Store: contacts,
		Gate:  gate.New(contacts),
		Log:   logger,
	}

	r := router.Setup(cfg, h)
	logger.Info("starting server", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
