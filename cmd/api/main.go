package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	_ "bookinggo/docs"
	"bookinggo/internal/config"
	"bookinggo/internal/db"
	httpapi "bookinggo/internal/http"
	"bookinggo/internal/http/handlers"
	"bookinggo/internal/logging"
)

// @title       Booking API
// @version     1.0
// @description Product catalog and booking service.
// @BasePath    /
func main() {
	cfg := config.Load()

	logger, err := logging.New()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	gdb, err := db.Open(context.Background(), cfg.DatabaseURL, logger)
	if err != nil {
		logger.Fatal("database open failed", zap.Error(err))
	}

	products := handlers.NewProductsHandler(gdb, logger)
	bookings := handlers.NewBookingsHandler(gdb, logger)
	router := httpapi.NewRouter(products, bookings, logger)

	logger.Info("listening", zap.String("addr", cfg.BindAddr))
	if err := router.Run(cfg.BindAddr); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
