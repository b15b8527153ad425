package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"marketstore-be/internal/cart"
	"marketstore-be/internal/catalog"
	"marketstore-be/internal/config"
	"marketstore-be/internal/db"
	"marketstore-be/internal/export"
	"marketstore-be/internal/httpapi"
	"marketstore-be/internal/logger"
	"marketstore-be/internal/order"
	"marketstore-be/internal/product"
	"marketstore-be/internal/review"
	"marketstore-be/internal/supplier"
	"marketstore-be/internal/user"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()
	log := logger.L()

	database := db.InitDB(cfg)
	defer database.Close()

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	supplierRepo := supplier.NewRepository(database)
	supplierSvc := supplier.NewService(supplierRepo)

	catalogRepo := catalog.NewRepository(database)
	catalogSvc := catalog.NewService(catalogRepo)

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	reviewRepo := review.NewRepository(database)
	reviewSvc := review.NewService(reviewRepo)

	cartRepo := cart.NewRepository(database)
	cartSvc := cart.NewService(cartRepo, productRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, cartSvc, userRepo)

	exportRepo := export.NewRepository(database)
	exportSvc := export.NewService(exportRepo)

	srv := httpapi.NewServer(httpapi.Services{
		Users:     userSvc,
		Products:  productSvc,
		Reviews:   reviewSvc,
		Carts:     cartSvc,
		Orders:    orderSvc,
		Suppliers: supplierSvc,
		Catalog:   catalogSvc,
		Exports:   exportSvc,
	})

	httpServer := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: srv.Engine(),
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Error("shutdown error", zap.Error(err))
	}
}
