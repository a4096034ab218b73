package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/harshitkumar26/Campus-Food-Delivery-System/config"
	controllers "github.com/harshitkumar26/Campus-Food-Delivery-System/controllers"
	middleware "github.com/harshitkumar26/Campus-Food-Delivery-System/middlewares"
	"github.com/harshitkumar26/Campus-Food-Delivery-System/routes"
	"github.com/harshitkumar26/Campus-Food-Delivery-System/store"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	cfg := config.Load()

	connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := config.ConnectMongo(connectCtx, cfg.MongoURI)
	cancel()
	if err != nil {
		logger.Error("mongodb connection failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			logger.Error("mongodb disconnect failed", slog.String("error", err.Error()))
		}
	}()
	logger.Info("connected to mongodb")

	validate := validator.New()

	restaurantStore := store.NewMongoRestaurantStore(config.OpenCollection(client, cfg.DatabaseName, "restaurants"))
	menuStore := store.NewMongoMenuStore(config.OpenCollection(client, cfg.DatabaseName, "menu"))
	ratingStore := store.NewMongoRatingStore(config.OpenCollection(client, cfg.DatabaseName, "ratings"))
	userStore := store.NewMongoUserStore(config.OpenCollection(client, cfg.DatabaseName, "users"))
	blobs := store.NewDiskBlobStore(cfg.StaticDir, "/static")

	restaurantController := controllers.NewRestaurantController(restaurantStore, blobs, validate, logger)
	menuController := controllers.NewMenuController(menuStore, blobs, validate, logger)
	ratingController := controllers.NewRatingController(ratingStore, validate, logger)
	userController := controllers.NewUserController(userStore, logger)

	router := mux.NewRouter()
	router.Use(middleware.RequestLogging(logger))

	routes.RootRoutes(router)
	routes.RestaurantRoutes(router, restaurantController)
	routes.MenuRoutes(router, menuController)
	routes.RatingRoutes(router, ratingController)
	routes.UserRoutes(router, userController)

	// Uploaded images are served straight off the blob directory.
	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.String("error", err.Error()))
	}
}
