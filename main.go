package main

import (
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/swaggo/swag"

	"restaurant_finder/config"
	"restaurant_finder/db"
	_ "restaurant_finder/docs" // swagger annotations
	"restaurant_finder/handlers"
	"restaurant_finder/logger"
	"restaurant_finder/scheduler"
	"restaurant_finder/services"
)

func main() {
	cfg := config.Load()

	if err := logger.Init(cfg); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	logger.Info("Logger initialized", "level", cfg.Log.Level, "format", cfg.Log.Format, "output", cfg.Log.Output)

	if err := db.InitSQLite(cfg); err != nil {
		logger.Error("SQLite initialization failed", "error", err, "path", cfg.DB.Path)
		os.Exit(1)
	}
	logger.Info("SQLite ready", "path", cfg.DB.Path)

	catalogue, err := services.NewJSONCatalogue(cfg.Data.Dir)
	if err != nil {
		logger.Error("Catalogue load failed", "error", err, "dir", cfg.Data.Dir)
		os.Exit(1)
	}

	generator := services.NewTextGenerator(cfg)
	concierge := services.NewConciergeService(catalogue, generator, nil, cfg.Concierge.MaxSuggestions)
	insights := services.NewInsightsService(cfg.Data.Dir)
	auth := services.NewAuthService()

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	handlers.RegisterRoutes(r, cfg, concierge, insights, auth)

	scheduler.Start(cfg, insights)

	logger.Info("Server starting", "address", cfg.Server.Addr)
	log.Fatal(http.ListenAndServe(cfg.Server.Addr, r))
}
