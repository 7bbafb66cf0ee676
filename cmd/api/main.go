package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/pizzeria-pos/backend/internal/config"
	"github.com/pizzeria-pos/backend/internal/logger"
	"github.com/pizzeria-pos/backend/internal/modules/catalog"
	"github.com/pizzeria-pos/backend/internal/modules/customer"
	"github.com/pizzeria-pos/backend/internal/modules/ingredient"
	"github.com/pizzeria-pos/backend/internal/modules/order"
	"github.com/pizzeria-pos/backend/internal/modules/settings"
	"github.com/pizzeria-pos/backend/internal/modules/staff"
)

func main() {
	cfg := config.Load()
	log := logger.New()
	defer log.Sync()

	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Staff & authentication ──────────────────────────────
	hasher := staff.NewBcryptHasher()
	staffRepo := staff.NewJSONRepository(cfg.DataDir, hasher, log)
	staffService := staff.NewService(staffRepo, hasher, []byte(cfg.JWTSecret), log)
	staff.NewHandler(staffService).RegisterRoutes(router)

	// ── Catalog & pantry ────────────────────────────────────
	catalogRepo := catalog.NewJSONRepository(cfg.DataDir, log)
	catalogService := catalog.NewService(catalogRepo, log)
	catalog.NewHandler(catalogService).RegisterRoutes(router)

	ingredientRepo := ingredient.NewJSONRepository(cfg.DataDir, log)
	ingredientService := ingredient.NewService(ingredientRepo, log)
	ingredient.NewHandler(ingredientService).RegisterRoutes(router)

	// ── Customers & loyalty ─────────────────────────────────
	customerRepo := customer.NewJSONRepository(cfg.DataDir, log)
	customerService := customer.NewService(customerRepo, log)
	customer.NewHandler(customerService).RegisterRoutes(router)

	// ── Orders ──────────────────────────────────────────────
	orderRepo := order.NewJSONRepository(cfg.DataDir, log)
	orderService := order.NewService(orderRepo, catalogService, customerService, time.Now, log)
	order.NewHandler(orderService).RegisterRoutes(router)

	// ── Shop settings ───────────────────────────────────────
	settingsStore := settings.NewStore(cfg.DataDir, log)
	settings.NewHandler(settingsStore).RegisterRoutes(router)

	log.Info("pizzeria POS API starting",
		zap.String("port", cfg.Port),
		zap.String("data_dir", cfg.DataDir))
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
