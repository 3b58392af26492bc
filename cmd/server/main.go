package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bistro-pos/internal/config"
	"bistro-pos/internal/core"
	"bistro-pos/internal/handlers"
	"bistro-pos/internal/logger"
	"bistro-pos/internal/middleware"
	"bistro-pos/internal/models"
	"bistro-pos/internal/seed"
	"bistro-pos/internal/storage"
	"bistro-pos/internal/ws"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found")
	}

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatal("config: ", err)
	}

	logg := logger.New("bistro-pos")

	var gateway storage.Gateway
	if cfg.Database.Driver == "memory" {
		gateway = storage.NewMemoryGateway()
	} else {
		gw, err := storage.Open(cfg.Database.Driver, cfg.Database.DSN)
		if err != nil {
			logg.Error("startup", "database connection failed", err)
			os.Exit(1)
		}
		gateway = gw
	}

	store := core.New(gateway, logg)
	store.SetCanvas(cfg.Canvas.Width, cfg.Canvas.Height)
	if err := store.Load(); err != nil {
		logg.Error("startup", "load collections failed", err)
		os.Exit(1)
	}
	if store.Empty() {
		logg.Info("startup", "empty database, installing seed data")
		store.Bootstrap(seed.Snapshot())
	}

	hub := ws.NewHub(logg)
	store.SetKOTListener(func(kot models.KOT) {
		eventType := "kot_updated"
		if kot.Status == models.KOTStatusNew {
			eventType = "kot_created"
		}
		hub.BroadcastKOT(eventType, kot)
	})

	secret := []byte(cfg.Auth.JWTSecret)
	h := handlers.New(store, secret, time.Duration(cfg.Auth.TokenTTLMin)*time.Minute)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "online"}) })
	r.POST("/login", h.Login)

	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(secret))
	{
		api.GET("/menu", h.GetMenu)

		api.GET("/tables", h.ListTables)
		api.GET("/tables/:id", h.GetTable)
		api.GET("/tables/:id/order", h.GetTableOrder)
		api.PUT("/tables/:id/position", h.MoveTable)

		api.GET("/orders", h.ListOrders)
		api.GET("/orders/:id", h.GetOrder)
		api.POST("/orders/items", h.AddItem)
		api.PUT("/orders/:id/items/:itemId", h.EditItem)
		api.PATCH("/orders/:id/items/:itemId/quantity", h.ChangeQuantity)
		api.PATCH("/orders/:id/items/:itemId/toppings", h.ToggleTopping)
		api.DELETE("/orders/:id/items/:itemId", h.RemoveItem)
		api.DELETE("/orders/:id/items", h.ClearUnsentItems)
		api.POST("/orders/:id/send", h.SendToKitchen)
		api.POST("/orders/:id/bill", h.GenerateBill)
		api.POST("/orders/:id/payment", h.ProcessPayment)

		api.GET("/kots", h.ListKOTs)
		api.PATCH("/kots/:id/status", h.AdvanceKOT)

		api.GET("/inventory", middleware.RequirePermission(store, models.PermViewInventory), h.GetInventory)
		api.GET("/purchase-orders", middleware.RequirePermission(store, models.PermViewInventory), h.ListPurchaseOrders)
		api.POST("/purchase-orders/:id/receive", h.ReceivePurchaseOrder)

		api.GET("/reports/sales", middleware.RequirePermission(store, models.PermViewSalesReports), h.GetSalesReport)
	}

	r.GET("/ws/kitchen", middleware.AuthMiddleware(secret),
		middleware.RequirePermission(store, models.PermViewKitchenDisplay), hub.Serve)

	// Prometheus scrapes a separate port so the metrics surface never
	// shares auth or CORS with the API.
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		logg.Info("startup", "metrics server listening", "addr", cfg.MetricsAddr())
		if err := http.ListenAndServe(cfg.MetricsAddr(), mux); err != nil {
			logg.Error("metrics", "metrics server stopped", err)
		}
	}()

	srv := &http.Server{Addr: cfg.Addr(), Handler: r}
	go func() {
		logg.Info("startup", "server listening", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error("startup", "server stopped", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logg.Info("shutdown", "signal received, draining connections")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logg.Error("shutdown", "forced shutdown", err)
	}
}
