package main

import (
	"log"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"gudang/internal/handlers"
	"gudang/internal/repositories"
	"gudang/internal/services"
	"gudang/pkg/datastore"

	"github.com/spf13/viper"
)

func main() {
	// --- Configuration ---
	// Set up Viper to read configuration from environment variables.
	viper.SetDefault("GUDANG_DATA_DIR", defaultDataDir())
	viper.AutomaticEnv() // Load environment variables

	dataDir := viper.GetString("GUDANG_DATA_DIR")
	viper.SetDefault("GUDANG_SOCKET", filepath.Join(dataDir, "gudang.sock"))
	socketPath := viper.GetString("GUDANG_SOCKET")

	// --- Initialize Datastore ---
	// One sqlite file per entity type under the data directory, owned by this
	// process for its whole lifetime.
	store, err := datastore.NewClient(datastore.Config{Dir: dataDir})
	if err != nil {
		log.Fatalf("Failed to initialize datastore: %v", err)
	}
	defer store.Close() // Ensure the collection files are closed on exit

	// --- Initialize Repositories ---
	productRepo := repositories.NewGORMProductRepository(store.Products)
	categoryRepo := repositories.NewGORMCategoryRepository(store.Categories)
	supplierRepo := repositories.NewGORMSupplierRepository(store.Suppliers)

	// --- Initialize Services ---
	productService := services.NewProductService(productRepo)
	categoryService := services.NewCategoryService(categoryRepo)
	supplierService := services.NewSupplierService(supplierRepo)
	statsService := services.NewStatsService(productRepo)

	// --- Initialize Handlers ---
	productHandler := handlers.NewProductHandler(productService, statsService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	supplierHandler := handlers.NewSupplierHandler(supplierService)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New()) // Request logger

	// --- Bridge Routes ---
	// Group routes under /api/v1
	apiV1 := app.Group("/api/v1")

	productHandler.RegisterRoutes(apiV1)
	categoryHandler.RegisterRoutes(apiV1)
	supplierHandler.RegisterRoutes(apiV1)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Start Bridge Server ---
	// The UI process talks to us over a unix domain socket; nothing listens
	// on the network. Remove a stale socket left by a previous run first.
	if err := os.Remove(socketPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove stale socket %s: %v", socketPath, err)
	}
	ln, err := net.Listen("unix", socketPath)
	if err != nil {
		log.Fatalf("Failed to listen on socket %s: %v", socketPath, err)
	}

	log.Printf("Starting bridge server on %s", socketPath)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listener(ln); err != nil {
			log.Fatalf("Bridge server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	<-quit
	log.Println("Shutting down bridge server...")

	// Shutdown Fiber app
	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	// Closing the datastore is handled by defer in main
	log.Println("Bridge server gracefully stopped")
}

// defaultDataDir resolves the per-installation application data directory.
func defaultDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, "gudang")
}
