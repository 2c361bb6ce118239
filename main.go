package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"

	cachemod "github.com/tungnhan410/Cty-ban-lieu-xay-dung/modules/cache"
	catalogmod "github.com/tungnhan410/Cty-ban-lieu-xay-dung/modules/catalog"
	ordersmod "github.com/tungnhan410/Cty-ban-lieu-xay-dung/modules/orders"
	registrymod "github.com/tungnhan410/Cty-ban-lieu-xay-dung/modules/registry"
	uploadsmod "github.com/tungnhan410/Cty-ban-lieu-xay-dung/modules/uploads"
	webmod "github.com/tungnhan410/Cty-ban-lieu-xay-dung/modules/web"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// Load configuration from environment
	httpPort := getEnvInt("HTTP_PORT", 3000)
	dbPath := getEnv("DB_PATH", "./store.db")
	registryDBPath := getEnv("REGISTRY_DB_PATH", "./users.db")
	uploadDir := getEnv("UPLOAD_DIR", "./uploads")
	sessionSecret := getEnv("SESSION_SECRET", "dev-secret-change-me")
	redisAddr := getEnv("REDIS_ADDR", "")
	cacheTTL := getEnvDuration("CACHE_TTL", 5*time.Minute)

	log.Println("=== Cty Ban Vat Lieu Xay Dung ===")
	log.Printf("HTTP Port: %d", httpPort)
	log.Printf("Database: %s", dbPath)
	log.Printf("Registry Database: %s", registryDBPath)
	log.Printf("Upload Dir: %s", uploadDir)
	if redisAddr != "" {
		log.Printf("Redis: %s (TTL: %s)", redisAddr, cacheTTL)
	} else {
		log.Println("Redis: disabled (set REDIS_ADDR to enable the catalog cache)")
	}

	// Create mono application
	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create mono application: %v", err)
	}

	// Create modules
	catalogModule := catalogmod.NewModule(dbPath)
	ordersModule := ordersmod.NewModule(dbPath)
	uploadsModule := uploadsmod.NewModule(uploadDir)
	registryModule := registrymod.NewModule(registryDBPath)
	webModule := webmod.NewModule(webmod.Config{
		Port:          httpPort,
		SessionSecret: sessionSecret,
		UploadDir:     uploadDir,
	}, app.Logger())

	// The cache is optional; without Redis the catalog reads straight from
	// SQLite.
	if redisAddr != "" {
		cacheModule := cachemod.NewModule(redisAddr, cacheTTL)
		app.Register(cacheModule)
		catalogModule.SetCacheModule(cacheModule)
	}

	// Uploads and registry are reached in-process, not over the bus.
	webModule.SetUploadsModule(uploadsModule)
	webModule.SetRegistryModule(registryModule)

	// Register modules; web comes last so its dependencies are started
	// before the server accepts requests.
	app.Register(catalogModule)
	app.Register(ordersModule)
	app.Register(uploadsModule)
	app.Register(registryModule)
	app.Register(webModule)

	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	log.Println("=== Application Started ===")
	log.Printf("Storefront at http://localhost:%d/", httpPort)
	log.Printf("Admin at http://localhost:%d/admin", httpPort)
	log.Println("Press Ctrl+C to shutdown")

	// Setup graceful shutdown using gelmium/graceful-shutdown
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

// getEnv returns environment variable value or default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns environment variable as int or default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
		log.Printf("Warning: invalid int value for %s: %s, using default: %d", key, value, defaultValue)
	}
	return defaultValue
}

// getEnvDuration returns environment variable as duration or default.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		log.Printf("Warning: invalid duration value for %s: %s, using default: %s", key, value, defaultValue)
	}
	return defaultValue
}
