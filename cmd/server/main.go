package main

import (
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"clinic_backend/internal/app/router"
	careersadapters "clinic_backend/internal/feature/careers/adapters"
	careershandler "clinic_backend/internal/feature/careers/transport/handler"
	careersusecase "clinic_backend/internal/feature/careers/usecase"
	useradminadapters "clinic_backend/internal/feature/useradmin/adapters"
	"clinic_backend/internal/feature/useradmin/adapters/authapi"
	useradminhandler "clinic_backend/internal/feature/useradmin/transport/handler"
	useradminusecase "clinic_backend/internal/feature/useradmin/usecase"
	"clinic_backend/internal/platform/cache"
	infradb "clinic_backend/internal/platform/db"
	"clinic_backend/internal/platform/guard"
	platformhttp "clinic_backend/internal/platform/http"
	infraredis "clinic_backend/internal/platform/redis"
)

// loadDotenv picks up the nearest .env for local development. Deployed
// environments configure everything through real environment variables.
func loadDotenv() {
	for _, p := range []string{".env", filepath.Join("..", ".env"), filepath.Join("..", "..", ".env")} {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Overload(p)
			slog.Info("loaded env file", "path", p)
			return
		}
	}
}

func main() {
	loadDotenv()

	// db
	db := infradb.OpenDB()

	// Redis (optional: the directory cache degrades to passthrough)
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		slog.Warn("Redis unavailable, running without directory cache", "error", err)
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	// Auth service client
	authCfg := authapi.LoadConfig()
	if authCfg.BaseURL == "" || authCfg.ServiceKey == "" {
		// Admin endpoints answer 500 until this is fixed; the public
		// routes still work.
		slog.Warn("AUTH_API_URL or AUTH_SERVICE_KEY not set; admin endpoints are disabled")
	}
	httpClient := platformhttp.NewHTTPClient(authCfg.Timeout)
	directoryClient := authapi.NewClient(authCfg, httpClient)

	// Repositories
	directory := cache.NewCachingDirectoryRepository(rdb, cache.TTLFromEnv(), directoryClient, "directory")
	profiles := useradminadapters.NewProfilePostgres(db)
	applications := careersadapters.NewApplicationPostgres(db)

	// Usecases
	adminUC := useradminusecase.NewUserAdminUsecase(directory, profiles)
	careersUC := careersusecase.NewCareersUsecase(applications)

	// Handlers
	usersH := useradminhandler.NewUserAdminHandler(adminUC)
	careersH := careershandler.NewCareersHandler(careersUC)

	// AccessGuard: local signature pre-check when the shared JWT secret
	// is configured, remote token resolution either way.
	adminOnly := guard.AdminRequired(directory, os.Getenv("AUTH_JWT_SECRET"))

	r := router.NewRouter(usersH, careersH, adminOnly)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
