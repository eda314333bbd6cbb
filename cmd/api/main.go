package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobboard-admin/config"
	_ "jobboard-admin/docs" // Important for Swagger
	v1 "jobboard-admin/internal/delivery/http/v1"
	"jobboard-admin/internal/repository/firestoredb"
	"jobboard-admin/internal/usecase"
	"jobboard-admin/pkg/auth"
	"jobboard-admin/pkg/blobstore"
	"jobboard-admin/pkg/logger"
	"jobboard-admin/pkg/redis"
)

// @title           Job Board Admin API
// @version         1.0
// @description     Admin dashboard backend for managing job postings.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting job board admin backend", "port", cfg.Port)

	ctx := context.Background()

	// 3. Setup Firestore
	fsClient, err := firestoredb.NewClient(ctx, cfg.GCPProjectID)
	if err != nil {
		logger.Log.Error("Failed to connect to Firestore", "error", err)
		os.Exit(1)
	}
	defer fsClient.Close()

	// 4. Setup Blob Storage
	blobs, err := newBlobStore(ctx, cfg)
	if err != nil {
		logger.Log.Error("Failed to initialize blob storage", "error", err)
		os.Exit(1)
	}

	// 5. Setup Redis (optional; rate limiting falls back to in-memory)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
	} else {
		defer redis.Close()
	}

	// 6. Setup Identity Provider and Token Verifier
	identity := auth.NewProvider(cfg.IdentityBaseURL, cfg.IdentityAPIKey)
	keys := auth.NewKeySet(cfg.IdentityJWKSURL)
	verifier := auth.NewVerifier(keys, cfg.TokenIssuer, cfg.TokenAudience)

	// 7. Setup Repositories and UseCases
	jobRepo := firestoredb.NewJobRepository(fsClient, cfg.JobCollection)
	sessionUC := usecase.NewSessionUsecase(identity)
	jobUC := usecase.NewJobUsecase(jobRepo, blobs, sessionUC, time.Local, cfg.ListingLimit)
	healthUC := usecase.NewHealthUsecase()

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		SessionUC: sessionUC,
		JobUC:     jobUC,
		HealthUC:  healthUC,
		Verifier:  verifier,
		Config:    cfg,
		Location:  time.Local,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

func newBlobStore(ctx context.Context, cfg *config.Config) (blobstore.Store, error) {
	switch cfg.BlobProvider {
	case "s3":
		return blobstore.NewS3Store(ctx, blobstore.S3Config{
			Region:          cfg.S3Region,
			AccessKeyID:     cfg.S3AccessKey,
			SecretAccessKey: cfg.S3SecretKey,
			Bucket:          cfg.LogoBucket,
			Endpoint:        cfg.S3Endpoint,
			URLPrefix:       cfg.LogoURLPrefix,
		})
	default:
		return blobstore.NewGCSStore(ctx, cfg.LogoBucket, cfg.LogoURLPrefix)
	}
}
