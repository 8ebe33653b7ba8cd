package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"riskradar/internal/cache"
	"riskradar/internal/config"
	"riskradar/internal/repository"
	"riskradar/internal/scoring"
	"riskradar/internal/service"
	"riskradar/internal/sheets"
	"riskradar/internal/transport/rest"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	// Ping MongoDB
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDatabase)

	// Redis connection; the in-memory cache covers redis-less setups
	var tableCache cache.TableCache
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Printf("Warning: Redis unavailable (%v), using in-memory table cache", err)
		tableCache = cache.NewMemoryTableCache(cfg.CacheTTL, nil)
	} else {
		log.Println("Connected to Redis")
		tableCache = cache.NewTableCache(rdb, cfg.CacheTTL)
	}

	sheetURLs := cfg.SheetURLs()
	if len(sheetURLs) == 0 {
		log.Println("Warning: no sheet URLs configured, all pathways serve fallback tables")
	}

	// Initialize repositories
	reportRepo := repository.NewReportRepo(db)

	// Initialize services
	fetcher := sheets.NewClient(sheetURLs, cfg.FetchTimeout)
	weightsSvc := service.NewWeightsService(fetcher, tableCache)
	engine := scoring.NewEngine(log.Default())
	assessmentSvc := service.NewAssessmentService(weightsSvc, reportRepo, engine)

	// Create router with container
	container := &rest.Container{
		AssessmentService: assessmentSvc,
		WeightsService:    weightsSvc,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/assessments")
		log.Println("  GET  /v1/assessments?pathway={pathway}")
		log.Println("  GET  /v1/assessments/{id}")
		log.Println("  GET  /v1/pathways")
		log.Println("  GET  /v1/pathways/{pathway}/questions")
		log.Println("  DELETE /v1/cache[/{pathway}]")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed:", err)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
