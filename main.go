package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/bd-address-extractor/app/config"
	"github.com/bd-address-extractor/app/controllers"
	"github.com/bd-address-extractor/app/services"
	"github.com/bd-address-extractor/internal/extractor"
	"github.com/bd-address-extractor/internal/geo"
	"github.com/bd-address-extractor/internal/ner"
	"github.com/bd-address-extractor/routes"
)

func main() {
	loadConfig()

	logger := initLogger()
	defer logger.Sync()

	logger.Info("Starting Address Extraction Service")

	// Geographic knowledge base
	var kb *geo.KnowledgeBase
	if path := viper.GetString("extraction.gazetteer_path"); path != "" {
		kb = geo.NewKnowledgeBaseFromFile(path, logger)
	} else {
		kb = geo.NewKnowledgeBase(logger)
	}

	// NER backend, degrades to disabled when the model is absent
	nerExtractor := ner.New(ner.Config{
		ModelPath:   viper.GetString("ner.model_path"),
		LibraryPath: viper.GetString("ner.library_path"),
		NumThreads:  viper.GetInt("ner.num_threads"),
		MaxSeqLen:   viper.GetInt("ner.max_seq_len"),
	}, logger)
	defer nerExtractor.Close()

	// Extraction pipeline
	ext, err := extractor.New(extractor.Config{
		CacheSize:      viper.GetInt("cache.max_entries"),
		DefaultTimeout: time.Duration(viper.GetInt("extraction.timeout_seconds")) * time.Second,
	}, nerExtractor, kb, logger)
	if err != nil {
		logger.Fatal("Failed to build extractor", zap.Error(err))
	}

	// Shared cache backend
	cacheService := initCache(logger)
	if cacheService != nil {
		defer cacheService.Close()
	}

	addressService := services.NewAddressService(ext, cacheService, logger)
	addressController := controllers.NewAddressController(
		addressService, viper.GetInt("batch.max_addresses"), logger)

	router := gin.New()
	routes.SetupAllRoutes(router, addressController)

	port := getEnv("APP_PORT", strconv.Itoa(viper.GetInt("server.port")))
	server := &http.Server{Addr: ":" + port, Handler: router}

	go func() {
		logger.Info("HTTP server listening", zap.String("port", port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(viper.GetInt("server.shutdown_seconds"))*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Shutdown error", zap.Error(err))
	}
	logger.Info("Server exited")
}

func loadConfig() {
	viper.SetConfigName("app")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.shutdown_seconds", 10)
	viper.SetDefault("cache.backend", "memory")
	viper.SetDefault("cache.max_entries", 10000)
	viper.SetDefault("cache.ttl_minutes", 60)
	viper.SetDefault("extraction.timeout_seconds", 30)
	viper.SetDefault("batch.max_addresses", 20000)

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: cannot read config file: %v", err)
	}

	// keep the yaml config surface in sync for code using config.C
	config.C.Server.Port = viper.GetInt("server.port")
	config.C.Cache.Backend = viper.GetString("cache.backend")
	config.C.Cache.MaxEntries = viper.GetInt("cache.max_entries")
	config.C.Cache.TTLMinutes = viper.GetInt("cache.ttl_minutes")
	config.C.Cache.RedisURL = viper.GetString("cache.redis_url")
	config.C.Extraction.TimeoutSeconds = viper.GetInt("extraction.timeout_seconds")
}

func initLogger() *zap.Logger {
	env := getEnv("APP_ENV", "development")

	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	logger, err := cfg.Build()
	if err != nil {
		log.Fatal("Cannot initialize logger:", err)
	}
	return logger
}

// initCache builds the shared cache for the configured backend. Returns nil
// when the shared cache is disabled; the extractor still has its own LRU.
func initCache(logger *zap.Logger) services.ICacheService {
	backend := viper.GetString("cache.backend")
	ttl := time.Duration(viper.GetInt("cache.ttl_minutes")) * time.Minute
	maxEntries := viper.GetInt("cache.max_entries")

	switch backend {
	case "none":
		return nil
	case "redis":
		redisCache, err := services.NewRedisCacheService(
			getEnv("REDIS_URL", viper.GetString("cache.redis_url")), ttl, logger)
		if err != nil {
			logger.Fatal("Failed to initialize Redis cache", zap.Error(err))
		}
		return redisCache
	case "hybrid":
		local, err := services.NewCacheService(maxEntries, ttl)
		if err != nil {
			logger.Fatal("Failed to initialize memory cache", zap.Error(err))
		}
		redisCache, err := services.NewRedisCacheService(
			getEnv("REDIS_URL", viper.GetString("cache.redis_url")), ttl, logger)
		if err != nil {
			logger.Fatal("Failed to initialize Redis cache", zap.Error(err))
		}
		return services.NewHybridCacheService(local, redisCache, logger)
	default:
		local, err := services.NewCacheService(maxEntries, ttl)
		if err != nil {
			logger.Fatal("Failed to initialize memory cache", zap.Error(err))
		}
		return local
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
