package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bd-address-extractor/app/config"
	"github.com/bd-address-extractor/app/controllers"
	"github.com/bd-address-extractor/app/services"
	"github.com/bd-address-extractor/internal/extractor"
	"github.com/bd-address-extractor/internal/geo"
	"github.com/bd-address-extractor/internal/ner"
	"github.com/bd-address-extractor/routes"
)

// Minimal API entrypoint: YAML config only, no external cache backends.
// The full deployment entrypoint at the repository root supports Redis
// and hybrid caches.
func main() {
	if err := config.Load("config/app.yaml"); err != nil {
		// defaults are fine for local runs
		config.C = config.Defaults()
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	logger.Info("Starting Address Extraction API")

	var kb *geo.KnowledgeBase
	if config.C.Extraction.GazetteerPath != "" {
		kb = geo.NewKnowledgeBaseFromFile(config.C.Extraction.GazetteerPath, logger)
	} else {
		kb = geo.NewKnowledgeBase(logger)
	}

	nerExtractor := ner.New(ner.Config{
		ModelPath:   config.C.NER.ModelPath,
		LibraryPath: config.C.NER.LibraryPath,
		NumThreads:  config.C.NER.NumThreads,
		MaxSeqLen:   config.C.NER.MaxSeqLen,
	}, logger)
	defer nerExtractor.Close()

	ext, err := extractor.New(extractor.Config{
		CacheSize:      config.C.Cache.MaxEntries,
		DefaultTimeout: config.RequestTimeout(),
	}, nerExtractor, kb, logger)
	if err != nil {
		logger.Fatal("Failed to build extractor", zap.Error(err))
	}

	addressService := services.NewAddressService(ext, nil, logger)
	addressController := controllers.NewAddressController(
		addressService, config.C.Batch.MaxAddresses, logger)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	routes.SetupAllRoutes(router, addressController)

	port := strconv.Itoa(config.C.Server.Port)
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
	ctx, cancel := context.WithTimeout(context.Background(), config.RequestTimeout())
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Shutdown error", zap.Error(err))
	}
	logger.Info("Server exited")
}
