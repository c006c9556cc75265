package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"mediscan/config"
	"mediscan/internal/api"
	"mediscan/internal/container"
	"mediscan/internal/infrastructure/engine"
	"mediscan/internal/infrastructure/report"
	"mediscan/internal/infrastructure/storage"
	"mediscan/internal/infrastructure/vision"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	// Model weights are loaded once and shared read-only for the process
	// lifetime.
	eng, err := engine.NewONNXEngine(cfg.ModelPath, cfg.ModelMetadataPath)
	if err != nil {
		log.Fatalf("Failed to load classification engine: %v", err)
	}
	defer eng.Close()

	store, err := storage.NewLocalBlobStore(cfg.StorageDir, "/files")
	if err != nil {
		log.Fatalf("Failed to init blob storage: %v", err)
	}

	appContainer := container.New(
		eng,
		vision.NewPreprocessor(),
		vision.NewGradCAM(eng, eng.HookedLayer()),
		vision.NewRenderer(),
		report.NewTemplater(),
		report.NewFHIRFormatter(),
		store,
		log,
	)

	srv := api.NewServer(cfg, appContainer.Analysis, log)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		log.Info("shutting down")
		if err := srv.Shutdown(); err != nil {
			log.Errorf("Shutdown error: %v", err)
		}
	}()

	log.Infof("MediScan AI listening on :%s", cfg.Port)
	if err := srv.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
