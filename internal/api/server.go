package api

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"mediscan/config"
	app "mediscan/internal/application"
)

const serviceVersion = "1.0.0"

const serviceDisclaimer = "This service is for research and educational purposes only."

// Server is the HTTP boundary of the analysis pipeline.
type Server struct {
	app      *fiber.App
	analysis *app.AnalysisService
	cfg      *config.Config
	log      *logrus.Logger
	audit    *logrus.Logger
}

// NewServer builds the fiber application with all routes and middleware.
func NewServer(cfg *config.Config, analysis *app.AnalysisService, log *logrus.Logger) *Server {
	s := &Server{
		analysis: analysis,
		cfg:      cfg,
		log:      log,
		audit:    newAuditLogger(),
	}

	f := fiber.New(fiber.Config{
		AppName:   "MediScan AI",
		BodyLimit: cfg.MaxImageSizeMB << 20,
	})

	f.Use(s.processTime)
	f.Use(s.auditAccess)

	v1 := f.Group("/api/v1")
	v1.Get("/health", s.health)
	v1.Post("/auth/login", s.login)
	v1.Post("/analyze", s.requireAuth, s.analyze)
	v1.Get("/reports/:scan_id", s.requireAuth, s.getReport)

	// Derived artifacts written by the local blob store.
	f.Static("/files", cfg.StorageDir)

	s.app = f
	return s
}

// Listen serves until Shutdown is called.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App exposes the fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// processTime mirrors the request timing header of the original backend.
func (s *Server) processTime(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	c.Set("X-Process-Time", fmt.Sprintf("%.4f", time.Since(start).Seconds()))
	return err
}
