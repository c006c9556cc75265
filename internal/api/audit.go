package api

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// HIPAA §164.312(b): every API access is logged with user, action, source
// address and outcome.

func newAuditLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	return l
}

func (s *Server) auditAccess(c *fiber.Ctx) error {
	err := c.Next()

	fields := logrus.Fields{
		"user_id":     userID(c),
		"action":      c.Method(),
		"endpoint":    c.Path(),
		"ip_address":  c.IP(),
		"status_code": c.Response().StatusCode(),
		"hipaa_ref":   "§164.312(b)",
	}
	if scanID, ok := c.Locals(localScanID).(string); ok && scanID != "" {
		fields["scan_id"] = scanID
	}
	s.audit.WithFields(fields).Info("api_access")

	return err
}
