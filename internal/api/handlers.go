package api

import (
	"io"
	"mime/multipart"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"mediscan/internal/domain/entity"
)

var allowedContentTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
}

type conditionJSON struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

type analysisResponse struct {
	ScanID           string                `json:"scan_id"`
	Severity         string                `json:"severity"`
	SeverityColor    string                `json:"severity_color"`
	Conditions       []conditionJSON       `json:"conditions"`
	Report           entity.ReportSections `json:"report"`
	HeatmapURL       string                `json:"heatmap_url,omitempty"`
	FHIRReportURL    string                `json:"fhir_report_url,omitempty"`
	GeneratedAt      string                `json:"generated_at"`
	ProcessingTimeMS float64               `json:"processing_time_ms"`
}

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":     "healthy",
		"service":    "MediScan AI",
		"version":    serviceVersion,
		"disclaimer": serviceDisclaimer,
	})
}

func (s *Server) analyze(c *fiber.Ctx) error {
	start := time.Now()

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"detail": "No scan file provided. Use 'file' as the form field name.",
		})
	}

	contentType := file.Header.Get("Content-Type")
	if _, ok := allowedContentTypes[contentType]; !ok {
		return c.Status(fiber.StatusUnsupportedMediaType).JSON(fiber.Map{
			"detail": "Unsupported file type: " + contentType + ". Accepted: JPEG, PNG",
		})
	}

	if file.Size > int64(s.cfg.MaxImageSizeMB)<<20 {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{
			"detail": "File too large.",
		})
	}

	imageData, err := readUpload(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"detail": "Failed to read uploaded file.",
		})
	}

	out, err := s.analysis.Analyze(c.UserContext(), imageData)
	if err != nil {
		// Core failures map to one generic response; details stay in the log.
		s.log.WithFields(logrus.Fields{
			"user_id": userID(c),
			"error":   err.Error(),
		}).Error("analysis failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"detail": "Analysis pipeline failed. Please try again.",
		})
	}

	c.Locals(localScanID, out.ScanID)

	conditions := make([]conditionJSON, len(out.Conditions))
	for i, cond := range out.Conditions {
		conditions[i] = conditionJSON{Name: cond.Name, Confidence: cond.Confidence}
	}

	return c.JSON(analysisResponse{
		ScanID:           out.ScanID,
		Severity:         out.Severity.String(),
		SeverityColor:    out.Severity.Color(),
		Conditions:       conditions,
		Report:           out.Report,
		HeatmapURL:       out.HeatmapURL,
		FHIRReportURL:    out.FHIRReportURL,
		GeneratedAt:      out.GeneratedAt.Format(time.RFC3339),
		ProcessingTimeMS: float64(time.Since(start).Microseconds()) / 1000,
	})
}

func readUpload(file *multipart.FileHeader) ([]byte, error) {
	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func (s *Server) getReport(c *fiber.Ctx) error {
	scanID := c.Params("scan_id")
	c.Locals(localScanID, scanID)
	// Reports are not retained server-side; clients keep the URLs returned
	// by the analyze call.
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"detail": "Report " + scanID + " not found.",
	})
}
