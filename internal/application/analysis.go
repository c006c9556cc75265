package app

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"mediscan/internal/domain/entity"
	"mediscan/internal/domain/port"
)

// AnalysisService runs the full scan pipeline: preprocess, classify, triage,
// explain, composite and persist. All steps are synchronous; any failure
// aborts the request without retries.
type AnalysisService struct {
	engine    port.ClassificationEngine
	pre       port.ImagePreprocessor
	explainer port.Explainer
	renderer  port.OverlayRenderer
	reporter  port.ReportGenerator
	formatter port.DocumentFormatter
	store     port.BlobStore
	log       *logrus.Logger
}

// AnalysisOutput is everything a finished scan produces.
type AnalysisOutput struct {
	ScanID        string
	Conditions    entity.ClassificationResult
	Severity      entity.SeverityTier
	Report        entity.ReportSections
	HeatmapURL    string
	FHIRReportURL string
	GeneratedAt   time.Time
}

// NewAnalysisService wires the pipeline over its ports.
func NewAnalysisService(
	engine port.ClassificationEngine,
	pre port.ImagePreprocessor,
	explainer port.Explainer,
	renderer port.OverlayRenderer,
	reporter port.ReportGenerator,
	formatter port.DocumentFormatter,
	store port.BlobStore,
	log *logrus.Logger,
) *AnalysisService {
	if log == nil {
		log = logrus.New()
	}
	return &AnalysisService{
		engine:    engine,
		pre:       pre,
		explainer: explainer,
		renderer:  renderer,
		reporter:  reporter,
		formatter: formatter,
		store:     store,
		log:       log,
	}
}

// Analyze runs the pipeline on one uploaded scan.
func (s *AnalysisService) Analyze(ctx context.Context, imageData []byte) (*AnalysisOutput, error) {
	if s.engine == nil {
		return nil, errors.New("engine is not configured")
	}

	scanID := uuid.NewString()
	s.log.WithField("scan_id", scanID).Info("analysis started")

	tensor, err := s.pre.Preprocess(imageData)
	if err != nil {
		return nil, fmt.Errorf("preprocess: %w", err)
	}

	res, err := s.engine.Forward(ctx, tensor)
	if err != nil {
		return nil, fmt.Errorf("classify: %w", err)
	}

	confidences := make([]float64, len(res.Logits))
	for i, l := range res.Logits {
		confidences[i] = sigmoid(l)
	}

	conditions := entity.NewClassificationResult(s.engine.Labels(), confidences)
	severity := entity.ClassifySeverity(conditions)

	out := &AnalysisOutput{
		ScanID:      scanID,
		Conditions:  conditions,
		Severity:    severity,
		GeneratedAt: time.Now().UTC(),
	}

	// Saliency targets the raw argmax class, matching the logit layout.
	if target, ok := argmax(confidences); ok {
		saliency, err := s.explainer.Explain(ctx, tensor, target)
		if err != nil {
			return nil, fmt.Errorf("explain: %w", err)
		}

		overlay, err := s.renderer.Render(imageData, saliency)
		if err != nil {
			return nil, fmt.Errorf("render overlay: %w", err)
		}

		out.HeatmapURL, err = s.store.Upload(ctx, scanID+"/heatmap.png", "image/png", overlay)
		if err != nil {
			return nil, fmt.Errorf("store heatmap: %w", err)
		}
	}

	out.Report, err = s.reporter.Generate(ctx, conditions, severity)
	if err != nil {
		return nil, fmt.Errorf("generate report: %w", err)
	}

	doc, err := s.formatter.Format(ctx, scanID, conditions, out.Report, severity)
	if err != nil {
		return nil, fmt.Errorf("format fhir report: %w", err)
	}

	out.FHIRReportURL, err = s.store.Upload(ctx, scanID+"/report.fhir.json", "application/fhir+json", doc)
	if err != nil {
		return nil, fmt.Errorf("store fhir report: %w", err)
	}

	top, _ := conditions.Top()
	s.log.WithFields(logrus.Fields{
		"scan_id":       scanID,
		"severity":      severity.String(),
		"top_condition": top.Name,
	}).Info("analysis complete")

	return out, nil
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

func argmax(values []float64) (int, bool) {
	if len(values) == 0 {
		return 0, false
	}
	best := 0
	for i, v := range values {
		if v > values[best] {
			best = i
		}
	}
	return best, true
}
