package port

import (
	"context"

	"mediscan/internal/domain/entity"
)

// ReportGenerator produces the structured report text for a finished analysis.
type ReportGenerator interface {
	Generate(ctx context.Context, conditions entity.ClassificationResult, severity entity.SeverityTier) (entity.ReportSections, error)
}

// DocumentFormatter serializes an analysis into an interchange document
// (FHIR DiagnosticReport JSON).
type DocumentFormatter interface {
	Format(ctx context.Context, scanID string, conditions entity.ClassificationResult, sections entity.ReportSections, severity entity.SeverityTier) ([]byte, error)
}
