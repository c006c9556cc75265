package report

import (
	"context"
	"fmt"
	"strings"

	"mediscan/internal/domain/entity"
	"mediscan/internal/domain/port"
)

// significantThreshold separates reportable findings from background noise.
const significantThreshold = 0.30

const disclaimer = "DISCLAIMER: This AI-generated report is for educational and research " +
	"purposes only and does not constitute medical advice or a clinical diagnosis. " +
	"Always consult a qualified radiologist or physician."

var recommendations = map[entity.SeverityTier]string{
	entity.SeverityUrgent:   "URGENT: Immediate clinical review required. Please escalate to attending physician.",
	entity.SeveritySevere:   "Prompt clinical correlation recommended. Specialist referral advised within 24-48 hours.",
	entity.SeverityModerate: "Clinical correlation recommended. Follow-up imaging in 4-6 weeks advised.",
	entity.SeverityMild:     "Findings noted. Routine follow-up recommended at next scheduled visit.",
	entity.SeverityNormal:   "No acute cardiopulmonary findings. Routine follow-up as clinically indicated.",
}

// Templater generates deterministic report text from the analysis outputs.
// It implements the same port a language-model generator would.
type Templater struct{}

// NewTemplater creates a template-based report generator.
func NewTemplater() *Templater {
	return &Templater{}
}

// Generate builds the report sections for the given conditions and severity.
func (t *Templater) Generate(ctx context.Context, conditions entity.ClassificationResult, severity entity.SeverityTier) (entity.ReportSections, error) {
	_ = ctx

	significant := make(entity.ClassificationResult, 0, len(conditions))
	for _, c := range conditions {
		if c.Confidence > significantThreshold {
			significant = append(significant, c)
		}
	}

	sections := entity.ReportSections{
		Technique: "PA chest X-ray. AI-assisted analysis performed using DenseNet-121 " +
			"with CheXpert pretrained weights.",
		Recommendation: recommendations[severity],
		Disclaimer:     disclaimer,
	}

	if len(significant) == 0 {
		sections.Findings = "No acute cardiopulmonary findings identified. Lung fields appear clear bilaterally."
		sections.Impression = "Normal chest radiograph. No acute disease identified."
		return sections, nil
	}

	named := make([]string, 0, 5)
	for i, c := range significant {
		if i == 5 {
			break
		}
		named = append(named, fmt.Sprintf("%s (%.0f%%)", c.Name, c.Confidence*100))
	}
	sections.Findings = fmt.Sprintf("The chest radiograph demonstrates findings compatible with %s.",
		strings.Join(named, ", "))

	top := significant[0]
	sections.Impression = fmt.Sprintf("Findings most consistent with %s (confidence %.0f%%). "+
		"Severity classification: %s.", top.Name, top.Confidence*100, severity)

	return sections, nil
}

var _ port.ReportGenerator = (*Templater)(nil)
