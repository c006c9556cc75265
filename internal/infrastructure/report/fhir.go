package report

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mediscan/internal/domain/entity"
	"mediscan/internal/domain/port"
)

// FHIR R4 DiagnosticReport serialization for EMR/EHR integration.

type fhirCoding struct {
	System  string `json:"system"`
	Code    string `json:"code"`
	Display string `json:"display"`
}

type fhirCodeable struct {
	Coding []fhirCoding `json:"coding"`
}

type fhirMeta struct {
	Profile []string `json:"profile"`
}

type fhirReference struct {
	Reference string `json:"reference"`
	Display   string `json:"display"`
}

type fhirAttachment struct {
	ContentType string `json:"contentType"`
	Title       string `json:"title"`
	Data        []byte `json:"data"` // base64Binary per FHIR
}

type fhirExtension struct {
	URL         string `json:"url"`
	ValueString string `json:"valueString"`
}

type diagnosticReport struct {
	ResourceType      string           `json:"resourceType"`
	ID                string           `json:"id"`
	Meta              fhirMeta         `json:"meta"`
	Status            string           `json:"status"`
	Category          []fhirCodeable   `json:"category"`
	Code              fhirCodeable     `json:"code"`
	EffectiveDateTime string           `json:"effectiveDateTime"`
	Issued            string           `json:"issued"`
	Result            []fhirReference  `json:"result"`
	Conclusion        string           `json:"conclusion"`
	ConclusionCode    []fhirCodeable   `json:"conclusionCode"`
	PresentedForm     []fhirAttachment `json:"presentedForm"`
	Extension         []fhirExtension  `json:"extension"`
}

// FHIRFormatter builds FHIR R4 DiagnosticReport documents.
type FHIRFormatter struct {
	now func() time.Time
}

// NewFHIRFormatter creates a formatter using wall-clock time.
func NewFHIRFormatter() *FHIRFormatter {
	return &FHIRFormatter{now: time.Now}
}

// Format serializes the analysis as an indented DiagnosticReport JSON document.
func (f *FHIRFormatter) Format(ctx context.Context, scanID string, conditions entity.ClassificationResult, sections entity.ReportSections, severity entity.SeverityTier) ([]byte, error) {
	_ = ctx

	now := f.now().UTC().Format(time.RFC3339)

	observations := make([]fhirReference, 0, 5)
	for i, c := range conditions {
		if i == 5 {
			break
		}
		observations = append(observations, fhirReference{
			Reference: fmt.Sprintf("Observation/%s-%d", scanID, i),
			Display:   fmt.Sprintf("%s: %.0f%%", c.Name, c.Confidence*100),
		})
	}

	doc := diagnosticReport{
		ResourceType: "DiagnosticReport",
		ID:           scanID,
		Meta: fhirMeta{
			Profile: []string{"http://hl7.org/fhir/StructureDefinition/DiagnosticReport"},
		},
		Status: "preliminary",
		Category: []fhirCodeable{{Coding: []fhirCoding{{
			System:  "http://terminology.hl7.org/CodeSystem/v2-0074",
			Code:    "RAD",
			Display: "Radiology",
		}}}},
		Code: fhirCodeable{Coding: []fhirCoding{{
			System:  "http://loinc.org",
			Code:    "24748-6",
			Display: "Chest X-ray AP and Lateral",
		}}},
		EffectiveDateTime: now,
		Issued:            now,
		Result:            observations,
		Conclusion:        sections.Impression,
		ConclusionCode: []fhirCodeable{{Coding: []fhirCoding{{
			System:  "http://mediscan.ai/severity",
			Code:    severity.String(),
			Display: "AI Severity: " + severity.String(),
		}}}},
		PresentedForm: []fhirAttachment{{
			ContentType: "text/plain",
			Title:       "AI-Generated Radiology Report",
			Data:        []byte(textReport(sections)),
		}},
		Extension: []fhirExtension{{
			URL:         "http://mediscan.ai/disclaimer",
			ValueString: sections.Disclaimer,
		}},
	}

	return json.MarshalIndent(doc, "", "  ")
}

func textReport(sections entity.ReportSections) string {
	return fmt.Sprintf("TECHNIQUE:\n%s\n\nFINDINGS:\n%s\n\nIMPRESSION:\n%s\n\nRECOMMENDATION:\n%s\n\n%s",
		sections.Technique, sections.Findings, sections.Impression,
		sections.Recommendation, sections.Disclaimer)
}

var _ port.DocumentFormatter = (*FHIRFormatter)(nil)
