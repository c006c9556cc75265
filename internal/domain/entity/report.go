package entity

// ReportSections is the structured text of a generated radiology report.
type ReportSections struct {
	Technique      string `json:"technique"`
	Findings       string `json:"findings"`
	Impression     string `json:"impression"`
	Recommendation string `json:"recommendation"`
	Disclaimer     string `json:"disclaimer"`
}
