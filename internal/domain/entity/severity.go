package entity

// SeverityTier is the clinical urgency derived from the top prediction.
// Tiers are totally ordered: Normal < Mild < Moderate < Severe < Urgent.
type SeverityTier int

const (
	SeverityNormal SeverityTier = iota
	SeverityMild
	SeverityModerate
	SeveritySevere
	SeverityUrgent
)

// severityLadder holds the tiers with their confidence thresholds, scanned
// from the most urgent down. The first tier whose threshold does not exceed
// the top confidence wins.
var severityLadder = []struct {
	Tier      SeverityTier
	Threshold float64
}{
	{SeverityUrgent, 0.85},
	{SeveritySevere, 0.70},
	{SeverityModerate, 0.50},
	{SeverityMild, 0.30},
	{SeverityNormal, 0.0},
}

// urgentOverrides are pathologies that force the Urgent tier once their
// confidence exceeds urgentOverrideThreshold, bypassing the ladder.
var urgentOverrides = map[string]struct{}{
	"Pneumothorax": {},
	"Pneumonia":    {},
	"Cardiomegaly": {},
}

const urgentOverrideThreshold = 0.70

// ClassifySeverity maps a classification result to a severity tier. Total
// function: an empty result is a normal study.
//
// The override rule is intentionally non-monotonic relative to the ladder: an
// override pathology at 0.75 outranks a non-override one at 0.80.
func ClassifySeverity(result ClassificationResult) SeverityTier {
	top, ok := result.Top()
	if !ok {
		return SeverityNormal
	}

	if _, critical := urgentOverrides[top.Name]; critical && top.Confidence > urgentOverrideThreshold {
		return SeverityUrgent
	}

	for _, step := range severityLadder {
		if top.Confidence >= step.Threshold {
			return step.Tier
		}
	}
	return SeverityNormal
}

// String returns the tier name as used in reports and API responses.
func (t SeverityTier) String() string {
	switch t {
	case SeverityUrgent:
		return "URGENT"
	case SeveritySevere:
		return "SEVERE"
	case SeverityModerate:
		return "MODERATE"
	case SeverityMild:
		return "MILD"
	default:
		return "NORMAL"
	}
}

// Color returns the fixed display color for the tier.
func (t SeverityTier) Color() string {
	switch t {
	case SeverityUrgent:
		return "#DC2626"
	case SeveritySevere:
		return "#EA580C"
	case SeverityModerate:
		return "#D97706"
	case SeverityMild:
		return "#65A30D"
	default:
		return "#16A34A"
	}
}
