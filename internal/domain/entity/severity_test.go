package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func one(name string, confidence float64) ClassificationResult {
	return ClassificationResult{{Name: name, Confidence: confidence}}
}

func TestClassifySeverityEmptyResult(t *testing.T) {
	require.Equal(t, SeverityNormal, ClassifySeverity(nil))
	require.Equal(t, SeverityNormal, ClassifySeverity(ClassificationResult{}))
}

func TestClassifySeverityLadder(t *testing.T) {
	cases := []struct {
		name       string
		confidence float64
		want       SeverityTier
	}{
		{"Nodule", 0.95, SeverityUrgent},
		{"Mass", 0.85, SeverityUrgent},
		{"Mass", 0.84, SeveritySevere},
		{"Mass", 0.70, SeveritySevere},
		{"Mass", 0.55, SeverityModerate},
		{"Mass", 0.50, SeverityModerate},
		{"Mass", 0.30, SeverityMild},
		{"Mass", 0.29, SeverityNormal},
		{"Mass", 0.20, SeverityNormal},
		{"Mass", 0.0, SeverityNormal},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, ClassifySeverity(one(tc.name, tc.confidence)),
			"%s at %.2f", tc.name, tc.confidence)
	}
}

func TestClassifySeverityUrgentOverride(t *testing.T) {
	require.Equal(t, SeverityUrgent, ClassifySeverity(one("Pneumothorax", 0.75)))
	require.Equal(t, SeverityUrgent, ClassifySeverity(one("Pneumonia", 0.71)))
	require.Equal(t, SeverityUrgent, ClassifySeverity(one("Cardiomegaly", 0.72)))

	// The override bound is strict: exactly 0.70 falls back to the ladder.
	require.Equal(t, SeveritySevere, ClassifySeverity(one("Pneumothorax", 0.70)))
}

func TestClassifySeverityMonotonicOutsideOverride(t *testing.T) {
	prev := SeverityNormal
	for c := 0.0; c <= 1.0; c += 0.005 {
		tier := ClassifySeverity(one("Mass", c))
		require.GreaterOrEqual(t, tier, prev, "confidence %.3f", c)
		prev = tier
	}
}

func TestSeverityTierOrdering(t *testing.T) {
	require.True(t, SeverityNormal < SeverityMild)
	require.True(t, SeverityMild < SeverityModerate)
	require.True(t, SeverityModerate < SeveritySevere)
	require.True(t, SeveritySevere < SeverityUrgent)
}

func TestSeverityTierStringAndColor(t *testing.T) {
	cases := []struct {
		tier  SeverityTier
		name  string
		color string
	}{
		{SeverityUrgent, "URGENT", "#DC2626"},
		{SeveritySevere, "SEVERE", "#EA580C"},
		{SeverityModerate, "MODERATE", "#D97706"},
		{SeverityMild, "MILD", "#65A30D"},
		{SeverityNormal, "NORMAL", "#16A34A"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.name, tc.tier.String())
		require.Equal(t, tc.color, tc.tier.Color())
	}
}
