package entity

import "sort"

// PathologyLabels is the fixed CheXpert label set. The order matters: it is the
// layout of the engine's logit vector and the tie-break order when sorting.
var PathologyLabels = []string{
	"Atelectasis", "Cardiomegaly", "Consolidation", "Edema",
	"Effusion", "Emphysema", "Fibrosis", "Hernia",
	"Infiltration", "Mass", "Nodule", "Pleural_Thickening",
	"Pneumonia", "Pneumothorax",
}

// PathologyScore — one pathology with its model confidence in [0,1].
type PathologyScore struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

// ClassificationResult is sorted by confidence descending. Equal confidences
// keep the original label order (stable sort).
type ClassificationResult []PathologyScore

// NewClassificationResult pairs labels with confidences and sorts them.
// Extra confidences without a label are ignored.
func NewClassificationResult(labels []string, confidences []float64) ClassificationResult {
	n := len(labels)
	if len(confidences) < n {
		n = len(confidences)
	}

	result := make(ClassificationResult, 0, n)
	for i := 0; i < n; i++ {
		result = append(result, PathologyScore{Name: labels[i], Confidence: confidences[i]})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Confidence > result[j].Confidence
	})

	return result
}

// Top returns the highest-confidence score.
func (r ClassificationResult) Top() (PathologyScore, bool) {
	if len(r) == 0 {
		return PathologyScore{}, false
	}
	return r[0], true
}
