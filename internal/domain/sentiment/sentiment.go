package sentiment

import (
	"context"
	"strings"
)

// Label classifies the overall tone of a review.
type Label string

const (
	LabelPositive Label = "positive"
	LabelNegative Label = "negative"
	LabelNeutral  Label = "neutral"
)

// Prediction is the classifier output consumed by the review domain. Score
// expresses how positive the text is in [0, 1]; 0.5 is neutral.
type Prediction struct {
	Label Label   `json:"label"`
	Score float64 `json:"score"`
}

// Classifier is the opaque pre-trained model boundary. Implementations are
// synchronous and swappable; the domain never depends on the model's
// internal representation or storage format.
type Classifier interface {
	Predict(ctx context.Context, text string) (Prediction, error)
}

// NormalizeLabel maps raw model labels onto the canonical set. Numeric
// class indices (0/1/2) are translated the way the offline model was
// trained; canonical names pass through case-insensitively.
func NormalizeLabel(raw string) (Label, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "0", "negative":
		return LabelNegative, true
	case "1", "neutral":
		return LabelNeutral, true
	case "2", "positive":
		return LabelPositive, true
	default:
		return "", false
	}
}
