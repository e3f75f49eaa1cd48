package lexicon

import (
	"context"
	"strings"

	"github.com/harborview/concierge/internal/domain/retrieval"
	"github.com/harborview/concierge/internal/domain/sentiment"
)

// Classifier is the offline default sentiment backend: a word-list scorer
// that lets the service run without any external model artifact. Swap it for
// the remote backend when a trained model server is available.
type Classifier struct {
	positive map[string]struct{}
	negative map[string]struct{}
}

// New builds the classifier with the built-in restaurant opinion lexicon.
func New() *Classifier {
	return &Classifier{
		positive: wordSet(
			"good", "great", "amazing", "awesome", "delicious", "tasty",
			"love", "loved", "excellent", "fresh", "friendly", "perfect",
			"wonderful", "fantastic", "generous", "attentive",
		),
		negative: wordSet(
			"bad", "terrible", "awful", "disappointed", "disappointing",
			"hate", "hated", "overpriced", "mediocre", "cold", "stale",
			"undercooked", "burnt", "salty", "bland", "rude", "slow",
			"dirty", "worst",
		),
	}
}

// Predict scores the text's positivity in [0, 1] with Laplace smoothing, so
// a handful of strong words is enough to clear the policy thresholds while a
// single hit stays in the no-action band.
func (c *Classifier) Predict(_ context.Context, text string) (sentiment.Prediction, error) {
	var pos, neg int
	for _, word := range strings.Fields(retrieval.Normalize(text)) {
		if _, ok := c.positive[word]; ok {
			pos++
		}
		if _, ok := c.negative[word]; ok {
			neg++
		}
	}

	score := float64(pos+1) / float64(pos+neg+2)
	label := sentiment.LabelNeutral
	switch {
	case pos > neg:
		label = sentiment.LabelPositive
	case neg > pos:
		label = sentiment.LabelNegative
	}
	return sentiment.Prediction{Label: label, Score: score}, nil
}

func wordSet(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

var _ sentiment.Classifier = (*Classifier)(nil)
