package lexicon

import (
	"context"
	"testing"

	"github.com/harborview/concierge/internal/domain/sentiment"
)

func TestPredict(t *testing.T) {
	cases := []struct {
		name      string
		text      string
		wantLabel sentiment.Label
	}{
		{name: "strongly positive", text: "Amazing food, friendly staff, loved the fresh salad!", wantLabel: sentiment.LabelPositive},
		{name: "strongly negative", text: "Cold, stale and overpriced. Terrible service.", wantLabel: sentiment.LabelNegative},
		{name: "no opinion words", text: "We had the set menu on Tuesday.", wantLabel: sentiment.LabelNeutral},
		{name: "balanced", text: "Great pasta but rude waiter.", wantLabel: sentiment.LabelNeutral},
		{name: "empty", text: "", wantLabel: sentiment.LabelNeutral},
	}

	c := New()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := c.Predict(context.Background(), tc.text)
			if err != nil {
				t.Fatalf("Predict: %v", err)
			}
			if p.Label != tc.wantLabel {
				t.Fatalf("Predict(%q) label = %q, want %q", tc.text, p.Label, tc.wantLabel)
			}
			if p.Score < 0 || p.Score > 1 {
				t.Fatalf("score out of range: %f", p.Score)
			}
		})
	}
}

func TestPredictScoreOrdering(t *testing.T) {
	c := New()
	positive, _ := c.Predict(context.Background(), "amazing delicious excellent wonderful")
	neutral, _ := c.Predict(context.Background(), "we ate dinner at eight")
	negative, _ := c.Predict(context.Background(), "awful terrible stale worst")

	if !(positive.Score > neutral.Score && neutral.Score > negative.Score) {
		t.Fatalf("expected positive > neutral > negative, got %f, %f, %f",
			positive.Score, neutral.Score, negative.Score)
	}
	if neutral.Score != 0.5 {
		t.Fatalf("expected neutral score 0.5, got %f", neutral.Score)
	}
}

func TestPredictClearsPolicyThresholds(t *testing.T) {
	c := New()

	// Several strong words push past 0.70; a lone one stays in the middle band.
	strong, _ := c.Predict(context.Background(), "amazing delicious excellent food, loved it")
	if strong.Score < 0.70 {
		t.Fatalf("expected strong praise to clear 0.70, got %f", strong.Score)
	}
	mild, _ := c.Predict(context.Background(), "the soup was good")
	if mild.Score >= 0.70 {
		t.Fatalf("expected a single hit to stay below 0.70, got %f", mild.Score)
	}
}
