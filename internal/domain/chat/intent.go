package chat

import (
	"regexp"
	"strings"

	"github.com/harborview/concierge/internal/domain/retrieval"
)

// ratingPattern catches explicit star ratings like "2/5" or "4 star".
var ratingPattern = regexp.MustCompile(`(?i)\b([1-5])\s*/\s*5\b|\b([1-5])\s*star`)

var diningKeywords = wordSet(
	"food", "dish", "meal", "restaurant", "breakfast", "lunch", "dinner",
	"pizza", "burger", "pasta", "fries", "soup", "salad", "dessert",
	"service", "waiter", "chef", "taste", "portion", "ambience", "ambiance",
)

var opinionKeywords = wordSet(
	"good", "great", "amazing", "awesome", "delicious", "tasty", "love",
	"loved", "excellent", "bad", "terrible", "awful", "disappointed", "hate",
	"overpriced", "mediocre", "cold", "stale", "undercooked", "burnt",
	"salty", "bland", "fresh", "friendly", "rude",
)

// detectIntent routes a message to the review path when it reads like an
// opinion about dining, otherwise to FAQ retrieval. A short dining mention
// alone is treated as a question ("breakfast timings"), not a review.
func detectIntent(message string) Mode {
	words := strings.Fields(retrieval.Normalize(message))
	if len(words) == 0 {
		return ModeFAQ
	}

	var diningHit, opinionHit bool
	for _, word := range words {
		if _, ok := diningKeywords[word]; ok {
			diningHit = true
		}
		if _, ok := opinionKeywords[word]; ok {
			opinionHit = true
		}
	}

	ratingLike := ratingPattern.MatchString(message)
	longish := len(words) >= 6

	if ratingLike || (diningHit && (opinionHit || longish)) {
		return ModeReview
	}
	return ModeFAQ
}

func wordSet(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
