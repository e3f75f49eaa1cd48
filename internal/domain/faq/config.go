package faq

// Config holds runtime knobs for the FAQ service.
type Config struct {
	// SimilarityThreshold is the minimum cosine score for a match; scores
	// strictly below it produce the fallback answer.
	SimilarityThreshold float64
	FallbackAnswer      string
	MaxSuggestions      int
	TopRecommendations  int
}

const defaultFallbackAnswer = "I'm sorry, I don't have an answer for that yet. Could you try rephrasing your question?"
