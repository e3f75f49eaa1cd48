package faq

// Request encapsulates a guest FAQ query.
type Request struct {
	Question string `json:"question"`
}

// Response is returned to the HTTP transport. Answer always carries text:
// the matched entry's answer, or the configured fallback when no entry
// clears the similarity threshold.
type Response struct {
	Found           bool            `json:"found"`
	Question        string          `json:"question"`
	MatchedQuestion string          `json:"matchedQuestion,omitempty"`
	Answer          string          `json:"answer"`
	Score           float64         `json:"score"`
	Suggestions     []Suggestion    `json:"suggestions,omitempty"`
	Recommendations []TrendingQuery `json:"recommendations,omitempty"`
}

// Suggestion is a runner-up question offered as "did you mean".
type Suggestion struct {
	Question string  `json:"question"`
	Score    float64 `json:"score"`
}

// TrendingQuery represents a frequently asked question.
type TrendingQuery struct {
	Query string `json:"query"`
	Count int64  `json:"count"`
}
