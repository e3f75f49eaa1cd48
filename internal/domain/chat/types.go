package chat

import (
	"github.com/harborview/concierge/internal/domain/faq"
	"github.com/harborview/concierge/internal/domain/review"
)

// Mode identifies how an incoming message is routed.
type Mode string

const (
	// ModeAuto detects the intent from the message itself.
	ModeAuto Mode = "auto"
	// ModeFAQ forces the retrieval path.
	ModeFAQ Mode = "faq"
	// ModeReview forces the sentiment path.
	ModeReview Mode = "review"
)

// Request is a free-text guest message with an optional routing override.
type Request struct {
	Message     string  `json:"message"`
	Mode        Mode    `json:"mode,omitempty"`
	OrderID     string  `json:"orderId,omitempty"`
	OrderAmount float64 `json:"orderAmount,omitempty"`
}

// Response carries the resolved intent and exactly one branch payload.
type Response struct {
	Intent Mode             `json:"intent"`
	FAQ    *faq.Response    `json:"faq,omitempty"`
	Review *review.Response `json:"review,omitempty"`
}
