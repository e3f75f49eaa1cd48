package review

import "github.com/harborview/concierge/internal/domain/sentiment"

// Action is the goodwill outcome applied to a classified review.
type Action string

const (
	// ActionCoupon grants a free meal coupon for a clearly positive review.
	ActionCoupon Action = "coupon_free"
	// ActionRefund offers a partial refund for a clearly negative review.
	ActionRefund Action = "refund"
	// ActionNone acknowledges the review without compensation.
	ActionNone Action = "none"
)

// Request carries the review text plus optional order details used to
// compute a refund in one round trip.
type Request struct {
	Text        string  `json:"text"`
	OrderID     string  `json:"orderId,omitempty"`
	OrderAmount float64 `json:"orderAmount,omitempty"`
}

// Response reports the classification and the action taken.
type Response struct {
	Label   sentiment.Label `json:"label"`
	Score   float64         `json:"score"`
	Action  Action          `json:"action"`
	Message string          `json:"message"`
	Coupon  *Coupon         `json:"coupon,omitempty"`
	Refund  *Refund         `json:"refund,omitempty"`
}

// Coupon is a locally generated free meal voucher.
type Coupon struct {
	Code       string `json:"code"`
	Expires    string `json:"expires"`
	PercentOff int    `json:"percentOff"`
}

// Refund describes the partial refund computed for an order.
type Refund struct {
	OrderID string  `json:"orderId,omitempty"`
	Percent float64 `json:"percent"`
	Amount  float64 `json:"amount"`
}
