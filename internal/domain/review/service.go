package review

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/harborview/concierge/internal/domain/sentiment"
	apperrors "github.com/harborview/concierge/pkg/errors"
	"github.com/harborview/concierge/pkg/util"
)

// Config holds the goodwill policy knobs.
type Config struct {
	// PositiveThreshold is the minimum positivity score that earns a coupon.
	PositiveThreshold float64
	// NegativeThreshold is the maximum positivity score that triggers a refund.
	NegativeThreshold float64
	RefundPercent     float64
	CouponValidity    time.Duration
	CouponPercentOff  int
}

// Service classifies restaurant reviews and applies the goodwill policy.
type Service interface {
	Assess(ctx context.Context, req Request) (Response, error)
}

type service struct {
	cfg        Config
	classifier sentiment.Classifier
	logger     *slog.Logger
}

// NewService wires up the review domain around an injected classifier.
func NewService(cfg Config, classifier sentiment.Classifier, logger *slog.Logger) Service {
	return &service{cfg: cfg, classifier: classifier, logger: logger.With("component", "review.service")}
}

func (s *service) Assess(ctx context.Context, req Request) (Response, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return Response{}, apperrors.Wrap("invalid_input", "review text cannot be empty", nil)
	}

	prediction, err := s.classifier.Predict(ctx, text)
	if err != nil {
		return Response{}, apperrors.Wrap("sentiment_error", "sentiment prediction failed", err)
	}

	resp := Response{
		Label:  prediction.Label,
		Score:  prediction.Score,
		Action: decideAction(s.cfg, prediction),
	}

	switch resp.Action {
	case ActionCoupon:
		coupon := s.issueCoupon()
		resp.Coupon = &coupon
		resp.Message = fmt.Sprintf("Thanks for the kind words! Enjoy a free meal on us: %s (valid until %s).", coupon.Code, coupon.Expires)
		s.logger.Info("coupon issued", "code", coupon.Code, "expires", coupon.Expires)
	case ActionRefund:
		refund := Refund{OrderID: strings.TrimSpace(req.OrderID), Percent: s.cfg.RefundPercent}
		if req.OrderAmount > 0 {
			refund.Amount = roundCents(req.OrderAmount * s.cfg.RefundPercent / 100)
			resp.Message = fmt.Sprintf("We're sorry to hear that. A %.0f%% refund of %.2f has been prepared for your order.", s.cfg.RefundPercent, refund.Amount)
		} else {
			resp.Message = fmt.Sprintf("We're sorry to hear that. Please share your order details so we can process a %.0f%% refund.", s.cfg.RefundPercent)
		}
		resp.Refund = &refund
	default:
		resp.Message = "Thanks for your feedback."
	}

	return resp, nil
}

// decideAction applies the policy thresholds: strongly positive reviews earn
// a coupon, strongly negative ones a refund, everything else no action.
func decideAction(cfg Config, p sentiment.Prediction) Action {
	switch {
	case p.Label == sentiment.LabelPositive && p.Score >= cfg.PositiveThreshold:
		return ActionCoupon
	case p.Label == sentiment.LabelNegative && p.Score <= cfg.NegativeThreshold:
		return ActionRefund
	default:
		return ActionNone
	}
}

func (s *service) issueCoupon() Coupon {
	code := "MEAL-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	expires := util.NowUTC().Add(s.cfg.CouponValidity).Format("2006-01-02")
	return Coupon{Code: code, Expires: expires, PercentOff: s.cfg.CouponPercentOff}
}

func roundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
