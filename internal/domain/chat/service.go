package chat

import (
	"context"
	"log/slog"
	"strings"

	"github.com/harborview/concierge/internal/domain/faq"
	"github.com/harborview/concierge/internal/domain/review"
	apperrors "github.com/harborview/concierge/pkg/errors"
)

// Service routes free-text guest messages to the FAQ or review path.
type Service interface {
	Respond(ctx context.Context, req Request) (Response, error)
}

type service struct {
	faqSvc    faq.Service
	reviewSvc review.Service
	logger    *slog.Logger
}

// NewService wires up the chat router.
func NewService(faqSvc faq.Service, reviewSvc review.Service, logger *slog.Logger) Service {
	return &service{faqSvc: faqSvc, reviewSvc: reviewSvc, logger: logger.With("component", "chat.service")}
}

func (s *service) Respond(ctx context.Context, req Request) (Response, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return Response{}, apperrors.Wrap("invalid_input", "message cannot be empty", nil)
	}

	intent := sanitizeMode(req.Mode)
	if intent == ModeAuto {
		intent = detectIntent(message)
	}
	s.logger.Debug("message routed", "intent", intent)

	switch intent {
	case ModeReview:
		resp, err := s.reviewSvc.Assess(ctx, review.Request{
			Text:        message,
			OrderID:     req.OrderID,
			OrderAmount: req.OrderAmount,
		})
		if err != nil {
			return Response{}, err
		}
		return Response{Intent: ModeReview, Review: &resp}, nil
	default:
		resp, err := s.faqSvc.Answer(ctx, faq.Request{Question: message})
		if err != nil {
			return Response{}, err
		}
		return Response{Intent: ModeFAQ, FAQ: &resp}, nil
	}
}

func sanitizeMode(mode Mode) Mode {
	switch mode {
	case ModeFAQ, ModeReview:
		return mode
	default:
		return ModeAuto
	}
}
