package chat

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/harborview/concierge/internal/domain/faq"
	"github.com/harborview/concierge/internal/domain/review"
	apperrors "github.com/harborview/concierge/pkg/errors"
)

type stubFAQ struct {
	lastQuestion string
	resp         faq.Response
}

func (s *stubFAQ) Answer(_ context.Context, req faq.Request) (faq.Response, error) {
	s.lastQuestion = req.Question
	return s.resp, nil
}

func (s *stubFAQ) Trending(context.Context) ([]faq.TrendingQuery, error) {
	return nil, nil
}

type stubReview struct {
	lastText string
	lastReq  review.Request
	resp     review.Response
}

func (s *stubReview) Assess(_ context.Context, req review.Request) (review.Response, error) {
	s.lastText = req.Text
	s.lastReq = req
	return s.resp, nil
}

func newChatFixture() (*stubFAQ, *stubReview, Service) {
	faqStub := &stubFAQ{resp: faq.Response{Found: true, Answer: "3 PM."}}
	reviewStub := &stubReview{resp: review.Response{Action: review.ActionNone, Message: "Thanks for your feedback."}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return faqStub, reviewStub, NewService(faqStub, reviewStub, logger)
}

func TestRespondRoutesQuestionsToFAQ(t *testing.T) {
	faqStub, reviewStub, svc := newChatFixture()

	resp, err := svc.Respond(context.Background(), Request{Message: "What time is check-in?"})
	require.NoError(t, err)
	require.Equal(t, ModeFAQ, resp.Intent)
	require.NotNil(t, resp.FAQ)
	require.Nil(t, resp.Review)
	require.Equal(t, "What time is check-in?", faqStub.lastQuestion)
	require.Empty(t, reviewStub.lastText)
}

func TestRespondRoutesOpinionsToReview(t *testing.T) {
	faqStub, reviewStub, svc := newChatFixture()

	resp, err := svc.Respond(context.Background(), Request{Message: "The pasta was cold and the waiter was rude"})
	require.NoError(t, err)
	require.Equal(t, ModeReview, resp.Intent)
	require.NotNil(t, resp.Review)
	require.Nil(t, resp.FAQ)
	require.Equal(t, "The pasta was cold and the waiter was rude", reviewStub.lastText)
	require.Empty(t, faqStub.lastQuestion)
}

func TestRespondExplicitModeOverridesDetection(t *testing.T) {
	_, reviewStub, svc := newChatFixture()

	// Reads like a question, but the caller pins the review path.
	resp, err := svc.Respond(context.Background(), Request{Message: "What time is check-in?", Mode: ModeReview})
	require.NoError(t, err)
	require.Equal(t, ModeReview, resp.Intent)
	require.Equal(t, "What time is check-in?", reviewStub.lastText)
}

func TestRespondUnknownModeFallsBackToDetection(t *testing.T) {
	faqStub, _, svc := newChatFixture()

	resp, err := svc.Respond(context.Background(), Request{Message: "Is parking available?", Mode: Mode("bogus")})
	require.NoError(t, err)
	require.Equal(t, ModeFAQ, resp.Intent)
	require.Equal(t, "Is parking available?", faqStub.lastQuestion)
}

func TestRespondForwardsOrderDetails(t *testing.T) {
	_, reviewStub, svc := newChatFixture()

	req := Request{Message: "terrible dinner", Mode: ModeReview, OrderID: "ord-9", OrderAmount: 25.50}
	_, err := svc.Respond(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, "terrible dinner", reviewStub.lastText)
	require.Equal(t, "ord-9", reviewStub.lastReq.OrderID)
	require.Equal(t, 25.50, reviewStub.lastReq.OrderAmount)
}

func TestRespondRejectsEmptyMessage(t *testing.T) {
	_, _, svc := newChatFixture()

	_, err := svc.Respond(context.Background(), Request{Message: "  "})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "invalid_input"))
}
