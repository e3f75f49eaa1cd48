package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harborview/concierge/internal/domain/chat"
	"github.com/harborview/concierge/internal/domain/faq"
	"github.com/harborview/concierge/internal/domain/review"
	apperrors "github.com/harborview/concierge/pkg/errors"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	chatSvc   chat.Service
	faqSvc    faq.Service
	reviewSvc review.Service
	logger    *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(chatSvc chat.Service, faqSvc faq.Service, reviewSvc review.Service, logger *slog.Logger) *Handler {
	return &Handler{
		chatSvc:   chatSvc,
		faqSvc:    faqSvc,
		reviewSvc: reviewSvc,
		logger:    logger.With("component", "http.handler"),
	}
}

// Chat routes a free-text guest message to FAQ retrieval or review handling.
func (h *Handler) Chat(c *gin.Context) {
	var req chat.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.chatSvc.Respond(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, toHTTPError(err, "chat_failed"))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Ask answers a hotel FAQ question directly.
func (h *Handler) Ask(c *gin.Context) {
	var req faq.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.faqSvc.Answer(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, toHTTPError(err, "faq_failed"))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Trending returns the most common guest questions.
func (h *Handler) Trending(c *gin.Context) {
	items, err := h.faqSvc.Trending(c.Request.Context())
	if err != nil {
		abortWithError(c, toHTTPError(err, "faq_failed"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": items})
}

// Review classifies a restaurant review and applies the goodwill policy.
func (h *Handler) Review(c *gin.Context) {
	var req review.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.reviewSvc.Assess(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, toHTTPError(err, "review_failed"))
		return
	}

	c.JSON(http.StatusOK, resp)
}

func toHTTPError(err error, fallbackCode string) *HTTPError {
	status := http.StatusInternalServerError
	code := fallbackCode
	switch {
	case apperrors.IsCode(err, "invalid_input"):
		status = http.StatusBadRequest
		code = "invalid_request"
	case apperrors.IsCode(err, "sentiment_error"):
		status = http.StatusBadGateway
		code = "sentiment_error"
	}
	return NewHTTPError(status, code, errMessage(err), err)
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
