package faq

import (
	"context"
	"log/slog"
	"strings"

	"github.com/harborview/concierge/internal/domain/knowledge"
	"github.com/harborview/concierge/internal/domain/retrieval"
	apperrors "github.com/harborview/concierge/pkg/errors"
)

// Service answers guest questions against the load-once knowledge base.
type Service interface {
	Answer(ctx context.Context, req Request) (Response, error)
	Trending(ctx context.Context) ([]TrendingQuery, error)
}

type service struct {
	cfg    Config
	corpus knowledge.Corpus
	index  *retrieval.Index
	store  Store
	logger *slog.Logger
}

// NewService wires up the FAQ domain. Corpus and index are immutable for the
// process lifetime; an empty corpus is a valid steady state in which every
// query falls back.
func NewService(cfg Config, corpus knowledge.Corpus, index *retrieval.Index, store Store, logger *slog.Logger) Service {
	if cfg.FallbackAnswer == "" {
		cfg.FallbackAnswer = defaultFallbackAnswer
	}
	log := logger.With("component", "faq.service")
	if corpus.Len() == 0 {
		log.Warn("knowledge base is empty, every query will return the fallback answer")
	}
	return &service{
		cfg:    cfg,
		corpus: corpus,
		index:  index,
		store:  store,
		logger: log,
	}
}

func (s *service) Answer(ctx context.Context, req Request) (Response, error) {
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return Response{}, apperrors.Wrap("invalid_input", "question cannot be empty", nil)
	}

	resp := Response{
		Question: question,
		Answer:   s.cfg.FallbackAnswer,
	}

	matches := s.index.Search(question)
	if len(matches) > 0 {
		best := matches[0]
		resp.Score = best.Score
		if best.Score >= s.cfg.SimilarityThreshold {
			entry := s.corpus.Entries[best.Position]
			resp.Found = true
			resp.MatchedQuestion = entry.Question
			resp.Answer = entry.Answer
		}
		resp.Suggestions = s.suggestions(matches[1:])
	}

	if err := s.store.IncrementQuery(ctx, retrieval.Normalize(question), question); err != nil {
		s.logger.Warn("trending increment failed", "error", err)
	}
	recs, err := s.store.TopQueries(ctx, s.cfg.TopRecommendations)
	if err != nil {
		s.logger.Warn("trending fetch failed", "error", err)
		recs = nil
	}
	resp.Recommendations = recs

	return resp, nil
}

func (s *service) Trending(ctx context.Context) ([]TrendingQuery, error) {
	recs, err := s.store.TopQueries(ctx, s.cfg.TopRecommendations)
	if err != nil {
		return nil, apperrors.Wrap("faq_error", "failed to load trending queries", err)
	}
	return recs, nil
}

// suggestions keeps the runner-up questions that showed any lexical overlap.
func (s *service) suggestions(ranked []retrieval.Match) []Suggestion {
	limit := s.cfg.MaxSuggestions
	if limit <= 0 {
		return nil
	}
	out := make([]Suggestion, 0, limit)
	for _, match := range ranked {
		if match.Score <= 0 {
			break
		}
		out = append(out, Suggestion{
			Question: s.corpus.Entries[match.Position].Question,
			Score:    match.Score,
		})
		if len(out) == limit {
			break
		}
	}
	return out
}
