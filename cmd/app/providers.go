package main

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/harborview/concierge/internal/domain/faq"
	"github.com/harborview/concierge/internal/domain/knowledge"
	"github.com/harborview/concierge/internal/domain/retrieval"
	"github.com/harborview/concierge/internal/domain/review"
	"github.com/harborview/concierge/internal/domain/sentiment"
	"github.com/harborview/concierge/internal/infra/config"
	"github.com/harborview/concierge/internal/infra/sentiment/lexicon"
	"github.com/harborview/concierge/internal/infra/sentiment/remote"
	"github.com/harborview/concierge/internal/infra/trending"
	apperrors "github.com/harborview/concierge/pkg/errors"
)

// provideCorpus loads the knowledge base exactly once at startup. A parse
// failure is fatal; no partial corpus is ever served.
func provideCorpus(cfg *config.Config, logger *slog.Logger) (knowledge.Corpus, error) {
	file, err := os.Open(cfg.Knowledge.Path)
	if err != nil {
		return knowledge.Corpus{}, apperrors.Wrap("parse_error", "open knowledge base", err)
	}
	defer file.Close()

	corpus, err := knowledge.ParseCorpus(file)
	if err != nil {
		return knowledge.Corpus{}, err
	}
	logger.Info("knowledge base loaded", "path", cfg.Knowledge.Path, "entries", corpus.Len(), "version", corpus.Version)
	return corpus, nil
}

func provideIndex(cfg *config.Config, corpus knowledge.Corpus) *retrieval.Index {
	tok := retrieval.NewTokenizer(cfg.Retrieval.RemoveStopwords)
	return retrieval.BuildIndex(corpus.Questions(), tok)
}

func provideFAQConfig(cfg *config.Config) faq.Config {
	return faq.Config{
		SimilarityThreshold: cfg.Retrieval.SimilarityThreshold,
		FallbackAnswer:      cfg.Retrieval.FallbackAnswer,
		MaxSuggestions:      cfg.Retrieval.MaxSuggestions,
		TopRecommendations:  cfg.Trending.TopRecommendations,
	}
}

func provideReviewConfig(cfg *config.Config) review.Config {
	return review.Config{
		PositiveThreshold: cfg.Review.PositiveThreshold,
		NegativeThreshold: cfg.Review.NegativeThreshold,
		RefundPercent:     cfg.Review.RefundPercent,
		CouponValidity:    time.Duration(cfg.Review.CouponValidityDays) * 24 * time.Hour,
		CouponPercentOff:  cfg.Review.CouponPercentOff,
	}
}

func provideClassifier(cfg *config.Config, logger *slog.Logger) sentiment.Classifier {
	if cfg.Sentiment.Backend == "remote" {
		logger.Info("remote sentiment backend enabled", "url", cfg.Sentiment.RemoteURL)
		return remote.NewClient(cfg.Sentiment.RemoteURL)
	}
	return lexicon.New()
}

func provideTrendingStore(cfg *config.Config, logger *slog.Logger) faq.Store {
	if cfg.Trending.Valkey.Enabled {
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
			return trending.NewMemoryStore()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory store", "error", err)
			return trending.NewMemoryStore()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory store", "error", err)
			client.Close()
		} else {
			logger.Info("valkey trending store enabled", "addr", cfg.Trending.Valkey.Addr)
			return trending.NewValkeyStore(client, "concierge")
		}
	}
	return trending.NewMemoryStore()
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.Trending.Valkey.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.Trending.Valkey.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.Trending.Valkey.Addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}
