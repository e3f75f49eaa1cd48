//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/harborview/concierge/internal/bootstrap"
	"github.com/harborview/concierge/internal/domain/chat"
	"github.com/harborview/concierge/internal/domain/faq"
	"github.com/harborview/concierge/internal/domain/review"
	"github.com/harborview/concierge/internal/infra/config"
	httpiface "github.com/harborview/concierge/internal/interface/http"
	"github.com/harborview/concierge/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideCorpus,
		provideIndex,
		provideFAQConfig,
		provideReviewConfig,
		provideClassifier,
		provideTrendingStore,
		faq.NewService,
		review.NewService,
		chat.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
