package faq

import "context"

// Store tracks question popularity. Writes are best-effort; the retrieval
// path never fails because trending bookkeeping does.
type Store interface {
	IncrementQuery(ctx context.Context, canonical, display string) error
	TopQueries(ctx context.Context, limit int) ([]TrendingQuery, error)
}
