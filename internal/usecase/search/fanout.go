package search

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	domsearch "github.com/competia/searchapi/internal/domain/search"
	"github.com/competia/searchapi/internal/logger"
	"github.com/competia/searchapi/internal/metrics"
	"github.com/competia/searchapi/internal/strategy"
)

// fanOut runs every strategy concurrently and joins all of them. Each
// goroutine writes only its own slot, so no locking is needed. A failing
// or timed-out strategy contributes an empty slice; the round as a whole
// never fails.
func (s *Service) fanOut(
	ctx context.Context,
	op string,
	strategies []strategy.Strategy,
	query, tenantID string,
	opts domsearch.Options,
) [][]domsearch.ResultItem {
	start := time.Now()
	defer func() {
		metrics.FanoutDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}()

	if s.strategyTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.strategyTimeout)
		defer cancel()
	}

	log := logger.FromContext(ctx)
	slots := make([][]domsearch.ResultItem, len(strategies))

	g := new(errgroup.Group)
	if s.maxConcurrent > 0 {
		g.SetLimit(s.maxConcurrent)
	}
	for i, st := range strategies {
		g.Go(func() error {
			items, err := st.Search(ctx, query, tenantID, opts)
			if err != nil {
				metrics.StrategyFailures.WithLabelValues(string(st.EntityType())).Inc()
				log.Debug("search strategy failed",
					zap.String("entity_type", string(st.EntityType())),
					zap.String("operation", op),
					zap.Error(err),
				)
				return nil
			}
			slots[i] = items
			return nil
		})
	}
	_ = g.Wait() // goroutines never return errors

	return slots
}
