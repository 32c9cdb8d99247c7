package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/walletview7000-backend/internal/clock"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// Refresher periodically re-pins the chain snapshot and brings the
// record set up to date. Node polling is rate limited so a short
// refresh interval cannot hammer the RPC endpoint.
type Refresher struct {
	svc      *Service
	view     RefreshableView
	interval time.Duration
	limiter  ratelimit.Limiter
	logger   *zap.Logger
	sleep    func(context.Context, time.Duration) error
}

// NewRefresher constructs a refresher ticking at interval with at most
// rps chain polls per second.
func NewRefresher(svc *Service, view RefreshableView, interval time.Duration, rps int, logger *zap.Logger) *Refresher {
	if rps <= 0 {
		rps = 1
	}
	return &Refresher{
		svc:      svc,
		view:     view,
		interval: interval,
		limiter:  ratelimit.New(rps),
		logger:   logger.Named("refresher"),
		sleep:    clock.SleepWithContext,
	}
}

// Run loops until the context is canceled. Failures are logged and
// retried on the next tick; the record set keeps serving the last
// good snapshot meanwhile.
func (r *Refresher) Run(ctx context.Context) error {
	for {
		if err := r.sleep(ctx, r.interval); err != nil {
			return err
		}
		r.limiter.Take()

		if err := r.view.Refresh(); err != nil {
			r.logger.Warn("chain refresh failed", zap.Error(err))
			continue
		}
		if err := r.svc.Sync(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			r.logger.Warn("wallet sync failed", zap.Error(err))
			continue
		}
		if err := r.svc.RefreshStale(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			r.logger.Warn("status refresh failed", zap.Error(err))
		}
	}
}
