package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/onehealth/portal/internal/logger"
	"github.com/onehealth/portal/internal/metrics"
)

// StartSessionSweeper removes sessions idle for longer than ttl, checking
// every interval, until ctx is done. The returned channel closes once the
// loop has exited.
func StartSessionSweeper(ctx context.Context, ttl, every time.Duration) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				runSweep(ctx, now.Add(-ttl))
			}
		}
	}()
	return done
}

func runSweep(ctx context.Context, cutoff time.Time) {
	n, err := SweepIdle(ctx, cutoff)
	if err != nil {
		if ctx.Err() == nil {
			logger.L().Error("session sweep failed", zap.Error(err))
		}
		return
	}
	if n > 0 {
		metrics.Default.AddSessionsSwept(n)
		logger.L().Info("idle sessions swept", zap.Int("count", n), zap.Time("cutoff", cutoff))
	}
}
