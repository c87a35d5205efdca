package usecase

import (
	"context"
	"encoding/json"
	"time"

	"xenopets/pkg/logger"
)

// Broadcaster pushes a payload to every connected dashboard client.
type Broadcaster interface {
	Broadcast(message []byte)
}

// StatsRefresher re-runs the aggregator on a fixed interval and pushes each
// snapshot to connected dashboards. The loop stops when its context is
// cancelled; the owning view must cancel on teardown.
type StatsRefresher struct {
	stats       *StatsUseCase
	broadcaster Broadcaster
	interval    time.Duration
}

func NewStatsRefresher(stats *StatsUseCase, broadcaster Broadcaster, interval time.Duration) *StatsRefresher {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &StatsRefresher{
		stats:       stats,
		broadcaster: broadcaster,
		interval:    interval,
	}
}

// Start runs the refresh loop in a goroutine. An immediate first refresh
// primes the snapshot so dashboards never read an empty one.
func (r *StatsRefresher) Start(ctx context.Context) {
	go func() {
		r.push(ctx)

		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				r.push(ctx)
			case <-ctx.Done():
				return
			}
		}
	}()

	logger.Info("Stats refresher started (interval %s)", r.interval)
}

// Trigger refreshes and broadcasts immediately, outside the ticker. Catalog
// mutations use it so dashboards see changes without waiting for the next
// interval.
func (r *StatsRefresher) Trigger(ctx context.Context) {
	r.push(ctx)
}

func (r *StatsRefresher) push(ctx context.Context) {
	snapshot := r.stats.Refresh(ctx)
	if r.broadcaster == nil {
		return
	}

	payload, err := json.Marshal(map[string]interface{}{
		"type": "statistics",
		"data": snapshot,
	})
	if err != nil {
		logger.Error("Failed to encode statistics: %v", err)
		return
	}
	r.broadcaster.Broadcast(payload)
}
