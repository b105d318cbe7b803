package workers

import (
	"chat-presence/contract"
	"chat-presence/observability"
	"context"
	"time"
)

// PresenceSampler copies the lifecycle counters into the presence gauges at a fixed pace.
type PresenceSampler struct {
	lifecycle contract.ILifecycle
	metrics   *observability.Metrics
	interval  time.Duration
}

func NewPresenceSampler(lifecycle contract.ILifecycle, metrics *observability.Metrics, interval time.Duration) PresenceSampler {
	return PresenceSampler{lifecycle: lifecycle, metrics: metrics, interval: interval}
}

func (w PresenceSampler) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.Sample()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.Sample()
		}
	}
}

func (w PresenceSampler) Sample() {
	stats := w.lifecycle.Stats()
	w.metrics.SetPresence(stats.OnlineUsers, stats.IdentifiedConnections, stats.OpenConnections)
}
