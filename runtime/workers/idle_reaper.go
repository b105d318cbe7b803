package workers

import (
	"chat-presence/contract"
	"chat-presence/observability"
	"context"
	"log/slog"
	"time"
)

// IdleReaper closes connections that stayed anonymous for longer than timeout.
// A connection only joins the registry once it sent userConnected, so an
// anonymous socket would otherwise hold resources forever.
type IdleReaper struct {
	log       *slog.Logger
	lifecycle contract.ILifecycle
	transport contract.Transport
	metrics   *observability.Metrics
	timeout   time.Duration
	interval  time.Duration
}

func NewIdleReaper(log *slog.Logger, lifecycle contract.ILifecycle, transport contract.Transport,
	metrics *observability.Metrics, timeout, interval time.Duration) IdleReaper {
	return IdleReaper{
		log:       log,
		lifecycle: lifecycle,
		transport: transport,
		metrics:   metrics,
		timeout:   timeout,
		interval:  interval,
	}
}

func (w IdleReaper) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			w.Reap(now)
		}
	}
}

// Reap closes every anonymous connection opened before now - timeout and returns how many were closed.
// A connection that identified since the listing is left alone.
// The transport reports the close back through the lifecycle, like any other disconnect.
func (w IdleReaper) Reap(now time.Time) int {
	cutoff := now.Add(-w.timeout)
	reaped := 0
	for _, connID := range w.lifecycle.AnonymousSince(cutoff) {
		if !w.lifecycle.ClaimAnonymous(connID, cutoff) {
			continue
		}
		if err := w.transport.Close(connID); err != nil {
			w.log.Debug("Unable to close anonymous connection", "conn", connID, "error", err)
			w.lifecycle.OnDisconnect(connID)
			continue
		}
		reaped++
	}
	if reaped > 0 {
		w.log.Info("Anonymous connections reaped", "count", reaped)
		w.metrics.Reaped(reaped)
	}
	return reaped
}
