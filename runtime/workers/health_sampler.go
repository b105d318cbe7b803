package workers

import (
	"chat-presence/observability"
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"
)

// HealthSampler publishes the CPU and RAM usage of the node itself.
// The load of a presence node grows with its open sockets, not with its requests.
type HealthSampler struct {
	log      *slog.Logger
	metrics  *observability.Metrics
	interval time.Duration
	pid      int32
}

func NewHealthSampler(log *slog.Logger, metrics *observability.Metrics, interval time.Duration) HealthSampler {
	return HealthSampler{log: log, metrics: metrics, interval: interval, pid: int32(os.Getpid())}
}

func (w HealthSampler) Run(ctx context.Context) error {
	p, err := process.NewProcess(w.pid)
	if err != nil {
		return err
	}
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping health sampling")
			return nil
		case <-ticker.C:
			w.Sample(p)
		}
	}
}

// Sample reads one measure, a failed probe is skipped until the next tick.
func (w HealthSampler) Sample(p *process.Process) {
	cpu, err := p.CPUPercent()
	if err != nil {
		w.log.Error("Error while finding process cpu usage", "err", err)
		return
	}
	ram, err := p.MemoryPercent()
	if err != nil {
		w.log.Error("Error while finding process ram usage", "err", err)
		return
	}
	w.metrics.SetProcess(cpu, ram)
}
