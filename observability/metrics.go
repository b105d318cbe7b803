package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "presence"

// Metrics groups the prometheus collectors of the presence layer.
// A nil *Metrics is valid and records nothing, which keeps tests free of registries.
type Metrics struct {
	OnlineUsers        prometheus.Gauge
	OpenConnections    prometheus.Gauge
	IdentifiedConns    prometheus.Gauge
	EventsDelivered    *prometheus.CounterVec
	EventsDropped      *prometheus.CounterVec
	PresenceBroadcasts prometheus.Counter
	ReapedConnections  prometheus.Counter
	RejectedFrames     *prometheus.CounterVec
	ProcessCPU         prometheus.Gauge
	ProcessMemory      prometheus.Gauge
}

// NewMetrics registers every collector on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		OnlineUsers: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "online_users",
			Help: "Users with at least one identified connection.",
		}),
		OpenConnections: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "open_connections",
			Help: "Transport connections currently open, anonymous included.",
		}),
		IdentifiedConns: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "identified_connections",
			Help: "Connections bound to a user.",
		}),
		EventsDelivered: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "events_enqueued_total",
			Help: "Events handed to a connection send queue.",
		}, []string{"event"}),
		EventsDropped: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "events_dropped_total",
			Help: "Events that could not be handed to a connection.",
		}, []string{"event", "reason"}),
		PresenceBroadcasts: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "presence_broadcasts_total",
			Help: "updateOnlineUsers broadcasts sent.",
		}),
		ReapedConnections: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "reaped_connections_total",
			Help: "Anonymous connections closed after the idle timeout.",
		}),
		RejectedFrames: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "rejected_frames_total",
			Help: "Inbound frames ignored by the server.",
		}, []string{"event", "reason"}),
		ProcessCPU: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "process_cpu_percent",
			Help: "CPU usage of the presence node, in percent of one core.",
		}),
		ProcessMemory: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "process_memory_percent",
			Help: "Resident memory of the presence node, in percent of the host RAM.",
		}),
	}
}

func (m *Metrics) Delivered(event string) {
	if m == nil {
		return
	}
	m.EventsDelivered.WithLabelValues(event).Inc()
}

func (m *Metrics) Dropped(event, reason string) {
	if m == nil {
		return
	}
	m.EventsDropped.WithLabelValues(event, reason).Inc()
}

func (m *Metrics) Broadcast() {
	if m == nil {
		return
	}
	m.PresenceBroadcasts.Inc()
}

func (m *Metrics) Reaped(n int) {
	if m == nil {
		return
	}
	m.ReapedConnections.Add(float64(n))
}

func (m *Metrics) Rejected(event, reason string) {
	if m == nil {
		return
	}
	m.RejectedFrames.WithLabelValues(event, reason).Inc()
}

// SetPresence publishes a registry snapshot.
func (m *Metrics) SetPresence(users, identified, open int) {
	if m == nil {
		return
	}
	m.OnlineUsers.Set(float64(users))
	m.IdentifiedConns.Set(float64(identified))
	m.OpenConnections.Set(float64(open))
}

func (m *Metrics) SetProcess(cpu float64, ram float32) {
	if m == nil {
		return
	}
	m.ProcessCPU.Set(cpu)
	m.ProcessMemory.Set(float64(ram))
}
