package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/lixenwraith/vi-tennis/engine"
)

const namespace = "vi_tennis"

// Metrics holds the game's collectors. Label values are bounded ("left", "right").
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	frames         prometheus.Counter
	frameDelta     prometheus.Histogram
	bounces        prometheus.Counter
	points         *prometheus.CounterVec
	wins           *prometheus.CounterVec
	matchesStarted prometheus.Counter
	balls          prometheus.Gauge
	scores         *prometheus.GaugeVec

	spectators prometheus.Gauge
	wsMessages prometheus.Counter
	wsDropped  prometheus.Counter
}

// New registers the collectors with reg
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		frames: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames_total",
			Help:      "Frames processed by the frame driver",
		}),
		frameDelta: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "frame_delta_seconds",
			Help:      "Simulated time step per playing frame",
			Buckets:   []float64{0.008, 0.016, 0.033, 0.05, 0.1, 0.25},
		}),
		bounces: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bounces_total",
			Help:      "Wall and paddle bounces",
		}),
		points: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "points_total",
			Help:      "Points scored by side",
		}, []string{"side"}),
		wins: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "matches_won_total",
			Help:      "Matches won by side",
		}, []string{"side"}),
		matchesStarted: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "matches_started_total",
			Help:      "Matches started",
		}),
		balls: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "balls",
			Help:      "Balls currently in play",
		}),
		scores: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "score",
			Help:      "Current score by side",
		}, []string{"side"}),
		spectators: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "spectators",
			Help:      "Connected websocket spectators",
		}),
		wsMessages: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ws_messages_total",
			Help:      "Snapshot messages broadcast to spectators",
		}),
		wsDropped: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ws_dropped_total",
			Help:      "Snapshot broadcasts skipped because the hub was busy",
		}),
	}
}

// ObserveFrame records one frame's result
func (m *Metrics) ObserveFrame(res engine.FrameResult) {
	if m == nil {
		return
	}

	m.frames.Inc()
	if res.DeltaTime > 0 {
		m.frameDelta.Observe(res.DeltaTime.Seconds())
	}

	for _, ev := range res.Events {
		switch ev.Type {
		case engine.EventBounce:
			m.bounces.Inc()
		case engine.EventScore:
			m.points.WithLabelValues(ev.Side.String()).Inc()
		case engine.EventWin:
			m.wins.WithLabelValues(ev.Side.String()).Inc()
		case engine.EventMatchStart:
			m.matchesStarted.Inc()
		}
	}

	m.balls.Set(float64(len(res.Snapshot.Balls)))
	m.scores.WithLabelValues(engine.SideLeft.String()).Set(float64(res.Snapshot.LeftScore))
	m.scores.WithLabelValues(engine.SideRight.String()).Set(float64(res.Snapshot.RightScore))
}

// SetSpectators records the number of connected spectators
func (m *Metrics) SetSpectators(n int) {
	if m == nil {
		return
	}
	m.spectators.Set(float64(n))
}

// IncWSMessages counts a broadcast snapshot message
func (m *Metrics) IncWSMessages() {
	if m == nil {
		return
	}
	m.wsMessages.Inc()
}

// IncWSDropped counts a skipped broadcast
func (m *Metrics) IncWSDropped() {
	if m == nil {
		return
	}
	m.wsDropped.Inc()
}
