package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/lixenwraith/vi-tennis/engine"
)

// value gathers reg and returns the counter or gauge value of name with an optional side label
func value(t *testing.T, reg *prometheus.Registry, name, side string) float64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			match := side == ""
			for _, lp := range m.GetLabel() {
				if lp.GetName() == "side" && lp.GetValue() == side {
					match = true
				}
			}
			if !match {
				continue
			}
			if c := m.GetCounter(); c != nil {
				return c.GetValue()
			}
			if g := m.GetGauge(); g != nil {
				return g.GetValue()
			}
		}
	}
	t.Fatalf("Metric %s{side=%q} not found", name, side)
	return 0
}

func TestObserveFrame(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveFrame(engine.FrameResult{
		Events: []engine.Event{{Type: engine.EventMatchStart}},
	})
	m.ObserveFrame(engine.FrameResult{
		DeltaTime: 16 * time.Millisecond,
		Events: []engine.Event{
			{Type: engine.EventBounce},
			{Type: engine.EventBounce, Side: engine.SideLeft},
			{Type: engine.EventScore, Side: engine.SideRight, Score: 10},
			{Type: engine.EventWin, Side: engine.SideRight, Score: 10},
		},
		Snapshot: engine.Snapshot{
			RightScore: 10,
			LeftScore:  4,
			Balls:      []engine.BallSnapshot{{}, {}},
		},
	})

	tests := []struct {
		name, side string
		want       float64
	}{
		{"vi_tennis_frames_total", "", 2},
		{"vi_tennis_bounces_total", "", 2},
		{"vi_tennis_matches_started_total", "", 1},
		{"vi_tennis_points_total", "right", 1},
		{"vi_tennis_matches_won_total", "right", 1},
		{"vi_tennis_balls", "", 2},
		{"vi_tennis_score", "left", 4},
		{"vi_tennis_score", "right", 10},
	}
	for _, tt := range tests {
		if got := value(t, reg, tt.name, tt.side); got != tt.want {
			t.Errorf("%s{side=%q} = %v, want %v", tt.name, tt.side, got, tt.want)
		}
	}
}

func TestSpectatorMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.SetSpectators(3)
	m.IncWSMessages()
	m.IncWSMessages()
	m.IncWSDropped()

	if got := value(t, reg, "vi_tennis_spectators", ""); got != 3 {
		t.Errorf("Expected 3 spectators, got %v", got)
	}
	if got := value(t, reg, "vi_tennis_ws_messages_total", ""); got != 2 {
		t.Errorf("Expected 2 messages, got %v", got)
	}
	if got := value(t, reg, "vi_tennis_ws_dropped_total", ""); got != 1 {
		t.Errorf("Expected 1 dropped, got %v", got)
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Nil metrics panicked: %v", r)
		}
	}()

	m.ObserveFrame(engine.FrameResult{Events: []engine.Event{{Type: engine.EventBounce}}})
	m.SetSpectators(1)
	m.IncWSMessages()
	m.IncWSDropped()
}
