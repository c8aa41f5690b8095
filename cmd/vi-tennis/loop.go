package main

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-tennis/audio"
	"github.com/lixenwraith/vi-tennis/engine"
	"github.com/lixenwraith/vi-tennis/input"
	"github.com/lixenwraith/vi-tennis/metrics"
	"github.com/lixenwraith/vi-tennis/render"
	"github.com/lixenwraith/vi-tennis/server"
)

// frameSink performs a frame's side effects. Any field may be nil.
type frameSink struct {
	sounds  *audio.SoundManager
	metrics *metrics.Metrics
	hub     *server.Hub
}

func (s *frameSink) handle(res engine.FrameResult) {
	if s.sounds != nil {
		s.sounds.PlayEvents(res.Events)
	}
	s.metrics.ObserveFrame(res)
	logEvents(res)
	if s.hub != nil {
		s.hub.Publish(res.Snapshot)
	}
}

// logEvents records match-level events; bounces are too frequent to log
func logEvents(res engine.FrameResult) {
	for _, ev := range res.Events {
		switch ev.Type {
		case engine.EventMatchStart:
			log.Printf("match %s started", res.Snapshot.MatchID)
		case engine.EventScore:
			log.Printf("match %s: %s scores (%d-%d)", res.Snapshot.MatchID, ev.Side, res.Snapshot.LeftScore, res.Snapshot.RightScore)
		case engine.EventMilestone:
			log.Printf("match %s: milestone %d, %d balls", res.Snapshot.MatchID, ev.Score, len(res.Snapshot.Balls))
		case engine.EventWin:
			log.Printf("match %s: %s wins %d-%d", res.Snapshot.MatchID, ev.Side, res.Snapshot.LeftScore, res.Snapshot.RightScore)
		}
	}
}

// runTerminal drives game from terminal input at interval until quit or ctx is done
func runTerminal(ctx context.Context, screen tcell.Screen, game *engine.Game, tracker *input.Tracker, interval time.Duration, sink *frameSink) {
	renderer := render.NewTerminalRenderer(screen)
	_, rows := screen.Size()
	tracker.SetRows(rows)

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case ev := <-eventChan:
			tracker.Handle(ev)

		case <-ticker.C:
			if tracker.TakeMute() && sink.sounds != nil {
				log.Printf("sound muted: %v", sink.sounds.ToggleMute())
			}
			res := game.Frame(tracker.Collect())
			if res.Quit {
				log.Printf("quit after %d frames", game.FrameNumber())
				return
			}
			if res.Resized {
				renderer.Resize()
			}
			sink.handle(res)
			renderer.RenderFrame(res.Snapshot)
		}
	}
}

// runHeadless drives an attract-mode game with no input until ctx is done
func runHeadless(ctx context.Context, game *engine.Game, interval time.Duration, sink *frameSink) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("headless run stopped after %d frames", game.FrameNumber())
			return
		case <-ticker.C:
			sink.handle(game.Frame(engine.Input{}))
		}
	}
}
