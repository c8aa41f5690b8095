package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-tennis/constants"
	"github.com/lixenwraith/vi-tennis/engine"
)

// Tracker turns raw terminal events into per-frame engine.Input.
// Terminals report key presses and auto-repeats but never releases, so a
// steering key counts as held for KeyFirstHoldWindow after the first press
// and for the shorter KeyHoldWindow once auto-repeats arrive.
// Handle may be called from the polling goroutine; Collect from the frame loop.
type Tracker struct {
	mu     sync.Mutex
	clock  engine.TimeProvider
	keymap Keymap

	events []engine.InputEvent
	up     hold
	down   hold

	pointer  bool
	pointerY float64
	rows     int

	muteToggles int
}

// NewTracker creates a tracker reading hold times from clock
func NewTracker(clock engine.TimeProvider, keymap Keymap) *Tracker {
	return &Tracker{
		clock:  clock,
		keymap: keymap,
		events: make([]engine.InputEvent, 0, 4),
	}
}

// SetRows sets the terminal height used to map mouse rows to field Y
func (t *Tracker) SetRows(rows int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = rows
}

// Handle records one terminal event
func (t *Tracker) Handle(ev tcell.Event) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		t.handleKey(ev)
	case *tcell.EventMouse:
		t.handleMouse(ev)
	case *tcell.EventResize:
		_, t.rows = ev.Size()
		t.events = append(t.events, engine.InputResize)
	}
}

func (t *Tracker) handleKey(ev *tcell.EventKey) {
	switch t.keymap.Lookup(ev) {
	case IntentQuit:
		t.events = append(t.events, engine.InputClose)
	case IntentStart:
		t.events = append(t.events, engine.InputStart)
	case IntentUp:
		t.up.press(t.clock.Now())
		t.down = hold{}
	case IntentDown:
		t.down.press(t.clock.Now())
		t.up = hold{}
	case IntentMute:
		t.muteToggles++
	}
}

// TakeMute reports whether an odd number of mute presses arrived since the last call
func (t *Tracker) TakeMute() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	toggled := t.muteToggles%2 == 1
	t.muteToggles = 0
	return toggled
}

func (t *Tracker) handleMouse(ev *tcell.EventMouse) {
	if ev.Buttons()&tcell.Button1 == 0 {
		t.pointer = false
		return
	}
	if t.rows <= 0 {
		return
	}
	_, row := ev.Position()
	t.pointer = true
	t.pointerY = (float64(row) + 0.5) * constants.FieldHeight / float64(t.rows)
}

// Collect returns the input for the current frame and clears discrete events
func (t *Tracker) Collect() engine.Input {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clock.Now()
	in := engine.Input{
		Up:       t.up.active(now),
		Down:     t.down.active(now),
		Pointer:  t.pointer,
		PointerY: t.pointerY,
	}
	if len(t.events) > 0 {
		in.Events = append([]engine.InputEvent(nil), t.events...)
		t.events = t.events[:0]
	}
	return in
}

// hold tracks one steering direction between key reports
type hold struct {
	at        time.Time
	repeating bool
}

// press records a report; one arriving while the key is still held is an auto-repeat
func (h *hold) press(now time.Time) {
	h.repeating = h.active(now)
	h.at = now
}

func (h hold) active(now time.Time) bool {
	if h.at.IsZero() {
		return false
	}
	window := constants.KeyFirstHoldWindow
	if h.repeating {
		window = constants.KeyHoldWindow
	}
	return now.Sub(h.at) < window
}
