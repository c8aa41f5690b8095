package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Intent is the semantic action a key is bound to
type Intent uint8

const (
	IntentNone Intent = iota
	IntentQuit
	IntentStart
	IntentUp
	IntentDown
	IntentMute
)

// intentNames maps binding names used in configuration to intents
var intentNames = map[string]Intent{
	"none":  IntentNone,
	"quit":  IntentQuit,
	"start": IntentStart,
	"up":    IntentUp,
	"down":  IntentDown,
	"mute":  IntentMute,
}

// keyNames maps special key names used in configuration to tcell keys
var keyNames = map[string]tcell.Key{
	"esc":    tcell.KeyEscape,
	"ctrl-c": tcell.KeyCtrlC,
	"ctrl-q": tcell.KeyCtrlQ,
	"enter":  tcell.KeyEnter,
	"up":     tcell.KeyUp,
	"down":   tcell.KeyDown,
	"pgup":   tcell.KeyPgUp,
	"pgdn":   tcell.KeyPgDn,
}

// Rune aliases for keys that cannot be written as a single character
var runeAliases = map[string]rune{
	"space": ' ',
}

// Keymap binds special keys and printable runes to intents
type Keymap struct {
	Keys  map[tcell.Key]Intent
	Runes map[rune]Intent
}

// DefaultKeymap returns the built-in bindings: arrows, j/k and w/s steer, space starts,
// m toggles sound, Esc and Ctrl-C quit
func DefaultKeymap() Keymap {
	return Keymap{
		Keys: map[tcell.Key]Intent{
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyCtrlQ:  IntentQuit,
			tcell.KeyUp:     IntentUp,
			tcell.KeyDown:   IntentDown,
		},
		Runes: map[rune]Intent{
			' ': IntentStart,
			'k': IntentUp,
			'j': IntentDown,
			'w': IntentUp,
			's': IntentDown,
			'm': IntentMute,
		},
	}
}

// Lookup resolves a key event to its intent
func (km Keymap) Lookup(ev *tcell.EventKey) Intent {
	if ev.Key() == tcell.KeyRune {
		return km.Runes[ev.Rune()]
	}
	return km.Keys[ev.Key()]
}

// Apply parses comma-separated "key=intent" overrides, e.g. "w=up,s=down,x=none".
// Unknown key or intent names are an error and leave the keymap unchanged.
func (km Keymap) Apply(bindings string) (Keymap, error) {
	out := km.Clone()
	for _, pair := range strings.Split(bindings, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, action, ok := strings.Cut(pair, "=")
		if !ok {
			return km, fmt.Errorf("binding %q: expected key=intent", pair)
		}
		if err := out.bind(name, action); err != nil {
			return km, fmt.Errorf("binding %q: %w", pair, err)
		}
	}
	return out, nil
}

// Clone returns a deep copy
func (km Keymap) Clone() Keymap {
	out := Keymap{
		Keys:  make(map[tcell.Key]Intent, len(km.Keys)),
		Runes: make(map[rune]Intent, len(km.Runes)),
	}
	for k, v := range km.Keys {
		out.Keys[k] = v
	}
	for r, v := range km.Runes {
		out.Runes[r] = v
	}
	return out
}

// bind sets one key name to an intent name; "none" removes the binding
func (km Keymap) bind(name, action string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	intent, ok := intentNames[strings.ToLower(strings.TrimSpace(action))]
	if !ok {
		return fmt.Errorf("unknown intent %q", action)
	}

	if k, ok := keyNames[name]; ok {
		setKey(km.Keys, k, intent)
		return nil
	}
	if r, ok := runeAliases[name]; ok {
		setRune(km.Runes, r, intent)
		return nil
	}
	if runes := []rune(name); len(runes) == 1 {
		setRune(km.Runes, runes[0], intent)
		return nil
	}
	return fmt.Errorf("unknown key %q", name)
}

func setKey(m map[tcell.Key]Intent, k tcell.Key, intent Intent) {
	if intent == IntentNone {
		delete(m, k)
		return
	}
	m[k] = intent
}

func setRune(m map[rune]Intent, r rune, intent Intent) {
	if intent == IntentNone {
		delete(m, r)
		return
	}
	m[r] = intent
}
