package input

import (
	"fmt"
	"os"
	"sort"

	"github.com/BurntSushi/toml"
)

// keyFile is the TOML layout of a key binding file:
//
//	[keys]
//	w = "up"
//	s = "down"
//	space = "start"
//	esc = "quit"
//	x = "none"
type keyFile struct {
	Keys map[string]string `toml:"keys"`
}

// LoadKeyConfig applies the [keys] table of TOML data on top of km.
// Unknown key or intent names are an error and leave the keymap unchanged.
func (km Keymap) LoadKeyConfig(data []byte) (Keymap, error) {
	var kf keyFile
	if _, err := toml.Decode(string(data), &kf); err != nil {
		return km, fmt.Errorf("keymap parse: %w", err)
	}

	// Sorted so the first error reported is stable
	names := make([]string, 0, len(kf.Keys))
	for name := range kf.Keys {
		names = append(names, name)
	}
	sort.Strings(names)

	out := km.Clone()
	for _, name := range names {
		if err := out.bind(name, kf.Keys[name]); err != nil {
			return km, fmt.Errorf("[keys] key %q: %w", name, err)
		}
	}
	return out, nil
}

// LoadKeyFile reads path and applies it with LoadKeyConfig
func (km Keymap) LoadKeyFile(path string) (Keymap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return km, err
	}
	return km.LoadKeyConfig(data)
}
