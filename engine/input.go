package engine

// InputEvent is a discrete input delivered to the frame driver
type InputEvent int

const (
	InputClose InputEvent = iota
	InputStart
	InputResize
)

// Input is everything the frame driver reads from the input source for one frame.
// When Pointer is set, PointerY (field units) places the left paddle directly
// and the Up/Down keys are ignored.
type Input struct {
	Events   []InputEvent
	Up, Down bool
	Pointer  bool
	PointerY float64
}

// Has reports whether ev occurred this frame
func (in Input) Has(ev InputEvent) bool {
	for _, e := range in.Events {
		if e == ev {
			return true
		}
	}
	return false
}
