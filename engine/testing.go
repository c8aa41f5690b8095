package engine

// ScriptedRand replays a fixed sequence of values, wrapping around, reduced modulo n.
// Used by tests to force specific spawn angles and bounce jitter.
type ScriptedRand struct {
	Values []int
	Calls  int
}

// Intn returns the next scripted value modulo n
func (r *ScriptedRand) Intn(n int) int {
	if len(r.Values) == 0 {
		r.Calls++
		return 0
	}
	v := r.Values[r.Calls%len(r.Values)]
	r.Calls++
	return v % n
}
