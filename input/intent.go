// Package input defines the control intent consumed by the simulation core.
// Intents are produced once per tick by an external input-binding collaborator
// (keyboard, gamepad, replay); the core never touches devices directly.
package input

// Intent is the normalized set of boolean directives for one tick.
// Pure data struct with no function pointers or engine dependencies.
type Intent struct {
	Forward   bool // thrust along the orientation forward vector
	Backward  bool // reverse thrust
	YawLeft   bool
	YawRight  bool
	PitchUp   bool
	PitchDown bool
	Boost     bool // request boost activation (gated by cooldown)
	Restart   bool // abandon the run and return to the ready state
}

// Any reports whether the intent carries any directive at all. Useful for
// idle detection in demo and attract loops.
func (in Intent) Any() bool {
	return in.Forward || in.Backward ||
		in.YawLeft || in.YawRight ||
		in.PitchUp || in.PitchDown ||
		in.Boost || in.Restart
}
