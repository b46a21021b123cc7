package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// latchDuration keeps a directive asserted between key repeats. Terminals
// deliver no key-up events, so a held key is a stream of repeats and the
// latch has to outlive the repeat interval.
const latchDuration = 150 * time.Millisecond

type directive int

const (
	dirForward directive = iota
	dirBackward
	dirYawLeft
	dirYawRight
	dirPitchUp
	dirPitchDown
	dirBoost
	directiveCount
)

// Keyboard turns tcell key events into per-tick intents with latching.
// Restart is edge-triggered, never latched.
type Keyboard struct {
	expiry  [directiveCount]time.Time
	restart bool
}

// HandleEvent records a key event. Unmapped keys are ignored.
func (k *Keyboard) HandleEvent(ev *tcell.EventKey, now time.Time) {
	latch := func(d directive) {
		k.expiry[d] = now.Add(latchDuration)
	}

	switch ev.Key() {
	case tcell.KeyUp:
		latch(dirForward)
	case tcell.KeyDown:
		latch(dirBackward)
	case tcell.KeyLeft:
		latch(dirYawLeft)
	case tcell.KeyRight:
		latch(dirYawRight)
	case tcell.KeyPgUp:
		latch(dirPitchUp)
	case tcell.KeyPgDn:
		latch(dirPitchDown)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			latch(dirForward)
		case 's', 'S':
			latch(dirBackward)
		case 'a', 'A':
			latch(dirYawLeft)
		case 'd', 'D':
			latch(dirYawRight)
		case 'q', 'Q':
			latch(dirPitchUp)
		case 'e', 'E':
			latch(dirPitchDown)
		case ' ':
			latch(dirBoost)
		case 'r', 'R':
			k.restart = true
		}
	}
}

// Intent drains the current state into one tick's intent.
func (k *Keyboard) Intent(now time.Time) Intent {
	held := func(d directive) bool {
		return now.Before(k.expiry[d])
	}
	in := Intent{
		Forward:   held(dirForward),
		Backward:  held(dirBackward),
		YawLeft:   held(dirYawLeft),
		YawRight:  held(dirYawRight),
		PitchUp:   held(dirPitchUp),
		PitchDown: held(dirPitchDown),
		Boost:     held(dirBoost),
		Restart:   k.restart,
	}
	k.restart = false
	return in
}
