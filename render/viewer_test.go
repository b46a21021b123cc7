package render

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"github.com/voidrun/slipstream/sim"
)

func TestRunExitsOnEscape(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	v, err := newViewer(screen, sim.New(sim.Config{Seed: 1}, nil), 60, nil)
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		v.Run()
		close(done)
	}()

	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("viewer did not shut down on escape")
	}
}

func TestRunTicksSimulation(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	s := sim.New(sim.Config{Seed: 1}, nil)
	v, err := newViewer(screen, s, 60, nil)
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		v.Run()
		close(done)
	}()

	// A control key launches the race from the ready phase; give the loop a
	// few frames before shutting down. The simulation is single-threaded, so
	// the snapshot is read only after Run has returned.
	screen.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	time.Sleep(100 * time.Millisecond)
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("viewer did not shut down on escape")
	}

	require.Positive(t, s.Snapshot().Elapsed)
}
