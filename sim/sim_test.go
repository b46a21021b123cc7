package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voidrun/slipstream/constant"
	"github.com/voidrun/slipstream/input"
	"github.com/voidrun/slipstream/race"
)

const tick = 16 * time.Millisecond

func newRunning(t *testing.T) *Simulation {
	t.Helper()
	s := New(Config{Seed: 42}, nil)
	s.Start()
	require.Equal(t, race.PhasePlaying, s.Snapshot().Phase)
	return s
}

func TestStartBuildsWindowAndPlays(t *testing.T) {
	s := New(Config{Seed: 1}, nil)
	assert.Equal(t, race.PhaseReady, s.Snapshot().Phase)
	assert.Empty(t, s.Snapshot().Segments)

	s.Start()
	snap := s.Snapshot()
	assert.Equal(t, race.PhasePlaying, snap.Phase)
	assert.Len(t, snap.Segments, constant.InitialSegments)
	assert.Equal(t, 1, snap.Lap)
	assert.Equal(t, float64(constant.HealthMax), snap.Health)
}

func TestFirstInputLaunchesFromReady(t *testing.T) {
	s := New(Config{Seed: 1}, nil)

	s.Tick(input.Intent{}, tick)
	assert.Equal(t, race.PhaseReady, s.Snapshot().Phase)

	s.Tick(input.Intent{Forward: true}, tick)
	assert.Equal(t, race.PhasePlaying, s.Snapshot().Phase)
}

func TestForwardIntentMovesVehicle(t *testing.T) {
	s := newRunning(t)

	for i := 0; i < 100; i++ {
		s.Tick(input.Intent{Forward: true}, tick)
	}

	snap := s.Snapshot()
	assert.Negative(t, snap.Position.Z(), "launch zone runs along -z")
	assert.Positive(t, snap.Speed)
	assert.Equal(t, 100*tick, snap.Elapsed)
}

func TestIdleVehicleStaysPut(t *testing.T) {
	s := newRunning(t)
	for i := 0; i < 50; i++ {
		s.Tick(input.Intent{}, tick)
	}
	snap := s.Snapshot()
	assert.Zero(t, snap.Position)
	assert.Zero(t, snap.Speed)
}

func TestWindowMaintainedDuringRun(t *testing.T) {
	s := newRunning(t)

	for i := 0; i < 5000; i++ {
		s.Tick(input.Intent{Forward: true}, tick)

		snap := s.Snapshot()
		require.NotEmpty(t, snap.Segments)
		require.Less(t, len(snap.Segments), 30, "window must stay bounded")
		for j := 1; j < len(snap.Segments); j++ {
			require.Equal(t, snap.Segments[j-1].ID+1, snap.Segments[j].ID)
		}
		if snap.Phase != race.PhasePlaying {
			break
		}
	}
}

func TestTickClampLimitsTimers(t *testing.T) {
	s := newRunning(t)

	// A ten second stall must advance the race clock by one clamped tick.
	s.Tick(input.Intent{Forward: true}, 10*time.Second)
	assert.Equal(t, constant.TickClamp, s.Snapshot().Elapsed)
}

func TestRestartIntentResetsRun(t *testing.T) {
	s := newRunning(t)
	for i := 0; i < 30; i++ {
		s.Tick(input.Intent{Forward: true}, tick)
	}
	require.NotZero(t, s.Snapshot().Position)

	s.Tick(input.Intent{Restart: true}, tick)

	snap := s.Snapshot()
	assert.Equal(t, race.PhaseReady, snap.Phase)
	assert.Zero(t, snap.Position)
	assert.Zero(t, snap.Score)
	assert.Zero(t, snap.Elapsed)
	assert.Equal(t, float64(constant.HealthMax), snap.Health)
	assert.Len(t, snap.Segments, constant.InitialSegments)
}

func TestRestartReplaysSameTrack(t *testing.T) {
	s := New(Config{Seed: 7}, nil)
	s.Start()
	want := s.Snapshot().Segments

	for i := 0; i < 200; i++ {
		s.Tick(input.Intent{Forward: true, YawRight: true}, tick)
	}

	s.Tick(input.Intent{Restart: true}, tick)
	s.Tick(input.Intent{Forward: true}, tick)
	require.Equal(t, race.PhasePlaying, s.Snapshot().Phase)

	assert.Equal(t, want, s.Snapshot().Segments,
		"restart must rebuild the identical track for the seed")
}

func TestSameSeedSameTrajectory(t *testing.T) {
	a := New(Config{Seed: 7}, nil)
	b := New(Config{Seed: 7}, nil)
	a.Start()
	b.Start()

	in := input.Intent{Forward: true, YawLeft: true}
	for i := 0; i < 500; i++ {
		a.Tick(in, tick)
		b.Tick(in, tick)
	}

	sa, sb := a.Snapshot(), b.Snapshot()
	assert.Equal(t, sa.Position, sb.Position)
	assert.Equal(t, sa.Segments, sb.Segments)
	assert.Equal(t, sa.Score, sb.Score)
	assert.Equal(t, sa.Health, sb.Health)
}

func TestSnapshotIsDetached(t *testing.T) {
	s := newRunning(t)

	snap := s.Snapshot()
	require.NotEmpty(t, snap.Segments)
	snap.Segments[0].Width = 0

	assert.Equal(t, float64(constant.SegmentWidth), s.Snapshot().Segments[0].Width)
}
