package track

import (
	"slices"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voidrun/slipstream/constant"
)

func newTestGenerator(seed uint64) *Generator {
	g := NewGenerator(Options{Seed: seed}, nil)
	g.Reset()
	return g
}

func TestResetProducesInitialRun(t *testing.T) {
	g := newTestGenerator(7)
	segs := g.Segments()
	require.Len(t, segs, constant.InitialSegments)

	// Launch zone is straight and faces -z
	for i := 0; i < constant.StraightSegments; i++ {
		assert.Zero(t, segs[i].Curvature, "segment %d", i)
		assert.Zero(t, segs[i].Pitch, "segment %d", i)
		assert.Equal(t, mgl64.Vec3{0, 0, -1}, segs[i].Dir, "segment %d", i)
	}
}

func TestSegmentConnectivity(t *testing.T) {
	g := newTestGenerator(11)
	segs := g.Segments()
	for i := 1; i < len(segs); i++ {
		// Exact equality: each start is derived from the previous end
		require.Equal(t, segs[i-1].End, segs[i].Start, "segment %d", i)
	}
}

func TestSegmentIDsContiguous(t *testing.T) {
	g := newTestGenerator(13)
	segs := g.Segments()
	for i, s := range segs {
		require.Equal(t, int64(i+1), s.ID)
	}
}

func TestCheckpointFlagEveryInterval(t *testing.T) {
	g := newTestGenerator(17)
	for _, s := range g.Segments() {
		assert.Equal(t, s.ID%constant.CheckpointInterval == 0, s.Checkpoint,
			"segment %d", s.ID)
	}
}

func TestDirectionsUnitLength(t *testing.T) {
	g := newTestGenerator(19)
	for _, s := range g.Segments() {
		assert.InDelta(t, 1.0, s.Dir.Len(), 1e-9, "segment %d", s.ID)
		assert.InDelta(t, constant.SegmentLength, s.End.Sub(s.Start).Len(), 1e-9)
	}
}

func TestCurvatureAndPitchBounded(t *testing.T) {
	g := newTestGenerator(23)
	for i := 0; i < 200; i++ {
		g.appendSegment(g.randCurvature(), g.randPitch())
	}
	for _, s := range g.Segments() {
		assert.LessOrEqual(t, s.Curvature, constant.MaxCurvature)
		assert.GreaterOrEqual(t, s.Curvature, -constant.MaxCurvature)
		assert.LessOrEqual(t, s.Pitch, constant.MaxPitch)
		assert.GreaterOrEqual(t, s.Pitch, -constant.MaxPitch)
	}
}

func TestHazardSkipOnLaunchZone(t *testing.T) {
	g := newTestGenerator(29)
	for _, h := range g.Hazards() {
		assert.Greater(t, h.SegmentID, int64(constant.HazardSkipSegments))
	}
	for _, p := range g.PowerUps() {
		assert.Greater(t, p.SegmentID, int64(constant.PowerUpSkipSegments))
	}
}

func TestWindowBoundedDuringTraversal(t *testing.T) {
	g := newTestGenerator(31)

	// Ride the head of the window for a long run and keep the window
	// maintenance going every step: extension stays within one threshold,
	// eviction trails within the other.
	for step := 0; step < 3000; step++ {
		segs := g.Segments()
		require.NotEmpty(t, segs)
		pos := segs[len(segs)-1].Start
		g.ExtendIfNeeded(pos)
		g.EvictIfNeeded(pos)

		require.Less(t, len(g.Segments()), 30, "window must stay bounded")
	}

	// IDs stay contiguous within the live window even after eviction.
	segs := g.Segments()
	for i := 1; i < len(segs); i++ {
		require.Equal(t, segs[i-1].ID+1, segs[i].ID)
	}
}

func TestEvictRemovesOwnedEntities(t *testing.T) {
	g := NewGenerator(Options{Seed: 37, HazardDensity: 1, PowerUpDensity: 1}, nil)
	g.Reset()

	// Find a hazard owned by the first segment that carries one.
	require.NotEmpty(t, g.Hazards())
	owned := g.Hazards()[0].SegmentID

	// Evict everything up to and including that segment.
	for g.Segments()[0].ID <= owned {
		first := g.Segments()[0]
		farAway := first.Start.Add(mgl64.Vec3{0, 0, -10 * constant.SegmentLength})
		g.EvictIfNeeded(farAway)
		require.NotEqual(t, first.ID, g.Segments()[0].ID, "eviction must make progress")
		g.ExtendIfNeeded(g.Segments()[len(g.Segments())-1].End)
	}

	for _, h := range g.Hazards() {
		assert.NotEqual(t, owned, h.SegmentID)
	}
	for _, p := range g.PowerUps() {
		assert.NotEqual(t, owned, p.SegmentID)
	}
}

func TestDeactivateHazard(t *testing.T) {
	g := NewGenerator(Options{Seed: 41, HazardDensity: 1}, nil)
	g.Reset()
	require.NotEmpty(t, g.Hazards())

	id := g.Hazards()[0].ID
	g.DeactivateHazard(id)
	assert.False(t, g.Hazards()[0].Active)

	// Unknown ids are ignored
	g.DeactivateHazard(999999)
}

func TestResetReplaysSameTrack(t *testing.T) {
	g := newTestGenerator(7)
	segs := slices.Clone(g.Segments())
	hazards := slices.Clone(g.Hazards())
	powerUps := slices.Clone(g.PowerUps())

	// Burn through plenty of RNG state before resetting.
	for i := 0; i < 200; i++ {
		g.appendSegment(g.randCurvature(), g.randPitch())
	}
	g.Reset()

	require.Equal(t, segs, g.Segments())
	require.Equal(t, hazards, g.Hazards())
	require.Equal(t, powerUps, g.PowerUps())
}

func TestSameSeedSameWindow(t *testing.T) {
	a := newTestGenerator(99)
	b := newTestGenerator(99)
	require.Equal(t, a.Segments(), b.Segments())
	require.Equal(t, a.Hazards(), b.Hazards())
	require.Equal(t, a.PowerUps(), b.PowerUps())
}

func TestFastRandRange(t *testing.T) {
	r := NewFastRand(5)
	for i := 0; i < 1000; i++ {
		v := r.Range(-2.5, 2.5)
		require.GreaterOrEqual(t, v, -2.5)
		require.Less(t, v, 2.5)
	}
	assert.Zero(t, NewFastRand(5).Intn(0))
}
