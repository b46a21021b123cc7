package geom

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClosestPointOnSegment(t *testing.T) {
	a := mgl64.Vec3{0, 0, 0}
	b := mgl64.Vec3{10, 0, 0}

	// Perpendicular foot inside the segment
	got := ClosestPointOnSegment(mgl64.Vec3{4, 3, 0}, a, b)
	assert.InDelta(t, 4.0, got.X(), 1e-9)
	assert.InDelta(t, 0.0, got.Y(), 1e-9)

	// Clamped to endpoints
	assert.Equal(t, a, ClosestPointOnSegment(mgl64.Vec3{-5, 2, 0}, a, b))
	assert.Equal(t, b, ClosestPointOnSegment(mgl64.Vec3{25, -1, 0}, a, b))
}

func TestClosestPointOnSegmentDegenerate(t *testing.T) {
	a := mgl64.Vec3{3, 3, 3}
	got := ClosestPointOnSegment(mgl64.Vec3{9, 9, 9}, a, a)
	assert.Equal(t, a, got, "zero-length segment returns its start")
}

func TestDistanceToSegment(t *testing.T) {
	a := mgl64.Vec3{0, 0, 0}
	b := mgl64.Vec3{0, 0, -10}

	assert.InDelta(t, 3.0, DistanceToSegment(mgl64.Vec3{3, 0, -5}, a, b), 1e-9)
	assert.InDelta(t, 5.0, DistanceToSegment(mgl64.Vec3{3, 4, -2}, a, b), 1e-9)
	assert.InDelta(t, 0.0, DistanceToSegment(a, a, b), 1e-9)
}

func TestSignedPlaneDistance(t *testing.T) {
	anchor := mgl64.Vec3{0, 0, -60}
	normal := mgl64.Vec3{0, 0, -1}

	before := SignedPlaneDistance(mgl64.Vec3{0, 0, -50}, anchor, normal)
	after := SignedPlaneDistance(mgl64.Vec3{0, 0, -70}, anchor, normal)
	require.Negative(t, before)
	require.Positive(t, after)

	assert.Zero(t, SignedPlaneDistance(mgl64.Vec3{1, 2, 3}, anchor, mgl64.Vec3{}))
}

func TestLateralOffset(t *testing.T) {
	anchor := mgl64.Vec3{0, 0, -60}
	normal := mgl64.Vec3{0, 0, -1}

	// Point dead ahead of the anchor has no lateral offset
	assert.InDelta(t, 0.0, LateralOffset(mgl64.Vec3{0, 0, -80}, anchor, normal), 1e-9)

	// Offset measured within the plane ignores the along-normal component
	assert.InDelta(t, 7.0, LateralOffset(mgl64.Vec3{7, 0, -90}, anchor, normal), 1e-9)
}

func TestBoxesOverlap(t *testing.T) {
	c := mgl64.Vec3{0, 0, 0}

	assert.True(t, BoxesOverlap(c, 1.5, mgl64.Vec3{2, 0, 0}, 1.0))
	assert.True(t, BoxesOverlap(c, 1.5, mgl64.Vec3{2.5, 0, 0}, 1.0), "touching counts")
	assert.False(t, BoxesOverlap(c, 1.5, mgl64.Vec3{2.6, 0, 0}, 1.0))
	assert.False(t, BoxesOverlap(c, 1.5, mgl64.Vec3{0, 5, 0}, 1.0))
}

func TestYawPitch(t *testing.T) {
	dir := mgl64.Vec3{0, 0, -1}

	// Identity rotation preserves the direction
	same := YawPitch(dir, 0, 0)
	assert.InDelta(t, 0.0, same.Sub(dir).Len(), 1e-12)

	// Result stays unit length under arbitrary rotation
	out := YawPitch(dir, 0.25, -0.12)
	assert.InDelta(t, 1.0, out.Len(), 1e-9)

	// Zero vector passes through untouched
	assert.Equal(t, mgl64.Vec3{}, YawPitch(mgl64.Vec3{}, 0.3, 0.1))
}
