// Package geom provides the analytic primitives the simulation collides with:
// point-to-segment distance, plane-crossing tests and axis-aligned box overlap.
// All operations are on mgl64 vectors and special-case degenerate inputs
// (zero-length segments, zero normals) instead of propagating NaN.
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Up is the world up axis shared by track generation and vehicle yaw.
var Up = mgl64.Vec3{0, 1, 0}

// ClosestPointOnSegment returns the point on segment [a,b] nearest to p,
// clamped to the segment extent. A zero-length segment returns a.
func ClosestPointOnSegment(p, a, b mgl64.Vec3) mgl64.Vec3 {
	ab := b.Sub(a)
	lenSq := ab.Dot(ab)
	if lenSq == 0 {
		return a
	}
	t := p.Sub(a).Dot(ab) / lenSq
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return a.Add(ab.Mul(t))
}

// DistanceToSegment returns the distance from p to segment [a,b].
func DistanceToSegment(p, a, b mgl64.Vec3) float64 {
	return p.Sub(ClosestPointOnSegment(p, a, b)).Len()
}

// SignedPlaneDistance returns the signed distance from p to the plane through
// anchor with the given normal. Positive on the side the normal points to.
// A zero normal yields zero distance.
func SignedPlaneDistance(p, anchor, normal mgl64.Vec3) float64 {
	if normal.Dot(normal) == 0 {
		return 0
	}
	return p.Sub(anchor).Dot(normal)
}

// LateralOffset returns the distance from p to anchor measured within the
// plane through anchor with the given normal, i.e. how far off-axis p sits.
func LateralOffset(p, anchor, normal mgl64.Vec3) float64 {
	d := p.Sub(anchor)
	along := d.Dot(normal)
	return d.Sub(normal.Mul(along)).Len()
}

// BoxesOverlap reports whether two axis-aligned cubes intersect, given their
// centers and half extents.
func BoxesOverlap(ca mgl64.Vec3, ha float64, cb mgl64.Vec3, hb float64) bool {
	reach := ha + hb
	return math.Abs(ca.X()-cb.X()) <= reach &&
		math.Abs(ca.Y()-cb.Y()) <= reach &&
		math.Abs(ca.Z()-cb.Z()) <= reach
}

// RightOf returns the unit lateral axis for a travel direction, falling back
// to the world X axis when dir is (near) parallel to Up.
func RightOf(dir mgl64.Vec3) mgl64.Vec3 {
	right := dir.Cross(Up)
	if right.Dot(right) < 1e-12 {
		return mgl64.Vec3{1, 0, 0}
	}
	return right.Normalize()
}

// YawPitch rotates dir by yaw about the world up axis, then by pitch about
// the resulting right axis, and renormalizes. Directions parallel to Up fall
// back to the world X axis for the pitch rotation.
func YawPitch(dir mgl64.Vec3, yaw, pitch float64) mgl64.Vec3 {
	if dir.Dot(dir) == 0 {
		return dir
	}
	out := mgl64.QuatRotate(yaw, Up).Rotate(dir)
	out = mgl64.QuatRotate(pitch, RightOf(out)).Rotate(out)
	return out.Normalize()
}
