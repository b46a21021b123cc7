// Package collision tests the vehicle against the live track window each
// tick. It only borrows the collections and never mutates them; resolution
// is the race machine's job.
package collision

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/voidrun/slipstream/constant"
	"github.com/voidrun/slipstream/geom"
	"github.com/voidrun/slipstream/track"
)

// Result is the structured outcome of one tick of collision testing.
// Multiple hazard/power-up hits are all reported, in collection order; at
// most one checkpoint crossing is reported per tick.
type Result struct {
	Boundary   bool
	Hazards    []track.Hazard
	PowerUps   []track.PowerUp
	Checkpoint int64 // crossed checkpoint segment id, 0 = none
}

// Engine holds the vehicle collision volume parameters.
type Engine struct {
	VehicleHalf float64
	Buffer      float64
}

// NewEngine returns an engine with the standard vehicle bounding box.
func NewEngine() Engine {
	return Engine{
		VehicleHalf: constant.VehicleHalf,
		Buffer:      constant.BoundaryBuffer,
	}
}

// Check runs the boundary, hazard, power-up and checkpoint tests for the
// movement from prev to pos.
func (e Engine) Check(prev, pos mgl64.Vec3, segments []track.Segment,
	hazards []track.Hazard, powerUps []track.PowerUp,
) Result {
	var res Result
	if len(segments) == 0 {
		return res
	}

	res.Boundary = e.checkBoundary(pos, segments)

	for _, h := range hazards {
		if !h.Active {
			continue
		}
		if geom.BoxesOverlap(pos, e.VehicleHalf, h.Position, h.Size/2) {
			res.Hazards = append(res.Hazards, h)
		}
	}
	for _, p := range powerUps {
		if !p.Active {
			continue
		}
		if geom.BoxesOverlap(pos, e.VehicleHalf, p.Position, p.Size/2) {
			res.PowerUps = append(res.PowerUps, p)
		}
	}

	res.Checkpoint = e.checkCheckpoints(prev, pos, segments)
	return res
}

// checkBoundary finds the closest point on the window polyline and reports
// a collision when the vehicle sits outside the corridor of the segment
// that owns it. The buffer absorbs bounding-box corner cases at the edge.
func (e Engine) checkBoundary(pos mgl64.Vec3, segments []track.Segment) bool {
	minDist := math.Inf(1)
	var closest track.Segment
	for _, s := range segments {
		if d := geom.DistanceToSegment(pos, s.Start, s.End); d < minDist {
			minDist = d
			closest = s
		}
	}
	return minDist > closest.Width/2-e.VehicleHalf-e.Buffer
}

// checkCheckpoints detects a plane crossing between the previous and current
// position. The crossing must happen inside the track corridor, so a pass
// far off to the side of the plane anchor does not count. Checkpoints are
// spaced far enough apart that at most one plane can be crossed per
// (clamped) tick; the first match in segment order wins.
func (e Engine) checkCheckpoints(prev, pos mgl64.Vec3, segments []track.Segment) int64 {
	for _, s := range segments {
		if !s.Checkpoint {
			continue
		}
		dPrev := geom.SignedPlaneDistance(prev, s.End, s.Dir)
		dCurr := geom.SignedPlaneDistance(pos, s.End, s.Dir)
		if (dPrev < 0) == (dCurr < 0) {
			continue
		}
		if geom.LateralOffset(pos, s.End, s.Dir) > s.Width/2 {
			continue
		}
		return s.ID
	}
	return 0
}
