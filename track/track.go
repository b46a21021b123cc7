// Package track owns the streamed course: an ordered, windowed collection of
// segments with the hazards and power-ups placed on them. Segments are
// generated ahead of the vehicle and evicted behind it; other packages only
// borrow read access per tick.
package track

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Segment is one extruded piece of the course polyline. Immutable after
// creation.
type Segment struct {
	ID         int64
	Start      mgl64.Vec3
	End        mgl64.Vec3
	Dir        mgl64.Vec3 // unit direction from Start to End
	Width      float64
	Curvature  float64 // yaw applied relative to the previous segment
	Pitch      float64
	Checkpoint bool
}

// HazardKind is the closed set of hazard variants.
type HazardKind uint8

const (
	HazardAsteroid HazardKind = iota
	HazardTurbulence
	HazardGravityAnomaly
)

func (k HazardKind) String() string {
	switch k {
	case HazardAsteroid:
		return "asteroid"
	case HazardTurbulence:
		return "turbulence"
	case HazardGravityAnomaly:
		return "gravity-anomaly"
	default:
		return "unknown"
	}
}

// Hazard is an obstacle placed on a segment. Deactivated on collision,
// removed when the owning segment is evicted.
type Hazard struct {
	ID        int64
	SegmentID int64
	Kind      HazardKind
	Position  mgl64.Vec3
	Size      float64 // cube side
	Active    bool
}

// PowerUpKind is the closed set of power-up variants.
type PowerUpKind uint8

const (
	PowerUpBoost PowerUpKind = iota
	PowerUpShield
)

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpBoost:
		return "boost"
	case PowerUpShield:
		return "shield"
	default:
		return "unknown"
	}
}

// PowerUp is a collectible placed on a segment. Same id/eviction lifecycle
// as Hazard, deactivated once consumed.
type PowerUp struct {
	ID        int64
	SegmentID int64
	Kind      PowerUpKind
	Position  mgl64.Vec3
	Size      float64
	Active    bool
}
