package constant

import "time"

// Vehicle integration
const (
	// ThrustAccel is the per-tick acceleration magnitude added along the
	// orientation forward vector while thrust input is held
	ThrustAccel = 0.08

	// DragFactor multiplies velocity every tick (exponential decay)
	DragFactor = 0.98

	// MaxSpeed is the velocity magnitude ceiling in units per tick
	MaxSpeed = 2.5

	// BoostMultiplier scales both ThrustAccel and MaxSpeed while boosting
	BoostMultiplier = 2.0

	// YawRate is the per-tick yaw increment in radians
	YawRate = 0.035

	// PitchRate is the per-tick pitch increment in radians
	PitchRate = 0.025
)

// Tick bounds
const (
	// TickClamp is the maximum tick duration accepted by the simulation.
	// Frame hitches beyond this are truncated to bound integration error.
	TickClamp = 100 * time.Millisecond
)

// Collision response
const (
	// ReboundFactor dampens the reversed velocity after a boundary hit
	ReboundFactor = 0.5

	// TurbulenceJolt is the velocity impulse pushing the vehicle away from
	// a turbulence pocket on contact
	TurbulenceJolt = 0.6

	// AnomalyPull is the velocity impulse dragging the vehicle toward a
	// gravity anomaly on contact
	AnomalyPull = 0.8
)
