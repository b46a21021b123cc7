package constant

import "time"

// Health
const (
	// HealthMax is the vehicle health at race start (100%)
	HealthMax = 100.0

	// AsteroidDamage is the health cost of a direct asteroid hit
	AsteroidDamage = 20.0

	// TurbulenceDamage is the health cost of flying through turbulence
	TurbulenceDamage = 10.0

	// AnomalyDamage is the health cost of grazing a gravity anomaly
	AnomalyDamage = 15.0

	// BoundaryDamage is the health cost of scraping the track boundary
	BoundaryDamage = 5.0
)

// Boost Mechanics
const (
	// BoostDuration is how long a boost lasts once activated
	BoostDuration = 3 * time.Second

	// BoostCooldownDuration is the lockout after a boost expires before
	// the next manual activation is accepted
	BoostCooldownDuration = 5 * time.Second
)

// Shield Mechanics
const (
	// ShieldDuration is how long a collected shield absorbs damage
	ShieldDuration = 5 * time.Second
)

// Scoring
const (
	// CheckpointBonus is awarded for each newly accepted checkpoint
	CheckpointBonus = 100

	// LapBonus is awarded on top of CheckpointBonus when the accepted
	// checkpoint completes a lap
	LapBonus = 500
)

// Race layout
const (
	// CheckpointInterval marks every Nth segment as a checkpoint
	CheckpointInterval = 3

	// CheckpointsPerLap is the number of checkpoints that make up one lap.
	// A checkpoint id divisible by CheckpointInterval*CheckpointsPerLap
	// completes a lap.
	CheckpointsPerLap = 4

	// DefaultTotalLaps is the race length when not overridden by config
	DefaultTotalLaps = 3
)
