// Package config holds the process-wide settings populated by the command
// line layer before the simulation starts.
package config

import (
	"github.com/voidrun/slipstream/constant"
	"github.com/voidrun/slipstream/sim"
)

var (
	// Seed drives the track generator; 0 picks a time-based seed at startup.
	Seed uint64

	// TotalLaps is the race length.
	TotalLaps int = constant.DefaultTotalLaps

	// CheckpointInterval marks every Nth segment as a checkpoint.
	CheckpointInterval int64 = constant.CheckpointInterval

	// CheckpointsPerLap is the number of checkpoints closing one lap.
	CheckpointsPerLap int64 = constant.CheckpointsPerLap

	// HazardDensity is the probability a segment carries hazards.
	HazardDensity float64 = constant.HazardDensity

	// PowerUpDensity is the probability a segment carries power-ups.
	PowerUpDensity float64 = constant.PowerUpDensity

	// FrameRate is the tick frequency of the render loop in Hz.
	FrameRate int = 60

	// LogLevel is the zap level for the file logger.
	LogLevel = "info"

	// LogFile receives log output; the terminal renderer owns stdout.
	LogFile = "slipstream.log"
)

// SimConfig assembles the simulation configuration from the current settings.
func SimConfig() sim.Config {
	return sim.Config{
		Seed:               Seed,
		TotalLaps:          TotalLaps,
		CheckpointInterval: CheckpointInterval,
		CheckpointsPerLap:  CheckpointsPerLap,
		HazardDensity:      HazardDensity,
		PowerUpDensity:     PowerUpDensity,
	}
}
