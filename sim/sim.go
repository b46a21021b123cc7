// Package sim is the composition root of the racing core. It owns the
// vehicle, the track generator, the collision engine and the race machine,
// and advances them in a fixed per-tick order.
package sim

import (
	"slices"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/voidrun/slipstream/collision"
	"github.com/voidrun/slipstream/constant"
	"github.com/voidrun/slipstream/input"
	"github.com/voidrun/slipstream/race"
	"github.com/voidrun/slipstream/track"
	"github.com/voidrun/slipstream/vehicle"
)

// Config collects every tunable the simulation accepts. Zero values fall
// back to the defaults in the constant package.
type Config struct {
	Seed               uint64
	TotalLaps          int
	CheckpointInterval int64
	CheckpointsPerLap  int64
	HazardDensity      float64
	PowerUpDensity     float64
}

// Simulation is the complete racing core behind one player.
type Simulation struct {
	logger *zap.Logger
	cfg    Config

	vehicle *vehicle.Vehicle
	gen     *track.Generator
	engine  collision.Engine
	machine *race.Machine
}

// Snapshot is an immutable copy of the observable simulation state, safe to
// hand to a renderer while the simulation keeps ticking.
type Snapshot struct {
	Phase     race.Phase
	Score     int
	Lap       int
	TotalLaps int
	Elapsed   time.Duration
	BestLap   time.Duration
	LapTimes  []time.Duration

	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Forward  mgl64.Vec3
	Speed    float64
	Health   float64

	Boosting      bool
	BoostCooldown bool
	Shielded      bool

	Segments []track.Segment
	Hazards  []track.Hazard
	PowerUps []track.PowerUp
}

// New wires the core together. Nothing runs until Start.
func New(cfg Config, logger *zap.Logger) *Simulation {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Simulation{
		logger: logger,
		cfg:    cfg,
		vehicle: vehicle.New(),
		gen: track.NewGenerator(track.Options{
			Seed:               cfg.Seed,
			HazardDensity:      cfg.HazardDensity,
			PowerUpDensity:     cfg.PowerUpDensity,
			CheckpointInterval: cfg.CheckpointInterval,
		}, logger),
		engine: collision.NewEngine(),
		machine: race.NewMachine(race.Options{
			TotalLaps:          cfg.TotalLaps,
			CheckpointInterval: cfg.CheckpointInterval,
			CheckpointsPerLap:  cfg.CheckpointsPerLap,
		}, logger),
	}
}

// Start builds the initial track window and moves the race to Playing.
func (s *Simulation) Start() {
	s.gen.Reset()
	s.machine.Start()
}

// Restart throws away the run and rebuilds everything from the same seed:
// fresh vehicle, fresh window, race back to Ready.
func (s *Simulation) Restart() {
	s.vehicle = vehicle.New()
	s.gen.Reset()
	s.machine.Restart()
	s.logger.Info("simulation restarted", zap.Uint64("seed", s.cfg.Seed))
}

// Tick advances the simulation by one frame of intent. dt is clamped so a
// stalled frame cannot teleport the countdown timers.
func (s *Simulation) Tick(in input.Intent, dt time.Duration) {
	if dt > constant.TickClamp {
		dt = constant.TickClamp
	}

	if in.Restart {
		s.Restart()
		return
	}
	switch s.machine.Phase() {
	case race.PhaseReady:
		// First control input launches the race.
		if in.Any() {
			s.Start()
		}
		return
	case race.PhasePlaying:
	default:
		return
	}

	prev := s.vehicle.Position
	s.vehicle.Step(in, dt)

	res := s.engine.Check(prev, s.vehicle.Position,
		s.gen.Segments(), s.gen.Hazards(), s.gen.PowerUps())
	s.machine.Apply(s.vehicle, s.gen, res, dt)

	s.gen.ExtendIfNeeded(s.vehicle.Position)
	s.gen.EvictIfNeeded(s.vehicle.Position)

	if len(s.gen.Segments()) == 0 {
		// The window invariant guarantees at least one live segment while
		// playing; an empty window is unrecoverable corruption.
		panic("sim: track window empty during play")
	}
}

// Snapshot copies the observable state. Slices are cloned, never borrowed.
func (s *Simulation) Snapshot() Snapshot {
	v := s.vehicle
	return Snapshot{
		Phase:     s.machine.Phase(),
		Score:     s.machine.Score(),
		Lap:       s.machine.Lap(),
		TotalLaps: s.machine.TotalLaps(),
		Elapsed:   s.machine.Elapsed(),
		BestLap:   s.machine.BestLap(),
		LapTimes:  s.machine.LapTimes(),

		Position: v.Position,
		Velocity: v.Velocity,
		Forward:  v.Forward(),
		Speed:    v.Speed,
		Health:   v.Health,

		Boosting:      v.Boosting,
		BoostCooldown: v.BoostCooldown,
		Shielded:      v.Shielded,

		Segments: slices.Clone(s.gen.Segments()),
		Hazards:  slices.Clone(s.gen.Hazards()),
		PowerUps: slices.Clone(s.gen.PowerUps()),
	}
}
