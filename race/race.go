// Package race drives the progression state machine: phase, score, lap
// counting, checkpoint ordering and lap timing. It consumes collision
// results and resolves their effects on the vehicle and the track window.
package race

import (
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/voidrun/slipstream/collision"
	"github.com/voidrun/slipstream/constant"
	"github.com/voidrun/slipstream/track"
	"github.com/voidrun/slipstream/vehicle"
)

// Phase is the race lifecycle state. Transitions are one-directional except
// the explicit start/restart edges.
type Phase uint8

const (
	PhaseReady Phase = iota
	PhasePlaying
	PhaseGameOver
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game-over"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Options tunes the race layout. Zero values fall back to the defaults in
// the constant package.
type Options struct {
	TotalLaps          int
	CheckpointInterval int64
	CheckpointsPerLap  int64
}

// Machine is the race progression state machine.
type Machine struct {
	logger *zap.Logger

	phase          Phase
	elapsed        time.Duration
	score          int
	lap            int
	lapTimes       []time.Duration
	bestLap        time.Duration // 0 = no lap completed yet
	lastCheckpoint int64

	totalLaps          int
	checkpointInterval int64
	checkpointsPerLap  int64
}

// NewMachine creates a machine in Ready.
func NewMachine(opts Options, logger *zap.Logger) *Machine {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Machine{
		logger:             logger,
		totalLaps:          opts.TotalLaps,
		checkpointInterval: opts.CheckpointInterval,
		checkpointsPerLap:  opts.CheckpointsPerLap,
	}
	if m.totalLaps <= 0 {
		m.totalLaps = constant.DefaultTotalLaps
	}
	if m.checkpointInterval <= 0 {
		m.checkpointInterval = constant.CheckpointInterval
	}
	if m.checkpointsPerLap <= 0 {
		m.checkpointsPerLap = constant.CheckpointsPerLap
	}
	return m
}

func (m *Machine) Phase() Phase              { return m.phase }
func (m *Machine) Elapsed() time.Duration    { return m.elapsed }
func (m *Machine) Score() int                { return m.score }
func (m *Machine) Lap() int                  { return m.lap }
func (m *Machine) BestLap() time.Duration    { return m.bestLap }
func (m *Machine) LastCheckpoint() int64     { return m.lastCheckpoint }
func (m *Machine) TotalLaps() int            { return m.totalLaps }
func (m *Machine) LapTimes() []time.Duration { return slices.Clone(m.lapTimes) }

// Start moves Ready to Playing on lap 1. Any other phase is a no-op.
func (m *Machine) Start() {
	if m.phase != PhaseReady {
		return
	}
	m.phase = PhasePlaying
	m.lap = 1
	m.logger.Info("race started", zap.Int("total_laps", m.totalLaps))
}

// Restart resets every race field and returns to Ready.
func (m *Machine) Restart() {
	m.phase = PhaseReady
	m.elapsed = 0
	m.score = 0
	m.lap = 0
	m.lapTimes = m.lapTimes[:0]
	m.bestLap = 0
	m.lastCheckpoint = 0
}

// Apply consumes one tick's collision result. Outside Playing everything is
// a no-op; there is nothing to recover from, only game-semantic outcomes.
func (m *Machine) Apply(v *vehicle.Vehicle, gen *track.Generator,
	res collision.Result, dt time.Duration,
) {
	if m.phase != PhasePlaying {
		return
	}
	m.elapsed += dt

	// Power-ups resolve before hazards so a shield collected this tick
	// covers damage from the same tick.
	for _, p := range res.PowerUps {
		gen.DeactivatePowerUp(p.ID)
		switch p.Kind {
		case track.PowerUpBoost:
			v.GrantBoost()
		case track.PowerUpShield:
			v.GrantShield()
		}
		m.logger.Info("power-up collected", zap.Stringer("kind", p.Kind))
	}

	for _, h := range res.Hazards {
		gen.DeactivateHazard(h.ID)
		if v.Shielded {
			continue
		}
		switch h.Kind {
		case track.HazardAsteroid:
			m.damage(v, constant.AsteroidDamage)
		case track.HazardTurbulence:
			v.ApplyImpulse(v.Position.Sub(h.Position), constant.TurbulenceJolt)
			m.damage(v, constant.TurbulenceDamage)
		case track.HazardGravityAnomaly:
			v.ApplyImpulse(h.Position.Sub(v.Position), constant.AnomalyPull)
			m.damage(v, constant.AnomalyDamage)
		}
		if m.phase != PhasePlaying {
			// Terminal damage halts further hazard processing.
			return
		}
	}

	if res.Boundary && !v.Shielded {
		v.Rebound()
		m.damage(v, constant.BoundaryDamage)
		if m.phase != PhasePlaying {
			return
		}
	}

	if res.Checkpoint > m.lastCheckpoint {
		m.acceptCheckpoint(res.Checkpoint)
	}
}

// damage applies health loss and flips to GameOver on depletion.
func (m *Machine) damage(v *vehicle.Vehicle, amount float64) {
	if v.ApplyDamage(amount) {
		m.phase = PhaseGameOver
		m.logger.Info("vehicle destroyed",
			zap.Int("score", m.score),
			zap.Int("lap", m.lap))
	}
}

// acceptCheckpoint awards the checkpoint bonus and handles lap completion
// when the id closes a full circuit.
func (m *Machine) acceptCheckpoint(id int64) {
	m.lastCheckpoint = id
	m.score += constant.CheckpointBonus

	if id%(m.checkpointInterval*m.checkpointsPerLap) != 0 {
		return
	}

	m.lapTimes = append(m.lapTimes, m.elapsed)
	if m.bestLap == 0 || m.elapsed < m.bestLap {
		m.bestLap = m.elapsed
	}
	m.score += constant.LapBonus
	m.lap++
	m.elapsed = 0

	m.logger.Info("lap completed",
		zap.Int("lap", m.lap-1),
		zap.Duration("time", m.lapTimes[len(m.lapTimes)-1]),
		zap.Duration("best", m.bestLap))

	if m.lap > m.totalLaps {
		m.phase = PhaseFinished
		m.logger.Info("race finished", zap.Int("score", m.score))
	}
}
