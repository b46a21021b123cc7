// Package vehicle integrates control intent into the vehicle's kinematic
// state. Velocity is a per-tick displacement at the nominal frame rate; the
// tick duration only drives the boost/shield countdown timers and is clamped
// upstream by the simulation.
package vehicle

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/voidrun/slipstream/constant"
	"github.com/voidrun/slipstream/input"
)

// forwardAxis is the untransformed nose direction. A fresh vehicle with an
// identity orientation faces -Z.
var forwardAxis = mgl64.Vec3{0, 0, -1}

// Vehicle is the full mutable physics state of the player craft.
type Vehicle struct {
	Position    mgl64.Vec3
	Orientation mgl64.Quat
	Velocity    mgl64.Vec3
	Speed       float64
	Health      float64

	Boosting          bool
	BoostRemaining    time.Duration
	BoostCooldown     bool
	CooldownRemaining time.Duration

	Shielded        bool
	ShieldRemaining time.Duration
}

// New returns a vehicle at the fixed starting pose with full health.
func New() *Vehicle {
	return &Vehicle{
		Orientation: mgl64.QuatIdent(),
		Health:      constant.HealthMax,
	}
}

// Forward returns the unit nose direction derived from the orientation.
func (v *Vehicle) Forward() mgl64.Vec3 {
	return v.Orientation.Rotate(forwardAxis)
}

// Step advances the vehicle by one tick of control intent.
func (v *Vehicle) Step(in input.Intent, dt time.Duration) {
	v.decayTimers(dt)

	if in.Boost && !v.Boosting && !v.BoostCooldown {
		v.Boosting = true
		v.BoostRemaining = constant.BoostDuration
	}

	var yaw, pitch float64
	if in.YawLeft {
		yaw += constant.YawRate
	}
	if in.YawRight {
		yaw -= constant.YawRate
	}
	if in.PitchUp {
		pitch += constant.PitchRate
	}
	if in.PitchDown {
		pitch -= constant.PitchRate
	}
	if yaw != 0 {
		v.Orientation = mgl64.QuatRotate(yaw, mgl64.Vec3{0, 1, 0}).Mul(v.Orientation)
	}
	if pitch != 0 {
		v.Orientation = v.Orientation.Mul(mgl64.QuatRotate(pitch, mgl64.Vec3{1, 0, 0}))
	}
	if yaw != 0 || pitch != 0 {
		v.Orientation = v.Orientation.Normalize()
	}

	mult := 1.0
	if v.Boosting {
		mult = constant.BoostMultiplier
	}

	var thrust float64
	if in.Forward {
		thrust += 1
	}
	if in.Backward {
		thrust -= 1
	}
	if thrust != 0 {
		v.Velocity = v.Velocity.Add(v.Forward().Mul(constant.ThrustAccel * mult * thrust))
	}

	v.Velocity = v.Velocity.Mul(constant.DragFactor)

	maxSpeed := constant.MaxSpeed * mult
	if speed := v.Velocity.Len(); speed > maxSpeed {
		v.Velocity = v.Velocity.Mul(maxSpeed / speed)
	}

	v.Position = v.Position.Add(v.Velocity)
	v.Speed = v.Velocity.Len()
}

// decayTimers runs the per-tick countdowns. Cooldown starts only when an
// active boost runs out, so the two flags are never set together.
func (v *Vehicle) decayTimers(dt time.Duration) {
	if v.Boosting {
		v.BoostRemaining -= dt
		if v.BoostRemaining <= 0 {
			v.BoostRemaining = 0
			v.Boosting = false
			v.BoostCooldown = true
			v.CooldownRemaining = constant.BoostCooldownDuration
		}
	} else if v.BoostCooldown {
		v.CooldownRemaining -= dt
		if v.CooldownRemaining <= 0 {
			v.CooldownRemaining = 0
			v.BoostCooldown = false
		}
	}

	if v.Shielded {
		v.ShieldRemaining -= dt
		if v.ShieldRemaining <= 0 {
			v.ShieldRemaining = 0
			v.Shielded = false
		}
	}
}

// ApplyDamage subtracts amount from health, clamping at zero, and reports
// whether health is depleted.
func (v *Vehicle) ApplyDamage(amount float64) bool {
	v.Health -= amount
	if v.Health < 0 {
		v.Health = 0
	}
	return v.Health <= 0
}

// Rebound reverses and dampens the velocity after a boundary hit.
func (v *Vehicle) Rebound() {
	v.Velocity = v.Velocity.Mul(-constant.ReboundFactor)
	v.Speed = v.Velocity.Len()
}

// ApplyImpulse adds a velocity impulse along dir. A zero dir is a no-op.
func (v *Vehicle) ApplyImpulse(dir mgl64.Vec3, magnitude float64) {
	if dir.Dot(dir) == 0 {
		return
	}
	v.Velocity = v.Velocity.Add(dir.Normalize().Mul(magnitude))
	v.Speed = v.Velocity.Len()
}

// GrantBoost activates a full boost immediately, bypassing any cooldown.
// Used by boost power-ups.
func (v *Vehicle) GrantBoost() {
	v.Boosting = true
	v.BoostRemaining = constant.BoostDuration
	v.BoostCooldown = false
	v.CooldownRemaining = 0
}

// GrantShield raises the shield for the full fixed duration.
func (v *Vehicle) GrantShield() {
	v.Shielded = true
	v.ShieldRemaining = constant.ShieldDuration
}
