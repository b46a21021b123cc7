package track

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/voidrun/slipstream/constant"
	"github.com/voidrun/slipstream/geom"
)

// entitySlots is the id stride reserved per segment: hazard ids occupy
// segID*entitySlots+0..2, power-up ids segID*entitySlots+4..5. Bulk eviction
// only needs SegmentID, but the derived ids stay unique and never recycle.
const (
	entitySlots  = 8
	powerUpSlot  = 4
	maxHazards   = 3
	maxPowerUps  = 2
	segmentStart = 1 // first generated segment id; id 0 is never used
)

// Options tunes the generator. Zero values fall back to the defaults in the
// constant package.
type Options struct {
	Seed               uint64
	HazardDensity      float64
	PowerUpDensity     float64
	CheckpointInterval int64
}

// Generator maintains the bounded-ahead, bounded-behind segment window.
type Generator struct {
	seed   uint64
	rng    *FastRand
	logger *zap.Logger

	segments []Segment
	hazards  []Hazard
	powerUps []PowerUp
	nextID   int64

	hazardDensity      float64
	powerUpDensity     float64
	checkpointInterval int64
}

// NewGenerator creates an empty generator; Reset produces the initial run.
func NewGenerator(opts Options, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	g := &Generator{
		seed:               opts.Seed,
		rng:                NewFastRand(opts.Seed),
		logger:             logger,
		hazardDensity:      opts.HazardDensity,
		powerUpDensity:     opts.PowerUpDensity,
		checkpointInterval: opts.CheckpointInterval,
		nextID:             segmentStart,
	}
	if g.hazardDensity <= 0 {
		g.hazardDensity = constant.HazardDensity
	}
	if g.powerUpDensity <= 0 {
		g.powerUpDensity = constant.PowerUpDensity
	}
	if g.checkpointInterval <= 0 {
		g.checkpointInterval = constant.CheckpointInterval
	}
	return g
}

// Reset discards the window and produces the initial run: a curvature-free
// launch zone followed by randomized segments, so a new race always starts
// on a straight. The RNG is reseeded so every reset replays the same track.
func (g *Generator) Reset() {
	g.rng = NewFastRand(g.seed)
	g.segments = g.segments[:0]
	g.hazards = g.hazards[:0]
	g.powerUps = g.powerUps[:0]
	g.nextID = segmentStart

	for i := 0; i < constant.InitialSegments; i++ {
		if i < constant.StraightSegments {
			g.appendSegment(0, 0)
		} else {
			g.appendSegment(g.randCurvature(), g.randPitch())
		}
	}
}

// ExtendIfNeeded generates one segment when the vehicle is close to the end
// of the window.
func (g *Generator) ExtendIfNeeded(pos mgl64.Vec3) {
	if len(g.segments) == 0 {
		return
	}
	last := g.segments[len(g.segments)-1]
	if pos.Sub(last.End).Len() >= constant.ExtendFactor*constant.SegmentLength {
		return
	}
	g.appendSegment(g.randCurvature(), g.randPitch())
}

// EvictIfNeeded drops the first segment, and everything it owns, once the
// vehicle is far past its start.
func (g *Generator) EvictIfNeeded(pos mgl64.Vec3) {
	if len(g.segments) == 0 {
		return
	}
	first := g.segments[0]
	if pos.Sub(first.Start).Len() <= constant.EvictFactor*constant.SegmentLength {
		return
	}

	g.segments = g.segments[1:]
	g.hazards = lo.Filter(g.hazards, func(h Hazard, _ int) bool {
		return h.SegmentID != first.ID
	})
	g.powerUps = lo.Filter(g.powerUps, func(p PowerUp, _ int) bool {
		return p.SegmentID != first.ID
	})

	g.logger.Debug("segment evicted",
		zap.Int64("id", first.ID),
		zap.Int("live", len(g.segments)))
}

// Segments exposes the live window for per-tick read access. Callers must
// not retain or mutate the slice.
func (g *Generator) Segments() []Segment { return g.segments }

// Hazards exposes the live hazards. Same borrowing rules as Segments.
func (g *Generator) Hazards() []Hazard { return g.hazards }

// PowerUps exposes the live power-ups. Same borrowing rules as Segments.
func (g *Generator) PowerUps() []PowerUp { return g.powerUps }

// DeactivateHazard flips the active flag off. Unknown ids are ignored; the
// id may already have been evicted by the time an effect resolves.
func (g *Generator) DeactivateHazard(id int64) {
	for i := range g.hazards {
		if g.hazards[i].ID == id {
			g.hazards[i].Active = false
			return
		}
	}
}

// DeactivatePowerUp flips the active flag off. Unknown ids are ignored.
func (g *Generator) DeactivatePowerUp(id int64) {
	for i := range g.powerUps {
		if g.powerUps[i].ID == id {
			g.powerUps[i].Active = false
			return
		}
	}
}

func (g *Generator) randCurvature() float64 {
	return g.rng.Range(-constant.MaxCurvature, constant.MaxCurvature)
}

func (g *Generator) randPitch() float64 {
	return g.rng.Range(-constant.MaxPitch, constant.MaxPitch)
}

// appendSegment extrudes one segment off the current window head. The new
// start is the exact previous end, keeping the polyline connected.
func (g *Generator) appendSegment(curvature, pitch float64) {
	start := mgl64.Vec3{}
	dir := mgl64.Vec3{0, 0, -1}
	if n := len(g.segments); n > 0 {
		start = g.segments[n-1].End
		dir = g.segments[n-1].Dir
	}
	dir = geom.YawPitch(dir, curvature, pitch)

	id := g.nextID
	g.nextID++

	seg := Segment{
		ID:         id,
		Start:      start,
		End:        start.Add(dir.Mul(constant.SegmentLength)),
		Dir:        dir,
		Width:      constant.SegmentWidth,
		Curvature:  curvature,
		Pitch:      pitch,
		Checkpoint: id%g.checkpointInterval == 0,
	}
	g.segments = append(g.segments, seg)

	g.placeHazards(seg)
	g.placePowerUps(seg)

	g.logger.Debug("segment generated",
		zap.Int64("id", id),
		zap.Bool("checkpoint", seg.Checkpoint),
		zap.Int("live", len(g.segments)))
}

// placeHazards attaches 1-3 hazards at randomized offsets within the
// corridor. The first segments of a run stay clean so a fresh race never
// spawns into an obstacle.
func (g *Generator) placeHazards(seg Segment) {
	if seg.ID <= constant.HazardSkipSegments {
		return
	}
	if g.rng.Float64() >= g.hazardDensity {
		return
	}
	n := 1 + g.rng.Intn(maxHazards)
	for slot := 0; slot < n; slot++ {
		g.hazards = append(g.hazards, Hazard{
			ID:        seg.ID*entitySlots + int64(slot),
			SegmentID: seg.ID,
			Kind:      HazardKind(g.rng.Intn(3)),
			Position:  g.randOffset(seg),
			Size:      g.rng.Range(constant.HazardSizeMin, constant.HazardSizeMax),
			Active:    true,
		})
	}
}

// placePowerUps attaches 1-2 power-ups, gated by the power-up density.
func (g *Generator) placePowerUps(seg Segment) {
	if seg.ID <= constant.PowerUpSkipSegments {
		return
	}
	if g.rng.Float64() >= g.powerUpDensity {
		return
	}
	n := 1 + g.rng.Intn(maxPowerUps)
	for slot := 0; slot < n; slot++ {
		g.powerUps = append(g.powerUps, PowerUp{
			ID:        seg.ID*entitySlots + powerUpSlot + int64(slot),
			SegmentID: seg.ID,
			Kind:      PowerUpKind(g.rng.Intn(2)),
			Position:  g.randOffset(seg),
			Size:      constant.PowerUpSize,
			Active:    true,
		})
	}
}

// randOffset picks a point inside the segment corridor: anywhere along the
// extrusion, laterally and vertically within the margin-reduced half width.
func (g *Generator) randOffset(seg Segment) mgl64.Vec3 {
	half := seg.Width / 2 * constant.PlacementMargin
	along := g.rng.Float64() * constant.SegmentLength
	lateral := g.rng.Range(-half, half)
	vertical := g.rng.Range(-half/2, half/2)

	right := geom.RightOf(seg.Dir)
	return seg.Start.
		Add(seg.Dir.Mul(along)).
		Add(right.Mul(lateral)).
		Add(geom.Up.Mul(vertical))
}
