package constant

// Segment geometry
const (
	// SegmentLength is the extrusion distance of every generated segment
	SegmentLength = 60.0

	// SegmentWidth is the full corridor width of every segment
	SegmentWidth = 30.0

	// MaxCurvature bounds the random per-segment yaw rotation in radians
	MaxCurvature = 0.25

	// MaxPitch bounds the random per-segment pitch rotation in radians
	MaxPitch = 0.12
)

// Streaming window
const (
	// ExtendFactor triggers generation when the vehicle is within
	// ExtendFactor*SegmentLength of the last segment end
	ExtendFactor = 2.0

	// EvictFactor drops the first segment when the vehicle is more than
	// EvictFactor*SegmentLength past its start
	EvictFactor = 3.0

	// InitialSegments is the length of the pre-generated run at race start
	InitialSegments = 8

	// StraightSegments is the curvature-free launch zone at the head of
	// every initial run
	StraightSegments = 2
)

// Hazard and power-up placement
const (
	// HazardDensity is the default probability a segment carries hazards
	HazardDensity = 0.7

	// PowerUpDensity is the default probability a segment carries power-ups
	PowerUpDensity = 0.3

	// HazardSkipSegments suppresses hazards on the first N segment ids
	HazardSkipSegments = 2

	// PowerUpSkipSegments suppresses power-ups on the first N segment ids
	PowerUpSkipSegments = 1

	// HazardSizeMin and HazardSizeMax bound the random hazard cube side
	HazardSizeMin = 2.0
	HazardSizeMax = 5.0

	// PowerUpSize is the fixed power-up cube side
	PowerUpSize = 2.5

	// PlacementMargin keeps random offsets inside the corridor, as a
	// fraction of the half-width
	PlacementMargin = 0.8
)

// Vehicle collision volume
const (
	// VehicleHalf is the vehicle bounding-box half extent
	VehicleHalf = 1.5

	// BoundaryBuffer widens the boundary test to absorb bounding-box
	// corner cases near the corridor edge
	BoundaryBuffer = 0.5
)
