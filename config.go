package main

import (
	"fmt"
	"math"
	"time"
)

// World, timing and audio constants shared by both game variants. Distances
// are world units; one tick is one ebiten Update call.
const (
	screenW, screenH = 640, 360
	defaultScale     = 2
	defaultTPS       = 60
	pixelsPerUnit    = 40.0
	viewLeft         = -8.0
	viewTop          = 5.5

	groundY          = -2.0
	groundSegments   = 30
	groundSpacing    = 3.0
	groundStartX     = -10.0
	groundWrap       = 90.0
	playerStartX     = -4.0
	playerRestOffset = 0.9
	recycleX         = -15.0

	spikeLift         = 0.75
	spikeRespawnX     = 40.0
	platformThickness = 0.4
	platformLanding   = 0.6
	platformRespawnX  = 40.0
	platformRespawnLo = 0.5
	platformRespawnHi = 2.0

	spikeHitX      = 0.6
	spikeHitY      = 0.8
	platformCatchX = 1.6
	platformCatchY = 0.9
	barrierHitX    = 0.8
	planeHitRadius = 0.5
	asteroidHitPad = 0.4

	firstPortalX   = 30.0
	portalRespawnX = 60.0
	portalRadius   = 1.2

	openingPatterns = 20
	openingCursorX  = 5.0
	refillPatterns  = 10
	refillCursorX   = 10.0

	hazardCount   = 8
	hazardStartX  = 10.0
	hazardSpacing = 8.0

	jumpBurst       = 5
	transitionBurst = 15
	particleGravity = 0.01
	particleFade    = 0.02

	autopilotJumpLead = 24
	autopilotCruiseY  = 0.5

	pgoRecordDuration        = 15 * time.Second
	audioSampleRate          = 48000
	audioPlayerBufferLatency = 60 * time.Millisecond
	musicGain                = 0.35
)

// hazardKind selects which flying obstacle a variant uses in plane form.
type hazardKind uint8

const (
	hazardBarriers hazardKind = iota
	hazardAsteroids
)

// planeTuning holds the flight model for the plane form.
type planeTuning struct {
	gravity     float64
	thrust      float64
	drag        float64
	maxUp       float64
	maxDown     float64
	floorOffset float64
	ceiling     float64
	bank        float64
}

// hazardTuning describes spawn and respawn ranges for plane obstacles.
type hazardTuning struct {
	kind hazardKind

	respawnX float64

	// barriers
	gapYMin, gapYSpread       float64
	gapSizeMin, gapSizeSpread float64
	respawnGapYMin            float64
	respawnGapYSpread         float64
	respawnGapSizeMin         float64
	respawnGapSizeSpread      float64

	// asteroids
	liftMin, liftSpread float64
	sizeMin, sizeSpread float64
}

// tuning collects everything that differs between the prototype and full
// variants. The simulation code never branches on the variant name.
type tuning struct {
	name string

	baseSpeed     float64
	speedPerScore float64
	scorePerTick  float64

	gravity      float64
	jumpVelocity float64
	maxVelocity  float64
	spinPerTick  float64

	plane  planeTuning
	hazard hazardTuning

	opening []pattern
	refill  []pattern

	crashBurst   int
	burstSpreadX float64
	burstLift    float64
}

const (
	variantPrototype = "prototype"
	variantFull      = "full"
)

var prototypeTuning = tuning{
	name:          variantPrototype,
	baseSpeed:     0.12,
	speedPerScore: 0.00005,
	scorePerTick:  0.2,
	gravity:       0.015,
	jumpVelocity:  0.45,
	maxVelocity:   0.8,
	spinPerTick:   0.15,
	plane: planeTuning{
		gravity:     0.015,
		thrust:      0.015,
		drag:        1,
		maxUp:       0.8,
		maxDown:     0.8,
		floorOffset: playerRestOffset,
		ceiling:     math.Inf(1),
		bank:        0.5,
	},
	hazard: hazardTuning{
		kind:                 hazardBarriers,
		respawnX:             50,
		gapYMin:              -0.2,
		gapYSpread:           1.5,
		gapSizeMin:           3.2,
		gapSizeSpread:        0.8,
		respawnGapYMin:       -0.5,
		respawnGapYSpread:    2,
		respawnGapSizeMin:    2.5,
		respawnGapSizeSpread: 0.5,
	},
	opening: []pattern{
		{name: "spike", weight: 1, stride: 4, spikes: []float64{0}},
		{name: "low platform", weight: 1, stride: 5, platform: true, platformMin: 0.5, platformSpread: 1.5},
		{name: "spike run", weight: 1, stride: 6, spikes: []float64{0, 1.2, 2.4}},
		{name: "raised platform", weight: 1, stride: 6, spikes: []float64{2}, platform: true, platformMin: 2, platformSpread: 1},
	},
	refill: []pattern{
		{name: "spike", weight: 1, stride: 4, spikes: []float64{0}},
		{name: "low platform", weight: 1, stride: 5, platform: true, platformMin: 0.5, platformSpread: 1.5},
		{name: "spike run", weight: 1, stride: 5, spikes: []float64{0, 1.2}},
		{name: "raised platform", weight: 1, stride: 6, spikes: []float64{2}, platform: true, platformMin: 2, platformSpread: 1},
	},
	crashBurst:   20,
	burstSpreadX: 0.1,
	burstLift:    0.2,
}

var fullPatterns = []pattern{
	{name: "spike", weight: 1, stride: 4, spikes: []float64{0}},
	{name: "low platform", weight: 1, stride: 5, platform: true, platformMin: 0.5, platformSpread: 1.5},
	{name: "spike run", weight: 1, stride: 5, spikes: []float64{0, 1.2}},
	{name: "raised platform", weight: 1, stride: 5, platform: true, platformMin: 2, platformSpread: 1},
	{name: "gap", weight: 1, stride: 6},
}

var fullTuning = tuning{
	name:          variantFull,
	baseSpeed:     0.12,
	speedPerScore: 0.00005,
	scorePerTick:  0.2,
	gravity:       0.015,
	jumpVelocity:  0.45,
	maxVelocity:   0.8,
	spinPerTick:   0.15,
	plane: planeTuning{
		gravity:     0.005,
		thrust:      0.018,
		drag:        0.97,
		maxUp:       0.35,
		maxDown:     0.3,
		floorOffset: 0.5,
		ceiling:     4.5,
		bank:        0.8,
	},
	hazard: hazardTuning{
		kind:       hazardAsteroids,
		respawnX:   60,
		liftMin:    1.5,
		liftSpread: 2.5,
		sizeMin:    0.6,
		sizeSpread: 0.4,
	},
	opening:      fullPatterns,
	refill:       fullPatterns,
	crashBurst:   30,
	burstSpreadX: 0.15,
	burstLift:    0.25,
}

// tuningFor returns a copy of the named variant's tuning.
func tuningFor(name string) (tuning, error) {
	switch name {
	case variantPrototype:
		return prototypeTuning, nil
	case variantFull:
		return fullTuning, nil
	}
	return tuning{}, fmt.Errorf("unknown variant %q (want %q or %q)", name, variantPrototype, variantFull)
}

// otherVariant names the variant the toggle key switches to.
func otherVariant(name string) string {
	if name == variantPrototype {
		return variantFull
	}
	return variantPrototype
}
