package particles

import (
	"math"
	"math/rand"

	"github.com/zhangxiao6776/fluid-engine-dev/geometry"
	"github.com/zhangxiao6776/fluid-engine-dev/grid2D"
	"github.com/zhangxiao6776/fluid-engine-dev/grid3D"
	"github.com/zhangxiao6776/fluid-engine-dev/utils"
)

// VolumeParticleEmitter2 seeds particles inside an implicit surface clipped
// to a bounding box. The implicit surface is any ScalarField2 used as an
// SDF: points where it samples <= 0 are inside the volume.
type VolumeParticleEmitter2 struct {
	rng *rand.Rand

	implicitSurface grid2D.ScalarField2
	bounds          geometry.BoundingBox2
	spacing         float64
	initialVel      geometry.Vector2D
	pointsGen       PointGenerator2

	maxNumberOfParticles     int
	numberOfEmittedParticles int

	jitter           float64
	isOneShot        bool
	allowOverlapping bool
}

// NewVolumeParticleEmitter2 uses a triangular lattice by default; the
// pattern can be swapped with SetPointGenerator.
func NewVolumeParticleEmitter2(
	implicitSurface grid2D.ScalarField2,
	bounds geometry.BoundingBox2,
	spacing float64,
	initialVel geometry.Vector2D,
	maxNumParticles int,
	jitter float64,
	isOneShot, allowOverlapping bool,
	seed int64) (e *VolumeParticleEmitter2) {
	e = &VolumeParticleEmitter2{
		rng:                  rand.New(rand.NewSource(seed)),
		implicitSurface:      implicitSurface,
		bounds:               bounds,
		spacing:              spacing,
		initialVel:           initialVel,
		pointsGen:            TrianglePointGenerator2{},
		maxNumberOfParticles: maxNumParticles,
		jitter:               utils.Clamp(jitter, 0, 1),
		isOneShot:            isOneShot,
		allowOverlapping:     allowOverlapping,
	}
	return
}

func (e *VolumeParticleEmitter2) SetPointGenerator(gen PointGenerator2) { e.pointsGen = gen }

func (e *VolumeParticleEmitter2) Jitter() float64     { return e.jitter }
func (e *VolumeParticleEmitter2) SetJitter(j float64) { e.jitter = utils.Clamp(j, 0, 1) }

func (e *VolumeParticleEmitter2) IsOneShot() bool        { return e.isOneShot }
func (e *VolumeParticleEmitter2) SetIsOneShot(v bool)    { e.isOneShot = v }
func (e *VolumeParticleEmitter2) AllowOverlapping() bool { return e.allowOverlapping }
func (e *VolumeParticleEmitter2) SetAllowOverlapping(v bool) {
	e.allowOverlapping = v
}

func (e *VolumeParticleEmitter2) MaxNumberOfParticles() int     { return e.maxNumberOfParticles }
func (e *VolumeParticleEmitter2) SetMaxNumberOfParticles(n int) { e.maxNumberOfParticles = n }

func (e *VolumeParticleEmitter2) Spacing() float64     { return e.spacing }
func (e *VolumeParticleEmitter2) SetSpacing(s float64) { e.spacing = s }

func (e *VolumeParticleEmitter2) InitialVelocity() geometry.Vector2D { return e.initialVel }
func (e *VolumeParticleEmitter2) SetInitialVelocity(v geometry.Vector2D) {
	e.initialVel = v
}

func (e *VolumeParticleEmitter2) Emit(frame Frame, particles *ParticleSystemData2) {
	if e.isOneShot && e.numberOfEmittedParticles > 0 {
		return
	}
	var (
		maxJitterDist = 0.5 * e.jitter * e.spacing
	)
	e.pointsGen.ForEach(e.bounds, e.spacing, func(pt geometry.Vector2D) bool {
		if particles.N() >= e.maxNumberOfParticles ||
			e.numberOfEmittedParticles >= e.maxNumberOfParticles {
			return false
		}
		angle := e.rng.Float64() * 2 * math.Pi
		offset := geometry.Vector2D{X: math.Cos(angle), Y: math.Sin(angle)}.
			Scale(maxJitterDist * e.rng.Float64())
		candidate := pt.Plus(offset)
		if e.implicitSurface.Sample(candidate) > 0 {
			return true
		}
		if !e.allowOverlapping && e.tooClose2(candidate, particles) {
			return true
		}
		particles.Add(candidate, e.initialVel)
		e.numberOfEmittedParticles++
		return true
	})
}

// tooClose2 is a linear scan; populations here are small enough that a
// spatial hash has not been worth it.
func (e *VolumeParticleEmitter2) tooClose2(pt geometry.Vector2D, particles *ParticleSystemData2) bool {
	for _, q := range particles.Positions {
		if pt.Minus(q).Length() < e.spacing {
			return true
		}
	}
	return false
}

// VolumeParticleEmitter3 is the 3D volumetric emitter, seeding on a BCC
// lattice by default.
type VolumeParticleEmitter3 struct {
	rng *rand.Rand

	implicitSurface grid3D.ScalarField3
	bounds          geometry.BoundingBox3
	spacing         float64
	initialVel      geometry.Vector3D
	pointsGen       PointGenerator3

	maxNumberOfParticles     int
	numberOfEmittedParticles int

	jitter           float64
	isOneShot        bool
	allowOverlapping bool
}

func NewVolumeParticleEmitter3(
	implicitSurface grid3D.ScalarField3,
	bounds geometry.BoundingBox3,
	spacing float64,
	initialVel geometry.Vector3D,
	maxNumParticles int,
	jitter float64,
	isOneShot, allowOverlapping bool,
	seed int64) (e *VolumeParticleEmitter3) {
	e = &VolumeParticleEmitter3{
		rng:                  rand.New(rand.NewSource(seed)),
		implicitSurface:      implicitSurface,
		bounds:               bounds,
		spacing:              spacing,
		initialVel:           initialVel,
		pointsGen:            BccLatticePointGenerator3{},
		maxNumberOfParticles: maxNumParticles,
		jitter:               utils.Clamp(jitter, 0, 1),
		isOneShot:            isOneShot,
		allowOverlapping:     allowOverlapping,
	}
	return
}

func (e *VolumeParticleEmitter3) SetPointGenerator(gen PointGenerator3) { e.pointsGen = gen }

func (e *VolumeParticleEmitter3) Jitter() float64     { return e.jitter }
func (e *VolumeParticleEmitter3) SetJitter(j float64) { e.jitter = utils.Clamp(j, 0, 1) }

func (e *VolumeParticleEmitter3) IsOneShot() bool        { return e.isOneShot }
func (e *VolumeParticleEmitter3) SetIsOneShot(v bool)    { e.isOneShot = v }
func (e *VolumeParticleEmitter3) AllowOverlapping() bool { return e.allowOverlapping }
func (e *VolumeParticleEmitter3) SetAllowOverlapping(v bool) {
	e.allowOverlapping = v
}

func (e *VolumeParticleEmitter3) MaxNumberOfParticles() int     { return e.maxNumberOfParticles }
func (e *VolumeParticleEmitter3) SetMaxNumberOfParticles(n int) { e.maxNumberOfParticles = n }

func (e *VolumeParticleEmitter3) Spacing() float64     { return e.spacing }
func (e *VolumeParticleEmitter3) SetSpacing(s float64) { e.spacing = s }

func (e *VolumeParticleEmitter3) InitialVelocity() geometry.Vector3D { return e.initialVel }
func (e *VolumeParticleEmitter3) SetInitialVelocity(v geometry.Vector3D) {
	e.initialVel = v
}

func (e *VolumeParticleEmitter3) Emit(frame Frame, particles *ParticleSystemData3) {
	if e.isOneShot && e.numberOfEmittedParticles > 0 {
		return
	}
	var (
		maxJitterDist = 0.5 * e.jitter * e.spacing
	)
	e.pointsGen.ForEach(e.bounds, e.spacing, func(pt geometry.Vector3D) bool {
		if particles.N() >= e.maxNumberOfParticles ||
			e.numberOfEmittedParticles >= e.maxNumberOfParticles {
			return false
		}
		// Uniform direction via normalized gaussian triple.
		offset := geometry.Vector3D{
			X: e.rng.NormFloat64(),
			Y: e.rng.NormFloat64(),
			Z: e.rng.NormFloat64(),
		}.Normalized().Scale(maxJitterDist * e.rng.Float64())
		candidate := pt.Plus(offset)
		if e.implicitSurface.Sample(candidate) > 0 {
			return true
		}
		if !e.allowOverlapping && e.tooClose3(candidate, particles) {
			return true
		}
		particles.Add(candidate, e.initialVel)
		e.numberOfEmittedParticles++
		return true
	})
}

func (e *VolumeParticleEmitter3) tooClose3(pt geometry.Vector3D, particles *ParticleSystemData3) bool {
	for _, q := range particles.Positions {
		if pt.Minus(q).Length() < e.spacing {
			return true
		}
	}
	return false
}
