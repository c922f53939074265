package particles

import (
	"math/rand"

	"github.com/zhangxiao6776/fluid-engine-dev/geometry"
	"github.com/zhangxiao6776/fluid-engine-dev/utils"
)

// PointParticleEmitter2 emits particles from a single point into a cone
// around a direction. Emission is rate-limited: by the end of frame t the
// emitter has produced maxNumberOfNewParticlesPerSecond particles per
// elapsed second, capped at maxNumberOfParticles in total.
type PointParticleEmitter2 struct {
	rng *rand.Rand

	origin         geometry.Vector2D
	direction      geometry.Vector2D
	speed          float64
	spreadAngleRad float64

	maxNumberOfNewParticlesPerSecond int
	maxNumberOfParticles             int

	numberOfEmittedParticles int
	firstFrameTimeInSeconds  float64
}

func NewPointParticleEmitter2(
	origin, direction geometry.Vector2D,
	speed, spreadAngleDeg float64,
	maxNumNewParticlesPerSec, maxNumParticles int,
	seed int64) (e *PointParticleEmitter2) {
	e = &PointParticleEmitter2{
		rng:                              rand.New(rand.NewSource(seed)),
		origin:                           origin,
		direction:                        direction.Normalized(),
		speed:                            speed,
		spreadAngleRad:                   utils.DegToRad(spreadAngleDeg),
		maxNumberOfNewParticlesPerSecond: maxNumNewParticlesPerSec,
		maxNumberOfParticles:             maxNumParticles,
	}
	return
}

func (e *PointParticleEmitter2) MaxNumberOfNewParticlesPerSecond() int {
	return e.maxNumberOfNewParticlesPerSecond
}

func (e *PointParticleEmitter2) SetMaxNumberOfNewParticlesPerSecond(n int) {
	e.maxNumberOfNewParticlesPerSecond = n
}

func (e *PointParticleEmitter2) MaxNumberOfParticles() int {
	return e.maxNumberOfParticles
}

func (e *PointParticleEmitter2) SetMaxNumberOfParticles(n int) {
	e.maxNumberOfParticles = n
}

func (e *PointParticleEmitter2) Emit(frame Frame, particles *ParticleSystemData2) {
	if e.numberOfEmittedParticles == 0 {
		e.firstFrameTimeInSeconds = frame.TimeInSeconds()
	}
	var (
		elapsed = frame.TimeInSeconds() - e.firstFrameTimeInSeconds
		target  = int(float64(e.maxNumberOfNewParticlesPerSecond) * (elapsed + frame.TimeInterval))
	)
	if target > e.maxNumberOfParticles {
		target = e.maxNumberOfParticles
	}
	newCount := target - e.numberOfEmittedParticles
	if newCount <= 0 {
		return
	}
	for n := 0; n < newCount; n++ {
		angle := (e.rng.Float64() - 0.5) * e.spreadAngleRad
		dir := e.direction.Rotated(angle)
		particles.Add(e.origin, dir.Scale(e.speed))
	}
	e.numberOfEmittedParticles += newCount
}
