package particles

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zhangxiao6776/fluid-engine-dev/geometry"
	"github.com/zhangxiao6776/fluid-engine-dev/utils"
)

func TestPointParticleEmitter2Constructor(t *testing.T) {
	e := NewPointParticleEmitter2(
		geometry.Vector2D{X: 1.0, Y: 2.0},
		geometry.Vector2D{X: 0.5, Y: 1.0}.Normalized(),
		3.0,
		15.0,
		4,
		18,
		18)
	assert.Equal(t, 4, e.MaxNumberOfNewParticlesPerSecond())
	assert.Equal(t, 18, e.MaxNumberOfParticles())
}

func TestPointParticleEmitter2Emit(t *testing.T) {
	var (
		dir = geometry.Vector2D{X: 0.5, Y: 1.0}.Normalized()
		e   = NewPointParticleEmitter2(
			geometry.Vector2D{X: 1.0, Y: 2.0},
			dir,
			3.0,  // speed
			15.0, // spread angle in degrees
			4,    // max new particles per second
			18,   // max total
			18)
		ps    = NewParticleSystemData2()
		frame = NewFrame(1, 1.0)
	)
	// Four particles per one-second frame until the cap of 18
	e.Emit(frame, ps)
	assert.Equal(t, 4, ps.N())

	frame.Advance()
	e.Emit(frame, ps)
	assert.Equal(t, 8, ps.N())

	frame.Advance()
	e.Emit(frame, ps)
	assert.Equal(t, 12, ps.N())

	frame.Advance()
	e.Emit(frame, ps)
	assert.Equal(t, 16, ps.N())

	frame.Advance()
	e.Emit(frame, ps)
	assert.Equal(t, 18, ps.N())

	frame.Advance()
	e.Emit(frame, ps)
	assert.Equal(t, 18, ps.N())

	for n := 0; n < ps.N(); n++ {
		assert.Equal(t, 1.0, ps.Positions[n].X)
		assert.Equal(t, 2.0, ps.Positions[n].Y)
		// Emitted direction stays within the spread cone
		assert.LessOrEqual(t,
			math.Cos(utils.DegToRad(15.0)),
			ps.Velocities[n].Normalized().Dot(dir))
		assert.InDelta(t, 3.0, ps.Velocities[n].Length(), 1.e-12)
	}
}
