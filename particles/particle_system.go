package particles

import (
	"github.com/zhangxiao6776/fluid-engine-dev/geometry"
)

// ParticleSystemData2 is an ordered, growable particle population. Emitters
// append to it; nothing here ever removes.
type ParticleSystemData2 struct {
	Positions  []geometry.Vector2D
	Velocities []geometry.Vector2D
}

func NewParticleSystemData2() *ParticleSystemData2 {
	return &ParticleSystemData2{}
}

func (p *ParticleSystemData2) N() int { return len(p.Positions) }

func (p *ParticleSystemData2) Add(pos, vel geometry.Vector2D) {
	p.Positions = append(p.Positions, pos)
	p.Velocities = append(p.Velocities, vel)
}

func (p *ParticleSystemData2) AddAll(pos, vel []geometry.Vector2D) {
	p.Positions = append(p.Positions, pos...)
	p.Velocities = append(p.Velocities, vel...)
}

// ParticleSystemData3 is the 3D particle population.
type ParticleSystemData3 struct {
	Positions  []geometry.Vector3D
	Velocities []geometry.Vector3D
}

func NewParticleSystemData3() *ParticleSystemData3 {
	return &ParticleSystemData3{}
}

func (p *ParticleSystemData3) N() int { return len(p.Positions) }

func (p *ParticleSystemData3) Add(pos, vel geometry.Vector3D) {
	p.Positions = append(p.Positions, pos)
	p.Velocities = append(p.Velocities, vel)
}

func (p *ParticleSystemData3) AddAll(pos, vel []geometry.Vector3D) {
	p.Positions = append(p.Positions, pos...)
	p.Velocities = append(p.Velocities, vel...)
}
