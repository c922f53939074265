package particles

// ParticleEmitter2 appends new particles to the given particle system for
// the given animation frame. Emitters never remove particles.
type ParticleEmitter2 interface {
	Emit(frame Frame, particles *ParticleSystemData2)
}

// ParticleEmitter3 is the 3D emitter contract.
type ParticleEmitter3 interface {
	Emit(frame Frame, particles *ParticleSystemData3)
}
