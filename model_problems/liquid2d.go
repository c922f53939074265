package model_problems

import (
	"fmt"
	"math"

	"github.com/zhangxiao6776/fluid-engine-dev/InputParameters"
	"github.com/zhangxiao6776/fluid-engine-dev/geometry"
	"github.com/zhangxiao6776/fluid-engine-dev/grid2D"
	"github.com/zhangxiao6776/fluid-engine-dev/particles"
	"github.com/zhangxiao6776/fluid-engine-dev/types"
	"github.com/zhangxiao6776/fluid-engine-dev/utils"
)

// levelSdf2 is a flat free surface: fluid below Level, atmosphere above.
type levelSdf2 struct {
	Level float64
}

func (f levelSdf2) Sample(x geometry.Vector2D) float64 { return x.Y - f.Level }

// Liquid2D drives the projection pipeline on a closed tank partially filled
// with liquid: gravity, boundary conditions, pressure solve, then marker
// particles advected through the grid velocity for visualization of the
// flow. Particle-to-grid transfer is out of scope here; the fluid region
// comes from a flat level-set surface.
type Liquid2D struct {
	Title     string
	Gravity   float64
	Dt        float64
	FinalTime float64

	vel, velOut *grid2D.FaceCenteredGrid2
	fluidSdf    grid2D.ScalarField2
	pressure    grid2D.PressureSolver2
	boundary    grid2D.BoundaryConditionSolver2
	particles   *particles.ParticleSystemData2
	emitter     *particles.VolumeParticleEmitter2
	frame       particles.Frame
}

func NewLiquid2D(sp *InputParameters.SimParameters) (l *Liquid2D) {
	var (
		h      = sp.GridSpacing
		width  = float64(sp.Nx) * h
		height = float64(sp.Ny) * h
		level  = sp.FluidLevel * height
	)
	pressure := grid2D.NewSinglePhasePressureSolver2()
	if sp.MaxIterations > 0 {
		pressure.MaxIterations = sp.MaxIterations
	}
	if sp.Tolerance > 0 {
		pressure.Tolerance = sp.Tolerance
	}
	boundary := pressure.SuggestedBoundaryConditionSolver()
	if blocked, ok := boundary.(*grid2D.BlockedBoundaryConditionSolver2); ok {
		blocked.Friction = types.FrictionNameMap[sp.BoundaryFriction]
	}
	l = &Liquid2D{
		Title:     sp.Title,
		Gravity:   sp.Gravity,
		Dt:        sp.TimeStep,
		FinalTime: sp.FinalTime,
		vel:       grid2D.NewFaceCenteredGrid2(sp.Nx, sp.Ny, h, h, geometry.Vector2D{}),
		velOut:    grid2D.NewFaceCenteredGrid2(sp.Nx, sp.Ny, h, h, geometry.Vector2D{}),
		fluidSdf:  levelSdf2{Level: level},
		pressure:  pressure,
		boundary:  boundary,
		particles: particles.NewParticleSystemData2(),
		frame:     particles.NewFrame(0, sp.TimeStep),
	}
	spacing := sp.ParticleSpacing
	if spacing <= 0 {
		spacing = 0.5 * h
	}
	l.emitter = particles.NewVolumeParticleEmitter2(
		levelSdf2{Level: level},
		geometry.NewBoundingBox2(geometry.Vector2D{}, geometry.Vector2D{X: width, Y: height}),
		spacing,
		geometry.Vector2D{},
		sp.MaxParticles,
		sp.ParticleJitter,
		true, // one-shot fill
		false,
		sp.Seed,
	)
	return
}

func (l *Liquid2D) Run() {
	fmt.Printf("Liquid Tank in 2 Dimensions\n")
	fmt.Printf("g = %8.4f, dt = %8.5f, FinalTime = %8.4f\n", l.Gravity, l.Dt, l.FinalTime)
	var (
		nx, ny = l.vel.Nx, l.vel.Ny
		width  = float64(nx) * l.vel.Dx
		height = float64(ny) * l.vel.Dy
	)
	for l.frame.TimeInSeconds() < l.FinalTime {
		l.emitter.Emit(l.frame, l.particles)

		// Gravity on the y faces
		for j := 0; j <= ny; j++ {
			for i := 0; i < nx; i++ {
				l.vel.SetV(i, j, l.vel.VAt(i, j)-l.Gravity*l.Dt)
			}
		}
		l.boundary.Solve(l.vel, nil, l.fluidSdf)
		l.pressure.Solve(l.vel, l.Dt, l.velOut, nil, l.fluidSdf)
		l.boundary.Solve(l.velOut, nil, l.fluidSdf)

		// Euler advection of the marker particles through the grid field
		for n := range l.particles.Positions {
			p := l.particles.Positions[n]
			v := l.velOut.Sample(p)
			p = p.Plus(v.Scale(l.Dt))
			p.X = utils.Clamp(p.X, 0, width)
			p.Y = utils.Clamp(p.Y, 0, height)
			l.particles.Positions[n] = p
			l.particles.Velocities[n] = v
		}

		l.vel.CopyFrom(l.velOut)
		l.frame.Advance()

		if l.frame.Index%10 == 0 {
			var maxDiv float64
			for j := 0; j < ny; j++ {
				for i := 0; i < nx; i++ {
					maxDiv = math.Max(maxDiv, math.Abs(l.velOut.Divergence(i, j)))
				}
			}
			fmt.Printf("frame %4d, t = %8.4f, particles = %d, max|div| = %10.3e\n",
				l.frame.Index, l.frame.TimeInSeconds(), l.particles.N(), maxDiv)
		}
	}
}
