package model_problems

import (
	"fmt"
	"math"

	"github.com/zhangxiao6776/fluid-engine-dev/InputParameters"
	"github.com/zhangxiao6776/fluid-engine-dev/geometry"
	"github.com/zhangxiao6776/fluid-engine-dev/grid2D"
)

// Diffusion2D drives the explicit diffusion solver on a square domain with a
// hot Gaussian blob in the center. The stability bound mu < h/(8*dt) is a
// documented precondition of the solver, so it is validated here in the
// driver, not inside the solver.
type Diffusion2D struct {
	Title          string
	Mu, Dt         float64
	FinalTime      float64
	Field, scratch *grid2D.ScalarGrid2
	solver         *grid2D.ForwardEulerDiffusionSolver2
}

func NewDiffusion2D(sp *InputParameters.SimParameters) (d *Diffusion2D, err error) {
	var (
		h     = sp.GridSpacing
		bound = h / (8. * sp.TimeStep)
	)
	if sp.DiffusionCoefficient >= bound {
		err = fmt.Errorf("unstable parameters: mu = %g exceeds h/(8*dt) = %g", sp.DiffusionCoefficient, bound)
		return
	}
	d = &Diffusion2D{
		Title:     sp.Title,
		Mu:        sp.DiffusionCoefficient,
		Dt:        sp.TimeStep,
		FinalTime: sp.FinalTime,
		Field:     grid2D.NewScalarGrid2(sp.Nx, sp.Ny, h, h, geometry.Vector2D{}),
		scratch:   grid2D.NewScalarGrid2(sp.Nx, sp.Ny, h, h, geometry.Vector2D{}),
		solver:    grid2D.NewForwardEulerDiffusionSolver2(),
	}
	var (
		cx    = 0.5 * float64(sp.Nx) * h
		cy    = 0.5 * float64(sp.Ny) * h
		sigma = 0.1 * float64(sp.Nx) * h
	)
	for j := 0; j < sp.Ny; j++ {
		for i := 0; i < sp.Nx; i++ {
			pt := d.Field.CellCenter(i, j)
			r2 := (pt.X-cx)*(pt.X-cx) + (pt.Y-cy)*(pt.Y-cy)
			d.Field.Set(i, j, math.Exp(-r2/(2*sigma*sigma)))
		}
	}
	return
}

func (d *Diffusion2D) Run() {
	fmt.Printf("Heat Diffusion in 2 Dimensions\n")
	fmt.Printf("mu = %8.5f, dt = %8.5f, FinalTime = %8.5f\n", d.Mu, d.Dt, d.FinalTime)
	var (
		time  float64
		steps int
	)
	for time < d.FinalTime {
		d.solver.SolveScalar(d.Field, d.Mu, d.Dt, d.scratch, nil, nil)
		d.Field, d.scratch = d.scratch, d.Field
		time += d.Dt
		steps++
		if steps%100 == 0 {
			fmt.Printf("time = %8.4f, min/max = %8.5f %8.5f, total heat = %8.5f\n",
				time, d.Field.Data.Min(), d.Field.Data.Max(), d.Field.Data.Sum())
		}
	}
	fmt.Printf("finished after %d steps, min/max = %8.5f %8.5f\n",
		steps, d.Field.Data.Min(), d.Field.Data.Max())
}
