package grid2D

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zhangxiao6776/fluid-engine-dev/geometry"
	"github.com/zhangxiao6776/fluid-engine-dev/types"
)

func TestDiffusionUniformField(t *testing.T) {
	// Uniform field has zero Laplacian everywhere, one step is the identity
	var (
		src    = NewScalarGrid2(5, 5, 1, 1, geometry.Vector2D{}, 1.0)
		dst    = NewScalarGrid2(5, 5, 1, 1, geometry.Vector2D{})
		solver = NewForwardEulerDiffusionSolver2()
	)
	solver.SolveScalar(src, 0.1, 1.0, dst, nil, nil)
	for j := 0; j < 5; j++ {
		for i := 0; i < 5; i++ {
			assert.InDelta(t, 1.0, dst.At(i, j), 1.e-12)
		}
	}
}

func TestDiffusionHotCellStencil(t *testing.T) {
	// Single hot interior cell, all cells fluid. Every cell must match the
	// closed-form stencil dest = src + mu*dt*sum((neighbor-center)/h^2),
	// asserted through the stencil equation itself.
	var (
		mu, dt = 0.1, 1.0
		src    = NewScalarGrid2(5, 5, 1, 1, geometry.Vector2D{})
		dst    = NewScalarGrid2(5, 5, 1, 1, geometry.Vector2D{})
		solver = NewForwardEulerDiffusionSolver2()
	)
	src.Set(2, 2, 10.0)
	solver.SolveScalar(src, mu, dt, dst, nil, nil)
	for j := 0; j < 5; j++ {
		for i := 0; i < 5; i++ {
			var lap float64
			c := src.At(i, j)
			if i > 0 {
				lap += src.At(i-1, j) - c
			}
			if i < 4 {
				lap += src.At(i+1, j) - c
			}
			if j > 0 {
				lap += src.At(i, j-1) - c
			}
			if j < 4 {
				lap += src.At(i, j+1) - c
			}
			assert.InDelta(t, c+mu*dt*lap, dst.At(i, j), 1.e-12)
		}
	}
	// Sanity on the scenario itself: neighbors heat up, center cools
	assert.InDelta(t, 1.0, dst.At(1, 2), 1.e-12)
	assert.Less(t, dst.At(2, 2), src.At(2, 2))
}

func TestDiffusionZeroCoefficient(t *testing.T) {
	var (
		src    = NewScalarGrid2(4, 4, 0.5, 0.5, geometry.Vector2D{})
		dst    = NewScalarGrid2(4, 4, 0.5, 0.5, geometry.Vector2D{})
		solver = NewForwardEulerDiffusionSolver2()
	)
	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			src.Set(i, j, float64(i*7+j*3))
		}
	}
	solver.SolveScalar(src, 0.0, 1.0, dst, wallSdf{1.0}, nil)
	assert.Equal(t, src.Data.Data(), dst.Data.Data())
}

func TestDiffusionNonFluidCellsUntouched(t *testing.T) {
	var (
		solver = NewForwardEulerDiffusionSolver2()
	)
	// All air: no cell updates
	{
		src := NewScalarGrid2(4, 4, 1, 1, geometry.Vector2D{}, 3.0)
		src.Set(1, 1, 9.0)
		dst := NewScalarGrid2(4, 4, 1, 1, geometry.Vector2D{})
		solver.SolveScalar(src, 0.1, 1.0, dst, nil, ConstantScalarField2{1.0})
		assert.Equal(t, src.Data.Data(), dst.Data.Data())
	}
	// All boundary: no cell updates
	{
		src := NewScalarGrid2(4, 4, 1, 1, geometry.Vector2D{}, 3.0)
		src.Set(1, 1, 9.0)
		dst := NewScalarGrid2(4, 4, 1, 1, geometry.Vector2D{})
		solver.SolveScalar(src, 0.1, 1.0, dst, ConstantScalarField2{-1.0}, nil)
		assert.Equal(t, src.Data.Data(), dst.Data.Data())
	}
}

func TestDiffusionExcludesBoundaryNeighbors(t *testing.T) {
	// Solid wall over the first column. The fluid cell next to the wall
	// must not exchange heat with it: the wall neighbor drops out of the
	// stencil and the wall cell itself copies through.
	var (
		mu, dt = 0.1, 1.0
		src    = NewScalarGrid2(4, 4, 1, 1, geometry.Vector2D{})
		dst    = NewScalarGrid2(4, 4, 1, 1, geometry.Vector2D{})
		solver = NewForwardEulerDiffusionSolver2()
		wall   = wallSdf{1.0}
	)
	src.Set(0, 1, 100.0) // heat inside the wall must stay there
	src.Set(1, 1, 5.0)
	solver.SolveScalar(src, mu, dt, dst, wall, nil)

	var m MarkerGrid2
	m.Build(src.Nx, src.Ny, src.CellCenter, wall, AllFluidSdf2)
	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			if m.At(i, j) != types.M_Fluid {
				assert.Equal(t, src.At(i, j), dst.At(i, j))
				continue
			}
			var lap float64
			c := src.At(i, j)
			if i > 0 && m.At(i-1, j) != types.M_Boundary {
				lap += src.At(i-1, j) - c
			}
			if i < 3 && m.At(i+1, j) != types.M_Boundary {
				lap += src.At(i+1, j) - c
			}
			if j > 0 && m.At(i, j-1) != types.M_Boundary {
				lap += src.At(i, j-1) - c
			}
			if j < 3 && m.At(i, j+1) != types.M_Boundary {
				lap += src.At(i, j+1) - c
			}
			assert.InDelta(t, c+mu*dt*lap, dst.At(i, j), 1.e-12)
		}
	}
	// The wall's heat never leaked into the fluid
	assert.Equal(t, 100.0, dst.At(0, 1))
}

func TestDiffusionCollocatedAndFaceCentered(t *testing.T) {
	// Uniform vector fields stay uniform under diffusion
	{
		src := NewCollocatedVectorGrid2(5, 4, 1, 1, geometry.Vector2D{})
		dst := NewCollocatedVectorGrid2(5, 4, 1, 1, geometry.Vector2D{})
		src.U.Fill(2.0)
		src.V.Fill(-1.0)
		solver := NewForwardEulerDiffusionSolver2()
		solver.SolveCollocated(src, 0.1, 1.0, dst, nil, nil)
		for j := 0; j < 4; j++ {
			for i := 0; i < 5; i++ {
				assert.InDelta(t, 2.0, dst.U.At(j, i), 1.e-12)
				assert.InDelta(t, -1.0, dst.V.At(j, i), 1.e-12)
			}
		}
	}
	{
		src := NewFaceCenteredGrid2(5, 4, 1, 1, geometry.Vector2D{})
		dst := NewFaceCenteredGrid2(5, 4, 1, 1, geometry.Vector2D{})
		src.U.Fill(3.0)
		src.V.Fill(0.5)
		solver := NewForwardEulerDiffusionSolver2()
		solver.SolveFaceCentered(src, 0.1, 1.0, dst, nil, nil)
		assert.InDelta(t, 3.0, dst.UAt(2, 2), 1.e-12)
		assert.InDelta(t, 3.0, dst.UAt(5, 3), 1.e-12)
		assert.InDelta(t, 0.5, dst.VAt(2, 4), 1.e-12)
	}
}

func TestDiffusionAnisotropicSpacing(t *testing.T) {
	// Per-axis spacing shows up as separate 1/dx^2, 1/dy^2 stencil weights
	var (
		mu, dt = 0.01, 1.0
		dx, dy = 0.5, 2.0
		src    = NewScalarGrid2(3, 3, dx, dy, geometry.Vector2D{})
		dst    = NewScalarGrid2(3, 3, dx, dy, geometry.Vector2D{})
		solver = NewForwardEulerDiffusionSolver2()
	)
	src.Set(1, 1, 8.0)
	solver.SolveScalar(src, mu, dt, dst, nil, nil)
	var (
		c   = src.At(1, 1)
		lap = (src.At(0, 1)-c)/(dx*dx) + (src.At(2, 1)-c)/(dx*dx) +
			(src.At(1, 0)-c)/(dy*dy) + (src.At(1, 2)-c)/(dy*dy)
	)
	assert.InDelta(t, c+mu*dt*lap, dst.At(1, 1), 1.e-12)
	assert.InDelta(t, mu*dt*8.0/(dx*dx), dst.At(0, 1), 1.e-12)
	assert.InDelta(t, mu*dt*8.0/(dy*dy), dst.At(1, 0), 1.e-12)
}
