package grid3D

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zhangxiao6776/fluid-engine-dev/geometry"
	"github.com/zhangxiao6776/fluid-engine-dev/types"
)

// slabSdf is solid for z < Z.
type slabSdf struct {
	Z float64
}

func (f slabSdf) Sample(x geometry.Vector3D) float64 { return x.Z - f.Z }

func TestDiffusion3DUniformField(t *testing.T) {
	var (
		src    = NewScalarGrid3(4, 4, 4, 1, 1, 1, geometry.Vector3D{}, 2.0)
		dst    = NewScalarGrid3(4, 4, 4, 1, 1, 1, geometry.Vector3D{})
		solver = NewForwardEulerDiffusionSolver3()
	)
	solver.SolveScalar(src, 0.1, 1.0, dst, nil, nil)
	for k := 0; k < 4; k++ {
		for j := 0; j < 4; j++ {
			for i := 0; i < 4; i++ {
				assert.InDelta(t, 2.0, dst.At(i, j, k), 1.e-12)
			}
		}
	}
}

func TestDiffusion3DHotCellStencil(t *testing.T) {
	// 7-point stencil against the closed-form update, all cells fluid
	var (
		mu, dt = 0.05, 1.0
		src    = NewScalarGrid3(5, 5, 5, 1, 1, 1, geometry.Vector3D{})
		dst    = NewScalarGrid3(5, 5, 5, 1, 1, 1, geometry.Vector3D{})
		solver = NewForwardEulerDiffusionSolver3()
	)
	src.Set(2, 2, 2, 10.0)
	solver.SolveScalar(src, mu, dt, dst, nil, nil)
	for k := 0; k < 5; k++ {
		for j := 0; j < 5; j++ {
			for i := 0; i < 5; i++ {
				var lap float64
				c := src.At(i, j, k)
				if i > 0 {
					lap += src.At(i-1, j, k) - c
				}
				if i < 4 {
					lap += src.At(i+1, j, k) - c
				}
				if j > 0 {
					lap += src.At(i, j-1, k) - c
				}
				if j < 4 {
					lap += src.At(i, j+1, k) - c
				}
				if k > 0 {
					lap += src.At(i, j, k-1) - c
				}
				if k < 4 {
					lap += src.At(i, j, k+1) - c
				}
				assert.InDelta(t, c+mu*dt*lap, dst.At(i, j, k), 1.e-12)
			}
		}
	}
	// All six direct neighbors receive the same share
	assert.InDelta(t, 0.5, dst.At(1, 2, 2), 1.e-12)
	assert.InDelta(t, 0.5, dst.At(2, 2, 3), 1.e-12)
}

func TestDiffusion3DZeroCoefficientAndMarkers(t *testing.T) {
	var (
		solver = NewForwardEulerDiffusionSolver3()
	)
	// mu = 0 is the identity
	{
		src := NewScalarGrid3(3, 3, 3, 1, 1, 1, geometry.Vector3D{})
		dst := NewScalarGrid3(3, 3, 3, 1, 1, 1, geometry.Vector3D{})
		for n := range src.Data.Data {
			src.Data.Data[n] = float64(n)
		}
		solver.SolveScalar(src, 0.0, 1.0, dst, nil, nil)
		assert.Equal(t, src.Data.Data, dst.Data.Data)
	}
	// A solid slab does not exchange heat with the fluid above it
	{
		src := NewScalarGrid3(3, 3, 3, 1, 1, 1, geometry.Vector3D{})
		dst := NewScalarGrid3(3, 3, 3, 1, 1, 1, geometry.Vector3D{})
		src.Set(1, 1, 0, 50.0) // inside the slab
		src.Set(1, 1, 1, 4.0)  // fluid cell right above
		solver.SolveScalar(src, 0.1, 1.0, dst, slabSdf{1.0}, nil)
		assert.Equal(t, 50.0, dst.At(1, 1, 0))
		// The fluid cell sees 4 lateral + 1 upper neighbor, not the slab
		c := src.At(1, 1, 1)
		lap := 5 * (0.0 - c)
		assert.InDelta(t, c+0.1*lap, dst.At(1, 1, 1), 1.e-12)
	}
}

func TestDiffusion3DMarkerBuild(t *testing.T) {
	var m MarkerGrid3
	g := NewScalarGrid3(3, 3, 3, 1, 1, 1, geometry.Vector3D{})
	m.Build(3, 3, 3, g.CellCenter, ConstantScalarField3{-1.0}, ConstantScalarField3{-1.0})
	// Boundary precedence over fluid
	assert.Equal(t, types.M_Boundary, m.At(1, 1, 1))
	m.Build(3, 3, 3, g.CellCenter, slabSdf{1.0}, AllFluidSdf3)
	assert.Equal(t, types.M_Boundary, m.At(0, 0, 0))
	assert.Equal(t, types.M_Fluid, m.At(0, 0, 1))
}

func TestDiffusion3DCollocated(t *testing.T) {
	// Uniform vector field stays uniform under diffusion
	{
		src := NewCollocatedVectorGrid3(4, 3, 3, 1, 1, 1, geometry.Vector3D{})
		dst := NewCollocatedVectorGrid3(4, 3, 3, 1, 1, 1, geometry.Vector3D{})
		src.U.Fill(1.5)
		src.V.Fill(-0.5)
		src.W.Fill(2.5)
		solver := NewForwardEulerDiffusionSolver3()
		solver.SolveCollocated(src, 0.1, 1.0, dst, nil, nil)
		for k := 0; k < 3; k++ {
			for j := 0; j < 3; j++ {
				for i := 0; i < 4; i++ {
					assert.InDelta(t, 1.5, dst.U.At(i, j, k), 1.e-12)
					assert.InDelta(t, -0.5, dst.V.At(i, j, k), 1.e-12)
					assert.InDelta(t, 2.5, dst.W.At(i, j, k), 1.e-12)
				}
			}
		}
	}
	// Each component diffuses its own hot cell independently, all cells
	// fluid: the update matches the 7-point stencil on an interior cell per
	// component
	{
		var (
			mu, dt = 0.05, 1.0
			src    = NewCollocatedVectorGrid3(5, 5, 5, 1, 1, 1, geometry.Vector3D{})
			dst    = NewCollocatedVectorGrid3(5, 5, 5, 1, 1, 1, geometry.Vector3D{})
			solver = NewForwardEulerDiffusionSolver3()
		)
		src.Set(2, 2, 2, geometry.Vector3D{X: 6.0})
		src.Set(1, 1, 1, geometry.Vector3D{Y: 4.0})
		src.Set(3, 3, 3, geometry.Vector3D{Z: 2.0})
		solver.SolveCollocated(src, mu, dt, dst, nil, nil)
		// Hot cells lose 6 shares, their direct neighbors gain one each
		assert.InDelta(t, 6.0*(1-6*mu*dt), dst.U.At(2, 2, 2), 1.e-12)
		assert.InDelta(t, 6.0*mu*dt, dst.U.At(1, 2, 2), 1.e-12)
		assert.InDelta(t, 4.0*(1-6*mu*dt), dst.V.At(1, 1, 1), 1.e-12)
		assert.InDelta(t, 4.0*mu*dt, dst.V.At(1, 2, 1), 1.e-12)
		assert.InDelta(t, 2.0*(1-6*mu*dt), dst.W.At(3, 3, 3), 1.e-12)
		assert.InDelta(t, 2.0*mu*dt, dst.W.At(3, 3, 2), 1.e-12)
		// No component bleeds into another lattice
		assert.InDelta(t, 0.0, dst.V.At(2, 2, 2), 1.e-12)
		assert.InDelta(t, 0.0, dst.W.At(2, 2, 2), 1.e-12)
		assert.InDelta(t, 0.0, dst.U.At(1, 1, 1), 1.e-12)
	}
}

func TestDiffusion3DFaceCentered(t *testing.T) {
	var (
		src    = NewFaceCenteredGrid3(3, 3, 3, 1, 1, 1, geometry.Vector3D{})
		dst    = NewFaceCenteredGrid3(3, 3, 3, 1, 1, 1, geometry.Vector3D{})
		solver = NewForwardEulerDiffusionSolver3()
	)
	src.U.Fill(1.0)
	src.V.Fill(2.0)
	src.W.Fill(3.0)
	solver.SolveFaceCentered(src, 0.1, 1.0, dst, nil, nil)
	assert.InDelta(t, 1.0, dst.U.At(3, 1, 1), 1.e-12)
	assert.InDelta(t, 2.0, dst.V.At(1, 3, 1), 1.e-12)
	assert.InDelta(t, 3.0, dst.W.At(1, 1, 3), 1.e-12)
	for k := 0; k < 3; k++ {
		for j := 0; j < 3; j++ {
			for i := 0; i < 3; i++ {
				assert.InDelta(t, 0.0, dst.Divergence(i, j, k), 1.e-12)
			}
		}
	}
}
