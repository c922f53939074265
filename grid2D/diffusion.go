package grid2D

import (
	"runtime"
	"sync"

	"github.com/zhangxiao6776/fluid-engine-dev/types"
	"github.com/zhangxiao6776/fluid-engine-dev/utils"
)

// ForwardEulerDiffusionSolver2 advances a grid field by one explicit
// diffusion step using second-order central differencing. Explicit time
// integration bounds the usable diffusion coefficient: mu < h/(8*dt) where h
// is the grid spacing. The solver does not check the bound; violating it
// produces an oscillating, diverging solution and is the caller's problem.
//
// A solver instance reuses its marker scratch buffer across calls and must
// not be shared between goroutines.
type ForwardEulerDiffusionSolver2 struct {
	ParallelDegree int
	markers        MarkerGrid2
}

func NewForwardEulerDiffusionSolver2() *ForwardEulerDiffusionSolver2 {
	return &ForwardEulerDiffusionSolver2{
		ParallelDegree: runtime.NumCPU(),
	}
}

// SolveScalar computes dest = source + mu*dt*Laplacian(source) on every
// fluid cell. Cells marked air or boundary copy source unchanged, and
// boundary neighbors are excluded from the stencil, which enforces zero flux
// through solid faces. Passing nil for boundarySdf or fluidSdf selects
// NoBoundarySdf2 / AllFluidSdf2. Source and dest must share resolution and
// spacing; that precondition is not validated here.
func (s *ForwardEulerDiffusionSolver2) SolveScalar(source *ScalarGrid2, diffusionCoefficient, dt float64, dest *ScalarGrid2, boundarySdf, fluidSdf ScalarField2) {
	boundarySdf, fluidSdf = resolveSdfs2(boundarySdf, fluidSdf)
	s.markers.Build(source.Nx, source.Ny, source.CellCenter, boundarySdf, fluidSdf)
	s.diffuse(source.Data, dest.Data, source.Dx, source.Dy, diffusionCoefficient, dt)
}

// SolveCollocated applies the scalar update rule to each vector component
// independently. Both components share the cell-center markers.
func (s *ForwardEulerDiffusionSolver2) SolveCollocated(source *CollocatedVectorGrid2, diffusionCoefficient, dt float64, dest *CollocatedVectorGrid2, boundarySdf, fluidSdf ScalarField2) {
	boundarySdf, fluidSdf = resolveSdfs2(boundarySdf, fluidSdf)
	s.markers.Build(source.Nx, source.Ny, source.CellCenter, boundarySdf, fluidSdf)
	s.diffuse(source.U, dest.U, source.Dx, source.Dy, diffusionCoefficient, dt)
	s.diffuse(source.V, dest.V, source.Dx, source.Dy, diffusionCoefficient, dt)
}

// SolveFaceCentered diffuses a staggered velocity field. The two face
// lattices have different shapes and offsets, so the markers are rebuilt for
// each axis at that axis's own face positions.
func (s *ForwardEulerDiffusionSolver2) SolveFaceCentered(source *FaceCenteredGrid2, diffusionCoefficient, dt float64, dest *FaceCenteredGrid2, boundarySdf, fluidSdf ScalarField2) {
	boundarySdf, fluidSdf = resolveSdfs2(boundarySdf, fluidSdf)
	s.markers.Build(source.Nx+1, source.Ny, source.UPosition, boundarySdf, fluidSdf)
	s.diffuse(source.U, dest.U, source.Dx, source.Dy, diffusionCoefficient, dt)
	s.markers.Build(source.Nx, source.Ny+1, source.VPosition, boundarySdf, fluidSdf)
	s.diffuse(source.V, dest.V, source.Dx, source.Dy, diffusionCoefficient, dt)
}

// diffuse runs the marker-aware 5-point stencil over one component lattice.
// Reads come from src and writes go to dst, so rows are independent and are
// fanned out across the partition map's goroutine buckets.
func (s *ForwardEulerDiffusionSolver2) diffuse(src, dst utils.Matrix, dx, dy, mu, dt float64) {
	var (
		ny, nx = src.Dims()
		invDx2 = 1. / (dx * dx)
		invDy2 = 1. / (dy * dy)
		pm     = utils.NewPartitionMap(s.ParallelDegree, ny)
		wg     = sync.WaitGroup{}
	)
	for np := 0; np < pm.ParallelDegree; np++ {
		wg.Add(1)
		go func(np int) {
			defer wg.Done()
			jMin, jMax := pm.GetBucketRange(np)
			for j := jMin; j < jMax; j++ {
				for i := 0; i < nx; i++ {
					center := src.At(j, i)
					if s.markers.At(i, j) != types.M_Fluid {
						dst.Set(j, i, center)
						continue
					}
					var lap float64
					if i > 0 && s.markers.At(i-1, j) != types.M_Boundary {
						lap += (src.At(j, i-1) - center) * invDx2
					}
					if i < nx-1 && s.markers.At(i+1, j) != types.M_Boundary {
						lap += (src.At(j, i+1) - center) * invDx2
					}
					if j > 0 && s.markers.At(i, j-1) != types.M_Boundary {
						lap += (src.At(j-1, i) - center) * invDy2
					}
					if j < ny-1 && s.markers.At(i, j+1) != types.M_Boundary {
						lap += (src.At(j+1, i) - center) * invDy2
					}
					dst.Set(j, i, center+mu*dt*lap)
				}
			}
		}(np)
	}
	wg.Wait()
}
