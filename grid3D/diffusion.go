package grid3D

import (
	"runtime"
	"sync"

	"github.com/zhangxiao6776/fluid-engine-dev/types"
	"github.com/zhangxiao6776/fluid-engine-dev/utils"
)

// ForwardEulerDiffusionSolver3 is the 3D forward Euler diffusion solver: one
// explicit step with the marker-aware 7-point Laplacian stencil. The same
// stability bound as in 2D applies, mu < h/(8*dt), and is not checked.
// Not safe for concurrent use; the marker buffer is shared scratch.
type ForwardEulerDiffusionSolver3 struct {
	ParallelDegree int
	markers        MarkerGrid3
}

func NewForwardEulerDiffusionSolver3() *ForwardEulerDiffusionSolver3 {
	return &ForwardEulerDiffusionSolver3{
		ParallelDegree: runtime.NumCPU(),
	}
}

// SolveScalar computes dest = source + mu*dt*Laplacian(source) on fluid
// cells; air and boundary cells copy source. Nil SDFs select NoBoundarySdf3
// / AllFluidSdf3. Source and dest must share resolution and spacing.
func (s *ForwardEulerDiffusionSolver3) SolveScalar(source *ScalarGrid3, diffusionCoefficient, dt float64, dest *ScalarGrid3, boundarySdf, fluidSdf ScalarField3) {
	boundarySdf, fluidSdf = resolveSdfs3(boundarySdf, fluidSdf)
	s.markers.Build(source.Nx, source.Ny, source.Nz, source.CellCenter, boundarySdf, fluidSdf)
	s.diffuse(source.Data, dest.Data, source.Dx, source.Dy, source.Dz, diffusionCoefficient, dt)
}

// SolveCollocated applies the scalar rule per component with shared
// cell-center markers.
func (s *ForwardEulerDiffusionSolver3) SolveCollocated(source *CollocatedVectorGrid3, diffusionCoefficient, dt float64, dest *CollocatedVectorGrid3, boundarySdf, fluidSdf ScalarField3) {
	boundarySdf, fluidSdf = resolveSdfs3(boundarySdf, fluidSdf)
	s.markers.Build(source.Nx, source.Ny, source.Nz, source.CellCenter, boundarySdf, fluidSdf)
	s.diffuse(source.U, dest.U, source.Dx, source.Dy, source.Dz, diffusionCoefficient, dt)
	s.diffuse(source.V, dest.V, source.Dx, source.Dy, source.Dz, diffusionCoefficient, dt)
	s.diffuse(source.W, dest.W, source.Dx, source.Dy, source.Dz, diffusionCoefficient, dt)
}

// SolveFaceCentered rebuilds the markers per axis at that axis's face
// positions, then diffuses each staggered component on its own lattice.
func (s *ForwardEulerDiffusionSolver3) SolveFaceCentered(source *FaceCenteredGrid3, diffusionCoefficient, dt float64, dest *FaceCenteredGrid3, boundarySdf, fluidSdf ScalarField3) {
	boundarySdf, fluidSdf = resolveSdfs3(boundarySdf, fluidSdf)
	s.markers.Build(source.Nx+1, source.Ny, source.Nz, source.UPosition, boundarySdf, fluidSdf)
	s.diffuse(source.U, dest.U, source.Dx, source.Dy, source.Dz, diffusionCoefficient, dt)
	s.markers.Build(source.Nx, source.Ny+1, source.Nz, source.VPosition, boundarySdf, fluidSdf)
	s.diffuse(source.V, dest.V, source.Dx, source.Dy, source.Dz, diffusionCoefficient, dt)
	s.markers.Build(source.Nx, source.Ny, source.Nz+1, source.WPosition, boundarySdf, fluidSdf)
	s.diffuse(source.W, dest.W, source.Dx, source.Dy, source.Dz, diffusionCoefficient, dt)
}

// diffuse runs the marker-aware 7-point stencil over one component lattice,
// fanned out across z slabs. Reads from src, writes to dst.
func (s *ForwardEulerDiffusionSolver3) diffuse(src, dst Lattice3, dx, dy, dz, mu, dt float64) {
	var (
		nx, ny, nz = src.Nx, src.Ny, src.Nz
		invDx2     = 1. / (dx * dx)
		invDy2     = 1. / (dy * dy)
		invDz2     = 1. / (dz * dz)
		pm         = utils.NewPartitionMap(s.ParallelDegree, nz)
		wg         = sync.WaitGroup{}
	)
	for np := 0; np < pm.ParallelDegree; np++ {
		wg.Add(1)
		go func(np int) {
			defer wg.Done()
			kMin, kMax := pm.GetBucketRange(np)
			for k := kMin; k < kMax; k++ {
				for j := 0; j < ny; j++ {
					for i := 0; i < nx; i++ {
						center := src.At(i, j, k)
						if s.markers.At(i, j, k) != types.M_Fluid {
							dst.Set(i, j, k, center)
							continue
						}
						var lap float64
						if i > 0 && s.markers.At(i-1, j, k) != types.M_Boundary {
							lap += (src.At(i-1, j, k) - center) * invDx2
						}
						if i < nx-1 && s.markers.At(i+1, j, k) != types.M_Boundary {
							lap += (src.At(i+1, j, k) - center) * invDx2
						}
						if j > 0 && s.markers.At(i, j-1, k) != types.M_Boundary {
							lap += (src.At(i, j-1, k) - center) * invDy2
						}
						if j < ny-1 && s.markers.At(i, j+1, k) != types.M_Boundary {
							lap += (src.At(i, j+1, k) - center) * invDy2
						}
						if k > 0 && s.markers.At(i, j, k-1) != types.M_Boundary {
							lap += (src.At(i, j, k-1) - center) * invDz2
						}
						if k < nz-1 && s.markers.At(i, j, k+1) != types.M_Boundary {
							lap += (src.At(i, j, k+1) - center) * invDz2
						}
						dst.Set(i, j, k, center+mu*dt*lap)
					}
				}
			}
		}(np)
	}
	wg.Wait()
}
