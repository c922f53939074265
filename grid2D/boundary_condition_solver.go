package grid2D

import (
	"github.com/zhangxiao6776/fluid-engine-dev/types"
)

// BoundaryConditionSolver2 rewrites a face-centered velocity field so that
// the component normal to a solid boundary does not penetrate it. The
// tangential policy is implementation defined.
type BoundaryConditionSolver2 interface {
	Solve(velocity *FaceCenteredGrid2, boundarySdf, fluidSdf ScalarField2)
}

// BlockedBoundaryConditionSolver2 treats every cell whose center falls
// inside the solid as fully blocked: the normal velocity component on each
// face of a blocked cell is zeroed. Cells outside the grid count as solid,
// so the domain border behaves as a closed tank. Tangential components are
// left alone (free slip) unless Friction is F_NoSlip, in which case faces
// laterally adjacent to a blocked cell are zeroed as well.
type BlockedBoundaryConditionSolver2 struct {
	Friction types.FrictionFlag
	markers  MarkerGrid2
}

func NewBlockedBoundaryConditionSolver2() *BlockedBoundaryConditionSolver2 {
	return &BlockedBoundaryConditionSolver2{}
}

func (s *BlockedBoundaryConditionSolver2) Solve(velocity *FaceCenteredGrid2, boundarySdf, fluidSdf ScalarField2) {
	boundarySdf, fluidSdf = resolveSdfs2(boundarySdf, fluidSdf)
	var (
		nx, ny = velocity.Nx, velocity.Ny
	)
	s.markers.Build(nx, ny, velocity.CellCenter, boundarySdf, fluidSdf)

	blocked := func(i, j int) bool {
		if i < 0 || i >= nx || j < 0 || j >= ny {
			return true
		}
		return s.markers.At(i, j) == types.M_Boundary
	}

	for j := 0; j < ny; j++ {
		for i := 0; i <= nx; i++ {
			if blocked(i-1, j) || blocked(i, j) {
				velocity.SetU(i, j, 0)
				continue
			}
			if s.Friction == types.F_NoSlip &&
				(blocked(i-1, j-1) || blocked(i, j-1) || blocked(i-1, j+1) || blocked(i, j+1)) {
				velocity.SetU(i, j, 0)
			}
		}
	}
	for j := 0; j <= ny; j++ {
		for i := 0; i < nx; i++ {
			if blocked(i, j-1) || blocked(i, j) {
				velocity.SetV(i, j, 0)
				continue
			}
			if s.Friction == types.F_NoSlip &&
				(blocked(i-1, j-1) || blocked(i-1, j) || blocked(i+1, j-1) || blocked(i+1, j)) {
				velocity.SetV(i, j, 0)
			}
		}
	}
}
