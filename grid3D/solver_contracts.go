package grid3D

// BoundaryConditionSolver3 rewrites a face-centered velocity field so the
// normal component does not penetrate solid boundaries, mirroring the 2D
// contract.
type BoundaryConditionSolver3 interface {
	Solve(velocity *FaceCenteredGrid3, boundarySdf, fluidSdf ScalarField3)
}

// PressureSolver3 is the 3D projection-step contract. See
// grid2D.PressureSolver2 for the full semantics; nil SDFs select
// NoBoundarySdf3 / AllFluidSdf3.
type PressureSolver3 interface {
	Solve(input *FaceCenteredGrid3, dt float64, output *FaceCenteredGrid3, boundarySdf, fluidSdf ScalarField3)
	SuggestedBoundaryConditionSolver() BoundaryConditionSolver3
}
