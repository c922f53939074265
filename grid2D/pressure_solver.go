package grid2D

// PressureSolver2 is the projection step of a grid fluid solver. Solve takes
// an input velocity field and produces an output field whose divergence is
// reduced to the solver's tolerance inside the fluid region, consistent with
// whatever condition the paired boundary condition solver enforces at
// solids. Behavior outside the fluid region is solver specific and must be
// documented by each implementation.
//
// SuggestedBoundaryConditionSolver returns a boundary condition solver that
// matches this solver's marker and boundary conventions. It is a pure
// capability query with no side effects.
//
// Passing nil for boundarySdf or fluidSdf selects NoBoundarySdf2 /
// AllFluidSdf2, the same defaults the diffusion solver uses.
type PressureSolver2 interface {
	Solve(input *FaceCenteredGrid2, dt float64, output *FaceCenteredGrid2, boundarySdf, fluidSdf ScalarField2)
	SuggestedBoundaryConditionSolver() BoundaryConditionSolver2
}
