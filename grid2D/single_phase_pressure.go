package grid2D

import (
	"gonum.org/v1/gonum/floats"

	"github.com/zhangxiao6776/fluid-engine-dev/types"
	"github.com/zhangxiao6776/fluid-engine-dev/utils"
)

// SinglePhasePressureSolver2 solves the pressure Poisson equation over the
// fluid cells and subtracts the resulting pressure gradient from the input
// velocity. The linear system treats air cells as zero-pressure Dirichlet
// conditions and solid cells as zero-flux Neumann conditions; cells outside
// the grid count as solid. The system is assembled as a sparse matrix and
// solved with Jacobi-preconditioned conjugate gradient.
//
// Policy outside the fluid region: output copies input. Faces that touch a
// solid cell are not corrected here either; pair the solver with its
// suggested boundary condition solver to enforce no-penetration there.
type SinglePhasePressureSolver2 struct {
	MaxIterations int
	Tolerance     float64

	// Pressure from the latest Solve, zero outside the fluid. Diagnostic
	// output only; the stored variable carries the dt/(rho*h) scaling of
	// the discrete system, not physical units.
	Pressure *ScalarGrid2

	markers MarkerGrid2
}

func NewSinglePhasePressureSolver2() *SinglePhasePressureSolver2 {
	return &SinglePhasePressureSolver2{
		MaxIterations: 200,
		Tolerance:     1.e-8,
	}
}

func (s *SinglePhasePressureSolver2) SuggestedBoundaryConditionSolver() BoundaryConditionSolver2 {
	return NewBlockedBoundaryConditionSolver2()
}

func (s *SinglePhasePressureSolver2) Solve(input *FaceCenteredGrid2, dt float64, output *FaceCenteredGrid2, boundarySdf, fluidSdf ScalarField2) {
	boundarySdf, fluidSdf = resolveSdfs2(boundarySdf, fluidSdf)
	var (
		nx, ny = input.Nx, input.Ny
		invDx2 = dt / (input.Dx * input.Dx)
		invDy2 = dt / (input.Dy * input.Dy)
	)
	s.markers.Build(nx, ny, input.CellCenter, boundarySdf, fluidSdf)
	output.CopyFrom(input)

	// Number the fluid cells; everything else stays out of the system.
	var (
		rowOf    = make([]int, nx*ny)
		nUnknown int
	)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			if s.markers.At(i, j) == types.M_Fluid {
				rowOf[i+nx*j] = nUnknown
				nUnknown++
			} else {
				rowOf[i+nx*j] = -1
			}
		}
	}
	if nUnknown == 0 {
		return
	}

	markerAt := func(i, j int) types.MarkerFlag {
		if i < 0 || i >= nx || j < 0 || j >= ny {
			return types.M_Boundary
		}
		return s.markers.At(i, j)
	}

	// Assemble A p = div(u). A is -dt*Laplacian restricted to the fluid
	// cells, symmetric positive (semi-)definite: each non-solid neighbor
	// adds to the diagonal, each fluid neighbor couples off-diagonal, air
	// neighbors pin the pressure through the missing coupling.
	var (
		A = utils.NewDOK(nUnknown, nUnknown)
		b = make([]float64, nUnknown)
	)
	type nb struct {
		di, dj int
		coeff  float64
	}
	neighbors := [4]nb{{-1, 0, invDx2}, {1, 0, invDx2}, {0, -1, invDy2}, {0, 1, invDy2}}
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			row := rowOf[i+nx*j]
			if row < 0 {
				continue
			}
			for _, n := range neighbors {
				switch markerAt(i+n.di, j+n.dj) {
				case types.M_Boundary:
					// zero flux, excluded from the stencil
				case types.M_Fluid:
					A.Add(row, row, n.coeff)
					A.Add(row, rowOf[(i+n.di)+nx*(j+n.dj)], -n.coeff)
				default:
					A.Add(row, row, n.coeff)
				}
			}
			b[row] = input.Divergence(i, j)
		}
	}

	p := s.solveSystem(A.ToCSR(), b)

	if s.Pressure == nil || s.Pressure.Nx != nx || s.Pressure.Ny != ny {
		s.Pressure = NewScalarGrid2(nx, ny, input.Dx, input.Dy, input.Origin)
	} else {
		s.Pressure.Data.Fill(0)
	}
	pressureAt := func(i, j int) float64 {
		row := rowOf[i+nx*j]
		if row < 0 {
			return 0
		}
		return p[row]
	}
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			s.Pressure.Set(i, j, pressureAt(i, j))
		}
	}

	// Subtract the pressure gradient on every face between two non-solid
	// cells where at least one side is fluid. Air pressure is zero, so
	// fluid-air faces see the free surface.
	for j := 0; j < ny; j++ {
		for i := 1; i < nx; i++ {
			mL, mR := markerAt(i-1, j), markerAt(i, j)
			if mL == types.M_Boundary || mR == types.M_Boundary {
				continue
			}
			if mL != types.M_Fluid && mR != types.M_Fluid {
				continue
			}
			u := output.UAt(i, j) + dt*(pressureAt(i, j)-pressureAt(i-1, j))/input.Dx
			output.SetU(i, j, u)
		}
	}
	for j := 1; j < ny; j++ {
		for i := 0; i < nx; i++ {
			mB, mT := markerAt(i, j-1), markerAt(i, j)
			if mB == types.M_Boundary || mT == types.M_Boundary {
				continue
			}
			if mB != types.M_Fluid && mT != types.M_Fluid {
				continue
			}
			v := output.VAt(i, j) + dt*(pressureAt(i, j)-pressureAt(i, j-1))/input.Dy
			output.SetV(i, j, v)
		}
	}
}

// solveSystem runs Jacobi-preconditioned conjugate gradient on A x = b,
// starting from x = 0, stopping at MaxIterations or when the residual
// 2-norm drops below Tolerance.
func (s *SinglePhasePressureSolver2) solveSystem(A utils.CSR, b []float64) (x []float64) {
	var (
		n    = len(b)
		r    = make([]float64, n)
		z    = make([]float64, n)
		p    = make([]float64, n)
		Ap   = make([]float64, n)
		diag = A.Diagonal()
	)
	x = make([]float64, n)
	copy(r, b)
	precondition := func() {
		for i := range z {
			if diag[i] != 0 {
				z[i] = r[i] / diag[i]
			} else {
				z[i] = r[i]
			}
		}
	}
	precondition()
	copy(p, z)
	rz := floats.Dot(r, z)
	for iter := 0; iter < s.MaxIterations; iter++ {
		if floats.Norm(r, 2) <= s.Tolerance {
			break
		}
		A.MulVec(p, Ap)
		pAp := floats.Dot(p, Ap)
		if pAp == 0 {
			break
		}
		alpha := rz / pAp
		floats.AddScaled(x, alpha, p)
		floats.AddScaled(r, -alpha, Ap)
		precondition()
		rzNext := floats.Dot(r, z)
		beta := rzNext / rz
		rz = rzNext
		for i := range p {
			p[i] = z[i] + beta*p[i]
		}
	}
	return
}
