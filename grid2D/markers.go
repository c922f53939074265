package grid2D

import (
	"github.com/zhangxiao6776/fluid-engine-dev/geometry"
	"github.com/zhangxiao6776/fluid-engine-dev/types"
)

// MarkerGrid2 holds one classification tag per lattice point. Solvers keep
// one as reusable scratch storage; the tags are rebuilt on every solve call
// and carry no meaning across calls.
type MarkerGrid2 struct {
	Nx, Ny int
	Tags   []types.MarkerFlag
}

func (m *MarkerGrid2) Resize(nx, ny int) {
	m.Nx, m.Ny = nx, ny
	if cap(m.Tags) < nx*ny {
		m.Tags = make([]types.MarkerFlag, nx*ny)
	}
	m.Tags = m.Tags[:nx*ny]
}

func (m *MarkerGrid2) At(i, j int) types.MarkerFlag { return m.Tags[i+m.Nx*j] }

func (m *MarkerGrid2) Set(i, j int, tag types.MarkerFlag) { m.Tags[i+m.Nx*j] = tag }

// Build classifies every lattice point from the two SDFs sampled at the
// position the supplied mapping assigns to it. A point inside the solid
// (boundarySdf <= 0) is M_Boundary regardless of the fluid SDF, a remaining
// point inside the fluid (fluidSdf <= 0) is M_Fluid, everything else M_Air.
func (m *MarkerGrid2) Build(nx, ny int, pos func(i, j int) geometry.Vector2D, boundarySdf, fluidSdf ScalarField2) {
	m.Resize(nx, ny)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			pt := pos(i, j)
			switch {
			case boundarySdf.Sample(pt) <= 0:
				m.Set(i, j, types.M_Boundary)
			case fluidSdf.Sample(pt) <= 0:
				m.Set(i, j, types.M_Fluid)
			default:
				m.Set(i, j, types.M_Air)
			}
		}
	}
}
