package grid3D

import (
	"github.com/zhangxiao6776/fluid-engine-dev/geometry"
	"github.com/zhangxiao6776/fluid-engine-dev/types"
)

// MarkerGrid3 is the 3D counterpart of grid2D.MarkerGrid2: reusable scratch
// classification storage, rebuilt on every solve call.
type MarkerGrid3 struct {
	Nx, Ny, Nz int
	Tags       []types.MarkerFlag
}

func (m *MarkerGrid3) Resize(nx, ny, nz int) {
	m.Nx, m.Ny, m.Nz = nx, ny, nz
	if cap(m.Tags) < nx*ny*nz {
		m.Tags = make([]types.MarkerFlag, nx*ny*nz)
	}
	m.Tags = m.Tags[:nx*ny*nz]
}

func (m *MarkerGrid3) At(i, j, k int) types.MarkerFlag {
	return m.Tags[i+m.Nx*(j+m.Ny*k)]
}

func (m *MarkerGrid3) Set(i, j, k int, tag types.MarkerFlag) {
	m.Tags[i+m.Nx*(j+m.Ny*k)] = tag
}

// Build classifies every lattice point; boundary takes precedence over
// fluid, mirroring the 2D builder.
func (m *MarkerGrid3) Build(nx, ny, nz int, pos func(i, j, k int) geometry.Vector3D, boundarySdf, fluidSdf ScalarField3) {
	m.Resize(nx, ny, nz)
	for k := 0; k < nz; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				pt := pos(i, j, k)
				switch {
				case boundarySdf.Sample(pt) <= 0:
					m.Set(i, j, k, types.M_Boundary)
				case fluidSdf.Sample(pt) <= 0:
					m.Set(i, j, k, types.M_Fluid)
				default:
					m.Set(i, j, k, types.M_Air)
				}
			}
		}
	}
}
