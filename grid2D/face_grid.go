package grid2D

import (
	"math"

	"github.com/zhangxiao6776/fluid-engine-dev/geometry"
	"github.com/zhangxiao6776/fluid-engine-dev/utils"
)

// FaceCenteredGrid2 is a staggered MAC grid: U lives on the vertical cell
// faces, (Nx+1 x Ny) samples, V on the horizontal faces, (Nx x Ny+1).
type FaceCenteredGrid2 struct {
	Nx, Ny int
	Dx, Dy float64
	Origin geometry.Vector2D
	U      utils.Matrix // (Ny, Nx+1)
	V      utils.Matrix // (Ny+1, Nx)
}

func NewFaceCenteredGrid2(nx, ny int, dx, dy float64, origin geometry.Vector2D) (g *FaceCenteredGrid2) {
	g = &FaceCenteredGrid2{
		Nx:     nx,
		Ny:     ny,
		Dx:     dx,
		Dy:     dy,
		Origin: origin,
		U:      utils.NewMatrix(ny, nx+1),
		V:      utils.NewMatrix(ny+1, nx),
	}
	return
}

func (g *FaceCenteredGrid2) UAt(i, j int) float64 { return g.U.At(j, i) }
func (g *FaceCenteredGrid2) VAt(i, j int) float64 { return g.V.At(j, i) }

func (g *FaceCenteredGrid2) SetU(i, j int, val float64) { g.U.Set(j, i, val) }
func (g *FaceCenteredGrid2) SetV(i, j int, val float64) { g.V.Set(j, i, val) }

// UPosition maps a U-face index to its physical position. The i-th U face
// sits on the left edge of cell column i.
func (g *FaceCenteredGrid2) UPosition(i, j int) geometry.Vector2D {
	return geometry.Vector2D{
		X: g.Origin.X + float64(i)*g.Dx,
		Y: g.Origin.Y + (float64(j)+0.5)*g.Dy,
	}
}

// VPosition maps a V-face index to its physical position. The j-th V face
// sits on the bottom edge of cell row j.
func (g *FaceCenteredGrid2) VPosition(i, j int) geometry.Vector2D {
	return geometry.Vector2D{
		X: g.Origin.X + (float64(i)+0.5)*g.Dx,
		Y: g.Origin.Y + float64(j)*g.Dy,
	}
}

func (g *FaceCenteredGrid2) CellCenter(i, j int) geometry.Vector2D {
	return geometry.Vector2D{
		X: g.Origin.X + (float64(i)+0.5)*g.Dx,
		Y: g.Origin.Y + (float64(j)+0.5)*g.Dy,
	}
}

// Divergence returns the discrete velocity divergence at cell (i,j).
func (g *FaceCenteredGrid2) Divergence(i, j int) float64 {
	return (g.UAt(i+1, j)-g.UAt(i, j))/g.Dx +
		(g.VAt(i, j+1)-g.VAt(i, j))/g.Dy
}

func (g *FaceCenteredGrid2) Clone() (r *FaceCenteredGrid2) {
	r = NewFaceCenteredGrid2(g.Nx, g.Ny, g.Dx, g.Dy, g.Origin)
	r.U.CopyFrom(g.U)
	r.V.CopyFrom(g.V)
	return
}

func (g *FaceCenteredGrid2) CopyFrom(src *FaceCenteredGrid2) {
	g.U.CopyFrom(src.U)
	g.V.CopyFrom(src.V)
}

// Sample linearly interpolates the velocity at physical position x, each
// component on its own staggered lattice.
func (g *FaceCenteredGrid2) Sample(x geometry.Vector2D) geometry.Vector2D {
	return geometry.Vector2D{
		X: sampleLattice(g.U, x.X-g.Origin.X, x.Y-g.Origin.Y-0.5*g.Dy, g.Dx, g.Dy),
		Y: sampleLattice(g.V, x.X-g.Origin.X-0.5*g.Dx, x.Y-g.Origin.Y, g.Dx, g.Dy),
	}
}

// sampleLattice bilinearly interpolates a (nr x nc) matrix whose (j,i) sample
// sits at physical offset (i*dx, j*dy), clamping to the lattice bounds.
func sampleLattice(m utils.Matrix, x, y, dx, dy float64) float64 {
	var (
		nr, nc = m.Dims()
		fx     = utils.Clamp(x/dx, 0, float64(nc-1))
		fy     = utils.Clamp(y/dy, 0, float64(nr-1))
		i0     = int(math.Floor(fx))
		j0     = int(math.Floor(fy))
	)
	if i0 > nc-2 {
		i0 = nc - 2
	}
	if j0 > nr-2 {
		j0 = nr - 2
	}
	if i0 < 0 {
		i0 = 0
	}
	if j0 < 0 {
		j0 = 0
	}
	var (
		tx = fx - float64(i0)
		ty = fy - float64(j0)
		i1 = min(i0+1, nc-1)
		j1 = min(j0+1, nr-1)
	)
	if nc == 1 {
		tx = 0
	}
	if nr == 1 {
		ty = 0
	}
	return (1-tx)*(1-ty)*m.At(j0, i0) +
		tx*(1-ty)*m.At(j0, i1) +
		(1-tx)*ty*m.At(j1, i0) +
		tx*ty*m.At(j1, i1)
}
