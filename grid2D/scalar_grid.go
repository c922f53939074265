package grid2D

import (
	"math"

	"github.com/zhangxiao6776/fluid-engine-dev/geometry"
	"github.com/zhangxiao6776/fluid-engine-dev/utils"
)

// ScalarGrid2 stores one value per cell center on a structured 2D lattice.
// Data is held in a (Ny x Nx) matrix: row j holds the y=j slab, so element
// (i,j) of the grid is Data.At(j,i).
type ScalarGrid2 struct {
	Nx, Ny int
	Dx, Dy float64
	Origin geometry.Vector2D // Lower-left corner of cell (0,0)
	Data   utils.Matrix
}

func NewScalarGrid2(nx, ny int, dx, dy float64, origin geometry.Vector2D, initialValue ...float64) (g *ScalarGrid2) {
	g = &ScalarGrid2{
		Nx:     nx,
		Ny:     ny,
		Dx:     dx,
		Dy:     dy,
		Origin: origin,
		Data:   utils.NewMatrix(ny, nx),
	}
	if len(initialValue) != 0 {
		g.Data.Fill(initialValue[0])
	}
	return
}

func (g *ScalarGrid2) At(i, j int) float64 { return g.Data.At(j, i) }

func (g *ScalarGrid2) Set(i, j int, val float64) { g.Data.Set(j, i, val) }

// CellCenter maps the (i,j) cell index to its physical center position.
func (g *ScalarGrid2) CellCenter(i, j int) geometry.Vector2D {
	return geometry.Vector2D{
		X: g.Origin.X + (float64(i)+0.5)*g.Dx,
		Y: g.Origin.Y + (float64(j)+0.5)*g.Dy,
	}
}

func (g *ScalarGrid2) Clone() (r *ScalarGrid2) {
	r = NewScalarGrid2(g.Nx, g.Ny, g.Dx, g.Dy, g.Origin)
	r.Data.CopyFrom(g.Data)
	return
}

func (g *ScalarGrid2) CopyFrom(src *ScalarGrid2) {
	g.Data.CopyFrom(src.Data)
}

// Sample bilinearly interpolates the grid at physical position x, clamped to
// the cell-center lattice. A ScalarGrid2 holding a level set therefore
// satisfies ScalarField2 and can serve directly as an SDF argument.
func (g *ScalarGrid2) Sample(x geometry.Vector2D) float64 {
	var (
		fx = (x.X-g.Origin.X)/g.Dx - 0.5
		fy = (x.Y-g.Origin.Y)/g.Dy - 0.5
	)
	fx = utils.Clamp(fx, 0, float64(g.Nx-1))
	fy = utils.Clamp(fy, 0, float64(g.Ny-1))
	var (
		i0 = int(math.Floor(fx))
		j0 = int(math.Floor(fy))
	)
	if i0 > g.Nx-2 {
		i0 = g.Nx - 2
	}
	if j0 > g.Ny-2 {
		j0 = g.Ny - 2
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
	)
	if g.Nx == 1 {
		i0, tx = 0, 0
	}
	if g.Ny == 1 {
		j0, ty = 0, 0
	}
	var (
		i1 = min(i0+1, g.Nx-1)
		j1 = min(j0+1, g.Ny-1)
	)
	return (1-tx)*(1-ty)*g.At(i0, j0) +
		tx*(1-ty)*g.At(i1, j0) +
		(1-tx)*ty*g.At(i0, j1) +
		tx*ty*g.At(i1, j1)
}
