package grid2D

import (
	"github.com/zhangxiao6776/fluid-engine-dev/geometry"
	"github.com/zhangxiao6776/fluid-engine-dev/utils"
)

// CollocatedVectorGrid2 stores both velocity components at cell centers.
type CollocatedVectorGrid2 struct {
	Nx, Ny int
	Dx, Dy float64
	Origin geometry.Vector2D
	U, V   utils.Matrix
}

func NewCollocatedVectorGrid2(nx, ny int, dx, dy float64, origin geometry.Vector2D) (g *CollocatedVectorGrid2) {
	g = &CollocatedVectorGrid2{
		Nx:     nx,
		Ny:     ny,
		Dx:     dx,
		Dy:     dy,
		Origin: origin,
		U:      utils.NewMatrix(ny, nx),
		V:      utils.NewMatrix(ny, nx),
	}
	return
}

func (g *CollocatedVectorGrid2) At(i, j int) geometry.Vector2D {
	return geometry.Vector2D{X: g.U.At(j, i), Y: g.V.At(j, i)}
}

func (g *CollocatedVectorGrid2) Set(i, j int, val geometry.Vector2D) {
	g.U.Set(j, i, val.X)
	g.V.Set(j, i, val.Y)
}

func (g *CollocatedVectorGrid2) CellCenter(i, j int) geometry.Vector2D {
	return geometry.Vector2D{
		X: g.Origin.X + (float64(i)+0.5)*g.Dx,
		Y: g.Origin.Y + (float64(j)+0.5)*g.Dy,
	}
}

func (g *CollocatedVectorGrid2) Clone() (r *CollocatedVectorGrid2) {
	r = NewCollocatedVectorGrid2(g.Nx, g.Ny, g.Dx, g.Dy, g.Origin)
	r.U.CopyFrom(g.U)
	r.V.CopyFrom(g.V)
	return
}

func (g *CollocatedVectorGrid2) CopyFrom(src *CollocatedVectorGrid2) {
	g.U.CopyFrom(src.U)
	g.V.CopyFrom(src.V)
}
