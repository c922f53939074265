package grid3D

import (
	"github.com/zhangxiao6776/fluid-engine-dev/geometry"
)

// Lattice3 is flat float64 storage for one (Nx x Ny x Nz) component.
// gonum's dense matrices are rank-2, so 3D components use explicit index
// arithmetic instead: element (i,j,k) lives at i + Nx*(j + Ny*k).
type Lattice3 struct {
	Nx, Ny, Nz int
	Data       []float64
}

func NewLattice3(nx, ny, nz int) Lattice3 {
	return Lattice3{nx, ny, nz, make([]float64, nx*ny*nz)}
}

func (l Lattice3) Idx(i, j, k int) int        { return i + l.Nx*(j+l.Ny*k) }
func (l Lattice3) At(i, j, k int) float64     { return l.Data[l.Idx(i, j, k)] }
func (l Lattice3) Set(i, j, k int, v float64) { l.Data[l.Idx(i, j, k)] = v }

func (l Lattice3) Fill(val float64) {
	for i := range l.Data {
		l.Data[i] = val
	}
}

func (l Lattice3) CopyFrom(src Lattice3) {
	copy(l.Data, src.Data)
}

// ScalarGrid3 stores one value per cell center on a structured 3D lattice.
type ScalarGrid3 struct {
	Nx, Ny, Nz int
	Dx, Dy, Dz float64
	Origin     geometry.Vector3D
	Data       Lattice3
}

func NewScalarGrid3(nx, ny, nz int, dx, dy, dz float64, origin geometry.Vector3D, initialValue ...float64) (g *ScalarGrid3) {
	g = &ScalarGrid3{
		Nx: nx, Ny: ny, Nz: nz,
		Dx: dx, Dy: dy, Dz: dz,
		Origin: origin,
		Data:   NewLattice3(nx, ny, nz),
	}
	if len(initialValue) != 0 {
		g.Data.Fill(initialValue[0])
	}
	return
}

func (g *ScalarGrid3) At(i, j, k int) float64       { return g.Data.At(i, j, k) }
func (g *ScalarGrid3) Set(i, j, k int, val float64) { g.Data.Set(i, j, k, val) }

func (g *ScalarGrid3) CellCenter(i, j, k int) geometry.Vector3D {
	return geometry.Vector3D{
		X: g.Origin.X + (float64(i)+0.5)*g.Dx,
		Y: g.Origin.Y + (float64(j)+0.5)*g.Dy,
		Z: g.Origin.Z + (float64(k)+0.5)*g.Dz,
	}
}

func (g *ScalarGrid3) Clone() (r *ScalarGrid3) {
	r = NewScalarGrid3(g.Nx, g.Ny, g.Nz, g.Dx, g.Dy, g.Dz, g.Origin)
	r.Data.CopyFrom(g.Data)
	return
}

// CollocatedVectorGrid3 stores all three components at cell centers.
type CollocatedVectorGrid3 struct {
	Nx, Ny, Nz int
	Dx, Dy, Dz float64
	Origin     geometry.Vector3D
	U, V, W    Lattice3
}

func NewCollocatedVectorGrid3(nx, ny, nz int, dx, dy, dz float64, origin geometry.Vector3D) (g *CollocatedVectorGrid3) {
	g = &CollocatedVectorGrid3{
		Nx: nx, Ny: ny, Nz: nz,
		Dx: dx, Dy: dy, Dz: dz,
		Origin: origin,
		U:      NewLattice3(nx, ny, nz),
		V:      NewLattice3(nx, ny, nz),
		W:      NewLattice3(nx, ny, nz),
	}
	return
}

func (g *CollocatedVectorGrid3) At(i, j, k int) geometry.Vector3D {
	return geometry.Vector3D{X: g.U.At(i, j, k), Y: g.V.At(i, j, k), Z: g.W.At(i, j, k)}
}

func (g *CollocatedVectorGrid3) Set(i, j, k int, val geometry.Vector3D) {
	g.U.Set(i, j, k, val.X)
	g.V.Set(i, j, k, val.Y)
	g.W.Set(i, j, k, val.Z)
}

func (g *CollocatedVectorGrid3) CellCenter(i, j, k int) geometry.Vector3D {
	return geometry.Vector3D{
		X: g.Origin.X + (float64(i)+0.5)*g.Dx,
		Y: g.Origin.Y + (float64(j)+0.5)*g.Dy,
		Z: g.Origin.Z + (float64(k)+0.5)*g.Dz,
	}
}

// FaceCenteredGrid3 is the 3D staggered MAC grid: U on x faces
// (Nx+1 x Ny x Nz), V on y faces (Nx x Ny+1 x Nz), W on z faces
// (Nx x Ny x Nz+1).
type FaceCenteredGrid3 struct {
	Nx, Ny, Nz int
	Dx, Dy, Dz float64
	Origin     geometry.Vector3D
	U, V, W    Lattice3
}

func NewFaceCenteredGrid3(nx, ny, nz int, dx, dy, dz float64, origin geometry.Vector3D) (g *FaceCenteredGrid3) {
	g = &FaceCenteredGrid3{
		Nx: nx, Ny: ny, Nz: nz,
		Dx: dx, Dy: dy, Dz: dz,
		Origin: origin,
		U:      NewLattice3(nx+1, ny, nz),
		V:      NewLattice3(nx, ny+1, nz),
		W:      NewLattice3(nx, ny, nz+1),
	}
	return
}

func (g *FaceCenteredGrid3) UPosition(i, j, k int) geometry.Vector3D {
	return geometry.Vector3D{
		X: g.Origin.X + float64(i)*g.Dx,
		Y: g.Origin.Y + (float64(j)+0.5)*g.Dy,
		Z: g.Origin.Z + (float64(k)+0.5)*g.Dz,
	}
}

func (g *FaceCenteredGrid3) VPosition(i, j, k int) geometry.Vector3D {
	return geometry.Vector3D{
		X: g.Origin.X + (float64(i)+0.5)*g.Dx,
		Y: g.Origin.Y + float64(j)*g.Dy,
		Z: g.Origin.Z + (float64(k)+0.5)*g.Dz,
	}
}

func (g *FaceCenteredGrid3) WPosition(i, j, k int) geometry.Vector3D {
	return geometry.Vector3D{
		X: g.Origin.X + (float64(i)+0.5)*g.Dx,
		Y: g.Origin.Y + (float64(j)+0.5)*g.Dy,
		Z: g.Origin.Z + float64(k)*g.Dz,
	}
}

func (g *FaceCenteredGrid3) CellCenter(i, j, k int) geometry.Vector3D {
	return geometry.Vector3D{
		X: g.Origin.X + (float64(i)+0.5)*g.Dx,
		Y: g.Origin.Y + (float64(j)+0.5)*g.Dy,
		Z: g.Origin.Z + (float64(k)+0.5)*g.Dz,
	}
}

// Divergence returns the discrete velocity divergence at cell (i,j,k).
func (g *FaceCenteredGrid3) Divergence(i, j, k int) float64 {
	return (g.U.At(i+1, j, k)-g.U.At(i, j, k))/g.Dx +
		(g.V.At(i, j+1, k)-g.V.At(i, j, k))/g.Dy +
		(g.W.At(i, j, k+1)-g.W.At(i, j, k))/g.Dz
}

func (g *FaceCenteredGrid3) Clone() (r *FaceCenteredGrid3) {
	r = NewFaceCenteredGrid3(g.Nx, g.Ny, g.Nz, g.Dx, g.Dy, g.Dz, g.Origin)
	r.U.CopyFrom(g.U)
	r.V.CopyFrom(g.V)
	r.W.CopyFrom(g.W)
	return
}

func (g *FaceCenteredGrid3) CopyFrom(src *FaceCenteredGrid3) {
	g.U.CopyFrom(src.U)
	g.V.CopyFrom(src.V)
	g.W.CopyFrom(src.W)
}
