package particles

import (
	"math"

	"github.com/zhangxiao6776/fluid-engine-dev/geometry"
)

// PointGenerator2 fills a bounded region with candidate points at a target
// spacing. The callback returns false to stop early.
type PointGenerator2 interface {
	ForEach(bounds geometry.BoundingBox2, spacing float64, callback func(pt geometry.Vector2D) bool)
}

// TrianglePointGenerator2 lays points on a regular triangular lattice: rows
// spacing*sqrt(3)/2 apart, every other row shifted by half a spacing.
type TrianglePointGenerator2 struct{}

func (TrianglePointGenerator2) ForEach(bounds geometry.BoundingBox2, spacing float64, callback func(pt geometry.Vector2D) bool) {
	var (
		halfSpacing = 0.5 * spacing
		ySpacing    = spacing * math.Sqrt(3.) / 2.
		shifted     bool
	)
	for y := bounds.Lower.Y; y <= bounds.Upper.Y; y += ySpacing {
		var offset float64
		if shifted {
			offset = halfSpacing
		}
		for x := bounds.Lower.X + offset; x <= bounds.Upper.X; x += spacing {
			if !callback(geometry.Vector2D{X: x, Y: y}) {
				return
			}
		}
		shifted = !shifted
	}
}

// PointGenerator3 is the 3D counterpart.
type PointGenerator3 interface {
	ForEach(bounds geometry.BoundingBox3, spacing float64, callback func(pt geometry.Vector3D) bool)
}

// BccLatticePointGenerator3 lays points on a body-centered cubic lattice,
// the densest simple packing for particle seeding.
type BccLatticePointGenerator3 struct{}

func (BccLatticePointGenerator3) ForEach(bounds geometry.BoundingBox3, spacing float64, callback func(pt geometry.Vector3D) bool) {
	var (
		halfSpacing = 0.5 * spacing
		shifted     bool
	)
	for z := bounds.Lower.Z; z <= bounds.Upper.Z; z += halfSpacing {
		var offset float64
		if shifted {
			offset = halfSpacing
		}
		for y := bounds.Lower.Y + offset; y <= bounds.Upper.Y; y += spacing {
			for x := bounds.Lower.X + offset; x <= bounds.Upper.X; x += spacing {
				if !callback(geometry.Vector3D{X: x, Y: y, Z: z}) {
					return
				}
			}
		}
		shifted = !shifted
	}
}
