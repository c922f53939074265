package grid2D

import (
	"math"

	"github.com/zhangxiao6776/fluid-engine-dev/geometry"
)

// ScalarField2 samples a scalar quantity at an arbitrary physical position.
// Signed distance fields follow the usual convention: negative inside the
// region, positive outside.
type ScalarField2 interface {
	Sample(x geometry.Vector2D) float64
}

// VectorField2 samples a vector quantity at an arbitrary physical position.
type VectorField2 interface {
	Sample(x geometry.Vector2D) geometry.Vector2D
}

// ConstantScalarField2 returns the same value everywhere.
type ConstantScalarField2 struct {
	Value float64
}

func (f ConstantScalarField2) Sample(geometry.Vector2D) float64 { return f.Value }

// Sentinel fields backing the default SDF arguments: no solid anywhere and
// fluid everywhere. A nil SDF passed to any solver resolves to these.
var (
	NoBoundarySdf2 ScalarField2 = ConstantScalarField2{math.MaxFloat64}
	AllFluidSdf2   ScalarField2 = ConstantScalarField2{-math.MaxFloat64}
)

func resolveSdfs2(boundarySdf, fluidSdf ScalarField2) (ScalarField2, ScalarField2) {
	if boundarySdf == nil {
		boundarySdf = NoBoundarySdf2
	}
	if fluidSdf == nil {
		fluidSdf = AllFluidSdf2
	}
	return boundarySdf, fluidSdf
}
