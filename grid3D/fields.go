package grid3D

import (
	"math"

	"github.com/zhangxiao6776/fluid-engine-dev/geometry"
)

// ScalarField3 samples a scalar quantity at an arbitrary physical position.
type ScalarField3 interface {
	Sample(x geometry.Vector3D) float64
}

// VectorField3 samples a vector quantity at an arbitrary physical position.
type VectorField3 interface {
	Sample(x geometry.Vector3D) geometry.Vector3D
}

// ConstantScalarField3 returns the same value everywhere.
type ConstantScalarField3 struct {
	Value float64
}

func (f ConstantScalarField3) Sample(geometry.Vector3D) float64 { return f.Value }

// Sentinel fields backing the default SDF arguments, mirroring grid2D.
var (
	NoBoundarySdf3 ScalarField3 = ConstantScalarField3{math.MaxFloat64}
	AllFluidSdf3   ScalarField3 = ConstantScalarField3{-math.MaxFloat64}
)

func resolveSdfs3(boundarySdf, fluidSdf ScalarField3) (ScalarField3, ScalarField3) {
	if boundarySdf == nil {
		boundarySdf = NoBoundarySdf3
	}
	if fluidSdf == nil {
		fluidSdf = AllFluidSdf3
	}
	return boundarySdf, fluidSdf
}
