package types

//go:generate stringer -type=MarkerFlag

// MarkerFlag classifies a single grid cell for the marker aware solvers.
// Boundary takes precedence over Fluid when both SDFs claim a cell.
type MarkerFlag uint8

const (
	M_Air MarkerFlag = iota
	M_Fluid
	M_Boundary
)
