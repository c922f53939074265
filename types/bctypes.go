package types

//go:generate stringer -type=FrictionFlag

// FrictionFlag selects the tangential velocity policy applied at solid
// boundaries by a boundary condition solver.
type FrictionFlag uint8

const (
	F_FreeSlip FrictionFlag = iota
	F_NoSlip
)

var FrictionNameMap = map[string]FrictionFlag{
	"freeslip": F_FreeSlip,
	"free":     F_FreeSlip,
	"noslip":   F_NoSlip,
}
