package utils

import "math"

func Clamp(x, xmin, xmax float64) float64 {
	if x < xmin {
		return xmin
	}
	if x > xmax {
		return xmax
	}
	return x
}

func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180.
}
