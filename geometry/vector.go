package geometry

import "math"

type Vector2D struct {
	X, Y float64
}

func (v Vector2D) Plus(w Vector2D) Vector2D  { return Vector2D{v.X + w.X, v.Y + w.Y} }
func (v Vector2D) Minus(w Vector2D) Vector2D { return Vector2D{v.X - w.X, v.Y - w.Y} }
func (v Vector2D) Scale(a float64) Vector2D  { return Vector2D{a * v.X, a * v.Y} }
func (v Vector2D) Dot(w Vector2D) float64    { return v.X*w.X + v.Y*w.Y }

func (v Vector2D) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vector2D) Normalized() Vector2D {
	var (
		l = v.Length()
	)
	if l == 0 {
		return Vector2D{}
	}
	return v.Scale(1. / l)
}

// Rotated returns v rotated counter-clockwise by theta radians.
func (v Vector2D) Rotated(theta float64) Vector2D {
	var (
		s, c = math.Sin(theta), math.Cos(theta)
	)
	return Vector2D{c*v.X - s*v.Y, s*v.X + c*v.Y}
}

type Vector3D struct {
	X, Y, Z float64
}

func (v Vector3D) Plus(w Vector3D) Vector3D  { return Vector3D{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }
func (v Vector3D) Minus(w Vector3D) Vector3D { return Vector3D{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }
func (v Vector3D) Scale(a float64) Vector3D  { return Vector3D{a * v.X, a * v.Y, a * v.Z} }
func (v Vector3D) Dot(w Vector3D) float64    { return v.X*w.X + v.Y*w.Y + v.Z*w.Z }

func (v Vector3D) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func (v Vector3D) Normalized() Vector3D {
	var (
		l = v.Length()
	)
	if l == 0 {
		return Vector3D{}
	}
	return v.Scale(1. / l)
}
