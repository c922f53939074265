package geometry

type BoundingBox2 struct {
	Lower, Upper Vector2D
}

func NewBoundingBox2(lower, upper Vector2D) (box BoundingBox2) {
	box = BoundingBox2{lower, upper}
	if box.Lower.X > box.Upper.X {
		box.Lower.X, box.Upper.X = box.Upper.X, box.Lower.X
	}
	if box.Lower.Y > box.Upper.Y {
		box.Lower.Y, box.Upper.Y = box.Upper.Y, box.Lower.Y
	}
	return
}

func (b BoundingBox2) Width() float64  { return b.Upper.X - b.Lower.X }
func (b BoundingBox2) Height() float64 { return b.Upper.Y - b.Lower.Y }

func (b BoundingBox2) Contains(p Vector2D) bool {
	return p.X >= b.Lower.X && p.X <= b.Upper.X &&
		p.Y >= b.Lower.Y && p.Y <= b.Upper.Y
}

type BoundingBox3 struct {
	Lower, Upper Vector3D
}

func NewBoundingBox3(lower, upper Vector3D) (box BoundingBox3) {
	box = BoundingBox3{lower, upper}
	if box.Lower.X > box.Upper.X {
		box.Lower.X, box.Upper.X = box.Upper.X, box.Lower.X
	}
	if box.Lower.Y > box.Upper.Y {
		box.Lower.Y, box.Upper.Y = box.Upper.Y, box.Lower.Y
	}
	if box.Lower.Z > box.Upper.Z {
		box.Lower.Z, box.Upper.Z = box.Upper.Z, box.Lower.Z
	}
	return
}

func (b BoundingBox3) Width() float64  { return b.Upper.X - b.Lower.X }
func (b BoundingBox3) Height() float64 { return b.Upper.Y - b.Lower.Y }
func (b BoundingBox3) Depth() float64  { return b.Upper.Z - b.Lower.Z }

func (b BoundingBox3) Contains(p Vector3D) bool {
	return p.X >= b.Lower.X && p.X <= b.Upper.X &&
		p.Y >= b.Lower.Y && p.Y <= b.Upper.Y &&
		p.Z >= b.Lower.Z && p.Z <= b.Upper.Z
}
