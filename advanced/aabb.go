package advanced

// Axis aligned bounding box.
type AABB struct {
	Lower, Upper Point
}

func (b AABB) Center() Point {
	return Point{(b.Lower.X + b.Upper.X) / 2, (b.Lower.Y + b.Upper.Y) / 2}
}

func (b AABB) HalfDims() Point {
	return Point{(b.Upper.X - b.Lower.X) / 2, (b.Upper.Y - b.Lower.Y) / 2}
}

func (b AABB) Width() float64  { return b.Upper.X - b.Lower.X }
func (b AABB) Height() float64 { return b.Upper.Y - b.Lower.Y }

// Move the box so that its center is at c, keeping its dimensions.
func (b *AABB) SetCenter(c Point) {
	half := b.HalfDims()
	b.Lower = c.Sub(half)
	b.Upper = c.Add(half)
}

func (b *AABB) IncCenter(d Point) {
	b.Lower = b.Lower.Add(d)
	b.Upper = b.Upper.Add(d)
}

// Inclusive of the boundary.
func (b AABB) Contains(p Point) bool {
	return p.X >= b.Lower.X && p.X <= b.Upper.X && p.Y >= b.Lower.Y && p.Y <= b.Upper.Y
}

func (b AABB) Intersects(other AABB) bool {
	return b.Lower.X <= other.Upper.X && other.Lower.X <= b.Upper.X &&
		b.Lower.Y <= other.Upper.Y && other.Lower.Y <= b.Upper.Y
}
