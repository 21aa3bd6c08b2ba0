package advanced

import "math"

func (s Segment) Direction() Point {
	return s.End.Sub(s.Start)
}

func (s Segment) Length() float64 {
	return s.Direction().Length()
}

// Point at parameter t, where 0 is Start and 1 is End.
func (s Segment) At(t float64) Point {
	return s.Start.Add(s.Direction().Scale(t))
}

// Proper crossing test. Returns the crossing point and the parameters along s
// and other. Segments that merely touch (an endpoint lying on the other
// segment, or a shared endpoint) and collinear overlaps are not crossings.
func (s Segment) Crossing(other Segment) (at Point, t, u float64, ok bool) {
	r := s.Direction()
	q := other.Direction()
	denominator := r.Cross(q)
	// Parallel, including collinear overlap
	if math.Abs(denominator) <= Tolerance*r.Length()*q.Length() {
		return Point{}, 0, 0, false
	}

	offset := other.Start.Sub(s.Start)
	t = offset.Cross(q) / denominator
	u = offset.Cross(r) / denominator

	// Parameters are compared against a tolerance scaled to the segment length,
	// so that touching endpoints are never reported as crossings.
	tEps := Tolerance / math.Max(r.Length(), Tolerance)
	uEps := Tolerance / math.Max(q.Length(), Tolerance)
	if t <= tEps || t >= 1-tEps || u <= uEps || u >= 1-uEps {
		return Point{}, 0, 0, false
	}
	return s.At(t), t, u, true
}

// Does p lie on the segment (endpoints included)?
func (s Segment) ContainsPoint(p Point) bool {
	d := s.Direction()
	length := d.Length()
	if length < Tolerance {
		return p.Equals(s.Start)
	}
	if math.Abs(d.Cross(p.Sub(s.Start)))/length > Tolerance {
		return false
	}
	dot := p.Sub(s.Start).Dot(d)
	return dot >= -Tolerance*length && dot <= length*length+Tolerance*length
}

// Any contact at all between the two segments, including touching endpoints
// and collinear overlap.
func (s Segment) Touches(other Segment) bool {
	if _, _, _, ok := s.Crossing(other); ok {
		return true
	}
	return s.ContainsPoint(other.Start) || s.ContainsPoint(other.End) ||
		other.ContainsPoint(s.Start) || other.ContainsPoint(s.End)
}
