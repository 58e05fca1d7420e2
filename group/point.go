package group

import "github.com/curvemath/secp256k1/field"

// Point represents a point on the curve in affine coordinates, or the point
// at infinity. Points are immutable: every group operation returns a fresh
// point and never modifies its operands.
type Point struct {
	x, y     *field.FieldVal
	infinity bool
}

// NewPoint creates an affine point with copies of the given coordinates.
func NewPoint(x, y *field.FieldVal) *Point {
	return &Point{
		x: field.Zero().Set(x),
		y: field.Zero().Set(y),
	}
}

// Infinity returns the point at infinity, the group identity.
func Infinity() *Point {
	return &Point{
		x:        field.Zero(),
		y:        field.Zero(),
		infinity: true,
	}
}

// IsInfinity returns true if the point is the point at infinity.
func (p *Point) IsInfinity() bool {
	return p.infinity
}

// X returns a copy of the x-coordinate. The x-coordinate of the point at
// infinity is zero by convention.
func (p *Point) X() *field.FieldVal {
	if p.infinity {
		return field.Zero()
	}
	return field.Zero().Set(p.x)
}

// Y returns a copy of the y-coordinate.
func (p *Point) Y() *field.FieldVal {
	if p.infinity {
		return field.Zero()
	}
	return field.Zero().Set(p.y)
}

// Copy returns a fresh copy of the point.
func (p *Point) Copy() *Point {
	if p.infinity {
		return Infinity()
	}
	return NewPoint(p.x, p.y)
}

// Equal returns true if the two points are equal.
func (p *Point) Equal(other *Point) bool {
	if p.infinity || other.infinity {
		return p.infinity == other.infinity
	}
	return p.x.Equal(other.x) && p.y.Equal(other.y)
}

// Negate returns the point with the y-coordinate negated mod p, so that
// p + p.Negate() is the point at infinity.
func (p *Point) Negate() *Point {
	if p.infinity {
		return Infinity()
	}
	return &Point{
		x: field.Zero().Set(p.x),
		y: field.Zero().Negate(p.y),
	}
}

// IsEven returns true if the y-coordinate is even. The point at infinity
// counts as even.
func (p *Point) IsEven() bool {
	if p.infinity {
		return true
	}
	return !p.y.IsOdd()
}
