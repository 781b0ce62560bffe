// pkg/physics/vector.go
package physics

import (
	"fmt"
	"math"
)

// Point is a position on the play field
type Point struct {
	X float64
	Y float64
}

// Distance returns the Euclidean distance between two points
func (p Point) Distance(other Point) float64 {
	return Between(p, other).Size()
}

// Vector2D is a directed segment: an origin (X0, Y0) and a direction (DX, DY).
// Free vectors such as a ball's motion leave the origin at zero; bound
// vectors such as a center line carry a meaningful origin.
type Vector2D struct {
	X0 float64
	Y0 float64
	DX float64
	DY float64
}

// NewVector creates a vector with the given origin and direction
func NewVector(x0, y0, dx, dy float64) Vector2D {
	return Vector2D{X0: x0, Y0: y0, DX: dx, DY: dy}
}

// NewDirection creates a free vector anchored at (0,0)
func NewDirection(dx, dy float64) Vector2D {
	return Vector2D{DX: dx, DY: dy}
}

// Between creates the vector pointing from a to b, anchored at a
func Between(a, b Point) Vector2D {
	return Vector2D{X0: a.X, Y0: a.Y, DX: b.X - a.X, DY: b.Y - a.Y}
}

// Origin returns the start point of the segment
func (v Vector2D) Origin() Point {
	return Point{X: v.X0, Y: v.Y0}
}

// End returns the end point of the segment
func (v Vector2D) End() Point {
	return Point{X: v.X0 + v.DX, Y: v.Y0 + v.DY}
}

// MoveTo returns the same direction anchored at a new origin
func (v Vector2D) MoveTo(x, y float64) Vector2D {
	return Vector2D{X0: x, Y0: y, DX: v.DX, DY: v.DY}
}

// Multiply scales the direction by r
func (v Vector2D) Multiply(r float64) Vector2D {
	return Vector2D{X0: v.X0, Y0: v.Y0, DX: v.DX * r, DY: v.DY * r}
}

// Divide scales the direction by 1/r. Dividing by zero yields infinities or NaN.
func (v Vector2D) Divide(r float64) Vector2D {
	return v.Multiply(1.0 / r)
}

// Opposite returns the vector with a reversed direction
func (v Vector2D) Opposite() Vector2D {
	return v.Multiply(-1.0)
}

// Add sums the directions, keeping the receiver's origin
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{X0: v.X0, Y0: v.Y0, DX: v.DX + other.DX, DY: v.DY + other.DY}
}

// Size returns the magnitude of the direction
func (v Vector2D) Size() float64 {
	return math.Sqrt(v.DX*v.DX + v.DY*v.DY)
}

// UnitVector returns the direction scaled to length 1.
// A zero-length vector has no direction and yields NaN components.
func (v Vector2D) UnitVector() Vector2D {
	return v.Divide(v.Size())
}

// AngleTo returns the angle in [0, pi] between the two directions, derived
// with the law of cosines. Origins are ignored. The result is NaN when
// either vector has zero length.
func (v Vector2D) AngleTo(other Vector2D) float64 {
	a := v.Size()
	b := other.Size()
	c := NewDirection(v.DX-other.DX, v.DY-other.DY).Size()

	cos := (a*a + b*b - c*c) / (2 * a * b)

	// rounding can push nearly parallel directions just past +-1
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos)
}

// Rotate turns the direction counter-clockwise by alpha radians about the
// origin. The magnitude is preserved; a zero-length vector is returned as is.
func (v Vector2D) Rotate(alpha float64) Vector2D {
	r := v.Size()
	if r == 0 {
		return v
	}

	angle := v.AngleTo(NewDirection(r, 0))
	if v.DY < 0 {
		angle = 2*math.Pi - angle
	}
	angle += alpha

	return Vector2D{X0: v.X0, Y0: v.Y0, DX: r * math.Cos(angle), DY: r * math.Sin(angle)}
}

// Intersects reports whether the two segments cross
func (v Vector2D) Intersects(other Vector2D) bool {
	_, ok := v.Intersection(other)
	return ok
}

// Intersection returns the crossing point of the two lines when it lies
// within both segments. Each segment's extent is checked on its dominant axis.
func (v Vector2D) Intersection(other Vector2D) (Point, bool) {
	x1, y1 := v.X0, v.Y0
	x2, y2 := v.X0+v.DX, v.Y0+v.DY
	x3, y3 := other.X0, other.Y0
	x4, y4 := other.X0+other.DX, other.Y0+other.DY

	d := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if d == 0 {
		return Point{}, false
	}

	x := ((x3-x4)*(x1*y2-y1*x2) - (x1-x2)*(x3*y4-y3*x4)) / d
	y := ((y3-y4)*(x1*y2-y1*x2) - (y1-y2)*(x3*y4-y3*x4)) / d

	p := Point{X: x, Y: y}
	if !v.spans(p) || !other.spans(p) {
		return Point{}, false
	}
	return p, true
}

// spans checks p against the segment's range on its dominant axis
func (v Vector2D) spans(p Point) bool {
	if math.Abs(v.DX) > math.Abs(v.DY) {
		return within(p.X, v.X0, v.X0+v.DX)
	}
	return within(p.Y, v.Y0, v.Y0+v.DY)
}

func within(value, a, b float64) bool {
	if a > b {
		a, b = b, a
	}
	return value >= a && value <= b
}

// Equal compares all four components exactly
func (v Vector2D) Equal(other Vector2D) bool {
	return v == other
}

func (v Vector2D) String() string {
	return fmt.Sprintf("[%.3f,%.3f](%.3f,%.3f)", v.X0, v.Y0, v.DX, v.DY)
}
