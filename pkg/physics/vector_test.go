// pkg/physics/vector_test.go
package physics

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func TestVector2D_MoveTo(t *testing.T) {
	v := NewVector(1, 2, 3, 4)
	moved := v.MoveTo(10, 20)

	assert.Equal(t, NewVector(10, 20, 3, 4), moved)
	assert.Equal(t, NewVector(1, 2, 3, 4), v, "receiver must not change")
}

func TestVector2D_Arithmetic(t *testing.T) {
	tests := []struct {
		name     string
		result   Vector2D
		expected Vector2D
	}{
		{
			name:     "multiply_keeps_origin",
			result:   NewVector(1, 1, 3, -4).Multiply(2),
			expected: NewVector(1, 1, 6, -8),
		},
		{
			name:     "divide",
			result:   NewVector(0, 0, 6, 8).Divide(2),
			expected: NewVector(0, 0, 3, 4),
		},
		{
			name:     "opposite",
			result:   NewVector(5, 5, 3, -4).Opposite(),
			expected: NewVector(5, 5, -3, 4),
		},
		{
			name:     "add_keeps_receiver_origin",
			result:   NewVector(1, 2, 3, 4).Add(NewVector(9, 9, -1, 1)),
			expected: NewVector(1, 2, 2, 5),
		},
		{
			name:     "add_zero",
			result:   NewDirection(5, -3).Add(NewDirection(0, 0)),
			expected: NewDirection(5, -3),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.result.Equal(tt.expected), "got %v, expected %v", tt.result, tt.expected)
		})
	}
}

func TestVector2D_DivideByZero(t *testing.T) {
	v := NewDirection(1, -1).Divide(0)
	assert.True(t, math.IsInf(v.DX, 1))
	assert.True(t, math.IsInf(v.DY, -1))

	zero := NewDirection(0, 0).Divide(0)
	assert.True(t, math.IsNaN(zero.DX))
}

func TestVector2D_Size(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vector2D
		expected float64
	}{
		{"unit_x", NewDirection(1, 0), 1},
		{"zero", NewDirection(0, 0), 0},
		{"pythagorean_triple", NewDirection(3, 4), 5},
		{"negative_components", NewDirection(-3, -4), 5},
		{"origin_ignored", NewVector(100, 100, -3, 4), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.vector.Size(), tolerance)
		})
	}
}

func TestVector2D_UnitVector(t *testing.T) {
	u := NewVector(7, 7, 3, 4).UnitVector()
	assert.InDelta(t, 0.6, u.DX, tolerance)
	assert.InDelta(t, 0.8, u.DY, tolerance)
	assert.Equal(t, Point{X: 7, Y: 7}, u.Origin())

	degenerate := NewDirection(0, 0).UnitVector()
	assert.True(t, math.IsNaN(degenerate.DX), "zero vector has no direction")
}

func TestVector2D_AngleTo(t *testing.T) {
	tests := []struct {
		name     string
		a        Vector2D
		b        Vector2D
		expected float64
	}{
		{"same_direction", NewDirection(2, 0), NewDirection(5, 0), 0},
		{"perpendicular", NewDirection(1, 0), NewDirection(0, 3), math.Pi / 2},
		{"opposite", NewDirection(1, 1), NewDirection(-2, -2), math.Pi},
		{"forty_five", NewDirection(1, 0), NewDirection(1, 1), math.Pi / 4},
		{"origins_ignored", NewVector(50, -20, 0, 1), NewVector(-3, 8, -1, 0), math.Pi / 2},
		{"obtuse", NewDirection(1, 0), NewDirection(-1, 1), 3 * math.Pi / 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.a.AngleTo(tt.b), 1e-7)
		})
	}
}

func TestVector2D_AngleToZeroLength(t *testing.T) {
	assert.True(t, math.IsNaN(NewDirection(0, 0).AngleTo(NewDirection(1, 0))))
	assert.True(t, math.IsNaN(NewDirection(1, 0).AngleTo(NewDirection(0, 0))))
}

func TestVector2D_AngleSymmetry(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 1000; i++ {
		u := NewDirection(rng.Float64()*20-10, rng.Float64()*20-10)
		v := NewDirection(rng.Float64()*20-10, rng.Float64()*20-10)

		assert.Equal(t, u.AngleTo(v), v.AngleTo(u), "u=%v v=%v", u, v)
	}
}

func TestVector2D_Rotate(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vector2D
		angle    float64
		expected Vector2D
	}{
		{"quarter_turn", NewDirection(1, 0), math.Pi / 2, NewDirection(0, 1)},
		{"half_turn", NewDirection(1, 0), math.Pi, NewDirection(-1, 0)},
		{"from_lower_half", NewDirection(0, -2), math.Pi / 2, NewDirection(2, 0)},
		{"negative_angle", NewDirection(0, 1), -math.Pi / 2, NewDirection(1, 0)},
		{"full_turn", NewDirection(3, 4), 2 * math.Pi, NewDirection(3, 4)},
		{"keeps_origin", NewVector(5, 6, 1, 0), math.Pi / 2, NewVector(5, 6, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.vector.Rotate(tt.angle)
			assert.Equal(t, tt.expected.Origin(), result.Origin())
			assert.InDelta(t, tt.expected.DX, result.DX, 1e-7)
			assert.InDelta(t, tt.expected.DY, result.DY, 1e-7)
		})
	}
}

func TestVector2D_RotateZero(t *testing.T) {
	v := NewVector(1, 1, 0, 0)
	assert.Equal(t, v, v.Rotate(1.5))
}

func TestVector2D_RotatePreservesMagnitude(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 1000; i++ {
		v := NewDirection(rng.Float64()*200-100, rng.Float64()*200-100)
		alpha := rng.Float64()*8*math.Pi - 4*math.Pi

		rotated := v.Rotate(alpha)
		require.InDelta(t, v.Size(), rotated.Size(), tolerance, "v=%v alpha=%v", v, alpha)
	}
}

func TestVector2D_RotateComposition(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for i := 0; i < 500; i++ {
		v := NewDirection(rng.Float64()*20-10, rng.Float64()*20-10)
		a := rng.Float64()*2*math.Pi - math.Pi
		b := rng.Float64()*2*math.Pi - math.Pi

		stepwise := v.Rotate(a).Rotate(b)
		direct := v.Rotate(a + b)

		require.InDelta(t, direct.DX, stepwise.DX, 1e-6, "v=%v a=%v b=%v", v, a, b)
		require.InDelta(t, direct.DY, stepwise.DY, 1e-6, "v=%v a=%v b=%v", v, a, b)
	}
}

func TestVector2D_Intersection(t *testing.T) {
	tests := []struct {
		name     string
		a        Vector2D
		b        Vector2D
		expected Point
		ok       bool
	}{
		{
			name:     "x_shape",
			a:        Between(Point{0, 0}, Point{10, 10}),
			b:        Between(Point{0, 10}, Point{10, 0}),
			expected: Point{5, 5},
			ok:       true,
		},
		{
			name: "parallel",
			a:    Between(Point{0, 0}, Point{10, 0}),
			b:    Between(Point{0, 1}, Point{10, 1}),
		},
		{
			name:     "reversed_directions",
			a:        Between(Point{10, 10}, Point{0, 0}),
			b:        Between(Point{10, 0}, Point{0, 10}),
			expected: Point{5, 5},
			ok:       true,
		},
		{
			name:     "perpendicular_cross",
			a:        Between(Point{-5, 0}, Point{5, 0}),
			b:        Between(Point{0, -5}, Point{0, 5}),
			expected: Point{0, 0},
			ok:       true,
		},
		{
			name: "lines_cross_outside_first_segment",
			a:    Between(Point{0, 0}, Point{2, 0}),
			b:    Between(Point{5, -5}, Point{5, 5}),
		},
		{
			name: "lines_cross_outside_second_segment",
			a:    Between(Point{-10, 0}, Point{10, 0}),
			b:    Between(Point{0, 3}, Point{0, 8}),
		},
		{
			name:     "touching_at_endpoint",
			a:        Between(Point{0, 0}, Point{4, 0}),
			b:        Between(Point{4, 0}, Point{4, 4}),
			expected: Point{4, 0},
			ok:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := tt.a.Intersection(tt.b)
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.ok, tt.a.Intersects(tt.b))
			if tt.ok {
				assert.InDelta(t, tt.expected.X, p.X, tolerance)
				assert.InDelta(t, tt.expected.Y, p.Y, tolerance)
			}
		})
	}
}

func TestVector2D_Equal(t *testing.T) {
	v := NewVector(1, 2, 3, 4)
	assert.True(t, v.Equal(NewVector(1, 2, 3, 4)))
	assert.False(t, v.Equal(NewVector(1, 2, 3, 4.0000001)))
	assert.False(t, v.Equal(NewDirection(3, 4)), "origin is part of equality")
}

func TestVector2D_String(t *testing.T) {
	assert.Equal(t, "[1.000,-2.500](0.125,4.000)", NewVector(1, -2.5, 0.125, 4).String())
}

func TestPoint_Distance(t *testing.T) {
	assert.InDelta(t, 5, Point{0, 0}.Distance(Point{3, 4}), tolerance)
	assert.InDelta(t, 0, Point{2, 2}.Distance(Point{2, 2}), tolerance)
}
