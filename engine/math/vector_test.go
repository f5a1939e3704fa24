package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVec3Dot(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec3[float64]
		expected float64
	}{
		{"orthogonal", NewVec3(0.0, 1, 0), NewVec3(0.0, 0, 5), 0},
		{"parallel", NewVec3(1.0, 2, 3), NewVec3(2.0, 4, 6), 28},
		{"opposite", NewVec3(1.0, 0, 0), NewVec3(-3.0, 0, 0), -3},
		{"mixed", NewVec3(1.5, -2, 0.5), NewVec3(4.0, 0.25, -8), 1.5},
	}

	for _, c := range tests {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, c.a.Dot(c.b))
			assert.Equal(t, c.expected, c.b.Dot(c.a))
		})
	}
}

func TestVec3Cross(t *testing.T) {
	x := NewVec3Right[float64]()
	y := NewVec3Up[float64]()
	z := NewVec3Back[float64]()

	assert.Equal(t, z, x.Cross(y))
	assert.Equal(t, x, y.Cross(z))
	assert.Equal(t, y, z.Cross(x))
	assert.Equal(t, z.Negate(), y.Cross(x))

	// parallel vectors have a zero cross product
	a := NewVec3(1.0, 2, 3)
	assert.Equal(t, NewVec3Zero[float64](), a.Cross(a.MulScalar(-2.5)))

	c := NewVec3(1.0, 2, 3).Cross(NewVec3(-4.0, 0.5, 2))
	assert.InDelta(t, 0.0, c.Dot(NewVec3(1.0, 2, 3)), 1e-12)
	assert.InDelta(t, 0.0, c.Dot(NewVec3(-4.0, 0.5, 2)), 1e-12)
}

func TestVectorNormalize(t *testing.T) {
	v2 := NewVec2(3.0, 4)
	assert.Equal(t, 5.0, v2.Length())
	assert.Equal(t, 25.0, v2.LengthSquared())
	n2 := v2.Normalized()
	assert.InDelta(t, 1.0, n2.Length(), 1e-12)
	assert.Equal(t, NewVec2(3.0, 4), v2, "Normalized leaves the receiver alone")
	v2.Normalize()
	assert.Equal(t, n2, v2)

	v3 := NewVec3(float32(1), -2, 2)
	assert.Equal(t, float32(3), v3.Length())
	v3.Normalize()
	assert.InDelta(t, 1.0, float64(v3.Length()), 1e-6)
	assert.True(t, v3.Compare(NewVec3(float32(1)/3, -float32(2)/3, float32(2)/3), 1e-6))

	v4 := NewVec4(1.0, 1, 1, 1)
	assert.Equal(t, 2.0, v4.Length())
	assert.Equal(t, NewVec4Scalar(0.5), v4.Normalized())
}

func TestVectorArithmetic(t *testing.T) {
	a := NewVec3(1.0, 2, 3)
	b := NewVec3(4.0, -5, 6)

	assert.Equal(t, NewVec3(5.0, -3, 9), a.Add(b))
	assert.Equal(t, NewVec3(-3.0, 7, -3), a.Sub(b))
	assert.Equal(t, NewVec3(4.0, -10, 18), a.Mul(b))
	assert.Equal(t, NewVec3(0.25, -0.4, 0.5), a.Div(b))
	assert.Equal(t, NewVec3(2.0, 4, 6), a.MulScalar(2))
	assert.Equal(t, NewVec3(0.5, 1, 1.5), a.DivScalar(2))
	assert.Equal(t, NewVec3(-1.0, -2, -3), a.Negate())
	assert.InDelta(t, 5.0, NewVec3(0.0, 0, 0).Distance(NewVec3(3.0, 0, 4)), 1e-12)

	v2 := NewVec2(1.0, 2)
	assert.Equal(t, NewVec2(4.0, 0), v2.Add(NewVec2(3.0, -2)))
	assert.Equal(t, NewVec2(3.0, 8), v2.Mul(NewVec2(3.0, 4)))
	assert.Equal(t, 11.0, v2.Dot(NewVec2(3.0, 4)))
	assert.InDelta(t, 5.0, NewVec2(1.0, 1).Distance(NewVec2(4.0, 5)), 1e-12)

	v4 := NewVec4(1.0, 2, 3, 4)
	assert.Equal(t, NewVec4Scalar(5.0), v4.Add(NewVec4(4.0, 3, 2, 1)))
	assert.Equal(t, NewVec4Zero[float64](), v4.Sub(v4))
	assert.Equal(t, 30.0, v4.Dot(v4))
	assert.Equal(t, NewVec4One[float64](), v4.Div(v4))
}

func TestVectorBroadcast(t *testing.T) {
	assert.Equal(t, Vec2[float64]{7, 7}, NewVec2Scalar(7.0))
	assert.Equal(t, Vec3[float32]{-1, -1, -1}, NewVec3Scalar(float32(-1)))
	assert.Equal(t, Vec4[float64]{2.5, 2.5, 2.5, 2.5}, NewVec4Scalar(2.5))
	assert.Equal(t, NewVec3Scalar(1.0), NewVec3One[float64]())

	var zero Vec3f
	assert.Equal(t, NewVec3Zero[float32](), zero)
}

func TestVectorIndexedAccess(t *testing.T) {
	v := NewVec4(1.0, 2, 3, 4)
	for i := 0; i < 4; i++ {
		assert.Equal(t, float64(i+1), v.At(i))
	}
	v.SetAt(2, -9)
	assert.Equal(t, -9.0, v.Z)
	assert.Panics(t, func() { v.At(4) })

	v3 := NewVec3(1.0, 2, 3)
	v3.SetAt(0, 10)
	assert.Equal(t, NewVec3(10.0, 2, 3), v3)
	assert.Panics(t, func() { v3.SetAt(3, 0) })

	v2 := NewVec2(5.0, 6)
	assert.Equal(t, 6.0, v2.At(1))
	v2.SetAt(1, 0)
	assert.Equal(t, NewVec2(5.0, 0), v2)
}

func TestVectorConversions(t *testing.T) {
	v := NewVec3(1.0, 2, 3)
	assert.Equal(t, NewVec4(1.0, 2, 3, 1), v.ToVec4(1))
	assert.Equal(t, NewVec4(1.0, 2, 3, 0), NewVec4FromVec3(v, 0))
	assert.Equal(t, v, NewVec4(1.0, 2, 3, 9).ToVec3())
	assert.Equal(t, v, NewVec3FromVec4(NewVec4(1.0, 2, 3, 9)))

	assert.Equal(t, NewVec3(0.0, 0, -1), NewVec3Forward[float64]())
	assert.Equal(t, NewVec3Forward[float64]().Negate(), NewVec3Back[float64]())
	assert.Equal(t, NewVec3Up[float64]().Negate(), NewVec3Down[float64]())
	assert.Equal(t, NewVec3Right[float64]().Negate(), NewVec3Left[float64]())
}

func TestVectorCompare(t *testing.T) {
	a := NewVec3(1.0, 2, 3)
	b := a.Add(NewVec3(1e-9, -1e-9, 0))

	require.False(t, a.Equal(b))
	assert.True(t, a.Compare(b, 1e-8))
	assert.False(t, a.Compare(b, 1e-10))
	assert.True(t, a.Equal(NewVec3(1.0, 2, 3)))

	assert.True(t, NewVec2(1.0, 1).Compare(NewVec2(1.05, 0.95), 0.1))
	assert.False(t, NewVec4(0.0, 0, 0, 0).Compare(NewVec4(0.0, 0, 0, 1), 0.5))
}
