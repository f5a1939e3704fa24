package math

import (
	m "math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDegreeToRadian(t *testing.T) {
	tests := []struct {
		name     string
		degrees  float64
		expected float64
	}{
		{"zero", 0, 0},
		{"right angle", 90, 1.5707963268},
		{"half turn", 180, m.Pi},
		{"full turn", 360, 2 * m.Pi},
		{"no wrap-around", 720, 4 * m.Pi},
		{"negative", -90, -m.Pi / 2},
	}

	for _, c := range tests {
		t.Run(c.name, func(t *testing.T) {
			r := Deg(c.degrees).ToRadian()
			assert.InDelta(t, c.expected, r.Value(), 1e-10)
			assert.InDelta(t, c.degrees, r.ToDegree().Value(), 1e-9)
			assert.InDelta(t, c.expected, DegToRad(c.degrees), 1e-10)
		})
	}
}

func TestRadianToDegree(t *testing.T) {
	assert.InDelta(t, 180.0, Rad(m.Pi).ToDegree().Value(), 1e-12)
	assert.InDelta(t, 57.2957795131, Rad(1.0).ToDegree().Value(), 1e-9)
	assert.InDelta(t, -30.0, RadToDeg(-m.Pi/6), 1e-12)

	// float32 goes through the same conversion.
	assert.InDelta(t, float64(m.Pi), float64(Deg(float32(180)).ToRadian().Value()), 1e-6)
	assert.InDelta(t, 90.0, float64(Rad(float32(m.Pi/2)).ToDegree().Value()), 1e-4)
}

func TestAngleValueIsStoredUnchanged(t *testing.T) {
	assert.Equal(t, 45.0, Deg(45.0).Value())
	assert.Equal(t, float32(-1.25), Rad(float32(-1.25)).Value())

	var zero Degreef
	assert.Equal(t, float32(0), zero.Value())
}

func TestAngleArithmetic(t *testing.T) {
	d := Deg(30.0)
	assert.Equal(t, Deg(75.0), d.Add(Deg(45.0)))
	assert.Equal(t, Deg(-15.0), d.Sub(Deg(45.0)))
	assert.Equal(t, Deg(90.0), d.Scale(3))
	assert.Equal(t, Deg(30.0), d, "value operations leave the receiver alone")

	assert.Equal(t, Deg(40.0), d.SetAdd(Deg(10.0)))
	assert.Equal(t, Deg(40.0), d)
	assert.Equal(t, Deg(-5.0), d.SetSub(Deg(45.0)))
	assert.Equal(t, -5.0, d.Value())

	r := Rad(1.0)
	assert.Equal(t, Rad(1.5), r.Add(Rad(0.5)))
	assert.Equal(t, Rad(0.25), r.Sub(Rad(0.75)))
	assert.Equal(t, Rad(-2.0), r.Scale(-2))
	r.SetAdd(Rad(1.0))
	r.SetSub(Rad(0.5))
	assert.Equal(t, 1.5, r.Value())
}

func TestClampAndRangeConvert(t *testing.T) {
	assert.Equal(t, 5, Clamp(9, 0, 5))
	assert.Equal(t, -1.0, Clamp(-3.0, -1, 1))
	assert.Equal(t, float32(0.5), Clamp(float32(0.5), 0, 1))

	assert.InDelta(t, 0.5, RangeConvert(5.0, 0, 10, 0, 1), 1e-12)
	assert.InDelta(t, -1.0, RangeConvert(0.0, 0, 100, -1, 1), 1e-12)
}
