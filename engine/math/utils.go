package math

import (
	m "math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Float is the scalar type every vector, matrix, quaternion and angle is built on.
type Float interface {
	constraints.Float
}

const (
	/** @brief An approximate representation of PI. */
	K_PI = m.Pi
	/** @brief An approximate representation of PI multiplied by 2. */
	K_PI_2 = 2.0 * K_PI
	/** @brief An approximate representation of PI divided by 2. */
	K_HALF_PI = 0.5 * K_PI
	/** @brief A multiplier used to convert degrees to radians. */
	K_DEG2RAD_MULTIPLIER = K_PI / 180.0
	/** @brief A multiplier used to convert radians to degrees. */
	K_RAD2DEG_MULTIPLIER = 180.0 / K_PI
	/** @brief Smallest positive number where 1.0 + FLOAT_EPSILON != 0 */
	K_FLOAT_EPSILON = 1.192092896e-07
)

// Clamp returns the value `f` clamped to the range [low, high].
// It works for any numeric type (integers and floats).
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

// The helpers below take the float32 fast path through chewxy/math32 and
// fall back to the standard library for everything else.

func ksqrt[T Float](x T) T {
	if f, ok := any(x).(float32); ok {
		return T(math32.Sqrt(f))
	}
	return T(m.Sqrt(float64(x)))
}

func ksin[T Float](x T) T {
	if f, ok := any(x).(float32); ok {
		return T(math32.Sin(f))
	}
	return T(m.Sin(float64(x)))
}

func kcos[T Float](x T) T {
	if f, ok := any(x).(float32); ok {
		return T(math32.Cos(f))
	}
	return T(m.Cos(float64(x)))
}

func ktan[T Float](x T) T {
	if f, ok := any(x).(float32); ok {
		return T(math32.Tan(f))
	}
	return T(m.Tan(float64(x)))
}

func kacos[T Float](x T) T {
	if f, ok := any(x).(float32); ok {
		return T(math32.Acos(f))
	}
	return T(m.Acos(float64(x)))
}

func kabs[T Float](x T) T {
	if f, ok := any(x).(float32); ok {
		return T(math32.Abs(f))
	}
	return T(m.Abs(float64(x)))
}

// RangeConvert maps value from [oldMin, oldMax] into [newMin, newMax].
func RangeConvert[T Float](value, oldMin, oldMax, newMin, newMax T) T {
	return (((value - oldMin) * (newMax - newMin)) / (oldMax - oldMin)) + newMin
}
