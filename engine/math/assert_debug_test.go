//go:build mathdebug

package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugAssertions(t *testing.T) {
	assert.Panics(t, func() {
		v := NewVec3Zero[float32]()
		v.Normalize()
	})
	assert.Panics(t, func() {
		var q Quatf
		q.ToMat4()
	})
	assert.Panics(t, func() {
		var q Quaternion[float64]
		q.Inverse()
	})
	assert.NotPanics(t, func() {
		v := NewVec3(3.0, 4, 0)
		v.Normalize()
	})
}
