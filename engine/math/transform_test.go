package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransform(t *testing.T) {
	tr := NewTransform[float32]()
	identity := NewMat4Identity[float32]()

	assert.Equal(t, identity, tr.Scaling())
	assert.Equal(t, identity, tr.Rotation())
	assert.Equal(t, identity, tr.Translation())
	assert.Equal(t, identity, tr.Final())
	assert.False(t, tr.isDirty)
	assert.Nil(t, tr.Parent)
}

func TestTransformFinal(t *testing.T) {
	tr := NewTransform[float64]()
	tr.SetScaling(2, 2, 2)
	tr.SetRotation(Deg(0.0), Deg(0.0), Deg(90.0))
	tr.SetTranslation(1, 2, 3)
	require.True(t, tr.isDirty)

	expected := tr.Translation().Mul(tr.Rotation()).Mul(tr.Scaling())
	assert.Equal(t, expected, tr.Final())
	assert.False(t, tr.isDirty)

	// scale first, then rotate, then translate
	p := NewVec3(1.0, 0, 0).Transform(tr.Final())
	assert.True(t, p.Compare(NewVec3(1.0, 4, 3), 1e-12), "got %v", p)
}

func TestTransformFinalIsCached(t *testing.T) {
	tr := NewTransform[float64]()
	tr.SetTranslation(5, 0, 0)
	first := tr.Final()

	// Poke the cache directly: a clean transform must hand it back untouched.
	sentinel := NewMat4Diagonal(42.0)
	tr.final = sentinel
	assert.Equal(t, sentinel, tr.Final())
	assert.Equal(t, sentinel, tr.Final())

	tr.SetTranslation(5, 0, 0)
	assert.Equal(t, first, tr.Final())
}

func TestTransformSettersMarkDirty(t *testing.T) {
	tests := []struct {
		name string
		set  func(tr *Transform[float64])
	}{
		{"scaling", func(tr *Transform[float64]) { tr.SetScaling(1, 2, 3) }},
		{"scaling matrix", func(tr *Transform[float64]) { tr.SetScalingMatrix(NewMat4Scale(NewVec3(1.0, 2, 3))) }},
		{"rotation", func(tr *Transform[float64]) { tr.SetRotation(Deg(10.0), Deg(20.0), Deg(30.0)) }},
		{"rotation matrix", func(tr *Transform[float64]) { tr.SetRotationMatrix(NewMat4RotationY(Rad(0.3))) }},
		{"rotation quaternion", func(tr *Transform[float64]) {
			tr.SetRotationQuaternion(NewQuatFromAxisAngle(NewVec3(0.0, 1, 0), Rad(0.3), true))
		}},
		{"translation", func(tr *Transform[float64]) { tr.SetTranslation(-1, 0, 7) }},
		{"translation matrix", func(tr *Transform[float64]) {
			tr.SetTranslationMatrix(NewMat4Translation(NewVec3(-1.0, 0, 7)))
		}},
	}

	for _, c := range tests {
		t.Run(c.name, func(t *testing.T) {
			tr := NewTransform[float64]()
			tr.Final()
			c.set(tr)
			assert.True(t, tr.isDirty)
			assert.NotEqual(t, NewMat4Identity[float64](), tr.Final())
			assert.False(t, tr.isDirty)
		})
	}
}

func TestTransformRotationSources(t *testing.T) {
	angle := Deg(30.0)

	byEuler := NewTransform[float64]()
	byEuler.SetRotation(Deg(0.0), angle, Deg(0.0))

	byQuat := NewTransform[float64]()
	byQuat.SetRotationQuaternion(NewQuatFromAxisAngle(NewVec3(0.0, 1, 0), angle.ToRadian(), true))

	byMatrix := NewTransform[float64]()
	byMatrix.SetRotationMatrix(NewMat4RotationY(angle.ToRadian()))

	assert.True(t, byEuler.Final().Compare(byQuat.Final(), 1e-12))
	assert.Equal(t, byMatrix.Final(), byEuler.Rotation())
}

func TestTransformEulerOrder(t *testing.T) {
	tr := NewTransform[float64]()
	tr.SetRotation(Deg(90.0), Deg(0.0), Deg(90.0))

	// x first sends +y to +z, the z turn then leaves it there
	p := NewVec3(0.0, 1, 0).Transform(tr.Final())
	assert.True(t, p.Compare(NewVec3(0.0, 0, 1), 1e-12), "got %v", p)

	p = NewVec3(1.0, 0, 0).Transform(tr.Final())
	assert.True(t, p.Compare(NewVec3(0.0, 1, 0), 1e-12), "got %v", p)
}

func TestTransformGettersReturnCopies(t *testing.T) {
	tr := NewTransform[float32]()
	tr.SetTranslation(1, 2, 3)

	tm := tr.Translation()
	tm.Data[3] = 100
	sm := tr.Scaling()
	sm.SetMulScalar(9)
	rm := tr.Rotation()
	rm.Set(0, 1, 5)

	assert.Equal(t, float32(1), tr.Translation().Data[3])
	assert.Equal(t, NewMat4Identity[float32](), tr.Scaling())
	assert.Equal(t, NewMat4Identity[float32](), tr.Rotation())

	f := tr.Final()
	f.Data[0] = -1
	assert.Equal(t, float32(1), tr.Final().Data[0])
}

func TestTransformWorld(t *testing.T) {
	var orphan *Transform[float64]
	assert.Equal(t, NewMat4Identity[float64](), orphan.World())

	root := NewTransform[float64]()
	root.SetTranslation(10, 0, 0)
	root.SetRotation(Deg(0.0), Deg(0.0), Deg(90.0))

	child := NewTransform[float64]()
	child.SetTranslation(1, 0, 0)
	child.Parent = root

	assert.Equal(t, child.Final(), NewTransform[float64]().World().Mul(child.Final()))
	assert.Equal(t, root.Final().Mul(child.Final()), child.World())

	p := NewVec3(0.0, 0, 0).Transform(child.World())
	assert.True(t, p.Compare(NewVec3(10.0, 1, 0), 1e-12), "got %v", p)

	grandchild := NewTransform[float64]()
	grandchild.SetScaling(3, 3, 3)
	grandchild.Parent = child
	assert.True(t, grandchild.World().Compare(root.Final().Mul(child.Final()).Mul(grandchild.Final()), 1e-12))
}

func BenchmarkTransformFinal(b *testing.B) {
	tr := NewTransform[float32]()
	for i := 0; i < b.N; i++ {
		tr.SetRotation(Deg(float32(i)), Deg(float32(0)), Deg(float32(0)))
		_ = tr.Final()
	}
}
