package uniform

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/spaghettifunk/ogltech/engine/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func translation() math.Mat4f {
	return math.NewMat4Translation(math.NewVec3[float32](1, 2, 3))
}

func TestColumnMajor(t *testing.T) {
	data := ColumnMajor(translation())
	// GL expects the translation in elements 12, 13 and 14
	assert.Equal(t, float32(1), data[12])
	assert.Equal(t, float32(2), data[13])
	assert.Equal(t, float32(3), data[14])
	assert.Equal(t, float32(0), data[3])

	assert.Equal(t, translation(), FromColumnMajor(data))
}

func TestRowMajorAndMGL(t *testing.T) {
	m := translation()
	r := RowMajor(m)
	assert.Equal(t, float32(1), r[3])
	assert.Equal(t, m.Data, [16]float32(r))

	g := ToMGL(m)
	assert.Equal(t, mgl32.Translate3D(1, 2, 3), g)
	assert.Equal(t, m, FromMGL(g))

	// both sides agree on what the matrix does to a point
	p := g.Mul4x1(mgl32.Vec4{4, 5, 6, 1})
	q := m.MulVec4(math.NewVec4[float32](4, 5, 6, 1))
	assert.Equal(t, mgl32.Vec4{q.X, q.Y, q.Z, q.W}, p)

	assert.Equal(t, [3]float32{1, 2, 3}, [3]float32(Vec3(math.NewVec3[float32](1, 2, 3))))
	assert.Equal(t, [4]float32{1, 2, 3, 4}, [4]float32(Vec4(math.NewVec4[float32](1, 2, 3, 4))))
}

func TestWVP(t *testing.T) {
	projection := math.NewMat4Perspective(math.Deg[float32](60).ToRadian(), 1.5, 0.1, 100)
	view := math.NewMat4LookAt(math.NewVec3[float32](0, 0, 10), math.NewVec3Zero[float32](), math.NewVec3Up[float32]())
	world := translation()

	wvp := WVP(projection, view, world)
	assert.Equal(t, projection.Mul(view).Mul(world), wvp)

	g := mgl32.Perspective(mgl32.DegToRad(60), 1.5, 0.1, 100).
		Mul4(mgl32.LookAtV(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})).
		Mul4(mgl32.Translate3D(1, 2, 3))
	assert.True(t, FromMGL(g).Compare(wvp, 1e-4), "got\n%v", wvp)
}

func TestSetMatrix(t *testing.T) {
	rec := NewRecorder()
	m := translation()

	SetMatrix(rec, 3, m)
	require.Equal(t, 1, rec.Requests())

	raw, ok := rec.Raw(3)
	require.True(t, ok)
	assert.Equal(t, ColumnMajor(m), raw)

	got, ok := rec.Matrix(3)
	require.True(t, ok)
	assert.Equal(t, m, got)

	_, ok = rec.Matrix(4)
	assert.False(t, ok)
}

func TestRecorderTranspose(t *testing.T) {
	rec := NewRecorder()
	m := translation()

	// row-major data with transpose=true lands the same as column-major data
	rec.UniformMatrix4fv(0, 1, true, &m.Data[0])
	got, ok := rec.Matrix(0)
	require.True(t, ok)
	assert.Equal(t, m, got)

	// row-major data without the flag is read as its transpose
	rec.UniformMatrix4fv(1, 1, false, &m.Data[0])
	got, _ = rec.Matrix(1)
	assert.Equal(t, m.Transposed(), got)
}

func TestSetMatrices(t *testing.T) {
	rec := NewRecorder()
	ms := []math.Mat4f{
		translation(),
		math.NewMat4Scale(math.NewVec3[float32](2, 2, 2)),
		math.NewMat4Identity[float32](),
	}

	SetMatrices(rec, 10, ms)
	assert.Equal(t, 1, rec.Requests())
	for i, m := range ms {
		got, ok := rec.Matrix(10 + int32(i))
		require.True(t, ok)
		assert.Equal(t, m, got)
	}

	SetMatrices(rec, 20, nil)
	assert.Equal(t, 1, rec.Requests())

	rec.Reset()
	assert.Equal(t, 0, rec.Requests())
	_, ok := rec.Raw(10)
	assert.False(t, ok)
}
