// Package uniform converts engine matrices into the layouts shader uniforms
// expect. Engine matrices are row-major with column vectors. OpenGL reads
// column-major data, so every upload goes through ColumnMajor.
package uniform

import (
	"sync"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/spaghettifunk/ogltech/engine/math"
	"golang.org/x/image/math/f32"
)

// Uploader mirrors glUniformMatrix4fv. value points at 16*count floats.
type Uploader interface {
	UniformMatrix4fv(location int32, count int32, transpose bool, value *float32)
}

// WVP returns projection * view * world, the matrix a vertex shader applies
// to a model-space position.
func WVP(projection, view, world math.Mat4f) math.Mat4f {
	pv := projection.Mul(view)
	return pv.Mul(world)
}

// ColumnMajor returns m transposed into column-major element order.
func ColumnMajor(m math.Mat4f) [16]float32 {
	return m.Transposed().Data
}

// FromColumnMajor is the inverse of ColumnMajor.
func FromColumnMajor(data [16]float32) math.Mat4f {
	m := math.NewMat4FromArray(data)
	m.Transpose()
	return m
}

// RowMajor exposes m as an x/image f32.Mat4, which shares the engine layout.
func RowMajor(m math.Mat4f) f32.Mat4 {
	return f32.Mat4(m.Data)
}

// ToMGL returns m as a column-major mgl32 matrix.
func ToMGL(m math.Mat4f) mgl32.Mat4 {
	return mgl32.Mat4(ColumnMajor(m))
}

// FromMGL converts a column-major mgl32 matrix back to the engine layout.
func FromMGL(m mgl32.Mat4) math.Mat4f {
	return FromColumnMajor([16]float32(m))
}

func Vec3(v math.Vec3f) f32.Vec3 {
	return f32.Vec3{v.X, v.Y, v.Z}
}

func Vec4(v math.Vec4f) f32.Vec4 {
	return f32.Vec4{v.X, v.Y, v.Z, v.W}
}

// SetMatrix uploads m to location. The data is already column-major so the
// transpose flag is always false.
func SetMatrix(u Uploader, location int32, m math.Mat4f) {
	data := ColumnMajor(m)
	u.UniformMatrix4fv(location, 1, false, &data[0])
}

// SetMatrices uploads a uniform array of matrices starting at location.
func SetMatrices(u Uploader, location int32, ms []math.Mat4f) {
	if len(ms) == 0 {
		return
	}
	data := make([]float32, 0, 16*len(ms))
	for _, m := range ms {
		c := ColumnMajor(m)
		data = append(data, c[:]...)
	}
	u.UniformMatrix4fv(location, int32(len(ms)), false, &data[0])
}

// Recorder is an in-memory Uploader. It stores what a GL driver would see,
// normalised to column-major.
type Recorder struct {
	mutex    sync.RWMutex
	uploads  map[int32][16]float32
	requests int
}

func NewRecorder() *Recorder {
	return &Recorder{
		uploads: make(map[int32][16]float32),
	}
}

func (r *Recorder) UniformMatrix4fv(location int32, count int32, transpose bool, value *float32) {
	if count <= 0 || value == nil {
		return
	}
	src := unsafe.Slice(value, 16*int(count))

	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.requests++
	for i := int32(0); i < count; i++ {
		var data [16]float32
		copy(data[:], src[16*i:16*(i+1)])
		if transpose {
			// the driver transposes row-major input on upload
			data = math.NewMat4FromArray(data).Transposed().Data
		}
		r.uploads[location+i] = data
	}
}

// Raw returns the column-major data last uploaded to location.
func (r *Recorder) Raw(location int32) ([16]float32, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	data, ok := r.uploads[location]
	return data, ok
}

// Matrix returns the matrix last uploaded to location in the engine layout.
func (r *Recorder) Matrix(location int32) (math.Mat4f, bool) {
	data, ok := r.Raw(location)
	if !ok {
		return math.Mat4f{}, false
	}
	return FromColumnMajor(data), true
}

// Requests is the number of UniformMatrix4fv calls seen so far.
func (r *Recorder) Requests() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return r.requests
}

func (r *Recorder) Reset() {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.uploads = make(map[int32][16]float32)
	r.requests = 0
}
