package math

import (
	"fmt"
	"strings"
)

/**
 * @brief a 4x4 matrix, typically used to represent object transformations.
 * Elements are stored row-major: Data[row*4+col]. Points are column vectors,
 * so a translation lives in the last column.
 *
 * The zero value is the all-zero matrix, not the identity.
 */
type Mat4[T Float] struct {
	/** @brief The matrix elements */
	Data [16]T
}

type Mat4f = Mat4[float32]

// NewMat4Diagonal returns a matrix with s on the diagonal and zero elsewhere.
// NewMat4Diagonal(1) is the identity.
func NewMat4Diagonal[T Float](s T) Mat4[T] {
	out_matrix := Mat4[T]{}
	out_matrix.Data[0] = s
	out_matrix.Data[5] = s
	out_matrix.Data[10] = s
	out_matrix.Data[15] = s
	return out_matrix
}

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0, 0},
 *   {0, 1, 0, 0},
 *   {0, 0, 1, 0},
 *   {0, 0, 0, 1}
 * }
 */
func NewMat4Identity[T Float]() Mat4[T] {
	return NewMat4Diagonal[T](1.0)
}

// NewMat4FromArray builds a matrix from 16 row-major scalars.
func NewMat4FromArray[T Float](data [16]T) Mat4[T] {
	return Mat4[T]{Data: data}
}

// At returns the element at (row, col). Indices are not range checked beyond
// what the backing array does.
func (mt Mat4[T]) At(row, col int) T {
	return mt.Data[row*4+col]
}

func (mt *Mat4[T]) Set(row, col int, value T) {
	mt.Data[row*4+col] = value
}

// Ptr returns a pointer to the 16 contiguous row-major scalars.
// Graphics APIs expecting column-major data need the transposed matrix.
func (mt *Mat4[T]) Ptr() *T {
	return &mt.Data[0]
}

func (mt Mat4[T]) Row(row int) Vec4[T] {
	return Vec4[T]{mt.Data[row*4], mt.Data[row*4+1], mt.Data[row*4+2], mt.Data[row*4+3]}
}

func (mt Mat4[T]) Col(col int) Vec4[T] {
	return Vec4[T]{mt.Data[col], mt.Data[4+col], mt.Data[8+col], mt.Data[12+col]}
}

func (mt Mat4[T]) Add(other Mat4[T]) Mat4[T] {
	mt.SetAdd(other)
	return mt
}

func (mt Mat4[T]) Sub(other Mat4[T]) Mat4[T] {
	mt.SetSub(other)
	return mt
}

func (mt Mat4[T]) MulScalar(s T) Mat4[T] {
	mt.SetMulScalar(s)
	return mt
}

func (mt Mat4[T]) DivScalar(s T) Mat4[T] {
	mt.SetDivScalar(s)
	return mt
}

func (mt *Mat4[T]) SetAdd(other Mat4[T]) {
	for i := range mt.Data {
		mt.Data[i] += other.Data[i]
	}
}

func (mt *Mat4[T]) SetSub(other Mat4[T]) {
	for i := range mt.Data {
		mt.Data[i] -= other.Data[i]
	}
}

func (mt *Mat4[T]) SetMulScalar(s T) {
	for i := range mt.Data {
		mt.Data[i] *= s
	}
}

func (mt *Mat4[T]) SetDivScalar(s T) {
	for i := range mt.Data {
		mt.Data[i] /= s
	}
}

// SetMul replaces mt with mt * other.
func (mt *Mat4[T]) SetMul(other Mat4[T]) {
	*mt = mt.Mul(other)
}

/**
 * @brief Returns the result of multiplying mt and other (row by column).
 */
func (mt Mat4[T]) Mul(other Mat4[T]) Mat4[T] {
	out_matrix := Mat4[T]{}

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			sum := T(0)
			for i := 0; i < 4; i++ {
				sum += mt.Data[row*4+i] * other.Data[i*4+col]
			}
			out_matrix.Data[row*4+col] = sum
		}
	}

	return out_matrix
}

// MulVec4 returns mt * v, treating v as a column vector.
func (mt Mat4[T]) MulVec4(v Vec4[T]) Vec4[T] {
	m := &mt.Data
	return Vec4[T]{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z + m[3]*v.W,
		Y: m[4]*v.X + m[5]*v.Y + m[6]*v.Z + m[7]*v.W,
		Z: m[8]*v.X + m[9]*v.Y + m[10]*v.Z + m[11]*v.W,
		W: m[12]*v.X + m[13]*v.Y + m[14]*v.Z + m[15]*v.W,
	}
}

// Transpose swaps rows and columns in place.
func (mt *Mat4[T]) Transpose() {
	for row := 0; row < 4; row++ {
		for col := row + 1; col < 4; col++ {
			mt.Data[row*4+col], mt.Data[col*4+row] = mt.Data[col*4+row], mt.Data[row*4+col]
		}
	}
}

func (mt Mat4[T]) Transposed() Mat4[T] {
	mt.Transpose()
	return mt
}

// minors returns the six 2x2 minors of the top two rows and the six
// complementary minors of the bottom two rows. Determinant and Inverse are
// both Laplace expansions over these pairs.
func (mt *Mat4[T]) minors() (s, c [6]T) {
	m := &mt.Data

	s[0] = m[0]*m[5] - m[4]*m[1]
	s[1] = m[0]*m[6] - m[4]*m[2]
	s[2] = m[0]*m[7] - m[4]*m[3]
	s[3] = m[1]*m[6] - m[5]*m[2]
	s[4] = m[1]*m[7] - m[5]*m[3]
	s[5] = m[2]*m[7] - m[6]*m[3]

	c[5] = m[10]*m[15] - m[14]*m[11]
	c[4] = m[9]*m[15] - m[13]*m[11]
	c[3] = m[9]*m[14] - m[13]*m[10]
	c[2] = m[8]*m[15] - m[12]*m[11]
	c[1] = m[8]*m[14] - m[12]*m[10]
	c[0] = m[8]*m[13] - m[12]*m[9]
	return s, c
}

// Determinant returns the cofactor expansion of the matrix. Matrices with a
// zero row or column, or two equal rows or columns, come out at ~0.
func (mt Mat4[T]) Determinant() T {
	s, c := mt.minors()
	return s[0]*c[5] - s[1]*c[4] + s[2]*c[3] + s[3]*c[2] - s[4]*c[1] + s[5]*c[0]
}

/**
 * @brief Inverts the matrix in place using the adjugate divided by the
 * determinant. The matrix must not be singular; this is not checked in
 * release builds and a singular input yields Inf/NaN elements.
 */
func (mt *Mat4[T]) Inverse() {
	s, c := mt.minors()
	det := s[0]*c[5] - s[1]*c[4] + s[2]*c[3] + s[3]*c[2] - s[4]*c[1] + s[5]*c[0]
	debugAssert(det != 0, "Mat4.Inverse of a singular matrix")
	d := 1.0 / det

	m := mt.Data
	o := &mt.Data

	o[0] = (m[5]*c[5] - m[6]*c[4] + m[7]*c[3]) * d
	o[1] = (-m[1]*c[5] + m[2]*c[4] - m[3]*c[3]) * d
	o[2] = (m[13]*s[5] - m[14]*s[4] + m[15]*s[3]) * d
	o[3] = (-m[9]*s[5] + m[10]*s[4] - m[11]*s[3]) * d

	o[4] = (-m[4]*c[5] + m[6]*c[2] - m[7]*c[1]) * d
	o[5] = (m[0]*c[5] - m[2]*c[2] + m[3]*c[1]) * d
	o[6] = (-m[12]*s[5] + m[14]*s[2] - m[15]*s[1]) * d
	o[7] = (m[8]*s[5] - m[10]*s[2] + m[11]*s[1]) * d

	o[8] = (m[4]*c[4] - m[5]*c[2] + m[7]*c[0]) * d
	o[9] = (-m[0]*c[4] + m[1]*c[2] - m[3]*c[0]) * d
	o[10] = (m[12]*s[4] - m[13]*s[2] + m[15]*s[0]) * d
	o[11] = (-m[8]*s[4] + m[9]*s[2] - m[11]*s[0]) * d

	o[12] = (-m[4]*c[3] + m[5]*c[1] - m[6]*c[0]) * d
	o[13] = (m[0]*c[3] - m[1]*c[1] + m[2]*c[0]) * d
	o[14] = (-m[12]*s[3] + m[13]*s[1] - m[14]*s[0]) * d
	o[15] = (m[8]*s[3] - m[9]*s[1] + m[10]*s[0]) * d
}

// Inversed returns the inverse and leaves mt untouched.
func (mt Mat4[T]) Inversed() Mat4[T] {
	mt.Inverse()
	return mt
}

// Equal compares elements exactly.
func (mt Mat4[T]) Equal(other Mat4[T]) bool {
	return mt.Data == other.Data
}

func (mt Mat4[T]) Compare(other Mat4[T], tolerance T) bool {
	for i := range mt.Data {
		if kabs(mt.Data[i]-other.Data[i]) > tolerance {
			return false
		}
	}
	return true
}

func (mt Mat4[T]) String() string {
	var sb strings.Builder
	for row := 0; row < 4; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%9.4f %9.4f %9.4f %9.4f",
			float64(mt.Data[row*4]), float64(mt.Data[row*4+1]), float64(mt.Data[row*4+2]), float64(mt.Data[row*4+3]))
	}
	return sb.String()
}

// ------------------------------------------
// Builders
// ------------------------------------------

/**
 * @brief Creates and returns an orthographic projection matrix. Typically used to
 * render flat or 2D scenes.
 */
func NewMat4Orthographic[T Float](left, right, bottom, top, near_clip, far_clip T) Mat4[T] {
	out_matrix := NewMat4Identity[T]()

	rl := 1.0 / (right - left)
	tb := 1.0 / (top - bottom)
	fn := 1.0 / (far_clip - near_clip)

	out_matrix.Data[0] = 2.0 * rl
	out_matrix.Data[5] = 2.0 * tb
	out_matrix.Data[10] = -2.0 * fn

	out_matrix.Data[3] = -(right + left) * rl
	out_matrix.Data[7] = -(top + bottom) * tb
	out_matrix.Data[11] = -(far_clip + near_clip) * fn
	return out_matrix
}

/**
 * @brief Creates and returns a perspective matrix. Typically used to render 3d scenes.
 *
 * @param fov The field of view.
 * @param aspect_ratio The aspect ratio.
 * @param near_clip The near clipping plane distance.
 * @param far_clip The far clipping plane distance.
 */
func NewMat4Perspective[T Float](fov Radian[T], aspect_ratio, near_clip, far_clip T) Mat4[T] {
	half_tan_fov := ktan(fov.Value() * 0.5)
	out_matrix := Mat4[T]{}
	out_matrix.Data[0] = 1.0 / (aspect_ratio * half_tan_fov)
	out_matrix.Data[5] = 1.0 / half_tan_fov
	out_matrix.Data[10] = -((far_clip + near_clip) / (far_clip - near_clip))
	out_matrix.Data[11] = -((2.0 * far_clip * near_clip) / (far_clip - near_clip))
	out_matrix.Data[14] = -1.0
	return out_matrix
}

/**
 * @brief Creates and returns a look-at matrix, or a matrix looking
 * at target from the perspective of position.
 */
func NewMat4LookAt[T Float](position, target, up Vec3[T]) Mat4[T] {
	f := target.Sub(position).Normalized()
	s := f.Cross(up).Normalized()
	u := s.Cross(f)

	out_matrix := NewMat4Identity[T]()
	out_matrix.Data[0] = s.X
	out_matrix.Data[1] = s.Y
	out_matrix.Data[2] = s.Z
	out_matrix.Data[3] = -s.Dot(position)
	out_matrix.Data[4] = u.X
	out_matrix.Data[5] = u.Y
	out_matrix.Data[6] = u.Z
	out_matrix.Data[7] = -u.Dot(position)
	out_matrix.Data[8] = -f.X
	out_matrix.Data[9] = -f.Y
	out_matrix.Data[10] = -f.Z
	out_matrix.Data[11] = f.Dot(position)
	return out_matrix
}

func NewMat4Translation[T Float](position Vec3[T]) Mat4[T] {
	out_matrix := NewMat4Identity[T]()
	out_matrix.Data[3] = position.X
	out_matrix.Data[7] = position.Y
	out_matrix.Data[11] = position.Z
	return out_matrix
}

func NewMat4Scale[T Float](scale Vec3[T]) Mat4[T] {
	out_matrix := NewMat4Identity[T]()
	out_matrix.Data[0] = scale.X
	out_matrix.Data[5] = scale.Y
	out_matrix.Data[10] = scale.Z
	return out_matrix
}

func NewMat4RotationX[T Float](angle Radian[T]) Mat4[T] {
	out_matrix := NewMat4Identity[T]()
	c := kcos(angle.Value())
	s := ksin(angle.Value())

	out_matrix.Data[5] = c
	out_matrix.Data[6] = -s
	out_matrix.Data[9] = s
	out_matrix.Data[10] = c
	return out_matrix
}

func NewMat4RotationY[T Float](angle Radian[T]) Mat4[T] {
	out_matrix := NewMat4Identity[T]()
	c := kcos(angle.Value())
	s := ksin(angle.Value())

	out_matrix.Data[0] = c
	out_matrix.Data[2] = s
	out_matrix.Data[8] = -s
	out_matrix.Data[10] = c
	return out_matrix
}

func NewMat4RotationZ[T Float](angle Radian[T]) Mat4[T] {
	out_matrix := NewMat4Identity[T]()
	c := kcos(angle.Value())
	s := ksin(angle.Value())

	out_matrix.Data[0] = c
	out_matrix.Data[1] = -s
	out_matrix.Data[4] = s
	out_matrix.Data[5] = c
	return out_matrix
}

// NewMat4EulerXYZ returns Rz * Ry * Rx: x is applied first, z last.
func NewMat4EulerXYZ[T Float](x, y, z Radian[T]) Mat4[T] {
	rx := NewMat4RotationX(x)
	ry := NewMat4RotationY(y)
	rz := NewMat4RotationZ(z)
	out_matrix := rz.Mul(ry)
	return out_matrix.Mul(rx)
}

// The helpers below read the camera basis out of a view matrix, whose rows
// are right, up and backward.

func (mt Mat4[T]) Forward() Vec3[T] {
	return Vec3[T]{-mt.Data[8], -mt.Data[9], -mt.Data[10]}.Normalized()
}

func (mt Mat4[T]) Backward() Vec3[T] {
	return Vec3[T]{mt.Data[8], mt.Data[9], mt.Data[10]}.Normalized()
}

func (mt Mat4[T]) Up() Vec3[T] {
	return Vec3[T]{mt.Data[4], mt.Data[5], mt.Data[6]}.Normalized()
}

func (mt Mat4[T]) Down() Vec3[T] {
	return Vec3[T]{-mt.Data[4], -mt.Data[5], -mt.Data[6]}.Normalized()
}

func (mt Mat4[T]) Left() Vec3[T] {
	return Vec3[T]{-mt.Data[0], -mt.Data[1], -mt.Data[2]}.Normalized()
}

func (mt Mat4[T]) Right() Vec3[T] {
	return Vec3[T]{mt.Data[0], mt.Data[1], mt.Data[2]}.Normalized()
}
