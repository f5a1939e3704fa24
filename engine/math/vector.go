package math

// Vec2 represents a 2D vector
type Vec2[T Float] struct {
	X, Y T
}

// Vec3 represents a 3D vector
type Vec3[T Float] struct {
	X, Y, Z T
}

// Vec4 represents a 4D vector
type Vec4[T Float] struct {
	X, Y, Z, W T
}

type Vec2f = Vec2[float32]
type Vec3f = Vec3[float32]
type Vec4f = Vec4[float32]

// ------------------------------------------
// Vector 2
// ------------------------------------------

/**
 * @brief Creates and returns a new 2-element vector using the supplied values.
 */
func NewVec2[T Float](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

/**
 * @brief Creates and returns a 2-component vector with every component set to s.
 */
func NewVec2Scalar[T Float](s T) Vec2[T] {
	return Vec2[T]{s, s}
}

func NewVec2Zero[T Float]() Vec2[T] {
	return Vec2[T]{}
}

func NewVec2One[T Float]() Vec2[T] {
	return Vec2[T]{1.0, 1.0}
}

// At returns component i (0 = x, 1 = y). Out-of-range indices panic like a
// raw array access would.
func (v Vec2[T]) At(i int) T {
	return [2]T{v.X, v.Y}[i]
}

func (v *Vec2[T]) SetAt(i int, value T) {
	a := [2]*T{&v.X, &v.Y}
	*a[i] = value
}

func (v Vec2[T]) Add(other Vec2[T]) Vec2[T] {
	return Vec2[T]{v.X + other.X, v.Y + other.Y}
}

func (v Vec2[T]) Sub(other Vec2[T]) Vec2[T] {
	return Vec2[T]{v.X - other.X, v.Y - other.Y}
}

// Mul multiplies component-wise.
func (v Vec2[T]) Mul(other Vec2[T]) Vec2[T] {
	return Vec2[T]{v.X * other.X, v.Y * other.Y}
}

// Div divides component-wise.
func (v Vec2[T]) Div(other Vec2[T]) Vec2[T] {
	return Vec2[T]{v.X / other.X, v.Y / other.Y}
}

func (v Vec2[T]) MulScalar(s T) Vec2[T] {
	return Vec2[T]{v.X * s, v.Y * s}
}

func (v Vec2[T]) DivScalar(s T) Vec2[T] {
	return Vec2[T]{v.X / s, v.Y / s}
}

func (v Vec2[T]) Negate() Vec2[T] {
	return Vec2[T]{-v.X, -v.Y}
}

func (v Vec2[T]) Dot(other Vec2[T]) T {
	return v.X*other.X + v.Y*other.Y
}

func (v Vec2[T]) LengthSquared() T {
	return v.Dot(v)
}

func (v Vec2[T]) Length() T {
	return ksqrt(v.LengthSquared())
}

/**
 * @brief Normalizes the vector in place to a unit vector.
 * The length must be non-zero; this is not checked in release builds.
 */
func (v *Vec2[T]) Normalize() {
	length := v.Length()
	debugAssert(length != 0, "Vec2.Normalize of a zero-length vector")
	v.X /= length
	v.Y /= length
}

// Normalized returns a normalized copy of the vector.
func (v Vec2[T]) Normalized() Vec2[T] {
	v.Normalize()
	return v
}

func (v Vec2[T]) Distance(other Vec2[T]) T {
	return v.Sub(other).Length()
}

// Equal compares components exactly.
func (v Vec2[T]) Equal(other Vec2[T]) bool {
	return v == other
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 *
 * @param tolerance The difference tolerance. Typically K_FLOAT_EPSILON or similar.
 * @return True if within tolerance; otherwise false.
 */
func (v Vec2[T]) Compare(other Vec2[T], tolerance T) bool {
	if kabs(v.X-other.X) > tolerance {
		return false
	}
	if kabs(v.Y-other.Y) > tolerance {
		return false
	}
	return true
}

// ------------------------------------------
// Vector 3
// ------------------------------------------

/**
 * @brief Creates and returns a new 3-element vector using the supplied values.
 */
func NewVec3[T Float](x, y, z T) Vec3[T] {
	return Vec3[T]{x, y, z}
}

func NewVec3Scalar[T Float](s T) Vec3[T] {
	return Vec3[T]{s, s, s}
}

/**
 * @brief Returns a new vec3 containing the x, y and z components of the
 * supplied vec4, essentially dropping the w component.
 */
func NewVec3FromVec4[T Float](vector Vec4[T]) Vec3[T] {
	return Vec3[T]{vector.X, vector.Y, vector.Z}
}

func NewVec3Zero[T Float]() Vec3[T] {
	return Vec3[T]{}
}

func NewVec3One[T Float]() Vec3[T] {
	return Vec3[T]{1.0, 1.0, 1.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing up (0, 1, 0).
 */
func NewVec3Up[T Float]() Vec3[T] {
	return Vec3[T]{0.0, 1.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing down (0, -1, 0).
 */
func NewVec3Down[T Float]() Vec3[T] {
	return Vec3[T]{0.0, -1.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing left (-1, 0, 0).
 */
func NewVec3Left[T Float]() Vec3[T] {
	return Vec3[T]{-1.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing right (1, 0, 0).
 */
func NewVec3Right[T Float]() Vec3[T] {
	return Vec3[T]{1.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing forward (0, 0, -1).
 */
func NewVec3Forward[T Float]() Vec3[T] {
	return Vec3[T]{0.0, 0.0, -1.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing backward (0, 0, 1).
 */
func NewVec3Back[T Float]() Vec3[T] {
	return Vec3[T]{0.0, 0.0, 1.0}
}

// At returns component i (0 = x, 1 = y, 2 = z).
func (v Vec3[T]) At(i int) T {
	return [3]T{v.X, v.Y, v.Z}[i]
}

func (v *Vec3[T]) SetAt(i int, value T) {
	a := [3]*T{&v.X, &v.Y, &v.Z}
	*a[i] = value
}

/**
 * @brief Returns a new vec4 using v as the x, y and z components and w for w.
 */
func (v Vec3[T]) ToVec4(w T) Vec4[T] {
	return Vec4[T]{v.X, v.Y, v.Z, w}
}

func (v Vec3[T]) Add(other Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v.X + other.X,
		v.Y + other.Y,
		v.Z + other.Z}
}

func (v Vec3[T]) Sub(other Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v.X - other.X,
		v.Y - other.Y,
		v.Z - other.Z}
}

// Mul multiplies component-wise.
func (v Vec3[T]) Mul(other Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v.X * other.X,
		v.Y * other.Y,
		v.Z * other.Z}
}

// Div divides component-wise.
func (v Vec3[T]) Div(other Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v.X / other.X,
		v.Y / other.Y,
		v.Z / other.Z}
}

/**
 * @brief Multiplies all elements of v by scalar and returns a copy of the result.
 */
func (v Vec3[T]) MulScalar(scalar T) Vec3[T] {
	return Vec3[T]{
		v.X * scalar,
		v.Y * scalar,
		v.Z * scalar}
}

func (v Vec3[T]) DivScalar(scalar T) Vec3[T] {
	return Vec3[T]{
		v.X / scalar,
		v.Y / scalar,
		v.Z / scalar}
}

func (v Vec3[T]) Negate() Vec3[T] {
	return Vec3[T]{-v.X, -v.Y, -v.Z}
}

/**
 * @brief Computes the dot product between v and other. Typically used
 * to calculate the difference in direction.
 */
func (v Vec3[T]) Dot(other Vec3[T]) T {
	p := T(0)
	p += v.X * other.X
	p += v.Y * other.Y
	p += v.Z * other.Z
	return p
}

/**
 * @brief Calculates and returns the cross product of v and other.
 * The cross product is a new vector which is orthoganal to both
 * provided vectors.
 */
func (v Vec3[T]) Cross(other Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X}
}

func (v Vec3[T]) LengthSquared() T {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v Vec3[T]) Length() T {
	return ksqrt(v.LengthSquared())
}

/**
 * @brief Normalizes the vector in place to a unit vector.
 * The length must be non-zero; this is not checked in release builds.
 */
func (v *Vec3[T]) Normalize() {
	length := v.Length()
	debugAssert(length != 0, "Vec3.Normalize of a zero-length vector")
	v.X /= length
	v.Y /= length
	v.Z /= length
}

// Normalized returns a normalized copy of the vector.
func (v Vec3[T]) Normalized() Vec3[T] {
	v.Normalize()
	return v
}

func (v Vec3[T]) Distance(other Vec3[T]) T {
	d := Vec3[T]{
		v.X - other.X,
		v.Y - other.Y,
		v.Z - other.Z}
	return d.Length()
}

// Equal compares components exactly.
func (v Vec3[T]) Equal(other Vec3[T]) bool {
	return v == other
}

func (v Vec3[T]) Compare(other Vec3[T], tolerance T) bool {
	if kabs(v.X-other.X) > tolerance {
		return false
	}
	if kabs(v.Y-other.Y) > tolerance {
		return false
	}
	if kabs(v.Z-other.Z) > tolerance {
		return false
	}
	return true
}

/**
 * @brief Transforms v as a point (w = 1) by the provided matrix and drops w.
 */
func (v Vec3[T]) Transform(m Mat4[T]) Vec3[T] {
	return m.MulVec4(v.ToVec4(1)).ToVec3()
}

// ------------------------------------------
// Vector 4
// ------------------------------------------

func NewVec4[T Float](x, y, z, w T) Vec4[T] {
	return Vec4[T]{x, y, z, w}
}

func NewVec4Scalar[T Float](s T) Vec4[T] {
	return Vec4[T]{s, s, s, s}
}

func NewVec4FromVec3[T Float](v Vec3[T], w T) Vec4[T] {
	return Vec4[T]{v.X, v.Y, v.Z, w}
}

func NewVec4Zero[T Float]() Vec4[T] {
	return Vec4[T]{}
}

func NewVec4One[T Float]() Vec4[T] {
	return Vec4[T]{1.0, 1.0, 1.0, 1.0}
}

// At returns component i (0 = x, 1 = y, 2 = z, 3 = w).
func (v Vec4[T]) At(i int) T {
	return [4]T{v.X, v.Y, v.Z, v.W}[i]
}

func (v *Vec4[T]) SetAt(i int, value T) {
	a := [4]*T{&v.X, &v.Y, &v.Z, &v.W}
	*a[i] = value
}

func (v Vec4[T]) ToVec3() Vec3[T] {
	return Vec3[T]{v.X, v.Y, v.Z}
}

func (v Vec4[T]) Add(other Vec4[T]) Vec4[T] {
	return Vec4[T]{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
		W: v.W + other.W,
	}
}

func (v Vec4[T]) Sub(other Vec4[T]) Vec4[T] {
	return Vec4[T]{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
		W: v.W - other.W,
	}
}

func (v Vec4[T]) Mul(other Vec4[T]) Vec4[T] {
	return Vec4[T]{
		X: v.X * other.X,
		Y: v.Y * other.Y,
		Z: v.Z * other.Z,
		W: v.W * other.W,
	}
}

func (v Vec4[T]) Div(other Vec4[T]) Vec4[T] {
	return Vec4[T]{
		X: v.X / other.X,
		Y: v.Y / other.Y,
		Z: v.Z / other.Z,
		W: v.W / other.W,
	}
}

func (v Vec4[T]) MulScalar(s T) Vec4[T] {
	return Vec4[T]{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

func (v Vec4[T]) DivScalar(s T) Vec4[T] {
	return Vec4[T]{v.X / s, v.Y / s, v.Z / s, v.W / s}
}

func (v Vec4[T]) Negate() Vec4[T] {
	return Vec4[T]{-v.X, -v.Y, -v.Z, -v.W}
}

func (v Vec4[T]) Dot(other Vec4[T]) T {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

func (v Vec4[T]) LengthSquared() T {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

func (v Vec4[T]) Length() T {
	return ksqrt(v.LengthSquared())
}

// Normalize scales the vector in place to unit length.
func (v *Vec4[T]) Normalize() {
	length := v.Length()
	debugAssert(length != 0, "Vec4.Normalize of a zero-length vector")
	v.X /= length
	v.Y /= length
	v.Z /= length
	v.W /= length
}

func (v Vec4[T]) Normalized() Vec4[T] {
	v.Normalize()
	return v
}

func (v Vec4[T]) Equal(other Vec4[T]) bool {
	return v == other
}

func (v Vec4[T]) Compare(other Vec4[T], tolerance T) bool {
	if kabs(v.X-other.X) > tolerance {
		return false
	}
	if kabs(v.Y-other.Y) > tolerance {
		return false
	}
	if kabs(v.Z-other.Z) > tolerance {
		return false
	}
	if kabs(v.W-other.W) > tolerance {
		return false
	}
	return true
}
