package math

/**
 * @brief A quaternion, used to represent rotational orientation.
 *
 * The zero value is (0, 0, 0, 0), which is NOT a valid rotation. Use
 * NewQuatIdentity for the identity rotation (0, 0, 0, 1).
 */
type Quaternion[T Float] struct {
	X, Y, Z, W T
}

type Quatf = Quaternion[float32]

func NewQuaternion[T Float](x, y, z, w T) Quaternion[T] {
	return Quaternion[T]{x, y, z, w}
}

func NewQuatIdentity[T Float]() Quaternion[T] {
	return Quaternion[T]{0, 0, 0, 1.0}
}

/**
 * @brief Creates a quaternion from the given axis and angle.
 *
 * @param axis The axis of rotation.
 * @param angle The angle of rotation.
 * @param normalize Indicates if the quaternion should be normalized.
 */
func NewQuatFromAxisAngle[T Float](axis Vec3[T], angle Radian[T], normalize bool) Quaternion[T] {
	half_angle := 0.5 * angle.Value()
	s := ksin(half_angle)
	c := kcos(half_angle)

	q := Quaternion[T]{s * axis.X, s * axis.Y, s * axis.Z, c}
	if normalize {
		q.Normalize()
	}
	return q
}

func (q Quaternion[T]) LengthSquared() T {
	return q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
}

// Length is the Euclidean norm over all four components.
func (q Quaternion[T]) Length() T {
	return ksqrt(q.LengthSquared())
}

// Normalize scales q to unit length in place. The length must be non-zero.
func (q *Quaternion[T]) Normalize() {
	length := q.Length()
	debugAssert(length != 0, "Quaternion.Normalize of a zero quaternion")
	q.X /= length
	q.Y /= length
	q.Z /= length
	q.W /= length
}

func (q Quaternion[T]) Normalized() Quaternion[T] {
	q.Normalize()
	return q
}

// Conjugate negates x, y and z in place.
func (q *Quaternion[T]) Conjugate() {
	q.X = -q.X
	q.Y = -q.Y
	q.Z = -q.Z
}

func (q Quaternion[T]) Conjugated() Quaternion[T] {
	q.Conjugate()
	return q
}

// Inverse returns the conjugate divided by the squared length.
func (q Quaternion[T]) Inverse() Quaternion[T] {
	c := q.Conjugated()
	n := q.LengthSquared()
	debugAssert(n != 0, "Quaternion.Inverse of a zero quaternion")
	return Quaternion[T]{c.X / n, c.Y / n, c.Z / n, c.W / n}
}

/**
 * @brief Returns the Hamilton product q * other.
 * (3, 4, 3, 0) * (3.9, -1, -3, 4) = (3, 36.7, -6.6, 1.3).
 */
func (q Quaternion[T]) Mul(other Quaternion[T]) Quaternion[T] {
	out_quaternion := Quaternion[T]{}

	out_quaternion.X = q.X*other.W +
		q.Y*other.Z -
		q.Z*other.Y +
		q.W*other.X

	out_quaternion.Y = -q.X*other.Z +
		q.Y*other.W +
		q.Z*other.X +
		q.W*other.Y

	out_quaternion.Z = q.X*other.Y -
		q.Y*other.X +
		q.Z*other.W +
		q.W*other.Z

	out_quaternion.W = -q.X*other.X -
		q.Y*other.Y -
		q.Z*other.Z +
		q.W*other.W

	return out_quaternion
}

func (q Quaternion[T]) Dot(other Quaternion[T]) T {
	return q.X*other.X +
		q.Y*other.Y +
		q.Z*other.Z +
		q.W*other.W
}

// RotateVec3 rotates v by q, computed as q * v * q^-1.
func (q Quaternion[T]) RotateVec3(v Vec3[T]) Vec3[T] {
	p := Quaternion[T]{v.X, v.Y, v.Z, 0}
	r := q.Mul(p).Mul(q.Inverse())
	return Vec3[T]{r.X, r.Y, r.Z}
}

/**
 * @brief Creates a rotation matrix from q. The upper-left 3x3 block holds the
 * rotation and the remaining elements are those of the identity.
 * q does not need to be unit length but must not be zero.
 */
func (q Quaternion[T]) ToMat4() Mat4[T] {
	out_matrix := NewMat4Identity[T]()

	// https://stackoverflow.com/questions/1556260/convert-quaternion-rotation-to-rotation-matrix
	n := q.LengthSquared()
	debugAssert(n != 0, "Quaternion.ToMat4 of a zero quaternion")
	s := 2.0 / n

	out_matrix.Data[0] = 1.0 - s*(q.Y*q.Y+q.Z*q.Z)
	out_matrix.Data[1] = s * (q.X*q.Y - q.Z*q.W)
	out_matrix.Data[2] = s * (q.X*q.Z + q.Y*q.W)

	out_matrix.Data[4] = s * (q.X*q.Y + q.Z*q.W)
	out_matrix.Data[5] = 1.0 - s*(q.X*q.X+q.Z*q.Z)
	out_matrix.Data[6] = s * (q.Y*q.Z - q.X*q.W)

	out_matrix.Data[8] = s * (q.X*q.Z - q.Y*q.W)
	out_matrix.Data[9] = s * (q.Y*q.Z + q.X*q.W)
	out_matrix.Data[10] = 1.0 - s*(q.X*q.X+q.Y*q.Y)

	return out_matrix
}

/**
 * @brief Calculates spherical linear interpolation of a given percentage
 * between q and other.
 */
func (q Quaternion[T]) Slerp(other Quaternion[T], percentage T) Quaternion[T] {
	// Source: https://en.Wikipedia.org/wiki/Slerp
	// Only unit quaternions are valid rotations.
	v0 := q.Normalized()
	v1 := other.Normalized()

	dot := v0.Dot(v1)

	// If the dot product is negative, slerp won't take
	// the shorter path. Note that v1 and -v1 are equivalent when
	// the negation is applied to all four components. Fix by
	// reversing one quaternion.
	if dot < 0.0 {
		v1 = Quaternion[T]{-v1.X, -v1.Y, -v1.Z, -v1.W}
		dot = -dot
	}

	const DOT_THRESHOLD = 0.9995
	if dot > DOT_THRESHOLD {
		// If the inputs are too close for comfort, linearly interpolate
		// and normalize the result.
		qt := Quaternion[T]{
			v0.X + ((v1.X - v0.X) * percentage),
			v0.Y + ((v1.Y - v0.Y) * percentage),
			v0.Z + ((v1.Z - v0.Z) * percentage),
			v0.W + ((v1.W - v0.W) * percentage)}

		return qt.Normalized()
	}

	// Since dot is in range [0, DOT_THRESHOLD], acos is safe
	theta_0 := kacos(dot)         // theta_0 = angle between input vectors
	theta := theta_0 * percentage // theta = angle between v0 and result
	sin_theta := ksin(theta)
	sin_theta_0 := ksin(theta_0)

	s0 := kcos(theta) - dot*sin_theta/sin_theta_0 // == sin(theta_0 - theta) / sin(theta_0)
	s1 := sin_theta / sin_theta_0

	return Quaternion[T]{
		(v0.X * s0) + (v1.X * s1),
		(v0.Y * s0) + (v1.Y * s1),
		(v0.Z * s0) + (v1.Z * s1),
		(v0.W * s0) + (v1.W * s1)}
}

func (q Quaternion[T]) Equal(other Quaternion[T]) bool {
	return q == other
}

func (q Quaternion[T]) Compare(other Quaternion[T], tolerance T) bool {
	return Vec4[T](q).Compare(Vec4[T](other), tolerance)
}
