package math

// Degree is an angle expressed in degrees. It never converts to a raw scalar
// implicitly: use Value, or ToRadian before handing it to a matrix builder.
type Degree[T Float] struct {
	value T
}

// Radian is an angle expressed in radians.
type Radian[T Float] struct {
	value T
}

type Degreef = Degree[float32]
type Radianf = Radian[float32]

// Deg wraps value as a Degree. The value is stored unchanged.
func Deg[T Float](value T) Degree[T] {
	return Degree[T]{value: value}
}

// Rad wraps value as a Radian. The value is stored unchanged.
func Rad[T Float](value T) Radian[T] {
	return Radian[T]{value: value}
}

func (d Degree[T]) Value() T {
	return d.value
}

// ToRadian returns value * π / 180. No wrap-around is applied.
func (d Degree[T]) ToRadian() Radian[T] {
	return Radian[T]{value: T(float64(d.value) * K_DEG2RAD_MULTIPLIER)}
}

func (d Degree[T]) Add(other Degree[T]) Degree[T] {
	return Degree[T]{value: d.value + other.value}
}

func (d Degree[T]) Sub(other Degree[T]) Degree[T] {
	return Degree[T]{value: d.value - other.value}
}

func (d Degree[T]) Scale(s T) Degree[T] {
	return Degree[T]{value: d.value * s}
}

// SetAdd adds other in place and returns the new value.
func (d *Degree[T]) SetAdd(other Degree[T]) Degree[T] {
	d.value += other.value
	return *d
}

// SetSub subtracts other in place and returns the new value.
func (d *Degree[T]) SetSub(other Degree[T]) Degree[T] {
	d.value -= other.value
	return *d
}

func (r Radian[T]) Value() T {
	return r.value
}

// ToDegree returns value * 180 / π. No wrap-around is applied.
func (r Radian[T]) ToDegree() Degree[T] {
	return Degree[T]{value: T(float64(r.value) * K_RAD2DEG_MULTIPLIER)}
}

func (r Radian[T]) Add(other Radian[T]) Radian[T] {
	return Radian[T]{value: r.value + other.value}
}

func (r Radian[T]) Sub(other Radian[T]) Radian[T] {
	return Radian[T]{value: r.value - other.value}
}

func (r Radian[T]) Scale(s T) Radian[T] {
	return Radian[T]{value: r.value * s}
}

func (r *Radian[T]) SetAdd(other Radian[T]) Radian[T] {
	r.value += other.value
	return *r
}

func (r *Radian[T]) SetSub(other Radian[T]) Radian[T] {
	r.value -= other.value
	return *r
}

func DegToRad[T Float](degrees T) T {
	return T(float64(degrees) * K_DEG2RAD_MULTIPLIER)
}

func RadToDeg[T Float](radians T) T {
	return T(float64(radians) * K_RAD2DEG_MULTIPLIER)
}
