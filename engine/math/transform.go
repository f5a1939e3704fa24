package math

/**
 * @brief Represents the placement of an object in the world as three
 * independently settable matrices. The combined model matrix
 * translation * rotation * scaling is cached and only rebuilt by Final
 * after one of the setters has run. NOTE: a Transform must be created with
 * NewTransform; the zero value has all-zero matrices.
 */
type Transform[T Float] struct {
	scaling     Mat4[T]
	rotation    Mat4[T]
	translation Mat4[T]

	/** @brief Cached translation * rotation * scaling. */
	final Mat4[T]
	/** @brief Set by every mutator, cleared when final is rebuilt. */
	isDirty bool

	/** @brief An optional parent whose world matrix is applied after this one. */
	Parent *Transform[T]
}

type Transformf = Transform[float32]

func NewTransform[T Float]() *Transform[T] {
	return &Transform[T]{
		scaling:     NewMat4Identity[T](),
		rotation:    NewMat4Identity[T](),
		translation: NewMat4Identity[T](),
		final:       NewMat4Identity[T](),
		isDirty:     false,
	}
}

// SetScaling sets the diagonal scale factors.
func (t *Transform[T]) SetScaling(x, y, z T) {
	t.scaling = NewMat4Scale(NewVec3(x, y, z))
	t.isDirty = true
}

func (t *Transform[T]) SetScalingMatrix(m Mat4[T]) {
	t.scaling = m
	t.isDirty = true
}

// SetRotation builds Rz * Ry * Rx from per-axis angles in degrees.
func (t *Transform[T]) SetRotation(x, y, z Degree[T]) {
	t.rotation = NewMat4EulerXYZ(x.ToRadian(), y.ToRadian(), z.ToRadian())
	t.isDirty = true
}

func (t *Transform[T]) SetRotationMatrix(m Mat4[T]) {
	t.rotation = m
	t.isDirty = true
}

func (t *Transform[T]) SetRotationQuaternion(q Quaternion[T]) {
	t.rotation = q.ToMat4()
	t.isDirty = true
}

// SetTranslation sets the translation column.
func (t *Transform[T]) SetTranslation(x, y, z T) {
	t.translation = NewMat4Translation(NewVec3(x, y, z))
	t.isDirty = true
}

func (t *Transform[T]) SetTranslationMatrix(m Mat4[T]) {
	t.translation = m
	t.isDirty = true
}

func (t *Transform[T]) Scaling() Mat4[T] {
	return t.scaling
}

func (t *Transform[T]) Rotation() Mat4[T] {
	return t.rotation
}

func (t *Transform[T]) Translation() Mat4[T] {
	return t.translation
}

// Final returns translation * rotation * scaling, rebuilding it only when a
// setter ran since the previous call.
func (t *Transform[T]) Final() Mat4[T] {
	if t.isDirty {
		tr := t.translation.Mul(t.rotation)
		t.final = tr.Mul(t.scaling)
		t.isDirty = false
	}
	return t.final
}

// World returns the parent chain's world matrix applied after Final.
func (t *Transform[T]) World() Mat4[T] {
	if t == nil {
		return NewMat4Identity[T]()
	}
	l := t.Final()
	if t.Parent != nil {
		p := t.Parent.World()
		return p.Mul(l)
	}
	return l
}
