package components

import (
	"github.com/spaghettifunk/ogltech/engine/math"
)

/** @brief The name of the default camera. */
const DEFAULT_CAMERA_NAME string = "default"

// pitch is kept away from the poles to avoid gimbal lock.
var pitchLimit = math.Deg[float32](89)

/**
 * @brief Represents a camera that can be used for
 * a variety of things, especially rendering. Ideally,
 * these are created and managed by the camera system.
 */
type Camera struct {
	/**
	 * @brief The position of this camera.
	 * NOTE: Do not set this directly, use SetPosition instead
	 * so the view matrix is recalculated when needed.
	 */
	position math.Vec3f
	/** @brief Euler rotation of the camera: pitch (x), yaw (y) and roll (z). */
	pitch, yaw, roll math.Degreef
	/** @brief Internal flag used to determine when the view matrix needs to be rebuilt. */
	viewDirty bool
	/**
	 * @brief The view matrix of this camera.
	 * NOTE: IMPORTANT: Do not read this directly, use View instead
	 * so the view matrix is recalculated when needed.
	 */
	viewMatrix math.Mat4f

	fov       math.Degreef
	aspect    float32
	near, far float32

	projectionDirty  bool
	projectionMatrix math.Mat4f
}

type CameraLookup struct {
	ID             uint16
	ReferenceCount uint16
	Camera         *Camera
}

func NewCamera() *Camera {
	camera := &Camera{}
	camera.Reset()
	return camera
}

// Reset puts the camera at the origin looking down -z with a 45° lens.
func (c *Camera) Reset() {
	c.position = math.NewVec3Zero[float32]()
	c.pitch = math.Deg[float32](0)
	c.yaw = math.Deg[float32](0)
	c.roll = math.Deg[float32](0)
	c.viewMatrix = math.NewMat4Identity[float32]()
	c.viewDirty = false

	c.fov = math.Deg[float32](45)
	c.aspect = 16.0 / 9.0
	c.near = 0.1
	c.far = 1000.0
	c.projectionDirty = true
}

func (c *Camera) Position() math.Vec3f {
	return c.position
}

func (c *Camera) SetPosition(position math.Vec3f) {
	c.position = position
	c.viewDirty = true
}

// Rotation returns pitch, yaw and roll.
func (c *Camera) Rotation() (math.Degreef, math.Degreef, math.Degreef) {
	return c.pitch, c.yaw, c.roll
}

// SetRotation sets the Euler angles. Pitch is clamped like Pitch does.
func (c *Camera) SetRotation(pitch, yaw, roll math.Degreef) {
	c.pitch = clampPitch(pitch)
	c.yaw = yaw
	c.roll = roll
	c.viewDirty = true
}

// SetPerspective replaces the lens. fov is the vertical field of view.
func (c *Camera) SetPerspective(fov math.Degreef, aspect, near, far float32) {
	c.fov = fov
	c.aspect = aspect
	c.near = near
	c.far = far
	c.projectionDirty = true
}

// SetAspect updates the aspect ratio, typically after a resize.
func (c *Camera) SetAspect(aspect float32) {
	c.aspect = aspect
	c.projectionDirty = true
}

func (c *Camera) Aspect() float32 {
	return c.aspect
}

// View returns the inverse of the camera's world matrix, translation * rotation.
func (c *Camera) View() math.Mat4f {
	if c.viewDirty {
		rotation := math.NewMat4EulerXYZ(c.pitch.ToRadian(), c.yaw.ToRadian(), c.roll.ToRadian())
		translation := math.NewMat4Translation(c.position)

		c.viewMatrix = translation.Mul(rotation)
		c.viewMatrix.Inverse()

		c.viewDirty = false
	}
	return c.viewMatrix
}

func (c *Camera) Projection() math.Mat4f {
	if c.projectionDirty {
		c.projectionMatrix = math.NewMat4Perspective(c.fov.ToRadian(), c.aspect, c.near, c.far)
		c.projectionDirty = false
	}
	return c.projectionMatrix
}

// ViewProjection returns projection * view.
func (c *Camera) ViewProjection() math.Mat4f {
	p := c.Projection()
	return p.Mul(c.View())
}

func (c *Camera) Forward() math.Vec3f {
	view := c.View()
	return view.Forward()
}

func (c *Camera) Backward() math.Vec3f {
	view := c.View()
	return view.Backward()
}

func (c *Camera) Left() math.Vec3f {
	view := c.View()
	return view.Left()
}

func (c *Camera) Right() math.Vec3f {
	view := c.View()
	return view.Right()
}

func (c *Camera) MoveForward(amount float32) {
	c.move(c.Forward(), amount)
}

func (c *Camera) MoveBackward(amount float32) {
	c.move(c.Backward(), amount)
}

func (c *Camera) MoveLeft(amount float32) {
	c.move(c.Left(), amount)
}

func (c *Camera) MoveRight(amount float32) {
	c.move(c.Right(), amount)
}

func (c *Camera) MoveUp(amount float32) {
	c.move(math.NewVec3Up[float32](), amount)
}

func (c *Camera) MoveDown(amount float32) {
	c.move(math.NewVec3Down[float32](), amount)
}

func (c *Camera) move(direction math.Vec3f, amount float32) {
	c.position = c.position.Add(direction.MulScalar(amount))
	c.viewDirty = true
}

func (c *Camera) Yaw(amount math.Degreef) {
	c.yaw.SetAdd(amount)
	c.viewDirty = true
}

func (c *Camera) Pitch(amount math.Degreef) {
	c.pitch = clampPitch(c.pitch.Add(amount))
	c.viewDirty = true
}

func clampPitch(pitch math.Degreef) math.Degreef {
	limit := pitchLimit.Value()
	return math.Deg(math.Clamp(pitch.Value(), -limit, limit))
}
