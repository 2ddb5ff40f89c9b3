package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// OrbitCamera circles a pivot point. Pitch is kept inside Limits on every orbit input.
type OrbitCamera struct {
	Pivot     rl.Vector3
	Distance  float32
	Yaw       float32 // degrees, [0, 360)
	Pitch     float32 // degrees, [0, 360); values above 180 look down
	Limits    PitchRange
	LookSpeed float32
	ZoomSpeed float32
	Fovy      float32

	MinDistance float32
	MaxDistance float32
}

func NewOrbitCamera(pivot rl.Vector3) *OrbitCamera {
	c := &OrbitCamera{
		Pivot:       pivot,
		Distance:    12.0,
		Yaw:         90.0,
		LookSpeed:   0.2,
		ZoomSpeed:   1.5,
		Fovy:        45,
		Limits:      PitchRange{Min: -80, Max: 80},
		MinDistance: 2.0,
		MaxDistance: 60.0,
	}
	c.Pitch = ClampPitch(-20, c.Limits)
	return c
}

// Orbit applies a look delta (usually mouse pixels) and re-clamps pitch.
func (c *OrbitCamera) Orbit(dx, dy float32) {
	c.Yaw = normalizeAngle(c.Yaw + dx*c.LookSpeed)
	c.Pitch = ClampPitch(c.Pitch-dy*c.LookSpeed, c.Limits)
}

// Zoom moves toward (positive delta) or away from the pivot.
func (c *OrbitCamera) Zoom(delta float32) {
	c.Distance -= delta * c.ZoomSpeed
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}

// Update reads raylib input. Orbiting needs the right mouse button held.
func (c *OrbitCamera) Update() {
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		delta := rl.GetMouseDelta()
		if delta.X != 0 || delta.Y != 0 {
			c.Orbit(delta.X, delta.Y)
		}
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		c.Zoom(wheel)
	}
}

// LookDirection is the unit vector from the camera toward the pivot.
func (c *OrbitCamera) LookDirection() rl.Vector3 {
	yawRad := float64(c.Yaw) * math.Pi / 180
	pitchRad := float64(c.Pitch) * math.Pi / 180
	return rl.Vector3{
		X: float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		Y: float32(math.Sin(pitchRad)),
		Z: float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}
}

func (c *OrbitCamera) Position() rl.Vector3 {
	return rl.Vector3Subtract(c.Pivot, rl.Vector3Scale(c.LookDirection(), c.Distance))
}

func (c *OrbitCamera) GetRaylibCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position(),
		Target:     c.Pivot,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.Fovy,
		Projection: rl.CameraPerspective,
	}
}
