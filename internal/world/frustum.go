package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Frustum represents the 6 planes of a view frustum for culling
type Frustum struct {
	planes [6]Plane // left, right, bottom, top, near, far
}

// Plane represents a plane in 3D space (ax + by + cz + d = 0)
type Plane struct {
	normal   rl.Vector3
	distance float32
}

const (
	frustumNear float32 = 0.1
	frustumFar  float32 = 1000.0
)

// ExtractFrustum extracts frustum planes from the camera's view-projection
// matrix (Gribb/Hartmann). aspect is viewport width over height.
func ExtractFrustum(camera rl.Camera3D, aspect float32) Frustum {
	view := rl.MatrixLookAt(camera.Position, camera.Target, camera.Up)

	var proj rl.Matrix
	if camera.Projection == rl.CameraPerspective {
		// raylib takes fovy in degrees here
		proj = rl.MatrixPerspective(camera.Fovy, aspect, frustumNear, frustumFar)
	} else {
		halfH := camera.Fovy / 2.0
		halfW := halfH * aspect
		proj = rl.MatrixOrtho(-halfW, halfW, -halfH, halfH, frustumNear, frustumFar)
	}

	// raylib multiplies left to right, so this is P * V
	vp := rl.MatrixMultiply(view, proj)

	rows := [4][4]float32{
		{vp.M0, vp.M4, vp.M8, vp.M12},
		{vp.M1, vp.M5, vp.M9, vp.M13},
		{vp.M2, vp.M6, vp.M10, vp.M14},
		{vp.M3, vp.M7, vp.M11, vp.M15},
	}

	var f Frustum
	for axis := 0; axis < 3; axis++ {
		f.planes[axis*2] = planeFromRow(rows[3], rows[axis], 1)
		f.planes[axis*2+1] = planeFromRow(rows[3], rows[axis], -1)
	}
	return f
}

func planeFromRow(w, r [4]float32, sign float32) Plane {
	return normalizePlane(Plane{
		normal: rl.Vector3{
			X: w[0] + sign*r[0],
			Y: w[1] + sign*r[1],
			Z: w[2] + sign*r[2],
		},
		distance: w[3] + sign*r[3],
	})
}

// normalizePlane normalizes a plane equation
func normalizePlane(p Plane) Plane {
	length := rl.Vector3Length(p.normal)
	if length == 0 {
		return p
	}
	return Plane{
		normal:   rl.Vector3Scale(p.normal, 1.0/length),
		distance: p.distance / length,
	}
}

// ContainsSphere tests if a sphere is inside or intersects the frustum
func (f *Frustum) ContainsSphere(center rl.Vector3, radius float32) bool {
	for i := range f.planes {
		dist := rl.Vector3DotProduct(f.planes[i].normal, center) + f.planes[i].distance
		if dist < -radius {
			return false
		}
	}
	return true
}
