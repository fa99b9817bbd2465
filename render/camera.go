// Package render projects a terrain mesh into screen-space triangles. It
// knows nothing about the graphics library that finally draws them.
package render

import (
	"math"

	"ProceduralTerrainGen/mesh"
)

const maxPitch = math.Pi/2 - 0.01

// OrbitCamera circles a target point. Rotation input is eased in over
// several updates when Damping is set.
type OrbitCamera struct {
	Target mesh.Vec3
	FOV    float64 // vertical, radians
	Near   float64
	Far    float64

	// Damping is the fraction of pending rotation applied per Update.
	// Zero applies rotation immediately.
	Damping     float64
	MinDistance float64
	MaxDistance float64

	yaw, pitch, distance float64
	dYaw, dPitch         float64
}

// NewOrbitCamera places the camera at eye looking at target with a 75°
// field of view and 0.05 damping.
func NewOrbitCamera(eye, target mesh.Vec3) *OrbitCamera {
	off := eye.Sub(target)
	dist := off.Len()
	c := &OrbitCamera{
		Target:      target,
		FOV:         75 * math.Pi / 180,
		Near:        0.1,
		Far:         1000,
		Damping:     0.05,
		MinDistance: 5,
		MaxDistance: 600,
		distance:    dist,
	}
	if dist > 0 {
		c.yaw = math.Atan2(off.X, off.Z)
		c.pitch = math.Asin(off.Y / dist)
	}
	return c
}

// Rotate queues a change of yaw and pitch, in radians.
func (c *OrbitCamera) Rotate(dYaw, dPitch float64) {
	c.dYaw += dYaw
	c.dPitch += dPitch
}

// Zoom multiplies the orbit distance. Factors below 1 move closer.
func (c *OrbitCamera) Zoom(factor float64) {
	if factor <= 0 {
		return
	}
	c.distance = clampf(c.distance*factor, c.MinDistance, c.MaxDistance)
}

// Update applies pending rotation.
func (c *OrbitCamera) Update() {
	k := c.Damping
	if k <= 0 || k > 1 {
		k = 1
	}
	c.yaw += c.dYaw * k
	c.pitch = clampf(c.pitch+c.dPitch*k, -maxPitch, maxPitch)
	c.dYaw *= 1 - k
	c.dPitch *= 1 - k
}

// Settled reports whether no rotation is pending.
func (c *OrbitCamera) Settled() bool {
	return math.Abs(c.dYaw) < 1e-6 && math.Abs(c.dPitch) < 1e-6
}

func (c *OrbitCamera) Distance() float64 { return c.distance }

// Yaw is the heading around the vertical axis, radians.
func (c *OrbitCamera) Yaw() float64 { return c.yaw }

// Eye returns the camera position.
func (c *OrbitCamera) Eye() mesh.Vec3 {
	cp := math.Cos(c.pitch)
	return c.Target.Add(mesh.Vec3{
		X: cp * math.Sin(c.yaw),
		Y: math.Sin(c.pitch),
		Z: cp * math.Cos(c.yaw),
	}.Scale(c.distance))
}

// View freezes the camera for one frame at the given viewport size.
func (c *OrbitCamera) View(width, height int) View {
	eye := c.Eye()
	fwd := c.Target.Sub(eye).Normalize()
	right := fwd.Cross(mesh.Vec3{Y: 1}).Normalize()
	up := right.Cross(fwd)
	return View{
		Eye:     eye,
		right:   right,
		up:      up,
		forward: fwd,
		focal:   float64(height) / 2 / math.Tan(c.FOV/2),
		cx:      float64(width) / 2,
		cy:      float64(height) / 2,
		near:    c.Near,
		far:     c.Far,
	}
}

// View is a camera snapshot used to project many points.
type View struct {
	Eye mesh.Vec3

	right, up, forward mesh.Vec3
	focal, cx, cy      float64
	near, far          float64
}

// Project maps p to screen pixels. depth is the distance along the view
// axis; ok is false when p lies outside the near/far range.
func (v View) Project(p mesh.Vec3) (sx, sy, depth float64, ok bool) {
	d := p.Sub(v.Eye)
	depth = d.Dot(v.forward)
	if depth < v.near || depth > v.far {
		return 0, 0, depth, false
	}
	sx = v.cx + d.Dot(v.right)*v.focal/depth
	sy = v.cy - d.Dot(v.up)*v.focal/depth
	return sx, sy, depth, true
}

func clampf(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
