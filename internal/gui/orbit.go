package gui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Orbit is the camera rig: a target point plus spherical offset.
type Orbit struct {
	Yaw, Pitch float64
	Distance   float64
	Target     rl.Vector3
}

func NewOrbit(distance float64) Orbit {
	return Orbit{Distance: distance}
}

func (o *Orbit) Rotate(dYaw, dPitch float64) {
	o.Yaw += dYaw
	o.Pitch = math.Max(-1.5, math.Min(1.5, o.Pitch+dPitch))
}

// Pan moves the target in the camera plane.
func (o *Orbit) Pan(dx, dy float64) {
	right := rl.NewVector3(float32(math.Cos(o.Yaw)), 0, float32(-math.Sin(o.Yaw)))
	o.Target = rl.Vector3Add(o.Target, rl.Vector3Scale(right, float32(dx)))
	o.Target.Y += float32(dy)
}

func (o *Orbit) Zoom(wheel float64) {
	o.Distance = math.Max(1, math.Min(50, o.Distance*math.Pow(0.9, wheel)))
}

// Place returns the camera position and target.
func (o *Orbit) Place() (rl.Vector3, rl.Vector3) {
	cp := math.Cos(o.Pitch)
	offset := rl.NewVector3(
		float32(o.Distance*math.Sin(o.Yaw)*cp),
		float32(o.Distance*math.Sin(o.Pitch)),
		float32(o.Distance*math.Cos(o.Yaw)*cp),
	)
	return rl.Vector3Add(o.Target, offset), o.Target
}
