package viz

import (
	"math"

	"github.com/san-kum/heartbeat/internal/cloud"
	"github.com/san-kum/heartbeat/internal/compute"
	"github.com/san-kum/heartbeat/internal/scene"
)

const (
	cameraDistance = 6.0
	cameraFOV      = math.Pi / 3
	cameraNear     = 0.1
)

// Camera orbits a target point in front of the scene origin.
type Camera struct {
	Yaw, Pitch float64
	Zoom       float64
	Pan        scene.Vec3
	Distance   float64
	FOV        float64
}

func NewCamera() *Camera {
	return &Camera{Zoom: 1, Distance: cameraDistance, FOV: cameraFOV}
}

func (c *Camera) Orbit(dYaw, dPitch float64) {
	c.Yaw += dYaw
	c.Pitch = math.Max(-1.5, math.Min(1.5, c.Pitch+dPitch))
}

func (c *Camera) Move(dx, dy float64) {
	c.Pan.X += dx
	c.Pan.Y += dy
}

func (c *Camera) ZoomIn()  { c.Zoom = math.Min(10, c.Zoom*1.2) }
func (c *Camera) ZoomOut() { c.Zoom = math.Max(0.1, c.Zoom/1.2) }

func (c *Camera) Reset() {
	*c = *NewCamera()
}

// View maps a world point into camera space, looking down -Z.
func (c *Camera) View(p scene.Vec3) scene.Vec3 {
	p = p.Sub(c.Pan)
	cy, sy := math.Cos(-c.Yaw), math.Sin(-c.Yaw)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy
	cx, sx := math.Cos(-c.Pitch), math.Sin(-c.Pitch)
	p.Y, p.Z = p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
	p.Z -= c.Distance / c.Zoom
	return p
}

// Project converts world coordinates to sub-pixel coordinates on a sw×sh
// screen. Returns x, y, depth and whether the point lands on screen.
func (c *Camera) Project(p scene.Vec3, sw, sh int) (int, int, float64, bool) {
	v := c.View(p)
	depth := -v.Z
	if depth < cameraNear {
		return 0, 0, 0, false
	}
	focal := float64(sh) / 2 / math.Tan(c.FOV/2)
	sx := int(math.Floor(v.X/depth*focal)) + sw/2
	sy := int(math.Floor(-v.Y/depth*focal)) + sh/2
	return sx, sy, depth, sx >= 0 && sx < sw && sy >= 0 && sy < sh
}

// RenderClouds paints every visible shape of f onto the canvas. scratch is
// reused between calls when large enough; the returned slice is the buffer
// actually used.
func RenderClouds(cv *Canvas, cam *Camera, set *cloud.Set, f scene.Frame, b compute.Backend, scratch []float32) []float32 {
	if cv == nil || cam == nil || set == nil {
		return scratch
	}
	if b == nil {
		b = compute.GetBackend()
	}
	sw, sh := cv.DotWidth(), cv.DotHeight()

	for _, name := range scene.Shapes {
		sf, ok := f.Shape(name)
		if !ok || !sf.Visible {
			continue
		}
		pc, ok := set.Cloud(name)
		if !ok || pc.Len() == 0 {
			continue
		}
		if cap(scratch) < len(pc) {
			scratch = make([]float32, len(pc))
		}
		world := scratch[:len(pc)]
		b.Transform(world, pc, compute.FromShape(sf))

		for i := 0; i < pc.Len(); i++ {
			p := scene.Vec3{X: float64(world[i*3]), Y: float64(world[i*3+1]), Z: float64(world[i*3+2])}
			if x, y, _, vis := cam.Project(p, sw, sh); vis {
				cv.Paint(x, y, sf.Color)
			}
		}
	}
	return scratch
}
