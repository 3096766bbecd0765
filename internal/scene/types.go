package scene

import "math"

// Vec3 is a position in world units.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Length() float64      { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// PointCloud is an ordered list of positions stored flat as x0,y0,z0,x1,...
type PointCloud []float32

// Len returns the number of points.
func (p PointCloud) Len() int { return len(p) / 3 }

// At returns the i-th point.
func (p PointCloud) At(i int) Vec3 {
	return Vec3{float64(p[i*3]), float64(p[i*3+1]), float64(p[i*3+2])}
}

// Bounds returns the axis-aligned extent of the cloud. An empty cloud yields zero vectors.
func (p PointCloud) Bounds() (lo, hi Vec3) {
	if p.Len() == 0 {
		return
	}
	lo, hi = p.At(0), p.At(0)
	for i := 1; i < p.Len(); i++ {
		v := p.At(i)
		lo = Vec3{math.Min(lo.X, v.X), math.Min(lo.Y, v.Y), math.Min(lo.Z, v.Z)}
		hi = Vec3{math.Max(hi.X, v.X), math.Max(hi.Y, v.Y), math.Max(hi.Z, v.Z)}
	}
	return
}

// RGB is a normalized color. Components are not clamped and may leave [0,1]
// at extreme beat values.
type RGB struct {
	R, G, B float64
}

// Clamp limits every component to [0,1].
func (c RGB) Clamp() RGB {
	return RGB{clamp01(c.R), clamp01(c.G), clamp01(c.B)}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Shape names used by renderers and exporters.
const (
	ShapeHeart     = "heart"
	ShapeText      = "text"
	ShapeExplosion = "explosion"
)

// Shapes lists the shapes in draw order.
var Shapes = []string{ShapeHeart, ShapeText, ShapeExplosion}

// ShapeFrame is the transform and material state of one shape for one frame.
type ShapeFrame struct {
	RotationX float64
	RotationY float64
	Scale     float64
	Size      float64
	Color     RGB
	Opacity   float64
	Visible   bool
}

// Frame carries every per-frame value the renderer applies.
type Frame struct {
	Time      float64
	Beat      float64
	Heart     ShapeFrame
	Text      ShapeFrame
	Explosion ShapeFrame
}

// Shape returns the frame values for a shape name, and false for unknown names.
func (f Frame) Shape(name string) (ShapeFrame, bool) {
	switch name {
	case ShapeHeart:
		return f.Heart, true
	case ShapeText:
		return f.Text, true
	case ShapeExplosion:
		return f.Explosion, true
	}
	return ShapeFrame{}, false
}
