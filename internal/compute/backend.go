package compute

import (
	"math"

	"github.com/san-kum/heartbeat/internal/scene"
)

type Backend interface {
	Name() string
	Available() bool
	Transform(dst []float32, src scene.PointCloud, xf Transform)
	Cleanup()
}

// Transform is the object transform of one shape for one frame.
type Transform struct {
	RotationX float64
	RotationY float64
	Scale     float64
}

func FromShape(f scene.ShapeFrame) Transform {
	return Transform{RotationX: f.RotationX, RotationY: f.RotationY, Scale: f.Scale}
}

// Apply maps a model-space point to world space.
func (xf Transform) Apply(v scene.Vec3) scene.Vec3 {
	v = v.Scale(xf.Scale)
	cy, sy := math.Cos(xf.RotationY), math.Sin(xf.RotationY)
	v.X, v.Z = v.X*cy+v.Z*sy, -v.X*sy+v.Z*cy
	cx, sx := math.Cos(xf.RotationX), math.Sin(xf.RotationX)
	v.Y, v.Z = v.Y*cx-v.Z*sx, v.Y*sx+v.Z*cx
	return v
}

// Matrix returns Rx·Ry·S in column-major order for shader uniforms.
func (xf Transform) Matrix() [16]float32 {
	cx, sx := math.Cos(xf.RotationX), math.Sin(xf.RotationX)
	cy, sy := math.Cos(xf.RotationY), math.Sin(xf.RotationY)
	s := xf.Scale

	// rows of Rx·Ry
	r := [3][3]float64{
		{cy, 0, sy},
		{sx * sy, cx, -sx * cy},
		{-cx * sy, sx, cx * cy},
	}
	var m [16]float32
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			m[col*4+row] = float32(r[row][col] * s)
		}
	}
	m[15] = 1
	return m
}

var activeBackend Backend

func init() {
	activeBackend = AutoSelectBackend()
}

// GetBackend returns the host transform backend shared by the renderers.
func GetBackend() Backend {
	return activeBackend
}

// AutoSelectBackend returns the host backend; the GPU path draws directly and
// never hands points back.
func AutoSelectBackend() Backend {
	return NewCPUBackend()
}
