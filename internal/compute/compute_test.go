package compute

import (
	"math"
	"testing"

	"github.com/san-kum/heartbeat/internal/scene"
)

func TestTransformApply(t *testing.T) {
	tests := []struct {
		name string
		xf   Transform
		in   scene.Vec3
		want scene.Vec3
	}{
		{"identity", Transform{Scale: 1}, scene.Vec3{X: 1, Y: 2, Z: 3}, scene.Vec3{X: 1, Y: 2, Z: 3}},
		{"scale", Transform{Scale: 2}, scene.Vec3{X: 1, Y: -1, Z: 0.5}, scene.Vec3{X: 2, Y: -2, Z: 1}},
		{"quarter spin", Transform{RotationY: math.Pi / 2, Scale: 1}, scene.Vec3{X: 1, Y: 0, Z: 0}, scene.Vec3{X: 0, Y: 0, Z: -1}},
		{"quarter tilt", Transform{RotationX: math.Pi / 2, Scale: 1}, scene.Vec3{X: 0, Y: 1, Z: 0}, scene.Vec3{X: 0, Y: 0, Z: 1}},
	}

	for _, tt := range tests {
		got := tt.xf.Apply(tt.in)
		if got.Sub(tt.want).Length() > 1e-9 {
			t.Errorf("%s: expected %+v, got %+v", tt.name, tt.want, got)
		}
	}
}

func TestMatrixMatchesApply(t *testing.T) {
	xf := Transform{RotationX: 0.3, RotationY: 1.1, Scale: 1.2}
	m := xf.Matrix()
	p := scene.Vec3{X: 0.4, Y: -0.7, Z: 0.2}

	got := scene.Vec3{
		X: float64(m[0])*p.X + float64(m[4])*p.Y + float64(m[8])*p.Z + float64(m[12]),
		Y: float64(m[1])*p.X + float64(m[5])*p.Y + float64(m[9])*p.Z + float64(m[13]),
		Z: float64(m[2])*p.X + float64(m[6])*p.Y + float64(m[10])*p.Z + float64(m[14]),
	}
	if want := xf.Apply(p); got.Sub(want).Length() > 1e-6 {
		t.Errorf("matrix gives %+v, Apply gives %+v", got, want)
	}
	if m[15] != 1 || m[3] != 0 || m[7] != 0 || m[11] != 0 {
		t.Errorf("matrix is not affine: %v", m)
	}
}

func TestCPUTransformMatchesSerial(t *testing.T) {
	n := parallelThreshold*2 + 17
	src := make(scene.PointCloud, n*3)
	for i := range src {
		src[i] = float32(math.Sin(float64(i)))
	}
	xf := Transform{RotationX: -0.2, RotationY: 2.5, Scale: 0.9}

	dst := make([]float32, len(src))
	cpu := &CPUBackend{workers: 4}
	cpu.Transform(dst, src, xf)

	for i := 0; i < n; i++ {
		want := xf.Apply(src.At(i))
		got := scene.PointCloud(dst).At(i)
		if got.Sub(want).Length() > 1e-5 {
			t.Fatalf("point %d: expected %+v, got %+v", i, want, got)
		}
	}
}

func TestCPUTransformEmpty(t *testing.T) {
	NewCPUBackend().Transform(nil, scene.PointCloud{}, Transform{Scale: 1})
}

func TestDefaultBackend(t *testing.T) {
	b := GetBackend()
	if b == nil || !b.Available() {
		t.Fatal("expected an available default backend")
	}
	if b.Name() != "cpu" {
		t.Errorf("expected cpu backend, got %s", b.Name())
	}
}
