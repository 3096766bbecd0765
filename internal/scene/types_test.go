package scene

import (
	"errors"
	"testing"
)

func TestPointCloudAccess(t *testing.T) {
	p := PointCloud{1, 2, 3, -4, 5, -6}

	if p.Len() != 2 {
		t.Fatalf("expected 2 points, got %d", p.Len())
	}
	if got := p.At(1); got != (Vec3{-4, 5, -6}) {
		t.Errorf("expected (-4,5,-6), got %+v", got)
	}

	lo, hi := p.Bounds()
	if lo != (Vec3{-4, 2, -6}) || hi != (Vec3{1, 5, 3}) {
		t.Errorf("unexpected bounds %+v %+v", lo, hi)
	}
}

func TestPointCloudEmptyBounds(t *testing.T) {
	lo, hi := PointCloud{}.Bounds()
	if lo != (Vec3{}) || hi != (Vec3{}) {
		t.Errorf("expected zero bounds for empty cloud, got %+v %+v", lo, hi)
	}
}

func TestRGBClamp(t *testing.T) {
	c := RGB{1.2, -0.1, 0.5}.Clamp()
	if c != (RGB{1, 0, 0.5}) {
		t.Errorf("expected (1,0,0.5), got %+v", c)
	}
}

func TestFrameShape(t *testing.T) {
	f := Frame{Heart: ShapeFrame{Scale: 2}, Text: ShapeFrame{Scale: 3}, Explosion: ShapeFrame{Scale: 4}}

	for i, name := range Shapes {
		s, ok := f.Shape(name)
		if !ok {
			t.Fatalf("shape %s not found", name)
		}
		if s.Scale != float64(i+2) {
			t.Errorf("shape %s: expected scale %d, got %f", name, i+2, s.Scale)
		}
	}

	if _, ok := f.Shape("comet"); ok {
		t.Error("unknown shape should not resolve")
	}
}

func TestParamErrorUnwrap(t *testing.T) {
	err := error(&ParamError{Field: "stride", Reason: "zero"})
	if !errors.Is(err, ErrInvalidParams) {
		t.Error("ParamError should unwrap to ErrInvalidParams")
	}
	if err.Error() != "scene: invalid stride: zero" {
		t.Errorf("unexpected message %q", err.Error())
	}
}
