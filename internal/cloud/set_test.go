package cloud

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/san-kum/heartbeat/internal/scene"
)

type stubRasterizer struct {
	mask *image.Alpha
	err  error
}

func (s stubRasterizer) Rasterize(scene.TextParams) (*image.Alpha, error) {
	return s.mask, s.err
}

func TestBuild(t *testing.T) {
	mask := image.NewAlpha(image.Rect(0, 0, 8, 8))
	mask.SetAlpha(0, 0, color.Alpha{A: 255})

	hp := scene.DefaultHeartParams()
	hp.Count = 50
	tp := scene.DefaultTextParams()
	ep := scene.DefaultExplosionParams()
	ep.Enabled = true
	ep.Count = 20

	s, err := Build(NewSource(5), stubRasterizer{mask: mask}, hp, tp, ep)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if s.Heart.Len() != 50 || s.Explosion.Len() != 20 || s.Text.Len() != tp.Layers {
		t.Errorf("unexpected counts heart=%d explosion=%d text=%d", s.Heart.Len(), s.Explosion.Len(), s.Text.Len())
	}
	if s.Total() != 50+20+tp.Layers {
		t.Errorf("unexpected total %d", s.Total())
	}

	for _, name := range scene.Shapes {
		if _, ok := s.Cloud(name); !ok {
			t.Errorf("shape %s missing from set", name)
		}
	}
}

func TestBuildExplosionDisabled(t *testing.T) {
	hp := scene.DefaultHeartParams()
	hp.Count = 10
	s, err := Build(NewSource(5), stubRasterizer{mask: image.NewAlpha(image.Rect(0, 0, 4, 4))}, hp, scene.DefaultTextParams(), scene.DefaultExplosionParams())
	if err != nil {
		t.Fatal(err)
	}
	if s.Explosion.Len() != 0 {
		t.Errorf("expected no explosion points, got %d", s.Explosion.Len())
	}
}

func TestBuildRasterizerError(t *testing.T) {
	_, err := Build(NewSource(5), stubRasterizer{err: scene.ErrUnknownFont}, scene.DefaultHeartParams(), scene.DefaultTextParams(), scene.DefaultExplosionParams())
	if !errors.Is(err, scene.ErrUnknownFont) {
		t.Errorf("expected ErrUnknownFont, got %v", err)
	}
}
