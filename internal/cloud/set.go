package cloud

import (
	"fmt"
	"image"

	"github.com/san-kum/heartbeat/internal/scene"
)

// Rasterizer turns a caption into an alpha mask of the configured canvas size.
type Rasterizer interface {
	Rasterize(p scene.TextParams) (*image.Alpha, error)
}

// Set holds the three clouds built at startup.
type Set struct {
	Heart     scene.PointCloud
	Text      scene.PointCloud
	Explosion scene.PointCloud
}

// Cloud returns the cloud for a shape name.
func (s *Set) Cloud(name string) (scene.PointCloud, bool) {
	switch name {
	case scene.ShapeHeart:
		return s.Heart, true
	case scene.ShapeText:
		return s.Text, true
	case scene.ShapeExplosion:
		return s.Explosion, true
	}
	return nil, false
}

// Total returns the number of points across all shapes.
func (s *Set) Total() int {
	return s.Heart.Len() + s.Text.Len() + s.Explosion.Len()
}

// Build generates every cloud. Random draws happen in a fixed order (heart,
// then explosion) so a seeded source reproduces the same set. The explosion
// cloud is empty unless ep.Enabled. Only rasterizer failures are returned.
func Build(src Source, r Rasterizer, hp scene.HeartParams, tp scene.TextParams, ep scene.ExplosionParams) (*Set, error) {
	s := &Set{Heart: Heart(src, hp)}

	if ep.Enabled {
		s.Explosion = Explosion(src, ep)
	} else {
		s.Explosion = scene.PointCloud{}
	}

	mask, err := r.Rasterize(tp)
	if err != nil {
		return nil, fmt.Errorf("rasterize caption: %w", err)
	}
	s.Text = TextMask(mask, tp)
	return s, nil
}
