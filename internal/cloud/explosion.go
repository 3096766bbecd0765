package cloud

import "github.com/san-kum/heartbeat/internal/scene"

// Explosion fills a cube of side 2·HalfExtent centered at the origin with
// uniformly distributed points.
func Explosion(src Source, p scene.ExplosionParams) scene.PointCloud {
	if p.Count <= 0 {
		return scene.PointCloud{}
	}
	out := make(scene.PointCloud, p.Count*3)
	for i := range out {
		out[i] = float32(uniform(src, -p.HalfExtent, p.HalfExtent))
	}
	return out
}
