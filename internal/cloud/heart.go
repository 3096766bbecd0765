package cloud

import (
	"math"

	"github.com/san-kum/heartbeat/internal/scene"
)

// HeartCurve evaluates the classic heart curve at theta for unit radius.
func HeartCurve(theta float64) (x, y float64) {
	s := math.Sin(theta)
	x = 16 * s * s * s
	y = 13*math.Cos(theta) - 5*math.Cos(2*theta) - 2*math.Cos(3*theta) - math.Cos(4*theta)
	return x, y
}

// Heart samples p.Count points around the parametric heart. Each point gets a
// radial jitter in [RadiusBase, RadiusBase+RadiusJitter) and a depth in
// [-DepthSpread/2, DepthSpread/2); planar coordinates shrink by
// 1 - Falloff·|depth| so the shape thins toward the front and back.
func Heart(src Source, p scene.HeartParams) scene.PointCloud {
	if p.Count <= 0 {
		return scene.PointCloud{}
	}
	out := make(scene.PointCloud, p.Count*3)
	for i := 0; i < p.Count; i++ {
		theta := uniform(src, 0, 2*math.Pi)
		r := uniform(src, p.RadiusBase, p.RadiusBase+p.RadiusJitter)
		hx, hy := HeartCurve(theta)

		depth := uniform(src, -p.DepthSpread/2, p.DepthSpread/2)
		falloff := 1 - p.Falloff*math.Abs(depth)

		out[i*3] = float32(r * hx * p.PlanarScale * falloff)
		out[i*3+1] = float32(r * hy * p.PlanarScale * falloff)
		out[i*3+2] = float32(depth * p.DepthScale)
	}
	return out
}
