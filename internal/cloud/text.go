package cloud

import (
	"image"

	"github.com/san-kum/heartbeat/internal/scene"
)

// TextMask extrudes the lit cells of a rasterized caption into p.Layers depth
// copies. The mask is sampled every p.Stride pixels in both axes; a cell is lit
// when its 8-bit alpha exceeds p.AlphaThreshold. Coordinates are centered on the
// mask bounds, flipped so +Y is up, scaled by p.PixelScale and lifted by p.YOffset.
//
// A nil or fully transparent mask gives an empty cloud.
func TextMask(mask image.Image, p scene.TextParams) scene.PointCloud {
	if mask == nil || p.Layers <= 0 {
		return scene.PointCloud{}
	}
	stride := p.Stride
	if stride < 1 {
		stride = 1
	}

	b := mask.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	half := float64(p.Layers) / 2

	out := make(scene.PointCloud, 0, 1024)
	for y := b.Min.Y; y < b.Max.Y; y += stride {
		for x := b.Min.X; x < b.Max.X; x += stride {
			if !lit(mask, x, y, p.AlphaThreshold) {
				continue
			}
			px := (float64(x-b.Min.X) - w/2) * p.PixelScale
			py := (h/2-float64(y-b.Min.Y))*p.PixelScale + p.YOffset
			for z := 0; z < p.Layers; z++ {
				out = append(out, float32(px), float32(py), float32((float64(z)-half)*p.LayerSpacing))
			}
		}
	}
	return out
}

func lit(mask image.Image, x, y int, threshold uint8) bool {
	if a, ok := mask.(*image.Alpha); ok {
		return a.AlphaAt(x, y).A > threshold
	}
	_, _, _, a := mask.At(x, y).RGBA()
	return uint8(a>>8) > threshold
}
