// Package raster renders caption text into alpha masks for the text cloud.
package raster

import (
	"fmt"
	"image"
	"sort"

	"github.com/san-kum/heartbeat/internal/scene"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// FontBasic is the bitmap face; it is scaled to the requested size with
// nearest-neighbour sampling, so it renders identically everywhere.
const FontBasic = "basic"

var truetype = map[string][]byte{
	"gobold":    gobold.TTF,
	"goregular": goregular.TTF,
}

// FontNames lists the faces a caption may use.
func FontNames() []string {
	names := []string{FontBasic}
	for name := range truetype {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Rasterizer draws captions with the embedded Go fonts or the basic bitmap face.
type Rasterizer struct {
	parsed map[string]*opentype.Font
}

func New() *Rasterizer {
	return &Rasterizer{parsed: make(map[string]*opentype.Font)}
}

// Rasterize draws p.Caption in white on a transparent canvas of
// p.CanvasWidth×p.CanvasHeight, centered horizontally with its baseline at
// p.Baseline. An empty caption returns a blank canvas without touching fonts.
func (r *Rasterizer) Rasterize(p scene.TextParams) (*image.Alpha, error) {
	if p.CanvasWidth <= 0 || p.CanvasHeight <= 0 {
		return nil, &scene.ParamError{Field: "text canvas", Reason: fmt.Sprintf("%dx%d", p.CanvasWidth, p.CanvasHeight)}
	}
	dst := image.NewAlpha(image.Rect(0, 0, p.CanvasWidth, p.CanvasHeight))
	if p.Caption == "" {
		return dst, nil
	}

	if p.Font.Name == FontBasic {
		drawBasic(dst, p)
		return dst, nil
	}

	face, err := r.face(p.Font)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	d := &font.Drawer{Dst: dst, Src: image.White, Face: face}
	adv := d.MeasureString(p.Caption)
	d.Dot = fixed.Point26_6{
		X: (fixed.I(p.CanvasWidth) - adv) / 2,
		Y: fixed.I(p.Baseline),
	}
	d.DrawString(p.Caption)
	return dst, nil
}

func (r *Rasterizer) face(spec scene.FontSpec) (font.Face, error) {
	f, ok := r.parsed[spec.Name]
	if !ok {
		ttf, known := truetype[spec.Name]
		if !known {
			return nil, fmt.Errorf("%w: %q (available: %v)", scene.ErrUnknownFont, spec.Name, FontNames())
		}
		var err error
		f, err = opentype.Parse(ttf)
		if err != nil {
			return nil, fmt.Errorf("parse font %s: %w", spec.Name, err)
		}
		r.parsed[spec.Name] = f
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    spec.Size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// drawBasic renders at the face's native 7x13 cell and scales the result up to
// the requested pixel size.
func drawBasic(dst *image.Alpha, p scene.TextParams) {
	face := basicfont.Face7x13
	m := face.Metrics()
	ascent, descent := m.Ascent.Ceil(), m.Descent.Ceil()

	d := &font.Drawer{Face: face, Src: image.White}
	adv := d.MeasureString(p.Caption).Ceil()
	small := image.NewAlpha(image.Rect(0, 0, adv, ascent+descent))
	d.Dst = small
	d.Dot = fixed.P(0, ascent)
	d.DrawString(p.Caption)

	factor := p.Font.Size / float64(ascent+descent)
	if factor <= 0 {
		factor = 1
	}
	w := int(float64(adv) * factor)
	h := int(float64(ascent+descent) * factor)
	x0 := (p.CanvasWidth - w) / 2
	y0 := p.Baseline - int(float64(ascent)*factor)
	draw.NearestNeighbor.Scale(dst, image.Rect(x0, y0, x0+w, y0+h), small, small.Bounds(), draw.Over, nil)
}
