package viz

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"os"
)

const (
	cellW = 8
	cellH = 16
)

func (m *Model) toggleRecording() {
	if !m.recording {
		m.recording = true
		m.frames = m.frames[:0]
		m.message = ""
		return
	}
	m.recording = false
	if err := SaveGIF(m.gifPath, m.frames, m.fps); err != nil {
		m.message = err.Error()
	} else if len(m.frames) > 0 {
		m.message = fmt.Sprintf("saved %d frames to %s", len(m.frames), m.gifPath)
	}
	m.frames = nil
}

func (m *Model) captureFrame() {
	m.frames = append(m.frames, RasterizeCanvas(m.canvas))
}

// RasterizeCanvas draws each braille dot as a block of pixels, colored with
// its cell tint.
func RasterizeCanvas(c *Canvas) *image.Paletted {
	pal := color.Palette{color.Black}
	index := map[color.RGBA]uint8{}

	img := image.NewPaletted(image.Rect(0, 0, c.Width*cellW, c.Height*cellH), nil)
	dotW, dotH := cellW/2, cellH/4
	for y := 0; y < c.DotHeight(); y++ {
		for x := 0; x < c.DotWidth(); x++ {
			if !c.Lit(x, y) {
				continue
			}
			t := c.Tint[y/4][x/2]
			rgba := color.RGBA{R: uint8(t.R * 255), G: uint8(t.G * 255), B: uint8(t.B * 255), A: 255}
			idx, ok := index[rgba]
			if !ok {
				if len(pal) == 256 {
					idx = uint8(pal.Index(rgba))
				} else {
					idx = uint8(len(pal))
					pal = append(pal, rgba)
					index[rgba] = idx
				}
			}
			for py := 0; py < dotH; py++ {
				for px := 0; px < dotW; px++ {
					img.Pix[(y*dotH+py)*img.Stride+x*dotW+px] = idx
				}
			}
		}
	}
	img.Palette = pal
	return img
}

// SaveGIF writes frames as a looping animation. An empty recording is a no-op.
func SaveGIF(path string, frames []*image.Paletted, fps int) error {
	if len(frames) == 0 {
		return nil
	}
	if fps <= 0 {
		fps = 30
	}
	delay := 100 / fps
	if delay < 1 {
		delay = 1
	}
	anim := gif.GIF{LoopCount: 0}
	for _, f := range frames {
		anim.Image = append(anim.Image, f)
		anim.Delay = append(anim.Delay, delay)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create gif: %w", err)
	}
	defer out.Close()
	if err := gif.EncodeAll(out, &anim); err != nil {
		return fmt.Errorf("failed to encode gif: %w", err)
	}
	return nil
}
