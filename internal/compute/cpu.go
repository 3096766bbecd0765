package compute

import (
	"math"
	"runtime"
	"sync"

	"github.com/san-kum/heartbeat/internal/scene"
)

// parallelThreshold is the point count below which splitting costs more than it saves.
const parallelThreshold = 4096

type CPUBackend struct {
	workers int
}

func NewCPUBackend() *CPUBackend {
	return &CPUBackend{
		workers: runtime.NumCPU(),
	}
}

func (c *CPUBackend) Name() string    { return "cpu" }
func (c *CPUBackend) Available() bool { return true }
func (c *CPUBackend) Cleanup()        {}

// Transform writes xf applied to every point of src into dst, which must hold
// at least len(src) floats.
func (c *CPUBackend) Transform(dst []float32, src scene.PointCloud, xf Transform) {
	n := src.Len()
	if n < parallelThreshold || c.workers < 2 {
		transformRange(dst, src, xf, 0, n)
		return
	}

	var wg sync.WaitGroup
	chunkSize := (n + c.workers - 1) / c.workers

	for w := 0; w < c.workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}
		if start >= end {
			break
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			transformRange(dst, src, xf, start, end)
		}(start, end)
	}

	wg.Wait()
}

func transformRange(dst []float32, src scene.PointCloud, xf Transform, start, end int) {
	cx, sx := math.Cos(xf.RotationX), math.Sin(xf.RotationX)
	cy, sy := math.Cos(xf.RotationY), math.Sin(xf.RotationY)
	s := xf.Scale

	for i := start; i < end; i++ {
		x := float64(src[i*3]) * s
		y := float64(src[i*3+1]) * s
		z := float64(src[i*3+2]) * s

		x, z = x*cy+z*sy, -x*sy+z*cy
		y, z = y*cx-z*sx, y*sx+z*cx

		dst[i*3] = float32(x)
		dst[i*3+1] = float32(y)
		dst[i*3+2] = float32(z)
	}
}
