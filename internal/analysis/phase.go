package analysis

import (
	"strings"

	"github.com/san-kum/heartbeat/internal/animate"
)

// PhasePortrait2D holds beat samples against their rate of change.
type PhasePortrait2D struct {
	Points []struct{ X, Y float64 }
}

const derivStep = 1e-4

// GeneratePhasePortrait samples (beat, dbeat/dt) at rate for duration seconds.
// The pulse is periodic, so the curve closes on itself.
func GeneratePhasePortrait(anim *animate.Animator, rate, duration float64) *PhasePortrait2D {
	if rate <= 0 || duration <= 0 {
		return nil
	}
	n := int(rate * duration)
	portrait := &PhasePortrait2D{Points: make([]struct{ X, Y float64 }, 0, n)}
	for i := 0; i < n; i++ {
		t := float64(i) / rate
		d := (anim.Beat(t+derivStep) - anim.Beat(t-derivStep)) / (2 * derivStep)
		portrait.Points = append(portrait.Points, struct{ X, Y float64 }{X: anim.Beat(t), Y: d})
	}
	return portrait
}

// PhasePortraitToASCII plots the portrait with axes where they are in view.
func PhasePortraitToASCII(portrait *PhasePortrait2D, width, height int) string {
	if portrait == nil || len(portrait.Points) == 0 || width < 2 || height < 2 {
		return ""
	}

	minX, maxX := portrait.Points[0].X, portrait.Points[0].X
	minY, maxY := portrait.Points[0].Y, portrait.Points[0].Y
	for _, p := range portrait.Points {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}

	rangeX, rangeY := maxX-minX, maxY-minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX, maxX = minX-rangeX*0.1, maxX+rangeX*0.1
	minY, maxY = minY-rangeY*0.1, maxY+rangeY*0.1
	rangeX, rangeY = maxX-minX, maxY-minY

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", width))
	}
	colOf := func(x float64) int { return int((x - minX) / rangeX * float64(width-1)) }
	rowOf := func(y float64) int { return height - 1 - int((y-minY)/rangeY*float64(height-1)) }

	for _, p := range portrait.Points {
		row, col := rowOf(p.Y), colOf(p.X)
		if row >= 0 && row < height && col >= 0 && col < width {
			grid[row][col] = '•'
		}
	}

	if minX <= 0 && maxX >= 0 {
		col := colOf(0)
		for row := 0; row < height; row++ {
			if grid[row][col] == ' ' {
				grid[row][col] = '│'
			}
		}
	}
	if minY <= 0 && maxY >= 0 {
		row := rowOf(0)
		for col := 0; col < width; col++ {
			if grid[row][col] == ' ' {
				grid[row][col] = '─'
			}
		}
	}

	var sb strings.Builder
	for _, row := range grid {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}
