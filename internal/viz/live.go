package viz

import (
	"fmt"
	"image"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/heartbeat/internal/animate"
	"github.com/san-kum/heartbeat/internal/cloud"
	"github.com/san-kum/heartbeat/internal/compute"
	"github.com/san-kum/heartbeat/internal/scene"
)

const (
	width           = 80
	height          = 24
	panelWidth      = 42
	historyCapacity = 120
	orbitStep       = 0.1
	panStep         = 0.1
)

type TickMsg time.Time

// Model drives the terminal view: the wall clock advances the animation and
// each tick repaints the canvas.
type Model struct {
	title       string
	anim        *animate.Animator
	set         *cloud.Set
	backend     compute.Backend
	canvas      *Canvas
	camera      *Camera
	fps         int
	elapsed     float64
	last        time.Time
	running     bool
	showHelp    bool
	frame       scene.Frame
	beatHistory []float64
	scratch     []float32
	recording   bool
	frames      []*image.Paletted
	gifPath     string
	message     string
}

// NewModel builds a live view over prebuilt clouds. fps <= 0 falls back to 30.
func NewModel(title string, anim *animate.Animator, set *cloud.Set, fps int) Model {
	if fps <= 0 {
		fps = 30
	}
	m := Model{
		title:       title,
		anim:        anim,
		set:         set,
		backend:     compute.GetBackend(),
		canvas:      NewCanvas(width, height),
		camera:      NewCamera(),
		fps:         fps,
		running:     true,
		beatHistory: make([]float64, 0, historyCapacity),
		gifPath:     "heartbeat.gif",
	}
	m.frame = anim.Frame(0)
	m.draw()
	return m
}

// SetGIFPath changes where G recordings are written.
func (m *Model) SetGIFPath(path string) { m.gifPath = path }

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input and advances the clock.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.restart()
		case "t":
			NextTheme()
		case "?":
			m.showHelp = !m.showHelp
		case "left", "h":
			m.camera.Orbit(-orbitStep, 0)
		case "right", "l":
			m.camera.Orbit(orbitStep, 0)
		case "up", "k":
			m.camera.Orbit(0, -orbitStep)
		case "down", "j":
			m.camera.Orbit(0, orbitStep)
		case "+", "=":
			m.camera.ZoomIn()
		case "-", "_":
			m.camera.ZoomOut()
		case "w":
			m.camera.Move(0, panStep)
		case "s":
			m.camera.Move(0, -panStep)
		case "a":
			m.camera.Move(-panStep, 0)
		case "d":
			m.camera.Move(panStep, 0)
		case "c":
			m.camera.Reset()
		case "g":
			m.toggleRecording()
		}
		m.draw()
	case tea.WindowSizeMsg:
		w := msg.Width - panelWidth - 6
		h := msg.Height - 2
		if w < 20 {
			w = 20
		}
		if h < 8 {
			h = 8
		}
		m.canvas = NewCanvas(w, h)
		m.draw()
	case TickMsg:
		m.advance(time.Time(msg))
		m.draw()
		if m.recording {
			m.captureFrame()
		}
		return m, m.tick()
	}
	return m, nil
}

// advance moves the animation clock by the wall time since the previous tick.
func (m *Model) advance(now time.Time) {
	if !m.last.IsZero() && m.running {
		if dt := now.Sub(m.last).Seconds(); dt > 0 {
			m.elapsed += dt
		}
	}
	m.last = now
	if !m.running {
		return
	}
	m.frame = m.anim.Frame(m.elapsed)
	if len(m.beatHistory) >= historyCapacity {
		m.beatHistory = m.beatHistory[1:]
	}
	m.beatHistory = append(m.beatHistory, m.frame.Beat)
}

func (m *Model) restart() {
	m.elapsed = 0
	m.beatHistory = m.beatHistory[:0]
	m.frame = m.anim.Frame(0)
}

func (m *Model) draw() {
	m.canvas.Clear()
	m.scratch = RenderClouds(m.canvas, m.camera, m.set, m.frame, m.backend, m.scratch)
}

// Elapsed returns the animation clock in seconds.
func (m Model) Elapsed() float64 { return m.elapsed }

// Frame returns the frame currently on screen.
func (m Model) Frame() scene.Frame { return m.frame }

func (m Model) Running() bool { return m.running }

// View renders the canvas and the side panel.
func (m Model) View() string {
	st := stylesFor(CurrentTheme)
	canvasView := canvasStyle.Render(m.canvas.Styled())

	var s strings.Builder
	s.WriteString(st.header.Render(GradientText(strings.ToUpper(m.title), CurrentTheme.Primary, CurrentTheme.Secondary)) + "\n")

	status := st.status.Render("BEATING")
	if !m.running {
		status = st.paused.Render("PAUSED")
	}
	if m.recording {
		status += st.paused.Render(fmt.Sprintf("  REC %d", len(m.frames)))
	}
	s.WriteString(status + "\n")

	if len(m.beatHistory) > 1 {
		chart := asciigraph.Plot(m.beatHistory, asciigraph.Height(5), asciigraph.Width(30), asciigraph.Precision(3), asciigraph.Caption("Beat"))
		s.WriteString(st.graph.Render(chart) + "\n")
	} else {
		s.WriteString("\n")
	}

	f := m.frame
	row := func(label, value string) {
		s.WriteString(st.label.Render(label) + st.value.Render(value) + "\n")
	}
	row("Time", fmt.Sprintf("%.2fs", f.Time))
	row("Beat", fmt.Sprintf("%+.4f", f.Beat))
	if peak := m.anim.MaxBeat(); peak > 0 {
		row("Pulse", Meter((f.Beat/peak+1)/2, 16))
	}
	row("Scale", fmt.Sprintf("%.4f", f.Heart.Scale))
	row("Size", fmt.Sprintf("%.4f", f.Heart.Size))
	row("Color", Swatch(HexColor(f.Heart.Color), 4)+" "+fmt.Sprintf("(%.2f, %.2f, %.2f)", f.Heart.Color.R, f.Heart.Color.G, f.Heart.Color.B))
	if f.Explosion.Visible {
		row("Burst", fmt.Sprintf("×%.2f", f.Explosion.Scale))
	} else {
		row("Burst", "-")
	}
	if m.set != nil {
		row("Points", fmt.Sprintf("%d", m.set.Total()))
	}
	if m.backend != nil {
		row("Backend", m.backend.Name())
	}
	row("Theme", CurrentTheme.Name)
	if m.message != "" {
		s.WriteString("\n" + st.paused.Render(m.message) + "\n")
	}
	s.WriteString(st.help.Render("─────────────────────\nSP:Pause R:Restart Q:Quit\n←→↑↓:Orbit +-:Zoom WASD:Pan\nT:Theme G:Record ?:Help"))

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, st.panel.Render(s.String()))
	if m.showHelp {
		return helpText + "\n\n" + mainView
	}
	return mainView
}

const helpText = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  R        - Restart the clock        ║
║  Q        - Quit                     ║
║  ←→ / HL  - Orbit around the heart   ║
║  ↑↓ / KJ  - Tilt the camera          ║
║  + / -    - Zoom                     ║
║  WASD     - Pan                      ║
║  C        - Reset camera             ║
║  G        - Toggle GIF recording     ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝`
