package gui

import (
	_ "embed"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/heartbeat/internal/animate"
	"github.com/san-kum/heartbeat/internal/audio"
	"github.com/san-kum/heartbeat/internal/cloud"
	"github.com/san-kum/heartbeat/internal/compute"
	"github.com/san-kum/heartbeat/internal/config"
	"github.com/san-kum/heartbeat/internal/scene"
)

//go:embed shaders/bloom.vs
var bloomVS string

//go:embed shaders/bloom.fs
var bloomFS string

var (
	ColBg      = rl.NewColor(0, 0, 0, 255)
	ColAccent  = rl.NewColor(255, 80, 140, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(160, 160, 160, 255)
	ColTextDim = rl.NewColor(70, 70, 70, 255)
)

const (
	cameraDistance = 6.0
	cameraFOV      = 60.0
	glowScale      = 2.5
	historyLen     = 240
)

type App struct {
	Config  *config.Config
	Anim    *animate.Animator
	Set     *cloud.Set
	Backend compute.Backend

	Camera  rl.Camera3D
	Orbit   Orbit
	Width   int32
	Height  int32
	Running bool
	Elapsed float64
	Frame   scene.Frame
	History []float64
	Font    rl.Font

	ParticleTex rl.Texture2D
	TargetTex   rl.RenderTexture2D
	BloomShader rl.Shader
	Bloom       bool

	Audio *audio.Processor

	UseGPU    bool
	GLBackend *compute.OpenGLBackend

	scratch map[string][]float32
}

func initWindow(w, h int32, title string, fps int) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(w, h, title)
	rl.SetTargetFPS(int32(fps))
	rl.SetExitKey(0)
}

// NewApp prepares textures, shaders and optional audio and GPU paths. The
// window must already be open.
func NewApp(cfg *config.Config, set *cloud.Set) *App {
	anim := animate.New(cfg.Animation())
	app := &App{
		Config:  cfg,
		Anim:    anim,
		Set:     set,
		Backend: compute.GetBackend(),
		Orbit:   NewOrbit(cameraDistance),
		Width:   int32(cfg.Render.Width),
		Height:  int32(cfg.Render.Height),
		Running: true,
		Frame:   anim.Frame(0),
		History: make([]float64, 0, historyLen),
		Font:    rl.GetFontDefault(),
		Bloom:   cfg.Render.Bloom,
		scratch: make(map[string][]float32),
	}
	app.Camera = rl.NewCamera3D(
		rl.NewVector3(0, 0, cameraDistance),
		rl.NewVector3(0, 0, 0),
		rl.NewVector3(0, 1, 0),
		cameraFOV,
		rl.CameraPerspective,
	)

	img := rl.GenImageGradientRadial(32, 32, 0.0, rl.White, rl.NewColor(0, 0, 0, 0))
	app.ParticleTex = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)

	app.TargetTex = rl.LoadRenderTexture(app.Width, app.Height)
	app.BloomShader = rl.LoadShaderFromMemory(bloomVS, bloomFS)
	rl.SetShaderValue(app.BloomShader, rl.GetShaderLocation(app.BloomShader, "size"),
		[]float32{float32(app.Width), float32(app.Height)}, rl.ShaderUniformVec2)
	rl.SetShaderValue(app.BloomShader, rl.GetShaderLocation(app.BloomShader, "threshold"),
		[]float32{0.1}, rl.ShaderUniformFloat)
	rl.SetShaderValue(app.BloomShader, rl.GetShaderLocation(app.BloomShader, "strength"),
		[]float32{1.5}, rl.ShaderUniformFloat)

	if cfg.Render.GPU {
		app.GLBackend = compute.NewOpenGLBackend()
		clouds := map[string]scene.PointCloud{
			scene.ShapeHeart:     set.Heart,
			scene.ShapeText:      set.Text,
			scene.ShapeExplosion: set.Explosion,
		}
		if err := app.GLBackend.Init(clouds); err != nil {
			fmt.Fprintf(os.Stderr, "gpu points disabled: %v\n", err)
		} else {
			app.UseGPU = true
		}
	}

	if cfg.Render.Audio {
		proc := audio.NewProcessor(audio.NewSynth(anim))
		if err := proc.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "audio disabled: %v\n", err)
		} else {
			app.Audio = proc
		}
	}

	return app
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config, set *cloud.Set) {
	initWindow(int32(cfg.Render.Width), int32(cfg.Render.Height), "heartbeat :: "+cfg.Name, cfg.Render.FPS)
	defer rl.CloseWindow()
	app := NewApp(cfg, set)
	defer app.Close()
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if !a.Update() {
			return
		}
		a.Draw()
	}
}

func (a *App) Close() {
	if a.Audio != nil {
		a.Audio.Stop()
	}
	if a.GLBackend != nil {
		a.GLBackend.Cleanup()
	}
	rl.UnloadShader(a.BloomShader)
	rl.UnloadRenderTexture(a.TargetTex)
	rl.UnloadTexture(a.ParticleTex)
}

// Update advances the clock and handles input. It returns false on quit.
func (a *App) Update() bool {
	if rl.IsKeyPressed(rl.KeyQ) {
		return false
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		a.Running = !a.Running
		a.syncAudio()
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.Elapsed = 0
		a.History = a.History[:0]
		a.syncAudio()
	}
	if rl.IsKeyPressed(rl.KeyB) {
		a.Bloom = !a.Bloom
	}
	if rl.IsKeyPressed(rl.KeyG) && a.GLBackend != nil && a.GLBackend.Available() {
		a.UseGPU = !a.UseGPU
	}
	if rl.IsKeyPressed(rl.KeyC) {
		a.Orbit = NewOrbit(cameraDistance)
	}

	if a.Running {
		a.Elapsed += float64(rl.GetFrameTime())
		a.Frame = a.Anim.Frame(a.Elapsed)
		a.History = append(a.History, a.Frame.Beat)
		if len(a.History) > historyLen {
			a.History = a.History[1:]
		}
	}

	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		d := rl.GetMouseDelta()
		a.Orbit.Rotate(-float64(d.X)*0.005, float64(d.Y)*0.005)
	}
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		d := rl.GetMouseDelta()
		a.Orbit.Pan(-float64(d.X)*0.005, float64(d.Y)*0.005)
	}

	step := float64(rl.GetFrameTime()) * 2
	if rl.IsKeyDown(rl.KeyW) {
		a.Orbit.Pan(0, step)
	}
	if rl.IsKeyDown(rl.KeyS) {
		a.Orbit.Pan(0, -step)
	}
	if rl.IsKeyDown(rl.KeyA) {
		a.Orbit.Pan(-step, 0)
	}
	if rl.IsKeyDown(rl.KeyD) {
		a.Orbit.Pan(step, 0)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		a.Orbit.Zoom(float64(wheel))
	}

	a.Camera.Position, a.Camera.Target = a.Orbit.Place()
	return true
}

func (a *App) syncAudio() {
	if a.Audio != nil {
		a.Audio.Sync(a.Elapsed, !a.Running)
	}
}

func (a *App) Draw() {
	if a.Bloom {
		rl.BeginTextureMode(a.TargetTex)
		rl.ClearBackground(ColBg)
		a.drawScene()
		rl.EndTextureMode()

		rl.BeginDrawing()
		rl.ClearBackground(ColBg)
		rl.BeginShaderMode(a.BloomShader)
		src := rl.NewRectangle(0, 0, float32(a.TargetTex.Texture.Width), -float32(a.TargetTex.Texture.Height))
		rl.DrawTextureRec(a.TargetTex.Texture, src, rl.NewVector2(0, 0), rl.White)
		rl.EndShaderMode()
	} else {
		rl.BeginDrawing()
		rl.ClearBackground(ColBg)
		a.drawScene()
	}

	a.DrawHUD()
	rl.EndDrawing()
}

func (a *App) drawScene() {
	rl.BeginMode3D(a.Camera)
	rl.BeginBlendMode(rl.BlendAdditive)

	for _, name := range scene.Shapes {
		sf, _ := a.Frame.Shape(name)
		if !sf.Visible {
			continue
		}
		if a.UseGPU {
			a.drawShapeGPU(name, sf)
		} else {
			a.drawShapeCPU(name, sf)
		}
	}

	rl.EndBlendMode()
	rl.EndMode3D()
}

func (a *App) drawShapeCPU(name string, sf scene.ShapeFrame) {
	pc, ok := a.Set.Cloud(name)
	if !ok || pc.Len() == 0 {
		return
	}
	buf := a.scratch[name]
	if cap(buf) < len(pc) {
		buf = make([]float32, len(pc))
		a.scratch[name] = buf
	}
	buf = buf[:len(pc)]
	a.Backend.Transform(buf, pc, compute.FromShape(sf))

	tint := shapeColor(sf)
	size := float32(sf.Size * glowScale)
	for i := 0; i < pc.Len(); i++ {
		pos := rl.NewVector3(buf[i*3], buf[i*3+1], buf[i*3+2])
		rl.DrawBillboard(a.Camera, a.ParticleTex, pos, size, tint)
	}
}

// drawShapeGPU flushes raylib's batch before issuing raw GL draws so both
// share the current matrices and render target.
func (a *App) drawShapeGPU(name string, sf scene.ShapeFrame) {
	rl.DrawRenderBatchActive()
	view := rl.MatrixToFloat(rl.GetMatrixModelview())
	proj := rl.MatrixToFloat(rl.GetMatrixProjection())
	a.GLBackend.Draw(name, sf, view, proj, float32(a.Height))
}

func shapeColor(sf scene.ShapeFrame) rl.Color {
	c := sf.Color.Clamp()
	return rl.NewColor(uint8(c.R*255), uint8(c.G*255), uint8(c.B*255), uint8(sf.Opacity*255))
}

func (a *App) DrawHUD() {
	a.drawText("heartbeat", 30, 30, 24, ColSelect)
	a.drawText(fmt.Sprintf(":: %s", a.Config.Name), 170, 34, 16, ColText)

	a.DrawTelemetry()

	status := "BEATING"
	col := ColAccent
	if !a.Running {
		status = "PAUSED"
		col = ColTextDim
	}
	a.drawText(status, int(a.Width)-130, 30, 16, col)

	f := a.Frame
	a.drawText(fmt.Sprintf("t %.2fs  beat %+.3f  scale %.3f", f.Time, f.Beat, f.Heart.Scale), 30, 64, 14, ColText)

	flags := fmt.Sprintf("BLOOM %s  POINTS %s  AUDIO %s", onOff(a.Bloom), a.pointMode(), onOff(a.Audio != nil))
	a.drawText(flags, 30, int(a.Height)-70, 14, ColTextDim)
	a.drawText("[SPACE] PAUSE  [R] RESTART  [B] BLOOM  [G] GPU  [C] CAMERA  [Q] QUIT", int(a.Width)-620, int(a.Height)-40, 14, ColTextDim)
	a.drawText(fmt.Sprintf("%d FPS", int32(rl.GetFPS())), 30, int(a.Height)-40, 14, ColTextDim)
}

func (a *App) pointMode() string {
	if a.UseGPU {
		return "GPU"
	}
	return "CPU"
}

func onOff(v bool) string {
	if v {
		return "ON"
	}
	return "OFF"
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}

// DrawTelemetry plots the recent beat as a line strip.
func (a *App) DrawTelemetry() {
	if len(a.History) < 2 {
		return
	}

	rectX, rectY := 30, 100
	width, height := 300, 50
	peak := a.Anim.MaxBeat()
	if peak == 0 {
		peak = 1
	}

	points := make([]rl.Vector2, len(a.History))
	for i, val := range a.History {
		px := float32(rectX) + (float32(i)/float32(historyLen))*float32(width)
		norm := (val/peak + 1) / 2
		py := float32(rectY+height) - float32(norm)*float32(height)
		points[i] = rl.NewVector2(px, py)
	}

	rl.DrawLineStrip(points, ColAccent)
}
