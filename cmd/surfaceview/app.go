package main

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/splinefield/internal/config"
	"github.com/Faultbox/splinefield/internal/logger"
	"github.com/Faultbox/splinefield/internal/mesh"
	"github.com/Faultbox/splinefield/internal/viewer/camera"
	"github.com/Faultbox/splinefield/internal/viewer/input"
	"github.com/Faultbox/splinefield/internal/viewer/renderer"
	"github.com/Faultbox/splinefield/internal/viewer/screenshot"
	"github.com/Faultbox/splinefield/internal/viewer/window"
	"github.com/Faultbox/splinefield/pkg/surface"
)

const (
	minSegments = 1
	maxSegments = 64
)

// app ties the generator to the window, camera and renderer.
type app struct {
	cfg *config.Config
	log *zap.Logger

	window   *window.Window
	input    *input.Input
	camera   *camera.OrbitCamera
	renderer *renderer.SurfaceRenderer
	shots    *screenshot.Capture

	params surface.Params
	width  int
	height int
}

func newApp(cfg *config.Config) (*app, error) {
	a := &app{
		cfg:    cfg,
		log:    logger.Named("viewer"),
		input:  input.New(),
		camera: camera.NewOrbitCamera(),
		params: cfg.Surface.Params(),
	}

	var err error
	a.shots, err = screenshot.New(cfg.Viewer.ScreenshotDir, "splinefield", cfg.Viewer.ScreenshotFormat)
	if err != nil {
		return nil, err
	}

	a.window, err = window.New(window.Config{
		Title:      "Splinefield",
		Width:      cfg.Viewer.Width,
		Height:     cfg.Viewer.Height,
		Fullscreen: cfg.Viewer.Fullscreen,
		VSync:      cfg.Viewer.VSync,
	}, a.log)
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	a.renderer, err = renderer.New(a.log)
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("creating renderer: %w", err)
	}
	a.renderer.Wireframe = cfg.Viewer.Wireframe

	if cfg.Viewer.FOVDegrees > 0 {
		a.camera.FOVDegrees = cfg.Viewer.FOVDegrees
	}

	m, err := a.generate()
	if err != nil {
		a.Close()
		return nil, err
	}
	a.frame(m.Bounds)

	a.width, a.height = a.window.DrawableSize()
	a.renderer.Resize(a.width, a.height)

	return a, nil
}

// generate builds a surface from the current params and uploads it.
func (a *app) generate() (*mesh.Mesh, error) {
	start := time.Now()
	s, err := surface.New(a.params, surface.WithWorkers(a.cfg.Surface.WorkerCount()))
	if err != nil {
		return nil, fmt.Errorf("generating surface: %w", err)
	}
	elapsed := time.Since(start)

	m, err := mesh.Build(s.PosBuf(), s.NorBuf())
	if err != nil {
		return nil, fmt.Errorf("building mesh: %w", err)
	}
	a.renderer.Upload(m)

	p := s.Params()
	a.log.Info("surface generated",
		zap.Int("control_points", p.NumSideCps),
		zap.Int("patches", s.PatchCount()),
		zap.Int("segments", p.Segments),
		zap.Int64("seed", p.Seed),
		zap.Int("vertices", s.VertexCount()),
		zap.Duration("elapsed", elapsed),
	)
	a.window.SetTitle(fmt.Sprintf("Splinefield - seed %d, %d segments", p.Seed, p.Segments))

	return m, nil
}

// frame aims the camera at the mesh. The default eye offset is kept
// unless the mesh would not fit in view.
func (a *app) frame(b mesh.Bounds) {
	start := a.camera.Distance
	a.camera.FitToBounds(b.Min, b.Max)
	if a.camera.Distance < start {
		a.camera.Distance = start
	}
}

// Run runs the main loop until the window is closed.
func (a *app) Run() error {
	for !a.input.Update() {
		if err := a.handleInput(); err != nil {
			return err
		}

		if a.input.Resized() {
			a.width, a.height = a.window.DrawableSize()
			a.renderer.Resize(a.width, a.height)
		}

		aspect := float32(a.width) / float32(max(a.height, 1))
		a.renderer.Draw(a.camera.ViewProjection(aspect))

		// Read before the swap, the back buffer is undefined afterwards
		if a.input.IsKeyPressed(sdl.SCANCODE_F12) {
			a.saveScreenshot()
		}

		a.window.SwapBuffers()
	}
	return nil
}

func (a *app) handleInput() error {
	if a.input.DragX != 0 || a.input.DragY != 0 {
		a.camera.HandleDrag(a.input.DragX, a.input.DragY)
	}
	if a.input.Wheel != 0 {
		a.camera.HandleZoom(a.input.Wheel)
	}

	if a.input.IsKeyPressed(sdl.SCANCODE_W) {
		a.renderer.Wireframe = !a.renderer.Wireframe
	}

	regen := false
	if a.input.IsKeyPressed(sdl.SCANCODE_R) {
		a.params.Seed++
		regen = true
	}
	if a.input.IsKeyPressed(sdl.SCANCODE_EQUALS) || a.input.IsKeyPressed(sdl.SCANCODE_KP_PLUS) {
		if a.params.Segments < maxSegments {
			a.params.Segments = max(a.params.Segments, minSegments) + 1
			regen = true
		}
	}
	if a.input.IsKeyPressed(sdl.SCANCODE_MINUS) || a.input.IsKeyPressed(sdl.SCANCODE_KP_MINUS) {
		if a.params.Segments > minSegments {
			a.params.Segments--
			regen = true
		}
	}

	if regen {
		if _, err := a.generate(); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) saveScreenshot() {
	pixels := a.renderer.ReadPixels(a.width, a.height)
	name, err := a.shots.SavePixels(pixels, a.width, a.height)
	if err != nil {
		a.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("file", name))
}

// Close releases all resources.
func (a *app) Close() {
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
