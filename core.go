package main

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v2.1/gl"
	"gopkg.in/veandco/go-sdl2.v0/sdl"

	"github.com/tehcyx/ffiloop/internal/config"
	"github.com/tehcyx/ffiloop/internal/logging"
	"github.com/tehcyx/ffiloop/internal/loop"
)

// Init stages reported by InitError.
const (
	StageVideo    = "video"
	StageWindow   = "window"
	StageRenderer = "renderer"
)

// InitError is returned when SDL, the window or the renderer cannot be
// created. The program exits without entering the loop.
type InitError struct {
	Stage string
	Err   error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("failed to initialize %s: %v", e.Stage, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// videoSystem is the part of SDL a Session drives. Handles returned by it
// are released by the Session, never by the system itself.
type videoSystem interface {
	Init() error
	CreateWindow(cfg config.Window) (windowHandle, error)
	CreateRenderer(w windowHandle) (rendererHandle, error)
	PollEvent() loop.Event
	Quit()
}

type windowHandle interface {
	Destroy()
}

type rendererHandle interface {
	loop.Renderer
	Destroy()
}

// Session owns the SDL video subsystem, the window and its renderer.
// Close releases them in reverse order of acquisition.
type Session struct {
	sys      videoSystem
	window   windowHandle
	renderer rendererHandle
	video    bool
	log      *logging.Logger
}

// OpenSession initializes SDL video, opens the window and creates its
// renderer. On failure everything acquired so far is released again.
func OpenSession(cfg config.Window, log *logging.Logger) (*Session, error) {
	return openSession(sdlSystem{log: log}, cfg, log)
}

func openSession(sys videoSystem, cfg config.Window, log *logging.Logger) (*Session, error) {
	s := &Session{sys: sys, log: log}

	if err := sys.Init(); err != nil {
		return nil, &InitError{Stage: StageVideo, Err: err}
	}
	s.video = true

	w, err := sys.CreateWindow(cfg)
	if err != nil {
		s.Close()
		return nil, &InitError{Stage: StageWindow, Err: err}
	}
	s.window = w
	log.Debug("window created", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height)

	r, err := sys.CreateRenderer(w)
	if err != nil {
		s.Close()
		return nil, &InitError{Stage: StageRenderer, Err: err}
	}
	s.renderer = r

	return s, nil
}

// PollEvent takes at most one pending event without waiting.
func (s *Session) PollEvent() loop.Event {
	return s.sys.PollEvent()
}

func (s *Session) SetDrawColor(r, g, b, a uint8) {
	s.renderer.SetDrawColor(r, g, b, a)
}

func (s *Session) Clear() {
	s.renderer.Clear()
}

func (s *Session) Present() {
	s.renderer.Present()
}

// Close destroys the renderer, then the window, then shuts SDL down.
// It is safe to call more than once.
func (s *Session) Close() {
	if s.renderer != nil {
		s.renderer.Destroy()
		s.renderer = nil
	}
	if s.window != nil {
		s.window.Destroy()
		s.window = nil
	}
	if s.video {
		s.sys.Quit()
		s.video = false
	}
	s.log.Debug("session closed")
}

// sdlSystem is the videoSystem backed by go-sdl2.
type sdlSystem struct {
	log *logging.Logger
}

type sdlWindow struct {
	w *sdl.Window
}

func (w *sdlWindow) Destroy() {
	w.w.Destroy()
}

type sdlRenderer struct {
	r *sdl.Renderer
}

func (r *sdlRenderer) SetDrawColor(red, g, b, a uint8) {
	r.r.SetDrawColor(red, g, b, a)
}

func (r *sdlRenderer) Clear() { r.r.Clear() }
func (r *sdlRenderer) Present() { r.r.Present() }
func (r *sdlRenderer) Destroy() { r.r.Destroy() }

func (sdlSystem) Init() error {
	return sdl.Init(sdl.INIT_VIDEO)
}

func (sdlSystem) Quit() {
	sdl.Quit()
}

func (sdlSystem) CreateWindow(cfg config.Window) (windowHandle, error) {
	x, y := int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED)
	if cfg.Centered {
		x, y = int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED)
	}

	w, err := sdl.CreateWindow(cfg.Title, x, y, cfg.Width, cfg.Height, windowFlags(cfg))
	if err != nil {
		return nil, err
	}
	return &sdlWindow{w: w}, nil
}

func (s sdlSystem) CreateRenderer(w windowHandle) (rendererHandle, error) {
	sw, ok := w.(*sdlWindow)
	if !ok {
		return nil, fmt.Errorf("window %T was not created by SDL", w)
	}

	r, err := sdl.CreateRenderer(sw.w, -1, 0)
	if err != nil {
		return nil, err
	}
	s.reportBackend(r)
	return &sdlRenderer{r: r}, nil
}

func windowFlags(cfg config.Window) uint32 {
	var flags uint32
	if cfg.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}
	if cfg.OpenGL {
		flags |= sdl.WINDOW_OPENGL
	}
	return flags
}

// reportBackend logs which driver the renderer picked and, for OpenGL
// drivers, the GL renderer and version strings.
func (s sdlSystem) reportBackend(r *sdl.Renderer) {
	info, err := r.GetInfo()
	if err != nil {
		s.log.Warn("failed to query renderer info", "error", err)
		return
	}
	s.log.Info("renderer created", "backend", info.Name)

	if !strings.HasPrefix(info.Name, "opengl") {
		return
	}

	// the SDL GL renderer leaves its context current on this thread
	if err := gl.Init(); err != nil {
		s.log.Warn("failed to load OpenGL", "error", err)
		return
	}
	s.log.Info("OpenGL context",
		"renderer", glString(gl.RENDERER),
		"version", glString(gl.VERSION))
}

func glString(name uint32) string {
	p := gl.GetString(name)
	if p == nil {
		return ""
	}
	return gl.GoStr(p)
}

func (sdlSystem) PollEvent() loop.Event {
	ev := sdl.PollEvent()
	if ev == nil {
		return nil
	}
	switch e := ev.(type) {
	case *sdl.QuitEvent:
		return loop.QuitEvent{}
	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN {
			return loop.KeyDownEvent{Key: loop.Key(e.Keysym.Sym)}
		}
	}
	return loop.OtherEvent{}
}
