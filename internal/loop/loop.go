// Package loop implements the busy-polling control loop: read the time,
// take one event, dispatch it, and redraw.
package loop

import (
	"fmt"
	"io"

	"github.com/tehcyx/ffiloop/internal/bridge"
	"github.com/tehcyx/ffiloop/internal/config"
	"github.com/tehcyx/ffiloop/internal/logging"
)

// State is the run mode of the controller.
type State int

const (
	StateRunning State = iota
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// ExitReason indicates why Run returned.
type ExitReason int

const (
	ExitReasonUnknown ExitReason = iota
	ExitReasonQuit               // Quit event, loop broken immediately
	ExitReasonEscape             // Escape pressed, loop condition failed
)

func (r ExitReason) String() string {
	switch r {
	case ExitReasonQuit:
		return "quit"
	case ExitReasonEscape:
		return "escape"
	default:
		return "unknown"
	}
}

// Result summarises a finished run.
type Result struct {
	Reason       ExitReason
	Iterations   int
	Draws        int
	Computations int
}

// Options configures a Controller. Bridge, Events and Renderer are required.
type Options struct {
	Bridge   bridge.Bridge
	Events   EventSource
	Renderer Renderer

	// Output receives the diagnostic values, one per line. Defaults to io.Discard.
	Output io.Writer
	Logger *logging.Logger

	ClearColor config.Color
	TriggerKey Key
	SqrtInput  float64
	CbrtInput  float64
}

// OptionsFromConfig fills the fixed settings of Options from cfg.
func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		ClearColor: cfg.ClearColor,
		TriggerKey: Key(cfg.TriggerKey),
		SqrtInput:  cfg.SqrtInput,
		CbrtInput:  cfg.CbrtInput,
	}
}

// Controller owns the loop state. It is not safe for concurrent use; Run
// must be called from the thread that owns the window.
type Controller struct {
	bridge   bridge.Bridge
	events   EventSource
	renderer Renderer
	out      io.Writer
	log      *logging.Logger

	clearColor config.Color
	trigger    Key
	sqrtInput  float64
	cbrtInput  float64

	state State
}

// New returns a Controller in the running state.
func New(opts Options) *Controller {
	out := opts.Output
	if out == nil {
		out = io.Discard
	}
	log := opts.Logger
	if log == nil {
		log = logging.Default()
	}
	return &Controller{
		bridge:     opts.Bridge,
		events:     opts.Events,
		renderer:   opts.Renderer,
		out:        out,
		log:        log.With("component", "loop"),
		clearColor: opts.ClearColor,
		trigger:    opts.TriggerKey,
		sqrtInput:  opts.SqrtInput,
		cbrtInput:  opts.CbrtInput,
		state:      StateRunning,
	}
}

// State returns the current run mode.
func (c *Controller) State() State {
	return c.state
}

// Run loops until a Quit event arrives or Escape stops the controller. It
// never sleeps between polls.
func (c *Controller) Run() Result {
	var res Result

	for c.state == StateRunning {
		res.Iterations++
		c.emit(c.bridge.CurrentTime())

		ev := c.events.PollEvent()
		if ev == nil {
			continue
		}

		switch e := ev.(type) {
		case QuitEvent:
			res.Reason = ExitReasonQuit
			c.log.Info("quit event received", "iterations", res.Iterations)
			return res
		case KeyDownEvent:
			if c.handleKey(e.Key) {
				res.Computations++
			}
		}

		c.draw()
		res.Draws++
	}

	res.Reason = ExitReasonEscape
	c.log.Info("stopped", "iterations", res.Iterations)
	return res
}

// handleKey dispatches a key press and reports whether the bridge was asked
// for the roots.
func (c *Controller) handleKey(k Key) bool {
	switch k {
	case KeyEscape:
		c.state = StateStopped
		c.log.Debug("escape pressed", "state", c.state)
		return false
	case c.trigger:
		c.emit(c.bridge.SquareRoot(c.sqrtInput))
		c.emit(c.bridge.CubeRoot(c.cbrtInput))
		return true
	}
	return false
}

func (c *Controller) draw() {
	col := c.clearColor
	c.renderer.SetDrawColor(col.R, col.G, col.B, col.A)
	c.renderer.Clear()
	c.renderer.Present()
}

// emit writes one diagnostic value. Write errors are ignored.
func (c *Controller) emit(v float64) {
	fmt.Fprintf(c.out, "%f\n", v)
}
