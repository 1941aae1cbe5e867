// Package config holds the fixed settings of the demo window and loop.
package config

import (
	"errors"
	"fmt"
)

// Color is an RGBA draw color.
type Color struct {
	R, G, B, A uint8
}

// Window describes the single window the program opens.
type Window struct {
	Title     string
	Width     int32
	Height    int32
	Centered  bool
	Resizable bool
	OpenGL    bool
}

// Config is the complete set of constants the program runs with.
type Config struct {
	Window     Window
	ClearColor Color

	// TriggerKey is the SDL keycode that runs the root computations.
	TriggerKey int32
	SqrtInput  float64
	CbrtInput  float64
}

const (
	defaultTitle  = "FFI Demo"
	defaultWidth  = 960
	defaultHeight = 544
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: Window{
			Title:     defaultTitle,
			Width:     defaultWidth,
			Height:    defaultHeight,
			Centered:  true,
			Resizable: true,
			OpenGL:    true,
		},
		ClearColor: Color{R: 100, G: 0, B: 0, A: 255},
		TriggerKey: 'j',
		SqrtInput:  2.0,
		CbrtInput:  27.0,
	}
}

// Validate reports the first setting that cannot be used to open a window.
func (c Config) Validate() error {
	if c.Window.Title == "" {
		return errors.New("window title is empty")
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	return nil
}
