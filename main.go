package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/tehcyx/ffiloop/internal/bridge"
	"github.com/tehcyx/ffiloop/internal/config"
	"github.com/tehcyx/ffiloop/internal/logging"
	"github.com/tehcyx/ffiloop/internal/loop"
)

// Version is set at build time via ldflags.
var Version = "dev"

func init() {
	// SDL video calls must stay on the main OS thread.
	runtime.LockOSThread()
}

func newRootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "ffiloop",
		Short: "Open a window and call the native root functions on key press",
		Long: `ffiloop opens a single SDL window and busy-polls its input events.
Every iteration prints the native timer; pressing j prints the square root
of 2 and the cube root of 27, Escape or closing the window quits.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			logging.SetLevel(level)
			return run(config.Default(), cmd.OutOrStdout())
		},
	}
	cmd.SetVersionTemplate("ffiloop version {{.Version}}\n")
	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	return cmd
}

// run opens the window, drives the loop to completion and tears the window
// down again. Only initialization can fail.
func run(cfg config.Config, out io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log := logging.Default()
	session, err := OpenSession(cfg.Window, log)
	if err != nil {
		return err
	}
	defer session.Close()

	opts := loop.OptionsFromConfig(cfg)
	opts.Bridge = bridge.NewNative()
	opts.Events = session
	opts.Renderer = session
	opts.Output = out
	opts.Logger = log

	res := loop.New(opts).Run()
	log.Info("loop finished",
		"reason", res.Reason,
		"iterations", res.Iterations,
		"draws", res.Draws,
		"computations", res.Computations)
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
