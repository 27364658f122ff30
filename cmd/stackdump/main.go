// Package main implements the stackdump diagnostic tool.
//
// stackdump walks its own call stack through the DbgHelp engine and
// prints one line per frame: program counter, stack pointer and frame
// pointer, optionally followed by the machine instruction decoded at the
// frame's program counter. It is the smallest useful consumer of the walk
// package and doubles as a quick health check for the symbol engine on a
// given machine.
//
// Usage:
//
//	stackdump [--max N] [--disasm] [--log-level debug]
//
// An empty dump with --log-level debug explains itself on stderr.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/kolkov/stackwalk/walk"
)

var (
	maxFrames int
	logLevel  string
	disasm    bool
)

func main() {
	root := &cobra.Command{
		Use:           "stackdump",
		Short:         "Print the current thread's call stack",
		Long:          "stackdump walks its own call stack via the DbgHelp symbol engine\nand prints the raw frame addresses, innermost frame first.",
		Args:          cobra.NoArgs,
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.Flags().IntVar(&maxFrames, "max", 0, "maximum number of frames to print (0 = all)")
	root.Flags().StringVar(&logLevel, "log-level", "warn", "walker log level (debug, info, warn, error)")
	root.Flags().BoolVar(&disasm, "disasm", false, "decode the instruction at each frame's program counter")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "stackdump:", err)
		os.Exit(1)
	}
}

func run(_ *cobra.Command, _ []string) error {
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		Level(level).
		With().Timestamp().Logger()
	walk.SetLogger(logger)

	n := 0
	walk.Trace(func(f walk.Frame) bool {
		line := fmt.Sprintf("#%02d  pc=%#016x  sp=%#016x  fp=%#016x", n, f.PC, f.SP, f.FP)
		if disasm {
			if text := decodeAt(f.PC); text != "" {
				line += "  " + text
			}
		}
		fmt.Println(line)
		n++
		return maxFrames <= 0 || n < maxFrames
	})

	if n == 0 {
		logger.Warn().Msg("no frames captured; symbol engine unavailable or platform unsupported")
	}
	return nil
}
