// Package config parses the command-line flags the mr2i binary
// accepts, generalizing the teacher's main()-level flag handling into
// a reusable type.
package config

import "flag"

// Config holds the resolved command-line options for one run of the
// emulator.
type Config struct {
	// Program, if non-empty, names a file of 32 newline-separated
	// 25-bit binary microwords to preload into IMEM before the console
	// starts.
	Program string
	// LogPath, following logger.New's convention, means "log to
	// stdout" when empty.
	LogPath string
	// TraceDepth bounds how many executed microcycles the trace buffer
	// remembers.
	TraceDepth int
	// Headless disables the full-screen gocui console in favor of a
	// plain stdout sink, for scripted or redirected runs.
	Headless bool
}

// Parse parses args (typically os.Args[1:]) into a Config.
func Parse(args []string) (Config, error) {
	fs := flag.NewFlagSet("mr2i", flag.ContinueOnError)
	cfg := Config{}
	fs.StringVar(&cfg.Program, "program", "", "microprogram listing to preload")
	fs.StringVar(&cfg.LogPath, "log", "", "log file path (empty logs to stdout)")
	fs.IntVar(&cfg.TraceDepth, "trace", 64, "number of executed microcycles to remember")
	fs.BoolVar(&cfg.Headless, "headless", false, "run without the full-screen console")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
