package console

import "os"

// Simple is a plain stdout sink, used when no terminal is attached
// (scripted runs, redirected output, tests) instead of the full-screen
// gocui console.
type Simple struct {
	currentLine int
}

// NewSimple returns a stdout-backed console sink.
func NewSimple() *Simple {
	return &Simple{}
}

// WriteConsole writes msg to stdout, one tracked line at a time.
func (c *Simple) WriteConsole(msg string) error {
	for _, line := range splitLines(msg) {
		if _, err := os.Stdout.WriteString(line); err != nil {
			return err
		}
		c.currentLine++
	}
	return nil
}
