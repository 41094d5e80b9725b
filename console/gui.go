package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jroimartin/gocui"
	"github.com/k0kubun/pp/v3"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"minirechner2i/machine"
	"minirechner2i/trace"
)

// Gui is the full-screen operator console: a microprogram listing, a
// register/flag/port dump and a scrolling log, all driven by gocui.
// Adapted from the teacher's console.Gui and system.System wiring; the
// teacher ran one status view plus a register line, this adds the
// microprogram listing and routes state dumps through pp instead of
// ad hoc Fprintf calls.
type Gui struct {
	g  *gocui.Gui
	m  *machine.Machine
	tr *trace.Buffer
	log io.Writer
}

// NewGui wires a Gui around an already-created gocui.Gui and the
// machine it will drive.
func NewGui(g *gocui.Gui, m *machine.Machine, tr *trace.Buffer) *Gui {
	pp.ColoringEnabled = isatty.IsTerminal(os.Stdout.Fd())
	return &Gui{g: g, m: m, tr: tr, log: colorable.NewColorableStdout()}
}

// WriteConsole implements Sink by appending to the "console" view.
func (c *Gui) WriteConsole(msg string) error {
	v, err := c.g.View("console")
	if err != nil {
		return err
	}
	for _, line := range splitLines(msg) {
		fmt.Fprint(v, line)
	}
	return nil
}

// Layout lays out the three views: microprogram listing (left),
// register/flag/port dump (right), console log (bottom).
func (c *Gui) Layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	half := maxX / 2

	if v, err := g.SetView("micro", 0, 0, half-1, maxY-8); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Microprogram"
	}
	if v, err := g.SetView("state", half, 0, maxX-1, maxY-8); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "State"
	}
	if v, err := g.SetView("console", 0, maxY-7, maxX-1, maxY-1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Console"
		v.Autoscroll = true
	}
	return nil
}

// RenderMicroprogram redraws the "micro" view from the machine's
// IMEM, with the current PC marked.
func (c *Gui) RenderMicroprogram() error {
	v, err := c.g.View("micro")
	if err != nil {
		return err
	}
	v.Clear()
	pc := c.m.PC()
	for addr := uint8(0); ; addr++ {
		w, err := c.m.ReadMicroword(addr)
		if err != nil {
			break
		}
		marker := "  "
		if addr == pc {
			marker = "->"
		}
		fmt.Fprintf(v, "%s %02d: %s\n", marker, addr, Disassemble(w))
		if addr == 31 {
			break
		}
	}
	return nil
}

// RenderState redraws the "state" view: registers, flags, ports, and
// the most recent trace entries, pretty-printed through pp.
func (c *Gui) RenderState() error {
	v, err := c.g.View("state")
	if err != nil {
		return err
	}
	v.Clear()
	snap := c.m.Snapshot()
	fmt.Fprintf(v, "PC: %02d  FLAGS: %s\n", snap.PC, snap.Flags)
	pp.Fprintln(v, snap)

	if entries := c.tr.Entries(); len(entries) > 0 {
		fmt.Fprintln(v, "\nrecent:")
		for _, e := range entries {
			line := strings.TrimSuffix(e.String(), "\n")
			fmt.Fprintln(v, "  "+line)
			if e.Fault != nil {
				// Faults are mirrored to the colorable stdout stream in
				// red, independent of the gocui view; when stdout is not
				// a terminal the line is written as plain text.
				if isatty.IsTerminal(os.Stdout.Fd()) {
					fmt.Fprintf(c.log, "\x1b[31m%s\x1b[0m\n", line)
				} else {
					fmt.Fprintln(c.log, line)
				}
			}
		}
	}
	return nil
}

// Refresh redraws every view from current machine state.
func (c *Gui) Refresh() error {
	if err := c.RenderMicroprogram(); err != nil {
		return err
	}
	return c.RenderState()
}
