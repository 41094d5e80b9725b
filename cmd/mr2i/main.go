package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/jroimartin/gocui"

	"minirechner2i/config"
	"minirechner2i/console"
	"minirechner2i/logger"
	"minirechner2i/machine"
	"minirechner2i/trace"
)

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		log.Fatalln(err)
	}

	l := logger.New(cfg.LogPath)
	m := machine.New()
	tr := trace.New(cfg.TraceDepth)

	if cfg.Program != "" {
		f, err := os.Open(cfg.Program)
		if err != nil {
			log.Fatalln(err)
		}
		program, err := console.LoadProgram(f)
		f.Close()
		if err != nil {
			log.Fatalln(err)
		}
		m.LoadProgram(program)
	}

	if cfg.Headless {
		runHeadless(m, tr, l)
		return
	}
	runConsole(m, tr, l)
}

// runHeadless drives the machine from stdin commands without the
// full-screen gocui console, for scripted or redirected runs.
func runHeadless(m *machine.Machine, tr *trace.Buffer, l *log.Logger) {
	sink := console.NewSimple()
	sink.WriteConsole("mr2i headless console. Commands: step, reset, in, dump, quit\n")
	repl(m, tr, l, sink, os.Stdin)
}

func runConsole(m *machine.Machine, tr *trace.Buffer, l *log.Logger) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}
	defer g.Close()

	gui := console.NewGui(g, m, tr)
	g.SetManagerFunc(gui.Layout)

	if err := g.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, quit); err != nil {
		log.Panicln(err)
	}

	if err := func(g *gocui.Gui) error {
		gui.WriteConsole("mr2i ready. Ctrl-C quits.\n")
		return gui.Refresh()
	}(g); err != nil {
		log.Panicln(err)
	}

	if err := g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
}

func quit(g *gocui.Gui, v *gocui.View) error {
	return gocui.ErrQuit
}

// repl is the headless command loop, kept deliberately small: the
// textual command language is the shell's concern per spec.md §6, not
// the core's, so it is not something a maintainer should expect to
// grow much beyond step/reset/dump/quit plus port and memory pokes.
func repl(m *machine.Machine, tr *trace.Buffer, l *log.Logger, sink console.Sink, in *os.File) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "step":
			err := m.Step()
			if err != nil {
				l.Printf("fault: %v", err)
			}
			tr.Push(trace.Entry{PC: m.PC(), Flags: m.Snapshot().Flags, Fault: err})
			sink.WriteConsole(fmt.Sprintf("PC=%02d\n", m.PC()))
		case "reset":
			m.Reset()
			sink.WriteConsole("reset\n")
		case "in":
			if len(fields) != 3 {
				sink.WriteConsole("usage: in <port> <value>\n")
				continue
			}
			port, _ := strconv.ParseUint(fields[1], 10, 8)
			val, _ := strconv.ParseUint(fields[2], 0, 8)
			if err := m.WriteInput(uint8(port), uint8(val)); err != nil {
				sink.WriteConsole(err.Error() + "\n")
			}
		case "dump":
			snap := m.Snapshot()
			sink.WriteConsole(fmt.Sprintf("PC=%02d FLAGS=%s REG=%v IN=%v OUT=%v\n",
				snap.PC, snap.Flags, snap.Registers, snap.Inputs, snap.Outputs))
		case "quit":
			return
		default:
			sink.WriteConsole("unknown command: " + fields[0] + "\n")
		}
	}
}
