// Package machine holds all Minirechner 2i state and drives one
// microcycle at a time. The ALU and next-address unit it calls into
// are pure functions; this package owns every memory array and is the
// only thing that mutates them.
package machine

import (
	"minirechner2i/alu"
	"minirechner2i/faults"
	"minirechner2i/flags"
	"minirechner2i/microword"
	"minirechner2i/nextaddr"
)

const (
	numMicrowords = 32
	ramSize       = 0xFC // addresses 0x00..0xFB
	numRegisters  = 8
	numInputs     = 4
	numOutputs    = 2

	inputBase = 0xFC
	outputBase = 0xFE
)

// Machine is the whole emulated Minirechner 2i: microprogram memory,
// RAM, register file, input/output ports, the flag register and the
// next-microinstruction pointer.
type Machine struct {
	imem [numMicrowords]microword.Word
	ram  [ramSize]uint8
	reg  [numRegisters]uint8
	in   [numInputs]uint8
	out  [numOutputs]uint8

	flags flags.Flags
	pc    uint8
}

// New returns a machine with all memories zeroed, PC at 0 and flags
// clear.
func New() *Machine {
	return &Machine{}
}

// Reset returns the machine to its just-constructed state without
// reallocating it, for a REPL's reset command.
func (m *Machine) Reset() {
	*m = Machine{}
}

// LoadMicroword installs word at addr in microprogram memory.
func (m *Machine) LoadMicroword(addr uint8, word microword.Word) error {
	if int(addr) >= numMicrowords {
		return faults.OutOfRange("IMEM", int(addr), numMicrowords)
	}
	m.imem[addr] = word
	return nil
}

// ReadMicroword returns the microword stored at addr.
func (m *Machine) ReadMicroword(addr uint8) (microword.Word, error) {
	if int(addr) >= numMicrowords {
		return 0, faults.OutOfRange("IMEM", int(addr), numMicrowords)
	}
	return m.imem[addr], nil
}

// LoadProgram installs an entire 32-word microprogram listing at once,
// a convenience over calling LoadMicroword 32 times.
func (m *Machine) LoadProgram(program [numMicrowords]microword.Word) {
	m.imem = program
}

// ReadRAM returns the byte at addr (0..251).
func (m *Machine) ReadRAM(addr uint8) (uint8, error) {
	if int(addr) >= ramSize {
		return 0, faults.OutOfRange("RAM", int(addr), ramSize)
	}
	return m.ram[addr], nil
}

// WriteRAM stores v at addr (0..251).
func (m *Machine) WriteRAM(addr uint8, v uint8) error {
	if int(addr) >= ramSize {
		return faults.OutOfRange("RAM", int(addr), ramSize)
	}
	m.ram[addr] = v
	return nil
}

// ReadRegister returns the value of general register i (0..7).
func (m *Machine) ReadRegister(i uint8) (uint8, error) {
	if int(i) >= numRegisters {
		return 0, faults.OutOfRange("REG", int(i), numRegisters)
	}
	return m.reg[i], nil
}

// ReadInput returns the value of input port i (0..3).
func (m *Machine) ReadInput(i uint8) (uint8, error) {
	if int(i) >= numInputs {
		return 0, faults.OutOfRange("IN", int(i), numInputs)
	}
	return m.in[i], nil
}

// WriteInput drives input port i (0..3) with v, simulating the outside
// world changing a sensor/switch value.
func (m *Machine) WriteInput(i uint8, v uint8) error {
	if int(i) >= numInputs {
		return faults.OutOfRange("IN", int(i), numInputs)
	}
	m.in[i] = v
	return nil
}

// ReadOutput returns the value of output port i (0..1). Output ports
// are not externally writable; they only change via step().
func (m *Machine) ReadOutput(i uint8) (uint8, error) {
	if int(i) >= numOutputs {
		return 0, faults.OutOfRange("OUT", int(i), numOutputs)
	}
	return m.out[i], nil
}

// ReadFlag returns the named status bit.
func (m *Machine) ReadFlag(kind flags.Kind) bool {
	return m.flags.Get(kind)
}

// PC returns the address of the next microinstruction to execute.
func (m *Machine) PC() uint8 {
	return m.pc
}

// busRead dispatches a memory-bus read: RAM for addr < 0xFC, the
// corresponding input port otherwise.
func (m *Machine) busRead(addr uint8) uint8 {
	if addr < inputBase {
		return m.ram[addr]
	}
	return m.in[addr-inputBase]
}

// busWrite dispatches a memory-bus write, or reports a fault for the
// two addresses that map only to input ports.
func (m *Machine) busWrite(addr uint8, v uint8) error {
	switch {
	case addr < inputBase:
		m.ram[addr] = v
		return nil
	case addr == 0xFC || addr == 0xFD:
		return faults.Bus("write to input port address")
	default:
		m.out[addr-outputBase] = v
		return nil
	}
}

// Step executes the microinstruction at PC: decode, operand fetch,
// ALU, writeback, flag latch, next-address computation. It either
// completes and advances PC, or returns a fault with no visible state
// change: every fault condition is checked before anything is
// mutated, so a fault raised while preparing the bus write can never
// leave an earlier register writeback applied.
func (m *Machine) Step() error {
	cur := m.imem[m.pc]
	oldFlags := m.flags

	a, err := m.fetchA(cur)
	if err != nil {
		return err
	}
	b := m.fetchB(cur)

	result := alu.Eval(alu.Op(cur.ALUOp()), a, b, m.flags.Carry())
	newFlags := flags.New(result.Carry, result.Negative, result.Zero)

	writeback := cur.WR()
	writeTargetIsA := writeback && !cur.WTGT()

	// The bus address is sampled from the A-register after step 5's
	// writeback per §4.2: if this microword writes its result into the
	// A-register, that is the value the bus sees, even though the
	// writeback has not yet been committed to m.reg.
	busAddr := m.reg[cur.AREG()]
	if writeTargetIsA {
		busAddr = result.F
	}

	var doBusWrite bool
	if cur.BusEn() && cur.BusWr() {
		if busAddr == 0xFC || busAddr == 0xFD {
			return faults.Bus("write to input port address")
		}
		doBusWrite = true
	}

	if writeback {
		if cur.WTGT() {
			m.reg[cur.BREG()] = result.F
		} else {
			m.reg[cur.AREG()] = result.F
		}
	}
	if doBusWrite {
		// busWrite cannot fault here: the only faulting addresses were
		// rejected above.
		_ = m.busWrite(busAddr, result.F)
	}
	if cur.FL() {
		m.flags = newFlags
	}

	m.pc = nextaddr.Next(cur.Next(), cur.MAC(), newFlags, oldFlags)
	return nil
}

// fetchA computes the ALU A operand per ASRC: register file, or a bus
// read through the register named by AREG.
func (m *Machine) fetchA(cur microword.Word) (uint8, error) {
	if !cur.ASRC() {
		return m.reg[cur.AREG()], nil
	}
	if !cur.BusEn() || cur.BusWr() {
		return 0, faults.Bus("A operand requires an enabled read bus cycle")
	}
	addr := m.reg[cur.AREG()]
	return m.busRead(addr), nil
}

// fetchB computes the ALU B operand per BSEL: register file, or the
// sign-extended 4-bit immediate.
func (m *Machine) fetchB(cur microword.Word) uint8 {
	if !cur.BSEL() {
		return m.reg[cur.BREG()]
	}
	return cur.Immediate()
}

// StepN executes up to n microcycles, stopping early on the first
// fault. It returns the number of cycles actually executed and the
// fault, if any.
func (m *Machine) StepN(n int) (int, error) {
	for i := 0; i < n; i++ {
		if err := m.Step(); err != nil {
			return i, err
		}
	}
	return n, nil
}

// Snapshot is a point-in-time read-only view of machine state, used by
// front ends to render a dump without holding a reference into the
// machine's internals.
type Snapshot struct {
	PC       uint8
	Registers [numRegisters]uint8
	Inputs    [numInputs]uint8
	Outputs   [numOutputs]uint8
	Flags     flags.Flags
}

// Snapshot captures the current machine state.
func (m *Machine) Snapshot() Snapshot {
	return Snapshot{
		PC:        m.pc,
		Registers: m.reg,
		Inputs:    m.in,
		Outputs:   m.out,
		Flags:     m.flags,
	}
}
