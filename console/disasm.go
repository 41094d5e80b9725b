package console

import (
	"fmt"

	"minirechner2i/alu"
	"minirechner2i/microword"
)

// Disassemble renders a microword as a human-readable mnemonic line.
// This is display-only: the core never parses this format back into a
// microword, matching spec.md's Non-goal of no assembler/disassembler.
// It is adapted from the teacher's instruction-mnemonic table, just
// keyed on microword fields instead of a PDP-11 opcode.
func Disassemble(w microword.Word) string {
	op := alu.Op(w.ALUOp())

	bSrc := fmt.Sprintf("R%d", w.BREG())
	if w.BSEL() {
		bSrc = fmt.Sprintf("#%d", int8(w.Immediate()))
	}
	aSrc := fmt.Sprintf("R%d", w.AREG())
	if w.ASRC() {
		aSrc = fmt.Sprintf("bus[R%d]", w.AREG())
	}

	line := fmt.Sprintf("%-6s A=%-9s B=%-5s", op.Mnemonic(), aSrc, bSrc)

	if w.WR() {
		tgt := fmt.Sprintf("R%d", w.AREG())
		if w.WTGT() {
			tgt = fmt.Sprintf("R%d", w.BREG())
		}
		line += fmt.Sprintf(" -> %s", tgt)
	}
	if w.BusEn() {
		if w.BusWr() {
			line += " BUS-WRITE"
		} else {
			line += " BUS-READ"
		}
	}
	if w.FL() {
		line += " FL"
	}
	line += fmt.Sprintf(" NEXT=%02d MAC=%d", w.Next(), w.MAC())
	return line
}
