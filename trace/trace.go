// Package trace keeps a bounded scrollback of executed microcycles
// for an operator console. It is adapted from the teacher's
// DebugQueue and is purely a debugging aid: step() itself never reads
// from or writes through this package.
package trace

import (
	"fmt"

	"minirechner2i/flags"
	"minirechner2i/microword"
)

// Entry records one executed (or faulted) microcycle.
type Entry struct {
	PC     uint8
	Word   microword.Word
	Flags  flags.Flags
	Fault  error
}

// Buffer is a fixed-capacity FIFO of Entry; once full, the oldest
// entry is dropped to make room for the newest.
type Buffer struct {
	items []Entry
	cap   int
}

// New returns an empty trace buffer holding at most capacity entries.
func New(capacity int) *Buffer {
	if capacity < 1 {
		capacity = 1
	}
	return &Buffer{cap: capacity}
}

// Push records e, evicting the oldest entry if the buffer is full.
func (b *Buffer) Push(e Entry) {
	if len(b.items) == b.cap {
		b.items = b.items[1:]
	}
	b.items = append(b.items, e)
}

// Entries returns the buffered entries, oldest first.
func (b *Buffer) Entries() []Entry {
	return b.items
}

// String renders e for an operator console line.
func (e Entry) String() string {
	if e.Fault != nil {
		return fmt.Sprintf("PC=%02d %s -> FAULT: %v", e.PC, e.Flags, e.Fault)
	}
	return fmt.Sprintf("PC=%02d %s", e.PC, e.Flags)
}
