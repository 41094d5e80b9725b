// Package faults defines the tagged error kinds the interpreter can
// surface. There is no recovery machinery here: a fault is reported to
// the caller and nothing else happens.
package faults

import "fmt"

// Kind distinguishes the two fault families the core can raise.
type Kind int

const (
	// IndexOutOfRange is returned by any accessor called with an index
	// past its array bound.
	IndexOutOfRange Kind = iota
	// BusFault is returned by Step when a microword asks for a bus
	// operation the bus discipline forbids.
	BusFault
)

func (k Kind) String() string {
	switch k {
	case IndexOutOfRange:
		return "index out of range"
	case BusFault:
		return "bus fault"
	default:
		return "unknown fault"
	}
}

// Fault is the error type returned by every fallible core accessor.
// Where identifies the array or sub-system involved; Detail gives a
// human-readable reason.
type Fault struct {
	Kind   Kind
	Where  string
	Detail string
}

func (f *Fault) Error() string {
	if f.Detail == "" {
		return fmt.Sprintf("%s: %s", f.Kind, f.Where)
	}
	return fmt.Sprintf("%s: %s: %s", f.Kind, f.Where, f.Detail)
}

// OutOfRange builds an IndexOutOfRange fault for array where, index idx
// against bound size (exclusive upper bound).
func OutOfRange(where string, idx, size int) *Fault {
	return &Fault{
		Kind:   IndexOutOfRange,
		Where:  where,
		Detail: fmt.Sprintf("index %d, size %d", idx, size),
	}
}

// Bus builds a BusFault for the named reason.
func Bus(reason string) *Fault {
	return &Fault{Kind: BusFault, Where: "bus", Detail: reason}
}
