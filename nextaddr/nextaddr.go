// Package nextaddr implements the Minirechner 2i's branching network:
// the pure function that turns the NEXT field, the MAC selector and
// the flag state into the address of the next microinstruction.
package nextaddr

import "minirechner2i/flags"

// Next computes the 5-bit next microinstruction address. Bits 4..1 of
// the result are always bits 4..1 of next; bit 0 is selected by the
// 3-bit selector (mac[1], mac[0], next[0]) per the table in §4.3. cur
// is the flags just produced by this cycle's ALU operation; latched is
// the flag register's value before this cycle's (possible) update.
func Next(next uint8, mac uint8, cur, latched flags.Flags) uint8 {
	sel := (mac&0x3)<<1 | (next & 1)
	var bit0 uint8
	switch sel {
	case 0b000, 0b001:
		bit0 = next & 1
	case 0b010:
		bit0 = 1
	case 0b011:
		bit0 = boolToBit(latched.Carry())
	case 0b100:
		bit0 = boolToBit(cur.Carry())
	case 0b101:
		bit0 = boolToBit(cur.Zero())
	case 0b110:
		bit0 = boolToBit(cur.Negative())
	case 0b111:
		bit0 = 0
	}
	return (next & 0b11110) | bit0
}

func boolToBit(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
