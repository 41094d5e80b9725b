package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"minirechner2i/microword"
)

// LoadProgram reads up to 32 microwords from r, one per non-blank,
// non-comment line, each a 25-character string of '0'/'1' (MSB
// first: bit 24 .. bit 0). This textual encoding is the console's
// concern, not the core's, per spec.md §6: the core only ever sees a
// decoded microword.Word.
func LoadProgram(r io.Reader) ([32]microword.Word, error) {
	var program [32]microword.Word
	scanner := bufio.NewScanner(r)
	addr := 0
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if addr >= 32 {
			return program, fmt.Errorf("line %d: more than 32 microwords", lineNo)
		}
		if len(line) != 25 {
			return program, fmt.Errorf("line %d: expected 25 bits, got %d", lineNo, len(line))
		}
		v, err := strconv.ParseUint(line, 2, 32)
		if err != nil {
			return program, fmt.Errorf("line %d: %w", lineNo, err)
		}
		program[addr] = microword.Word(v)
		addr++
	}
	if err := scanner.Err(); err != nil {
		return program, err
	}
	return program, nil
}
