// Package keypad maps key gestures to calculator events.
//
// This is the input boundary: everything past it is pre-validated, so the
// state machine itself never needs an error path. Parse handles one key
// token; ParseScript scans a whole press script ("12.5+3=") rune by rune,
// skipping whitespace and rejecting anything that is not a key.
package keypad

import (
	"fmt"
	"unicode"

	"github.com/roach88/abacus/internal/calc"
)

// ParseError reports a script rune that maps to no key.
type ParseError struct {
	Pos  int  // byte offset within the script
	Rune rune // the offending rune
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("unknown key %q at offset %d", e.Rune, e.Pos)
}

// Parse maps a single key token to its event.
//
// Bound keys: digits "0"-"9", decimal "." ("," accepted as an alias),
// operators "+", "-", "*" ("x"/"X" aliases), "/", equals "=", and clear
// "C" (case-insensitive). Anything else is an error.
func Parse(token string) (calc.Event, error) {
	runes := []rune(token)
	if len(runes) != 1 {
		return calc.Event{}, fmt.Errorf("key token must be a single rune, got %q", token)
	}
	return parseRune(runes[0], 0)
}

// ParseScript scans a press script into an ordered event slice.
// Whitespace separates nothing and means nothing; it is skipped. The first
// unknown rune aborts the scan with a *ParseError carrying its offset.
func ParseScript(script string) ([]calc.Event, error) {
	events := make([]calc.Event, 0, len(script))
	for i, r := range script {
		if unicode.IsSpace(r) {
			continue
		}
		e, err := parseRune(r, i)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}

func parseRune(r rune, pos int) (calc.Event, error) {
	switch {
	case r >= '0' && r <= '9':
		return calc.Digit(int(r - '0')), nil
	case r == '.' || r == ',':
		return calc.Decimal(), nil
	case r == '+':
		return calc.Op(calc.OpAdd), nil
	case r == '-':
		return calc.Op(calc.OpSubtract), nil
	case r == '*' || r == 'x' || r == 'X':
		return calc.Op(calc.OpMultiply), nil
	case r == '/':
		return calc.Op(calc.OpDivide), nil
	case r == '=':
		return calc.Equals(), nil
	case r == 'C' || r == 'c':
		return calc.Clear(), nil
	}
	return calc.Event{}, &ParseError{Pos: pos, Rune: r}
}
