package keypad

import "github.com/roach88/abacus/internal/calc"

// Key is one slot on the pad. Unbound slots are decorative: they render in
// the layout but produce no event.
type Key struct {
	Label string
	Event calc.Event
	Bound bool
}

func bound(label string) Key {
	e, err := Parse(label)
	if err != nil {
		panic("keypad: layout key does not parse: " + label)
	}
	return Key{Label: label, Event: e, Bound: true}
}

// Layout is the four-by-five pad grid. Seventeen distinct keys are bound,
// two slots are decorative, and the zero key spans two cells on the bottom
// row (both cells carry the same event).
var Layout = [5][4]Key{
	{bound("C"), {}, {}, bound("/")},
	{bound("7"), bound("8"), bound("9"), bound("*")},
	{bound("4"), bound("5"), bound("6"), bound("-")},
	{bound("1"), bound("2"), bound("3"), bound("+")},
	{bound("0"), bound("0"), bound("."), bound("=")},
}
