package calc

import "math"

// Operator identifies one of the four arithmetic operations.
type Operator int

const (
	OpAdd Operator = iota + 1
	OpSubtract
	OpMultiply
	OpDivide
)

// Apply folds two operands with the operator.
//
// Arithmetic follows IEEE-754 throughout: divide by zero yields ±Inf,
// 0/0 yields NaN, and overflow saturates to ±Inf. There is deliberately
// no guard against any of these - non-finite results flow through the
// machine like any other display value.
//
// An operator outside the four defined values yields NaN.
func (o Operator) Apply(a, b float64) float64 {
	switch o {
	case OpAdd:
		return a + b
	case OpSubtract:
		return a - b
	case OpMultiply:
		return a * b
	case OpDivide:
		return a / b
	}
	return math.NaN()
}

// Tag returns the state tag recorded when this operator is pressed.
func (o Operator) Tag() Tag {
	switch o {
	case OpAdd:
		return TagAdd
	case OpSubtract:
		return TagSubtract
	case OpMultiply:
		return TagMultiply
	case OpDivide:
		return TagDivide
	}
	return TagNone
}

// String returns the key symbol for the operator ("+", "-", "*", "/").
func (o Operator) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	}
	return "?"
}

// Tag records the kind of the most recent state-changing press.
//
// Only six values are reachable: TagNone (initial and after clear), the
// four operator tags, and TagEquals. Digit and decimal presses leave the
// previous tag in place, which is what makes repeated-equals and
// operator-after-equals decisions possible.
type Tag string

const (
	TagNone     Tag = ""
	TagAdd      Tag = "add"
	TagSubtract Tag = "subtract"
	TagMultiply Tag = "multiply"
	TagDivide   Tag = "divide"
	TagEquals   Tag = "equals"
)

// Operator returns the operator a tag was recorded from, if any.
// TagNone and TagEquals are not operator tags.
func (t Tag) Operator() (Operator, bool) {
	switch t {
	case TagAdd:
		return OpAdd, true
	case TagSubtract:
		return OpSubtract, true
	case TagMultiply:
		return OpMultiply, true
	case TagDivide:
		return OpDivide, true
	}
	return 0, false
}
