package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvent_Constructors_Validate(t *testing.T) {
	events := []Event{
		Decimal(), Equals(), Clear(),
		Op(OpAdd), Op(OpSubtract), Op(OpMultiply), Op(OpDivide),
	}
	for d := 0; d <= 9; d++ {
		events = append(events, Digit(d))
	}

	for _, e := range events {
		assert.NoError(t, e.Validate(), "constructor-built event %q should validate", e.Label())
	}
}

func TestEvent_Validate_Rejects(t *testing.T) {
	tests := []struct {
		name string
		e    Event
	}{
		{"digit below range", Digit(-1)},
		{"digit above range", Digit(10)},
		{"unknown operator", Op(Operator(7))},
		{"zero kind", Event{}},
		{"unknown kind", Event{Kind: Kind(42)}},
		{"decimal with payload", Event{Kind: KindDecimal, Digit: 3}},
		{"equals with payload", Event{Kind: KindEquals, Op: OpAdd}},
		{"clear with payload", Event{Kind: KindClear, Digit: 1}},
		{"digit with operator payload", Event{Kind: KindDigit, Digit: 1, Op: OpAdd}},
		{"operator with digit payload", Event{Kind: KindOperator, Op: OpAdd, Digit: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.e.Validate())
		})
	}
}

func TestEvent_Label(t *testing.T) {
	assert.Equal(t, "7", Digit(7).Label())
	assert.Equal(t, ".", Decimal().Label())
	assert.Equal(t, "+", Op(OpAdd).Label())
	assert.Equal(t, "/", Op(OpDivide).Label())
	assert.Equal(t, "=", Equals().Label())
	assert.Equal(t, "C", Clear().Label())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "digit", KindDigit.String())
	assert.Equal(t, "operator", KindOperator.String())
	assert.Equal(t, "kind(42)", Kind(42).String())
}
