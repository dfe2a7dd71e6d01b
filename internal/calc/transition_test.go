package calc

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dispatch runs a press sequence from the initial state.
func dispatch(events ...Event) State {
	s := Initial()
	for _, e := range events {
		s = Transition(s, e)
	}
	return s
}

func TestTransition_Clear_RestoresInitial(t *testing.T) {
	priors := []State{
		{},
		{Display: 99, Accumulator: 12, LastOp: TagAdd, ResetDisplay: true},
		{Display: math.Inf(1), Accumulator: math.NaN(), LastOp: TagEquals},
		{Display: -3.5, PendingFraction: true},
	}

	for _, prior := range priors {
		got := Transition(prior, Clear())
		assert.Equal(t, Initial(), got, "clear should discard all prior fields")
	}
}

func TestTransition_Clear_Idempotent(t *testing.T) {
	s := dispatch(Digit(7), Op(OpMultiply), Digit(6))

	once := Transition(s, Clear())
	twice := Transition(once, Clear())
	assert.Equal(t, once, twice, "clearing twice should equal clearing once")
}

func TestTransition_Digit_OverwritesAfterReset(t *testing.T) {
	s := State{Display: 99, ResetDisplay: true}

	got := Transition(s, Digit(3))
	assert.Equal(t, float64(3), got.Display, "reset mode should overwrite, not append")
	assert.False(t, got.ResetDisplay)
	assert.False(t, got.PendingFraction)
}

func TestTransition_Digit_AppendsInteger(t *testing.T) {
	got := dispatch(Digit(1), Digit(2), Digit(5))
	assert.Equal(t, float64(125), got.Display)
}

func TestTransition_DecimalThenDigit(t *testing.T) {
	got := dispatch(Digit(1), Decimal(), Digit(5))
	assert.Equal(t, 1.5, got.Display)
}

func TestTransition_Decimal_LeavesLastOpUnchanged(t *testing.T) {
	s := State{Display: 5, Accumulator: 5, LastOp: TagAdd, ResetDisplay: true}

	got := Transition(s, Decimal())
	assert.Equal(t, TagAdd, got.LastOp, "decimal must not record itself as the last operation")
	assert.True(t, got.PendingFraction)
	assert.False(t, got.ResetDisplay, "decimal clears reset mode")
	assert.Equal(t, float64(5), got.Display, "decimal does not alter the display")
}

func TestTransition_Digit_LeavesLastOpUnchanged(t *testing.T) {
	s := State{Display: 2, Accumulator: 2, LastOp: TagAdd, ResetDisplay: true}

	got := Transition(s, Digit(3))
	assert.Equal(t, TagAdd, got.LastOp)
}

func TestTransition_Operator_SeedsChain(t *testing.T) {
	got := dispatch(Digit(2), Op(OpAdd))

	assert.Equal(t, float64(2), got.Accumulator, "first operator should seed the accumulator")
	assert.Equal(t, float64(2), got.Display)
	assert.Equal(t, TagAdd, got.LastOp)
	assert.True(t, got.ResetDisplay)
}

func TestTransition_Operator_FoldsEagerly(t *testing.T) {
	// 2 + 3 + 4 = should fold left to right: 2+3=5, 5+4=9.
	got := dispatch(Digit(2), Op(OpAdd), Digit(3), Op(OpAdd), Digit(4), Equals())
	assert.Equal(t, float64(9), got.Display)
	assert.Equal(t, float64(9), got.Accumulator)
	assert.Equal(t, TagEquals, got.LastOp)
}

func TestTransition_Operator_FoldUsesNewOperator(t *testing.T) {
	// The fold applies the operator being pressed NOW, not the pending
	// one: 2 + 3 * dispatches multiply(2, 3) = 6, not add(2, 3) = 5.
	got := dispatch(Digit(2), Op(OpAdd), Digit(3), Op(OpMultiply))
	assert.Equal(t, float64(6), got.Display)
	assert.Equal(t, float64(6), got.Accumulator)
	assert.Equal(t, TagMultiply, got.LastOp)
}

func TestTransition_Operator_AfterEquals_StartsNewChain(t *testing.T) {
	s := dispatch(Digit(5), Op(OpAdd), Digit(3), Equals())
	require.Equal(t, float64(8), s.Display)

	got := Transition(s, Op(OpAdd))
	assert.Equal(t, float64(8), got.Display, "display carries over into the new chain")
	assert.Equal(t, float64(8), got.Accumulator)
	assert.Equal(t, TagAdd, got.LastOp)
	assert.True(t, got.ResetDisplay)

	// The carried result is usable as the left operand.
	got = Transition(got, Digit(2))
	got = Transition(got, Equals())
	assert.Equal(t, float64(10), got.Display)
}

func TestTransition_Equals_AppliesPendingOperator(t *testing.T) {
	got := dispatch(Digit(5), Op(OpAdd), Digit(3), Equals())
	assert.Equal(t, float64(8), got.Display)
	assert.Equal(t, float64(8), got.Accumulator)
	assert.Equal(t, TagEquals, got.LastOp)
	assert.True(t, got.ResetDisplay)
}

func TestTransition_Equals_Repeated_NoNewOperand(t *testing.T) {
	s := dispatch(Digit(5), Op(OpAdd), Digit(3), Equals())
	require.Equal(t, float64(8), s.Display)

	// LastOp is already equals: the no-op fold returns the accumulator.
	got := Transition(s, Equals())
	assert.Equal(t, float64(8), got.Display, "repeated equals should not re-apply the operator")
	assert.Equal(t, float64(8), got.Accumulator)
}

func TestTransition_Equals_NothingEntered(t *testing.T) {
	got := dispatch(Equals())
	assert.Equal(t, float64(0), got.Display)
	assert.Equal(t, TagEquals, got.LastOp)
	assert.True(t, got.ResetDisplay)
}

func TestTransition_DivideByZero_YieldsInfinity(t *testing.T) {
	got := dispatch(Digit(5), Op(OpDivide), Digit(0), Equals())
	assert.True(t, math.IsInf(got.Display, 1), "5/0 should display +Inf, not an error")
}

func TestTransition_ZeroByZero_YieldsNaN(t *testing.T) {
	got := dispatch(Digit(0), Op(OpDivide), Digit(0), Equals())
	assert.True(t, math.IsNaN(got.Display))
}

func TestTransition_NaNAccumulator_IsFalsy(t *testing.T) {
	// A NaN accumulator counts as "no pending left operand": the next
	// operator press seeds the chain from the display instead of folding
	// NaN into everything that follows.
	s := State{Display: 7, Accumulator: math.NaN(), LastOp: TagDivide}

	got := Transition(s, Op(OpAdd))
	assert.Equal(t, float64(7), got.Accumulator)
	assert.Equal(t, TagAdd, got.LastOp)
}

func TestTransition_Pure_DoesNotMutateInput(t *testing.T) {
	s := State{Display: 12, Accumulator: 3, LastOp: TagAdd}
	before := s

	_ = Transition(s, Digit(5))
	_ = Transition(s, Op(OpMultiply))
	_ = Transition(s, Equals())
	assert.Equal(t, before, s, "Transition must not mutate its input")
}

func TestTransition_NegativeDisplay_FractionEntry(t *testing.T) {
	// 2 - 5 = gives -3; a decimal press then extends it downward.
	s := dispatch(Digit(2), Op(OpSubtract), Digit(5), Equals())
	require.Equal(t, float64(-3), s.Display)

	s = Transition(s, Decimal())
	s = Transition(s, Digit(5))
	assert.Equal(t, -3.5, s.Display)
}

func TestAppendDigit(t *testing.T) {
	tests := []struct {
		name          string
		display       float64
		startFraction bool
		digit         int
		want          float64
	}{
		{"integer append", 12, false, 5, 125},
		{"integer append to zero", 0, false, 7, 7},
		{"first fractional digit", 12, true, 5, 12.5},
		{"fraction from zero", 0, true, 5, 0.5},
		{"extend fraction", 12.5, false, 3, 12.53},
		{"decimal while fractional extends scale", 12.5, true, 3, 12.53},
		{"negative fraction", -3, true, 5, -3.5},
		{"negative fraction extend", -3.5, false, 2, -3.52},
		// Values whose nearest doubles are not reachable by shifting and
		// adding a scaled step; only text append-and-reparse hits them.
		{"exact parse 1.15", 1.1, false, 5, 1.15},
		{"exact parse 7.77", 7.7, false, 7, 7.77},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := appendDigit(tt.display, tt.startFraction, tt.digit)
			assert.Equal(t, tt.want, got, "must be bit-exact, not merely close")
		})
	}
}

func TestAppendDigit_NonFiniteUnchanged(t *testing.T) {
	assert.True(t, math.IsInf(appendDigit(math.Inf(1), false, 5), 1))
	assert.True(t, math.IsNaN(appendDigit(math.NaN(), true, 5)))
}

func TestTransition_DigitEntry_MatchesTypedText(t *testing.T) {
	// Typing a number digit by digit must land on exactly the double its
	// textual form parses to, and render back as that same text.
	for _, text := range []string{"1.15", "3.14159", "7.77", "0.1", "123.456"} {
		t.Run(text, func(t *testing.T) {
			s := Initial()
			for _, r := range text {
				if r == '.' {
					s = Transition(s, Decimal())
				} else {
					s = Transition(s, Digit(int(r-'0')))
				}
			}

			want, err := strconv.ParseFloat(text, 64)
			require.NoError(t, err)
			assert.Equal(t, want, s.Display)
			assert.Equal(t, text, FormatDisplay(s.Display))
		})
	}
}
