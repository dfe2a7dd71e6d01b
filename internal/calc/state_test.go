package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitial_IsZeroValue(t *testing.T) {
	assert.Equal(t, State{}, Initial(), "the zero State is the power-on state")
	assert.Equal(t, TagNone, Initial().LastOp)
}

func TestFormatDisplay(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0, "0"},
		{125, "125"},
		{1.5, "1.5"},
		{-3.52, "-3.52"},
		{math.Inf(1), "+Inf"},
		{math.Inf(-1), "-Inf"},
		{math.NaN(), "NaN"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDisplay(tt.v), "FormatDisplay(%v)", tt.v)
	}
}
