package axis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdjustLinear(t *testing.T) {
	tests := []struct {
		name  string
		in    Range
		exact bool
		want  Range
	}{
		{"already nice", Range{0, 15}, false, Range{0, 15}},
		{"small integers", Range{0, 3}, false, Range{0, 3}},
		{"widened", Range{0.3, 9.2}, false, Range{0, 10}},
		{"negative", Range{-7, 42}, false, Range{-10, 50}},
		{"reversed keeps order", Range{9.2, 0.3}, false, Range{10, 0}},
		{"flat range opened", Range{4, 4}, false, Range{3, 5}},
		{"exact untouched", Range{0.3, 9.2}, true, Range{0.3, 9.2}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Adjust(tc.in, false, tc.exact)
			assert.InDelta(t, tc.want.Start, got.Start, 1e-9)
			assert.InDelta(t, tc.want.End, got.End, 1e-9)
		})
	}
}

func TestAdjustLog(t *testing.T) {
	tests := []struct {
		name  string
		in    Range
		exact bool
		want  Range
	}{
		{"decades", Range{3, 450}, false, Range{1, 1000}},
		{"single decade opened", Range{10, 10}, false, Range{10, 100}},
		{"non-positive end", Range{-5, 0}, false, Range{1, 10}},
		{"non-positive start exact", Range{0, 100}, true, Range{1e-10, 100}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Adjust(tc.in, true, tc.exact)
			assert.InEpsilon(t, tc.want.Start, got.Start, 1e-9)
			assert.InEpsilon(t, tc.want.End, got.End, 1e-9)
		})
	}
}

func TestInterval(t *testing.T) {
	assert.Equal(t, 5.0, Interval(Range{0, 15}, 5))
	assert.Equal(t, 1.0, Interval(Range{0, 3}, 5))
	assert.InDelta(t, 0.2, Interval(Range{0, 1}, 5), 1e-12)
	assert.Equal(t, 1.0, Interval(Range{2, 2}, 5), "empty span falls back to 1")
}

func TestTicks(t *testing.T) {
	assert.Equal(t, []float64{0, 5, 10, 15}, Ticks(Range{0, 15}, false))
	assert.Equal(t, []float64{0, 1, 2, 3}, Ticks(Range{3, 0}, false))
	assert.Equal(t, []float64{0, 1, 2, 3}, Ticks(Range{-0.5, 3.2}, true))
	assert.Nil(t, Ticks(Range{1, 1}, false))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "0", Label(0, false))
	assert.Equal(t, "2.5", Label(2.5, false))
	assert.Equal(t, "1000", Label(3, true))
	assert.Equal(t, "1e+06", Label(6, true))
}
