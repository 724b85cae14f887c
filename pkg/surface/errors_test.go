package surface

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMatchesByCode(t *testing.T) {
	err := newError(CodeShape, "X has %d elements", 3)
	assert.ErrorIs(t, err, ErrShape)
	assert.NotErrorIs(t, err, ErrUnsupportedShape)
	assert.Equal(t, "SURFACE: X has 3 elements", err.Error())

	wrapped := fmt.Errorf("plot: %w", err)
	assert.ErrorIs(t, wrapped, ErrShape)

	var se *Error
	assert.True(t, errors.As(wrapped, &se))
	assert.Equal(t, CodeShape, se.Code)
}

func TestAsArray(t *testing.T) {
	a, err := AsArray([][]int{{1, 2, 3}, {4, 5, 6}})
	assert.NoError(t, err)
	assert.Equal(t, []int{3, 2}, a.Dims)
	assert.Equal(t, 2, a.Rank())

	a, err = AsArray([]float32{1, 2})
	assert.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, a.Data)

	_, err = AsArray(&Array{Dims: []int{2, 2}, Data: []float64{1}})
	assert.ErrorIs(t, err, ErrShape)

	_, err = AsArray((*Array)(nil))
	assert.ErrorIs(t, err, ErrNotNumeric)

	_, err = AsArray(map[string]int{})
	assert.ErrorIs(t, err, ErrNotNumeric)

	assert.Equal(t, 2, Array{Dims: []int{4, 3, 1}}.Rank())
	assert.Equal(t, 2, Array{Dims: []int{1, 4, 3}}.EquivalentRank())
}

func TestSetLoggerNilRestoresSilence(t *testing.T) {
	SetLogger(nil)
	assert.False(t, Logger().Enabled(t.Context(), 8))
}
