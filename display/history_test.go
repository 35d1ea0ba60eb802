package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistoryEvictsOldest(t *testing.T) {
	h := NewHistory(2)
	assert.Equal(t, 2, h.Cap())
	assert.Equal(t, 0, h.Len())

	h.Push([]float64{1})
	h.Push([]float64{2})
	h.Push([]float64{3})

	assert.Equal(t, 2, h.Len())
	assert.Equal(t, []float64{2}, h.At(0))
	assert.Equal(t, []float64{3}, h.At(1))
	assert.Equal(t, []float64{2, 3}, h.Concat(nil))
}

func TestHistoryCapacityClamp(t *testing.T) {
	assert.Equal(t, 1, NewHistory(0).Cap())
	assert.Equal(t, 1, NewHistory(-3).Cap())

	h := NewHistory(3)
	h.Resize(0)
	assert.Equal(t, 1, h.Cap())
}

func TestHistoryResize(t *testing.T) {
	h := NewHistory(3)
	for i := 1; i <= 5; i++ {
		h.Push([]float64{float64(i)})
	}
	assert.Equal(t, []float64{3, 4, 5}, h.Concat(nil))

	h.Resize(5)
	assert.Equal(t, []float64{3, 4, 5}, h.Concat(nil))
	h.Push([]float64{6})
	assert.Equal(t, []float64{3, 4, 5, 6}, h.Concat(nil))

	h.Resize(2)
	assert.Equal(t, 2, h.Len())
	assert.Equal(t, []float64{5, 6}, h.Concat(nil))
}

func TestHistoryClear(t *testing.T) {
	h := NewHistory(2)
	h.Push([]float64{1, 2})
	h.Clear()

	assert.Equal(t, 0, h.Len())
	assert.Empty(t, h.Concat(nil))

	h.Push([]float64{3})
	assert.Equal(t, []float64{3}, h.Concat(nil))
}
