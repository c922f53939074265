package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix(t *testing.T) {
	// At / Set / Data layout
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		nr, nc := M.Dims()
		assert.Equal(t, 2, nr)
		assert.Equal(t, 3, nc)
		assert.Equal(t, 6.0, M.At(1, 2))
		M.Set(1, 2, 10)
		assert.Equal(t, 10.0, M.At(1, 2))
		assert.Equal(t, []float64{1, 2, 3, 4, 5, 10}, M.Data())
	}
	// Copy is independent storage
	{
		M := NewMatrix(2, 2, []float64{1, 2, 3, 4})
		A := M.Copy()
		A.Set(0, 0, 9)
		assert.Equal(t, 1.0, M.At(0, 0))
		assert.Equal(t, 9.0, A.At(0, 0))
	}
	// CopyFrom with mismatched dims panics
	{
		M := NewMatrix(2, 2)
		A := NewMatrix(3, 2)
		assert.Panics(t, func() { M.CopyFrom(A) })
	}
	// Fill / Min / Max / Sum
	{
		M := NewMatrix(2, 2).Fill(2.5)
		assert.Equal(t, 2.5, M.Max())
		M.Set(1, 1, -1)
		assert.Equal(t, -1.0, M.Min())
		assert.Equal(t, 2.5, M.Max())
		assert.InDelta(t, 6.5, M.Sum(), 1.e-12)
	}
	// Allocation size mismatch panics
	{
		assert.Panics(t, func() { NewMatrix(2, 2, []float64{1, 2, 3}) })
	}
}
