package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSparse(t *testing.T) {
	// DOK assembly with Add accumulation
	{
		A := NewDOK(3, 3)
		A.Set(0, 0, 2)
		A.Add(0, 0, 1)
		A.Add(1, 2, -4)
		assert.Equal(t, 3.0, A.At(0, 0))
		assert.Equal(t, -4.0, A.At(1, 2))
		assert.Equal(t, 0.0, A.At(2, 2))
	}
	// CSR MulVec against a hand-computed product
	{
		A := NewDOK(3, 3)
		A.Set(0, 0, 2)
		A.Set(0, 1, -1)
		A.Set(1, 0, -1)
		A.Set(1, 1, 2)
		A.Set(1, 2, -1)
		A.Set(2, 1, -1)
		A.Set(2, 2, 2)
		B := A.ToCSR()
		var (
			x = []float64{1, 2, 3}
			y = make([]float64, 3)
		)
		B.MulVec(x, y)
		assert.Equal(t, []float64{0, 0, 4}, y)
	}
	// Diagonal extraction
	{
		A := NewDOK(3, 3)
		A.Set(0, 0, 4)
		A.Set(1, 1, 5)
		A.Set(0, 2, 7)
		d := A.ToCSR().Diagonal()
		assert.Equal(t, []float64{4, 5, 0}, d)
	}
	// MulVec dimension mismatch panics
	{
		A := NewDOK(2, 3)
		A.Set(0, 0, 1)
		B := A.ToCSR()
		assert.Panics(t, func() { B.MulVec(make([]float64, 2), make([]float64, 2)) })
	}
}
