package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestDOKAccumulate(t *testing.T) {
	A := NewDOK(4, 4)
	A.Add(1, 2, 1.5)
	A.Add(1, 2, 2.0)
	A.Add(3, 3, -1.0)
	// Duplicate (row,col) contributions sum, never overwrite.
	assert.Equal(t, 3.5, A.At(1, 2))
	assert.Equal(t, -1.0, A.At(3, 3))
	assert.Equal(t, 0.0, A.At(0, 0))
}

func TestEliminateRowsCols(t *testing.T) {
	A := NewDOK(4, 4)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			A.Add(i, j, float64(1+i+10*j))
		}
	}
	diag1 := A.At(1, 1)
	A.EliminateRowsCols(Index{1, 3})
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			switch {
			case i == j:
				assert.NotEqual(t, 0.0, A.At(i, j))
			case i == 1 || j == 1 || i == 3 || j == 3:
				assert.Equal(t, 0.0, A.At(i, j))
			default:
				assert.NotEqual(t, 0.0, A.At(i, j))
			}
		}
	}
	// Diagonal kept at its assembled value, not reset to 1.
	assert.Equal(t, diag1, A.At(1, 1))
}

func TestToCSRAndMulVec(t *testing.T) {
	A := NewDOK(3, 3)
	A.Add(0, 0, 2)
	A.Add(0, 1, -1)
	A.Add(1, 1, 2)
	A.Add(2, 0, -1)
	C := A.ToCSR()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.Equal(t, A.At(i, j), C.At(i, j))
		}
	}
	x := mat.NewVecDense(3, []float64{1, 2, 3})
	y := C.MulVec(x)
	assert.InDelta(t, 0., y.AtVec(0), 1.e-15)
	assert.InDelta(t, 4., y.AtVec(1), 1.e-15)
	assert.InDelta(t, -1., y.AtVec(2), 1.e-15)
}

func TestIndexHelpers(t *testing.T) {
	assert.True(t, Index{2, 0, 1}.IsPermutation())
	assert.False(t, Index{0, 0, 2}.IsPermutation())
	assert.False(t, Index{0, 3, 1}.IsPermutation())
	assert.Equal(t, Index{3, 4, 5}, NewRange(3, 5))
	assert.True(t, Index{1, 5}.Contains(5))
	assert.Equal(t, 5, Index{1, 5, 2}.Max())
}

func TestMatrixLocalBlock(t *testing.T) {
	M := NewMatrix(2, 2, []float64{1, 2, 3, 4})
	M.AddAt(0, 1, 0.5)
	assert.Equal(t, 2.5, M.At(0, 1))
	M.Zero()
	assert.Equal(t, []float64{0, 0, 0, 0}, M.Data())
	S := NewMatrix(2, 2, []float64{1, 2, 2, 4})
	assert.True(t, S.IsSymmetric(0))
	assert.False(t, M.Set(0, 1, 1).IsSymmetric(1.e-15))
	T := S.Transpose()
	assert.Equal(t, S.Data(), T.Data())
}
