package utils

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// DOK wraps a dictionary-of-keys sparse matrix used during assembly. Entries
// accumulate by summation via Add; duplicate (row,col) contributions from
// elements sharing a dof must never overwrite one another.
type DOK struct {
	M        *sparse.DOK
	readOnly bool
	name     string
}

func NewDOK(nr, nc int) (R DOK) {
	R = DOK{
		sparse.NewDOK(nr, nc),
		false,
		"unnamed - hint: pass a variable name to SetReadOnly()",
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m DOK) Dims() (r, c int)    { return m.M.Dims() }
func (m DOK) At(i, j int) float64 { return m.M.At(i, j) }
func (m DOK) T() mat.Matrix       { return m.M.T() }
func (m DOK) NNZ() int            { return m.M.NNZ() }

func (m *DOK) SetReadOnly(name ...string) DOK {
	if len(name) != 0 {
		m.name = name[0]
	}
	m.readOnly = true
	return *m
}

// Add accumulates val into entry (i,j), summing with any prior value.
func (m DOK) Add(i, j int, val float64) { // Changes receiver
	m.checkWritable()
	m.M.Set(i, j, m.M.At(i, j)+val)
}

// EliminateRowCol zeroes the off-diagonal entries of row i and column i,
// keeping the diagonal entry at its assembled value. Callers relying on a
// unit diagonal must rescale externally.
func (m DOK) EliminateRowCol(i int) { // Changes receiver
	m.EliminateRowsCols(Index{i})
}

// EliminateRowsCols applies EliminateRowCol for every dof in ess in one pass
// over the nonzero entries.
func (m DOK) EliminateRowsCols(ess Index) { // Changes receiver
	var (
		nr, _ = m.Dims()
		mark  = make([]bool, nr)
		rows  Index
		cols  Index
	)
	m.checkWritable()
	for _, i := range ess {
		if i < 0 || i >= nr {
			panic(fmt.Errorf("essential dof %d out of range [0,%d)", i, nr))
		}
		mark[i] = true
	}
	m.M.DoNonZero(func(i, j int, v float64) {
		if i != j && (mark[i] || mark[j]) {
			rows = append(rows, i)
			cols = append(cols, j)
		}
	})
	for ii := range rows {
		m.M.Set(rows[ii], cols[ii], 0.)
	}
}

// ToCSR compresses the accumulated entries into a canonical sparse structure.
// Ownership of the result transfers to the caller.
func (m DOK) ToCSR() CSR {
	return CSR{
		M:        m.M.ToCSR(),
		readOnly: m.readOnly,
		name:     m.name,
	}
}

func (m DOK) checkWritable() {
	if m.readOnly {
		err := fmt.Errorf("attempt to write to a read only matrix named: \"%v\"", m.name)
		panic(err)
	}
}

type CSR struct {
	M        *sparse.CSR
	readOnly bool
	name     string
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m CSR) Dims() (r, c int)    { return m.M.Dims() }
func (m CSR) At(i, j int) float64 { return m.M.At(i, j) }
func (m CSR) T() mat.Matrix       { return m.M.T() }
func (m CSR) NNZ() int            { return m.M.NNZ() }

// MulVec computes y = A*x.
func (m CSR) MulVec(x *mat.VecDense) (y *mat.VecDense) {
	var (
		nr, nc = m.Dims()
	)
	if x.Len() != nc {
		panic(fmt.Errorf("dimension mismatch in MulVec: nc = %d, len(x) = %d", nc, x.Len()))
	}
	y = mat.NewVecDense(nr, nil)
	yd := y.RawVector().Data
	m.M.DoNonZero(func(i, j int, v float64) {
		yd[i] += v * x.AtVec(j)
	})
	return
}
