// Package lor implements batched assembly of the low-order-refined (LOR)
// approximation of a high-order diffusion stiffness operator. The fine mesh
// obtained by subdividing each high-order element into a grid of
// bilinear/trilinear cells is assembled directly into a global sparse matrix,
// exploiting the closed-form gradients of the low-order shape functions
// instead of a generic quadrature loop.
package lor

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ResiduaLiu/mfem/fespace"
	"github.com/ResiduaLiu/mfem/mesh"
	"github.com/ResiduaLiu/mfem/utils"
)

// MaxOrder is the highest polynomial order the batched kernels cover.
const MaxOrder = 16

var (
	ErrNonTensorBasis   = errors.New("batched LOR assembly requires a tensor-product basis")
	ErrUnsupportedDim   = errors.New("batched LOR assembly supports only 2D and 3D meshes")
	ErrUnsupportedOrder = fmt.Errorf("batched LOR assembly supports orders 1 through %d", MaxOrder)
	ErrMissingEmbedding = errors.New("LOR mesh carries no refinement embeddings")
)

// AssemblyOptions controls quadrature choice and parallelism.
type AssemblyOptions struct {
	Quadrature Quadrature
	// Parallel is the worker count; values below 2 select the serial path.
	Parallel int
}

// AssembleBatchedLOR assembles the LOR approximation of the stiffness matrix
// of fes on the fine mesh mLOR, eliminates the essential dofs (keeping
// diagonal entries at their assembled values), and returns the finalized
// matrix. Ownership of the result transfers to the caller.
//
// Degenerate or inverted fine cells (non-positive Jacobian determinant) are a
// caller precondition; they propagate into the result unchecked.
func AssembleBatchedLOR(mLOR *mesh.Mesh, fes *fespace.FiniteElementSpace,
	essDofs utils.Index, opts AssemblyOptions) (A utils.CSR, err error) {
	var (
		order = fes.P
		dim   = fes.Dim
	)
	if !fes.UsesTensorBasis() {
		err = ErrNonTensorBasis
		return
	}
	if dim != 2 && dim != 3 {
		err = ErrUnsupportedDim
		return
	}
	if order < 1 || order > MaxOrder {
		err = ErrUnsupportedOrder
		return
	}
	if len(mLOR.Embeddings) != mLOR.NumElements {
		err = ErrMissingEmbedding
		return
	}

	var (
		nelHO = fes.Msh.NumElements
		r     = opts.Quadrature.rule()
		geom  *metricCache
		AMat  = utils.NewDOK(fes.NDofs, fes.NDofs)
	)
	if dim == 2 {
		geom = computeMetric2D(mLOR, nelHO, order, r)
	} else {
		geom = computeMetric3D(mLOR, nelHO, order, r)
	}

	if opts.Parallel > 1 {
		scatterParallel(fes, geom, order, dim, r, nelHO, opts.Parallel, AMat)
	} else {
		assembleRange(fes, geom, order, dim, r, 0, nelHO, AMat.Add)
	}

	AMat.EliminateRowsCols(essDofs)
	A = AMat.ToCSR()
	return
}

func assembleRange(fes *fespace.FiniteElementSpace, geom *metricCache,
	order, dim int, r rule1d, elBeg, elEnd int, add func(i, j int, val float64)) {
	if dim == 2 {
		assemble2D(fes, geom, order, r, elBeg, elEnd, add)
	} else {
		assemble3D(fes, geom, order, r, elBeg, elEnd, add)
	}
}

// triplet is one pending (row,col,value) contribution.
type triplet struct {
	i, j int
	val  float64
}

// scatterParallel computes per-element contributions across workers, each
// into a private triplet buffer, then merges the buffers in worker order on
// one goroutine. The merge order is fixed given the worker count, so repeated
// runs with the same options produce identical matrices; results across
// different worker counts agree only to rounding (float summation order).
func scatterParallel(fes *fespace.FiniteElementSpace, geom *metricCache,
	order, dim int, r rule1d, nelHO, np int, AMat utils.DOK) {
	var (
		pm   = utils.NewPartitionMap(np, nelHO)
		bufs = make([][]triplet, np)
		wg   sync.WaitGroup
	)
	for n := 0; n < np; n++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			elBeg, elEnd := pm.GetBucketRange(n)
			buf := make([]triplet, 0, estimateNNZ(order, dim, elEnd-elBeg))
			assembleRange(fes, geom, order, dim, r, elBeg, elEnd,
				func(i, j int, val float64) {
					buf = append(buf, triplet{i, j, val})
				})
			bufs[n] = buf
		}(n)
	}
	wg.Wait()
	for n := 0; n < np; n++ {
		for _, t := range bufs[n] {
			AMat.Add(t.i, t.j, t.val)
		}
	}
}

// estimateNNZ counts the contributions a worker will emit for nel elements,
// duplicates included: at most 9 per tensor-node pair in 2D, exactly 64 per
// sub-cell in 3D.
func estimateNNZ(order, dim, nel int) int {
	if dim == 3 {
		return nel * 64 * order * order * order
	}
	return nel * 9 * (order + 1) * (order + 1)
}
