package lor

import (
	"github.com/ResiduaLiu/mfem/fespace"
)

// assemble2D adds the stiffness contributions of high-order elements
// [elBeg,elEnd) through add. For each pair of tensor nodes within the 9-point
// stencil, the bilinear hat gradients on every overlapping sub-cell are
// contracted with the cached metric tensor. Swapping i and j swaps (a,b) with
// (c,d), so each contribution is symmetric by construction.
func assemble2D(fes *fespace.FiniteElementSpace, geom *metricCache, order int,
	r rule1d, elBeg, elEnd int, add func(i, j int, val float64)) {
	var (
		nd1d = order + 1
		lex  = fes.LexMap()
	)
	for iel := elBeg; iel < elEnd; iel++ {
		dofs := fes.ElementDofs(iel)
		for iy := 0; iy < nd1d; iy++ {
			for ix := 0; ix < nd1d; ix++ {
				ii := dofs[lex[ix+iy*nd1d]]
				for xshift := -1; xshift <= 1; xshift++ {
					jx := ix + xshift
					if jx < 0 || jx >= nd1d {
						continue
					}
					kxBegin := maxInt(maxInt(ix-1, 0), jx-1)
					kxEnd := minInt(minInt(ix, order-1), jx) + 1
					for yshift := -1; yshift <= 1; yshift++ {
						jy := iy + yshift
						if jy < 0 || jy >= nd1d {
							continue
						}
						kyBegin := maxInt(maxInt(iy-1, 0), jy-1)
						kyEnd := minInt(minInt(iy, order-1), jy) + 1

						jj := dofs[lex[jx+jy*nd1d]]

						val := 0.0
						for ky := kyBegin; ky < kyEnd; ky++ {
							for kx := kxBegin; kx < kxEnd; kx++ {
								k := kx + ky*order
								for iqy := 0; iqy < 2; iqy++ {
									for iqx := 0; iqx < 2; iqx++ {
										offsetXI := (kx-ix+1)*2 + iqx
										offsetYI := (ky-iy+1)*2 + iqy

										offsetXJ := (kx-jx+1)*2 + iqx
										offsetYJ := (ky-jy+1)*2 + iqy

										iq := iqx + iqy*2

										a := r.vals[offsetYI] * hatSlope(offsetXI)
										b := r.vals[offsetXI] * hatSlope(offsetYI)

										c := r.vals[offsetYJ] * hatSlope(offsetXJ)
										d := r.vals[offsetXJ] * hatSlope(offsetYJ)

										val += a * c * geom.at(0, iq, k, iel)
										val += (b*c + a*d) * geom.at(1, iq, k, iel)
										val += b * d * geom.at(2, iq, k, iel)
									}
								}
							}
						}
						add(ii, jj, val)
					}
				}
			}
		}
	}
}

// hatSlope is the 1D hat derivative: +1 on the cell left of the node, -1 on
// the cell right of it. Offsets 0,1 index the left cell's points, 2,3 the
// right cell's.
func hatSlope(offset int) float64 {
	if offset < 2 {
		return 1.0
	}
	return -1.0
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
