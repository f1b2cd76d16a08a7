package lor

import (
	"fmt"

	"github.com/ResiduaLiu/mfem/mesh"
)

// metricCache holds, for every (high-order element, sub-cell, quadrature
// point), the symmetric metric tensor w/detJ * adj(J) adj(J)^T of the fine
// cell's reference map: 3 components in 2D (xx,xy,yy), 6 in 3D
// (xx,xy,xz,yy,yz,zz). Computed once per assembly, read many times.
type metricCache struct {
	data            []float64
	ncomp, nq, nsub int
	nel             int
}

func newMetricCache(nel, nsub, nq, ncomp int) *metricCache {
	return &metricCache{
		data:  make([]float64, nel*nsub*nq*ncomp),
		ncomp: ncomp,
		nq:    nq,
		nsub:  nsub,
		nel:   nel,
	}
}

func (g *metricCache) index(comp, iq, k, iel int) int {
	if comp < 0 || comp >= g.ncomp || iq < 0 || iq >= g.nq ||
		k < 0 || k >= g.nsub || iel < 0 || iel >= g.nel {
		panic(fmt.Errorf("metric index (%d,%d,%d,%d) out of bounds (%d,%d,%d,%d)",
			comp, iq, k, iel, g.ncomp, g.nq, g.nsub, g.nel))
	}
	return comp + g.ncomp*(iq+g.nq*(k+g.nsub*iel))
}

func (g *metricCache) at(comp, iq, k, iel int) float64 {
	return g.data[g.index(comp, iq, k, iel)]
}

func (g *metricCache) set(comp, iq, k, iel int, val float64) {
	g.data[g.index(comp, iq, k, iel)] = val
}

// computeMetric2D fills the cache from the fine mesh's cell vertices. The
// Jacobian of the bilinear map is evaluated in closed form at each of the 4
// quadrature points. detJ > 0 (non-inverted cells) is a caller precondition
// and is not checked here.
func computeMetric2D(mLOR *mesh.Mesh, nelHO, order int, r rule1d) (geom *metricCache) {
	geom = newMetricCache(nelHO, order*order, 4, 3)
	for ielLOR := 0; ielLOR < mLOR.NumElements; ielLOR++ {
		emb := mLOR.Embeddings[ielLOR]
		v := mLOR.ElementVerts(ielLOR)
		vx0, vx1, vx2, vx3 := v[0][0], v[1][0], v[2][0], v[3][0]
		vy0, vy1, vy2, vy3 := v[0][1], v[1][1], v[2][1], v[3][1]
		for iqy := 0; iqy < 2; iqy++ {
			for iqx := 0; iqx < 2; iqx++ {
				var (
					x  = r.pts[iqx]
					y  = r.pts[iqy]
					wq = r.wts[iqx] * r.wts[iqy]
					iq = iqx + iqy*2
				)
				J11 := (-1+y)*vx0 + vx1 - y*(vx1-vx2+vx3)
				J12 := (-1+x)*vx0 + vx3 - x*(vx1-vx2+vx3)
				J21 := (-1+y)*vy0 + vy1 - y*(vy1-vy2+vy3)
				J22 := (-1+x)*vy0 + vy3 - x*(vy1-vy2+vy3)

				wDetJ := wq / (J11*J22 - J21*J12)

				geom.set(0, iq, emb.Matrix, emb.Parent, wDetJ*(J12*J12+J22*J22))  // 1,1
				geom.set(1, iq, emb.Matrix, emb.Parent, -wDetJ*(J12*J11+J22*J21)) // 1,2
				geom.set(2, iq, emb.Matrix, emb.Parent, wDetJ*(J11*J11+J21*J21))  // 2,2
			}
		}
	}
	return
}

// computeMetric3D is the trilinear analogue: the 3x3 Jacobian from the cell's
// 8 vertices, detJ by cofactor expansion, and the 6 independent entries of
// w/detJ * adj(J) adj(J)^T.
func computeMetric3D(mLOR *mesh.Mesh, nelHO, order int, r rule1d) (geom *metricCache) {
	geom = newMetricCache(nelHO, order*order*order, 8, 6)
	for ielLOR := 0; ielLOR < mLOR.NumElements; ielLOR++ {
		emb := mLOR.Embeddings[ielLOR]
		v := mLOR.ElementVerts(ielLOR)
		v0, v1, v2, v3 := v[0], v[1], v[2], v[3]
		v4, v5, v6, v7 := v[4], v[5], v[6], v[7]
		for iqz := 0; iqz < 2; iqz++ {
			for iqy := 0; iqy < 2; iqy++ {
				for iqx := 0; iqx < 2; iqx++ {
					var (
						x  = r.pts[iqx]
						y  = r.pts[iqy]
						z  = r.pts[iqz]
						wq = r.wts[iqx] * r.wts[iqy] * r.wts[iqz]
						iq = iqx + 2*iqy + 4*iqz
					)
					J11 := -(1-y)*(1-z)*v0[0] + (1-y)*(1-z)*v1[0] + y*(1-z)*v2[0] - y*(1-z)*v3[0] -
						(1-y)*z*v4[0] + (1-y)*z*v5[0] + y*z*v6[0] - y*z*v7[0]
					J12 := -(1-x)*(1-z)*v0[0] - x*(1-z)*v1[0] + x*(1-z)*v2[0] + (1-x)*(1-z)*v3[0] -
						(1-x)*z*v4[0] - x*z*v5[0] + x*z*v6[0] + (1-x)*z*v7[0]
					J13 := -(1-x)*(1-y)*v0[0] - x*(1-y)*v1[0] - x*y*v2[0] - (1-x)*y*v3[0] +
						(1-x)*(1-y)*v4[0] + x*(1-y)*v5[0] + x*y*v6[0] + (1-x)*y*v7[0]

					J21 := -(1-y)*(1-z)*v0[1] + (1-y)*(1-z)*v1[1] + y*(1-z)*v2[1] - y*(1-z)*v3[1] -
						(1-y)*z*v4[1] + (1-y)*z*v5[1] + y*z*v6[1] - y*z*v7[1]
					J22 := -(1-x)*(1-z)*v0[1] - x*(1-z)*v1[1] + x*(1-z)*v2[1] + (1-x)*(1-z)*v3[1] -
						(1-x)*z*v4[1] - x*z*v5[1] + x*z*v6[1] + (1-x)*z*v7[1]
					J23 := -(1-x)*(1-y)*v0[1] - x*(1-y)*v1[1] - x*y*v2[1] - (1-x)*y*v3[1] +
						(1-x)*(1-y)*v4[1] + x*(1-y)*v5[1] + x*y*v6[1] + (1-x)*y*v7[1]

					J31 := -(1-y)*(1-z)*v0[2] + (1-y)*(1-z)*v1[2] + y*(1-z)*v2[2] - y*(1-z)*v3[2] -
						(1-y)*z*v4[2] + (1-y)*z*v5[2] + y*z*v6[2] - y*z*v7[2]
					J32 := -(1-x)*(1-z)*v0[2] - x*(1-z)*v1[2] + x*(1-z)*v2[2] + (1-x)*(1-z)*v3[2] -
						(1-x)*z*v4[2] - x*z*v5[2] + x*z*v6[2] + (1-x)*z*v7[2]
					J33 := -(1-x)*(1-y)*v0[2] - x*(1-y)*v1[2] - x*y*v2[2] - (1-x)*y*v3[2] +
						(1-x)*(1-y)*v4[2] + x*(1-y)*v5[2] + x*y*v6[2] + (1-x)*y*v7[2]

					detJ := J11*(J22*J33-J32*J23) -
						J21*(J12*J33-J32*J13) +
						J31*(J12*J23-J22*J13)
					wDetJ := wq / detJ

					// adj(J)
					A11 := (J22 * J33) - (J23 * J32)
					A12 := (J32 * J13) - (J12 * J33)
					A13 := (J12 * J23) - (J22 * J13)
					A21 := (J31 * J23) - (J21 * J33)
					A22 := (J11 * J33) - (J13 * J31)
					A23 := (J21 * J13) - (J11 * J23)
					A31 := (J21 * J32) - (J31 * J22)
					A32 := (J31 * J12) - (J11 * J32)
					A33 := (J11 * J22) - (J12 * J21)

					geom.set(0, iq, emb.Matrix, emb.Parent, wDetJ*(A11*A11+A12*A12+A13*A13)) // 1,1
					geom.set(1, iq, emb.Matrix, emb.Parent, wDetJ*(A11*A21+A12*A22+A13*A23)) // 2,1
					geom.set(2, iq, emb.Matrix, emb.Parent, wDetJ*(A11*A31+A12*A32+A13*A33)) // 3,1
					geom.set(3, iq, emb.Matrix, emb.Parent, wDetJ*(A21*A21+A22*A22+A23*A23)) // 2,2
					geom.set(4, iq, emb.Matrix, emb.Parent, wDetJ*(A21*A31+A22*A32+A23*A33)) // 3,2
					geom.set(5, iq, emb.Matrix, emb.Parent, wDetJ*(A31*A31+A32*A32+A33*A33)) // 3,3
				}
			}
		}
	}
	return
}
