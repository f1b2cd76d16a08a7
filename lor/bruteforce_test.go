package lor

import (
	"github.com/ResiduaLiu/mfem/fespace"
	"github.com/ResiduaLiu/mfem/mesh"
	"github.com/ResiduaLiu/mfem/utils"
)

// bruteForceAssemble builds the same bilinear form with a generic per-cell
// quadrature loop: reference gradients, assembled Jacobian, physical
// gradients via the inverse transpose. It shares no code with the batched
// kernels beyond the 1D point table.
func bruteForceAssemble(mLOR *mesh.Mesh, fes *fespace.FiniteElementSpace,
	q Quadrature) (A utils.DOK) {
	if fes.Dim == 2 {
		return bruteForce2D(mLOR, fes, q.rule())
	}
	return bruteForce3D(mLOR, fes, q.rule())
}

func bruteForce2D(mLOR *mesh.Mesh, fes *fespace.FiniteElementSpace, r rule1d) (A utils.DOK) {
	var (
		p    = fes.P
		nd1d = p + 1
		lex  = fes.LexMap()
	)
	A = utils.NewDOK(fes.NDofs, fes.NDofs)
	lin := func(n int, t float64) float64 { // 1D nodal basis
		if n == 0 {
			return 1 - t
		}
		return t
	}
	dlin := func(n int) float64 {
		if n == 0 {
			return -1
		}
		return 1
	}
	for ielLOR := 0; ielLOR < mLOR.NumElements; ielLOR++ {
		var (
			emb  = mLOR.Embeddings[ielLOR]
			v    = mLOR.ElementVerts(ielLOR)
			dofs = fes.ElementDofs(emb.Parent)
			kx   = emb.Matrix % p
			ky   = emb.Matrix / p
			glob [4]int
		)
		corners := [4][2]int{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
		for n, c := range corners {
			glob[n] = dofs[lex[(kx+c[0])+(ky+c[1])*nd1d]]
		}
		for iqy := 0; iqy < 2; iqy++ {
			for iqx := 0; iqx < 2; iqx++ {
				var (
					x  = r.pts[iqx]
					y  = r.pts[iqy]
					wq = r.wts[iqx] * r.wts[iqy]
				)
				// Reference gradients and Jacobian from shape derivatives
				var gref [4][2]float64
				var J [2][2]float64
				for n, c := range corners {
					gref[n][0] = dlin(c[0]) * lin(c[1], y)
					gref[n][1] = lin(c[0], x) * dlin(c[1])
					for d := 0; d < 2; d++ {
						J[d][0] += v[n][d] * gref[n][0]
						J[d][1] += v[n][d] * gref[n][1]
					}
				}
				detJ := J[0][0]*J[1][1] - J[0][1]*J[1][0]
				// Physical gradients: g = J^{-T} gref
				var gphys [4][2]float64
				for n := 0; n < 4; n++ {
					gphys[n][0] = (J[1][1]*gref[n][0] - J[1][0]*gref[n][1]) / detJ
					gphys[n][1] = (-J[0][1]*gref[n][0] + J[0][0]*gref[n][1]) / detJ
				}
				for i := 0; i < 4; i++ {
					for j := 0; j < 4; j++ {
						val := wq * detJ * (gphys[i][0]*gphys[j][0] + gphys[i][1]*gphys[j][1])
						A.Add(glob[i], glob[j], val)
					}
				}
			}
		}
	}
	return
}

func bruteForce3D(mLOR *mesh.Mesh, fes *fespace.FiniteElementSpace, r rule1d) (A utils.DOK) {
	var (
		p    = fes.P
		nd1d = p + 1
		lex  = fes.LexMap()
	)
	A = utils.NewDOK(fes.NDofs, fes.NDofs)
	lin := func(n int, t float64) float64 {
		if n == 0 {
			return 1 - t
		}
		return t
	}
	dlin := func(n int) float64 {
		if n == 0 {
			return -1
		}
		return 1
	}
	corners := [8][3]int{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
	}
	for ielLOR := 0; ielLOR < mLOR.NumElements; ielLOR++ {
		var (
			emb  = mLOR.Embeddings[ielLOR]
			v    = mLOR.ElementVerts(ielLOR)
			dofs = fes.ElementDofs(emb.Parent)
			kx   = emb.Matrix % p
			ky   = (emb.Matrix / p) % p
			kz   = emb.Matrix / (p * p)
			glob [8]int
		)
		for n, c := range corners {
			glob[n] = dofs[lex[(kx+c[0])+(ky+c[1])*nd1d+(kz+c[2])*nd1d*nd1d]]
		}
		for iqz := 0; iqz < 2; iqz++ {
			for iqy := 0; iqy < 2; iqy++ {
				for iqx := 0; iqx < 2; iqx++ {
					var (
						x  = r.pts[iqx]
						y  = r.pts[iqy]
						z  = r.pts[iqz]
						wq = r.wts[iqx] * r.wts[iqy] * r.wts[iqz]
					)
					var gref [8][3]float64
					var J [3][3]float64
					for n, c := range corners {
						gref[n][0] = dlin(c[0]) * lin(c[1], y) * lin(c[2], z)
						gref[n][1] = lin(c[0], x) * dlin(c[1]) * lin(c[2], z)
						gref[n][2] = lin(c[0], x) * lin(c[1], y) * dlin(c[2])
						for d := 0; d < 3; d++ {
							J[d][0] += v[n][d] * gref[n][0]
							J[d][1] += v[n][d] * gref[n][1]
							J[d][2] += v[n][d] * gref[n][2]
						}
					}
					detJ := J[0][0]*(J[1][1]*J[2][2]-J[2][1]*J[1][2]) -
						J[1][0]*(J[0][1]*J[2][2]-J[2][1]*J[0][2]) +
						J[2][0]*(J[0][1]*J[1][2]-J[1][1]*J[0][2])
					// inv(J) columns via the adjugate
					var inv [3][3]float64
					inv[0][0] = (J[1][1]*J[2][2] - J[1][2]*J[2][1]) / detJ
					inv[0][1] = (J[2][1]*J[0][2] - J[0][1]*J[2][2]) / detJ
					inv[0][2] = (J[0][1]*J[1][2] - J[1][1]*J[0][2]) / detJ
					inv[1][0] = (J[2][0]*J[1][2] - J[1][0]*J[2][2]) / detJ
					inv[1][1] = (J[0][0]*J[2][2] - J[0][2]*J[2][0]) / detJ
					inv[1][2] = (J[1][0]*J[0][2] - J[0][0]*J[1][2]) / detJ
					inv[2][0] = (J[1][0]*J[2][1] - J[2][0]*J[1][1]) / detJ
					inv[2][1] = (J[2][0]*J[0][1] - J[0][0]*J[2][1]) / detJ
					inv[2][2] = (J[0][0]*J[1][1] - J[0][1]*J[1][0]) / detJ
					// g = J^{-T} gref
					var gphys [8][3]float64
					for n := 0; n < 8; n++ {
						for d := 0; d < 3; d++ {
							gphys[n][d] = inv[0][d]*gref[n][0] +
								inv[1][d]*gref[n][1] + inv[2][d]*gref[n][2]
						}
					}
					for i := 0; i < 8; i++ {
						for j := 0; j < 8; j++ {
							val := wq * detJ * (gphys[i][0]*gphys[j][0] +
								gphys[i][1]*gphys[j][1] + gphys[i][2]*gphys[j][2])
							A.Add(glob[i], glob[j], val)
						}
					}
				}
			}
		}
	}
	return
}
