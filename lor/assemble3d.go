package lor

import (
	"github.com/ResiduaLiu/mfem/fespace"
	"github.com/ResiduaLiu/mfem/utils"
)

// assemble3D adds the stiffness contributions of high-order elements
// [elBeg,elEnd) through add. Per sub-cell, an 8x8 local matrix over the
// sub-cell's corner nodes is built by contracting trilinear corner gradients
// with the 6-component metric tensor, then scattered into the 64 global
// (row,col) pairs.
func assemble3D(fes *fespace.FiniteElementSpace, geom *metricCache, order int,
	r rule1d, elBeg, elEnd int, add func(i, j int, val float64)) {
	var (
		nd1d     = order + 1
		lex      = fes.LexMap()
		localMat = utils.NewMatrix(8, 8)
		glob     [8]int
	)
	for iel := elBeg; iel < elEnd; iel++ {
		dofs := fes.ElementDofs(iel)
		for kz := 0; kz < order; kz++ {
			for ky := 0; ky < order; ky++ {
				for kx := 0; kx < order; kx++ {
					k := kx + ky*order + kz*order*order

					localMat.Zero()
					for lz := 0; lz < 2; lz++ {
						for ly := 0; ly < 2; ly++ {
							for lx := 0; lx < 2; lx++ {
								el := (lx + kx) + (ly+ky)*nd1d + (lz+kz)*nd1d*nd1d
								glob[lx+2*ly+4*lz] = dofs[lex[el]]
							}
						}
					}

					for iqz := 0; iqz < 2; iqz++ {
						for iqy := 0; iqy < 2; iqy++ {
							for iqx := 0; iqx < 2; iqx++ {
								iq := iqx + 2*iqy + 4*iqz

								// Metric terms, symmetric format
								M0 := geom.at(0, iq, k, iel)
								M1 := geom.at(1, iq, k, iel)
								M2 := geom.at(2, iq, k, iel)
								M3 := geom.at(3, iq, k, iel)
								M4 := geom.at(4, iq, k, iel)
								M5 := geom.at(5, iq, k, iel)

								for jz := 0; jz < 2; jz++ {
									gzj := cornerSlope(jz)
									bzj := r.nodalValue(jz, iqz)
									for jy := 0; jy < 2; jy++ {
										gyj := cornerSlope(jy)
										byj := r.nodalValue(jy, iqy)
										for jx := 0; jx < 2; jx++ {
											gxj := cornerSlope(jx)
											bxj := r.nodalValue(jx, iqx)

											gjX := gxj * byj * bzj
											gjY := bxj * gyj * bzj
											gjZ := bxj * byj * gzj

											jjLoc := jx + 2*jy + 4*jz

											for iz := 0; iz < 2; iz++ {
												gzi := cornerSlope(iz)
												bzi := r.nodalValue(iz, iqz)
												for iy := 0; iy < 2; iy++ {
													gyi := cornerSlope(iy)
													byi := r.nodalValue(iy, iqy)
													for ix := 0; ix < 2; ix++ {
														gxi := cornerSlope(ix)
														bxi := r.nodalValue(ix, iqx)

														giX := gxi * byi * bzi
														giY := bxi * gyi * bzi
														giZ := bxi * byi * gzi

														iiLoc := ix + 2*iy + 4*iz

														val := (giX*gjX)*M0 +
															(giY*gjX+giX*gjY)*M1 +
															(giZ*gjX+giX*gjZ)*M2 +
															(giY*gjY)*M3 +
															(giZ*gjY+giY*gjZ)*M4 +
															(giZ*gjZ)*M5

														localMat.AddAt(iiLoc, jjLoc, val)
													}
												}
											}
										}
									}
								}
							}
						}
					}

					// Scatter the local block, duplicates summing as in 2D.
					for jjLoc := 0; jjLoc < 8; jjLoc++ {
						for iiLoc := 0; iiLoc < 8; iiLoc++ {
							add(glob[iiLoc], glob[jjLoc], localMat.At(iiLoc, jjLoc))
						}
					}
				}
			}
		}
	}
}

// cornerSlope is the 1D linear nodal basis derivative within a cell: -1 for
// the cell's node 0, +1 for node 1.
func cornerSlope(node int) float64 {
	if node == 0 {
		return -1.0
	}
	return 1.0
}
