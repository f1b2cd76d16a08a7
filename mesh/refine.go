package mesh

import "fmt"

// LORRefinement subdivides every element of a quad or hex mesh into a p x p
// (x p) grid of low-order cells, evaluating the parent's bilinear/trilinear
// map at the lattice points. The returned mesh carries one Embedding per fine
// cell; embeddings partition the fine cells exhaustively and uniquely over
// parent elements.
func LORRefinement(ho *Mesh, p int) (lor *Mesh) {
	switch ho.ElementType {
	case Quad:
		return refineQuads(ho, p)
	case Hex:
		return refineHexes(ho, p)
	default:
		panic(fmt.Errorf("LOR refinement not defined for %s elements", ho.ElementType))
	}
}

func refineQuads(ho *Mesh, p int) (lor *Mesh) {
	var (
		nd1d       = p + 1
		vertsPerEl = nd1d * nd1d
	)
	lor = &Mesh{
		Dim:         2,
		ElementType: Quad,
		NumElements: ho.NumElements * p * p,
		NumVertices: ho.NumElements * vertsPerEl,
	}
	lor.Vertices = make([][]float64, 0, lor.NumVertices)
	lor.Elements = make([][]int, 0, lor.NumElements)
	lor.Embeddings = make([]Embedding, 0, lor.NumElements)
	for iel := 0; iel < ho.NumElements; iel++ {
		v := ho.ElementVerts(iel)
		base := iel * vertsPerEl
		for iy := 0; iy < nd1d; iy++ {
			for ix := 0; ix < nd1d; ix++ {
				x := float64(ix) / float64(p)
				y := float64(iy) / float64(p)
				lor.Vertices = append(lor.Vertices, bilinear(v, x, y))
			}
		}
		for ky := 0; ky < p; ky++ {
			for kx := 0; kx < p; kx++ {
				v0 := base + kx + ky*nd1d
				lor.Elements = append(lor.Elements,
					[]int{v0, v0 + 1, v0 + 1 + nd1d, v0 + nd1d})
				lor.Embeddings = append(lor.Embeddings,
					Embedding{Parent: iel, Matrix: kx + ky*p})
			}
		}
	}
	return
}

func refineHexes(ho *Mesh, p int) (lor *Mesh) {
	var (
		nd1d       = p + 1
		vertsPerEl = nd1d * nd1d * nd1d
	)
	lor = &Mesh{
		Dim:         3,
		ElementType: Hex,
		NumElements: ho.NumElements * p * p * p,
		NumVertices: ho.NumElements * vertsPerEl,
	}
	lor.Vertices = make([][]float64, 0, lor.NumVertices)
	lor.Elements = make([][]int, 0, lor.NumElements)
	lor.Embeddings = make([]Embedding, 0, lor.NumElements)
	for iel := 0; iel < ho.NumElements; iel++ {
		v := ho.ElementVerts(iel)
		base := iel * vertsPerEl
		for iz := 0; iz < nd1d; iz++ {
			for iy := 0; iy < nd1d; iy++ {
				for ix := 0; ix < nd1d; ix++ {
					x := float64(ix) / float64(p)
					y := float64(iy) / float64(p)
					z := float64(iz) / float64(p)
					lor.Vertices = append(lor.Vertices, trilinear(v, x, y, z))
				}
			}
		}
		for kz := 0; kz < p; kz++ {
			for ky := 0; ky < p; ky++ {
				for kx := 0; kx < p; kx++ {
					v0 := base + kx + ky*nd1d + kz*nd1d*nd1d
					up := nd1d * nd1d
					lor.Elements = append(lor.Elements, []int{
						v0, v0 + 1, v0 + 1 + nd1d, v0 + nd1d,
						v0 + up, v0 + 1 + up, v0 + 1 + nd1d + up, v0 + nd1d + up,
					})
					lor.Embeddings = append(lor.Embeddings,
						Embedding{Parent: iel, Matrix: kx + ky*p + kz*p*p})
				}
			}
		}
	}
	return
}

func bilinear(v [][]float64, x, y float64) (p []float64) {
	p = make([]float64, 2)
	for c := 0; c < 2; c++ {
		p[c] = (1-x)*(1-y)*v[0][c] + x*(1-y)*v[1][c] +
			x*y*v[2][c] + (1-x)*y*v[3][c]
	}
	return
}

func trilinear(v [][]float64, x, y, z float64) (p []float64) {
	p = make([]float64, 3)
	for c := 0; c < 3; c++ {
		p[c] = (1-x)*(1-y)*(1-z)*v[0][c] + x*(1-y)*(1-z)*v[1][c] +
			x*y*(1-z)*v[2][c] + (1-x)*y*(1-z)*v[3][c] +
			(1-x)*(1-y)*z*v[4][c] + x*(1-y)*z*v[5][c] +
			x*y*z*v[6][c] + (1-x)*y*z*v[7][c]
	}
	return
}
