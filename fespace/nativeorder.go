package fespace

import "github.com/ResiduaLiu/mfem/utils"

// Native dof ordering: vertex dofs first, then edge interiors, then face
// interiors, then cell interiors. The tables below map each native position
// to its flat lattice index ix + iy*(p+1) (+ iz*(p+1)^2).

var quadCorners = [4][2]int{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

var quadEdges = [4][2]int{{0, 1}, {1, 2}, {3, 2}, {0, 3}}

func nativeOrderQuad(p int) (nat utils.Index) {
	var (
		nd1d = p + 1
	)
	nat = make(utils.Index, 0, nd1d*nd1d)
	flat := func(ix, iy int) int { return ix + iy*nd1d }
	for _, c := range quadCorners {
		nat = append(nat, flat(c[0]*p, c[1]*p))
	}
	for _, e := range quadEdges {
		a, b := quadCorners[e[0]], quadCorners[e[1]]
		dx, dy := b[0]-a[0], b[1]-a[1]
		for t := 1; t < p; t++ {
			nat = append(nat, flat(a[0]*p+t*dx, a[1]*p+t*dy))
		}
	}
	for j := 1; j < p; j++ {
		for i := 1; i < p; i++ {
			nat = append(nat, flat(i, j))
		}
	}
	return
}

var hexCorners = [8][3]int{
	{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
	{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
}

var hexEdges = [12][2]int{
	{0, 1}, {1, 2}, {3, 2}, {0, 3},
	{4, 5}, {5, 6}, {7, 6}, {4, 7},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// Faces as (origin, first axis end, second axis end) corner triples.
var hexFaces = [6][3]int{
	{0, 1, 3}, // bottom
	{0, 1, 4}, // front
	{1, 2, 5}, // right
	{3, 2, 7}, // back
	{0, 3, 4}, // left
	{4, 5, 7}, // top
}

func nativeOrderHex(p int) (nat utils.Index) {
	var (
		nd1d = p + 1
	)
	nat = make(utils.Index, 0, nd1d*nd1d*nd1d)
	flat := func(ix, iy, iz int) int { return ix + iy*nd1d + iz*nd1d*nd1d }
	for _, c := range hexCorners {
		nat = append(nat, flat(c[0]*p, c[1]*p, c[2]*p))
	}
	for _, e := range hexEdges {
		a, b := hexCorners[e[0]], hexCorners[e[1]]
		var d [3]int
		for c := 0; c < 3; c++ {
			d[c] = b[c] - a[c]
		}
		for t := 1; t < p; t++ {
			nat = append(nat, flat(a[0]*p+t*d[0], a[1]*p+t*d[1], a[2]*p+t*d[2]))
		}
	}
	for _, f := range hexFaces {
		o, ea, eb := hexCorners[f[0]], hexCorners[f[1]], hexCorners[f[2]]
		var da, db [3]int
		for c := 0; c < 3; c++ {
			da[c] = ea[c] - o[c]
			db[c] = eb[c] - o[c]
		}
		for t := 1; t < p; t++ {
			for s := 1; s < p; s++ {
				nat = append(nat, flat(
					o[0]*p+s*da[0]+t*db[0],
					o[1]*p+s*da[1]+t*db[1],
					o[2]*p+s*da[2]+t*db[2]))
			}
		}
	}
	for k := 1; k < p; k++ {
		for j := 1; j < p; j++ {
			for i := 1; i < p; i++ {
				nat = append(nat, flat(i, j, k))
			}
		}
	}
	return
}
