package mesh

import "fmt"

// ElementType represents different element types
type ElementType int

const (
	Line ElementType = iota
	Triangle
	Quad
	Tet
	Hex
)

func (e ElementType) String() string {
	return [...]string{"Line", "Triangle", "Quad", "Tet", "Hex"}[e]
}

// Embedding records, for one fine cell, the parent high-order element it
// refines and its sub-cell position within the parent's reference grid.
type Embedding struct {
	Parent int
	Matrix int // lexicographic sub-cell index kx + ky*p (+ kz*p*p)
}

// Mesh holds geometry and connectivity for either a high-order mesh or the
// low-order refined mesh derived from it. Fine meshes carry one Embedding per
// element; high-order meshes have Embeddings == nil.
type Mesh struct {
	Dim         int
	Vertices    [][]float64 // Vertex coordinates [nvertices][Dim]
	Elements    [][]int     // Element to vertex connectivity [nelems][nverts_per_elem]
	ElementType ElementType
	Embeddings  []Embedding

	NumElements int
	NumVertices int

	// Cartesian element grid dimensions, set by the structured builders.
	// Unused axes are 1.
	Nx, Ny, Nz int
}

// NewCartesian2D builds an nx x ny quadrilateral mesh covering [0,sx]x[0,sy].
// Quad vertices are ordered counter-clockwise from the lower-left corner.
func NewCartesian2D(nx, ny int, sx, sy float64) (m *Mesh) {
	var (
		nvx = nx + 1
		nvy = ny + 1
	)
	m = &Mesh{
		Dim:         2,
		ElementType: Quad,
		NumElements: nx * ny,
		NumVertices: nvx * nvy,
		Nx:          nx,
		Ny:          ny,
		Nz:          1,
	}
	m.Vertices = make([][]float64, m.NumVertices)
	for j := 0; j < nvy; j++ {
		for i := 0; i < nvx; i++ {
			m.Vertices[i+j*nvx] = []float64{
				sx * float64(i) / float64(nx),
				sy * float64(j) / float64(ny),
			}
		}
	}
	m.Elements = make([][]int, m.NumElements)
	for ey := 0; ey < ny; ey++ {
		for ex := 0; ex < nx; ex++ {
			v0 := ex + ey*nvx
			m.Elements[ex+ey*nx] = []int{v0, v0 + 1, v0 + 1 + nvx, v0 + nvx}
		}
	}
	return
}

// NewCartesian3D builds an nx x ny x nz hexahedral mesh covering
// [0,sx]x[0,sy]x[0,sz]. Hex vertices are ordered bottom face counter-clockwise
// then top face, matching the trilinear reference map.
func NewCartesian3D(nx, ny, nz int, sx, sy, sz float64) (m *Mesh) {
	var (
		nvx = nx + 1
		nvy = ny + 1
		nvz = nz + 1
	)
	m = &Mesh{
		Dim:         3,
		ElementType: Hex,
		NumElements: nx * ny * nz,
		NumVertices: nvx * nvy * nvz,
		Nx:          nx,
		Ny:          ny,
		Nz:          nz,
	}
	m.Vertices = make([][]float64, m.NumVertices)
	for k := 0; k < nvz; k++ {
		for j := 0; j < nvy; j++ {
			for i := 0; i < nvx; i++ {
				m.Vertices[i+j*nvx+k*nvx*nvy] = []float64{
					sx * float64(i) / float64(nx),
					sy * float64(j) / float64(ny),
					sz * float64(k) / float64(nz),
				}
			}
		}
	}
	m.Elements = make([][]int, m.NumElements)
	for ez := 0; ez < nz; ez++ {
		for ey := 0; ey < ny; ey++ {
			for ex := 0; ex < nx; ex++ {
				v0 := ex + ey*nvx + ez*nvx*nvy
				up := nvx * nvy
				m.Elements[ex+ey*nx+ez*nx*ny] = []int{
					v0, v0 + 1, v0 + 1 + nvx, v0 + nvx,
					v0 + up, v0 + 1 + up, v0 + 1 + nvx + up, v0 + nvx + up,
				}
			}
		}
	}
	return
}

// MapVertices applies f to every vertex coordinate in place. Linear maps
// commute with the refinement interpolation, so a mesh may be sheared or
// stretched before or after LORRefinement with the same result.
func (m *Mesh) MapVertices(f func(x []float64) []float64) {
	for i, v := range m.Vertices {
		m.Vertices[i] = f(v)
	}
}

// ElementVerts returns the coordinate slices of element k's vertices.
func (m *Mesh) ElementVerts(k int) (v [][]float64) {
	conn := m.Elements[k]
	v = make([][]float64, len(conn))
	for i, vi := range conn {
		v[i] = m.Vertices[vi]
	}
	return
}

func (m *Mesh) String() string {
	return fmt.Sprintf("%s mesh: %d elements, %d vertices, dim %d",
		m.ElementType, m.NumElements, m.NumVertices, m.Dim)
}
