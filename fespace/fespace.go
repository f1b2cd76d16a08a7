package fespace

import (
	"fmt"

	"github.com/ResiduaLiu/mfem/mesh"
	"github.com/ResiduaLiu/mfem/utils"
)

// FiniteElementSpace is an H1 tensor-product nodal space of order P on a
// structured quad or hex mesh. Element dofs are returned in the native
// ordering (vertices, then edge, face and interior nodes); LexMap gives the
// fixed permutation from tensor-lattice indices into that ordering.
type FiniteElementSpace struct {
	Msh   *mesh.Mesh
	P     int
	Dim   int
	NDofs int

	gx, gy, gz   int         // global node lattice dimensions
	natToLattice utils.Index // native dof position -> element lattice index
	lexMap       utils.Index // element lattice index -> native dof position
	tensor       bool
}

// NewH1Space builds the space. Orders below 1 are rejected; the upper order
// limit is a property of the assembly kernels, not of the space.
func NewH1Space(msh *mesh.Mesh, p int) (fes *FiniteElementSpace, err error) {
	if p < 1 {
		err = fmt.Errorf("polynomial order must be at least 1, got %d", p)
		return
	}
	fes = &FiniteElementSpace{
		Msh: msh,
		P:   p,
		Dim: msh.Dim,
	}
	switch msh.ElementType {
	case mesh.Quad:
		fes.tensor = true
		fes.gx = msh.Nx*p + 1
		fes.gy = msh.Ny*p + 1
		fes.gz = 1
		fes.NDofs = fes.gx * fes.gy
		fes.natToLattice = nativeOrderQuad(p)
	case mesh.Hex:
		fes.tensor = true
		fes.gx = msh.Nx*p + 1
		fes.gy = msh.Ny*p + 1
		fes.gz = msh.Nz*p + 1
		fes.NDofs = fes.gx * fes.gy * fes.gz
		fes.natToLattice = nativeOrderHex(p)
	default:
		// Non tensor-product element types get a space shell with no dof
		// tables; assembly rejects it up front.
		return
	}
	fes.lexMap = utils.NewIndex(len(fes.natToLattice))
	for n, l := range fes.natToLattice {
		fes.lexMap[l] = n
	}
	return
}

// UsesTensorBasis reports whether the space has a tensor-product nodal basis.
func (fes *FiniteElementSpace) UsesTensorBasis() bool { return fes.tensor }

// LexMap returns the shared lexicographic permutation for the space's order:
// entry [ix + iy*(p+1) (+ iz*(p+1)^2)] is the position of that lattice node in
// the native dof list.
func (fes *FiniteElementSpace) LexMap() utils.Index { return fes.lexMap }

// ElementDofs returns element iel's global dofs in native order.
func (fes *FiniteElementSpace) ElementDofs(iel int) (dofs utils.Index) {
	var (
		p    = fes.P
		nd1d = p + 1
	)
	dofs = utils.NewIndex(len(fes.natToLattice))
	ex := iel % fes.Msh.Nx
	ey := (iel / fes.Msh.Nx) % fes.Msh.Ny
	ez := iel / (fes.Msh.Nx * fes.Msh.Ny)
	for n, l := range fes.natToLattice {
		ix := l % nd1d
		iy := (l / nd1d) % nd1d
		iz := l / (nd1d * nd1d)
		dofs[n] = (ex*p + ix) + (ey*p+iy)*fes.gx + (ez*p+iz)*fes.gx*fes.gy
	}
	return
}

// BoundaryDofs returns the global dofs on the outer boundary of the domain,
// the essential set for a Dirichlet problem on the whole boundary.
func (fes *FiniteElementSpace) BoundaryDofs() (bdofs utils.Index) {
	for k := 0; k < fes.gz; k++ {
		for j := 0; j < fes.gy; j++ {
			for i := 0; i < fes.gx; i++ {
				onBdy := i == 0 || i == fes.gx-1 || j == 0 || j == fes.gy-1
				if fes.Dim == 3 {
					onBdy = onBdy || k == 0 || k == fes.gz-1
				}
				if onBdy {
					bdofs = append(bdofs, i+j*fes.gx+k*fes.gx*fes.gy)
				}
			}
		}
	}
	return
}
