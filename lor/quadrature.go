package lor

import "math"

// Quadrature selects the 2-point-per-axis rule used on every fine cell. The
// rule is independent of the high-order space's order because fine cells are
// always bilinear/trilinear.
type Quadrature int

const (
	// GaussLobatto is the collocated corner rule. Assembly with it yields
	// the classic finite-difference-like LOR stencil.
	GaussLobatto Quadrature = iota
	// GaussLegendre places the two points at the interior Gauss abscissae,
	// integrating bilinear/trilinear stiffness entries exactly.
	GaussLegendre
)

func (q Quadrature) String() string {
	return [...]string{"GaussLobatto", "GaussLegendre"}[q]
}

// rule1d is the per-axis rule on the unit interval. vals holds the 1D hat
// function evaluated at the two points of the cell left of its node followed
// by the two points of the cell right of it; the hat's slope is +1 on the
// left cell and -1 on the right, so derivative values need only a sign flip.
type rule1d struct {
	pts  [2]float64
	wts  [2]float64
	vals [4]float64
}

func (q Quadrature) rule() (r rule1d) {
	switch q {
	case GaussLegendre:
		g := (3. - math.Sqrt(3.)) / 6.
		r = rule1d{
			pts:  [2]float64{g, 1. - g},
			wts:  [2]float64{0.5, 0.5},
			vals: [4]float64{g, 1. - g, 1. - g, g},
		}
	default: // GaussLobatto
		r = rule1d{
			pts:  [2]float64{0., 1.},
			wts:  [2]float64{0.5, 0.5},
			vals: [4]float64{0., 1., 1., 0.},
		}
	}
	return
}

// nodalValue is the 1D linear nodal basis (node 0 or 1 of a cell) at point iq.
func (r rule1d) nodalValue(node, iq int) float64 {
	if node == 0 {
		return 1. - r.pts[iq]
	}
	return r.pts[iq]
}
