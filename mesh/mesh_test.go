package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartesian2D(t *testing.T) {
	m := NewCartesian2D(3, 2, 1.5, 1.0)
	assert.Equal(t, 6, m.NumElements)
	assert.Equal(t, 12, m.NumVertices)
	// Counter-clockwise connectivity: positive signed area on every quad.
	for k := 0; k < m.NumElements; k++ {
		v := m.ElementVerts(k)
		area := 0.
		for i := 0; i < 4; i++ {
			j := (i + 1) % 4
			area += v[i][0]*v[j][1] - v[j][0]*v[i][1]
		}
		assert.Greater(t, area, 0.)
	}
}

func TestCartesian3D(t *testing.T) {
	m := NewCartesian3D(2, 2, 2, 1, 1, 1)
	assert.Equal(t, 8, m.NumElements)
	assert.Equal(t, 27, m.NumVertices)
	v := m.ElementVerts(0)
	require.Len(t, v, 8)
	// Bottom face below top face
	for i := 0; i < 4; i++ {
		assert.Equal(t, v[i][0], v[i+4][0])
		assert.Equal(t, v[i][1], v[i+4][1])
		assert.Less(t, v[i][2], v[i+4][2])
	}
}

func TestEmbeddingPartition(t *testing.T) {
	// Embeddings must partition the fine cells exhaustively and uniquely
	// over parent elements.
	for _, tc := range []struct {
		m    *Mesh
		p    int
		nsub int
	}{
		{NewCartesian2D(3, 2, 1, 1), 4, 16},
		{NewCartesian3D(2, 1, 2, 1, 1, 1), 3, 27},
	} {
		lor := LORRefinement(tc.m, tc.p)
		require.Equal(t, tc.m.NumElements*tc.nsub, lor.NumElements)
		seen := make(map[[2]int]bool)
		for _, emb := range lor.Embeddings {
			assert.GreaterOrEqual(t, emb.Parent, 0)
			assert.Less(t, emb.Parent, tc.m.NumElements)
			assert.GreaterOrEqual(t, emb.Matrix, 0)
			assert.Less(t, emb.Matrix, tc.nsub)
			key := [2]int{emb.Parent, emb.Matrix}
			assert.False(t, seen[key], "duplicate embedding %v", key)
			seen[key] = true
		}
		assert.Equal(t, lor.NumElements, len(seen))
	}
}

func TestRefinementGeometry(t *testing.T) {
	// Fine vertices must lie on the parent's sub-grid, including after a
	// linear shear of the coarse mesh.
	m := NewCartesian2D(2, 2, 1, 1)
	m.MapVertices(func(x []float64) []float64 {
		return []float64{x[0] + 0.25*x[1], x[1]}
	})
	p := 3
	lor := LORRefinement(m, p)
	for k := 0; k < lor.NumElements; k++ {
		emb := lor.Embeddings[k]
		pv := m.ElementVerts(emb.Parent)
		kx := emb.Matrix % p
		ky := emb.Matrix / p
		v0 := lor.ElementVerts(k)[0]
		want := bilinear(pv, float64(kx)/float64(p), float64(ky)/float64(p))
		assert.InDelta(t, want[0], v0[0], 1.e-14)
		assert.InDelta(t, want[1], v0[1], 1.e-14)
	}
}

func TestRefinementGeometry3D(t *testing.T) {
	m := NewCartesian3D(1, 1, 1, 2, 1, 1)
	p := 2
	lor := LORRefinement(m, p)
	for k := 0; k < lor.NumElements; k++ {
		emb := lor.Embeddings[k]
		pv := m.ElementVerts(emb.Parent)
		kx := emb.Matrix % p
		ky := (emb.Matrix / p) % p
		kz := emb.Matrix / (p * p)
		v0 := lor.ElementVerts(k)[0]
		want := trilinear(pv,
			float64(kx)/float64(p), float64(ky)/float64(p), float64(kz)/float64(p))
		for c := 0; c < 3; c++ {
			assert.InDelta(t, want[c], v0[c], 1.e-14)
		}
	}
}
