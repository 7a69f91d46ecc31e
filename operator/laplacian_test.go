package operator

import (
	"math"
	"testing"

	"github.com/dec-go/dec/dual"
	"github.com/dec-go/dec/geometry"
	"github.com/dec-go/dec/primal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildEmbeddedPathGraph(t *testing.T, xs []float64) (*primal.Complex, *dual.Complex) {
	t.Helper()
	c := primal.NewEmbedded1D()
	vs, err := c.AddVertices(len(xs))
	require.NoError(t, err)
	for i, x := range xs {
		require.NoError(t, c.SetPoint(vs[i], geometry.Point{x}))
	}
	for i := 0; i < len(xs)-1; i++ {
		_, err := c.AddEdge(vs[i], vs[i+1])
		require.NoError(t, err)
	}
	dc, err := dual.Build(c)
	require.NoError(t, err)
	require.NoError(t, dc.SubdivideDuals(dual.Barycenter))
	return c, dc
}

// TestLaplaceBeltramiPathGraphSpike checks the five-vertex unit-spacing
// path graph's Laplace-Beltrami operator against a spike at the middle
// vertex: the standard [-1,2,-1] second-difference stencil.
func TestLaplaceBeltramiPathGraphSpike(t *testing.T) {
	pc, dc := buildEmbeddedPathGraph(t, []float64{0, 1, 2, 3, 4})
	nabla2, err := LaplaceBeltrami(pc, dc, Diagonal)
	require.NoError(t, err)

	spike := []float64{0, 0, 1, 0, 0}
	got := make([]float64, 5)
	for i := 0; i < 5; i++ {
		sum := 0.0
		for j := 0; j < 5; j++ {
			sum += nabla2.At(i, j) * spike[j]
		}
		got[i] = sum
	}
	assert.InDeltaSlice(t, []float64{0, -1, 2, -1, 0}, got, 1e-9)
}

func buildEmbeddedTriangle(t *testing.T, pts [3]geometry.Point) (*primal.Complex, *dual.Complex) {
	t.Helper()
	c := primal.NewEmbedded2D()
	vs, err := c.AddVertices(3)
	require.NoError(t, err)
	for i, p := range pts {
		require.NoError(t, c.SetPoint(vs[i], p))
	}
	_, err = c.GlueTriangle(vs[0], vs[1], vs[2])
	require.NoError(t, err)
	dc, err := dual.Build(c)
	require.NoError(t, err)
	require.NoError(t, dc.SubdivideDuals(dual.Barycenter))
	return c, dc
}

// TestLaplacianUnitRightTriangle checks Delta(0) and Delta(2) on the
// unit right triangle (0,0),(1,0),(0,1) under the geometric Hodge star.
func TestLaplacianUnitRightTriangle(t *testing.T) {
	pc, dc := buildEmbeddedTriangle(t, [3]geometry.Point{{0, 0}, {1, 0}, {0, 1}})

	delta0, err := Laplacian(pc, dc, 0, Geometric)
	require.NoError(t, err)
	want0 := [][]float64{
		{-6, 3, 3},
		{3, -3, 0},
		{3, 0, -3},
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, want0[i][j], delta0.At(i, j), 1e-9)
		}
	}

	delta2, err := Laplacian(pc, dc, 2, Geometric)
	require.NoError(t, err)
	assert.InDelta(t, -36, delta2.At(0, 0), 1e-9)
}

// TestLaplacianEquilateralTriangleHodgeConsistency checks that Delta(1)
// on an equilateral triangle comes out identical whether assembled with
// the diagonal or the geometric Hodge star: the triangle's three-fold
// symmetry forces both choices of inner product onto the same
// edge-space Laplacian.
func TestLaplacianEquilateralTriangleHodgeConsistency(t *testing.T) {
	h := math.Sqrt(3) / 2
	pc, dc := buildEmbeddedTriangle(t, [3]geometry.Point{{0, 0}, {1, 0}, {0.5, h}})

	want := [][]float64{
		{-12, -6, 6},
		{-6, -12, 6},
		{6, 6, -12},
	}

	for _, kind := range []HodgeKind{Diagonal, Geometric} {
		delta1, err := Laplacian(pc, dc, 1, kind)
		require.NoError(t, err)
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				assert.InDelta(t, want[i][j], delta1.At(i, j), 1e-9)
			}
		}
	}
}
