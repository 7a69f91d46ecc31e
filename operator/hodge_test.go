package operator

import (
	"testing"

	"github.com/dec-go/dec/dual"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagonalHodgeBarycentricVertex(t *testing.T) {
	c := buildUnitRightTriangle(t)
	dc, err := dual.Build(c)
	require.NoError(t, err)
	require.NoError(t, dc.SubdivideDuals(dual.Barycenter))

	h, err := DiagonalHodge(c, dc, 0)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, 1.0/6.0, h.At(i, i), 1e-9)
	}
}

func TestDiagonalHodgeCircumcentricVertex(t *testing.T) {
	c := buildUnitRightTriangle(t)
	dc, err := dual.Build(c)
	require.NoError(t, err)
	require.NoError(t, dc.SubdivideDuals(dual.Circumcenter))

	h, err := DiagonalHodge(c, dc, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/4.0, h.At(0, 0), 1e-9)
	assert.InDelta(t, 1.0/8.0, h.At(1, 1), 1e-9)
}

func TestGeometricHodgeDiagonal(t *testing.T) {
	c := buildUnitRightTriangle(t)
	h, err := GeometricHodge(c, 1)
	require.NoError(t, err)

	// edge1 = (v0,v1) and edge3 = (v0,v2) are the unit legs; edge2 =
	// (v1,v2) is the hypotenuse of length sqrt(2).
	assert.InDelta(t, 1.0/3.0, h.At(0, 0), 1e-9)
	assert.InDelta(t, 1.0/6.0, h.At(1, 1), 1e-9)
	assert.InDelta(t, 1.0/3.0, h.At(2, 2), 1e-9)
}

func TestGeometricHodgeSymmetric(t *testing.T) {
	c := buildUnitRightTriangle(t)
	h, err := GeometricHodge(c, 1)
	require.NoError(t, err)
	r, cl := h.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < cl; j++ {
			assert.InDelta(t, h.At(i, j), h.At(j, i), 1e-9)
		}
	}
}

func TestDualVolumesBarycentricVertex(t *testing.T) {
	c := buildUnitRightTriangle(t)
	dc, err := dual.Build(c)
	require.NoError(t, err)
	require.NoError(t, dc.SubdivideDuals(dual.Barycenter))

	dv, err := DualVolumes(c, dc, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, dv.Dim()) // dual of a primal vertex in a 2D complex is a dual 2-cell
	assert.False(t, dv.Primal())
	for _, v := range dv.(DualForm2) {
		assert.InDelta(t, 1.0/6.0, v, 1e-9)
	}
}

func TestGeometricHodgeOrientationIndependent(t *testing.T) {
	c := buildUnitRightTriangle(t)
	h1, err := GeometricHodge(c, 1)
	require.NoError(t, err)

	sigma, err := c.EdgeOrientation(1)
	require.NoError(t, err)
	require.NoError(t, c.SetEdgeOrientation(1, sigma.Negate()))

	h2, err := GeometricHodge(c, 1)
	require.NoError(t, err)
	r, cl := h1.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < cl; j++ {
			assert.InDelta(t, h1.At(i, j), h2.At(i, j), 1e-9)
		}
	}
}
