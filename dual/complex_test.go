package dual

import (
	"testing"

	"github.com/dec-go/dec/geometry"
	"github.com/dec-go/dec/primal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildUnitRightTriangle(t *testing.T) *primal.Complex {
	t.Helper()
	c := primal.NewEmbedded2D()
	vs, err := c.AddVertices(3)
	require.NoError(t, err)
	require.NoError(t, c.SetPoint(vs[0], geometry.Point{0, 0}))
	require.NoError(t, c.SetPoint(vs[1], geometry.Point{1, 0}))
	require.NoError(t, c.SetPoint(vs[2], geometry.Point{0, 1}))
	_, err = c.GlueTriangle(vs[0], vs[1], vs[2])
	require.NoError(t, err)
	return c
}

func TestBuildFreezesPrimal(t *testing.T) {
	p := buildUnitRightTriangle(t)
	_, err := Build(p)
	require.NoError(t, err)
	assert.True(t, p.Frozen())
}

func TestBarycentricDualVertexCellVolumeThird(t *testing.T) {
	p := buildUnitRightTriangle(t)
	dc, err := Build(p)
	require.NoError(t, err)
	require.NoError(t, dc.SubdivideDuals(Barycenter))

	for v := 1; v <= 3; v++ {
		vol, err := dc.CellVolume(0, v)
		require.NoError(t, err)
		assert.InDelta(t, 1.0/6.0, vol, 1e-9)
	}
}

func TestCircumcentricDualVertexCellVolumes(t *testing.T) {
	p := buildUnitRightTriangle(t)
	dc, err := Build(p)
	require.NoError(t, err)
	require.NoError(t, dc.SubdivideDuals(Circumcenter))

	vol0, err := dc.CellVolume(0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/4.0, vol0, 1e-9)

	vol1, err := dc.CellVolume(0, 2)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/8.0, vol1, 1e-9)
}

func TestTriangleDualCellVolumeIsOne(t *testing.T) {
	p := buildUnitRightTriangle(t)
	dc, err := Build(p)
	require.NoError(t, err)
	require.NoError(t, dc.SubdivideDuals(Barycenter))

	vol, err := dc.CellVolume(2, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, vol, 1e-9)
}

func TestElementaryDualsOfBoundaryEdgeHasOneCell(t *testing.T) {
	p := buildUnitRightTriangle(t)
	dc, err := Build(p)
	require.NoError(t, err)

	duals, err := dc.ElementaryDuals(1, 1)
	require.NoError(t, err)
	assert.Len(t, duals, 1) // boundary edge: only one adjacent triangle
}

func buildPathThreeVertices(t *testing.T) *primal.Complex {
	t.Helper()
	c := primal.NewEmbedded1D()
	vs, err := c.AddVertices(3)
	require.NoError(t, err)
	require.NoError(t, c.SetPoint(vs[0], geometry.Point{0}))
	require.NoError(t, c.SetPoint(vs[1], geometry.Point{1}))
	require.NoError(t, c.SetPoint(vs[2], geometry.Point{3}))
	_, err = c.AddEdge(vs[0], vs[1])
	require.NoError(t, err)
	_, err = c.AddEdge(vs[1], vs[2])
	require.NoError(t, err)
	return c
}

// TestPathGraphVertexDualCellVolumes reproduces the 3-vertex path with
// edge lengths 1 and 2: the boundary vertices' dual cells are half their
// one incident edge, the interior vertex's dual cell is the sum of both
// halves.
func TestPathGraphVertexDualCellVolumes(t *testing.T) {
	p := buildPathThreeVertices(t)
	dc, err := Build(p)
	require.NoError(t, err)
	require.NoError(t, dc.SubdivideDuals(Barycenter))

	vol1, err := dc.CellVolume(0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, vol1, 1e-9)

	vol2, err := dc.CellVolume(0, 2)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, vol2, 1e-9)

	vol3, err := dc.CellVolume(0, 3)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, vol3, 1e-9)
}

// TestElementaryDualsOfTopEdgeIsTrivialPoint checks that in a 1D
// complex an edge, being top-dimensional, has a single trivial
// zero-dimensional dual cell at its own center.
func TestElementaryDualsOfTopEdgeIsTrivialPoint(t *testing.T) {
	p := buildPathThreeVertices(t)
	dc, err := Build(p)
	require.NoError(t, err)

	duals, err := dc.ElementaryDuals(1, 1)
	require.NoError(t, err)
	require.Len(t, duals, 1)
	assert.Equal(t, 0, duals[0].Dim)
	assert.Equal(t, dc.EdgeCenter(1), duals[0].ID)
}
