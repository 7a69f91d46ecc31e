// Package dual builds and holds the Poincaré dual subdivision of a
// primal.Complex: one dual vertex per primal simplex of every dimension,
// the dual edges and dual triangles of the subdivision, and (once
// subdivide_duals has run) a dual_point for every dual vertex.
package dual

import (
	"fmt"

	"github.com/dec-go/dec/decerr"
	"github.com/dec-go/dec/geometry"
	"github.com/dec-go/dec/primal"
	"github.com/dec-go/dec/relstore"
)

const (
	obDualV   = "DualV"
	obDualE   = "DualE"
	obDualTri = "DualTri"

	attrDv0       = "Dv0" // one endpoint
	attrDv1       = "Dv1" // other endpoint
	attrDSign     = "D_edge_orientation"
	attrBackDim   = "backDim"
	attrBackID    = "backID"
	attrPoint     = "point"
	attrTriSign   = "D_tri_orientation"
	attrTriBackID = "triBack" // always a vertex id, a DualTri's elementary-dual anchor

	attrTriCornerTri  = "triCornerTri"  // DualV id: the triangle center corner
	attrTriCornerEdge = "triCornerEdge" // DualV id: the edge center corner
	attrTriCornerVert = "triCornerVert" // DualV id: the vertex center corner
)

// SubdivisionRule selects how dual vertex coordinates are placed by
// SubdivideDuals.
type SubdivisionRule int

const (
	Barycenter SubdivisionRule = iota
	Circumcenter
	Incenter
)

// Complex is a DualComplex of dimension 1 or 2, built by Build from a
// frozen primal.Complex.
type Complex struct {
	Primal *primal.Complex
	Dim    int
	nv, ne, ntri int
	store  *relstore.Store
}

// VertexCenter, EdgeCenter, TriCenter return the DualV id of the dual
// vertex placed at the center of primal vertex v, edge e, or triangle t:
// vertex_center(v)=v, edge_center(e)=N_V+e, triangle_center(t)=N_V+N_E+t.
func (c *Complex) VertexCenter(v int) int   { return v }
func (c *Complex) EdgeCenter(e int) int     { return c.nv + e }
func (c *Complex) TriCenter(t int) int      { return c.nv + c.ne + t }

// NumDualVertices, NumDualEdges, NumDualTriangles return the dual part
// counts.
func (c *Complex) NumDualVertices() int  { return c.store.Count(obDualV) }
func (c *Complex) NumDualEdges() int     { return c.store.Count(obDualE) }
func (c *Complex) NumDualTriangles() int { return c.store.Count(obDualTri) }

// Store exposes the underlying relstore.Store for the operator package.
func (c *Complex) Store() *relstore.Store { return c.store }

// DualSimplex identifies one elementary dual cell: its dimension within
// the dual complex (0 for DualV, 1 for DualE, 2 for DualTri) and its id.
type DualSimplex struct {
	Dim int
	ID  int
}

// Build constructs the dual subdivision of primal, freezing primal as a
// side effect: a dual complex is only ever built over a primal complex
// whose topology can no longer change.
func Build(p *primal.Complex) (*Complex, error) {
	nv, ne, ntri := p.NumVertices(), p.NumEdges(), p.NumTriangles()

	schema := relstore.NewSchema()
	schema.DeclareOb(obDualV)
	schema.DeclareOb(obDualE)
	schema.DeclareHom(attrDv0, obDualE, obDualV, true)
	schema.DeclareHom(attrDv1, obDualE, obDualV, true)
	schema.DeclareAttr(attrDSign, obDualE, false)
	schema.DeclareAttr(attrBackDim, obDualE, false)
	schema.DeclareAttr(attrBackID, obDualE, true)
	schema.DeclareAttr(attrPoint, obDualV, false)
	if p.Dim == 2 {
		schema.DeclareOb(obDualTri)
		schema.DeclareAttr(attrTriSign, obDualTri, false)
		schema.DeclareAttr(attrTriBackID, obDualTri, true)
		schema.DeclareAttr(attrTriCornerTri, obDualTri, false)
		schema.DeclareAttr(attrTriCornerEdge, obDualTri, false)
		schema.DeclareAttr(attrTriCornerVert, obDualTri, false)
	}

	dc := &Complex{Primal: p, Dim: p.Dim, nv: nv, ne: ne, ntri: ntri, store: relstore.NewStore(schema)}

	for i := 0; i < nv+ne+ntri; i++ {
		dc.store.AddPart(obDualV)
	}

	if err := dc.buildEdgeSplits(); err != nil {
		return nil, err
	}
	if p.Dim == 2 {
		if err := dc.buildTriangleCorners(); err != nil {
			return nil, err
		}
	}

	p.Freeze()
	return dc, nil
}

// addDualEdge appends one DualE with the given endpoints, orientation, and
// elementary-dual back-pointer.
func (c *Complex) addDualEdge(a, b int, sign primal.Sign, backDim, backID int) (int, error) {
	id := c.store.AddPart(obDualE)
	if err := c.store.SetSubpart(id, attrDv0, a); err != nil {
		return 0, err
	}
	if err := c.store.SetSubpart(id, attrDv1, b); err != nil {
		return 0, err
	}
	if err := c.store.SetSubpart(id, attrDSign, bool(sign)); err != nil {
		return 0, err
	}
	if err := c.store.SetSubpart(id, attrBackDim, backDim); err != nil {
		return 0, err
	}
	if err := c.store.SetSubpart(id, attrBackID, backID); err != nil {
		return 0, err
	}
	return id, nil
}

// buildEdgeSplits: every primal edge
// splits into two dual edges edge_center->src (oriented +sigma, backpointer
// the src vertex) and edge_center->tgt (oriented -sigma, backpointer the
// tgt vertex).
func (c *Complex) buildEdgeSplits() error {
	for e := 1; e <= c.ne; e++ {
		src, tgt, err := c.Primal.EdgeVertices(e)
		if err != nil {
			return err
		}
		sigma, err := c.Primal.EdgeOrientation(e)
		if err != nil {
			return err
		}
		center := c.EdgeCenter(e)
		if _, err := c.addDualEdge(center, c.VertexCenter(src), sigma, 0, src); err != nil {
			return err
		}
		if _, err := c.addDualEdge(center, c.VertexCenter(tgt), sigma.Negate(), 0, tgt); err != nil {
			return err
		}
	}
	return nil
}

// buildTriangleCorners: for every primal
// triangle, per corner c (opposite edge ec at vertex vc), emit
// tri_center->edge_center(ec_next) (backpointer the edge, feeding
// elementary_duals(1,...); each of the triangle's edges is ec_next of
// exactly one corner, so it gets exactly one such segment), one local
// edge_center(ec_next)->vc dual edge (backpointer the vertex), and two
// DualTri covering (vc, ec_prev) and (vc, ec_next) (backpointer the
// vertex, feeding elementary_duals(0,...)).
func (c *Complex) buildTriangleCorners() error {
	for t := 1; t <= c.ntri; t++ {
		e0, e1, e2, err := c.Primal.TriangleEdges(t)
		if err != nil {
			return err
		}
		v0, v1, v2, err := c.Primal.TriangleVertices(t)
		if err != nil {
			return err
		}
		tau, err := c.Primal.TriangleOrientation(t)
		if err != nil {
			return err
		}
		edges := [3]int{e0, e1, e2}
		verts := [3]int{v0, v1, v2}
		triCenter := c.TriCenter(t)

		for corner := 0; corner < 3; corner++ {
			prev := (corner + 2) % 3
			next := (corner + 1) % 3
			ecPrev := edges[prev]
			ecNext := edges[next]
			vc := verts[corner]

			if _, err := c.addDualEdge(triCenter, c.EdgeCenter(ecNext), tau, 1, ecNext); err != nil {
				return err
			}
			if _, err := c.addDualEdge(c.EdgeCenter(ecNext), c.VertexCenter(vc), tau, 0, vc); err != nil {
				return err
			}
			if err := c.addDualTriangle(vc, triCenter, c.EdgeCenter(ecPrev)); err != nil {
				return err
			}
			if err := c.addDualTriangle(vc, triCenter, c.EdgeCenter(ecNext)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Complex) addDualTriangle(backVertex, triCorner, edgeCorner int) error {
	id := c.store.AddPart(obDualTri)
	if err := c.store.SetSubpart(id, attrTriSign, true); err != nil {
		return err
	}
	if err := c.store.SetSubpart(id, attrTriBackID, backVertex); err != nil {
		return err
	}
	if err := c.store.SetSubpart(id, attrTriCornerTri, triCorner); err != nil {
		return err
	}
	if err := c.store.SetSubpart(id, attrTriCornerEdge, edgeCorner); err != nil {
		return err
	}
	return c.store.SetSubpart(id, attrTriCornerVert, c.VertexCenter(backVertex))
}

// ElementaryDuals returns the dual (D-k)-cells of primal k-simplex x. A
// top-dimensional simplex (k equal to the complex's own dimension) has a
// trivial, single-point dual cell: DualV{edgeCenter} in a 1D complex,
// DualV{triCenter} in a 2D complex. Below the top dimension: a 2D
// complex's vertices (k=0) dualize to the DualTri's backpointing to
// them, and its edges (k=1) dualize to the DualE's backpointing to them
// with backDim=1 (the tri_center->edge_center segments from
// buildTriangleCorners); a 1D complex's vertices (k=0) dualize to the
// DualE's backpointing to them with backDim=0 (the edge_center->vertex
// segments from buildEdgeSplits).
func (c *Complex) ElementaryDuals(k, x int) ([]DualSimplex, error) {
	if k == c.Dim {
		switch c.Dim {
		case 1:
			return []DualSimplex{{Dim: 0, ID: c.EdgeCenter(x)}}, nil
		case 2:
			return []DualSimplex{{Dim: 0, ID: c.TriCenter(x)}}, nil
		}
	}
	switch k {
	case 1:
		if c.Dim != 2 {
			return nil, fmt.Errorf("dual: ElementaryDuals: k=1 below top dimension requires a 2D complex: %w", decerr.ErrDimensionMismatch)
		}
		return c.backpointedDualEdges(x, 1)
	case 0:
		if c.Dim == 2 {
			ids, err := c.store.Incident(x, attrTriBackID)
			if err != nil {
				return nil, err
			}
			out := make([]DualSimplex, len(ids))
			for i, id := range ids {
				out[i] = DualSimplex{Dim: 2, ID: id}
			}
			return out, nil
		}
		return c.backpointedDualEdges(x, 0)
	default:
		return nil, fmt.Errorf("dual: ElementaryDuals: unsupported k=%d: %w", k, decerr.ErrDimensionMismatch)
	}
}

// backpointedDualEdges returns every DualE backpointing to primal part x
// at the given backDim, as Dim-1 DualSimplex values.
func (c *Complex) backpointedDualEdges(x, backDim int) ([]DualSimplex, error) {
	ids, err := c.store.Incident(x, attrBackID)
	if err != nil {
		return nil, err
	}
	var out []DualSimplex
	for _, id := range ids {
		dim, err := c.store.SubpartInt(id, attrBackDim)
		if err != nil {
			return nil, err
		}
		if dim == backDim {
			out = append(out, DualSimplex{Dim: 1, ID: id})
		}
	}
	return out, nil
}

// SetDualPoint and DualPoint access the placed coordinate of a dual
// vertex.
func (c *Complex) SetDualPoint(dv int, p geometry.Point) error {
	return c.store.SetSubpart(dv, attrPoint, p)
}

func (c *Complex) DualPoint(dv int) (geometry.Point, error) {
	v, err := c.store.Subpart(dv, attrPoint)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, fmt.Errorf("dual: DualPoint: dual vertex %d has no coordinate set", dv)
	}
	return v.(geometry.Point), nil
}

// DualEdgeEndpoints returns (Dv0, Dv1) for dual edge e.
func (c *Complex) DualEdgeEndpoints(e int) (a, b int, err error) {
	a, err = c.store.SubpartInt(e, attrDv0)
	if err != nil {
		return 0, 0, err
	}
	b, err = c.store.SubpartInt(e, attrDv1)
	return a, b, err
}
