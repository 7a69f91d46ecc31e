// Package primal implements the simplicial data model: a
// typed incidence structure in which k-simplices are identified by small
// integer keys and face relations satisfy the simplicial identities, with
// optional per-simplex orientation and per-vertex embedding.
package primal

import (
	"fmt"
	"sort"

	"github.com/dec-go/dec/decerr"
	"github.com/dec-go/dec/geometry"
	"github.com/dec-go/dec/relstore"
)

const (
	obVertex   = "V"
	obEdge     = "E"
	obTriangle = "Tri"

	attrEdgeTgt  = "dv0" // ∂(1,0) = tgt
	attrEdgeSrc  = "dv1" // ∂(1,1) = src
	attrEdgeSign = "edge_orientation"

	attrTriE0   = "de0"
	attrTriE1   = "de1"
	attrTriE2   = "de2"
	attrTriSign = "tri_orientation"

	attrPoint = "point"
)

// Complex is a PrimalComplex of dimension 1 or 2: an ordered delta
// (semi-simplicial) set with face maps, no degeneracies, optional
// per-edge/per-triangle orientation, and an optional embedding.
type Complex struct {
	Dim      int
	Embedded bool
	store    *relstore.Store
	frozen   bool
}

// New1D returns an empty DeltaSet1D: vertices and edges, no embedding.
func New1D() *Complex {
	return newComplex(1, false)
}

// New2D returns an empty DeltaSet2D: vertices, edges, and triangles, no
// embedding.
func New2D() *Complex {
	return newComplex(2, false)
}

// NewOriented1D and NewOriented2D are aliases for New1D/New2D: every
// Complex carries per-edge (and, in 2D, per-triangle) orientation storage
// unconditionally, since the cost of the attribute is the same whether or
// not the caller ever calls SetEdgeOrientation. An "oriented" delta set
// is therefore not a distinct Go type, only a naming convention for
// callers who want to make "I intend to set orientations" explicit at the
// construction site.
func NewOriented1D() *Complex { return New1D() }
func NewOriented2D() *Complex { return New2D() }

// NewEmbedded1D and NewEmbedded2D return complexes with vertex coordinates:
// SetPoint/Point become usable and geometric queries (volumes, duals) are
// permitted.
func NewEmbedded1D() *Complex {
	return newComplex(1, true)
}

func NewEmbedded2D() *Complex {
	return newComplex(2, true)
}

func newComplex(dim int, embedded bool) *Complex {
	schema := relstore.NewSchema()
	schema.DeclareOb(obVertex)
	schema.DeclareOb(obEdge)
	schema.DeclareHom(attrEdgeTgt, obEdge, obVertex, true)
	schema.DeclareHom(attrEdgeSrc, obEdge, obVertex, true)
	schema.DeclareAttr(attrEdgeSign, obEdge, false)
	if embedded {
		schema.DeclareAttr(attrPoint, obVertex, false)
	}
	if dim == 2 {
		schema.DeclareOb(obTriangle)
		schema.DeclareHom(attrTriE0, obTriangle, obEdge, true)
		schema.DeclareHom(attrTriE1, obTriangle, obEdge, true)
		schema.DeclareHom(attrTriE2, obTriangle, obEdge, true)
		schema.DeclareAttr(attrTriSign, obTriangle, false)
	}
	return &Complex{Dim: dim, Embedded: embedded, store: relstore.NewStore(schema)}
}

// Store exposes the underlying relstore.Store for read-only queries by the
// dual and operator packages.
func (c *Complex) Store() *relstore.Store {
	return c.store
}

// Frozen reports whether the complex has left its build phase.
func (c *Complex) Frozen() bool {
	return c.frozen
}

// Freeze flips the complex into its read-only phase. Called automatically
// by dual.Build; safe to call more than once.
func (c *Complex) Freeze() {
	c.frozen = true
}

func (c *Complex) checkMutable(op string) error {
	if c.frozen {
		return fmt.Errorf("primal: %s: %w", op, decerr.ErrFrozen)
	}
	return nil
}

// NumVertices, NumEdges, NumTriangles return the current part counts.
func (c *Complex) NumVertices() int  { return c.store.Count(obVertex) }
func (c *Complex) NumEdges() int     { return c.store.Count(obEdge) }
func (c *Complex) NumTriangles() int { return c.store.Count(obTriangle) }

// AddVertex appends one vertex and returns its id.
func (c *Complex) AddVertex() (int, error) {
	if err := c.checkMutable("AddVertex"); err != nil {
		return 0, err
	}
	return c.store.AddPart(obVertex), nil
}

// AddVertices appends n vertices and returns their ids in order.
func (c *Complex) AddVertices(n int) ([]int, error) {
	if err := c.checkMutable("AddVertices"); err != nil {
		return nil, err
	}
	ids := make([]int, n)
	for i := 0; i < n; i++ {
		ids[i] = c.store.AddPart(obVertex)
	}
	return ids, nil
}

// AddEdge appends an edge from src to tgt with the given orientation
// (Positive if omitted) and returns its id.
func (c *Complex) AddEdge(src, tgt int, orientation ...Sign) (int, error) {
	if err := c.checkMutable("AddEdge"); err != nil {
		return 0, err
	}
	id := c.store.AddPart(obEdge)
	if err := c.store.SetSubpart(id, attrEdgeTgt, tgt); err != nil {
		return 0, err
	}
	if err := c.store.SetSubpart(id, attrEdgeSrc, src); err != nil {
		return 0, err
	}
	sign := Positive
	if len(orientation) > 0 {
		sign = orientation[0]
	}
	if err := c.store.SetSubpart(id, attrEdgeSign, bool(sign)); err != nil {
		return 0, err
	}
	return id, nil
}

// AddSortedEdge adds an edge from min(a,b) to max(a,b).
func (c *Complex) AddSortedEdge(a, b int, orientation ...Sign) (int, error) {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	return c.AddEdge(lo, hi, orientation...)
}

// AddTriangle appends a triangle with faces ∂e2=eFirst, ∂e0=eLast,
// ∂e1=tgtEdge. It does not verify the simplicial identities; callers that
// need that guarantee should use GlueTriangle or call CheckIdentities
// explicitly afterward.
func (c *Complex) AddTriangle(eFirst, eLast, tgtEdge int, orientation ...Sign) (int, error) {
	if err := c.checkMutable("AddTriangle"); err != nil {
		return 0, err
	}
	id := c.store.AddPart(obTriangle)
	if err := c.store.SetSubpart(id, attrTriE2, eFirst); err != nil {
		return 0, err
	}
	if err := c.store.SetSubpart(id, attrTriE0, eLast); err != nil {
		return 0, err
	}
	if err := c.store.SetSubpart(id, attrTriE1, tgtEdge); err != nil {
		return 0, err
	}
	sign := Positive
	if len(orientation) > 0 {
		sign = orientation[0]
	}
	if err := c.store.SetSubpart(id, attrTriSign, bool(sign)); err != nil {
		return 0, err
	}
	return id, nil
}

// edgeBetween returns the id of an edge with the given exact (src, tgt), or
// 0 if none exists.
func (c *Complex) edgeBetween(src, tgt int) (int, error) {
	srcIncident, err := c.store.Incident(src, attrEdgeSrc)
	if err != nil {
		return 0, err
	}
	for _, e := range srcIncident {
		t, err := c.store.SubpartInt(e, attrEdgeTgt)
		if err != nil {
			return 0, err
		}
		if t == tgt {
			return e, nil
		}
	}
	return 0, nil
}

// reuseOrCreateEdge implements the glue_triangle edge-reuse rule: reuse an
// existing edge running exactly a->b; error if the only edge connecting a
// and b runs b->a instead; otherwise create a fresh sorted edge.
func (c *Complex) reuseOrCreateEdge(a, b int) (int, error) {
	if e, err := c.edgeBetween(a, b); err != nil {
		return 0, err
	} else if e != 0 {
		return e, nil
	}
	if e, err := c.edgeBetween(b, a); err != nil {
		return 0, err
	} else if e != 0 {
		return 0, fmt.Errorf("primal: GlueTriangle: existing edge %d runs %d->%d, requested %d->%d: %w",
			e, b, a, a, b, decerr.ErrInvalidTopology)
	}
	return c.AddSortedEdge(a, b)
}

// GlueTriangle glues a triangle onto vertices v0, v1, v2, reusing the edge
// between any pair of them if one already runs in the matching direction,
// creating a fresh sorted edge otherwise. The simplicial identities hold
// whenever v0 < v1 < v2; with non-ascending vertices a freshly created
// edge still runs from the smaller to the larger id, which can break
// them. GlueSortedTriangle sorts the vertices first and so always
// satisfies them.
func (c *Complex) GlueTriangle(v0, v1, v2 int, orientation ...Sign) (int, error) {
	if err := c.checkMutable("GlueTriangle"); err != nil {
		return 0, err
	}
	e01, err := c.reuseOrCreateEdge(v0, v1)
	if err != nil {
		return 0, err
	}
	e12, err := c.reuseOrCreateEdge(v1, v2)
	if err != nil {
		return 0, err
	}
	e02, err := c.reuseOrCreateEdge(v0, v2)
	if err != nil {
		return 0, err
	}
	return c.AddTriangle(e01, e12, e02, orientation...)
}

// GlueSortedTriangle sorts v0, v1, v2 ascending before gluing, guaranteeing
// the simplicial identities unconditionally.
func (c *Complex) GlueSortedTriangle(v0, v1, v2 int, orientation ...Sign) (int, error) {
	vs := []int{v0, v1, v2}
	sort.Ints(vs)
	return c.GlueTriangle(vs[0], vs[1], vs[2], orientation...)
}

// Edges returns the ids of all edges running exactly from a to b.
func (c *Complex) Edges(a, b int) ([]int, error) {
	srcIncident, err := c.store.Incident(a, attrEdgeSrc)
	if err != nil {
		return nil, err
	}
	var out []int
	for _, e := range srcIncident {
		t, err := c.store.SubpartInt(e, attrEdgeTgt)
		if err != nil {
			return nil, err
		}
		if t == b {
			out = append(out, e)
		}
	}
	return out, nil
}

// EdgeVertices returns (src, tgt) for edge e.
func (c *Complex) EdgeVertices(e int) (src, tgt int, err error) {
	src, err = c.store.SubpartInt(e, attrEdgeSrc)
	if err != nil {
		return 0, 0, err
	}
	tgt, err = c.store.SubpartInt(e, attrEdgeTgt)
	if err != nil {
		return 0, 0, err
	}
	return src, tgt, nil
}

// EdgeOrientation returns the stored sign of edge e (Positive by default).
func (c *Complex) EdgeOrientation(e int) (Sign, error) {
	b, err := c.store.SubpartBool(e, attrEdgeSign)
	return Sign(b), err
}

// SetEdgeOrientation overwrites the sign of edge e.
func (c *Complex) SetEdgeOrientation(e int, s Sign) error {
	if err := c.checkMutable("SetEdgeOrientation"); err != nil {
		return err
	}
	return c.store.SetSubpart(e, attrEdgeSign, bool(s))
}

// TriangleEdges returns (e0, e1, e2) for triangle t.
func (c *Complex) TriangleEdges(t int) (e0, e1, e2 int, err error) {
	e0, err = c.store.SubpartInt(t, attrTriE0)
	if err != nil {
		return 0, 0, 0, err
	}
	e1, err = c.store.SubpartInt(t, attrTriE1)
	if err != nil {
		return 0, 0, 0, err
	}
	e2, err = c.store.SubpartInt(t, attrTriE2)
	if err != nil {
		return 0, 0, 0, err
	}
	return e0, e1, e2, nil
}

// TriangleVertices returns (v0, v1, v2) for triangle t, read via
// src(e1)=v0, tgt(e2)=v1, tgt(e1)=v2.
func (c *Complex) TriangleVertices(t int) (v0, v1, v2 int, err error) {
	_, e1, e2, err := c.TriangleEdges(t)
	if err != nil {
		return 0, 0, 0, err
	}
	v0, err = c.store.SubpartInt(e1, attrEdgeSrc)
	if err != nil {
		return 0, 0, 0, err
	}
	v1, err = c.store.SubpartInt(e2, attrEdgeTgt)
	if err != nil {
		return 0, 0, 0, err
	}
	v2, err = c.store.SubpartInt(e1, attrEdgeTgt)
	if err != nil {
		return 0, 0, 0, err
	}
	return v0, v1, v2, nil
}

// TriangleOrientation returns the stored sign of triangle t (Positive by
// default).
func (c *Complex) TriangleOrientation(t int) (Sign, error) {
	b, err := c.store.SubpartBool(t, attrTriSign)
	return Sign(b), err
}

// SetTriangleOrientation overwrites the sign of triangle t.
func (c *Complex) SetTriangleOrientation(t int, s Sign) error {
	if err := c.checkMutable("SetTriangleOrientation"); err != nil {
		return err
	}
	return c.store.SetSubpart(t, attrTriSign, bool(s))
}

// CheckIdentities verifies the simplicial identities for
// every triangle: src(e1)=src(e2), tgt(e2)=src(e0), tgt(e0)=tgt(e1). It is
// the explicit, caller-invoked analogue of a debug-build assertion;
// AddTriangle itself never checks these.
func (c *Complex) CheckIdentities() error {
	for t := 1; t <= c.NumTriangles(); t++ {
		e0, e1, e2, err := c.TriangleEdges(t)
		if err != nil {
			return err
		}
		srcE0, tgtE0, err := c.EdgeVertices(e0)
		if err != nil {
			return err
		}
		srcE1, tgtE1, err := c.EdgeVertices(e1)
		if err != nil {
			return err
		}
		srcE2, tgtE2, err := c.EdgeVertices(e2)
		if err != nil {
			return err
		}
		if srcE1 != srcE2 {
			return fmt.Errorf("primal: CheckIdentities: triangle %d: src(e1)=%d != src(e2)=%d: %w", t, srcE1, srcE2, decerr.ErrInvalidTopology)
		}
		if tgtE2 != srcE0 {
			return fmt.Errorf("primal: CheckIdentities: triangle %d: tgt(e2)=%d != src(e0)=%d: %w", t, tgtE2, srcE0, decerr.ErrInvalidTopology)
		}
		if tgtE0 != tgtE1 {
			return fmt.Errorf("primal: CheckIdentities: triangle %d: tgt(e0)=%d != tgt(e1)=%d: %w", t, tgtE0, tgtE1, decerr.ErrInvalidTopology)
		}
	}
	return nil
}

// SetPoint assigns the embedding coordinate of vertex v. Returns
// ErrNotEmbedded if the complex was not constructed with NewEmbedded*.
func (c *Complex) SetPoint(v int, p geometry.Point) error {
	if !c.Embedded {
		return fmt.Errorf("primal: SetPoint: %w", decerr.ErrNotEmbedded)
	}
	if err := c.checkMutable("SetPoint"); err != nil {
		return err
	}
	return c.store.SetSubpart(v, attrPoint, p)
}

// Point returns the embedding coordinate of vertex v.
func (c *Complex) Point(v int) (geometry.Point, error) {
	if !c.Embedded {
		return nil, fmt.Errorf("primal: Point: %w", decerr.ErrNotEmbedded)
	}
	val, err := c.store.Subpart(v, attrPoint)
	if err != nil {
		return nil, err
	}
	if val == nil {
		return nil, fmt.Errorf("primal: Point: vertex %d has no coordinate set", v)
	}
	return val.(geometry.Point), nil
}

// VertexPoints returns the embedding coordinates of every vertex, in id
// order. All vertices must have a coordinate set.
func (c *Complex) VertexPoints() ([]geometry.Point, error) {
	n := c.NumVertices()
	out := make([]geometry.Point, n)
	for i := 1; i <= n; i++ {
		p, err := c.Point(i)
		if err != nil {
			return nil, err
		}
		out[i-1] = p
	}
	return out, nil
}

// CofacesOfVertex returns the ids of every edge incident to vertex v as
// either endpoint.
func (c *Complex) CofacesOfVertex(v int) ([]int, error) {
	asSrc, err := c.store.Incident(v, attrEdgeSrc)
	if err != nil {
		return nil, err
	}
	asTgt, err := c.store.Incident(v, attrEdgeTgt)
	if err != nil {
		return nil, err
	}
	return append(append([]int{}, asSrc...), asTgt...), nil
}

// CofacesOfEdge returns the ids of every triangle having e as one of its
// three edges.
func (c *Complex) CofacesOfEdge(e int) ([]int, error) {
	var out []int
	for _, attr := range []string{attrTriE0, attrTriE1, attrTriE2} {
		ts, err := c.store.Incident(e, attr)
		if err != nil {
			return nil, err
		}
		out = append(out, ts...)
	}
	return out, nil
}
