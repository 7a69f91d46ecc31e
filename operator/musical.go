package operator

import (
	"fmt"

	"github.com/dec-go/dec/decerr"
	"github.com/dec-go/dec/dual"
	"github.com/dec-go/dec/geometry"
	"github.com/dec-go/dec/primal"
	"gonum.org/v1/gonum/mat"
)

// Flat assembles the flat isomorphism: a dual 0-form (a vector sampled
// at every triangle center) becomes a primal 1-form. For edge e,
// Flat(X)[e] is the average, over e's (at most two) adjacent triangles,
// of the projection of that triangle's vector onto e's full oriented
// edge vector (src to tgt, not normalized, so Flat(X)[e] is the
// circulation of X along e rather than a per-unit-length rate),
// weighted by the length of the dual-edge segment running from that
// triangle's center to e's center.
func Flat(pc *primal.Complex, dc *dual.Complex, field []geometry.Point) (Form1, error) {
	ne := pc.NumEdges()
	out := make([]float64, ne)
	for e := 1; e <= ne; e++ {
		src, tgt, err := pc.EdgeVertices(e)
		if err != nil {
			return nil, err
		}
		ps, err := pc.Point(src)
		if err != nil {
			return nil, err
		}
		pt, err := pc.Point(tgt)
		if err != nil {
			return nil, err
		}
		tangent, err := subVec(pt, ps)
		if err != nil {
			return nil, err
		}

		duals, err := dc.ElementaryDuals(1, e)
		if err != nil {
			return nil, err
		}
		var weightedSum, weightTotal float64
		for _, d := range duals {
			a, b, err := dc.DualEdgeEndpoints(d.ID)
			if err != nil {
				return nil, err
			}
			pa, err := dc.DualPoint(a)
			if err != nil {
				return nil, err
			}
			pb, err := dc.DualPoint(b)
			if err != nil {
				return nil, err
			}
			w, err := geometry.Volume([]geometry.Point{pa, pb})
			if err != nil {
				return nil, err
			}

			triID := triangleOfDualEdge(dc, d.ID, e)
			if triID == 0 {
				continue
			}
			proj := dotVec(field[triID-1], tangent)
			weightedSum += w * proj
			weightTotal += w
		}
		if weightTotal == 0 {
			return nil, fmt.Errorf("operator: Flat: edge %d has no incident triangles: %w", e, decerr.ErrDegenerateGeometry)
		}
		out[e-1] = weightedSum / weightTotal
	}
	return Form1(out), nil
}

// triangleOfDualEdge re-derives, from a dual edge's endpoints, which
// triangle owns the tri_center->edge_center(e) segment described by d,
// by checking which dual vertex its non-edge-center endpoint is the
// center of.
func triangleOfDualEdge(dc *dual.Complex, dualEdgeID, edgeID int) int {
	a, b, err := dc.DualEdgeEndpoints(dualEdgeID)
	if err != nil {
		return 0
	}
	ec := dc.EdgeCenter(edgeID)
	other := a
	if a == ec {
		other = b
	}
	for t := 1; t <= dc.NumDualTriangles(); t++ {
		if dc.TriCenter(t) == other {
			return t
		}
	}
	return 0
}

// Sharp assembles the sharp isomorphism: a primal 1-form becomes a
// vector field sampled at every vertex. For vertex v, it solves the
// weighted least-squares problem of finding the vector X whose
// circulation X.e_vec matches the form's value on every incident edge
// e, weighted by e's elementary-dual volume.
func Sharp(pc *primal.Complex, dc *dual.Complex, form Form1) ([]geometry.Point, error) {
	nv := pc.NumVertices()
	out := make([]geometry.Point, nv)
	for v := 1; v <= nv; v++ {
		incident, err := incidentEdges(pc, v)
		if err != nil {
			return nil, err
		}
		p, err := pc.Point(v)
		if err != nil {
			return nil, err
		}
		dim := len(p)
		if len(incident) == 0 {
			out[v-1] = make(geometry.Point, dim)
			continue
		}
		normal := mat.NewDense(dim, dim, nil)
		rhs := mat.NewVecDense(dim, nil)

		for _, e := range incident {
			src, tgt, err := pc.EdgeVertices(e)
			if err != nil {
				return nil, err
			}
			ps, err := pc.Point(src)
			if err != nil {
				return nil, err
			}
			pt, err := pc.Point(tgt)
			if err != nil {
				return nil, err
			}
			vec, err := subVec(pt, ps)
			if err != nil {
				return nil, err
			}
			w, err := dc.CellVolume(1, e)
			if err != nil {
				return nil, err
			}
			for i := 0; i < dim; i++ {
				for j := 0; j < dim; j++ {
					normal.Set(i, j, normal.At(i, j)+w*vec[i]*vec[j])
				}
				rhs.SetVec(i, rhs.AtVec(i)+w*vec[i]*form[e-1])
			}
		}

		var x mat.VecDense
		if err := x.SolveVec(normal, rhs); err != nil {
			return nil, fmt.Errorf("operator: Sharp: vertex %d has a singular normal system: %w", v, decerr.ErrDegenerateGeometry)
		}
		pt := make(geometry.Point, dim)
		for i := 0; i < dim; i++ {
			pt[i] = x.AtVec(i)
		}
		out[v-1] = pt
	}
	return out, nil
}

func incidentEdges(pc *primal.Complex, v int) ([]int, error) {
	var out []int
	ne := pc.NumEdges()
	for e := 1; e <= ne; e++ {
		src, tgt, err := pc.EdgeVertices(e)
		if err != nil {
			return nil, err
		}
		if src == v || tgt == v {
			out = append(out, e)
		}
	}
	return out, nil
}
