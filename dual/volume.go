package dual

import (
	"github.com/dec-go/dec/geometry"
)

// CellVolume sums the geometric volume of the elementary dual (D-k)-cells
// of primal k-simplex x: the
// dual 2-cell of a vertex (sum of its surrounding DualTri areas), the dual
// 1-cell of an edge (sum of its bounding DualE segment lengths), or the
// dual 0-cell of a triangle (always 1, by the k=0 Cayley-Menger
// convention).
func (c *Complex) CellVolume(k, x int) (float64, error) {
	duals, err := c.ElementaryDuals(k, x)
	if err != nil {
		return 0, err
	}
	total := 0.0
	for _, d := range duals {
		v, err := c.elementaryVolume(d)
		if err != nil {
			return 0, err
		}
		total += v
	}
	return total, nil
}

func (c *Complex) elementaryVolume(d DualSimplex) (float64, error) {
	switch d.Dim {
	case 0:
		p, err := c.DualPoint(d.ID)
		if err != nil {
			return 0, err
		}
		return geometry.Volume([]geometry.Point{p})
	case 1:
		a, b, err := c.DualEdgeEndpoints(d.ID)
		if err != nil {
			return 0, err
		}
		pa, err := c.DualPoint(a)
		if err != nil {
			return 0, err
		}
		pb, err := c.DualPoint(b)
		if err != nil {
			return 0, err
		}
		return geometry.Volume([]geometry.Point{pa, pb})
	case 2:
		triC, err := c.store.SubpartInt(d.ID, attrTriCornerTri)
		if err != nil {
			return 0, err
		}
		edgeC, err := c.store.SubpartInt(d.ID, attrTriCornerEdge)
		if err != nil {
			return 0, err
		}
		vertC, err := c.store.SubpartInt(d.ID, attrTriCornerVert)
		if err != nil {
			return 0, err
		}
		pts := make([]geometry.Point, 3)
		for i, id := range []int{triC, edgeC, vertC} {
			pts[i], err = c.DualPoint(id)
			if err != nil {
				return 0, err
			}
		}
		return geometry.Volume(pts)
	default:
		return 0, nil
	}
}
