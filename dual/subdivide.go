package dual

import (
	"fmt"

	"github.com/dec-go/dec/decerr"
	"github.com/dec-go/dec/geometry"
)

// SubdivideDuals places a geometry.Point at every dual vertex according
// to rule: vertex centers copy the primal point
// unchanged, edge centers are always the midpoint (barycenter of the two
// endpoints, since circumcenter/incenter of a 2-point set coincide with
// it), and triangle centers follow rule.
func (c *Complex) SubdivideDuals(rule SubdivisionRule) error {
	if !c.Primal.Embedded {
		return fmt.Errorf("dual: SubdivideDuals: primal complex is not embedded: %w", decerr.ErrNotEmbedded)
	}

	for v := 1; v <= c.nv; v++ {
		p, err := c.Primal.Point(v)
		if err != nil {
			return err
		}
		if err := c.SetDualPoint(c.VertexCenter(v), p); err != nil {
			return err
		}
	}

	for e := 1; e <= c.ne; e++ {
		src, tgt, err := c.Primal.EdgeVertices(e)
		if err != nil {
			return err
		}
		ps, err := c.Primal.Point(src)
		if err != nil {
			return err
		}
		pt, err := c.Primal.Point(tgt)
		if err != nil {
			return err
		}
		mid, err := geometry.Barycenter([]geometry.Point{ps, pt})
		if err != nil {
			return err
		}
		if err := c.SetDualPoint(c.EdgeCenter(e), mid); err != nil {
			return err
		}
	}

	for t := 1; t <= c.ntri; t++ {
		v0, v1, v2, err := c.Primal.TriangleVertices(t)
		if err != nil {
			return err
		}
		pts := make([]geometry.Point, 3)
		for i, v := range []int{v0, v1, v2} {
			pts[i], err = c.Primal.Point(v)
			if err != nil {
				return err
			}
		}
		var center geometry.Point
		switch rule {
		case Barycenter:
			center, err = geometry.Barycenter(pts)
		case Circumcenter:
			center, err = geometry.Circumcenter(pts)
		case Incenter:
			center, err = geometry.Incenter(pts)
		default:
			return fmt.Errorf("dual: SubdivideDuals: unknown subdivision rule %d", rule)
		}
		if err != nil {
			return err
		}
		if err := c.SetDualPoint(c.TriCenter(t), center); err != nil {
			return err
		}
	}
	return nil
}
