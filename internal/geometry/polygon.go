package geometry

import "math"

// Polygon is a closed ring of points; the last point connects back to the
// first.
type Polygon []Point

// Area is the absolute shoelace area.
func (pg Polygon) Area() float64 {
	if len(pg) < 3 {
		return 0
	}
	sum := 0.0
	for i := range pg {
		a, b := pg[i], pg[(i+1)%len(pg)]
		sum += a.X*b.Y - b.X*a.Y
	}
	return math.Abs(sum) / 2
}

// Contains uses the even-odd rule.
func (pg Polygon) Contains(pt Point) bool {
	inside := false
	for i, j := 0, len(pg)-1; i < len(pg); j, i = i, i+1 {
		a, b := pg[i], pg[j]
		if (a.Y > pt.Y) != (b.Y > pt.Y) {
			x := a.X + (pt.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if pt.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

// DistanceTo is the distance from pt to the nearest edge. When open is true
// the closing edge from the last point back to the first is skipped, which
// is what strokes of unclosed paths need.
func (pg Polygon) DistanceTo(pt Point, open bool) float64 {
	switch len(pg) {
	case 0:
		return math.Inf(1)
	case 1:
		return pt.Sub(pg[0]).Len()
	}

	best := math.Inf(1)
	n := len(pg)
	edges := n
	if open {
		edges = n - 1
	}
	for i := 0; i < edges; i++ {
		best = math.Min(best, segmentDistance(pt, pg[i], pg[(i+1)%n]))
	}
	return best
}

func segmentDistance(p, a, b Point) float64 {
	ab := b.Sub(a)
	l2 := ab.X*ab.X + ab.Y*ab.Y
	if l2 == 0 {
		return p.Sub(a).Len()
	}
	t := ((p.X-a.X)*ab.X + (p.Y-a.Y)*ab.Y) / l2
	t = Clamp01(t)
	return p.Sub(a.Add(ab.Scale(t))).Len()
}

// ClipRect intersects the polygon with r (Sutherland-Hodgman). The result
// is empty when they do not overlap.
func (pg Polygon) ClipRect(r Rect) Polygon {
	if r.Empty() {
		return nil
	}
	out := pg
	out = clipEdge(out, func(p Point) bool { return p.X >= r.Min.X }, func(a, b Point) Point {
		return lerpAtX(a, b, r.Min.X)
	})
	out = clipEdge(out, func(p Point) bool { return p.X <= r.Max.X }, func(a, b Point) Point {
		return lerpAtX(a, b, r.Max.X)
	})
	out = clipEdge(out, func(p Point) bool { return p.Y >= r.Min.Y }, func(a, b Point) Point {
		return lerpAtY(a, b, r.Min.Y)
	})
	out = clipEdge(out, func(p Point) bool { return p.Y <= r.Max.Y }, func(a, b Point) Point {
		return lerpAtY(a, b, r.Max.Y)
	})
	if len(out) < 3 {
		return nil
	}
	return out
}

func clipEdge(in Polygon, inside func(Point) bool, cross func(a, b Point) Point) Polygon {
	if len(in) == 0 {
		return nil
	}
	out := make(Polygon, 0, len(in)+2)
	prev := in[len(in)-1]
	for _, cur := range in {
		switch {
		case inside(cur) && inside(prev):
			out = append(out, cur)
		case inside(cur):
			out = append(out, cross(prev, cur), cur)
		case inside(prev):
			out = append(out, cross(prev, cur))
		}
		prev = cur
	}
	return out
}

func lerpAtX(a, b Point, x float64) Point {
	t := (x - a.X) / (b.X - a.X)
	return Point{x, a.Y + t*(b.Y-a.Y)}
}

func lerpAtY(a, b Point, y float64) Point {
	t := (y - a.Y) / (b.Y - a.Y)
	return Point{a.X + t*(b.X-a.X), y}
}
