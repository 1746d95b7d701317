// Package geometry builds the hourglass outlines as plain 2D paths. Everything
// here is pure: the same inputs always produce the same coordinates, and no
// function knows how the result will be drawn.
package geometry

import "math"

type Point struct {
	X, Y float64
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Scale(k float64) Point {
	return Point{p.X * k, p.Y * k}
}

func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

type Size struct {
	Width, Height float64
}

// Rect is axis aligned, with Min the top-left corner (y grows downward).
type Rect struct {
	Min, Max Point
}

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

func (r Rect) Empty() bool {
	return r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y
}

// Padding shrinks a box by Horizontal on the left and right and by
// Vertical on the top and bottom.
type Padding struct {
	Horizontal, Vertical float64
}

// Inset returns the drawing area left inside a box of the given size.
func Inset(s Size, p Padding) Rect {
	return Rect{
		Min: Point{p.Horizontal, p.Vertical},
		Max: Point{s.Width - p.Horizontal, s.Height - p.Vertical},
	}
}

type Verb int

const (
	MoveTo Verb = iota
	LineTo
	CubicTo
	Close
)

// Segment holds one drawing command. LineTo and MoveTo use Pts[0]; CubicTo
// uses Pts[0] and Pts[1] as control points and Pts[2] as the end point.
type Segment struct {
	Verb Verb
	Pts  [3]Point
}

type Path struct {
	Segments []Segment
}

func (p *Path) MoveTo(x, y float64) *Path {
	p.Segments = append(p.Segments, Segment{Verb: MoveTo, Pts: [3]Point{{x, y}}})
	return p
}

func (p *Path) LineTo(x, y float64) *Path {
	p.Segments = append(p.Segments, Segment{Verb: LineTo, Pts: [3]Point{{x, y}}})
	return p
}

func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float64) *Path {
	p.Segments = append(p.Segments, Segment{Verb: CubicTo, Pts: [3]Point{{x1, y1}, {x2, y2}, {x3, y3}}})
	return p
}

func (p *Path) Close() *Path {
	p.Segments = append(p.Segments, Segment{Verb: Close})
	return p
}

// Flatten turns the path into polylines, sampling each cubic with steps
// straight segments. Each MoveTo starts a new polyline. A closed subpath
// does not repeat its first point.
func (p *Path) Flatten(steps int) []Polygon {
	if steps < 1 {
		steps = 1
	}

	var (
		out     []Polygon
		current Polygon
		pen     Point
	)
	flush := func() {
		if len(current) > 0 {
			out = append(out, current)
		}
		current = nil
	}

	for _, seg := range p.Segments {
		switch seg.Verb {
		case MoveTo:
			flush()
			pen = seg.Pts[0]
			current = Polygon{pen}
		case LineTo:
			if len(current) == 0 {
				current = Polygon{pen}
			}
			pen = seg.Pts[0]
			current = append(current, pen)
		case CubicTo:
			if len(current) == 0 {
				current = Polygon{pen}
			}
			for i := 1; i <= steps; i++ {
				t := float64(i) / float64(steps)
				current = append(current, cubic(pen, seg.Pts[0], seg.Pts[1], seg.Pts[2], t))
			}
			pen = seg.Pts[2]
		case Close:
			if n := len(current); n > 1 && current[0] == current[n-1] {
				current = current[:n-1]
			}
			flush()
		}
	}
	flush()
	return out
}

func cubic(p0, p1, p2, p3 Point, t float64) Point {
	u := 1 - t
	a := u * u * u
	b := 3 * u * u * t
	c := 3 * u * t * t
	d := t * t * t
	return Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

// Bounds is the box around every point and control point of the path.
func (p *Path) Bounds() Rect {
	first := true
	var r Rect
	for _, seg := range p.Segments {
		n := 0
		switch seg.Verb {
		case MoveTo, LineTo:
			n = 1
		case CubicTo:
			n = 3
		}
		for _, pt := range seg.Pts[:n] {
			if first {
				r = Rect{Min: pt, Max: pt}
				first = false
				continue
			}
			r.Min.X = math.Min(r.Min.X, pt.X)
			r.Min.Y = math.Min(r.Min.Y, pt.Y)
			r.Max.X = math.Max(r.Max.X, pt.X)
			r.Max.Y = math.Max(r.Max.Y, pt.Y)
		}
	}
	return r
}
