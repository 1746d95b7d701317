package geometry

import "math"

// Easing curves. The constants were picked by eye, not derived from how real
// sand falls.

// TopFraction is how far down the top chamber the sand surface has dropped.
// It is convex, so the top drains visibly faster near the end.
func TopFraction(p float64) float64 {
	return p * (0.4*p + 0.6)
}

// BottomFraction drives the height of the bottom pile.
func BottomFraction(p float64) float64 {
	return p
}

// BottomFractionFaster drives the width of the bottom pile. It reaches full
// spread at p = 1/3 and stays there.
func BottomFractionFaster(p float64) float64 {
	return math.Min(p*3, 1)
}

// BottomHeight maps a growth fraction to the y of the pile's apex, measured
// down from the top of the chamber box: the base at 0, the midline at 1.
func BottomHeight(fraction, fullHeight float64) float64 {
	return fullHeight / 2 * (2 - fraction)
}

func Clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Min(math.Max(v, 0), 1)
}

// Frame is the hourglass outline: two curved triangles meeting at a waist
// 2*gapRadius wide.
func Frame(r Rect, gapRadius float64) *Path {
	w, h := r.Width(), r.Height()
	x := func(v float64) float64 { return r.Min.X + v }
	y := func(v float64) float64 { return r.Min.Y + v }

	centerH := h / 2
	centerW := w / 2
	left := w * 0.1
	right := w * 0.9
	h30 := h * 0.3
	h70 := h * 0.7
	waistR := centerW + gapRadius
	waistL := centerW - gapRadius

	p := &Path{}
	return p.MoveTo(x(left), y(0)).
		LineTo(x(right), y(0)).
		CubicTo(x(w), y(h30), x(waistR), y(h30), x(waistR), y(centerH)).
		CubicTo(x(waistR), y(h70), x(w), y(h70), x(right), y(h)).
		LineTo(x(left), y(h)).
		CubicTo(x(0), y(h70), x(waistL), y(h70), x(waistL), y(centerH)).
		CubicTo(x(waistL), y(h30), x(0), y(h30), x(left), y(0)).
		Close()
}

// TopWedge is the full top chamber of sand, tip at the waist.
func TopWedge(r Rect) *Path {
	w, h := r.Width(), r.Height()
	x := func(v float64) float64 { return r.Min.X + v }
	y := func(v float64) float64 { return r.Min.Y + v }

	centerH := h / 2
	centerW := w / 2
	h30 := h * 0.3

	p := &Path{}
	return p.MoveTo(x(w*0.1), y(0)).
		LineTo(x(w*0.9), y(0)).
		CubicTo(x(w), y(h30), x(centerW), y(h30), x(centerW), y(centerH)).
		CubicTo(x(centerW), y(h30), x(0), y(h30), x(w*0.1), y(0)).
		Close()
}

// TopClip is the band of the top chamber that still holds sand.
func TopClip(r Rect, p float64) Rect {
	centerH := r.Height() / 2
	return Rect{
		Min: Point{r.Min.X, r.Min.Y + centerH*TopFraction(p)},
		Max: Point{r.Max.X, r.Min.Y + centerH},
	}
}

// TopSand is the remaining top sand: TopWedge cut down to TopClip. It is
// empty once the chamber has drained.
func TopSand(r Rect, p float64, steps int) Polygon {
	rings := TopWedge(r).Flatten(steps)
	if len(rings) == 0 {
		return nil
	}
	return rings[0].ClipRect(TopClip(r, p))
}

// BottomSand is the pile in the lower chamber. Its apex rises with
// BottomFraction while its base widens with BottomFractionFaster.
func BottomSand(r Rect, p float64) *Path {
	w, h := r.Width(), r.Height()
	x := func(v float64) float64 { return r.Min.X + v }
	y := func(v float64) float64 { return r.Min.Y + v }

	fraction := BottomFraction(p)
	faster := BottomFractionFaster(p)

	apex := BottomHeight(fraction, h)
	centerW := w / 2
	left := w * (0.5 - 0.4*faster)
	right := w * (0.5 + 0.4*faster)
	h70 := h*0.7 + h*0.3*(1-fraction)
	ctrlR := w * (0.5 + 0.5*fraction)
	ctrlL := w * (0.5 - 0.5*fraction)

	path := &Path{}
	return path.MoveTo(x(centerW), y(apex)).
		CubicTo(x(centerW), y(h70), x(ctrlR), y(h70), x(right), y(h)).
		LineTo(x(left), y(h)).
		CubicTo(x(ctrlL), y(h70), x(centerW), y(h70), x(centerW), y(apex)).
		Close()
}

// DripLine is the falling stream, from lead above the waist down to the
// base of the lower chamber.
func DripLine(r Rect, lead float64) *Path {
	centerW := r.Min.X + r.Width()/2
	p := &Path{}
	return p.MoveTo(centerW, r.Min.Y+r.Height()/2-lead).
		LineTo(centerW, r.Max.Y)
}

// Layout places the four shapes on a shared canvas.
type Layout struct {
	Canvas        Size
	FramePadding  Padding
	TopPadding    Padding
	BottomPadding Padding
	GapRadius     float64
	FrameStroke   float64
	DripStroke    float64
	DripLead      float64
	CurveSteps    int
}

var DefaultLayout = Layout{
	Canvas:        Size{Width: 300, Height: 400},
	FramePadding:  Padding{Horizontal: 16, Vertical: 16},
	TopPadding:    Padding{Horizontal: 32, Vertical: 24},
	BottomPadding: Padding{Horizontal: 32, Vertical: 40},
	GapRadius:     10,
	FrameStroke:   12,
	DripStroke:    1,
	DripLead:      24,
	CurveSteps:    32,
}

// Scene holds every shape for one percentage.
type Scene struct {
	Frame      *Path
	TopSand    Polygon
	BottomSand *Path
	Drip       *Path
}

// Scene recomputes all shapes for p, clamped to [0, 1].
func (l Layout) Scene(p float64) Scene {
	p = Clamp01(p)
	top := Inset(l.Canvas, l.TopPadding)
	bottom := Inset(l.Canvas, l.BottomPadding)
	return Scene{
		Frame:      Frame(Inset(l.Canvas, l.FramePadding), l.GapRadius),
		TopSand:    TopSand(top, p, l.CurveSteps),
		BottomSand: BottomSand(bottom, p),
		Drip:       DripLine(bottom, l.DripLead),
	}
}
