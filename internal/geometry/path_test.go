package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(min, max float64) *Path {
	p := &Path{}
	return p.MoveTo(min, min).LineTo(max, min).LineTo(max, max).LineTo(min, max).Close()
}

func TestFlatten_ClosedPathDropsRepeatedStart(t *testing.T) {
	rings := square(0, 10).Flatten(8)
	require.Len(t, rings, 1)
	assert.Len(t, rings[0], 4)
	assert.InDelta(t, 100, rings[0].Area(), 1e-9)
}

func TestFlatten_CubicEndpoints(t *testing.T) {
	p := &Path{}
	p.MoveTo(0, 0).CubicTo(0, 10, 10, 10, 10, 0)

	rings := p.Flatten(4)
	require.Len(t, rings, 1)
	ring := rings[0]
	require.Len(t, ring, 5)
	assert.Equal(t, Point{0, 0}, ring[0])
	assert.Equal(t, Point{10, 0}, ring[4])
	// the midpoint of this symmetric curve sits at 3/4 of the control height
	assert.InDelta(t, 5, ring[2].X, 1e-9)
	assert.InDelta(t, 7.5, ring[2].Y, 1e-9)
}

func TestFlatten_MoveToStartsNewRing(t *testing.T) {
	p := &Path{}
	p.MoveTo(0, 0).LineTo(1, 0).MoveTo(5, 5).LineTo(6, 6)

	rings := p.Flatten(1)
	require.Len(t, rings, 2)
	assert.Equal(t, Polygon{{0, 0}, {1, 0}}, rings[0])
	assert.Equal(t, Polygon{{5, 5}, {6, 6}}, rings[1])
}

func TestBounds(t *testing.T) {
	p := &Path{}
	p.MoveTo(2, 3).CubicTo(-1, 8, 12, -4, 5, 5)

	assert.Equal(t, Rect{Min: Point{-1, -4}, Max: Point{12, 8}}, p.Bounds())
	assert.Equal(t, Rect{}, (&Path{}).Bounds())
}

func TestInset(t *testing.T) {
	r := Inset(Size{300, 400}, Padding{Horizontal: 32, Vertical: 40})
	assert.Equal(t, Rect{Min: Point{32, 40}, Max: Point{268, 360}}, r)
	assert.Equal(t, 236.0, r.Width())
	assert.Equal(t, 320.0, r.Height())
	assert.False(t, r.Empty())
	assert.True(t, Inset(Size{10, 10}, Padding{Horizontal: 5}).Empty())
}

func TestPolygon_Contains(t *testing.T) {
	ring := square(0, 10).Flatten(1)[0]

	assert.True(t, ring.Contains(Point{5, 5}))
	assert.True(t, ring.Contains(Point{0.1, 9.9}))
	assert.False(t, ring.Contains(Point{-1, 5}))
	assert.False(t, ring.Contains(Point{5, 11}))
	assert.False(t, Polygon{}.Contains(Point{}))
}

func TestPolygon_ClipRect(t *testing.T) {
	ring := square(0, 10).Flatten(1)[0]

	clipped := ring.ClipRect(Rect{Min: Point{5, 5}, Max: Point{15, 15}})
	assert.InDelta(t, 25, clipped.Area(), 1e-9)

	inside := ring.ClipRect(Rect{Min: Point{-5, -5}, Max: Point{20, 20}})
	assert.InDelta(t, 100, inside.Area(), 1e-9)

	assert.Nil(t, ring.ClipRect(Rect{Min: Point{20, 20}, Max: Point{30, 30}}))
	assert.Nil(t, ring.ClipRect(Rect{Min: Point{5, 5}, Max: Point{5, 8}}))
}

func TestPolygon_ClipRectTriangle(t *testing.T) {
	tri := Polygon{{0, 0}, {10, 0}, {5, 10}}

	// keep the lower half: a triangle of base 5 and height 5
	lower := tri.ClipRect(Rect{Min: Point{-1, 5}, Max: Point{11, 11}})
	assert.InDelta(t, 12.5, lower.Area(), 1e-9)
	for _, pt := range lower {
		assert.GreaterOrEqual(t, pt.Y, 5.0)
	}
}

func TestPolygon_DistanceTo(t *testing.T) {
	line := Polygon{{0, 0}, {10, 0}}

	assert.InDelta(t, 3, line.DistanceTo(Point{5, 3}, true), 1e-9)
	assert.InDelta(t, 5, line.DistanceTo(Point{-4, 3}, true), 1e-9)
	assert.InDelta(t, 2, Polygon{{1, 1}}.DistanceTo(Point{1, 3}, true), 1e-9)

	ring := square(0, 10).Flatten(1)[0]
	// the closing edge x=0 only counts for closed rings
	assert.InDelta(t, 1, ring.DistanceTo(Point{1, 5}, false), 1e-9)
	assert.InDelta(t, 5, ring.DistanceTo(Point{1, 5}, true), 1e-9)
}
