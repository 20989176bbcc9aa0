package main

// Rectangle is an axis-aligned rectangle. Min is the top-left corner and Max
// is the bottom-right corner, so Max.X is the first column to the right of
// the rectangle, the same way image.Rectangle works.
type Rectangle struct {
	Min Pt
	Max Pt
}

func Abs(x int64) int64 {
	if x < 0 {
		return -x
	} else {
		return x
	}
}

func Min(x int64, y int64) int64 {
	if x < y {
		return x
	} else {
		return y
	}
}

func Max(x int64, y int64) int64 {
	if x > y {
		return x
	} else {
		return y
	}
}

func MinMax(x int64, y int64) (int64, int64) {
	if x < y {
		return x, y
	} else {
		return y, x
	}
}

// Clamp returns x limited to the interval [low, high].
func Clamp(x int64, low int64, high int64) int64 {
	return Max(low, Min(x, high))
}

// NewRectangle builds a rectangle from two corners given in any order.
func NewRectangle(x1, y1, x2, y2 int64) Rectangle {
	minX, maxX := MinMax(x1, x2)
	minY, maxY := MinMax(y1, y2)
	return Rectangle{Pt{minX, minY}, Pt{maxX, maxY}}
}

// RectAt builds a rectangle from its top-left corner and its size.
func RectAt(pos Pt, size Pt) Rectangle {
	return Rectangle{pos, pos.Plus(size)}
}

func (r Rectangle) Width() int64 {
	return r.Max.X - r.Min.X
}

func (r Rectangle) Height() int64 {
	return r.Max.Y - r.Min.Y
}

func (r Rectangle) Size() Pt {
	return Pt{r.Width(), r.Height()}
}

func (r Rectangle) Top() int64 {
	return r.Min.Y
}

func (r Rectangle) Bottom() int64 {
	return r.Max.Y
}

func (r Rectangle) Left() int64 {
	return r.Min.X
}

func (r Rectangle) Right() int64 {
	return r.Max.X
}

// Center uses integer division, so for odd sizes the center leans towards
// the top-left.
func (r Rectangle) Center() Pt {
	return Pt{r.Min.X + r.Width()/2, r.Min.Y + r.Height()/2}
}

func (r Rectangle) ContainsPt(pt Pt) bool {
	return pt.X >= r.Min.X && pt.X <= r.Max.X &&
		pt.Y >= r.Min.Y && pt.Y <= r.Max.Y
}

// Intersects reports whether the two rectangles overlap on both axes.
// Rectangles that only touch along an edge or a corner count as overlapping.
func (r Rectangle) Intersects(other Rectangle) bool {
	return r.Min.X <= other.Max.X && r.Max.X >= other.Min.X &&
		r.Min.Y <= other.Max.Y && r.Max.Y >= other.Min.Y
}

// RectIntersectsRects is a utility function that checks if a rectangle
// intersects any of a list of rectangles.
func RectIntersectsRects(r Rectangle, rects []Rectangle) bool {
	for _, r2 := range rects {
		if r.Intersects(r2) {
			return true
		}
	}
	return false
}

func (r *Rectangle) Translate(offset Pt) {
	r.Min.Add(offset)
	r.Max.Add(offset)
}

// SetPos moves the rectangle so that its top-left corner is pos. The size is
// preserved.
func (r *Rectangle) SetPos(pos Pt) {
	r.Translate(pos.Minus(r.Min))
}

// SetCenter moves the rectangle so that Center() returns c. The size is
// preserved.
func (r *Rectangle) SetCenter(c Pt) {
	r.Translate(c.Minus(r.Center()))
}
