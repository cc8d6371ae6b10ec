package reorder

import "fyne.io/fyne/v2"

// frame is an axis aligned rectangle in grid content coordinates.
type frame struct {
	pos  fyne.Position
	size fyne.Size
}

func newFrame(x, y, w, h float32) frame {
	return frame{pos: fyne.NewPos(x, y), size: fyne.NewSize(w, h)}
}

func (f frame) right() float32  { return f.pos.X + f.size.Width }
func (f frame) bottom() float32 { return f.pos.Y + f.size.Height }

func (f frame) center() fyne.Position {
	return fyne.NewPos(f.pos.X+f.size.Width/2, f.pos.Y+f.size.Height/2)
}

// withCenter keeps the size and moves the frame so its center sits at c.
func (f frame) withCenter(c fyne.Position) frame {
	return frame{pos: fyne.NewPos(c.X-f.size.Width/2, c.Y-f.size.Height/2), size: f.size}
}

// scaled grows or shrinks the frame around its center.
func (f frame) scaled(s float32) frame {
	size := fyne.NewSize(f.size.Width*s, f.size.Height*s)
	return frame{size: size}.withCenter(f.center())
}

// expandY grows the frame vertically by margin, split evenly above and below.
func (f frame) expandY(margin float32) frame {
	return newFrame(f.pos.X, f.pos.Y-margin/2, f.size.Width, f.size.Height+margin)
}

func (f frame) offset(dx, dy float32) frame {
	return frame{pos: f.pos.AddXY(dx, dy), size: f.size}
}

// intersect returns the overlapping region of a and b.
// Disjoint frames yield a zero size.
func intersect(a, b frame) frame {
	x1 := max32(a.pos.X, b.pos.X)
	y1 := max32(a.pos.Y, b.pos.Y)
	x2 := min32(a.right(), b.right())
	y2 := min32(a.bottom(), b.bottom())
	if x2 <= x1 || y2 <= y1 {
		return frame{pos: fyne.NewPos(x1, y1)}
	}
	return newFrame(x1, y1, x2-x1, y2-y1)
}

// overlaps reports whether candidate covers more than half of moving along
// both axes.
func overlaps(moving, candidate frame) bool {
	in := intersect(candidate, moving)
	return in.size.Width > moving.size.Width/2 && in.size.Height > moving.size.Height/2
}

// overlapTarget returns the position in candidates of the first frame that
// moving overlaps past the threshold, or -1.
// Candidates are checked in order and the first hit wins, even when a later
// one overlaps more.
func overlapTarget(moving frame, candidates []frame) int {
	for i, c := range candidates {
		if overlaps(moving, c) {
			return i
		}
	}
	return -1
}

// MoveItem moves the element at index from to index to, shifting the
// elements in between by one place. The slice is modified in place and
// returned. Out of range indexes leave it untouched.
func MoveItem[T any](s []T, from, to int) []T {
	if from < 0 || from >= len(s) || to < 0 || to >= len(s) || from == to {
		return s
	}

	item := s[from]
	if from < to {
		copy(s[from:to], s[from+1:to+1])
	} else {
		copy(s[to+1:from+1], s[to:from])
	}
	s[to] = item
	return s
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func clamp32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func lerpPos(a, b fyne.Position, t float32) fyne.Position {
	return fyne.NewPos(a.X+(b.X-a.X)*t, a.Y+(b.Y-a.Y)*t)
}
