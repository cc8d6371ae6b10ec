package reorder

import (
	"time"

	"fyne.io/fyne/v2"
)

// edgeScroll is a running autoscroll. dir and step are only touched on the
// Fyne goroutine; the ticker goroutine just asks for ticks until halt closes.
type edgeScroll struct {
	dir  float32
	step float32
	halt chan struct{}
}

// updateAutoScroll keeps the grid scrolling while the floating copy rests
// near the top or bottom of the viewport, faster the closer it gets.
func (g *Grid) updateAutoScroll() {
	if !g.session.active() {
		g.stopAutoScroll()
		return
	}

	view := g.scroll.Size().Height
	zone := g.opts.AutoScrollMargin
	if view <= 0 || zone <= 0 || g.maxScrollOffset() <= 0 {
		g.stopAutoScroll()
		return
	}
	zone = min32(zone, view/2)

	top := g.scroll.Offset.Y
	f := g.session.frame

	var dir, depth float32
	switch {
	case f.pos.Y < top+zone:
		dir, depth = -1, top+zone-f.pos.Y
	case f.bottom() > top+view-zone:
		dir, depth = 1, f.bottom()-(top+view-zone)
	}
	if dir == 0 || depth <= 0 {
		g.stopAutoScroll()
		return
	}

	if g.edge == nil {
		g.edge = g.runEdgeScroll()
	}
	g.edge.dir = dir
	g.edge.step = min32(depth/zone, 1) * clamp32(g.opts.CellSize.Height*0.5, 12, 80)
}

func (g *Grid) runEdgeScroll() *edgeScroll {
	e := &edgeScroll{halt: make(chan struct{})}
	go func() {
		t := time.NewTicker(autoScrollInterval)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				fyne.Do(func() { g.edgeTick(e) })
			case <-e.halt:
				return
			}
		}
	}()
	return e
}

func (g *Grid) stopAutoScroll() {
	if g.edge == nil {
		return
	}
	if g.edge.halt != nil {
		close(g.edge.halt)
	}
	g.edge = nil
}

// edgeTick scrolls one step for e. Ticks queued before e was stopped are
// dropped.
func (g *Grid) edgeTick(e *edgeScroll) {
	if e != g.edge {
		return
	}
	if !g.session.active() || e.step <= 0 {
		g.stopAutoScroll()
		return
	}

	moved := g.scrollTo(g.scroll.Offset.Y + e.dir*e.step)
	if moved == 0 {
		g.stopAutoScroll()
		return
	}

	// The pointer holds still on screen while the content slides under it,
	// so the floating copy travels with the viewport.
	g.session.frame = g.session.frame.offset(0, moved)
	g.placeFloating()
	g.resolveOverlap()
}
