package reorder

import (
	"time"

	"fyne.io/fyne/v2"
)

// dragSession is the state of one drag, from pick up until the floating
// copy has settled back into the grid.
type dragSession struct {
	cell  *Cell
	phase dragPhase

	// logical frame of the floating copy; the lift scale is visual only
	frame frame
	scale float32

	transition stopper
}

func (s *dragSession) active() bool {
	return s.phase == phaseLifting || s.phase == phaseLifted
}

// WillBeginDragging picks c up: the grid enters editing mode, stops
// scrolling and shows a lifted copy of c in its place.
// It is ignored while a previous drag is still settling.
func (g *Grid) WillBeginDragging(c *Cell) {
	if c == nil || g.session.phase != phaseIdle {
		return
	}
	i, ok := g.indexOf(c)
	if !ok {
		return
	}

	g.lock.setLocked(true)

	f := g.slotFrame(i)
	img := snapshot(c, g.opts.LiftScale)
	if img == nil {
		fyne.LogError("reorder grid could not capture the dragged cell", nil)
	}

	g.session = dragSession{cell: c, phase: phaseLifting, frame: f, scale: 1}
	g.overlay.showFloating(img, f, 1)
	c.setHidden(true)

	lift := g.opts.LiftScale
	g.session.transition = g.anim.animate(g.opts.LiftDuration, func(p float32) {
		g.setFloatingScale(1 + (lift-1)*p)
	}, func() {
		if g.session.phase == phaseLifting {
			g.session.phase = phaseLifted
			g.session.transition = nil
		}
	})

	g.setEditing(true)
}

// DidDrag moves the floating copy of c so that it is centered on center,
// keeps it in view and moves the item when the copy covers another slot.
func (g *Grid) DidDrag(c *Cell, center fyne.Position) {
	if c == nil || c != g.session.cell || !g.session.active() {
		return
	}

	g.session.frame = g.session.frame.withCenter(center)
	g.placeFloating()

	g.scrollToVisible(g.session.frame.expandY(g.opts.AutoScrollMargin))
	g.updateAutoScroll()
	g.resolveOverlap()
}

// DidEndDragging puts c down: the floating copy shrinks back and flies to
// the slot c now occupies, then c is shown again.
func (g *Grid) DidEndDragging(c *Cell) {
	if c == nil || c != g.session.cell || !g.session.active() {
		return
	}

	g.stopAutoScroll()
	if g.session.transition != nil {
		g.session.transition.Stop()
	}
	g.session.phase = phaseSettling

	from := g.session.scale
	start := g.session.frame
	target := start
	if i, ok := g.indexOf(c); ok {
		target = g.slotFrame(i)
	}

	settle := g.opts.SettleDuration
	g.session.transition = g.anim.animate(g.opts.LiftDuration, func(p float32) {
		g.setFloatingScale(from + (1-from)*p)
	}, func() {
		if g.session.phase != phaseSettling {
			return
		}
		g.session.transition = g.anim.animate(settle, func(p float32) {
			g.session.frame = frame{pos: lerpPos(start.pos, target.pos, p), size: start.size}
			g.placeFloating()
		}, g.finishSession)
	})
}

func (g *Grid) finishSession() {
	c := g.session.cell
	g.session = dragSession{}

	g.overlay.hideFloating()
	g.lock.setLocked(false)
	g.lastDragEnd = time.Now()

	if c != nil {
		c.setHidden(false)
		if _, ok := g.indexOf(c); ok {
			c.SetEditing(g.editing)
		}
	}
}

// abortSession drops the current drag without animating.
func (g *Grid) abortSession() {
	if g.session.phase == phaseIdle {
		return
	}
	g.stopAutoScroll()
	if g.session.transition != nil {
		g.session.transition.Stop()
	}
	g.finishSession()
}

func (g *Grid) setFloatingScale(s float32) {
	g.session.scale = s
	g.placeFloating()
}

func (g *Grid) placeFloating() {
	g.overlay.placeFloating(g.session.frame, g.session.scale)
}

// resolveOverlap moves the dragged item to the first visible slot its
// floating copy covers, if that is not where it already is.
func (g *Grid) resolveOverlap() {
	from, ok := g.indexOf(g.session.cell)
	if !ok {
		return
	}

	visible := g.visibleIndexes()
	frames := make([]frame, len(visible))
	for n, i := range visible {
		frames[n] = g.slotFrame(i)
	}
	hit := overlapTarget(g.session.frame, frames)
	if hit < 0 {
		return
	}
	to := visible[hit]
	if to == from {
		return
	}

	g.moveCell(from, to)
}

// moveCell reports the move and applies it to the cells as one animated
// update: every displaced cell glides to its new slot together.
func (g *Grid) moveCell(from, to int) {
	if g.OnMove != nil {
		g.OnMove(from, to)
	}

	g.cells = MoveItem(g.cells, from, to)
	g.syncObjects()

	lo, hi := from, to
	if lo > hi {
		lo, hi = hi, lo
	}
	g.bind(lo, hi)

	dragged := g.session.cell
	for i := lo; i <= hi; i++ {
		c := g.cells[i]
		target := g.slotFrame(i)
		if c == dragged {
			if m, ok := g.moves[c]; ok {
				m.Stop()
				delete(g.moves, c)
			}
			c.Move(target.pos)
			continue
		}
		g.glide(c, target.pos)
	}
}

func (g *Grid) glide(c *Cell, to fyne.Position) {
	if m, ok := g.moves[c]; ok {
		m.Stop()
	}

	start := c.Position()
	var m stopper
	m = g.anim.animate(g.opts.MoveDuration, func(p float32) {
		c.Move(lerpPos(start, to, p))
	}, func() {
		if g.moves[c] == m {
			delete(g.moves, c)
		}
	})
	g.moves[c] = m
}

// scrollToVisible scrolls the least distance that brings r into view.
func (g *Grid) scrollToVisible(r frame) {
	view := g.scroll.Size().Height
	if view <= 0 {
		return
	}

	offset := g.scroll.Offset.Y
	switch {
	case r.pos.Y < offset:
		offset = r.pos.Y
	case r.bottom() > offset+view:
		offset = r.bottom() - view
	}
	g.scrollTo(offset)
}

// scrollTo moves the viewport, clamped to the content, and returns how far
// it actually moved. Cells brought into view pick up the editing mode.
func (g *Grid) scrollTo(offset float32) float32 {
	offset = clamp32(offset, 0, g.maxScrollOffset())
	delta := offset - g.scroll.Offset.Y
	if delta == 0 {
		return 0
	}
	g.scroll.ScrollToOffset(fyne.NewPos(g.scroll.Offset.X, offset))
	g.syncVisible()
	return delta
}

func (g *Grid) maxScrollOffset() float32 {
	view := g.scroll.Size().Height
	if view <= 0 {
		return 0
	}
	content := g.overlay.MinSize().Height
	if content <= view {
		return 0
	}
	return content - view
}
