package reorder

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Cell hosts one item of a Grid. It turns presses and drags on the item
// into the drag lifecycle reported to its DragObserver, sways while the
// grid is in editing mode and offers a delete control.
type Cell struct {
	widget.BaseWidget
	host    cellHost
	content fyne.CanvasObject
	remove  *widget.Button

	editing bool
	hidden  bool
	sway    float32
	wiggle  stopper

	// offset from the pointer to the cell center, valid while tracking
	origin   fyne.Position
	tracking bool

	pressing   bool
	pressAt    fyne.Position
	lastPoint  fyne.Position
	pressTimer *time.Timer
	pressGen   int

	inDrag     bool
	forwarding bool
}

func newCell(host cellHost, content fyne.CanvasObject) *Cell {
	c := &Cell{
		host:    host,
		content: content,
	}
	c.remove = widget.NewButtonWithIcon("", theme.CancelIcon(), func() {
		c.host.deleteCell(c)
	})
	c.remove.Importance = widget.DangerImportance
	c.remove.Hide()
	c.ExtendBaseWidget(c)
	return c
}

// Editing reports whether the cell shows its editing cue.
func (c *Cell) Editing() bool {
	return c.editing
}

// SetEditing starts or stops the idle sway and shows or hides the delete
// control. Calling it repeatedly with the same value has no further effect.
func (c *Cell) SetEditing(editing bool) {
	c.editing = editing
	if editing {
		c.startWiggle()
	} else {
		c.stopWiggle()
	}
	c.applyVisibility()
}

func (c *Cell) setHidden(hidden bool) {
	if c.hidden == hidden {
		return
	}
	c.hidden = hidden
	c.applyVisibility()
}

func (c *Cell) applyVisibility() {
	if c.hidden {
		c.content.Hide()
	} else {
		c.content.Show()
	}

	if c.editing && !c.hidden {
		c.remove.Show()
	} else {
		c.remove.Hide()
	}
}

func (c *Cell) startWiggle() {
	if c.wiggle != nil {
		return
	}

	opts := c.host.options()
	// sway by the arc a corner would travel when rotating by the angle
	amp := float32(opts.WiggleAngle) * c.Size().Width / 2
	c.wiggle = c.host.animator().loop(opts.WigglePeriod, func(p float32) {
		c.setSway(-amp + 2*amp*p)
	})
}

func (c *Cell) stopWiggle() {
	if c.wiggle == nil {
		return
	}
	c.wiggle.Stop()
	c.wiggle = nil
	c.setSway(0)
}

func (c *Cell) wiggling() bool {
	return c.wiggle != nil
}

func (c *Cell) setSway(x float32) {
	c.sway = x
	c.content.Move(fyne.NewPos(x, 0))
}

// onGesture advances the drag lifecycle. pointer is in grid content
// coordinates. Out of order phases are ignored.
func (c *Cell) onGesture(phase gesturePhase, pointer fyne.Position) {
	switch phase {
	case gestureBegan:
		if c.tracking {
			return
		}
		f, ok := c.host.frameOf(c)
		if !ok {
			return
		}
		c.host.WillBeginDragging(c)
		if !c.host.ownsDrag(c) {
			// refused, another drag is still settling
			return
		}
		c.origin = f.center().Subtract(pointer)
		c.tracking = true
		// the observer may have just switched editing on for everyone
		c.stopWiggle()
	case gestureChanged:
		if !c.tracking {
			return
		}
		c.host.DidDrag(c, pointer.Add(c.origin))
	case gestureEnded, gestureCancelled:
		if !c.tracking {
			return
		}
		c.tracking = false
		c.origin = fyne.Position{}
		c.host.DidEndDragging(c)
		if c.editing {
			c.startWiggle()
		}
	}
}

func (c *Cell) pressDown(abs fyne.Position) {
	c.cancelPress()
	p := c.host.contentPosition(abs)
	c.pressing = true
	c.pressAt = p
	c.lastPoint = p

	gen := c.pressGen
	c.pressTimer = time.AfterFunc(c.host.options().LongPressDelay, func() {
		fyne.Do(func() {
			if gen == c.pressGen {
				c.longPressed()
			}
		})
	})
}

func (c *Cell) cancelPress() {
	c.pressGen++
	c.pressing = false
	if c.pressTimer != nil {
		c.pressTimer.Stop()
		c.pressTimer = nil
	}
}

func (c *Cell) longPressed() {
	if !c.pressing || c.tracking {
		return
	}
	if c.pressTimer != nil {
		c.pressTimer.Stop()
		c.pressTimer = nil
	}
	if c.forwarding {
		c.forwarding = false
		c.host.forwardDragEnd()
	}
	c.onGesture(gestureBegan, c.lastPoint)
}

func (c *Cell) release() {
	c.cancelPress()
	c.onGesture(gestureEnded, c.lastPoint)
}

func (c *Cell) Dragged(e *fyne.DragEvent) {
	first := !c.inDrag
	c.inDrag = true

	p := c.host.contentPosition(e.AbsolutePosition)
	c.lastPoint = p

	if c.tracking {
		c.onGesture(gestureChanged, p)
		return
	}
	if first && c.editing {
		c.cancelPress()
		c.onGesture(gestureBegan, p)
		return
	}

	if c.pressing {
		d := p.Subtract(c.pressAt)
		slop := c.host.options().PressSlop
		if d.X*d.X+d.Y*d.Y > slop*slop {
			c.cancelPress()
		}
	}
	c.forwarding = true
	c.host.forwardDrag(e)
}

func (c *Cell) DragEnd() {
	c.inDrag = false
	if c.forwarding {
		c.forwarding = false
		c.host.forwardDragEnd()
	}
	c.release()
}

func (c *Cell) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	c.pressDown(e.AbsolutePosition)
}

func (c *Cell) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	c.release()
}

func (c *Cell) TouchDown(e *mobile.TouchEvent) {
	c.pressDown(e.AbsolutePosition)
}

func (c *Cell) TouchUp(*mobile.TouchEvent) {
	c.release()
}

func (c *Cell) TouchCancel(*mobile.TouchEvent) {
	c.cancelPress()
	c.onGesture(gestureCancelled, c.lastPoint)
}

var (
	_ fyne.Draggable    = (*Cell)(nil)
	_ desktop.Mouseable = (*Cell)(nil)
	_ mobile.Touchable  = (*Cell)(nil)
)

func (c *Cell) CreateRenderer() fyne.WidgetRenderer {
	return &cellRenderer{cell: c}
}

type cellRenderer struct {
	cell *Cell
}

func (r *cellRenderer) Layout(size fyne.Size) {
	r.cell.content.Resize(size)
	r.cell.content.Move(fyne.NewPos(r.cell.sway, 0))

	r.cell.remove.Resize(r.cell.remove.MinSize())
	r.cell.remove.Move(fyne.NewPos(0, 0))
}

func (r *cellRenderer) MinSize() fyne.Size {
	return r.cell.content.MinSize()
}

func (r *cellRenderer) Refresh() {
	r.cell.content.Refresh()
	r.cell.remove.Refresh()
}

func (r *cellRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.cell.content, r.cell.remove}
}

func (r *cellRenderer) Destroy() {
	r.cell.cancelPress()
	r.cell.stopWiggle()
}
