package reorder

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Grid shows items in fixed size cells which the user can long press to
// enter editing mode, drag to reorder and delete.
//
// The grid never changes the application's data itself. It reports moves
// through OnMove and deletions through OnDelete, and the application is
// expected to apply the same change to the data behind Length and
// UpdateItem.
type Grid struct {
	widget.BaseWidget

	Length     func() int
	CreateItem func() fyne.CanvasObject
	UpdateItem func(id int, item fyne.CanvasObject)

	// OnMove is called when the dragged item takes the slot at index to.
	OnMove func(from, to int)
	// OnDelete is called when the delete control of the item at id is tapped.
	OnDelete func(id int)

	opts Options
	anim animator

	cells   []*Cell
	slots   *slotLayout
	items   *fyne.Container
	overlay *dragOverlay
	scroll  *container.Scroll
	lock    *scrollLock

	editing     bool
	session     dragSession
	lastDragEnd time.Time
	moves       map[*Cell]stopper

	edge *edgeScroll
}

// NewGrid creates a reorderable grid over the items described by the
// callbacks, in the same way as widget.NewGridWrap.
func NewGrid(length func() int, createItem func() fyne.CanvasObject, updateItem func(id int, item fyne.CanvasObject)) *Grid {
	g := &Grid{
		Length:     length,
		CreateItem: createItem,
		UpdateItem: updateItem,
		opts:       DefaultOptions(),
		anim:       fyneAnimator{},
		moves:      make(map[*Cell]stopper),
	}

	g.slots = &slotLayout{
		cellSize: g.opts.CellSize,
		viewport: func() float32 { return g.scroll.Size().Width },
		gliding: func(o fyne.CanvasObject) bool {
			c, ok := o.(*Cell)
			if !ok {
				return false
			}
			_, moving := g.moves[c]
			return moving
		},
	}
	g.items = container.New(g.slots)
	g.overlay = newDragOverlay(g.items, g.backgroundTapped)
	g.scroll = container.NewVScroll(g.overlay)
	g.scroll.OnScrolled = func(fyne.Position) {
		g.syncVisible()
	}
	g.lock = newScrollLock()

	g.ExtendBaseWidget(g)
	g.reconcile()
	return g
}

// Options returns the options the grid is using.
func (g *Grid) Options() Options {
	return g.opts
}

// SetOptions replaces the grid options. Invalid options are ignored and
// reported through the Fyne log.
func (g *Grid) SetOptions(opts Options) {
	if err := opts.Validate(); err != nil {
		fyne.LogError("reorder grid options rejected", err)
		return
	}
	g.opts = opts
	g.stopMoves()
	g.slots.cellSize = opts.CellSize
	g.items.Refresh()
	g.scroll.Refresh()
}

// Editing reports whether the grid is in editing mode.
func (g *Grid) Editing() bool {
	return g.editing
}

// Dragging reports whether a dragged cell, or its floating copy, is still
// on its way back into place.
func (g *Grid) Dragging() bool {
	return g.session.phase != phaseIdle
}

// ExitEditingMode stops the editing cue on every visible cell.
// It does nothing while a drag is in progress.
func (g *Grid) ExitEditingMode() {
	if g.Dragging() {
		return
	}
	g.setEditing(false)
}

// Refresh rebuilds the cells to match Length and binds each of them again.
func (g *Grid) Refresh() {
	g.reconcile()
	g.BaseWidget.Refresh()
}

func (g *Grid) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(g.scroll, g.lock))
}

func (g *Grid) length() int {
	if g.Length == nil {
		return 0
	}
	return g.Length()
}

func (g *Grid) reconcile() {
	n := g.length()

	for len(g.cells) < n {
		var content fyne.CanvasObject
		if g.CreateItem != nil {
			content = g.CreateItem()
		}
		if content == nil {
			content = widget.NewLabel("")
		}
		g.cells = append(g.cells, newCell(g, content))
	}
	if len(g.cells) > n {
		for _, c := range g.cells[n:] {
			if c == g.session.cell {
				g.abortSession()
			}
			g.retire(c)
		}
		g.cells = g.cells[:n]
	}

	g.stopMoves()
	g.bind(0, n-1)
	g.syncObjects()
	g.items.Refresh()
	g.syncVisible()
}

// bind hands the items in [lo, hi] to the application for display.
func (g *Grid) bind(lo, hi int) {
	for i := lo; i <= hi && i < len(g.cells); i++ {
		if i < 0 {
			continue
		}
		if g.UpdateItem != nil {
			g.UpdateItem(i, g.cells[i].content)
		}
	}
}

func (g *Grid) syncObjects() {
	objects := make([]fyne.CanvasObject, len(g.cells))
	for i, c := range g.cells {
		objects[i] = c
	}
	g.items.Objects = objects
}

func (g *Grid) retire(c *Cell) {
	if m, ok := g.moves[c]; ok {
		m.Stop()
		delete(g.moves, c)
	}
	c.cancelPress()
	c.stopWiggle()
}

// stopMoves drops any glide in flight so the next layout puts every cell
// straight into its slot.
func (g *Grid) stopMoves() {
	for c, m := range g.moves {
		m.Stop()
		delete(g.moves, c)
	}
}

func (g *Grid) indexOf(c *Cell) (int, bool) {
	for i, cell := range g.cells {
		if cell == c {
			return i, true
		}
	}
	return -1, false
}

func (g *Grid) contentWidth() float32 {
	if w := g.items.Size().Width; w > 0 {
		return w
	}
	return g.scroll.Size().Width
}

func (g *Grid) slotFrame(i int) frame {
	return g.slots.slot(i, g.contentWidth())
}

// visibleIndexes lists, in order, the cells that are at least partly inside
// the scrolled viewport. Before the grid has a size every cell counts.
func (g *Grid) visibleIndexes() []int {
	top := g.scroll.Offset.Y
	height := g.scroll.Size().Height

	ids := make([]int, 0, len(g.cells))
	for i := range g.cells {
		if height > 0 {
			f := g.slotFrame(i)
			if f.bottom() <= top || f.pos.Y >= top+height {
				continue
			}
		}
		ids = append(ids, i)
	}
	return ids
}

// setEditing switches editing mode and tells every visible cell.
func (g *Grid) setEditing(editing bool) {
	g.editing = editing
	for _, i := range g.visibleIndexes() {
		g.cells[i].SetEditing(editing)
	}
}

// syncVisible brings cells that scrolled into view in line with the editing
// mode and pauses the sway of those that left it.
func (g *Grid) syncVisible() {
	visible := make(map[int]bool, len(g.cells))
	for _, i := range g.visibleIndexes() {
		visible[i] = true
	}

	for i, c := range g.cells {
		if c == g.session.cell {
			continue
		}
		if visible[i] {
			c.SetEditing(g.editing)
		} else {
			c.editing = g.editing
			c.stopWiggle()
			c.applyVisibility()
		}
	}
}

func (g *Grid) backgroundTapped() {
	if g.Dragging() || time.Since(g.lastDragEnd) < tapGuard {
		return
	}
	if !g.editing {
		return
	}
	g.ExitEditingMode()
}

// Delete asks the application to delete the item at id, then mirrors the
// deletion if the data shrank. It does nothing while a drag is in progress
// or when id is out of range.
func (g *Grid) Delete(id int) {
	if g.Dragging() || id < 0 || id >= len(g.cells) || id >= g.length() {
		return
	}

	if g.OnDelete != nil {
		g.OnDelete(id)
	}

	if g.length() == len(g.cells)-1 {
		g.retire(g.cells[id])
		g.cells = append(g.cells[:id], g.cells[id+1:]...)
	}
	g.Refresh()
}

func (g *Grid) deleteCell(c *Cell) {
	if i, ok := g.indexOf(c); ok {
		g.Delete(i)
	}
}

func (g *Grid) frameOf(c *Cell) (frame, bool) {
	i, ok := g.indexOf(c)
	if !ok {
		return frame{}, false
	}
	return g.slotFrame(i), true
}

func (g *Grid) contentPosition(abs fyne.Position) fyne.Position {
	origin := fyne.CurrentApp().Driver().AbsolutePositionForObject(g.overlay)
	return abs.Subtract(origin)
}

// forwardDrag hands a pan that did not become a drag to the scroller.
// Desktop scrollers only react to the wheel, so there the grid scrolls itself.
func (g *Grid) forwardDrag(e *fyne.DragEvent) {
	if g.lock.locked {
		return
	}
	if d, ok := fyne.CanvasObject(g.scroll).(fyne.Draggable); ok {
		d.Dragged(e)
		return
	}
	g.scrollTo(g.scroll.Offset.Y - e.Dragged.DY)
}

func (g *Grid) forwardDragEnd() {
	if g.lock.locked {
		return
	}
	if d, ok := fyne.CanvasObject(g.scroll).(fyne.Draggable); ok {
		d.DragEnd()
	}
}

func (g *Grid) ownsDrag(c *Cell) bool {
	return c != nil && g.session.cell == c && g.session.active()
}

func (g *Grid) options() Options {
	return g.opts
}

func (g *Grid) animator() animator {
	return g.anim
}

var _ cellHost = (*Grid)(nil)
