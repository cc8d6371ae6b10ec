package reorder

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// slotLayout places objects in fixed size slots, left to right and then
// top to bottom, separated by the theme padding.
type slotLayout struct {
	cellSize fyne.Size

	// viewport reports the width available to the grid. The layout's own
	// MinSize cannot know it, but the scroll container needs the height of
	// every row to size its content.
	viewport func() float32

	// gliding reports objects that are animating to their slot; layout
	// sizes them but leaves their position to the animation.
	gliding func(fyne.CanvasObject) bool
}

func (l *slotLayout) padding() float32 {
	return theme.Padding()
}

func (l *slotLayout) columns(width float32) int {
	pad := l.padding()
	cols := int((width + pad) / (l.cellSize.Width + pad))
	if cols < 1 {
		return 1
	}
	return cols
}

func (l *slotLayout) rows(count int, width float32) int {
	if count <= 0 {
		return 0
	}
	cols := l.columns(width)
	return (count + cols - 1) / cols
}

// slot returns the frame of the slot at index i for the given width.
func (l *slotLayout) slot(i int, width float32) frame {
	pad := l.padding()
	cols := l.columns(width)
	row, col := i/cols, i%cols
	return newFrame(
		float32(col)*(l.cellSize.Width+pad),
		float32(row)*(l.cellSize.Height+pad),
		l.cellSize.Width,
		l.cellSize.Height,
	)
}

func (l *slotLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	for i, o := range objects {
		f := l.slot(i, size.Width)
		o.Resize(f.size)
		if l.gliding != nil && l.gliding(o) {
			continue
		}
		o.Move(f.pos)
	}
}

func (l *slotLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) == 0 {
		return fyne.NewSize(0, 0)
	}

	var width float32
	if l.viewport != nil {
		width = l.viewport()
	}
	rows := l.rows(len(objects), width)
	height := float32(rows)*l.cellSize.Height + float32(rows-1)*l.padding()
	return fyne.NewSize(l.cellSize.Width, height)
}
