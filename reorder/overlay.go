package reorder

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// dragOverlay is the scrolled content of a Grid: the cells plus the
// floating copy of the cell being dragged, drawn above them.
// Taps that no cell handles land here.
type dragOverlay struct {
	widget.BaseWidget
	content fyne.CanvasObject

	floating *canvas.Image

	onTapped func()
}

func newDragOverlay(content fyne.CanvasObject, onTapped func()) *dragOverlay {
	o := &dragOverlay{
		content:  content,
		floating: canvas.NewImageFromImage(nil),
		onTapped: onTapped,
	}
	o.floating.FillMode = canvas.ImageFillStretch
	o.floating.ScaleMode = canvas.ImageScaleSmooth
	o.floating.Hide()
	o.ExtendBaseWidget(o)
	return o
}

// showFloating puts img over f, scaled around the frame center.
func (o *dragOverlay) showFloating(img image.Image, f frame, scale float32) {
	o.floating.Image = img
	o.placeFloating(f, scale)
	o.floating.Show()
	o.floating.Refresh()
}

func (o *dragOverlay) placeFloating(f frame, scale float32) {
	visual := f.scaled(scale)
	o.floating.Resize(visual.size)
	o.floating.Move(visual.pos)
}

func (o *dragOverlay) hideFloating() {
	o.floating.Hide()
	o.floating.Image = nil
	o.floating.Refresh()
}

func (o *dragOverlay) floatingVisible() bool {
	return o.floating.Visible()
}

func (o *dragOverlay) Tapped(*fyne.PointEvent) {
	if o.onTapped != nil {
		o.onTapped()
	}
}

func (o *dragOverlay) CreateRenderer() fyne.WidgetRenderer {
	return &dragOverlayRenderer{o: o}
}

var _ fyne.Tappable = (*dragOverlay)(nil)

type dragOverlayRenderer struct {
	o *dragOverlay
}

func (r *dragOverlayRenderer) Layout(size fyne.Size) {
	r.o.content.Resize(size)
	r.o.content.Move(fyne.NewPos(0, 0))
}

func (r *dragOverlayRenderer) MinSize() fyne.Size {
	return r.o.content.MinSize()
}

func (r *dragOverlayRenderer) Refresh() {
	r.o.content.Refresh()
	r.o.floating.Refresh()
}

func (r *dragOverlayRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.o.content, r.o.floating}
}

func (r *dragOverlayRenderer) Destroy() {}
