package reorder

import (
	"image"

	"fyne.io/fyne/v2"
	"golang.org/x/image/draw"
)

// snapshot captures what obj currently looks like on screen, resampled to
// scale times its size so it stays sharp when lifted.
// It returns nil when obj is not on a canvas or is scrolled out of view.
func snapshot(obj fyne.CanvasObject, scale float32) image.Image {
	d := fyne.CurrentApp().Driver()
	c := d.CanvasForObject(obj)
	if c == nil {
		return nil
	}
	shot := c.Capture()
	if shot == nil {
		return nil
	}

	pos := d.AbsolutePositionForObject(obj)
	size := obj.Size()
	s := c.Scale()
	src := image.Rect(
		int(pos.X*s), int(pos.Y*s),
		int((pos.X+size.Width)*s), int((pos.Y+size.Height)*s),
	).Intersect(shot.Bounds())
	if src.Empty() {
		return nil
	}

	w := int(float32(src.Dx()) * scale)
	h := int(float32(src.Dy()) * scale)
	if w <= 0 || h <= 0 {
		return nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), shot, src, draw.Over, nil)
	return dst
}
