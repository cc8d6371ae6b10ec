package reorder

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
)

func TestSlotLayout_ColumnsFitWidth(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	l := &slotLayout{cellSize: fyne.NewSquareSize(100)}
	pad := l.padding()

	if got := l.columns(50); got != 1 {
		t.Fatalf("expected at least one column, got %d", got)
	}
	if got := l.columns(3*100 + 2*pad); got != 3 {
		t.Fatalf("expected 3 columns when exactly 3 fit, got %d", got)
	}
	if got := l.columns(3*100 + 2*pad - 1); got != 2 {
		t.Fatalf("expected 2 columns when 3 do not fit, got %d", got)
	}
}

func TestSlotLayout_SlotsFillRowsFirst(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	l := &slotLayout{cellSize: fyne.NewSquareSize(100)}
	pad := l.padding()
	width := 3*100 + 2*pad

	if got, want := l.slot(2, width).pos, fyne.NewPos(2*(100+pad), 0); got != want {
		t.Fatalf("expected slot 2 at %v, got %v", want, got)
	}
	if got, want := l.slot(4, width).pos, fyne.NewPos(100+pad, 100+pad); got != want {
		t.Fatalf("expected slot 4 at %v, got %v", want, got)
	}
}

func TestSlotLayout_LayoutAndMinSize(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	l := &slotLayout{cellSize: fyne.NewSize(80, 60)}
	pad := l.padding()
	width := 2*80 + pad
	l.viewport = func() float32 { return width }

	objects := make([]fyne.CanvasObject, 5)
	for i := range objects {
		objects[i] = canvas.NewRectangle(nil)
	}
	l.Layout(objects, fyne.NewSize(width, 500))

	for i, o := range objects {
		f := l.slot(i, width)
		if o.Position() != f.pos || o.Size() != f.size {
			t.Fatalf("expected object %d at %v size %v, got %v size %v", i, f.pos, f.size, o.Position(), o.Size())
		}
	}

	// 5 items in 2 columns need 3 rows
	if got, want := l.MinSize(objects), fyne.NewSize(80, 3*60+2*pad); got != want {
		t.Fatalf("expected min size %v, got %v", want, got)
	}
	if got := l.MinSize(nil); got != fyne.NewSize(0, 0) {
		t.Fatalf("expected empty min size, got %v", got)
	}
}
