package reorder

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// scrollLock sits above the scroll container and swallows wheel and
// touchpad scrolling while it is engaged. When released it reports itself
// invisible so events reach the scroller again.
type scrollLock struct {
	widget.BaseWidget
	locked bool
}

func newScrollLock() *scrollLock {
	s := &scrollLock{}
	s.ExtendBaseWidget(s)
	return s
}

func (s *scrollLock) Visible() bool {
	if !s.BaseWidget.Visible() {
		return false
	}
	return s.locked
}

func (s *scrollLock) setLocked(locked bool) {
	s.locked = locked
}

func (s *scrollLock) Scrolled(*fyne.ScrollEvent) {}

func (s *scrollLock) CreateRenderer() fyne.WidgetRenderer {
	return &scrollLockRenderer{}
}

var _ fyne.Scrollable = (*scrollLock)(nil)

type scrollLockRenderer struct{}

func (r *scrollLockRenderer) Layout(fyne.Size) {}
func (r *scrollLockRenderer) MinSize() fyne.Size {
	return fyne.NewSize(0, 0)
}
func (r *scrollLockRenderer) Refresh()                     {}
func (r *scrollLockRenderer) Objects() []fyne.CanvasObject { return nil }
func (r *scrollLockRenderer) Destroy()                     {}
