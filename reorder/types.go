package reorder

import (
	"math"
	"time"

	"fyne.io/fyne/v2"
)

const (
	defaultCellSize         = 100
	defaultLiftScale        = 1.2
	defaultLiftDuration     = 100 * time.Millisecond
	defaultSettleDuration   = 300 * time.Millisecond
	defaultMoveDuration     = 250 * time.Millisecond
	defaultWigglePeriod     = 150 * time.Millisecond
	defaultLongPressDelay   = 500 * time.Millisecond
	defaultPressSlop        = 8
	defaultAutoScrollMargin = 100
	defaultWiggleAngle      = math.Pi / 72 // 2.5 degrees

	// taps landing this soon after a drag finished belong to the drag
	tapGuard = 200 * time.Millisecond

	autoScrollInterval = 30 * time.Millisecond

	liftScaleKey      = "xreorder:liftScale"
	liftDurationKey   = "xreorder:liftDurationMs"
	settleDurationKey = "xreorder:settleDurationMs"
	longPressDelayKey = "xreorder:longPressDelayMs"
	wiggleAngleKey    = "xreorder:wiggleAngle"
)

// DragObserver receives the drag lifecycle of a Cell.
// A Grid is the observer of every Cell it creates; it does not own them.
type DragObserver interface {
	WillBeginDragging(c *Cell)
	DidDrag(c *Cell, center fyne.Position)
	DidEndDragging(c *Cell)
}

// cellHost is everything a Cell needs from the container it lives in.
type cellHost interface {
	DragObserver

	// frameOf returns the settled slot of c in content coordinates.
	frameOf(c *Cell) (frame, bool)
	// ownsDrag reports whether c holds the drag the host is running.
	ownsDrag(c *Cell) bool
	// contentPosition converts an absolute canvas position to content coordinates.
	contentPosition(abs fyne.Position) fyne.Position
	forwardDrag(e *fyne.DragEvent)
	forwardDragEnd()
	deleteCell(c *Cell)

	options() Options
	animator() animator
}

type gesturePhase int

const (
	gestureBegan gesturePhase = iota
	gestureChanged
	gestureEnded
	gestureCancelled
)

type dragPhase int

const (
	phaseIdle dragPhase = iota
	phaseLifting
	phaseLifted
	phaseSettling
)

func (p dragPhase) String() string {
	switch p {
	case phaseLifting:
		return "lifting"
	case phaseLifted:
		return "lifted"
	case phaseSettling:
		return "settling"
	default:
		return "idle"
	}
}
