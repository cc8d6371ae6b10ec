package reorder

import (
	"time"

	"fyne.io/fyne/v2"
)

type stopper interface {
	Stop()
}

// animator starts timed visual transitions.
// Ticks receive progress in [0, 1]. done runs once, after the final tick,
// and never runs for a transition that was stopped.
type animator interface {
	animate(d time.Duration, tick func(float32), done func()) stopper
	// loop runs tick back and forth until stopped.
	loop(d time.Duration, tick func(float32)) stopper
}

type fyneAnimator struct{}

func (fyneAnimator) animate(d time.Duration, tick func(float32), done func()) stopper {
	finished := false
	a := fyne.NewAnimation(d, func(p float32) {
		if finished {
			return
		}
		tick(p)
		if p >= 1 {
			finished = true
			if done != nil {
				done()
			}
		}
	})
	a.Curve = fyne.AnimationEaseInOut
	a.Start()
	return a
}

func (fyneAnimator) loop(d time.Duration, tick func(float32)) stopper {
	a := fyne.NewAnimation(d, tick)
	a.Curve = fyne.AnimationLinear
	a.AutoReverse = true
	a.RepeatCount = fyne.AnimationRepeatForever
	a.Start()
	return a
}
