package reorder

import "time"

type fakeTransition struct {
	d       time.Duration
	tick    func(float32)
	done    func()
	looping bool
	stops   int
	ended   bool
}

func (t *fakeTransition) Stop() { t.stops++ }

func (t *fakeTransition) pending() bool {
	return !t.looping && !t.ended && t.stops == 0
}

// fakeAnimator records transitions instead of running them so tests can
// step through them.
type fakeAnimator struct {
	started []*fakeTransition
}

func (f *fakeAnimator) animate(d time.Duration, tick func(float32), done func()) stopper {
	t := &fakeTransition{d: d, tick: tick, done: done}
	f.started = append(f.started, t)
	return t
}

func (f *fakeAnimator) loop(d time.Duration, tick func(float32)) stopper {
	t := &fakeTransition{d: d, tick: tick, looping: true}
	f.started = append(f.started, t)
	return t
}

// finish runs every pending transition to its end, including the ones
// started by completions along the way.
func (f *fakeAnimator) finish() {
	for {
		progressed := false
		for _, t := range f.started {
			if !t.pending() {
				continue
			}
			t.ended = true
			t.tick(1)
			if t.done != nil {
				t.done()
			}
			progressed = true
		}
		if !progressed {
			return
		}
	}
}

func (f *fakeAnimator) pendingCount() int {
	n := 0
	for _, t := range f.started {
		if t.pending() {
			n++
		}
	}
	return n
}

func (f *fakeAnimator) loops() []*fakeTransition {
	var out []*fakeTransition
	for _, t := range f.started {
		if t.looping {
			out = append(out, t)
		}
	}
	return out
}

func (f *fakeAnimator) runningLoops() int {
	n := 0
	for _, t := range f.loops() {
		if t.stops == 0 {
			n++
		}
	}
	return n
}
