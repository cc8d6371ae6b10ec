package reorder

import (
	"reflect"
	"testing"

	"fyne.io/fyne/v2"
)

func TestOverlapTarget_RequiresMoreThanHalfOnBothAxes(t *testing.T) {
	moving := newFrame(0, 0, 100, 100)

	// 49% of the width, 90% of the height
	narrow := newFrame(51, 10, 100, 100)
	if got := overlapTarget(moving, []frame{narrow}); got != -1 {
		t.Fatalf("expected no target for a 49%%/90%% overlap, got %d", got)
	}

	// 51% on both axes
	wide := newFrame(49, 49, 100, 100)
	if got := overlapTarget(moving, []frame{wide}); got != 0 {
		t.Fatalf("expected target 0 for a 51%%/51%% overlap, got %d", got)
	}

	// exactly half is not enough
	half := newFrame(50, 0, 100, 100)
	if got := overlapTarget(moving, []frame{half}); got != -1 {
		t.Fatalf("expected no target for an exact 50%% overlap, got %d", got)
	}
}

func TestOverlapTarget_FirstMatchWins(t *testing.T) {
	moving := newFrame(100, 0, 100, 100)
	candidates := []frame{
		newFrame(0, 0, 100, 100),   // no overlap
		newFrame(140, 0, 100, 100), // 60%
		newFrame(100, 0, 100, 100), // 100%, but later
	}

	if got := overlapTarget(moving, candidates); got != 1 {
		t.Fatalf("expected the first qualifying candidate (1), got %d", got)
	}
}

func TestOverlapTarget_NoCandidates(t *testing.T) {
	if got := overlapTarget(newFrame(0, 0, 10, 10), nil); got != -1 {
		t.Fatalf("expected -1, got %d", got)
	}
}

func TestIntersect_DisjointFramesHaveNoArea(t *testing.T) {
	in := intersect(newFrame(0, 0, 10, 10), newFrame(20, 20, 10, 10))
	if in.size.Width != 0 || in.size.Height != 0 {
		t.Fatalf("expected empty intersection, got %v", in.size)
	}

	in = intersect(newFrame(0, 0, 10, 10), newFrame(5, 2, 10, 10))
	if in.size != fyne.NewSize(5, 8) {
		t.Fatalf("expected 5x8 intersection, got %v", in.size)
	}
}

func TestFrame_ExpandYAndCenter(t *testing.T) {
	f := newFrame(10, 200, 100, 100)

	e := f.expandY(100)
	if e.pos.Y != 150 || e.size.Height != 200 || e.pos.X != 10 || e.size.Width != 100 {
		t.Fatalf("unexpected expanded frame %+v", e)
	}

	moved := f.withCenter(fyne.NewPos(0, 0))
	if moved.pos != fyne.NewPos(-50, -50) || moved.size != f.size {
		t.Fatalf("unexpected recentred frame %+v", moved)
	}

	big := f.scaled(1.5)
	if big.center() != f.center() || big.size != fyne.NewSize(150, 150) {
		t.Fatalf("expected scale around the center, got %+v", big)
	}
}

func TestMoveItem_ShiftsOthersByOne(t *testing.T) {
	s := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	got := MoveItem(s, 3, 0)
	want := []int{3, 0, 1, 2, 4, 5, 6, 7, 8, 9}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("move 3->0: got %v, want %v", got, want)
	}

	letters := []string{"A", "B", "C", "D", "E"}
	MoveItem(letters, 0, 3)
	if want := []string{"B", "C", "D", "A", "E"}; !reflect.DeepEqual(letters, want) {
		t.Fatalf("move 0->3: got %v, want %v", letters, want)
	}
}

func TestMoveItem_OutOfRangeIsNoOp(t *testing.T) {
	s := []int{1, 2, 3}
	for _, c := range [][2]int{{-1, 0}, {0, 3}, {3, 0}, {1, 1}} {
		MoveItem(s, c[0], c[1])
		if !reflect.DeepEqual(s, []int{1, 2, 3}) {
			t.Fatalf("move %d->%d changed the slice: %v", c[0], c[1], s)
		}
	}
}
