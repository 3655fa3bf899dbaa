package segring_test

import (
	"errors"
	"testing"

	"github.com/momentics/largering/api"
	"github.com/momentics/largering/segring"
)

func TestZeroValueDefaults(t *testing.T) {
	var r segring.Ring[int]

	if !r.Empty() || r.Full() {
		t.Error("zero-value ring must be empty and not full")
	}
	if r.Len() != 0 || r.MaxSize() != 0 || r.SegmentSize() != 0 ||
		r.SegmentCount() != 0 || r.UsedSegments() != 0 {
		t.Error("zero-value ring must report zero sizes")
	}
	if r.FixedSegmentAllocation() {
		t.Error("zero-value ring must not report fixed allocation")
	}
	r.Clear() // must be a safe no-op
}

func TestSingleSlotBack(t *testing.T) {
	r := segring.NewWithSegments[int](1, 1)

	if r.MaxSize() != 1 || r.SegmentSize() != 1 || r.SegmentCount() != 1 {
		t.Fatalf("unexpected configuration: max=%d segsize=%d segs=%d",
			r.MaxSize(), r.SegmentSize(), r.SegmentCount())
	}
	if r.UsedSegments() != 0 {
		t.Error("no segment may be materialized before the first write")
	}

	r.PushBack(1)
	if r.Empty() || !r.Full() || r.Len() != 1 {
		t.Fatal("expected a full single-item ring")
	}
	if *r.Front() != 1 || *r.Back() != 1 {
		t.Error("front and back must both be the single item")
	}

	r.PushBack(2) // overwrites the only item
	if r.Len() != 1 || *r.Front() != 2 || *r.Back() != 2 {
		t.Error("push at capacity must overwrite the oldest item")
	}

	r.PopBack()
	if !r.Empty() || r.Full() || r.Len() != 0 {
		t.Error("expected an empty ring after the pop")
	}

	r.PushBack(1)
	if r.Len() != 1 || *r.Front() != 1 {
		t.Error("ring must be reusable after draining")
	}
}

func TestSingleSlotFront(t *testing.T) {
	r := segring.NewWithSegments[int](1, 1)

	r.PushFront(1)
	if !r.Full() || *r.Front() != 1 || *r.Back() != 1 {
		t.Fatal("expected full ring holding 1")
	}
	r.PushFront(2)
	if r.Len() != 1 || *r.Front() != 2 || *r.Back() != 2 {
		t.Error("push_front at capacity must overwrite the back")
	}
	r.PopFront()
	if !r.Empty() {
		t.Error("expected empty ring")
	}
}

func TestAtOutOfRange(t *testing.T) {
	r := segring.NewWithSegments[int](1, 1)
	r.PushBack(7)

	if v, err := r.At(0); err != nil || *v != 7 {
		t.Fatalf("At(0) = %v, %v", v, err)
	}
	if _, err := r.At(1); !errors.Is(err, api.ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
	if _, err := r.At(-1); !errors.Is(err, api.ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange for negative index, got %v", err)
	}
}

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s must panic", name)
		}
	}()
	fn()
}

func TestPreconditionPanics(t *testing.T) {
	empty := segring.NewWithSegments[int](2, 2)
	expectPanic(t, "PopBack on empty", empty.PopBack)
	expectPanic(t, "PopFront on empty", empty.PopFront)
	expectPanic(t, "Front on empty", func() { empty.Front() })
	expectPanic(t, "Back on empty", func() { empty.Back() })

	var unconfigured segring.Ring[int]
	expectPanic(t, "ExtendBack on zero capacity", func() { unconfigured.ExtendBack() })
	expectPanic(t, "ExtendFront on zero capacity", func() { unconfigured.ExtendFront() })
}

// TestOperationSequence walks a 3x2 ring through mixed front/back
// operations, checking contents and that cached item addresses stay
// valid until their item is evicted.
func TestOperationSequence(t *testing.T) {
	r := segring.NewWithSegments[int](3, 2)

	checkContent := func(want ...int) {
		t.Helper()
		if r.Len() != len(want) {
			t.Fatalf("size = %d, want %d", r.Len(), len(want))
		}
		for i, w := range want {
			if got := *r.Get(i); got != w {
				t.Fatalf("item %d = %d, want %d", i, got, w)
			}
		}
	}

	if r.MaxSize() != 6 || r.SegmentSize() != 2 || r.SegmentCount() != 3 {
		t.Fatalf("unexpected configuration")
	}

	p1 := r.ExtendBack()
	if *p1 != 0 {
		t.Error("extended slot must arrive default-initialized")
	}
	if p1 != r.Front() || p1 != r.Back() {
		t.Error("single item must be both front and back")
	}
	if r.UsedSegments() != 1 {
		t.Errorf("used segments = %d, want 1", r.UsedSegments())
	}
	*r.Back() = 1
	checkContent(1)

	r.PushBack(2)
	p2 := r.Back()
	if r.UsedSegments() != 1 {
		t.Error("second item fits in the first segment")
	}
	checkContent(1, 2)

	r.PushBack(3)
	p3 := r.Back()
	if r.UsedSegments() != 2 {
		t.Error("third item must materialize a second segment")
	}
	checkContent(1, 2, 3)

	r.PushFront(6)
	p6 := r.Front()
	if r.UsedSegments() != 3 {
		t.Error("front push must materialize the wrap-around segment")
	}
	checkContent(6, 1, 2, 3)
	if p3 != r.Back() {
		t.Error("back item moved")
	}

	*r.ExtendFront() = 5
	p5 := r.Front()
	checkContent(5, 6, 1, 2, 3)

	*r.ExtendFront() = 4
	p4 := r.Front()
	if !r.Full() {
		t.Fatal("ring must be full at six items")
	}
	checkContent(4, 5, 6, 1, 2, 3)
	for i, p := range []*int{p4, p5, p6, p1, p2, p3} {
		if r.Get(i) != p {
			t.Fatalf("item %d no longer at its cached address", i)
		}
	}

	// Overflow at the front evicts the back item; its slot is reused
	// for the incoming front item.
	*r.ExtendFront() = 7
	checkContent(7, 4, 5, 6, 1, 2)
	if r.Front() != p3 {
		t.Error("incoming front item must reuse the evicted back slot")
	}
	if r.Back() != p2 {
		t.Error("back must now be the previous second-to-last item")
	}

	r.PopFront()
	checkContent(4, 5, 6, 1, 2)
	if r.Front() != p4 || r.Back() != p2 {
		t.Error("unexpected boundary items after pop")
	}

	r.PushBack(7)
	r.PushBack(8)
	checkContent(5, 6, 1, 2, 7, 8)
	if r.Front() != p5 || r.Back() != p4 {
		t.Error("unexpected boundary items after refill")
	}

	r.PopBack()
	checkContent(5, 6, 1, 2, 7)
	if r.Back() != p3 {
		t.Error("unexpected back item after pop")
	}

	r.Clear()
	if !r.Empty() || r.UsedSegments() != 0 {
		t.Error("clear must drain items and release segments")
	}
	if r.MaxSize() != 6 || r.SegmentSize() != 2 || r.SegmentCount() != 3 {
		t.Error("clear must keep the configuration")
	}
}

func TestFillBackWithOverwrite(t *testing.T) {
	r := segring.NewWithSegments[int](5, 3)
	total := 2*r.MaxSize() + r.SegmentSize()

	for i := 0; i < total; i++ {
		r.PushBack(i)
	}
	if r.Len() != r.MaxSize() {
		t.Fatalf("size = %d, want %d", r.Len(), r.MaxSize())
	}
	first := total - r.MaxSize()
	for i := 0; i < r.Len(); i++ {
		if *r.Get(i) != first+i {
			t.Fatalf("item %d = %d, want %d", i, *r.Get(i), first+i)
		}
	}
}

func TestFillFrontWithOverwrite(t *testing.T) {
	r := segring.NewWithSegments[int](5, 3)
	total := 2*r.MaxSize() + r.SegmentSize()

	for i := 0; i < total; i++ {
		r.PushFront(i)
	}
	if r.Len() != r.MaxSize() {
		t.Fatalf("size = %d, want %d", r.Len(), r.MaxSize())
	}
	for i := 0; i < r.Len(); i++ {
		if *r.Get(i) != total-1-i {
			t.Fatalf("item %d = %d, want %d", i, *r.Get(i), total-1-i)
		}
	}
}

// TestReferenceStability pins the address-stability contract: pointers
// stay valid while their item is neither evicted nor popped.
func TestReferenceStability(t *testing.T) {
	r := segring.NewWithSegments[string](4, 25)
	r.PushBack("keep")
	kept := r.Front()

	for i := 0; i < r.MaxSize()-1; i++ {
		r.PushBack("filler")
	}
	if r.Front() != kept || *kept != "keep" {
		t.Error("address of the first item changed while it stayed in the ring")
	}
}
