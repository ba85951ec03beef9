package ui

import (
	"testing"

	"github.com/go-strut/strut/pkg/geometry"
)

func testFrame(pointer *geometry.Offset, down bool) Frame {
	return Frame{
		DT:          1.0 / 60,
		ScreenRect:  geometry.RectFromLTWH(0, 0, 800, 600),
		PointerPos:  pointer,
		PointerDown: down,
	}
}

func TestCursorAdvanceAndMinRectGrowth(t *testing.T) {
	ctx := NewContext()
	root := ctx.BeginFrame(testFrame(nil, false))

	first := root.AllocateRect(geometry.Size{Width: 100, Height: 20})
	second := root.AllocateRect(geometry.Size{Width: 150, Height: 30})
	ctx.EndFrame()

	if first.Top != 0 {
		t.Errorf("first rect top = %v, want 0", first.Top)
	}
	wantTop := first.Bottom + ctx.Style().ItemSpacing.Y
	if second.Top != wantTop {
		t.Errorf("second rect top = %v, want %v", second.Top, wantTop)
	}

	size := root.MinSize()
	if size.Width != 150 {
		t.Errorf("min width = %v, want 150 (the widest allocation)", size.Width)
	}
	if size.Height != second.Bottom {
		t.Errorf("min height = %v, want %v", size.Height, second.Bottom)
	}
}

func TestSetHeightReservesContentExtent(t *testing.T) {
	ctx := NewContext()
	root := ctx.BeginFrame(testFrame(nil, false))
	child := root.ChildUi(geometry.RectFromLTWH(0, 0, 100, 100))
	child.SetHeight(5000)
	ctx.EndFrame()

	if got := child.MinSize().Height; got != 5000 {
		t.Errorf("reserved height = %v, want 5000", got)
	}
}

func TestAutoIDSkipAhead(t *testing.T) {
	ctx := NewContext()

	// Frame one: child surface skips ahead 5, then rows 5.. allocate
	// auto IDs in order.
	root := ctx.BeginFrame(testFrame(nil, false))
	child := root.ChildUi(geometry.RectFromLTWH(0, 0, 100, 100))
	child.SkipAheadAutoIDs(5)
	var idAt10 [2]uint64
	for row := 5; row < 12; row++ {
		id := child.AutoID()
		if row == 10 {
			idAt10[0] = uint64(id)
		}
	}
	ctx.EndFrame()

	// Frame two: the visible window moved, the skip changes to 8,
	// but logical row 10 must keep its identity.
	root = ctx.BeginFrame(testFrame(nil, false))
	child = root.ChildUi(geometry.RectFromLTWH(0, 0, 100, 100))
	child.SkipAheadAutoIDs(8)
	for row := 8; row < 12; row++ {
		id := child.AutoID()
		if row == 10 {
			idAt10[1] = uint64(id)
		}
	}
	ctx.EndFrame()

	if idAt10[0] != idAt10[1] {
		t.Errorf("row 10 identity changed across frames: %v vs %v", idAt10[0], idAt10[1])
	}
}

func TestInteractCaptureLifecycle(t *testing.T) {
	ctx := NewContext()
	rect := geometry.RectFromLTWH(10, 10, 100, 100)
	inside := geometry.Offset{X: 50, Y: 50}

	// Hover without press.
	root := ctx.BeginFrame(testFrame(&inside, false))
	id := root.MakePersistentID("region")
	resp := root.Interact(rect, id, SenseClickAndDrag())
	ctx.EndFrame()
	if !resp.Hovered || resp.Dragged {
		t.Errorf("hover frame = %+v", resp)
	}
	if resp.InteractPointerPos() != nil {
		t.Error("no interaction pos without a press")
	}

	// Press captures.
	root = ctx.BeginFrame(testFrame(&inside, true))
	resp = root.Interact(rect, id, SenseClickAndDrag())
	ctx.EndFrame()
	if !resp.Dragged || resp.InteractPointerPos() == nil {
		t.Errorf("press frame = %+v", resp)
	}

	// Dragging outside the rect keeps the capture.
	outside := geometry.Offset{X: 500, Y: 500}
	root = ctx.BeginFrame(testFrame(&outside, true))
	resp = root.Interact(rect, id, SenseClickAndDrag())
	ctx.EndFrame()
	if !resp.Dragged {
		t.Error("capture should persist while the pointer stays down")
	}

	// Release clears the capture.
	root = ctx.BeginFrame(testFrame(&outside, false))
	resp = root.Interact(rect, id, SenseClickAndDrag())
	ctx.EndFrame()
	if resp.Dragged || resp.InteractPointerPos() != nil {
		t.Errorf("release frame = %+v", resp)
	}
}

func TestInteractFirstRegionWinsPress(t *testing.T) {
	ctx := NewContext()
	rect := geometry.RectFromLTWH(0, 0, 100, 100)
	pos := geometry.Offset{X: 50, Y: 50}

	root := ctx.BeginFrame(testFrame(&pos, true))
	inner := root.Interact(rect, root.MakePersistentID("inner"), SenseDrag())
	outer := root.Interact(rect, root.MakePersistentID("outer"), SenseDrag())
	ctx.EndFrame()

	if !inner.Dragged {
		t.Error("innermost region should win the press")
	}
	if outer.Dragged || outer.Hovered {
		t.Errorf("captured pointer should not engage the outer region: %+v", outer)
	}
}

func TestScrollDeltaConsumeAndZero(t *testing.T) {
	ctx := NewContext()
	frame := testFrame(nil, false)
	frame.ScrollDelta = geometry.Offset{Y: 30}
	ctx.BeginFrame(frame)

	if ctx.ScrollDelta().Y != 30 {
		t.Fatalf("delta = %v", ctx.ScrollDelta())
	}
	ctx.ConsumeScrollDelta()
	if ctx.ScrollDelta() != (geometry.Offset{}) {
		t.Error("consumed delta should read as zero for enclosing regions")
	}
	ctx.EndFrame()
}

func TestScrollTargetReadAndClear(t *testing.T) {
	ctx := NewContext()
	ctx.BeginFrame(testFrame(nil, false))

	ctx.ScrollToY(250, AlignCenter)
	target := ctx.TakeScrollTarget()
	if target == nil || target.Y != 250 || target.Align != AlignCenter {
		t.Fatalf("target = %+v", target)
	}
	if ctx.TakeScrollTarget() != nil {
		t.Error("target is one-shot; second take must be nil")
	}
	ctx.EndFrame()
}

func TestAlignFactor(t *testing.T) {
	if AlignTop.Factor() != 0 || AlignCenter.Factor() != 0.5 || AlignBottom.Factor() != 1 {
		t.Error("unexpected alignment factors")
	}
}

func TestChildIdentityStableAcrossFrames(t *testing.T) {
	ctx := NewContext()

	root := ctx.BeginFrame(testFrame(nil, false))
	a1 := root.ChildUi(geometry.RectFromLTWH(0, 0, 10, 10)).ID()
	b1 := root.ChildUi(geometry.RectFromLTWH(0, 20, 10, 10)).ID()
	ctx.EndFrame()

	root = ctx.BeginFrame(testFrame(nil, false))
	a2 := root.ChildUi(geometry.RectFromLTWH(0, 0, 10, 10)).ID()
	b2 := root.ChildUi(geometry.RectFromLTWH(0, 20, 10, 10)).ID()
	ctx.EndFrame()

	if a1 != a2 || b1 != b2 {
		t.Error("child identities should be stable for a stable build order")
	}
	if a1 == b1 {
		t.Error("sibling children need distinct identities")
	}
}
