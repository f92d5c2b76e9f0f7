package timepicker

import (
	"errors"
	"testing"
)

func TestDialVariants(t *testing.T) {
	h := NewHourDial().Config()
	if h.Min != 1 || h.Max != 13 || h.Stride != 1 || h.Dir != Clockwise {
		t.Errorf("hour dial config = %+v, expected [1,13) stride 1 clockwise", h)
	}
	if want := 360.0/12/2 - 90; h.StartAngle != want {
		t.Errorf("hour dial start angle = %v, expected %v", h.StartAngle, want)
	}

	m := NewMinuteDial().Config()
	if m.Min != 0 || m.Max != 60 || m.Stride != 5 || m.Dir != Clockwise {
		t.Errorf("minute dial config = %+v, expected [0,60) stride 5 clockwise", m)
	}
	if want := -360.0/12/2 - 90; m.StartAngle != want {
		t.Errorf("minute dial start angle = %v, expected %v", m.StartAngle, want)
	}
}

func TestSetSelectedValidation(t *testing.T) {
	d := NewDial(AngleMap{Min: 3, Max: 3, Stride: 1})
	if err := d.SetSelected(3); !errors.Is(err, ErrEmptyRange) {
		t.Errorf("SetSelected on empty range: got %v, expected ErrEmptyRange", err)
	}

	h := NewHourDial()
	if err := h.SetSelected(0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("SetSelected(0): got %v, expected ErrOutOfRange", err)
	}
	if err := h.SetSelected(13); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("SetSelected(13): got %v, expected ErrOutOfRange", err)
	}
	if err := h.SetSelected(12); err != nil {
		t.Errorf("SetSelected(12): got %v, expected nil", err)
	}
	if got := h.Selected(); got != 12 {
		t.Errorf("Selected() = %d, expected 12", got)
	}
}

func TestOnSelected(t *testing.T) {
	d := NewMinuteDial()
	var got []int
	remove := d.OnSelected(func(v int) { got = append(got, v) })

	if err := d.SetSelected(15); err != nil {
		t.Fatalf("SetSelected(15): %v", err)
	}
	if err := d.SetSelected(15); err != nil { // same value, no event
		t.Fatalf("SetSelected(15) again: %v", err)
	}
	if err := d.SetSelected(30); err != nil {
		t.Fatalf("SetSelected(30): %v", err)
	}
	remove()
	if err := d.SetSelected(45); err != nil {
		t.Fatalf("SetSelected(45): %v", err)
	}

	want := []int{15, 30}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("selection events = %v, expected %v", got, want)
	}
}

func TestOnSelectedSlotReuse(t *testing.T) {
	d := NewMinuteDial()
	for i := 0; i < 20; i++ {
		remove := d.OnSelected(func(int) {})
		remove()
		remove() // removing twice must not clobber a reused slot
	}
	if len(d.onSelected) > 1 {
		t.Errorf("listener list grew to %d slots across register/remove cycles", len(d.onSelected))
	}

	var got []int
	removeA := d.OnSelected(func(v int) { got = append(got, v) })
	removeA()
	// B reuses A's freed slot; a stale remove of A must not detach it.
	removeB := d.OnSelected(func(v int) { got = append(got, v+100) })
	removeA()
	if err := d.SetSelected(30); err != nil {
		t.Fatal(err)
	}
	removeB()
	if len(got) != 1 || got[0] != 130 {
		t.Errorf("selection events = %v, expected [130]", got)
	}
}

func TestSetNumberFormat(t *testing.T) {
	h := NewHourDial()
	if got := h.NumberFormat(); got != "%d" {
		t.Fatalf("NumberFormat() = %q, expected %%d", got)
	}
	h.step()
	h.SetNumberFormat("%02d")
	if h.ticks[0].label != "1" {
		t.Errorf("labels regenerated synchronously: %q", h.ticks[0].label)
	}
	h.step()
	if h.ticks[0].label != "01" || h.ticks[11].label != "12" {
		t.Errorf("tick labels = %q ... %q, expected 01 ... 12", h.ticks[0].label, h.ticks[11].label)
	}
}

func TestPointerCapture(t *testing.T) {
	d := NewHourDial()
	d.SetBounds(0, 0, 200, 200)

	// A move from a pointer that never went down must not alter the
	// selection.
	d.PointerMove(100, 28)
	if got := d.Selected(); got != 1 {
		t.Errorf("Selected() after uncaptured move = %d, expected 1", got)
	}

	// Down outside the dial begins nothing.
	if d.PointerDown(500, 500) {
		t.Error("PointerDown outside the dial reported a hit")
	}
	d.PointerMove(100, 28)
	if got := d.Selected(); got != 1 {
		t.Errorf("Selected() after missed down = %d, expected 1", got)
	}

	// Down on the top of the ring selects 12, then moves track.
	if !d.PointerDown(100, 28) {
		t.Fatal("PointerDown inside the dial reported a miss")
	}
	if got := d.Selected(); got != 12 {
		t.Errorf("Selected() after down at top = %d, expected 12", got)
	}
	d.PointerMove(172, 100) // 3 o'clock
	if got := d.Selected(); got != 3 {
		t.Errorf("Selected() after move to the right = %d, expected 3", got)
	}

	// Release ends the interaction; further moves are ignored.
	d.PointerUp()
	d.PointerMove(100, 172)
	if got := d.Selected(); got != 3 {
		t.Errorf("Selected() after move past release = %d, expected 3", got)
	}
	d.PointerUp() // releasing capture not held is a no-op
}

func TestPointerCancel(t *testing.T) {
	d := NewMinuteDial()
	d.SetBounds(0, 0, 200, 200)

	d.PointerCancel() // cancel without capture is a no-op

	if !d.PointerDown(172, 100) { // 15 minutes
		t.Fatal("PointerDown inside the dial reported a miss")
	}
	if got := d.Selected(); got != 15 {
		t.Fatalf("Selected() = %d, expected 15", got)
	}
	d.PointerCancel()
	d.PointerMove(100, 172)
	if got := d.Selected(); got != 15 {
		t.Errorf("Selected() after cancelled move = %d, expected 15", got)
	}
}

func TestTickGeneration(t *testing.T) {
	m := NewMinuteDial()
	if len(m.ticks) != 0 {
		t.Fatalf("ticks generated before the first frame: %d", len(m.ticks))
	}
	m.step()
	if len(m.ticks) != 12 {
		t.Fatalf("minute dial has %d ticks, expected 12", len(m.ticks))
	}
	if m.ticks[0].label != "00" || m.ticks[1].label != "05" || m.ticks[11].label != "55" {
		t.Errorf("minute tick labels = %q, %q, ..., %q; expected 00, 05, ..., 55",
			m.ticks[0].label, m.ticks[1].label, m.ticks[11].label)
	}

	h := NewHourDial()
	h.step()
	if len(h.ticks) != 12 {
		t.Fatalf("hour dial has %d ticks, expected 12", len(h.ticks))
	}
	if h.ticks[0].label != "1" || h.ticks[11].label != "12" {
		t.Errorf("hour tick labels = %q ... %q, expected 1 ... 12", h.ticks[0].label, h.ticks[11].label)
	}
}

func TestTickRegenerationCoalesces(t *testing.T) {
	m := NewMinuteDial()
	m.step()

	cfg := m.Config()
	cfg.Stride = 10
	m.SetConfig(cfg)
	cfg.Max = 30
	m.SetConfig(cfg)

	// Both changes collapse into the next frame's single pass.
	if len(m.ticks) != 12 {
		t.Fatalf("ticks regenerated synchronously: %d", len(m.ticks))
	}
	m.step()
	if len(m.ticks) != 3 {
		t.Errorf("ticks after reconfig = %d, expected 3 (00, 10, 20)", len(m.ticks))
	}
}

func TestHighlightDotAlpha(t *testing.T) {
	m := NewMinuteDial()
	m.SetBounds(0, 0, 200, 200)

	if err := m.SetSelected(5); err != nil {
		t.Fatal(err)
	}
	if hl := m.highlightGeom(m.radius()); hl.dotAlpha != 0 {
		t.Errorf("dot alpha on a tick = %v, expected 0", hl.dotAlpha)
	}
	if err := m.SetSelected(7); err != nil {
		t.Fatal(err)
	}
	if hl := m.highlightGeom(m.radius()); hl.dotAlpha != 1 {
		t.Errorf("dot alpha off a tick = %v, expected 1", hl.dotAlpha)
	}
}
