package timepicker

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	// ErrEmptyRange is returned when a dial's configured range holds no
	// selectable value.
	ErrEmptyRange = errors.New("timepicker: empty value range")

	// ErrOutOfRange is returned for values outside a dial's [Min, Max)
	// range, and by TimePicker.SetTime for out-of-range times.
	ErrOutOfRange = errors.New("timepicker: value out of range")
)

// Dial is one circular selector control for a discrete numeric range. The
// hour and minute dials are the same type under different configurations;
// see NewHourDial and NewMinuteDial.
type Dial struct {
	cfg AngleMap

	x, y, w, h float64
	padding    float64

	selected int
	captured bool

	// Transition state, driven by the picker's switch animation.
	scale, alpha float64

	// Style. Live-updatable; read at draw time.
	Color         color.RGBA
	SelectorColor color.RGBA
	SelectorAlpha float64

	labelFormat string
	ticks       []tick
	ticksDirty  bool

	onSelected []func(int)
}

// tick is one visible labeled position on the dial.
type tick struct {
	value int
	label string
}

// NewDial returns a dial for the given mapping, with the selection at the
// range minimum.
func NewDial(cfg AngleMap) *Dial {
	return &Dial{
		cfg:           cfg,
		selected:      cfg.Min,
		padding:       defaultPadding,
		scale:         1,
		alpha:         1,
		Color:         DefaultColor,
		SelectorColor: DefaultSelectorColor,
		SelectorAlpha: DefaultSelectorAlpha,
		labelFormat:   "%d",
		ticksDirty:    true,
	}
}

// NewHourDial returns the 12-hour dial: values 1 through 12 running
// clockwise with 12 at the top.
func NewHourDial() *Dial {
	cfg := AngleMap{
		Min: 1, Max: 13, Stride: 1,
		Dir:         Clockwise,
		InnerRadius: defaultInnerRadius,
		OuterRadius: defaultOuterRadius,
	}
	cfg.StartAngle = 360/float64(cfg.ShownItems())/2 - 90
	return NewDial(cfg)
}

// NewMinuteDial returns the minute dial: values 0 through 59 running
// clockwise with 00 at the top and a tick every five minutes.
func NewMinuteDial() *Dial {
	cfg := AngleMap{
		Min: 0, Max: 60, Stride: 5,
		Dir:         Clockwise,
		InnerRadius: defaultInnerRadius,
		OuterRadius: defaultOuterRadius,
	}
	cfg.StartAngle = -360/float64(cfg.ShownItems())/2 - 90
	d := NewDial(cfg)
	d.labelFormat = "%02d"
	return d
}

// Config returns the dial's angle mapping.
func (d *Dial) Config() AngleMap { return d.cfg }

// SetConfig replaces the dial's angle mapping. Tick labels are regenerated
// on the next frame, so several changes within one update coalesce into a
// single pass. A selection that falls out of the new range snaps to Min.
func (d *Dial) SetConfig(cfg AngleMap) {
	d.cfg = cfg
	d.ticksDirty = true
	if d.selected < cfg.Min || d.selected >= cfg.Max {
		d.selected = cfg.Min
	}
}

// NumberFormat returns the fmt verb tick labels are formatted with.
func (d *Dial) NumberFormat() string { return d.labelFormat }

// SetNumberFormat changes the tick label format, e.g. "%02d" for zero
// padding. Labels are regenerated on the next frame, like SetConfig.
func (d *Dial) SetNumberFormat(format string) {
	if format == d.labelFormat {
		return
	}
	d.labelFormat = format
	d.ticksDirty = true
}

// SetBounds places the dial's drawable area in screen coordinates.
func (d *Dial) SetBounds(x, y, w, h float64) {
	d.x, d.y, d.w, d.h = x, y, w, h
}

// Selected returns the currently selected value.
func (d *Dial) Selected() int { return d.selected }

// SetSelected selects v, which must lie in [Min, Max). Listeners registered
// with OnSelected fire only when the value actually changes.
func (d *Dial) SetSelected(v int) error {
	if d.cfg.Max <= d.cfg.Min {
		return ErrEmptyRange
	}
	if v < d.cfg.Min || v >= d.cfg.Max {
		return fmt.Errorf("%w: %d not in [%d, %d)", ErrOutOfRange, v, d.cfg.Min, d.cfg.Max)
	}
	if v == d.selected {
		return nil
	}
	d.selected = v
	for _, fn := range d.onSelected {
		if fn != nil {
			fn(v)
		}
	}
	return nil
}

// OnSelected registers fn to run on every selection change and returns a
// function that unregisters it. Freed slots are reused, so register/remove
// cycles do not grow the listener list.
func (d *Dial) OnSelected(fn func(int)) (remove func()) {
	i := listenerSlot(len(d.onSelected), func(j int) bool { return d.onSelected[j] == nil })
	if i == len(d.onSelected) {
		d.onSelected = append(d.onSelected, fn)
	} else {
		d.onSelected[i] = fn
	}
	removed := false
	return func() {
		if removed {
			return
		}
		removed = true
		d.onSelected[i] = nil
	}
}

// listenerSlot returns the first index for which free reports true, or n.
func listenerSlot(n int, free func(int) bool) int {
	for i := 0; i < n; i++ {
		if free(i) {
			return i
		}
	}
	return n
}

// PointerDown begins a drag interaction. It reports whether the point hit
// the dial; on a hit the dial captures the pointer and selects the value
// under it.
func (d *Dial) PointerDown(x, y float64) bool {
	if x < d.x || x > d.x+d.w || y < d.y || y > d.y+d.h {
		return false
	}
	d.captured = true
	cx, cy := d.center()
	_ = d.SetSelected(d.cfg.ValueAt(x, y, cx, cy))
	return true
}

// PointerMove updates the selection while the dial holds pointer capture.
// Every move recomputes; there is no debouncing.
func (d *Dial) PointerMove(x, y float64) {
	if !d.captured {
		return
	}
	cx, cy := d.center()
	_ = d.SetSelected(d.cfg.ValueAt(x, y, cx, cy))
}

// PointerUp ends the interaction. Releasing capture not held is a no-op.
func (d *Dial) PointerUp() { d.captured = false }

// PointerCancel releases capture without touching the selection, for hosts
// that cancel an interaction instead of finishing it.
func (d *Dial) PointerCancel() { d.captured = false }

// step runs once per frame and consumes the coalesced tick-regeneration
// flag.
func (d *Dial) step() {
	if d.ticksDirty {
		d.genTicks()
		d.ticksDirty = false
	}
}

func (d *Dial) genTicks() {
	d.ticks = d.ticks[:0]
	stride := d.cfg.Stride
	if stride < 1 {
		stride = 1
	}
	for i := d.cfg.Min; i < d.cfg.Max; i++ {
		if (i-d.cfg.Min)%stride != 0 {
			continue
		}
		d.ticks = append(d.ticks, tick{value: i, label: fmt.Sprintf(d.labelFormat, i)})
	}
}

func (d *Dial) center() (cx, cy float64) {
	return d.x + d.w/2, d.y + d.h/2
}

func (d *Dial) radius() float64 {
	r := math.Min(d.w, d.h)/2 - d.padding
	if r < 0 {
		r = 0
	}
	return r
}

// highlight is the derived geometry of the selection indicator.
type highlight struct {
	cx, cy  float64 // dial center
	sx, sy  float64 // selected value position
	discR   float64 // translucent selection disc
	dotR    float64 // selector dot inside the disc
	centerR float64 // dot at the dial center
	// dotAlpha is 0 when the selection sits on a visible tick and 1
	// otherwise, flagging a value with no label of its own.
	dotAlpha float64
}

func (d *Dial) highlightGeom(radius float64) highlight {
	cx, cy := d.center()
	sx, sy := d.cfg.PosFor(d.selected, cx, cy, radius)
	discR := radius * (d.cfg.OuterRadius - d.cfg.InnerRadius) / 2
	hl := highlight{
		cx: cx, cy: cy,
		sx: sx, sy: sy,
		discR:   discR,
		dotR:    discR * 0.3,
		centerR: discR * 0.1,
	}
	if !d.cfg.onTick(d.selected) {
		hl.dotAlpha = 1
	}
	return hl
}

// Draw renders the dial: selection disc, radius line, selector and center
// dots, then the tick labels. The transition scale is applied about the
// dial center and the transition alpha premultiplies every color.
func (d *Dial) Draw(screen *ebiten.Image) {
	if d.alpha <= 0 || d.cfg.Items() <= 0 {
		return
	}
	r := d.radius() * d.scale
	hl := d.highlightGeom(r)

	vector.DrawFilledCircle(screen, float32(hl.sx), float32(hl.sy), float32(hl.discR),
		scaleAlpha(d.SelectorColor, d.SelectorAlpha*d.alpha), true)
	vector.StrokeLine(screen, float32(hl.cx), float32(hl.cy), float32(hl.sx), float32(hl.sy), 2,
		scaleAlpha(d.SelectorColor, d.alpha), true)
	if hl.dotAlpha > 0 {
		vector.DrawFilledCircle(screen, float32(hl.sx), float32(hl.sy), float32(hl.dotR),
			scaleAlpha(d.SelectorColor, hl.dotAlpha*d.alpha), true)
	}
	vector.DrawFilledCircle(screen, float32(hl.cx), float32(hl.cy), float32(hl.centerR),
		scaleAlpha(d.Color, d.alpha), true)

	face := faceOf(r * (d.cfg.OuterRadius - d.cfg.InnerRadius) * 0.5)
	labelColor := scaleAlpha(d.Color, d.alpha)
	for _, tk := range d.ticks {
		tx, ty := d.cfg.PosFor(tk.value, hl.cx, hl.cy, r)
		w, h := text.Measure(tk.label, face, 0)
		op := &text.DrawOptions{}
		op.GeoM.Translate(tx-w/2, ty-h/2)
		op.ColorScale.ScaleWithColor(labelColor)
		text.Draw(screen, tk.label, face, op)
	}
}

// scaleAlpha multiplies a color by an opacity in [0, 1], keeping it
// premultiplied.
func scaleAlpha(c color.RGBA, a float64) color.RGBA {
	if a <= 0 {
		return color.RGBA{}
	}
	if a > 1 {
		a = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
