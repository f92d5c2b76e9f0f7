package timepicker

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ActiveDial identifies which of the two dials is currently bound and
// visible.
type ActiveDial int

const (
	HoursDial ActiveDial = iota
	MinutesDial
)

// TimePicker composes an hour dial and a minute dial, exactly one of which
// is active at a time, and owns the canonical 24-hour time. The formatted
// time and AM/PM labels above the dial are tap targets: tapping the hour or
// minute part switches dials, tapping AM or PM toggles the half of day.
type TimePicker struct {
	x, y, w, h float64

	hours, minutes int
	am             bool
	active         ActiveDial

	hDial, mDial *Dial

	// mounted holds the dial(s) currently in the display container; two
	// only while a switch transition is running.
	mounted []*Dial
	tweens  []*tween

	// unbindSel detaches the active dial's selection listener before a
	// switch rebinds it to the other dial.
	unbindSel func()

	color         color.RGBA
	selectorColor color.RGBA
	selectorAlpha float64

	timeTpl, ampmTpl labelTemplate

	listeners []func(h, m int)
}

// New returns a picker at 00:00 with the hour dial mounted.
func New() *TimePicker {
	p := &TimePicker{
		am:            true,
		color:         DefaultColor,
		selectorColor: DefaultSelectorColor,
		selectorAlpha: DefaultSelectorAlpha,
		hDial:         NewHourDial(),
		mDial:         NewMinuteDial(),
	}
	p.timeTpl, _ = parseTemplate(DefaultTimeFormat, regionHours, regionMinutes)
	p.ampmTpl, _ = parseTemplate(DefaultAMPMFormat, regionAM, regionPM)
	p.setActive(HoursDial, false)
	return p
}

// SetBounds places the whole widget: the label row takes the top third, the
// dial container the rest.
func (p *TimePicker) SetBounds(x, y, w, h float64) {
	p.x, p.y, p.w, p.h = x, y, w, h
	bx, by, bw, bh := p.dialBounds()
	p.hDial.SetBounds(bx, by, bw, bh)
	p.mDial.SetBounds(bx, by, bw, bh)
}

func (p *TimePicker) dialBounds() (x, y, w, h float64) {
	labelH := p.h / 3
	return p.x, p.y + labelH + labelGap, p.w, p.h - labelH - labelGap
}

// Time returns the canonical time: hours in [0,23], minutes in [0,59].
func (p *TimePicker) Time() (hours, minutes int) { return p.hours, p.minutes }

// SetTime sets the canonical time, updates AM/PM to match, and pushes the
// equivalent value into the active dial.
func (p *TimePicker) SetTime(hours, minutes int) error {
	if hours < 0 || hours > 23 {
		return fmt.Errorf("%w: hours %d", ErrOutOfRange, hours)
	}
	if minutes < 0 || minutes > 59 {
		return fmt.Errorf("%w: minutes %d", ErrOutOfRange, minutes)
	}
	p.am = hours < 12
	p.setCanonical(hours, minutes)
	p.syncActiveDial()
	return nil
}

// AM reports whether the time is in the first half of the day.
func (p *TimePicker) AM() bool { return p.am }

// SetAM toggles the half of day, shifting hours by twelve so the displayed
// 12-hour value is unchanged. Toggling back restores the original hours.
func (p *TimePicker) SetAM(am bool) {
	if am == p.am {
		return
	}
	p.am = am
	h := p.hours
	if am && h >= 12 {
		h -= 12
	} else if !am && h < 12 {
		h += 12
	}
	p.setCanonical(h, p.minutes)
	p.syncActiveDial()
}

// OnTimeChanged registers fn to run whenever the canonical time changes and
// returns a function that unregisters it. Freed slots are reused, so
// register/remove cycles do not grow the listener list.
func (p *TimePicker) OnTimeChanged(fn func(hours, minutes int)) (remove func()) {
	i := listenerSlot(len(p.listeners), func(j int) bool { return p.listeners[j] == nil })
	if i == len(p.listeners) {
		p.listeners = append(p.listeners, fn)
	} else {
		p.listeners[i] = fn
	}
	removed := false
	return func() {
		if removed {
			return
		}
		removed = true
		p.listeners[i] = nil
	}
}

// Active returns the currently active dial.
func (p *TimePicker) Active() ActiveDial { return p.active }

// SetActive switches to the given dial with the crossfade/scale transition.
// Re-selecting the active dial is a no-op.
func (p *TimePicker) SetActive(d ActiveDial) { p.setActive(d, true) }

// SetColor sets the base color used for tick labels, the unhighlighted
// label halves, and the center dot.
func (p *TimePicker) SetColor(c color.RGBA) {
	p.color = c
	p.hDial.Color = c
	p.mDial.Color = c
}

// SetSelectorColor sets the highlight color used for the selection
// indicator and the highlighted label halves.
func (p *TimePicker) SetSelectorColor(c color.RGBA) {
	p.selectorColor = c
	p.hDial.SelectorColor = c
	p.mDial.SelectorColor = c
}

// SetSelectorAlpha sets the opacity of the translucent selection disc.
func (p *TimePicker) SetSelectorAlpha(a float64) {
	p.selectorAlpha = a
	p.hDial.SelectorAlpha = a
	p.mDial.SelectorAlpha = a
}

// SetTimeFormat replaces the time label template. It must contain the
// {hours} and {minutes} tap regions.
func (p *TimePicker) SetTimeFormat(format string) error {
	tpl, err := parseTemplate(format, regionHours, regionMinutes)
	if err != nil {
		return err
	}
	p.timeTpl = tpl
	return nil
}

// SetAMPMFormat replaces the AM/PM label template. It must contain the
// {am} and {pm} tap regions.
func (p *TimePicker) SetAMPMFormat(format string) error {
	tpl, err := parseTemplate(format, regionAM, regionPM)
	if err != nil {
		return err
	}
	p.ampmTpl = tpl
	return nil
}

// Update advances the switch animation and routes mouse input. Call it once
// per frame from the host game's Update.
func (p *TimePicker) Update() {
	p.step(1.0 / 60.0)
	p.handleInput()
}

// step advances time-driven state by dt seconds: running tweens and the
// dials' coalesced tick regeneration.
func (p *TimePicker) step(dt float64) {
	live := p.tweens[:0]
	for _, tw := range p.tweens {
		tw.step(dt)
		if !tw.done {
			live = append(live, tw)
		}
	}
	p.tweens = live
	p.hDial.step()
	p.mDial.step()
}

func (p *TimePicker) handleInput() {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	active := p.dial(p.active)
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		if region := p.regionAt(x, y); region != "" {
			p.tapRegion(region)
		} else {
			active.PointerDown(x, y)
		}
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		active.PointerMove(x, y)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		active.PointerUp()
	}
}

// Draw renders the labels and the mounted dial(s). During a transition the
// outgoing dial draws first so the incoming one lands on top.
func (p *TimePicker) Draw(screen *ebiten.Image) {
	for _, seg := range p.layoutLabels() {
		op := &text.DrawOptions{}
		op.GeoM.Translate(seg.x, seg.y)
		op.ColorScale.ScaleWithColor(seg.color)
		text.Draw(screen, seg.text, seg.face, op)
	}
	for _, d := range p.mounted {
		d.Draw(screen)
	}
}

func (p *TimePicker) dial(d ActiveDial) *Dial {
	if d == HoursDial {
		return p.hDial
	}
	return p.mDial
}

// displayHour converts a 24-hour value to its 12-hour display form.
func displayHour(h int) int {
	switch {
	case h == 0:
		return 12
	case h <= 12:
		return h
	default:
		return h - 12
	}
}

// onDialSelected recomputes the canonical time from the active dial's
// selection.
func (p *TimePicker) onDialSelected(v int) {
	switch p.active {
	case HoursDial:
		h := v
		if !p.am {
			h += 12
		}
		// Noon and midnight sit on the same dial position.
		if h == 24 {
			h = 12
		} else if h == 12 && p.am {
			h = 0
		}
		p.setCanonical(h, p.minutes)
	case MinutesDial:
		p.setCanonical(p.hours, v)
	}
}

func (p *TimePicker) setCanonical(hours, minutes int) {
	if hours == p.hours && minutes == p.minutes {
		return
	}
	p.hours, p.minutes = hours, minutes
	for _, fn := range p.listeners {
		if fn != nil {
			fn(hours, minutes)
		}
	}
}

// syncActiveDial pushes the canonical time into the active dial. The hidden
// dial keeps its own selection; it is refreshed when it becomes active.
func (p *TimePicker) syncActiveDial() {
	switch p.active {
	case HoursDial:
		_ = p.hDial.SetSelected(displayHour(p.hours))
	case MinutesDial:
		_ = p.mDial.SetSelected(p.minutes)
	}
}

func (p *TimePicker) setActive(d ActiveDial, animate bool) {
	next := p.dial(d)
	if p.unbindSel != nil && p.dial(p.active) == next {
		return
	}
	var prev *Dial
	if p.unbindSel != nil {
		prev = p.dial(p.active)
		p.unbindSel()
		// A switch mid-drag would otherwise leave the hidden dial holding
		// capture, with no release ever routed to it.
		prev.PointerCancel()
	}
	p.active = d
	p.unbindSel = next.OnSelected(p.onDialSelected)

	bx, by, bw, bh := p.dialBounds()
	next.SetBounds(bx, by, bw, bh)
	p.syncActiveDial()

	p.cancelTweens(next)
	if prev != nil {
		p.cancelTweens(prev)
	}

	if !animate {
		p.mounted = p.mounted[:0]
		p.mounted = append(p.mounted, next)
		next.scale, next.alpha = 1, 1
		return
	}

	if prev != nil && p.isMounted(prev) {
		out := prev
		p.animate(&out.scale, out.scale, switchScale, switchDuration, 0, easeInBack, func() {
			p.unmount(out)
		})
		p.animate(&out.alpha, out.alpha, 0, switchDuration, 0, easeInCubic, nil)
	}
	next.scale, next.alpha = switchScale, 0
	p.mount(next)
	p.animate(&next.scale, switchScale, 1, switchDuration, switchEntryDelay, easeOutBack, nil)
	p.animate(&next.alpha, 0, 1, switchDuration, switchEntryDelay, easeOutCubic, nil)
}

func (p *TimePicker) animate(target *float64, from, to, duration, delay float64, ease func(float64) float64, onDone func()) {
	p.tweens = append(p.tweens, &tween{
		target: target, from: from, to: to,
		duration: duration, delay: delay,
		ease: ease, onDone: onDone,
	})
}

// cancelTweens drops any running tweens that drive d's transition state, so
// rapid switches do not fight over the same fields.
func (p *TimePicker) cancelTweens(d *Dial) {
	live := p.tweens[:0]
	for _, tw := range p.tweens {
		if tw.target == &d.scale || tw.target == &d.alpha {
			continue
		}
		live = append(live, tw)
	}
	p.tweens = live
}

func (p *TimePicker) isMounted(d *Dial) bool {
	for _, md := range p.mounted {
		if md == d {
			return true
		}
	}
	return false
}

func (p *TimePicker) mount(d *Dial) {
	if !p.isMounted(d) {
		p.mounted = append(p.mounted, d)
	}
}

func (p *TimePicker) unmount(d *Dial) {
	for i, md := range p.mounted {
		if md == d {
			p.mounted = append(p.mounted[:i], p.mounted[i+1:]...)
			return
		}
	}
}

func (p *TimePicker) tapRegion(region string) {
	switch region {
	case regionHours:
		p.SetActive(HoursDial)
	case regionMinutes:
		p.SetActive(MinutesDial)
	case regionAM:
		p.SetAM(true)
	case regionPM:
		p.SetAM(false)
	}
}

// regionAt returns the tap region under the point, or "".
func (p *TimePicker) regionAt(x, y float64) string {
	for _, seg := range p.layoutLabels() {
		if seg.region == "" {
			continue
		}
		if x >= seg.x && x <= seg.x+seg.w && y >= seg.y && y <= seg.y+seg.h {
			return seg.region
		}
	}
	return ""
}

// layoutLabels resolves both templates and centers the time/AM-PM pair in
// the label row. The result doubles as the tap-region hit map.
func (p *TimePicker) layoutLabels() []placedSegment {
	labelH := p.h / 3
	timeFace := faceOf(labelH * 0.45)
	ampmFace := faceOf(labelH * 0.18)

	hc, mc := p.color, p.color
	if p.active == HoursDial {
		hc = p.selectorColor
	} else {
		mc = p.selectorColor
	}
	timeSegs := p.timeTpl.layout(
		map[string]string{
			regionHours:   strconv.Itoa(displayHour(p.hours)),
			regionMinutes: fmt.Sprintf("%02d", p.minutes),
		},
		map[string]color.RGBA{regionHours: hc, regionMinutes: mc},
		p.color, timeFace, 0, 0)

	amc, pmc := p.color, p.color
	if p.am {
		amc = p.selectorColor
	} else {
		pmc = p.selectorColor
	}
	ampmSegs := p.ampmTpl.layout(
		map[string]string{regionAM: "AM", regionPM: "PM"},
		map[string]color.RGBA{regionAM: amc, regionPM: pmc},
		p.color, ampmFace, 0, 0)

	tw, th := segsBounds(timeSegs)
	aw, ah := segsBounds(ampmSegs)
	sx := p.x + (p.w-(tw+labelGap+aw))/2
	shiftSegs(timeSegs, sx, p.y+(labelH-th)/2)
	shiftSegs(ampmSegs, sx+tw+labelGap, p.y+(labelH-ah)/2)
	return append(timeSegs, ampmSegs...)
}
