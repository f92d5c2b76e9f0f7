package timepicker

import (
	"errors"
	"fmt"
	"image/color"
	"slices"
	"strings"

	text "github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ErrMissingRegion is returned when a label template lacks one of its
// required tap regions.
var ErrMissingRegion = errors.New("timepicker: template missing tap region")

// Tap regions recognized in the label templates.
const (
	regionHours   = "hours"
	regionMinutes = "minutes"
	regionAM      = "am"
	regionPM      = "pm"
)

// segment is one piece of a parsed label template: either literal text or a
// named tap region to be substituted and hit-tested at render time.
type segment struct {
	text   string
	region string // empty for literal text
}

type labelTemplate struct {
	raw  string
	segs []segment
}

// parseTemplate splits raw into literal and region segments. Every name in
// regions must appear at least once; region markers outside that set are
// rejected. The error cases surface at template-set time so a malformed
// template never reaches rendering.
func parseTemplate(raw string, regions ...string) (labelTemplate, error) {
	tpl := labelTemplate{raw: raw}
	seen := make(map[string]bool, len(regions))
	rest := raw
	for {
		i := strings.Index(rest, "{")
		if i < 0 {
			break
		}
		j := strings.Index(rest[i:], "}")
		if j < 0 {
			break
		}
		name := rest[i+1 : i+j]
		if !slices.Contains(regions, name) {
			return labelTemplate{}, fmt.Errorf("timepicker: unknown tap region %q in template %q", name, raw)
		}
		if i > 0 {
			tpl.segs = append(tpl.segs, segment{text: rest[:i]})
		}
		tpl.segs = append(tpl.segs, segment{region: name})
		seen[name] = true
		rest = rest[i+j+1:]
	}
	if rest != "" {
		tpl.segs = append(tpl.segs, segment{text: rest})
	}
	for _, r := range regions {
		if !seen[r] {
			return labelTemplate{}, fmt.Errorf("%w: %q in template %q", ErrMissingRegion, r, raw)
		}
	}
	return tpl, nil
}

// placedSegment is a template segment resolved and positioned for drawing.
// Region segments double as tap targets: their rectangle is the hit area.
type placedSegment struct {
	text   string
	region string

	x, y, w, h float64
	color      color.RGBA
	face       text.Face
}

// layout resolves the template against values and positions its segments
// left to right from (x, y). Newlines in literal text start a new line at
// the original x. Region segments take their color from colors, literals
// use base.
func (t labelTemplate) layout(values map[string]string, colors map[string]color.RGBA, base color.RGBA, face text.Face, x, y float64) []placedSegment {
	m := face.Metrics()
	lineH := m.HAscent + m.HDescent
	out := make([]placedSegment, 0, len(t.segs))
	cx, cy := x, y
	for _, s := range t.segs {
		if s.region != "" {
			txt := values[s.region]
			w := text.Advance(txt, face)
			out = append(out, placedSegment{
				text: txt, region: s.region,
				x: cx, y: cy, w: w, h: lineH,
				color: colors[s.region], face: face,
			})
			cx += w
			continue
		}
		for i, line := range strings.Split(s.text, "\n") {
			if i > 0 {
				cx = x
				cy += lineH + m.HLineGap
			}
			if line == "" {
				continue
			}
			w := text.Advance(line, face)
			out = append(out, placedSegment{
				text: line,
				x:    cx, y: cy, w: w, h: lineH,
				color: base, face: face,
			})
			cx += w
		}
	}
	return out
}

// segsBounds returns the extent of a segment run laid out from the origin.
func segsBounds(segs []placedSegment) (w, h float64) {
	for _, s := range segs {
		if s.x+s.w > w {
			w = s.x + s.w
		}
		if s.y+s.h > h {
			h = s.y + s.h
		}
	}
	return w, h
}

func shiftSegs(segs []placedSegment, dx, dy float64) {
	for i := range segs {
		segs[i].x += dx
		segs[i].y += dy
	}
}
