package timepicker

import "image/color"

// Default look: white labels with a muted material-green selector.
var (
	DefaultColor         = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	DefaultSelectorColor = color.RGBA{R: 0x56, G: 0x70, B: 0x7d, A: 0xff}
)

const (
	DefaultSelectorAlpha = 0.3

	DefaultTimeFormat = "{hours}:{minutes}"
	DefaultAMPMFormat = "{am}\n{pm}"

	defaultInnerRadius = 0.6
	defaultOuterRadius = 1.0
	defaultPadding     = 10.0

	labelGap = 10.0

	// Dial switch animation.
	switchScale      = 1.5
	switchDuration   = 0.5
	switchEntryDelay = 0.3
)
