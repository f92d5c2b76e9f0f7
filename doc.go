// Package timepicker implements a circular time picker for Ebitengine,
// similar to the clock-face picker on Android: two concentric dial controls
// (hours and minutes) the user drags around to choose a value, an animated
// crossfade when switching between them, and a tappable time / AM-PM readout.
//
// The widget is hosted inside a regular Ebitengine game: call SetBounds once
// (or whenever the layout changes), Update from the game's Update, and Draw
// from the game's Draw. The selected time is exposed as a 24-hour
// (hours, minutes) pair with change notification via OnTimeChanged.
package timepicker
