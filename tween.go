package timepicker

// Easing curves used by the dial switch animation.

func easeInCubic(t float64) float64 { return t * t * t }

func easeOutCubic(t float64) float64 {
	t--
	return t*t*t + 1
}

const backOvershoot = 1.70158

func easeInBack(t float64) float64 {
	return t * t * ((backOvershoot+1)*t - backOvershoot)
}

func easeOutBack(t float64) float64 {
	t--
	return t*t*((backOvershoot+1)*t+backOvershoot) + 1
}

// tween drives one float from a starting value to a target over a fixed
// duration, after an optional delay. It holds no clock of its own: the
// picker steps it once per frame with the frame delta.
type tween struct {
	target   *float64
	from, to float64
	duration float64
	delay    float64
	ease     func(float64) float64
	onDone   func()

	elapsed float64
	done    bool
}

func (t *tween) step(dt float64) {
	if t.done {
		return
	}
	t.elapsed += dt
	at := t.elapsed - t.delay
	if at < 0 {
		return
	}
	if at >= t.duration || t.duration <= 0 {
		*t.target = t.to
		t.done = true
		if t.onDone != nil {
			t.onDone()
		}
		return
	}
	*t.target = t.from + (t.to-t.from)*t.ease(at/t.duration)
}
