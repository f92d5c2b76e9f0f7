package timepicker

import (
	"math"
	"testing"
)

func TestTweenReachesTarget(t *testing.T) {
	v := 1.0
	doneCount := 0
	tw := &tween{
		target: &v, from: 1, to: 1.5,
		duration: 0.5,
		ease:     easeInBack,
		onDone:   func() { doneCount++ },
	}

	const dt = 1.0 / 60.0
	for i := 0; i < 60; i++ {
		tw.step(dt)
	}
	if v != 1.5 {
		t.Errorf("value = %v, expected exactly 1.5", v)
	}
	if !tw.done || doneCount != 1 {
		t.Errorf("done = %v fired %d times, expected done once", tw.done, doneCount)
	}
	tw.step(dt) // stepping a finished tween changes nothing
	if v != 1.5 || doneCount != 1 {
		t.Errorf("finished tween moved: value %v, fired %d times", v, doneCount)
	}
}

func TestTweenDelay(t *testing.T) {
	v := 1.5
	tw := &tween{
		target: &v, from: 1.5, to: 1,
		duration: 0.5, delay: 0.3,
		ease: easeOutBack,
	}

	const dt = 1.0 / 60.0
	for elapsed := 0.0; elapsed < 0.25; elapsed += dt {
		tw.step(dt)
	}
	if v != 1.5 {
		t.Errorf("value moved during the delay: %v", v)
	}
	for elapsed := 0.0; elapsed < 0.7; elapsed += dt {
		tw.step(dt)
	}
	if v != 1 {
		t.Errorf("value = %v after delay plus duration, expected 1", v)
	}
}

func TestEasingEndpoints(t *testing.T) {
	eases := map[string]func(float64) float64{
		"inCubic":  easeInCubic,
		"outCubic": easeOutCubic,
		"inBack":   easeInBack,
		"outBack":  easeOutBack,
	}
	for name, ease := range eases {
		if got := ease(0); math.Abs(got) > 1e-12 {
			t.Errorf("%s(0) = %v, expected 0", name, got)
		}
		if got := ease(1); math.Abs(got-1) > 1e-12 {
			t.Errorf("%s(1) = %v, expected 1", name, got)
		}
	}
}

func TestBackEasingOvershoots(t *testing.T) {
	// The "back" pair overshoots its endpoints, which is what gives the dial
	// switch its spring.
	if easeInBack(0.2) >= 0 {
		t.Error("inBack does not dip below the start")
	}
	if easeOutBack(0.8) <= 1 {
		t.Error("outBack does not overshoot the end")
	}
}
