package timepicker

import "math"

// Direction is the winding of a dial's values around its circle.
type Direction int

const (
	Clockwise Direction = iota
	Counterclockwise
)

// AngleMap places the half-open integer range [Min, Max) on a circle and maps
// pointer positions back to the value whose angular bin contains them. It is
// a pure value type: all methods are deterministic and side-effect free.
//
// Coordinates at the API boundary are screen coordinates (Y grows downward).
// Internally angles follow the usual math convention with Y up, so the
// vertical axis is flipped on the way in and out.
type AngleMap struct {
	Min, Max int

	// Stride selects which values get a visible tick: multiples of Stride
	// relative to Min. Every value in range stays selectable regardless.
	Stride int

	// StartAngle is the angular offset of the first value, in degrees.
	StartAngle float64

	Dir Direction

	// InnerRadius and OuterRadius are fractions of the dial radius bounding
	// the annulus the ticks sit in; their mean is the tick ring radius.
	InnerRadius, OuterRadius float64
}

// Items returns the number of selectable values.
func (m AngleMap) Items() int { return m.Max - m.Min }

// ShownItems returns the number of values that get a visible tick.
func (m AngleMap) ShownItems() int {
	stride := m.Stride
	if stride < 1 {
		stride = 1
	}
	c := 0
	for i := m.Min; i < m.Max; i++ {
		if (i-m.Min)%stride == 0 {
			c++
		}
	}
	return c
}

// onTick reports whether v sits on a visible tick.
func (m AngleMap) onTick(v int) bool {
	stride := m.Stride
	if stride < 1 {
		stride = 1
	}
	return (v-m.Min)%stride == 0
}

// RingRadius returns the radius of the tick ring for a dial of the given
// radius.
func (m AngleMap) RingRadius(radius float64) float64 {
	return radius * (m.InnerRadius + m.OuterRadius) / 2
}

// PosFor returns the on-circle position for value n. cx, cy is the dial
// center and radius the dial radius in pixels, padding already excluded.
// An empty range degrades to the center point.
func (m AngleMap) PosFor(n int, cx, cy, radius float64) (x, y float64) {
	if m.Items() <= 0 {
		return cx, cy
	}
	angle := m.valueAngle(n)
	r := m.RingRadius(radius)
	return cx + math.Cos(angle)*r, cy - math.Sin(angle)*r
}

// valueAngle returns the math-convention angle (radians, Y up) for value n.
func (m AngleMap) valueAngle(n int) float64 {
	items, shown := m.Items(), m.ShownItems()
	sign := 1.0
	offset := m.StartAngle * math.Pi / 180
	if m.Dir == Clockwise {
		offset = 2*math.Pi - offset
		sign = -1
	}
	quota := 2 * math.Pi / float64(items)
	angle := offset + sign*float64(n)*quota
	if items == shown {
		// Every value has its own slot; center it.
		angle += quota / 2
	} else {
		angle -= 2 * math.Pi / float64(shown) / 2
	}
	return angle
}

// angleEps absorbs floating-point overshoot at bin edges and at the wrap
// boundary. It is measured in fractions of a bin, far below pointer
// resolution.
const angleEps = 1e-9

// ValueAt returns the value whose angular bin contains the screen point
// (x, y), given the dial center (cx, cy). The result is always in
// [Min, Max); an empty range degrades to Min.
//
// Exact inverse of PosFor: the centering term matches valueAngle's, and the
// angle is rebased on Min's tick before binning, so ranges that do not start
// at zero round-trip. When every value has its own slot the bin is centered
// on the tick; otherwise it starts at the tick and runs one quota in the
// winding direction.
func (m AngleMap) ValueAt(x, y, cx, cy float64) int {
	items, shown := m.Items(), m.ShownItems()
	if items <= 0 {
		return m.Min
	}
	quota := 2 * math.Pi / float64(items)

	centering := quota / 2
	if items != shown {
		centering = -2 * math.Pi / float64(shown) / 2
	}
	start := m.StartAngle * math.Pi / 180
	angle := math.Atan2(cy-y, x-cx)
	if m.Dir == Clockwise {
		angle = 2*math.Pi - angle - start + centering
	} else {
		angle = angle - start - centering
	}
	if items == shown {
		angle += quota / 2
	}
	angle -= float64(m.Min) * quota

	angle = math.Mod(angle, 2*math.Pi)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	if 2*math.Pi-angle < quota*angleEps {
		angle = 0
	}

	v := m.Min + int(math.Floor(angle/quota+angleEps))
	if v > m.Max-1 {
		v = m.Max - 1
	}
	return v
}
