package imaging

import "math"

// RGBToHSV converts a pixel from [0,1]-range RGB to HSV, with hue in
// degrees [0, 360) and saturation/value in [0,1].
func RGBToHSV(r, g, b float32) (h, s, v float32) {
	max := maxf(r, g, b)
	min := minf(r, g, b)
	v = max
	delta := max - min

	if max <= 0 {
		return 0, 0, v
	}
	s = delta / max

	if delta == 0 {
		return 0, s, v
	}

	switch max {
	case r:
		h = 60 * math32Mod((g-b)/delta, 6)
	case g:
		h = 60 * ((b-r)/delta + 2)
	default:
		h = 60 * ((r-g)/delta + 4)
	}
	if h < 0 {
		h += 360
	}
	return h, s, v
}

// HSVToRGB converts a pixel from HSV (hue in degrees) back to [0,1]
// range RGB.
func HSVToRGB(h, s, v float32) (r, g, b float32) {
	h = math32Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - absf(math32Mod(h/60, 2)-1))
	m := v - c

	var r1, g1, b1 float32
	switch {
	case h < 60:
		r1, g1, b1 = c, x, 0
	case h < 120:
		r1, g1, b1 = x, c, 0
	case h < 180:
		r1, g1, b1 = 0, c, x
	case h < 240:
		r1, g1, b1 = 0, x, c
	case h < 300:
		r1, g1, b1 = x, 0, c
	default:
		r1, g1, b1 = c, 0, x
	}
	return r1 + m, g1 + m, b1 + m
}

func maxf(vs ...float32) float32 {
	m := vs[0]
	for _, v := range vs[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func minf(vs ...float32) float32 {
	m := vs[0]
	for _, v := range vs[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func math32Mod(a, b float32) float32 {
	return float32(math.Mod(float64(a), float64(b)))
}
