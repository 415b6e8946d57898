package lumen

import "math"

// LightParams is the per-tick numeric snapshot of the global light source.
// Fields may be NaN when the corresponding source value was absent or
// unparsable; Measure degrades accordingly instead of failing.
type LightParams struct {
	// X and Y are the light's position.
	X, Y float64
	// Range is the distance at which falloff reaches zero. A range that is
	// zero, negative, or NaN yields a falloff of 0 for every element.
	Range float64
	// Intensity scales the attenuated contribution in [0, 1].
	Intensity float64
	// Ambient is the base lightness floor in [0, 1].
	Ambient float64
}

// Measurement is the transient per-element, per-tick geometry record.
// Created fresh by Measure every tick, published, and discarded.
type Measurement struct {
	CenterX, CenterY float64 // element center
	DX, DY           float64 // vector from the light to the center
	Distance         float64 // Euclidean norm of (DX, DY)
	Angle            float64 // degrees in [0, 360)
	Falloff          float64 // linear attenuation in [0, 1]
	Lightness        float64 // ambient + intensity*falloff, clamped to [0, 1]
}

// Measure computes the geometric relationship between an element's bounds and
// a light source. Pure and stateless: no side effects, no error conditions.
// NaN inputs flow through Distance and Angle; Falloff and Lightness are
// always well-formed values in [0, 1].
func Measure(bounds Rect, light LightParams) Measurement {
	cx := bounds.X + bounds.Width/2
	cy := bounds.Y + bounds.Height/2

	dx := cx - light.X
	dy := cy - light.Y
	dist := math.Hypot(dx, dy)

	var angle float64
	if dx != 0 || dy != 0 {
		angle = math.Atan2(dy, dx) * 180 / math.Pi
		if angle < 0 {
			angle += 360
		}
		// Atan2(-0, x) can leave exactly 360 after the wrap.
		if angle >= 360 {
			angle -= 360
		}
	}
	// Element exactly at the light position: angle is defined as 0.

	falloff := Falloff(dist, light.Range)
	return Measurement{
		CenterX:   cx,
		CenterY:   cy,
		DX:        dx,
		DY:        dy,
		Distance:  dist,
		Angle:     angle,
		Falloff:   falloff,
		Lightness: Lightness(falloff, light.Intensity, light.Ambient),
	}
}

// Falloff returns the linear attenuation factor for a distance against a
// range: 1 at the light position, 0 at and beyond the range. A range that is
// not strictly positive yields 0.
func Falloff(distance, rng float64) float64 {
	if !(rng > 0) {
		return 0
	}
	return clamp01(1 - distance/rng)
}

// Lightness combines the ambient floor with the intensity-scaled falloff,
// capped at 1.
func Lightness(falloff, intensity, ambient float64) float64 {
	return clamp01(ambient + intensity*falloff)
}

// clamp01 clamps v to [0, 1]. NaN clamps to 0 so published falloff and
// lightness are never nonsensical to the consuming styling layer.
func clamp01(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v > 0 {
		return v
	}
	return 0
}
