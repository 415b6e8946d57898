package lumen

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Glide animates up to 4 light parameters in a VarMap simultaneously.
// Create one via the convenience constructors (GlidePosition, GlideRange,
// GlideIntensity, GlideAmbient) and call Update(dt) each frame. The glide
// writes formatted values back into the map so the engine's next tick reads
// the animated state; pair each Update with Engine.Schedule.
//
// There is no global animation manager; users call Update themselves.
type Glide struct {
	tweens [4]*gween.Tween
	names  [4]string
	length [4]bool // true: write with px suffix
	count  int
	vars   VarMap
	Done   bool
}

// Update advances all tweens by dt seconds and writes the values back into
// the VarMap.
func (g *Glide) Update(dt float32) {
	if g.Done {
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		if g.length[i] {
			g.vars.SetLength(g.names[i], float64(val))
		} else {
			g.vars.SetNumber(g.names[i], float64(val))
		}
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// startValue reads the current numeric value for name, treating an absent or
// unparsable entry as 0 so a glide can always start.
func startValue(vars VarMap, name string) float32 {
	v := lookupNumber(vars, name)
	if math.IsNaN(v) {
		return 0
	}
	return float32(v)
}

// GlidePosition creates a Glide that animates the light position to the
// given coordinates over the specified duration using the easing function.
func GlidePosition(vars VarMap, toX, toY float64, duration float32, fn ease.TweenFunc) *Glide {
	g := &Glide{count: 2, vars: vars}
	g.tweens[0] = gween.New(startValue(vars, VarLightX), float32(toX), duration, fn)
	g.tweens[1] = gween.New(startValue(vars, VarLightY), float32(toY), duration, fn)
	g.names[0], g.length[0] = VarLightX, true
	g.names[1], g.length[1] = VarLightY, true
	return g
}

// GlideRange creates a Glide that animates the light range to the target
// value over the specified duration using the easing function.
func GlideRange(vars VarMap, to float64, duration float32, fn ease.TweenFunc) *Glide {
	g := &Glide{count: 1, vars: vars}
	g.tweens[0] = gween.New(startValue(vars, VarLightRange), float32(to), duration, fn)
	g.names[0], g.length[0] = VarLightRange, true
	return g
}

// GlideIntensity creates a Glide that animates the light intensity to the
// target value over the specified duration using the easing function.
func GlideIntensity(vars VarMap, to float64, duration float32, fn ease.TweenFunc) *Glide {
	g := &Glide{count: 1, vars: vars}
	g.tweens[0] = gween.New(startValue(vars, VarLightIntensity), float32(to), duration, fn)
	g.names[0] = VarLightIntensity
	return g
}

// GlideAmbient creates a Glide that animates the ambient level to the target
// value over the specified duration using the easing function.
func GlideAmbient(vars VarMap, to float64, duration float32, fn ease.TweenFunc) *Glide {
	g := &Glide{count: 1, vars: vars}
	g.tweens[0] = gween.New(startValue(vars, VarLightAmbient), float32(to), duration, fn)
	g.names[0] = VarLightAmbient
	return g
}
