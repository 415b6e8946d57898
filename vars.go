package lumen

import (
	"math"
	"strconv"
	"strings"
)

// VarMap is a map-backed named-value surface. It is the engine's default
// global Source; hosts mutate it between ticks to move or re-tune the light.
type VarMap map[string]string

// Lookup implements Source.
func (m VarMap) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// Set stores a raw textual value.
func (m VarMap) Set(name, value string) {
	m[name] = value
}

// SetLength stores a length value with the px suffix.
func (m VarMap) SetLength(name string, v float64) {
	m[name] = formatLength(v)
}

// SetNumber stores a unit-less numeric value.
func (m VarMap) SetNumber(name string, v float64) {
	m[name] = formatNumber(v)
}

// SetLight is a convenience that stores all five light parameters at once.
func (m VarMap) SetLight(p LightParams) {
	m.SetLength(VarLightX, p.X)
	m.SetLength(VarLightY, p.Y)
	m.SetLength(VarLightRange, p.Range)
	m.SetNumber(VarLightIntensity, p.Intensity)
	m.SetNumber(VarLightAmbient, p.Ambient)
}

// --- Parsing ---

// parseNumber converts a textual value to a float64, tolerating the px and
// deg unit suffixes and surrounding whitespace. Unparsable input yields NaN;
// there is no error path, callers rely on the engine's degrade policy.
func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "px")
	s = strings.TrimSuffix(s, "deg")
	s = strings.TrimSpace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// lookupNumber reads name from src and parses it. Absent values are NaN,
// same as unparsable ones.
func lookupNumber(src Source, name string) float64 {
	if src == nil {
		return math.NaN()
	}
	raw, ok := src.Lookup(name)
	if !ok {
		return math.NaN()
	}
	return parseNumber(raw)
}

// --- Formatting ---

// formatNumber renders a unit-less value at full precision. NaN renders as
// the literal "NaN", matching the degrade policy's textual form.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatLength renders a length value with the px suffix.
func formatLength(v float64) string {
	return formatNumber(v) + "px"
}

// formatAngle renders an angle in degrees with 2 decimal places and the deg
// suffix.
func formatAngle(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64) + "deg"
}

// formatScalar renders a unit-less ratio (falloff, lightness) with 4 decimal
// places.
func formatScalar(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
