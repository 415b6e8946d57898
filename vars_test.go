package lumen

import (
	"math"
	"testing"
)

func TestParseNumber(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"42", 42},
		{"42px", 42},
		{"-17.5px", -17.5},
		{"90.25deg", 90.25},
		{"  300px  ", 300},
		{"0.8", 0.8},
	}
	for _, tc := range cases {
		if got := parseNumber(tc.in); got != tc.want {
			t.Errorf("parseNumber(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseNumberUnparsable(t *testing.T) {
	for _, in := range []string{"", "abc", "px", "10em", "--", "12..5"} {
		if got := parseNumber(in); !math.IsNaN(got) {
			t.Errorf("parseNumber(%q) = %v, want NaN", in, got)
		}
	}
}

func TestLookupNumberAbsent(t *testing.T) {
	vars := VarMap{}
	if got := lookupNumber(vars, VarLightX); !math.IsNaN(got) {
		t.Errorf("absent lookup = %v, want NaN", got)
	}
	if got := lookupNumber(nil, VarLightX); !math.IsNaN(got) {
		t.Errorf("nil source lookup = %v, want NaN", got)
	}
}

func TestFormatting(t *testing.T) {
	if got := formatLength(75); got != "75px" {
		t.Errorf("formatLength(75) = %q, want %q", got, "75px")
	}
	if got := formatLength(12.5); got != "12.5px" {
		t.Errorf("formatLength(12.5) = %q, want %q", got, "12.5px")
	}
	if got := formatAngle(90); got != "90.00deg" {
		t.Errorf("formatAngle(90) = %q, want %q", got, "90.00deg")
	}
	if got := formatAngle(359.999); got != "360.00deg" {
		t.Errorf("formatAngle(359.999) = %q, want %q", got, "360.00deg")
	}
	if got := formatScalar(1); got != "1.0000" {
		t.Errorf("formatScalar(1) = %q, want %q", got, "1.0000")
	}
	if got := formatScalar(0.123456); got != "0.1235" {
		t.Errorf("formatScalar(0.123456) = %q, want %q", got, "0.1235")
	}
}

func TestFormattingNaN(t *testing.T) {
	if got := formatLength(math.NaN()); got != "NaNpx" {
		t.Errorf("formatLength(NaN) = %q, want %q", got, "NaNpx")
	}
	if got := formatAngle(math.NaN()); got != "NaNdeg" {
		t.Errorf("formatAngle(NaN) = %q, want %q", got, "NaNdeg")
	}
}

func TestVarMapSetLight(t *testing.T) {
	vars := VarMap{}
	vars.SetLight(LightParams{X: 400, Y: 300, Range: 500, Intensity: 0.8, Ambient: 0.2})

	cases := []struct{ name, want string }{
		{VarLightX, "400px"},
		{VarLightY, "300px"},
		{VarLightRange, "500px"},
		{VarLightIntensity, "0.8"},
		{VarLightAmbient, "0.2"},
	}
	for _, tc := range cases {
		v, ok := vars.Lookup(tc.name)
		if !ok || v != tc.want {
			t.Errorf("%s = (%q, %v), want (%q, true)", tc.name, v, ok, tc.want)
		}
	}
}
