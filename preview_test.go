package lumen

import "testing"

func TestNewPreview(t *testing.T) {
	doc := NewDocument(Rect{Width: 800, Height: 600})
	e := NewEngine(doc)
	p := NewPreview(e, 256, 128)
	defer p.Dispose()

	img := p.Image()
	if img == nil {
		t.Fatal("Image() should not be nil")
	}
	b := img.Bounds()
	if b.Dx() != 256 || b.Dy() != 128 {
		t.Errorf("image size = %dx%d, want 256x128", b.Dx(), b.Dy())
	}
}

func TestPreviewRedrawNoPanic(t *testing.T) {
	doc := NewDocument(Rect{Width: 800, Height: 600})
	e := NewEngine(doc)
	p := NewPreview(e, 128, 128)
	defer p.Dispose()

	// No members, no light parameters (everything NaN).
	p.Redraw()

	// With a light and visible members.
	e.Vars().SetLight(LightParams{X: 64, Y: 64, Range: 80, Intensity: 0.9, Ambient: 0.2})
	doc.Root().AddChild(NewLitNode("a", 10, 10, 40, 30))
	doc.Root().AddChild(NewLitNode("b", 5000, 5000, 40, 30)) // hidden, skipped
	e.Start()
	e.Frame()
	p.Redraw()

	// Zero-size member is skipped.
	doc.Root().AddChild(NewLitNode("empty", 20, 20, 0, 0))
	p.Redraw()

	// HUD pass.
	p.SetHUD(true)
	p.Redraw()
}

func TestPreviewCircleCache(t *testing.T) {
	doc := NewDocument(Rect{Width: 800, Height: 600})
	e := NewEngine(doc)
	p := NewPreview(e, 64, 64)
	defer p.Dispose()

	p.getCircle(25)
	p.getCircle(25.2) // quantizes to 26
	p.getCircle(50)
	if len(p.circleCache) != 3 {
		t.Errorf("circleCache has %d entries, want 3", len(p.circleCache))
	}
	if _, ok := p.circleCache[25]; !ok {
		t.Error("circleCache should contain key 25")
	}
}

func TestPreviewDispose(t *testing.T) {
	doc := NewDocument(Rect{Width: 800, Height: 600})
	e := NewEngine(doc)
	p := NewPreview(e, 64, 64)
	p.getCircle(10)

	p.Dispose()
	if p.img != nil {
		t.Error("img should be nil after Dispose")
	}
	if p.circleCache != nil {
		t.Error("circleCache should be nil after Dispose")
	}

	// Double dispose should not panic.
	p.Dispose()
}

func TestGenerateCircle(t *testing.T) {
	img := generateCircle(16)
	if img == nil {
		t.Fatal("generateCircle should return non-nil image")
	}
	b := img.Bounds()
	if b.Dx() != 32 || b.Dy() != 32 {
		t.Errorf("circle size = %dx%d, want 32x32", b.Dx(), b.Dy())
	}
}

func TestGenerateCircleSmallRadius(t *testing.T) {
	// Very small radius should not panic.
	if img := generateCircle(0.5); img == nil {
		t.Fatal("generateCircle should return non-nil image")
	}
}
