package lumen

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Preview renders a debug visualization of the light field into an offscreen
// texture: the scene darkened to the ambient level, a feathered circle
// erased at the light position sized to its range, and a glow rectangle over
// every visible member scaled by its computed lightness. Blit the image into
// your frame however you like; Preview is a consumer of the engine, not part
// of the update loop.
type Preview struct {
	engine      *Engine
	img         *ebiten.Image
	circleCache map[int]*ebiten.Image // cached circle textures keyed by quantized radius
	imgOp       ebiten.DrawImageOptions
	hud         bool
}

// whitePixel is a shared 1x1 white image used for glow rectangles.
var whitePixel *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// NewPreview creates a preview covering (w x h) pixels for the given engine.
func NewPreview(e *Engine, w, h int) *Preview {
	return &Preview{
		engine: e,
		img:    ebiten.NewImage(w, h),
	}
}

// Image returns the preview's render target.
func (p *Preview) Image() *ebiten.Image {
	return p.img
}

// SetHUD toggles the stats overlay (member/visible counts and the current
// light parameters, refreshed on every Redraw).
func (p *Preview) SetHUD(enabled bool) {
	p.hud = enabled
}

// Redraw rebuilds the preview texture from the engine's current state.
// Call after Engine.Frame, before drawing the image.
func (p *Preview) Redraw() {
	params := p.engine.readParams()
	vp := p.engine.doc.Viewport()
	target := p.img
	target.Clear()

	// Darkness down to the ambient floor.
	darkness := 1 - clamp01(params.Ambient)
	target.Fill(color.NRGBA{R: 0, G: 0, B: 0, A: uint8(darkness * 255)})

	// Erase pass: punch a feathered hole at the light position.
	if params.Range > 0 && !math.IsNaN(params.X) && !math.IsNaN(params.Y) {
		circle := p.getCircle(params.Range)
		sz := float64(circle.Bounds().Dx())
		op := &p.imgOp
		op.GeoM.Reset()
		op.GeoM.Scale(params.Range*2/sz, params.Range*2/sz)
		op.GeoM.Translate(params.X-vp.X-params.Range, params.Y-vp.Y-params.Range)
		op.ColorScale.Reset()
		i := float32(clamp01(params.Intensity))
		op.ColorScale.Scale(i, i, i, i)
		op.Blend = ebiten.BlendDestinationOut
		target.DrawImage(circle, op)
	}

	// Glow pass: brighten each visible member by its lightness.
	px := ensureWhitePixel()
	for _, n := range p.engine.Members() {
		if !p.engine.Visible(n) {
			continue
		}
		b := n.Bounds()
		if b.Width <= 0 || b.Height <= 0 {
			continue
		}
		m := Measure(b, params)
		op := &p.imgOp
		op.GeoM.Reset()
		op.GeoM.Scale(b.Width, b.Height)
		op.GeoM.Translate(b.X-vp.X, b.Y-vp.Y)
		op.ColorScale.Reset()
		a := float32(m.Lightness * 0.3)
		op.ColorScale.Scale(a, a, a, a)
		op.Blend = ebiten.BlendLighter
		target.DrawImage(px, op)
	}

	if p.hud {
		visible := 0
		for _, n := range p.engine.Members() {
			if p.engine.Visible(n) {
				visible++
			}
		}
		ebitenutil.DebugPrint(target, fmt.Sprintf(
			"members: %d visible: %d\nlight: (%.0f, %.0f) r=%.0f i=%.2f a=%.2f",
			len(p.engine.Members()), visible,
			params.X, params.Y, params.Range, params.Intensity, params.Ambient))
	}
}

// getCircle returns a cached circle texture for the given radius, generating
// one if it doesn't exist. Radius is quantized to the nearest integer to
// avoid generating separate textures for tiny differences.
func (p *Preview) getCircle(radius float64) *ebiten.Image {
	key := int(math.Ceil(radius))
	if key < 1 {
		key = 1
	}
	if p.circleCache == nil {
		p.circleCache = make(map[int]*ebiten.Image)
	}
	if img, ok := p.circleCache[key]; ok {
		return img
	}
	img := generateCircle(float64(key))
	p.circleCache[key] = img
	return img
}

// Dispose releases all textures owned by the preview.
func (p *Preview) Dispose() {
	if p.img != nil {
		p.img.Deallocate()
		p.img = nil
	}
	for _, img := range p.circleCache {
		img.Deallocate()
	}
	p.circleCache = nil
}

// generateCircle creates a feathered white circle image with the given radius.
// Uses smoothstep falloff and premultiplied alpha.
func generateCircle(radius float64) *ebiten.Image {
	size := int(math.Ceil(radius * 2))
	if size < 1 {
		size = 1
	}
	img := ebiten.NewImage(size, size)
	pix := make([]byte, size*size*4)

	cx, cy := radius, radius
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			dist := math.Sqrt(dx*dx+dy*dy) / radius

			var alpha float64
			if dist >= 1 {
				alpha = 0
			} else {
				// smoothstep: 1 at center, 0 at edge
				t := 1 - dist
				alpha = t * t * (3 - 2*t)
			}

			a := uint8(alpha * 255)
			off := (y*size + x) * 4
			pix[off+0] = a // premultiplied white
			pix[off+1] = a
			pix[off+2] = a
			pix[off+3] = a
		}
	}
	img.WritePixels(pix)
	return img
}
