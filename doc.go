// Package lumen is a retained-mode virtual-light engine for 2D element trees.
//
// Lumen computes, once per display frame, the geometric relationship between
// a single light source and every opted-in element of a [Document], and
// publishes the results as named textual values that a separate styling
// layer consumes.
//
// # Quick start
//
// Create a document, opt elements in with [NewLitNode] (or by setting
// [Node.Lit] before attaching), start an [Engine], and drive it from your
// frame loop:
//
//	doc := lumen.NewDocument(lumen.Rect{Width: 800, Height: 600})
//	doc.Root().AddChild(lumen.NewLitNode("card", 100, 80, 200, 120))
//
//	e := lumen.NewEngine(doc)
//	e.Vars().SetLight(lumen.LightParams{
//		X: 400, Y: 300, Range: 500, Intensity: 0.8, Ambient: 0.2,
//	})
//	e.Start()
//
//	// once per display frame:
//	e.Frame()
//
// After a tick, each visible member carries the computed values on its var
// surface:
//
//	v, _ := doc.Find("card").Var(lumen.VarLightness)
//
// # The update loop
//
// Structural changes under the document root and viewport moves
// ([Document.SetViewport], [Document.ScrollBy]) feed the engine's membership
// and visibility tracking, which request scheduling; the scheduler coalesces
// any number of requests into at most one recomputation per frame. Elements
// outside the margin-expanded viewport are skipped and keep their previously
// published values.
//
// Everything runs on the host's frame thread. Lumen is single-threaded by
// design; there are no locks and no goroutines.
//
// # Key features
//
// Lumen includes idempotent registration surviving rapid remove/re-add,
// best-effort numeric degrade (a missing light parameter dims a tick, never
// fails it), tweened light animation (via [gween]), an offscreen [Preview]
// visualization for [Ebitengine], JSON scenario scripts ([ScriptRunner]),
// and ECS integration (via [Donburi] adapter in lumen/ecs).
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package lumen
