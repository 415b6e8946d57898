package lumen

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a scenario script.
type scriptStep struct {
	Action string  `json:"action"`
	Name   string  `json:"name,omitempty"`
	Parent string  `json:"parent,omitempty"`
	Key    string  `json:"key,omitempty"`
	Value  string  `json:"value,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	W      float64 `json:"w,omitempty"`
	H      float64 `json:"h,omitempty"`
	DX     float64 `json:"dx,omitempty"`
	DY     float64 `json:"dy,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// scriptFile is the top-level JSON structure for a scenario script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences document mutations and light changes across frames
// for automated scenario testing. Call Step once per frame before
// Engine.Frame.
//
// Supported actions:
//
//	set      — write key/value into the engine's VarMap and schedule
//	viewport — replace the viewport with (x, y, w, h)
//	scroll   — shift the viewport by (dx, dy)
//	add      — add a lit node name at (x, y, w, h) under parent (or root)
//	remove   — remove the node called name from its parent
//	wait     — hold for frames frames before the next step
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON scenario script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var script scriptFile
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step advances the runner by one frame, executing the next step.
func (r *ScriptRunner) Step(e *Engine) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	doc := e.doc
	switch st.Action {
	case "set":
		e.Vars().Set(st.Key, st.Value)
		e.Schedule()
	case "viewport":
		doc.SetViewport(Rect{X: st.X, Y: st.Y, Width: st.W, Height: st.H})
	case "scroll":
		doc.ScrollBy(st.DX, st.DY)
	case "add":
		parent := doc.Root()
		if st.Parent != "" {
			if p := doc.Find(st.Parent); p != nil {
				parent = p
			}
		}
		parent.AddChild(NewLitNode(st.Name, st.X, st.Y, st.W, st.H))
	case "remove":
		if n := doc.Find(st.Name); n != nil && n.Parent != nil {
			n.RemoveFromParent()
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
