package lumen

import "testing"

func TestLoadScriptErrors(t *testing.T) {
	if _, err := LoadScript([]byte("not json")); err == nil {
		t.Error("expected error for invalid JSON")
	}
	if _, err := LoadScript([]byte(`{"steps": []}`)); err == nil {
		t.Error("expected error for empty script")
	}
}

func TestScriptRunnerScenario(t *testing.T) {
	script := `{
		"steps": [
			{"action": "set", "key": "light-x", "value": "100px"},
			{"action": "set", "key": "light-y", "value": "100px"},
			{"action": "set", "key": "light-range", "value": "500px"},
			{"action": "set", "key": "light-intensity", "value": "1"},
			{"action": "add", "name": "card", "x": 50, "y": 50, "w": 100, "h": 50},
			{"action": "wait", "frames": 2},
			{"action": "scroll", "dx": 5000, "dy": 0},
			{"action": "remove", "name": "card"}
		]
	}`
	runner, err := LoadScript([]byte(script))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}

	doc := NewDocument(Rect{Width: 800, Height: 600})
	e := NewEngine(doc)
	e.Start()

	var card *Node
	frames := 0
	for !runner.Done() && frames < 100 {
		runner.Step(e)
		e.Frame()
		frames++
		if card == nil {
			card = doc.Find("card")
			if card != nil && len(e.Members()) != 1 {
				t.Fatal("added card should be tracked immediately")
			}
		}
	}

	if !runner.Done() {
		t.Fatal("runner did not finish within 100 frames")
	}
	if card == nil {
		t.Fatal("script should have added the card")
	}
	if card.Parent != nil {
		t.Error("script should have removed the card")
	}
	if len(e.Members()) != 0 {
		t.Errorf("members = %d after removal, want 0", len(e.Members()))
	}

	// Values published while the card was visible persist after removal.
	if v, ok := card.Var(VarFalloff); !ok || v == "" {
		t.Error("card should carry published values from its visible frames")
	}
}

func TestScriptRunnerWait(t *testing.T) {
	script := `{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "set", "key": "light-x", "value": "1px"}
	]}`
	runner, err := LoadScript([]byte(script))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}

	doc := NewDocument(Rect{Width: 800, Height: 600})
	e := NewEngine(doc)

	// Frames 1-3 are consumed by the wait; the set lands on frame 4.
	for i := 0; i < 3; i++ {
		runner.Step(e)
		if _, ok := e.Vars().Lookup("light-x"); ok {
			t.Fatalf("set executed during wait (frame %d)", i+1)
		}
	}
	runner.Step(e)
	if _, ok := e.Vars().Lookup("light-x"); !ok {
		t.Error("set should execute after the wait")
	}
	runner.Step(e)
	if !runner.Done() {
		t.Error("runner should be done")
	}
}
