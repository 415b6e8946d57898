package ecs

import (
	"testing"

	"github.com/phanxgames/lumen"

	"github.com/yohamta/donburi"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []lumen.LightingEvent
	Subscribe(world, func(w donburi.World, e lumen.LightingEvent) {
		received = append(received, e)
	})

	n := lumen.NewLitNode("card", 10, 20, 100, 50)
	store.EmitEvent(lumen.LightingEvent{Type: lumen.EventRegistered, Node: n})
	store.EmitEvent(lumen.LightingEvent{
		Type: lumen.EventMeasured,
		Node: n,
		Measurement: lumen.Measurement{
			CenterX: 60, CenterY: 45, Distance: 75, Falloff: 0.5, Lightness: 0.6,
		},
	})

	// Events are queued — process them.
	ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}

	e0 := received[0]
	if e0.Type != lumen.EventRegistered || e0.Node != n {
		t.Errorf("event 0: %+v", e0)
	}

	e1 := received[1]
	if e1.Type != lumen.EventMeasured {
		t.Errorf("event 1 type = %d, want EventMeasured", e1.Type)
	}
	if e1.Measurement.Falloff != 0.5 || e1.Measurement.Lightness != 0.6 {
		t.Errorf("event 1 measurement: %+v", e1.Measurement)
	}
}

func TestDonburiStore_EngineIntegration(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	doc := lumen.NewDocument(lumen.Rect{Width: 800, Height: 600})
	e := lumen.NewEngine(doc)
	e.SetEventStore(store)
	e.Vars().SetLight(lumen.LightParams{X: 400, Y: 300, Range: 500, Intensity: 1, Ambient: 0.1})

	var types []lumen.EventType
	Subscribe(world, func(w donburi.World, ev lumen.LightingEvent) {
		types = append(types, ev.Type)
	})

	doc.Root().AddChild(lumen.NewLitNode("a", 10, 10, 50, 50))
	e.Start()
	e.Frame()
	ProcessEvents(world)

	// Registration, initial visibility, then one measurement.
	want := []lumen.EventType{lumen.EventRegistered, lumen.EventShown, lumen.EventMeasured}
	if len(types) != len(want) {
		t.Fatalf("got %d events (%v), want %d", len(types), types, len(want))
	}
	for i, ty := range want {
		if types[i] != ty {
			t.Errorf("event %d type = %d, want %d", i, types[i], ty)
		}
	}
}

func TestSubscribeMeasuredFiltersLifecycle(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	doc := lumen.NewDocument(lumen.Rect{Width: 800, Height: 600})
	e := lumen.NewEngine(doc)
	e.SetEventStore(store)
	e.Vars().SetLight(lumen.LightParams{X: 400, Y: 300, Range: 500, Intensity: 1, Ambient: 0.1})

	type sample struct {
		node *lumen.Node
		m    lumen.Measurement
	}
	var got []sample
	SubscribeMeasured(world, func(w donburi.World, n *lumen.Node, m lumen.Measurement) {
		got = append(got, sample{node: n, m: m})
	})

	card := lumen.NewLitNode("card", 375, 275, 50, 50) // centered on the light
	doc.Root().AddChild(card)
	e.Start()
	e.Frame()
	ProcessEvents(world)

	// Registered and Shown were queued too; only the measurement gets through.
	if len(got) != 1 {
		t.Fatalf("measurements = %d, want 1", len(got))
	}
	if got[0].node != card {
		t.Errorf("node = %v, want card", got[0].node)
	}
	if got[0].m.Falloff != 1 {
		t.Errorf("Falloff = %v, want 1 at the light position", got[0].m.Falloff)
	}
}
