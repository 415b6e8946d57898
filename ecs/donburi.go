package ecs

import (
	"github.com/phanxgames/lumen"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// LightingEventType carries every lumen lighting event (membership,
// visibility, measurement) through Donburi's event queue. Events are
// queued on emit and delivered when ProcessEvents runs, so systems see
// them at a deterministic point in the frame rather than mid-tick.
var LightingEventType = events.NewEventType[lumen.LightingEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore returns an EventStore that queues lighting events into
// world. Attach it with Engine.SetEventStore; the engine stays unaware of
// the ECS and keeps working if no store is set.
func NewDonburiStore(world donburi.World) lumen.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event lumen.LightingEvent) {
	LightingEventType.Publish(s.world, event)
}

// Subscribe registers fn for every lighting event queued in world.
func Subscribe(world donburi.World, fn func(donburi.World, lumen.LightingEvent)) {
	LightingEventType.Subscribe(world, fn)
}

// SubscribeMeasured registers fn for measurement events only. This is the
// common case for systems that mirror published light geometry into
// components; lifecycle events are filtered out before fn runs.
func SubscribeMeasured(world donburi.World, fn func(donburi.World, *lumen.Node, lumen.Measurement)) {
	LightingEventType.Subscribe(world, func(w donburi.World, e lumen.LightingEvent) {
		if e.Type == lumen.EventMeasured {
			fn(w, e.Node, e.Measurement)
		}
	})
}

// ProcessEvents delivers all queued lighting events for world. Call once
// per frame, after Engine.Frame.
func ProcessEvents(world donburi.World) {
	LightingEventType.ProcessEvents(world)
}
