// Package ecs bridges lumen's lighting events into a [Donburi] world.
//
// [NewDonburiStore] adapts a world to lumen's EventStore interface, so the
// engine queues membership, visibility, and measurement events as typed
// Donburi events instead of calling back synchronously. Systems consume
// them with [Subscribe] (all events) or [SubscribeMeasured] (geometry
// only), then drain the queue once per frame with [ProcessEvents]:
//
//	engine.SetEventStore(ecs.NewDonburiStore(world))
//	ecs.SubscribeMeasured(world, func(w donburi.World, n *lumen.Node, m lumen.Measurement) {
//		// mirror m into a component on the entity backing n
//	})
//
//	// per frame, after engine.Frame():
//	ecs.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
