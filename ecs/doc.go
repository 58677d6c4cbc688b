// Package ecs provides ECS adapters for nodegraph's editor events.
//
// The primary adapter is [NewDonburiSink], which forwards editor events
// (link created/destroyed, delete requests, selection and hover changes) into
// a [Donburi] world as typed events. Subscribe to [EditorEventType] in your
// ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	editor.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
