package ecs

import (
	"github.com/phanxgames/nodegraph"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EditorEventType is the Donburi event type for nodegraph editor events.
var EditorEventType = events.NewEventType[nodegraph.Event]()

type donburiSink struct {
	world  donburi.World
	filter map[nodegraph.EventType]bool
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// queued on EditorEventType and delivered by ProcessEvents. When types are
// given only those event types are published.
func NewDonburiSink(world donburi.World, types ...nodegraph.EventType) nodegraph.EventSink {
	s := &donburiSink{world: world}
	if len(types) > 0 {
		s.filter = make(map[nodegraph.EventType]bool, len(types))
		for _, t := range types {
			s.filter[t] = true
		}
	}
	return s
}

func (s *donburiSink) EmitEvent(ev nodegraph.Event) {
	if s.filter != nil && !s.filter[ev.Type] {
		return
	}
	EditorEventType.Publish(s.world, ev)
}
