package systems

import (
	"github.com/automoto/overworld/components"
	"github.com/automoto/overworld/physics"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

var log = logrus.New()

// SetLogger replaces the logger used by every system.
func SetLogger(l *logrus.Logger) {
	if l != nil {
		log = l
	}
}

// Event buses. Handlers are installed by SubscribeEvents and run when the
// matching Process system drains the queue.
var (
	LandingEvents          = events.NewEventType[components.LandingEvent]()
	PlayerStateTransitions = events.NewEventType[components.PlayerStateTransitionEvent]()
	AnimationTransitions   = events.NewEventType[components.AnimationTransitionEvent]()
	ItemPickups            = events.NewEventType[components.ItemPickedUpEvent]()
	Teleports              = events.NewEventType[components.TeleportEvent]()
)

// SubscribeEvents installs the gameplay handlers on w.
func SubscribeEvents(w donburi.World) {
	LandingEvents.Subscribe(w, OnLanding)
	PlayerStateTransitions.Subscribe(w, HandlePlayerStateTransition)
	AnimationTransitions.Subscribe(w, HandleAnimationTransition)
}

func engine(w donburi.World) (physics.Engine, bool) {
	e, ok := components.PhysicsWorld.First(w)
	if !ok {
		return nil, false
	}
	pw := components.PhysicsWorld.Get(e)
	return pw.Engine, pw.Engine != nil
}

func delta(w donburi.World) float64 {
	e, ok := components.Clock.First(w)
	if !ok {
		return 0
	}
	return components.Clock.Get(e).Delta
}

// collect snapshots a query so systems can add and remove components while
// walking the result.
func collect(w donburi.World, q *donburi.Query) []*donburi.Entry {
	var out []*donburi.Entry
	q.Each(w, func(e *donburi.Entry) {
		out = append(out, e)
	})
	return out
}
