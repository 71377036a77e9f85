package physics

import (
	"math"
	"sort"

	"github.com/automoto/overworld/config"
	"github.com/automoto/overworld/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// BodyKind describes how the integrator treats a body.
type BodyKind int

const (
	Static BodyKind = iota
	Kinematic
	Dynamic
)

// Body is an axis-aligned box owned by the reference engine.
type Body struct {
	Entity       donburi.Entity
	Kind         BodyKind
	Layer        config.CollisionLayer
	Mask         config.CollisionLayer
	Sensor       bool
	Position     mgl64.Vec3 // centre
	HalfExtents  mgl64.Vec3
	Velocity     mgl64.Vec3
	GravityScale float64
	Mass         float64

	force  mgl64.Vec3
	object *resolv.Object
}

func (b *Body) Top() float64    { return b.Position.Y() + b.HalfExtents.Y() }
func (b *Body) Bottom() float64 { return b.Position.Y() - b.HalfExtents.Y() }

// overlapsXZ reports whether the footprints of a and b intersect.
func (b *Body) overlapsXZ(o *Body) bool {
	return math.Abs(b.Position.X()-o.Position.X()) < b.HalfExtents.X()+o.HalfExtents.X() &&
		math.Abs(b.Position.Z()-o.Position.Z()) < b.HalfExtents.Z()+o.HalfExtents.Z()
}

func (b *Body) overlaps(o *Body) bool {
	return b.overlapsXZ(o) &&
		math.Abs(b.Position.Y()-o.Position.Y()) < b.HalfExtents.Y()+o.HalfExtents.Y()
}

// Space is a small rigid-body engine: boxes with gravity, force accumulation,
// top-face support and sensor contacts. The XZ plane is indexed by a resolv
// space; resolv's Y axis carries world Z.
type Space struct {
	gravity      mgl64.Vec3
	maxFallSpeed float64
	skin         float64

	broad   *resolv.Space
	unit    float64 // resolv pixels per world unit
	originX float64
	originZ float64

	bodies   map[donburi.Entity]*Body
	order    []donburi.Entity
	contacts map[donburi.Entity][]donburi.Entity
}

var _ Engine = (*Space)(nil)

// NewSpace creates a space centred on the world origin. resolv works on
// whole pixels, so world units are scaled by cfg.SpaceUnit on the way in.
func NewSpace(cfg config.PhysicsConfig) *Space {
	unit := cfg.SpaceUnit
	if unit <= 0 {
		unit = 1
	}
	return &Space{
		gravity:      mgl64.Vec3{0, cfg.Gravity, 0},
		maxFallSpeed: cfg.MaxFallSpeed,
		skin:         cfg.ContactSkin,
		broad:        resolv.NewSpace(cfg.SpaceWidth*unit, cfg.SpaceDepth*unit, cfg.SpaceCell*unit, cfg.SpaceCell*unit),
		unit:         float64(unit),
		originX:      float64(cfg.SpaceWidth) / 2,
		originZ:      float64(cfg.SpaceDepth) / 2,
		bodies:       make(map[donburi.Entity]*Body),
		contacts:     make(map[donburi.Entity][]donburi.Entity),
	}
}

// Add registers b. A body already registered for the same entity is replaced.
func (s *Space) Add(b *Body) *Body {
	if _, ok := s.bodies[b.Entity]; ok {
		s.Remove(b.Entity)
	}
	if b.Mass <= 0 {
		b.Mass = 1
	}

	resolvTags := []string{}
	switch {
	case b.Sensor:
		resolvTags = append(resolvTags, tags.ResolvSensor)
	case b.Kind == Dynamic:
		resolvTags = append(resolvTags, tags.ResolvDynamic)
	default:
		resolvTags = append(resolvTags, tags.ResolvSolid)
	}
	// resolv counts the last pixel of an object as inside it; the extra
	// pixel keeps the far edge on the exact world boundary.
	b.object = resolv.NewObject(0, 0, b.HalfExtents.X()*2*s.unit+1, b.HalfExtents.Z()*2*s.unit+1, resolvTags...)
	b.object.Data = b
	s.sync(b)
	s.broad.Add(b.object)

	s.bodies[b.Entity] = b
	s.order = append(s.order, b.Entity)
	return b
}

// Body returns the body registered for e.
func (s *Space) Body(e donburi.Entity) (*Body, bool) {
	b, ok := s.bodies[e]
	return b, ok
}

// Each calls fn for every body in insertion order.
func (s *Space) Each(fn func(b *Body)) {
	for _, e := range s.order {
		fn(s.bodies[e])
	}
}

func (s *Space) Remove(e donburi.Entity) {
	b, ok := s.bodies[e]
	if !ok {
		return
	}
	s.broad.Remove(b.object)
	delete(s.bodies, e)
	delete(s.contacts, e)
	for i, o := range s.order {
		if o == e {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *Space) sync(b *Body) {
	b.object.X = (b.Position.X() - b.HalfExtents.X() + s.originX) * s.unit
	b.object.Y = (b.Position.Z() - b.HalfExtents.Z() + s.originZ) * s.unit
	b.object.Update()
}

func (s *Space) Position(e donburi.Entity) (mgl64.Vec3, bool) {
	b, ok := s.bodies[e]
	if !ok {
		return mgl64.Vec3{}, false
	}
	return b.Position, true
}

func (s *Space) SetPosition(e donburi.Entity, p mgl64.Vec3) bool {
	b, ok := s.bodies[e]
	if !ok {
		return false
	}
	b.Position = p
	s.sync(b)
	return true
}

func (s *Space) Velocity(e donburi.Entity) (mgl64.Vec3, bool) {
	b, ok := s.bodies[e]
	if !ok {
		return mgl64.Vec3{}, false
	}
	return b.Velocity, true
}

func (s *Space) SetVelocity(e donburi.Entity, v mgl64.Vec3) bool {
	b, ok := s.bodies[e]
	if !ok {
		return false
	}
	b.Velocity = v
	return true
}

func (s *Space) GravityScale(e donburi.Entity) (float64, bool) {
	b, ok := s.bodies[e]
	if !ok {
		return 0, false
	}
	return b.GravityScale, true
}

func (s *Space) SetGravityScale(e donburi.Entity, scale float64) bool {
	b, ok := s.bodies[e]
	if !ok {
		return false
	}
	b.GravityScale = scale
	return true
}

func (s *Space) ApplyForce(e donburi.Entity, f mgl64.Vec3) bool {
	b, ok := s.bodies[e]
	if !ok || b.Kind != Dynamic {
		return false
	}
	b.force = b.force.Add(f)
	return true
}

func (s *Space) ClearForce(e donburi.Entity) bool {
	b, ok := s.bodies[e]
	if !ok {
		return false
	}
	b.force = mgl64.Vec3{}
	return true
}

// CastDown sweeps the footprint of e along -Y starting at its centre.
func (s *Space) CastDown(e donburi.Entity, maxDistance float64, filter Filter) []Hit {
	b, ok := s.bodies[e]
	if !ok {
		return nil
	}
	check := b.object.Check(0, 0)
	if check == nil {
		return nil
	}

	origin := b.Position.Y()
	var hits []Hit
	for _, obj := range check.Objects {
		other, ok := obj.Data.(*Body)
		if !ok || other.Entity == filter.Exclude || other.Entity == e {
			continue
		}
		if other.Sensor && !filter.IncludeSensors {
			continue
		}
		if other.Kind == Dynamic && !filter.IncludeDynamic {
			continue
		}
		if filter.Mask != 0 && !filter.Mask.Has(other.Layer) {
			continue
		}
		if !b.overlapsXZ(other) || other.Bottom() > origin {
			continue
		}

		toi := math.Max(0, origin-other.Top())
		if toi > maxDistance {
			continue
		}
		hits = append(hits, Hit{
			Entity:       other.Entity,
			TimeOfImpact: toi,
			Point:        mgl64.Vec3{b.Position.X(), origin - toi, b.Position.Z()},
			Normal:       Up,
			Velocity:     other.Velocity,
		})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].TimeOfImpact == hits[j].TimeOfImpact {
			return hits[i].Entity < hits[j].Entity
		}
		return hits[i].TimeOfImpact < hits[j].TimeOfImpact
	})
	return hits
}

func (s *Space) Contacts(e donburi.Entity) []donburi.Entity {
	return s.contacts[e]
}

// Step integrates one tick and rebuilds contacts.
func (s *Space) Step(dt float64) {
	for _, e := range s.order {
		b := s.bodies[e]
		switch b.Kind {
		case Kinematic:
			b.Position = b.Position.Add(b.Velocity.Mul(dt))
			s.sync(b)
		case Dynamic:
			s.integrate(b, dt)
		}
	}

	for _, e := range s.order {
		if b := s.bodies[e]; b.Kind == Dynamic {
			s.support(b)
		}
	}

	s.rebuildContacts()
}

func (s *Space) integrate(b *Body, dt float64) {
	accel := s.gravity.Mul(b.GravityScale).Add(b.force.Mul(1 / b.Mass))
	b.force = mgl64.Vec3{}

	v := b.Velocity.Add(accel.Mul(dt))
	if s.maxFallSpeed > 0 && v.Y() < -s.maxFallSpeed {
		v[1] = -s.maxFallSpeed
	}
	b.Velocity = v
	b.Position = b.Position.Add(v.Mul(dt))
	s.sync(b)
}

// support keeps a dynamic body from sinking into the top face of a solid it
// stands over. Only faces between the body's bottom and centre are resolved.
func (s *Space) support(b *Body) {
	check := b.object.Check(0, 0, tags.ResolvSolid)
	if check == nil {
		return
	}
	for _, obj := range check.Objects {
		other, ok := obj.Data.(*Body)
		if !ok || !b.overlapsXZ(other) {
			continue
		}
		if b.Mask != 0 && !b.Mask.Has(other.Layer) {
			continue
		}
		top := other.Top()
		if b.Bottom() < top-s.skin && b.Position.Y() >= top {
			b.Position[1] = top + b.HalfExtents.Y()
			if b.Velocity.Y() < other.Velocity.Y() {
				b.Velocity[1] = other.Velocity.Y()
			}
		}
	}
}

func (s *Space) rebuildContacts() {
	for e := range s.contacts {
		delete(s.contacts, e)
	}
	for _, e := range s.order {
		b := s.bodies[e]
		if b.Kind != Dynamic {
			continue
		}
		check := b.object.Check(0, 0, tags.ResolvSensor, tags.ResolvDynamic)
		if check == nil {
			continue
		}
		for _, obj := range check.Objects {
			other, ok := obj.Data.(*Body)
			if !ok || !b.overlaps(other) {
				continue
			}
			// Dynamic pairs are visited from both sides; record them once.
			if other.Kind == Dynamic && other.Entity < b.Entity {
				continue
			}
			s.contacts[b.Entity] = append(s.contacts[b.Entity], other.Entity)
			s.contacts[other.Entity] = append(s.contacts[other.Entity], b.Entity)
		}
	}
}
