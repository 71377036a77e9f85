package factory

import (
	"github.com/automoto/overworld/archetypes"
	"github.com/automoto/overworld/components"
	"github.com/automoto/overworld/config"
	"github.com/automoto/overworld/levels"
	"github.com/automoto/overworld/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateTransition(ecs *ecs.ECS, space *physics.Space, t levels.Transition) *donburi.Entry {
	zone := archetypes.Transition.Spawn(ecs)

	space.Add(&physics.Body{
		Entity:      zone.Entity(),
		Kind:        physics.Static,
		Layer:       config.LayerAreaTransition,
		Mask:        config.LayerCharacter,
		Sensor:      true,
		Position:    t.Center,
		HalfExtents: t.HalfExtents,
	})
	components.Body.SetValue(zone, components.BodyData{Kind: physics.Static})
	components.Transition.SetValue(zone, components.TransitionData{Destination: t.Destination})

	return zone
}

func CreateItem(ecs *ecs.ECS, space *physics.Space, it levels.Item) *donburi.Entry {
	item := archetypes.Item.Spawn(ecs)

	space.Add(&physics.Body{
		Entity:      item.Entity(),
		Kind:        physics.Static,
		Layer:       config.LayerItem,
		Mask:        config.LayerCharacter,
		Sensor:      true,
		Position:    it.Center,
		HalfExtents: it.HalfExtents,
	})
	components.Body.SetValue(item, components.BodyData{Kind: physics.Static})
	components.Item.SetValue(item, components.ItemData{
		ID:    itemID(it.Kind),
		Value: it.Value,
	})

	return item
}

func itemID(kind string) components.ItemID {
	switch kind {
	case "coin":
		return components.ItemCoin
	default:
		return components.ItemMilkshake
	}
}
