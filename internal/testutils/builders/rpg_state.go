// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/rpg-state/internal/entities/rpgstate"
)

// RPGStateBuilder provides a fluent interface for building test RPGState instances
type RPGStateBuilder struct {
	state *rpgstate.RPGState
}

// NewRPGStateBuilder creates a builder with a minimal valid state:
// a named player with a weapon, an empty inventory and no armor
func NewRPGStateBuilder() *RPGStateBuilder {
	return &RPGStateBuilder{
		state: &rpgstate.RPGState{
			Player: rpgstate.Player{
				Name:      "Test Player",
				Inventory: []rpgstate.InventoryItem{},
				Stats: rpgstate.Stats{
					Equipment: rpgstate.Equipment{
						Weapon: "Stick",
					},
				},
			},
		},
	}
}

// FromGameState starts a builder from the hard-coded game state
func FromGameState() *RPGStateBuilder {
	return &RPGStateBuilder{state: rpgstate.GameState()}
}

// WithName sets the player name
func (b *RPGStateBuilder) WithName(name string) *RPGStateBuilder {
	b.state.Player.Name = name
	return b
}

// WithLevel sets the player level
func (b *RPGStateBuilder) WithLevel(level int) *RPGStateBuilder {
	b.state.Player.Level = level
	return b
}

// WithItem appends an inventory item
func (b *RPGStateBuilder) WithItem(id int, name string, quantity int) *RPGStateBuilder {
	b.state.Player.Inventory = append(b.state.Player.Inventory, rpgstate.InventoryItem{
		ID:       id,
		Name:     name,
		Quantity: quantity,
	})
	return b
}

// WithRareItem appends an inventory item with a rarity label
func (b *RPGStateBuilder) WithRareItem(id int, name string, quantity int, rarity string) *RPGStateBuilder {
	b.state.Player.Inventory = append(b.state.Player.Inventory, rpgstate.InventoryItem{
		ID:       id,
		Name:     name,
		Quantity: quantity,
		Rarity:   rpgstate.Label(rarity),
	})
	return b
}

// WithVitals sets health and mana
func (b *RPGStateBuilder) WithVitals(health, mana int) *RPGStateBuilder {
	b.state.Player.Stats.Health = health
	b.state.Player.Stats.Mana = mana
	return b
}

// WithWeapon sets the equipped weapon
func (b *RPGStateBuilder) WithWeapon(weapon string) *RPGStateBuilder {
	b.state.Player.Stats.Equipment.Weapon = weapon
	return b
}

// WithArmor fills an armor slot
func (b *RPGStateBuilder) WithArmor(slot rpgstate.ArmorSlot, label string) *RPGStateBuilder {
	armor := &b.state.Player.Stats.Equipment.Armor
	switch slot {
	case rpgstate.SlotHead:
		armor.Head = rpgstate.Label(label)
	case rpgstate.SlotBody:
		armor.Body = rpgstate.Label(label)
	case rpgstate.SlotLegs:
		armor.Legs = rpgstate.Label(label)
	}
	return b
}

// Build returns the built state
func (b *RPGStateBuilder) Build() *rpgstate.RPGState {
	return b.state
}
