package codec

import (
	"github.com/KirkDiggler/rpg-state/internal/entities/rpgstate"
)

// document mirrors rpgstate.RPGState with pointers on every mandatory field so
// a missing field can be told apart from a zero value.
type document struct {
	Player *playerDocument `json:"player" yaml:"player" validate:"required"`
}

type playerDocument struct {
	Name      *string        `json:"name" yaml:"name" validate:"required"`
	Level     *int           `json:"level" yaml:"level" validate:"required"`
	Inventory []itemDocument `json:"inventory" yaml:"inventory" validate:"required,dive"`
	Stats     *statsDocument `json:"stats" yaml:"stats" validate:"required"`
}

type itemDocument struct {
	ID       *int    `json:"id" yaml:"id" validate:"required"`
	Name     *string `json:"name" yaml:"name" validate:"required"`
	Quantity *int    `json:"quantity" yaml:"quantity" validate:"required"`
	Rarity   *string `json:"rarity,omitempty" yaml:"rarity,omitempty"`
}

type statsDocument struct {
	Health    *int               `json:"health" yaml:"health" validate:"required"`
	Mana      *int               `json:"mana" yaml:"mana" validate:"required"`
	Equipment *equipmentDocument `json:"equipment" yaml:"equipment" validate:"required"`
}

type equipmentDocument struct {
	Weapon *string         `json:"weapon" yaml:"weapon" validate:"required"`
	Armor  *rpgstate.Armor `json:"armor" yaml:"armor" validate:"required"`
}

// toEntity converts a document whose required fields have been checked
func (d *document) toEntity() *rpgstate.RPGState {
	p := d.Player
	inventory := make([]rpgstate.InventoryItem, len(p.Inventory))
	for i, item := range p.Inventory {
		inventory[i] = rpgstate.InventoryItem{
			ID:       *item.ID,
			Name:     *item.Name,
			Quantity: *item.Quantity,
			Rarity:   item.Rarity,
		}
	}

	return &rpgstate.RPGState{
		Player: rpgstate.Player{
			Name:      *p.Name,
			Level:     *p.Level,
			Inventory: inventory,
			Stats: rpgstate.Stats{
				Health: *p.Stats.Health,
				Mana:   *p.Stats.Mana,
				Equipment: rpgstate.Equipment{
					Weapon: *p.Stats.Equipment.Weapon,
					Armor:  *p.Stats.Equipment.Armor,
				},
			},
		},
	}
}
