// Package rpgstate describes the shape of a role-playing-game character state
// and carries the hard-coded state used as a fixture by consumers.
package rpgstate

// RPGState is the root of a game-state document
type RPGState struct {
	Player Player `json:"player" yaml:"player"`
}

// Player represents the user-controlled character
type Player struct {
	Name      string          `json:"name" yaml:"name" validate:"required"`
	Level     int             `json:"level" yaml:"level" validate:"gte=0"`
	Inventory []InventoryItem `json:"inventory" yaml:"inventory" validate:"required,unique=ID,dive"`
	Stats     Stats           `json:"stats" yaml:"stats"`
}

// InventoryItem is an item the player carries.
// Rarity is nil when the item has no rarity label.
type InventoryItem struct {
	ID       int     `json:"id" yaml:"id"`
	Name     string  `json:"name" yaml:"name" validate:"required"`
	Quantity int     `json:"quantity" yaml:"quantity" validate:"gt=0"`
	Rarity   *string `json:"rarity,omitempty" yaml:"rarity,omitempty"`
}

// RarityLabel returns the rarity label and whether one is set
func (i InventoryItem) RarityLabel() (string, bool) {
	if i.Rarity == nil {
		return "", false
	}
	return *i.Rarity, true
}

// Stats holds the player's vitals and what they have equipped
type Stats struct {
	Health    int       `json:"health" yaml:"health" validate:"gte=0"`
	Mana      int       `json:"mana" yaml:"mana" validate:"gte=0"`
	Equipment Equipment `json:"equipment" yaml:"equipment"`
}

// Equipment is the player's equipped weapon and armor
type Equipment struct {
	Weapon string `json:"weapon" yaml:"weapon" validate:"required"`
	Armor  Armor  `json:"armor" yaml:"armor"`
}

// Label returns a pointer to s, for filling optional fields
func Label(s string) *string {
	return &s
}
