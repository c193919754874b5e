package rpgstate

// GameState returns the hard-coded character state.
// Every call builds a new value, so callers may modify what they get back.
func GameState() *RPGState {
	return &RPGState{
		Player: Player{
			Name:  "Aria",
			Level: 5,
			Inventory: []InventoryItem{
				{ID: 1, Name: "Health Potion", Quantity: 3},
				{ID: 2, Name: "Traveler’s Map", Quantity: 1},
			},
			Stats: Stats{
				Health: 87,
				Mana:   30,
				Equipment: Equipment{
					Weapon: "Iron Sword",
					Armor: Armor{
						Body: Label("Iron Armor"),
						Legs: Label("Traveler's Pants"),
					},
				},
			},
		},
	}
}
