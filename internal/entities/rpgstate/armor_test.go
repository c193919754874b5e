package rpgstate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-state/internal/entities/rpgstate"
)

func TestArmorSlot(t *testing.T) {
	armor := rpgstate.GameState().Player.Stats.Equipment.Armor

	testCases := []struct {
		name     string
		slot     rpgstate.ArmorSlot
		label    string
		equipped bool
	}{
		{"head is unequipped", rpgstate.SlotHead, "", false},
		{"body", rpgstate.SlotBody, "Iron Armor", true},
		{"legs", rpgstate.SlotLegs, "Traveler's Pants", true},
		{"unknown slot", rpgstate.ArmorSlot("feet"), "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			label, ok := armor.Slot(tc.slot)
			assert.Equal(t, tc.equipped, ok)
			assert.Equal(t, tc.label, label)
		})
	}
}

func TestArmorSlotEmptyLabelIsEquipped(t *testing.T) {
	armor := rpgstate.Armor{Head: rpgstate.Label("")}

	label, ok := armor.Slot(rpgstate.SlotHead)
	assert.True(t, ok)
	assert.Empty(t, label)
	assert.Equal(t, []rpgstate.ArmorSlot{rpgstate.SlotHead}, armor.Slots())
}

func TestArmorSlots(t *testing.T) {
	armor := rpgstate.GameState().Player.Stats.Equipment.Armor
	assert.Equal(t, []rpgstate.ArmorSlot{rpgstate.SlotBody, rpgstate.SlotLegs}, armor.Slots())
	assert.Empty(t, rpgstate.Armor{}.Slots())
}

func TestArmorSlotIsValid(t *testing.T) {
	for _, slot := range rpgstate.AllArmorSlots() {
		assert.True(t, slot.IsValid(), slot.String())
	}
	assert.False(t, rpgstate.ArmorSlot("feet").IsValid())
}

func TestRarityLabel(t *testing.T) {
	item := rpgstate.InventoryItem{ID: 7, Name: "Amulet", Quantity: 1}
	_, ok := item.RarityLabel()
	assert.False(t, ok)

	item.Rarity = rpgstate.Label("rare")
	label, ok := item.RarityLabel()
	assert.True(t, ok)
	assert.Equal(t, "rare", label)
}
