package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-state/internal/codec"
	"github.com/KirkDiggler/rpg-state/internal/entities/rpgstate"
	"github.com/KirkDiggler/rpg-state/internal/errors"
	"github.com/KirkDiggler/rpg-state/internal/testutils/builders"
)

func TestValidateGameState(t *testing.T) {
	assert.NoError(t, codec.Validate(rpgstate.GameState()))
}

func TestValidateNil(t *testing.T) {
	err := codec.Validate(nil)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestValidateAcceptsEmptyInventory(t *testing.T) {
	state := builders.NewRPGStateBuilder().Build()
	require.NotNil(t, state.Player.Inventory)
	assert.Empty(t, state.Player.Inventory)
	assert.NoError(t, codec.Validate(state))
}

func TestValidateAbsentOptionals(t *testing.T) {
	state := builders.NewRPGStateBuilder().WithItem(1, "Rope", 1).Build()
	assert.NoError(t, codec.Validate(state))
}

func TestValidateViolations(t *testing.T) {
	testCases := []struct {
		name     string
		state    *rpgstate.RPGState
		field    string
		expected string
	}{
		{
			name:     "empty name",
			state:    builders.FromGameState().WithName("").Build(),
			field:    "player.name",
			expected: "is required",
		},
		{
			name:     "negative level",
			state:    builders.FromGameState().WithLevel(-1).Build(),
			field:    "player.level",
			expected: "must be at least 0",
		},
		{
			name:     "negative health",
			state:    builders.FromGameState().WithVitals(-5, 30).Build(),
			field:    "player.stats.health",
			expected: "must be at least 0",
		},
		{
			name:     "negative mana",
			state:    builders.FromGameState().WithVitals(87, -1).Build(),
			field:    "player.stats.mana",
			expected: "must be at least 0",
		},
		{
			name:     "empty weapon",
			state:    builders.FromGameState().WithWeapon("").Build(),
			field:    "player.stats.equipment.weapon",
			expected: "is required",
		},
		{
			name: "nil inventory",
			state: &rpgstate.RPGState{Player: rpgstate.Player{
				Name:  "Aria",
				Stats: rpgstate.Stats{Equipment: rpgstate.Equipment{Weapon: "Stick"}},
			}},
			field:    "player.inventory",
			expected: "is required",
		},
		{
			name:     "duplicate item id",
			state:    builders.FromGameState().WithItem(2, "Second Map", 1).Build(),
			field:    "player.inventory",
			expected: "must have unique id values",
		},
		{
			name:     "zero quantity",
			state:    builders.FromGameState().WithItem(3, "Empty Flask", 0).Build(),
			field:    "player.inventory[2].quantity",
			expected: "must be greater than 0",
		},
		{
			name:     "unnamed item",
			state:    builders.FromGameState().WithItem(3, "", 1).Build(),
			field:    "player.inventory[2].name",
			expected: "is required",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := codec.Validate(tc.state)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))

			fields := errors.GetMeta(err)["validation_errors"].(map[string][]string)
			assert.Equal(t, []string{tc.expected}, fields[tc.field])
		})
	}
}
