// Package testutils provides shared documents and helpers for tests
package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// GameStateJSON is the hard-coded game state as a JSON document
const GameStateJSON = `{
  "player": {
    "name": "Aria",
    "level": 5,
    "inventory": [
      {"id": 1, "name": "Health Potion", "quantity": 3},
      {"id": 2, "name": "Traveler’s Map", "quantity": 1}
    ],
    "stats": {
      "health": 87,
      "mana": 30,
      "equipment": {
        "weapon": "Iron Sword",
        "armor": {
          "body": "Iron Armor",
          "legs": "Traveler's Pants"
        }
      }
    }
  }
}
`

// GameStateYAML is the hard-coded game state as a YAML document
const GameStateYAML = `player:
  name: Aria
  level: 5
  inventory:
    - id: 1
      name: Health Potion
      quantity: 3
    - id: 2
      name: Traveler’s Map
      quantity: 1
  stats:
    health: 87
    mana: 30
    equipment:
      weapon: Iron Sword
      armor:
        body: Iron Armor
        legs: Traveler's Pants
`

// WriteTempFile writes content to name inside a test temp dir and returns its path
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600), "failed to write %s", name)
	return path
}
