package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(root *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Check that a document matches the character-state shape",
		Long: `Decode a JSON or YAML document strictly and validate it. Use - to read stdin.

Unknown fields and missing mandatory fields are errors. An item's rarity and
the head, body and legs armor slots may be left out.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, _, err := readDocument(cmd, root, args[0], format)
			if err != nil {
				return err
			}

			player := state.Player
			root.logger.Info("document ok", "path", args[0], "player", player.Name)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok: %s (level %d, %d items, armor %v)\n",
				player.Name, player.Level, len(player.Inventory), player.Stats.Equipment.Armor.Slots())
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Input format: json or yaml (default from extension, then RPGSTATE_FORMAT)")

	return cmd
}
