package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-state/internal/codec"
	"github.com/KirkDiggler/rpg-state/internal/entities/rpgstate"
)

func newShowCmd(root *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the built-in character state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := root.outputFormat(format)
			if err != nil {
				return err
			}

			state := rpgstate.GameState()
			root.logger.Debug("writing game state", "format", f.String(), "player", state.Player.Name)
			return codec.Encode(cmd.OutOrStdout(), state, f)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: json or yaml (overrides RPGSTATE_FORMAT)")

	return cmd
}
