package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-state/internal/codec"
)

func newConvertCmd(root *rootOptions) *cobra.Command {
	var (
		from string
		to   string
	)

	cmd := &cobra.Command{
		Use:   "convert FILE",
		Short: "Re-encode a character-state document in another format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := codec.ParseFormat(to)
			if err != nil {
				return err
			}

			state, source, err := readDocument(cmd, root, args[0], from)
			if err != nil {
				return err
			}

			root.logger.Debug("converting document", "from", source.String(), "to", target.String())
			return codec.Encode(cmd.OutOrStdout(), state, target)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Input format: json or yaml (default from extension, then RPGSTATE_FORMAT)")
	cmd.Flags().StringVar(&to, "to", "", "Output format: json or yaml (required)")
	_ = cmd.MarkFlagRequired("to") // nolint:errcheck // flag is defined above

	return cmd
}
