package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-state/internal/codec"
	"github.com/KirkDiggler/rpg-state/internal/entities/rpgstate"
	"github.com/KirkDiggler/rpg-state/internal/errors"
)

const stdinPath = "-"

// readDocument decodes the document at path, or stdin for "-".
// The format comes from the flag, then the file extension, then config.
func readDocument(cmd *cobra.Command, root *rootOptions, path, formatFlag string) (*rpgstate.RPGState, codec.Format, error) {
	format, err := inputFormat(root, path, formatFlag)
	if err != nil {
		return nil, "", err
	}

	var r io.Reader
	if path == stdinPath {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, "", errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to open document").
				WithMeta("path", path)
		}
		defer func() {
			if err := f.Close(); err != nil {
				root.logger.Warn("failed to close document", "path", path, "error", err)
			}
		}()
		r = f
	}

	root.logger.Debug("decoding document", "path", path, "format", format.String())
	state, err := codec.Decode(r, format)
	if err != nil {
		return nil, "", errors.Wrapf(err, "invalid document %s", path)
	}
	return state, format, nil
}

func inputFormat(root *rootOptions, path, flag string) (codec.Format, error) {
	if flag != "" {
		return codec.ParseFormat(flag)
	}
	if format, ok := codec.FormatFromPath(path); ok {
		return format, nil
	}
	return root.cfg.OutputFormat()
}
