// Package errors provides structured errors for rpg-state.
//
// Errors carry a Code, a message, an optional cause, and metadata:
//
//	err := errors.InvalidArgumentf("unknown format %q", name)
//	err := errors.Wrap(err, "failed to decode game state")
//
// Wrap keeps the code of an existing *Error and defaults to INTERNAL for
// anything else. GetCode and GetMeta read through wrapping.
//
// # Validation Errors
//
// ValidationBuilder accumulates per-field messages and builds a single
// INVALID_ARGUMENT error whose "validation_errors" metadata maps field paths
// to messages:
//
//	vb := errors.NewValidationBuilder()
//	vb.Field("player.name", "is required")
//	errors.FromValidator(validate.Struct(state), vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Exit Codes
//
// Commands map an error's code to a process exit status with Code.ExitCode.
package errors
