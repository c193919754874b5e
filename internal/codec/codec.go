package codec

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-state/internal/entities/rpgstate"
	"github.com/KirkDiggler/rpg-state/internal/errors"
)

// Encode writes state to w in the given format.
// JSON is indented by two spaces and ends with a newline.
func Encode(w io.Writer, state *rpgstate.RPGState, format Format) error {
	if state == nil {
		return errors.InvalidArgument("game state is required")
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(state); err != nil {
			return errors.Wrap(err, "failed to encode game state as json")
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(state); err != nil {
			return errors.Wrap(err, "failed to encode game state as yaml")
		}
		if err := enc.Close(); err != nil {
			return errors.Wrap(err, "failed to flush yaml encoder")
		}
		return nil
	default:
		return unsupportedFormat(format)
	}
}

// Marshal returns the encoding of state in the given format
func Marshal(state *rpgstate.RPGState, format Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, state, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads one game-state document from r.
//
// Unknown fields are rejected and every field other than an item's rarity and
// the armor slots must be present. The decoded state is then checked with
// Validate. All failures caused by the input are INVALID_ARGUMENT errors.
func Decode(r io.Reader, format Format) (*rpgstate.RPGState, error) {
	var doc document

	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, decodeError(err, format)
		}
		if dec.More() {
			return nil, errors.InvalidArgument("unexpected data after json document").
				WithMeta("format", format.String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, decodeError(err, format)
		}
		var extra yaml.Node
		if err := dec.Decode(&extra); !stderrors.Is(err, io.EOF) {
			return nil, errors.InvalidArgument("unexpected data after yaml document").
				WithMeta("format", format.String())
		}
	default:
		return nil, unsupportedFormat(format)
	}

	vb := errors.NewValidationBuilder()
	errors.FromValidator(validate.Struct(&doc), vb)
	if err := vb.Build(); err != nil {
		return nil, errors.Wrapf(err, "%s document is missing required fields", format)
	}

	state := doc.toEntity()
	if err := Validate(state); err != nil {
		return nil, err
	}
	return state, nil
}

// Unmarshal decodes data with Decode
func Unmarshal(data []byte, format Format) (*rpgstate.RPGState, error) {
	return Decode(bytes.NewReader(data), format)
}

func decodeError(err error, format Format) error {
	if stderrors.Is(err, io.EOF) {
		return errors.InvalidArgumentf("empty %s document", format).
			WithMeta("format", format.String())
	}
	return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse "+format.String()+" document").
		WithMeta("format", format.String())
}
