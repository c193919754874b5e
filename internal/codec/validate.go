package codec

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/KirkDiggler/rpg-state/internal/entities/rpgstate"
	"github.com/KirkDiggler/rpg-state/internal/errors"
)

var validate = newValidator()

// newValidator reports fields by their document names instead of Go names
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks state against the constraints of the game-state shape:
// name and weapon are non-empty, the inventory list is present (it may be empty),
// level, health and mana are not negative, inventory ids are unique, and every
// item has a name and a positive quantity.
// Absent rarity and armor slots are never an error.
func Validate(state *rpgstate.RPGState) error {
	if state == nil {
		return errors.InvalidArgument("game state is required")
	}

	vb := errors.NewValidationBuilder()
	errors.FromValidator(validate.Struct(state), vb)
	return vb.Build()
}
