package errors_test

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-state/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("player.name", "is required")
	ve.AddFieldError("player.level", "must be at least 0")

	s.True(ve.HasErrors())
	s.Equal("validation failed: player.level: must be at least 0; player.name: is required", ve.Error())

	err := ve.ToError()
	s.Equal(errors.CodeInvalidArgument, err.Code)
	s.NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("player.inventory", "must have unique id values").
		Fieldf("player.level", "must be at least %d", 0).
		Field("player.stats.equipment.weapon", "is required")

	err := vb.Build()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	fields := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Equal([]string{"is required"}, fields["player.stats.equipment.weapon"])
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	s.NoError(vb.Build())
}

type bag struct {
	Owner string `json:"owner" validate:"required"`
	Items []slot `json:"items" validate:"unique=Key,dive"`
}

type slot struct {
	Key   int `json:"key"`
	Count int `json:"count" validate:"gt=0"`
	Level int `json:"level" validate:"gte=1"`
}

func newTestValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	})
	return v
}

func (s *ValidationTestSuite) TestFromValidator() {
	testCases := []struct {
		name     string
		input    bag
		expected map[string][]string
	}{
		{
			name: "duplicate keys and missing owner",
			input: bag{
				Items: []slot{{Key: 1, Count: 1, Level: 1}, {Key: 1, Count: 2, Level: 1}},
			},
			expected: map[string][]string{
				"owner": {"is required"},
				"items": {"must have unique key values"},
			},
		},
		{
			name: "element fields",
			input: bag{
				Owner: "Aria",
				Items: []slot{{Key: 1, Count: 0, Level: 1}, {Key: 2, Count: 2, Level: 0}},
			},
			expected: map[string][]string{
				"items[0].count": {"must be greater than 0"},
				"items[1].level": {"must be at least 1"},
			},
		},
	}

	v := newTestValidator()
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.FromValidator(v.Struct(tc.input), vb)

			err := vb.Build()
			s.Require().Error(err)
			s.Equal(tc.expected, errors.GetMeta(err)["validation_errors"])
		})
	}
}

func (s *ValidationTestSuite) TestFromValidatorOtherErrors() {
	vb := errors.NewValidationBuilder()
	errors.FromValidator(nil, vb)
	s.NoError(vb.Build())

	errors.FromValidator(fmt.Errorf("not a struct"), vb)
	fields := errors.GetMeta(vb.Build())["validation_errors"].(map[string][]string)
	s.Equal([]string{"not a struct"}, fields[""])
}
