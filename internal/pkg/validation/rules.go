package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// hashtagPattern matches word characters only, no leading '#'
var hashtagPattern = regexp.MustCompile(`^[\w]{1,50}$`)

// RoleValue validates the "rolevalue" tag: the field must be one of the
// assignable platform roles.
func RoleValue(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "ADMIN", "TUTOR", "STUDENT":
		return true
	}
	return false
}

// Hashtag validates the "hashtag" tag on each element of a hashtag list.
func Hashtag(fl validator.FieldLevel) bool {
	return hashtagPattern.MatchString(fl.Field().String())
}

// Register installs the custom rules on a validator instance.
func Register(v *validator.Validate) error {
	if err := v.RegisterValidation("rolevalue", RoleValue); err != nil {
		return err
	}
	return v.RegisterValidation("hashtag", Hashtag)
}
