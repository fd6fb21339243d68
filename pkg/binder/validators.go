package binder

import (
	"github.com/go-playground/validator/v10"
	"github.com/storagebrowser/storage/pkg/pathref"
)

const pathrefTag = "pathref"

// pathrefValidator ensures the value is a reference that decodes to an
// absolute path. Empty values pass so that `required` stays responsible for
// presence.
func pathrefValidator(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := pathref.Decode(value)
	return err == nil
}
