package http

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Ticket number prefixes are 2-5 letters; they are uppercased before storage
// so both cases are accepted here.
var prefixPattern = regexp.MustCompile(`^[A-Za-z]{2,5}$`)

// registerValidations installs custom binding rules on Gin's validator.
func registerValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterValidation("areaprefix", func(fl validator.FieldLevel) bool {
		return prefixPattern.MatchString(fl.Field().String())
	})
}
