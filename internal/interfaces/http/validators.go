package http

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/mizan-app/mizan/internal/domain/finance"
	"github.com/mizan-app/mizan/internal/shared/lang"
)

// registerValidators installs the domain-backed binding rules. Tag
// values stay in sync with the domain enumerations instead of being
// repeated as oneof literals.
func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterValidation("taxrate", func(fl validator.FieldLevel) bool {
		return finance.IsAllowedTaxRate(fl.Field().Float())
	})

	v.RegisterValidation("planlang", func(fl validator.FieldLevel) bool {
		return lang.IsSupported(fl.Field().String())
	})
}
