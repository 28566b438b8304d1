package handler

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/fieldtrack-io/fieldtrack/internal/modules/model"
)

// RegisterValidations installs the domain validations on gin's binding
// engine. Call once before building the router.
func RegisterValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("jobtype", func(fl validator.FieldLevel) bool {
		return model.JobType(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("usstate", func(fl validator.FieldLevel) bool {
		return model.ValidUSState(fl.Field().String())
	})
}
