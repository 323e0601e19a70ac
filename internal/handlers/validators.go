package handlers

import (
	"sync"

	"github.com/SscSPs/charity_box_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// RegisterValidators adds the custom binding tags used by the request DTOs.
func RegisterValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("supported_currency", supportedCurrency)
	})
}

// supportedCurrency accepts fields holding an exact supported code.
func supportedCurrency(fl validator.FieldLevel) bool {
	code, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	_, err := domain.ParseCurrency(code)
	return err == nil
}
