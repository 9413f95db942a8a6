// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// symbolRegex matches exchange ticker symbols: 1-8 uppercase letters.
var symbolRegex = regexp.MustCompile(`^[A-Z]{1,8}$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("instrument_symbol", validateInstrumentSymbol)
		_ = v.RegisterValidation("instrument_category", validateInstrumentCategory)
		_ = v.RegisterValidation("trade_side", validateTradeSide)
	}
}

func validateInstrumentSymbol(fl validator.FieldLevel) bool {
	return symbolRegex.MatchString(fl.Field().String())
}

func validateInstrumentCategory(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "ordinary", "preferred":
		return true
	}
	return false
}

func validateTradeSide(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "buy", "sell":
		return true
	}
	return false
}
