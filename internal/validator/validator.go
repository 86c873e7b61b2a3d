package validator

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var currencyRgx = regexp.MustCompile(`^[A-Za-z]{3}$`)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("currency", validateCurrency)
	validator.RegisterValidation("interval", validateInterval)
	validator.RegisterValidation("positive_amount", validatePositiveAmount)

	return validator
}

func validateCurrency(fl validator.FieldLevel) bool {
	return currencyRgx.MatchString(fl.Field().String())
}

// Stripe prices recur only on monthly or yearly intervals here.
func validateInterval(fl validator.FieldLevel) bool {
	interval := fl.Field().String()

	return interval == "month" || interval == "year"
}

func validatePositiveAmount(fl validator.FieldLevel) bool {
	amount, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}

	return amount.IsPositive()
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", err.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", err.Param())
	case "currency":
		return "must be a three-letter currency code"
	case "interval":
		return "must be 'month' or 'year'"
	case "positive_amount":
		return "must be a positive amount"
	default:
		return "is invalid"
	}
}
