// internal/utils/validator.go
package utils

import (
	"github.com/go-playground/validator/v10"

	"github.com/buildflip/pc-inventory-backend/internal/models"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("component_slot", validateComponentSlot)
	validate.RegisterValidation("pc_status", validatePCStatus)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateComponentSlot(fl validator.FieldLevel) bool {
	return models.ComponentSlot(fl.Field().String()).IsValid()
}

func validatePCStatus(fl validator.FieldLevel) bool {
	return models.PCStatus(fl.Field().String()).IsValid()
}
