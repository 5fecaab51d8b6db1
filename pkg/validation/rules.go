package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"inventory-system/internal/entities"
)

var (
	okeiCodeRe = regexp.MustCompile(`^\d{3,4}$`)
	loginRe    = regexp.MustCompile(`^[a-zA-Z0-9._-]{3,64}$`)
)

// registerRules регистрирует теги, которые мы используем в struct tags
func registerRules(v *validator.Validate) error {
	if err := v.RegisterValidation("transfer_type", isKnownTransferType); err != nil {
		return err
	}
	if err := v.RegisterValidation("okei", isOKEICode); err != nil {
		return err
	}
	if err := v.RegisterValidation("login", isLogin); err != nil {
		return err
	}
	return nil
}

// isKnownTransferType - в базу пишем только известные направления, "не указано" допустимо лишь при чтении
func isKnownTransferType(fl validator.FieldLevel) bool {
	return entities.ParseTransferType(fl.Field().String()) != entities.TransferUnspecified
}

// isOKEICode - код единицы измерения по ОКЕИ, например 796 (штука)
func isOKEICode(fl validator.FieldLevel) bool {
	return okeiCodeRe.MatchString(fl.Field().String())
}

func isLogin(fl validator.FieldLevel) bool {
	return loginRe.MatchString(fl.Field().String())
}
