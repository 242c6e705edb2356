package material

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/unirepo/core"
)

var (
	typeTag  = "materialtype"
	typeText = "invalid material type"
)

func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(typeTag, func(fl validator.FieldLevel) bool {
		return IsValidType(fl.Field().String())
	})
	core.RegisterCustomTranslation(validate, translator, typeTag, typeText)
}
