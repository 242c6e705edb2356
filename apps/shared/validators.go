package shared

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/unirepo/core"
	"github.com/trezcool/unirepo/core/material"
	"github.com/trezcool/unirepo/core/project"
	"github.com/trezcool/unirepo/core/supervision"
	"github.com/trezcool/unirepo/core/user"
)

// NewValidate instantiates the validator for use, with every custom tag translated in english.
func NewValidate() (*validator.Validate, ut.Translator) {
	validate := validator.New()
	translator := core.NewTranslator()

	core.InitValidators(validate, translator)
	user.InitValidators(validate, translator)
	material.InitValidators(validate, translator)
	project.InitValidators(validate, translator)
	supervision.InitValidators(validate, translator)
	return validate, translator
}
