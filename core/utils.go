package core

import (
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// ContainsFold reports whether substr is within s, ignoring case.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// DescribeError returns a human readable description of err.
// Validation errors are flattened into "field: message" pairs.
func DescribeError(err error, translator ut.Translator) string {
	switch origErr := errors.Cause(err).(type) {
	case validator.ValidationErrors:
		msgs := make([]string, 0, len(origErr))
		for _, vErr := range origErr {
			if translator != nil {
				msgs = append(msgs, vErr.Field()+": "+vErr.Translate(translator))
			} else {
				msgs = append(msgs, vErr.Error())
			}
		}
		return strings.Join(msgs, "; ")
	case *ValidationError:
		if len(origErr.Fields) == 0 {
			return origErr.Error()
		}
		msgs := make([]string, 0, len(origErr.Fields))
		for _, fErr := range origErr.Fields {
			msgs = append(msgs, fErr.Error)
		}
		return strings.Join(msgs, "; ")
	default:
		return err.Error()
	}
}
