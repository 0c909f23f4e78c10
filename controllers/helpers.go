package controllers

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// bindingErrors converts gin binding failures into the field-keyed error map
// the forms expect. Non-validator errors come back under a generic key.
func bindingErrors(err error) map[string]string {
	fieldErrors := make(map[string]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fieldErrors["request"] = err.Error()
		return fieldErrors
	}

	for _, fe := range verrs {
		field := toSnakeCase(fe.Field())
		switch fe.Tag() {
		case "required":
			fieldErrors[field] = fmt.Sprintf("The %s field is required.", field)
		case "email":
			fieldErrors[field] = fmt.Sprintf("The %s field must be a valid email address.", field)
		case "min":
			fieldErrors[field] = fmt.Sprintf("The %s field must be at least %s.", field, fe.Param())
		case "max":
			fieldErrors[field] = fmt.Sprintf("The %s field may not be greater than %s.", field, fe.Param())
		case "oneof":
			fieldErrors[field] = fmt.Sprintf("The %s field must be one of: %s.", field, fe.Param())
		default:
			fieldErrors[field] = fmt.Sprintf("The %s field is invalid.", field)
		}
	}

	return fieldErrors
}

// toSnakeCase turns a struct field name into its json key. Runs of capitals
// count as one word so OrderID becomes order_id, not order_i_d.
func toSnakeCase(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			newWord := i > 0 && !unicode.IsUpper(runes[i-1])
			acronymEnd := i > 0 && unicode.IsUpper(runes[i-1]) && i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if newWord || acronymEnd {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
