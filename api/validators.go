package api

import (
	"reflect"
	"strings"
	"sync"

	"github.com/Drolfothesgnir/m4tags/index"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	validatorsOnce sync.Once
	validatorsErr  error
)

// registerValidators configures gin's validator once per process: json tag names
// in errors and the "m4file" tag checking a path is claimed by the scanner.
func registerValidators() error {
	validatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		// Configure the validator to use json tags for field names in errors
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "" {
				name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			}
			if name == "-" {
				return ""
			}
			return name
		})

		validatorsErr = v.RegisterValidation("m4file", validM4File)
	})

	return validatorsErr
}

var validM4File validator.Func = func(fl validator.FieldLevel) bool {
	path, ok := fl.Field().Interface().(string)
	return ok && index.Scannable(path)
}
