package validator

import (
	"log"
	"reflect"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterGinValidator makes binding errors report uri/json names and adds
// the pathsegment rule.
func RegisterGinValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		Register(v)
	}
}

func Register(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"uri", "json", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})
	err := v.RegisterValidation("pathsegment", pathSegmentValidator)
	if err != nil {
		log.Fatal("register pathsegment validator failed")
	}
}

// pathSegmentValidator accepts values that are not blank and carry no
// slashes or control characters.
var pathSegmentValidator validator.Func = func(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if strings.TrimSpace(value) == "" {
		return false
	}
	return !strings.ContainsFunc(value, func(r rune) bool {
		return r == '/' || unicode.IsControl(r)
	})
}
