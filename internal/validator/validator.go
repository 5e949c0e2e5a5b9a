package validator

import (
	"errors"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/blanklearn/marketplace-backend/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	govalidator "github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// trans is the singleton English translator for validation errors.
var trans ut.Translator

// now is replaced in tests.
var now = time.Now

// customRules are the marketplace-specific tags and their messages.
var customRules = []struct {
	tag     string
	fn      govalidator.Func
	message string
}{
	{"notpast", notPast, "{0} must be today or a later date (YYYY-MM-DD)"},
	{"demo_grade", oneOfList(model.DemoGradeLevels), "{0} must be one of Grade 1 to Grade 10"},
	{"demo_slot", oneOfList(model.DemoTimeSlots), "{0} must be one of the offered time slots"},
}

// Setup registers the validator with English translations on Gin's binding engine.
// Call once during application startup.
func Setup() {
	if v, ok := binding.Validator.Engine().(*govalidator.Validate); ok {
		// Use JSON tag name for field names in error messages, form tag for queries.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, key := range []string{"json", "form"} {
				name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return fld.Name
		})

		// Register English translations.
		enLocale := en.New()
		uni := ut.New(enLocale, enLocale)
		trans, _ = uni.GetTranslator("en")
		en_translations.RegisterDefaultTranslations(v, trans)

		for _, rule := range customRules {
			_ = v.RegisterValidation(rule.tag, rule.fn)
			registerMessage(v, rule.tag, rule.message)
		}
	}
}

func registerMessage(v *govalidator.Validate, tag, message string) {
	_ = v.RegisterTranslation(tag, trans,
		func(ut ut.Translator) error {
			return ut.Add(tag, message, true)
		},
		func(ut ut.Translator, fe govalidator.FieldError) string {
			t, err := ut.T(tag, fe.Field())
			if err != nil {
				return fe.Error()
			}
			return t
		},
	)
}

// notPast accepts a YYYY-MM-DD date that is not before today.
func notPast(fl govalidator.FieldLevel) bool {
	d, err := time.ParseInLocation(model.DemoDateLayout, fl.Field().String(), time.Local)
	if err != nil {
		return false
	}
	y, m, day := now().Date()
	today := time.Date(y, m, day, 0, 0, 0, 0, time.Local)
	return !d.Before(today)
}

func oneOfList(allowed []string) govalidator.Func {
	return func(fl govalidator.FieldLevel) bool {
		return slices.Contains(allowed, fl.Field().String())
	}
}

// TranslateErrors takes a binding/validation error and returns a map of
// field name → human-readable error message. If the error is not a
// validation error, it returns a single-key map with "detail".
func TranslateErrors(err error) map[string]string {
	fields := make(map[string]string)

	var ve govalidator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			fields[fe.Field()] = fe.Translate(trans)
		}
		return fields
	}

	// Not a validation error (e.g., JSON syntax error).
	fields["detail"] = err.Error()
	return fields
}

// Bind binds and validates the request body into dst.
// Returns nil on success or a translated field error map on failure.
func Bind(c *gin.Context, dst any) map[string]string {
	if err := c.ShouldBindJSON(dst); err != nil {
		return TranslateErrors(err)
	}
	return nil
}

// BindQuery binds and validates query-string parameters into dst.
func BindQuery(c *gin.Context, dst any) map[string]string {
	if err := c.ShouldBindQuery(dst); err != nil {
		return TranslateErrors(err)
	}
	return nil
}
