package validation

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"

	"commerce-api/pkg/apiresponse"
)

const (
	PartBody   = "body"
	PartParams = "params"
	PartQuery  = "query"

	MessageValidationError = "Validation error"
	MessageInvalidInput    = "Invalid input data"
)

// Schema builds a fresh payload value for one request part. Decoding into a
// typed struct drops unknown fields, which is the stripping behavior the
// pipeline relies on.
type Schema func() interface{}

type Schemas struct {
	Body   Schema
	Params Schema
	Query  Schema
}

// Normalizer applies coercions (trim, lowercase) before validation.
type Normalizer interface {
	Normalize()
}

// Defaulter substitutes default values into zero fields before validation.
type Defaulter interface {
	SetDefaults()
}

// Messager maps "Field.tag" keys to human readable messages.
type Messager interface {
	Messages() map[string]string
}

// Middleware validates the declared parts independently, collecting every
// error instead of failing fast. On success the sanitized value replaces the
// raw part; on any failure the request is rejected with a single envelope
// whose error detail is keyed by part name.
func Middleware(schemas Schemas) fiber.Handler {
	validate := validator.New()
	registerCustomValidations(validate)

	return func(ctx *fiber.Ctx) error {
		validationErrors := map[string][]string{}

		if schemas.Body != nil {
			value := schemas.Body()
			if err := json.Unmarshal(ctx.Body(), value); err != nil {
				validationErrors[PartBody] = []string{MessageInvalidInput}
			} else {
				validatePart(ctx, validate, PartBody, value, validationErrors)
			}
		}

		if schemas.Params != nil {
			value := schemas.Params()
			if err := ctx.ParamsParser(value); err != nil {
				validationErrors[PartParams] = []string{MessageInvalidInput}
			} else {
				validatePart(ctx, validate, PartParams, value, validationErrors)
			}
		}

		if schemas.Query != nil {
			value := schemas.Query()
			if err := ctx.QueryParser(value); err != nil {
				validationErrors[PartQuery] = []string{MessageInvalidInput}
			} else {
				validatePart(ctx, validate, PartQuery, value, validationErrors)
			}
		}

		if len(validationErrors) > 0 {
			return apiresponse.RespondError(
				ctx,
				MessageValidationError,
				fiber.StatusBadRequest,
				apiresponse.DetailFields(validationErrors),
				nil,
			)
		}

		return ctx.Next()
	}
}

// Value returns the sanitized payload the middleware stored for a part, or
// nil when the part was never validated.
func Value[T any](ctx *fiber.Ctx, part string) *T {
	value, _ := ctx.Locals(localsKey(part)).(*T)
	return value
}

func validatePart(
	ctx *fiber.Ctx,
	validate *validator.Validate,
	part string,
	value interface{},
	validationErrors map[string][]string,
) {
	if normalizer, isOk := value.(Normalizer); isOk {
		normalizer.Normalize()
	}

	if defaulter, isOk := value.(Defaulter); isOk {
		defaulter.SetDefaults()
	}

	err := validate.Struct(value)
	if err == nil {
		ctx.Locals(localsKey(part), value)
		return
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		validationErrors[part] = []string{MessageInvalidInput}
		return
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fieldError := range fieldErrors {
		messages = append(messages, messageFor(value, fieldError))
	}
	validationErrors[part] = messages
}

func messageFor(value interface{}, fieldError validator.FieldError) string {
	if messager, isOk := value.(Messager); isOk {
		key := fmt.Sprintf("%s.%s", fieldError.Field(), fieldError.Tag())
		if message, isOk := messager.Messages()[key]; isOk {
			return message
		}
	}

	return fmt.Sprintf("%s failed on the %s rule", fieldError.Field(), fieldError.Tag())
}

func registerCustomValidations(validate *validator.Validate) {
	// validator has no built-in "contains no whitespace at all" rule
	_ = validate.RegisterValidation("nowhitespace", func(fl validator.FieldLevel) bool {
		return strings.IndexFunc(fl.Field().String(), unicode.IsSpace) < 0
	})
}

func localsKey(part string) string {
	return "validated:" + part
}
