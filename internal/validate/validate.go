// Package validate runs declarative shape checks on request bodies before a
// handler executes. Shapes are plain request structs carrying validate tags;
// a failed check short-circuits the pipeline with a 400 envelope listing the
// offending fields.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const localsKey = "validatedBody"

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New()
	// Report field names as they appear on the wire.
	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return val
}

// FieldError describes a single failed check.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Body returns middleware that parses the JSON body into T and validates it.
// On success the parsed value is stashed on the request context for the
// handler; on failure the response is written immediately and the handler
// never runs. Errors other than validation failures propagate to the global
// error handler.
func Body[T any]() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req T
		if err := c.BodyParser(&req); err != nil {
			return failValidation(c, []FieldError{{Field: "body", Message: "must be valid JSON"}})
		}
		if err := v.Struct(&req); err != nil {
			var verrs validator.ValidationErrors
			if !errors.As(err, &verrs) {
				return err
			}
			return failValidation(c, fieldErrors(verrs))
		}
		c.Locals(localsKey, &req)
		return c.Next()
	}
}

// BodyFrom retrieves the struct parsed by Body. Handlers registered without
// the middleware fall back to parsing the body themselves.
func BodyFrom[T any](c *fiber.Ctx) *T {
	if req, ok := c.Locals(localsKey).(*T); ok {
		return req
	}
	var req T
	_ = c.BodyParser(&req)
	return &req
}

func failValidation(c *fiber.Ctx, errs []FieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"status":  "error",
		"message": "Validation failed",
		"errors":  errs,
	})
}

func fieldErrors(verrs validator.ValidationErrors) []FieldError {
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "numeric":
		return "must contain only digits"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "datetime":
		return "must be an ISO 8601 datetime"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
