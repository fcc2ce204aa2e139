// Package validation checks client inputs and configuration before any
// request is built.
//
// Two styles are available. The fluent Validator collects field errors for
// ad hoc checks on operation arguments:
//
//	err := validation.New().
//		Required("setName", setName).
//		Required("id", id).
//		Err()
//
// Struct validation uses go-playground/validator tags and reports field names
// taken from mapstructure or json tags:
//
//	type Config struct {
//		APIKey string `mapstructure:"api_key" validate:"required"`
//	}
//	err := validation.Validate(cfg)
//
// Both return *errors.AppError with code INVALID_INPUT and the offending
// fields under the "fields" detail.
package validation
