package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "yt-transcribe/internal/app/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report yaml keys, which is what users write in the settings file.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// Validate checks the settings after all overrides have been applied. The
// OpenAI key format is only checked when the openai engine is selected.
func (s *Settings) Validate() error {
	var problems []string
	if err := validate.Struct(s); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		for _, fe := range validationErrors {
			problems = append(problems, describe(fe))
		}
	}

	if s.Engine == EngineOpenAI && s.OpenAIAPIKey != "" {
		if err := ValidateAPIKey(s.OpenAIAPIKey); err != nil {
			problems = append(problems, err.Error())
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return apperrors.Wrap(errors.New(strings.Join(problems, "; ")), apperrors.ErrInvalidConfig.Error())
}

func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Settings.")
	switch fe.Tag() {
	case "required":
		return apperrors.RequiredField(field).Error()
	case "required_if":
		return fmt.Sprintf("%s is required when %s", field, strings.Replace(fe.Param(), " ", " is ", 1))
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", field, fe.Param(), fe.Value())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

// ValidateAPIKey validates the OpenAI API key format
func ValidateAPIKey(apiKey string) error {
	if !strings.HasPrefix(apiKey, "sk-") {
		return fmt.Errorf("invalid %s format: must start with 'sk-'", EnvOpenAIKey)
	}
	if len(apiKey) < 20 {
		return fmt.Errorf("invalid %s format: too short", EnvOpenAIKey)
	}
	return nil
}
