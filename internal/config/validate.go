package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ValidationError describes a config problem. Syntax errors carry a
// position, value errors carry the offending key.
type ValidationError struct {
	FilePath string
	Line     int
	Column   int
	Message  string
	Field    string
}

func (e *ValidationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s", e.FilePath, e.Line, e.Column, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: field '%s': %s", e.FilePath, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.FilePath, e.Message)
}

// ValidateYAMLSyntax parses the file at filePath as YAML and reports the
// first syntax error with its position. A missing or blank file is valid.
func ValidateYAMLSyntax(filePath string) error {
	data, err := os.ReadFile(filePath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil
	case errors.Is(err, fs.ErrPermission):
		return &ValidationError{FilePath: filePath, Message: "permission denied"}
	case err != nil:
		return &ValidationError{FilePath: filePath, Message: err.Error()}
	}

	if strings.TrimSpace(string(data)) == "" {
		return nil
	}

	var node yaml.Node
	err = yaml.Unmarshal(data, &node)
	if err == nil {
		return nil
	}

	var typeErr *yaml.TypeError
	if errors.As(err, &typeErr) {
		return &ValidationError{FilePath: filePath, Message: strings.Join(typeErr.Errors, "; ")}
	}
	line, column := extractLineColumn(err.Error())
	return &ValidationError{
		FilePath: filePath,
		Line:     line,
		Column:   column,
		Message:  cleanYAMLError(err.Error()),
	}
}

// ValidateConfigValues checks cfg against its validate struct tags and the
// marker rules. The first failure is returned as a ValidationError naming
// the config key, e.g. "log_level" or "markers".
func ValidateConfigValues(cfg *Configuration, filePath string) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("koanf")
	})

	err := validate.Struct(cfg)
	var fieldErrs validator.ValidationErrors
	switch {
	case errors.As(err, &fieldErrs) && len(fieldErrs) > 0:
		return &ValidationError{
			FilePath: filePath,
			Field:    configKey(fieldErrs[0].Field()),
			Message:  describeFieldError(fieldErrs[0]),
		}
	case err != nil:
		return &ValidationError{FilePath: filePath, Message: err.Error()}
	}

	// A marker closes its own heading bracket ("## [" + marker + "]").
	for _, m := range cfg.Markers {
		if strings.ContainsAny(m, "[]") {
			return &ValidationError{
				FilePath: filePath,
				Field:    "markers",
				Message:  fmt.Sprintf("marker %q must not contain brackets", m),
			}
		}
	}

	return nil
}

// configKey strips the element index validator appends for list items,
// so "markers[0]" reports as "markers".
func configKey(field string) string {
	if i := strings.IndexByte(field, '['); i > 0 {
		return field[:i]
	}
	return field
}

// extractLineColumn reads the position out of a yaml.v3 error such as
// "yaml: line 5: could not find expected ':'". It returns 0, 0 when absent.
func extractLineColumn(errMsg string) (line, column int) {
	if n, _ := fmt.Sscanf(errMsg, "yaml: line %d: column %d:", &line, &column); n == 2 {
		return line, column
	}
	if n, _ := fmt.Sscanf(errMsg, "yaml: line %d:", &line); n == 1 {
		return line, 1
	}
	return 0, 0
}

// cleanYAMLError drops the "yaml: line N:" prefix, which ValidationError
// already renders as file:line:column.
func cleanYAMLError(errMsg string) string {
	if !strings.HasPrefix(errMsg, "yaml:") {
		return errMsg
	}
	if i := strings.LastIndex(errMsg, ": "); i > 0 {
		return errMsg[i+2:]
	}
	return errMsg
}

func describeFieldError(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fieldErr.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fieldErr.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s character(s) long", fieldErr.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fieldErr.Param(), " ", ", "))
	default:
		return fmt.Sprintf("failed validation: %s", fieldErr.Tag())
	}
}
