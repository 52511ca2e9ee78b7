package errors

import (
	"math"
	"regexp"
	"strings"
	"unicode"
)

// hexColorRegex matches #RGB and #RRGGBB colors.
var hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateColor accepts the color forms both drawing contexts understand:
// hex colors (#RGB, #RRGGBB) and ANSI color numbers 0-255.
// The empty string means "default" and is valid.
func ValidateColor(color string) error {
	if color == "" || hexColorRegex.MatchString(color) {
		return nil
	}
	n := 0
	for _, r := range color {
		if r < '0' || r > '9' {
			return New(ErrCodeInvalidColor, "invalid color %q (want #RRGGBB or 0-255)", color)
		}
		n = n*10 + int(r-'0')
		if n > 255 {
			return New(ErrCodeInvalidColor, "ANSI color out of range: %q", color)
		}
	}
	return nil
}

// ValidateFinite rejects NaN and infinite values for a named field.
func ValidateFinite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidConfig, "%s must be a finite number", field)
	}
	return nil
}

// ValidateNonNegative rejects negative or non-finite values for a named field.
func ValidateNonNegative(field string, v float64) error {
	if err := ValidateFinite(field, v); err != nil {
		return err
	}
	if v < 0 {
		return New(ErrCodeInvalidConfig, "%s must not be negative (got %g)", field, v)
	}
	return nil
}

// ValidatePath validates an output file path given on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	for _, part := range strings.Split(strings.ReplaceAll(path, "\\", "/"), "/") {
		if part == ".." {
			return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
		}
	}

	return nil
}
