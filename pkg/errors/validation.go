package errors

import (
	"strings"
	"unicode"
)

// maxPathLength bounds user-supplied file paths.
const maxPathLength = 4096

// ValidateInputPath validates a user-supplied input path before it is opened.
//
// Validation rules:
//   - Path cannot be empty or whitespace only
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
//
// Existence is not checked here; opening the path reports SOURCE_UNAVAILABLE.
func ValidateInputPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidPath, "input path cannot be empty")
	}
	return validatePathChars(path)
}

// ValidateOutputPath validates an output path. An empty path means stdout
// and is accepted.
func ValidateOutputPath(path string) error {
	if path == "" {
		return nil
	}
	if strings.HasSuffix(path, "/") {
		return New(ErrCodeInvalidPath, "output path must name a file, got directory %q", path)
	}
	return validatePathChars(path)
}

func validatePathChars(path string) error {
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}
	return nil
}

// ValidatePrecision checks the number of decimals used when printing ratios.
func ValidatePrecision(p int) error {
	if p < 0 || p > 12 {
		return New(ErrCodeInvalidInput, "precision must be between 0 and 12, got %d", p)
	}
	return nil
}
