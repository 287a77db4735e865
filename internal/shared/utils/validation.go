package utils

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Limits for bridge requests
const (
	MaxBodySize   = 1 * 1024 * 1024 // 1MB request body
	MaxArgsDepth  = 8
	MaxNameLength = 128
)

// NamePattern allows alphanumeric, dots, hyphens and underscores
var NamePattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

// ValidateString validates a string field with length and content checks
func ValidateString(value, fieldName string, minLen, maxLen int, required bool) error {
	if required && value == "" {
		return fmt.Errorf("%s is required", fieldName)
	}

	if value == "" && !required {
		return nil
	}

	length := utf8.RuneCountInString(value)
	if length < minLen {
		return fmt.Errorf("%s must be at least %d characters", fieldName, minLen)
	}
	if length > maxLen {
		return fmt.Errorf("%s must not exceed %d characters", fieldName, maxLen)
	}

	if strings.Contains(value, "\x00") {
		return fmt.Errorf("%s contains invalid characters", fieldName)
	}

	return nil
}

// ValidateName validates a module, method or capability name
func ValidateName(name, fieldName string) error {
	if err := ValidateString(name, fieldName, 1, MaxNameLength, true); err != nil {
		return err
	}
	if !NamePattern.MatchString(name) {
		return fmt.Errorf("%s contains invalid characters (only alphanumeric, dots, hyphens, and underscores allowed)", fieldName)
	}
	return nil
}

// ValidateArgs checks that decoded bridge arguments are not nested too deeply
func ValidateArgs(args map[string]interface{}) error {
	return checkDepth(args, 0, MaxArgsDepth)
}

func checkDepth(data interface{}, currentDepth int, maxDepth int) error {
	if currentDepth > maxDepth {
		return fmt.Errorf("args nesting depth %d exceeds maximum %d", currentDepth, maxDepth)
	}

	switch v := data.(type) {
	case map[string]interface{}:
		for _, value := range v {
			if err := checkDepth(value, currentDepth+1, maxDepth); err != nil {
				return err
			}
		}
	case []interface{}:
		for _, value := range v {
			if err := checkDepth(value, currentDepth+1, maxDepth); err != nil {
				return err
			}
		}
	}

	return nil
}
