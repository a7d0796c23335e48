package utils

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// ParseOptionalUUID returns nil for an empty string and an error for a malformed one.
func ParseOptionalUUID(value string) (*uuid.UUID, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	id, err := uuid.Parse(value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// RowLabel turns a 1-based row index into its letter: 1 -> "A", 26 -> "Z".
func RowLabel(row int) string {
	if row < 1 || row > 26 {
		return ""
	}
	return string(rune('A' + row - 1))
}
