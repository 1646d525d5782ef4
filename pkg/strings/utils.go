package strings

import (
	"fmt"
	"strconv"
	"time"
)

type SupportedValueParsingTypes interface {
	bool | string | time.Duration
}

// ParseTypedValue converts a raw string to T.
func ParseTypedValue[T SupportedValueParsingTypes](value string) (T, error) {
	var v any
	var err error
	var blank T
	switch any(blank).(type) {
	case bool:
		v, err = strconv.ParseBool(value)
	case string:
		v = value
	case time.Duration:
		v, err = time.ParseDuration(value)
	default:
		return blank, fmt.Errorf("unsupported value type %T", blank)
	}

	if err != nil {
		return blank, fmt.Errorf("failed to convert to type %T: %w", blank, err)
	}
	return v.(T), nil
}
