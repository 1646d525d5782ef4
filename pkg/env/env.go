package env

import (
	"fmt"
	"os"
	"strings"

	pkgstrings "github.com/klwxsrx/simctl/pkg/strings"
)

// Key builds a prefixed environment key, e.g. Key("simctl", "backendURL") is SIMCTL_BACKEND_URL.
func Key(prefix, name string) string {
	return pkgstrings.ToScreamingSnakeCase(prefix) + "_" + pkgstrings.ToScreamingSnakeCase(name)
}

func Parse[T pkgstrings.SupportedValueParsingTypes](key string) (T, error) {
	var blank T
	str, ok := os.LookupEnv(key)
	if !ok {
		return blank, notFoundError[T](key)
	}

	v, err := pkgstrings.ParseTypedValue[T](strings.TrimSpace(str))
	if err != nil {
		return blank, fmt.Errorf("%w: %w", invalidValueError[T](key), err)
	}
	return v, nil
}

// ParseOptional returns nil when the variable is not set.
func ParseOptional[T pkgstrings.SupportedValueParsingTypes](key string) (*T, error) {
	if _, ok := os.LookupEnv(key); !ok {
		return nil, nil
	}

	v, err := Parse[T](key)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func ParseOrDefault[T pkgstrings.SupportedValueParsingTypes](key string, def T) (T, error) {
	v, err := ParseOptional[T](key)
	if err != nil || v == nil {
		return def, err
	}
	return *v, nil
}

func notFoundError[T any](key string) error {
	var blank T
	return fmt.Errorf("env %s with type %T not found", key, blank)
}

func invalidValueError[T any](key string) error {
	var blank T
	return fmt.Errorf("env %s with type %T has invalid value", key, blank)
}
