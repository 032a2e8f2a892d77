package normalization

import "fmt"

// EnumNormalizer wraps a Normalizer with the name of the setting it governs,
// so warnings and errors read naturally in config output.
type EnumNormalizer[T comparable] struct {
	normalizer *Normalizer[T]
	enumName   string
}

// NewEnumNormalizer creates an enum normalizer with descriptive error messages.
func NewEnumNormalizer[T comparable](enumName string, values map[string]T, defaultValue T) *EnumNormalizer[T] {
	return &EnumNormalizer[T]{
		normalizer: NewNormalizer(values, defaultValue),
		enumName:   enumName,
	}
}

// Normalize converts raw string to enum value, returning default on invalid input.
func (e *EnumNormalizer[T]) Normalize(raw string) T {
	return e.normalizer.Normalize(raw)
}

// NormalizeWithValidation converts raw string to enum value with validation error.
func (e *EnumNormalizer[T]) NormalizeWithValidation(raw string) (T, error) {
	result, err := e.normalizer.NormalizeWithError(raw)
	if err != nil {
		return result, fmt.Errorf("invalid %s: %w", e.enumName, err)
	}
	return result, nil
}

// ValidValues returns all valid enum values for documentation/help.
func (e *EnumNormalizer[T]) ValidValues() []string {
	return e.normalizer.ValidKeys()
}

// Result is the outcome of Resolve.
type Result[T comparable] struct {
	Value   T
	Warning string
}

// Resolve normalizes raw for the given field. Empty input yields the default
// silently; unknown input yields the default plus a warning; input that only
// differed in case or whitespace yields the value plus a warning.
func (e *EnumNormalizer[T]) Resolve(field, raw string) Result[T] {
	if raw == "" {
		return Result[T]{Value: e.normalizer.Default()}
	}

	value, err := e.normalizer.NormalizeWithError(raw)
	if err != nil {
		return Result[T]{
			Value:   e.normalizer.Default(),
			Warning: fmt.Sprintf("unknown %s %q for %s, using %v", e.enumName, raw, field, e.normalizer.Default()),
		}
	}

	if cleaned := fold(raw); cleaned != raw {
		return Result[T]{
			Value:   value,
			Warning: fmt.Sprintf("normalized %s from '%s' to '%s'", field, raw, cleaned),
		}
	}

	return Result[T]{Value: value}
}
