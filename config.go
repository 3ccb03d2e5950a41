package xaction

import "fmt"

// Config controls registry behavior.
type Config struct {
	// Strict turns duplicate claims into ErrDuplicateTag instead of a warning.
	Strict bool
	// MaxTags caps the number of claimed tags (0 = unlimited).
	MaxTags int
}

// Defaults returns a lenient, unbounded Config.
func Defaults() Config {
	return Config{}
}

// Validate checks Config for obvious mistakes.
func (c Config) Validate() error {
	if c.MaxTags < 0 {
		return fmt.Errorf("%w: max_tags must be >= 0, got %d", ErrInvalidConfig, c.MaxTags)
	}
	return nil
}

// ConfigFromMap safely converts a generic map to Config with defaults.
func ConfigFromMap(m map[string]any) Config {
	getInt := func(k string, d int) int {
		switch v := m[k].(type) {
		case int:
			return v
		case int32:
			return int(v)
		case int64:
			return int(v)
		case float64:
			return int(v)
		default:
			return d
		}
	}

	getBool := func(k string, d bool) bool {
		if v, ok := m[k].(bool); ok {
			return v
		}
		return d
	}

	c := Defaults()
	return Config{
		Strict:  getBool("strict", c.Strict),
		MaxTags: getInt("max_tags", c.MaxTags),
	}
}

// toMap converts Config to the generic map form accepted by ConfigFromMap.
func (c Config) toMap() map[string]any {
	return map[string]any{
		"strict":   c.Strict,
		"max_tags": c.MaxTags,
	}
}
