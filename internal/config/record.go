// internal/config/record.go
//
// Flat configuration record and typed accessors.
//
// Context
// -------
// The bootstrap consumes configuration as a flat key→value mapping with
// default fallbacks (`port` → 8000 when absent, and so on), mirroring how
// the record is produced: nested values such as paths are already
// flattened to strings by the variant's Record method.  The accessors
// below keep those lookups honest about types without sprinkling type
// assertions through the callers.
//
// The record is constructed once by Resolve and treated as read-only for
// the rest of the process lifetime.  Nothing in this package mutates a
// Record after it is returned.

package config

// Record is the immutable, fully-resolved set of settings for the active
// environment.  Values are strings, booleans, ints, string slices, or
// lists of string maps; optional URL fields hold nil when disabled.
type Record map[string]any

// Environment reports which variant produced the record.
func (r Record) Environment() Environment {
	return ParseEnvironment(r.String("environment", ""))
}

// String returns the string at key, or def when the key is absent or not
// a string.
func (r Record) String(key, def string) string {
	if s, ok := r[key].(string); ok {
		return s
	}
	return def
}

// Int returns the int at key, or def.
func (r Record) Int(key string, def int) int {
	if n, ok := r[key].(int); ok {
		return n
	}
	return def
}

// Bool returns the bool at key, or def.
func (r Record) Bool(key string, def bool) bool {
	if b, ok := r[key].(bool); ok {
		return b
	}
	return def
}

// Strings returns the string slice at key, or nil.
func (r Record) Strings(key string) []string {
	if v, ok := r[key].([]string); ok {
		return v
	}
	return nil
}

// OptString returns a pointer to the string at key, or nil when the key
// is absent or explicitly disabled.  Documentation endpoints are toggled
// off by storing nil under their key.
func (r Record) OptString(key string) *string {
	if s, ok := r[key].(string); ok {
		return &s
	}
	return nil
}

// Tags returns the documentation grouping metadata, or nil.
func (r Record) Tags() []map[string]string {
	if v, ok := r["tags_metadata"].([]map[string]string); ok {
		return v
	}
	return nil
}

// Contact returns the fixed contact mapping, or nil.
func (r Record) Contact() map[string]string {
	if v, ok := r["contact"].(map[string]string); ok {
		return v
	}
	return nil
}
