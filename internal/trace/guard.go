package trace

// IsValid reports whether a decoded JSON value looks like a type dump entry:
// an object with an "id" key and a non-null "flags" array.
func IsValid(v any) bool {
	m, ok := v.(map[string]any)
	if !ok || m == nil {
		return false
	}
	if _, ok := m["id"]; !ok {
		return false
	}
	flags, ok := m["flags"]
	if !ok || flags == nil {
		return false
	}
	_, ok = flags.([]any)
	return ok
}
