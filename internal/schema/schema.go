// Package schema validates and normalizes untrusted JSON returned by
// the Holidaze API into the internal models. All functions are pure and
// fail closed on the first mismatch: a missing optional field gets its
// declared default, but a field that is present with the wrong type is
// always rejected, never coerced.
package schema

import (
	"github.com/tidwall/gjson"
)

// Envelope unwraps the {data, meta} wrapper used by API responses.
// data is required; meta is optional and may not exist on non-list
// endpoints.
func Envelope(raw []byte) (data, meta gjson.Result, err error) {
	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		return data, meta, errAt("$", "object")
	}
	data = root.Get("data")
	if !data.Exists() {
		return data, meta, errAt("data", "value")
	}
	return data, root.Get("meta"), nil
}

// requiredString returns the string at path, failing when it is absent
// or not a string.
func requiredString(v gjson.Result, path string) (string, error) {
	f := v.Get(path)
	if f.Type != gjson.String {
		return "", errAt(path, "string")
	}
	return f.Str, nil
}

// optionalString returns the string at path, or "" when the field is
// absent or null.
func optionalString(v gjson.Result, path string) (string, error) {
	f := v.Get(path)
	if !f.Exists() || f.Type == gjson.Null {
		return "", nil
	}
	if f.Type != gjson.String {
		return "", errAt(path, "string or null")
	}
	return f.Str, nil
}

// numberOrDefault returns the number at path, or def when the field is
// absent. A present non-number (including null) is rejected.
func numberOrDefault(v gjson.Result, path string, def float64) (float64, error) {
	f := v.Get(path)
	if !f.Exists() {
		return def, nil
	}
	if f.Type != gjson.Number {
		return 0, errAt(path, "number")
	}
	return f.Num, nil
}

// optionalNumber returns a pointer to the number at path, or nil when
// absent or null.
func optionalNumber(v gjson.Result, path string) (*float64, error) {
	f := v.Get(path)
	if !f.Exists() || f.Type == gjson.Null {
		return nil, nil
	}
	if f.Type != gjson.Number {
		return nil, errAt(path, "number or null")
	}
	n := f.Num
	return &n, nil
}

// requiredBool returns the bool at path, failing when absent or not a
// bool.
func requiredBool(v gjson.Result, path string) (bool, error) {
	f := v.Get(path)
	switch f.Type {
	case gjson.True:
		return true, nil
	case gjson.False:
		return false, nil
	default:
		return false, errAt(path, "boolean")
	}
}

// optionalBool returns the bool at path, or false when absent or null.
func optionalBool(v gjson.Result, path string) (bool, error) {
	f := v.Get(path)
	if !f.Exists() || f.Type == gjson.Null {
		return false, nil
	}
	return requiredBool(v, path)
}

// requiredInt returns the integer at path, failing when absent or not a
// number.
func requiredInt(v gjson.Result, path string) (int, error) {
	f := v.Get(path)
	if f.Type != gjson.Number {
		return 0, errAt(path, "number")
	}
	return int(f.Int()), nil
}

// nullableInt returns a pointer to the integer at path; a JSON null
// yields nil. Absence is rejected: callers use this for fields that the
// API contract always includes.
func nullableInt(v gjson.Result, path string) (*int, error) {
	f := v.Get(path)
	if f.Type == gjson.Null && f.Exists() {
		return nil, nil
	}
	if f.Type != gjson.Number {
		return nil, errAt(path, "number or null")
	}
	n := int(f.Int())
	return &n, nil
}
