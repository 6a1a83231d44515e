package optionoids

import (
	"reflect"
	"strings"
)

// Blanker lets a value decide whether it counts as blank.
type Blanker interface {
	IsBlank() bool
}

// IsNil reports whether v is nil, including typed nils stored in an interface
// (nil pointers, maps, slices, interfaces, funcs and channels).
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// IsBlank reports whether v is nil, an empty or whitespace-only string, or an
// empty slice, array or map. false and 0 are not blank.
func IsBlank(v any) bool {
	if IsNil(v) {
		return true
	}
	if b, ok := v.(Blanker); ok {
		return b.IsBlank()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return strings.TrimSpace(rv.String()) == ""
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() == 0
	}
	return false
}

// IsPresent is the negation of IsBlank.
func IsPresent(v any) bool { return !IsBlank(v) }
