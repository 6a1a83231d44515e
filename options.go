package optionoids

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strings"
)

// Options is the key/value set a Checker inspects, typically the keyword-style
// arguments passed into a function.
type Options map[string]any

// ErrNotCoercible is returned by Coerce for inputs that have no key/value form.
var ErrNotCoercible = errors.New("optionoids: value is not coercible to options")

// Expecting returns a hard-mode Checker scoped to keys (all keys when none).
func (o Options) Expecting(keys ...string) *Checker { return Expecting(o, keys...) }

// Checking returns a soft-mode Checker scoped to keys (all keys when none).
func (o Options) Checking(keys ...string) *Checker { return Checking(o, keys...) }

// Keys returns the keys of o in sorted order.
func (o Options) Keys() []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a shallow copy of o. A nil receiver yields an empty set.
func (o Options) Clone() Options {
	out := make(Options, len(o))
	for k, v := range o {
		out[k] = v
	}
	return out
}

// Coerce converts key/value shaped input into Options: maps with string keys,
// url.Values (single values unwrapped) and structs or pointers to structs.
func Coerce(v any) (Options, error) {
	switch t := v.(type) {
	case nil:
		return Options{}, nil
	case Options:
		return t.Clone(), nil
	case map[string]any:
		return Options(t).Clone(), nil
	case url.Values:
		return fromMultiValues(t), nil
	case map[string][]string:
		return fromMultiValues(t), nil
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return Options{}, nil
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("%w: map key type %s", ErrNotCoercible, rv.Type().Key())
		}
		out := make(Options, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = iter.Value().Interface()
		}
		return out, nil
	case reflect.Struct:
		return fromStruct(rv), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrNotCoercible, v)
}

func fromMultiValues(m map[string][]string) Options {
	out := make(Options, len(m))
	for k, vs := range m {
		switch len(vs) {
		case 0:
			out[k] = nil
		case 1:
			out[k] = vs[0]
		default:
			out[k] = append([]string(nil), vs...)
		}
	}
	return out
}

func fromStruct(rv reflect.Value) Options {
	rt := rv.Type()
	out := make(Options, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		key := resolveStructKey(sf)
		if key == "-" {
			continue
		}
		out[key] = rv.Field(i).Interface()
	}
	return out
}

// resolveStructKey resolves the option key of a struct field.
// Priority: optionoids:"name=..." > json tag name > field name; "-" skips the field.
func resolveStructKey(sf reflect.StructField) string {
	if ot := sf.Tag.Get("optionoids"); ot != "" {
		if ot == "-" {
			return "-"
		}
		for _, p := range strings.Split(ot, ",") {
			p = strings.TrimSpace(p)
			if strings.HasPrefix(p, "name=") {
				return strings.TrimPrefix(p, "name=")
			}
		}
	}
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			return "-"
		}
		if i := strings.IndexByte(jt, ','); i >= 0 {
			if i > 0 {
				return jt[:i]
			}
		} else {
			return jt
		}
	}
	return sf.Name
}
