package optionoids

import (
	"reflect"
	"strings"
	"time"
)

// Type describes an acceptable value type for OfTypes. Match is never called
// with a nil value; nil values are exempt from type checks.
type Type struct {
	Name  string
	Match func(v any) bool
}

// TypeFunc builds a Type from a name and a predicate.
func TypeFunc(name string, match func(v any) bool) Type {
	return Type{Name: name, Match: match}
}

// TypeOf matches values assignable to T. T may be an interface type.
func TypeOf[T any]() Type {
	name := reflect.TypeOf((*T)(nil)).Elem().String()
	return Type{Name: name, Match: func(v any) bool {
		_, ok := v.(T)
		return ok
	}}
}

func kindIn(kinds ...reflect.Kind) func(any) bool {
	return func(v any) bool {
		t := reflect.TypeOf(v)
		if t == nil {
			return false
		}
		k := t.Kind()
		for _, want := range kinds {
			if k == want {
				return true
			}
		}
		return false
	}
}

var (
	stringType   = reflect.TypeOf("")
	timeType     = reflect.TypeOf(time.Time{})
	durationType = reflect.TypeOf(time.Duration(0))
)

// Built-in type descriptors.
var (
	// String matches the predeclared string type only.
	String = Type{Name: "string", Match: func(v any) bool {
		return reflect.TypeOf(v) == stringType
	}}
	// Symbol matches named string types such as `type Mode string`.
	Symbol = Type{Name: "symbol", Match: func(v any) bool {
		t := reflect.TypeOf(v)
		return t != nil && t.Kind() == reflect.String && t != stringType
	}}
	Bool = Type{Name: "bool", Match: kindIn(reflect.Bool)}
	Int  = Type{Name: "int", Match: func(v any) bool {
		return reflect.TypeOf(v) != durationType && kindIn(
			reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		)(v)
	}}
	Float    = Type{Name: "float", Match: kindIn(reflect.Float32, reflect.Float64)}
	Number   = Type{Name: "number", Match: func(v any) bool { return Int.Match(v) || Float.Match(v) }}
	Slice    = Type{Name: "slice", Match: kindIn(reflect.Slice, reflect.Array)}
	Map      = Type{Name: "map", Match: kindIn(reflect.Map)}
	Func     = Type{Name: "func", Match: kindIn(reflect.Func)}
	Time     = Type{Name: "time", Match: func(v any) bool { return reflect.TypeOf(v) == timeType }}
	Duration = Type{Name: "duration", Match: func(v any) bool { return reflect.TypeOf(v) == durationType }}
	Any      = Type{Name: "any", Match: func(any) bool { return true }}
)

var builtinTypes = []Type{String, Symbol, Bool, Int, Float, Number, Slice, Map, Func, Time, Duration, Any}

// LookupType resolves a built-in descriptor by its case-insensitive name.
func LookupType(name string) (Type, bool) {
	for _, t := range builtinTypes {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return Type{}, false
}

func typeNames(types []Type) []string {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = t.Name
	}
	return out
}
