package optionoids

import "reflect"

// sameValue compares a value against a variant. Numbers compare by numeric
// value regardless of their Go type; integers compare exactly.
func sameValue(v, variant any) bool {
	if a, ok := number(v); ok {
		if b, ok := number(variant); ok {
			return sameNumber(a, b)
		}
		return false
	}
	a, b := reflect.ValueOf(v), reflect.ValueOf(variant)
	if a.IsValid() && b.IsValid() && a.Type() == b.Type() && a.Comparable() && b.Comparable() {
		return v == variant
	}
	return reflect.DeepEqual(v, variant)
}

func number(v any) (reflect.Value, bool) {
	if v == nil || !Number.Match(v) {
		return reflect.Value{}, false
	}
	return reflect.ValueOf(v), true
}

func sameNumber(a, b reflect.Value) bool {
	switch {
	case a.CanFloat() || b.CanFloat():
		return toFloat(a) == toFloat(b)
	case a.CanInt() && b.CanInt():
		return a.Int() == b.Int()
	case a.CanUint() && b.CanUint():
		return a.Uint() == b.Uint()
	case a.CanInt():
		return a.Int() >= 0 && uint64(a.Int()) == b.Uint()
	default:
		return b.Int() >= 0 && uint64(b.Int()) == a.Uint()
	}
}

func toFloat(rv reflect.Value) float64 {
	switch {
	case rv.CanInt():
		return float64(rv.Int())
	case rv.CanUint():
		return float64(rv.Uint())
	}
	return rv.Float()
}
