package xaction

import "reflect"

// isZero reports whether v is the zero value of T. It stands in for "falsy":
// 0, "", false, nil pointers, nil slices and maps, and zero structs are all empty.
// Interface-typed values are judged by what they hold, so an any holding 0 is empty too.
func isZero[T any](v T) bool {
	rv := reflect.ValueOf(&v).Elem()
	for rv.Kind() == reflect.Interface && !rv.IsNil() {
		rv = rv.Elem()
	}
	return rv.IsZero()
}
