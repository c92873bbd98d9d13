// Package domain holds the shared kernel every bounded context builds on:
// value objects, entity identity and the errors the repository layer raises.
package domain

import "reflect"

// ValueObject is an immutable domain value compared by its fields rather than
// by identity.
type ValueObject interface {
	Equals(other ValueObject) bool
}

var valueObjectType = reflect.TypeOf((*ValueObject)(nil)).Elem()

// StructurallyEqual reports whether a and b have the same concrete type and
// all of their declared fields are equal. Nested value objects are compared
// through their own Equals, maps ignore key order and slices compare
// element-wise. A nil on either side is never equal.
//
// Value objects implement Equals by delegating here:
//
//	func (m Money) Equals(other ValueObject) bool { return StructurallyEqual(m, other) }
func StructurallyEqual(a, b ValueObject) bool {
	if isNil(a) || isNil(b) {
		return false
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	return fieldsEqual(va, vb)
}

func isNil(v ValueObject) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// valuesEqual compares two values of the same type. It defers to Equals for
// nested value objects it is allowed to call into.
func valuesEqual(a, b reflect.Value) bool {
	if a.Type().Implements(valueObjectType) && a.CanInterface() && b.CanInterface() {
		if a.Kind() == reflect.Pointer && (a.IsNil() || b.IsNil()) {
			return a.IsNil() && b.IsNil()
		}
		return a.Interface().(ValueObject).Equals(b.Interface().(ValueObject))
	}
	return fieldsEqual(a, b)
}

func fieldsEqual(a, b reflect.Value) bool {
	switch a.Kind() {
	case reflect.Pointer:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() && b.IsNil()
		}
		if a.Pointer() == b.Pointer() {
			return true
		}
		return valuesEqual(a.Elem(), b.Elem())
	case reflect.Interface:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() && b.IsNil()
		}
		ea, eb := a.Elem(), b.Elem()
		if ea.Type() != eb.Type() {
			return false
		}
		return valuesEqual(ea, eb)
	case reflect.Struct:
		for i := 0; i < a.NumField(); i++ {
			if !valuesEqual(a.Field(i), b.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Slice, reflect.Array:
		if a.Len() != b.Len() {
			return false
		}
		for i := 0; i < a.Len(); i++ {
			if !valuesEqual(a.Index(i), b.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Map:
		if a.Len() != b.Len() {
			return false
		}
		iter := a.MapRange()
		for iter.Next() {
			other := b.MapIndex(iter.Key())
			if !other.IsValid() || !valuesEqual(iter.Value(), other) {
				return false
			}
		}
		return true
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return a.IsNil() && b.IsNil()
	case reflect.Bool:
		return a.Bool() == b.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Int() == b.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return a.Uint() == b.Uint()
	case reflect.Float32, reflect.Float64:
		return a.Float() == b.Float()
	case reflect.Complex64, reflect.Complex128:
		return a.Complex() == b.Complex()
	case reflect.String:
		return a.String() == b.String()
	default:
		return false
	}
}
