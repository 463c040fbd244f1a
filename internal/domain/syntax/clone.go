package syntax

import (
	"go/ast"
	"reflect"
)

var (
	objectType = reflect.TypeOf((*ast.Object)(nil))
	scopeType  = reflect.TypeOf((*ast.Scope)(nil))
)

// Clone returns a deep copy of n. Resolver links (*ast.Object, *ast.Scope) are
// shared with the original rather than copied.
func Clone[T ast.Node](n T) T {
	copied, _ := Replace(n, nil, nil).(T)
	return copied
}

// Replace returns a deep copy of root in which the node old (compared by
// reference) is swapped for replacement. The original tree is left untouched.
// A replacement that does not fit the slot old occupies is ignored and the
// copy keeps referencing old there.
func Replace(root, old, replacement ast.Node) ast.Node {
	v := reflect.ValueOf(root)
	if !v.IsValid() || (v.Kind() == reflect.Pointer && v.IsNil()) {
		return root
	}

	copied, _ := copyValue(v, old, replacement).Interface().(ast.Node)

	return copied
}

func copyValue(v reflect.Value, old, replacement ast.Node) reflect.Value {
	switch v.Kind() {
	case reflect.Pointer:
		return copyPointer(v, old, replacement)
	case reflect.Interface:
		if v.IsNil() {
			return v
		}

		inner := copyValue(v.Elem(), old, replacement)
		if inner.IsValid() && inner.Type().AssignableTo(v.Type()) {
			return inner
		}

		return v
	case reflect.Slice:
		if v.IsNil() {
			return v
		}

		out := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := range v.Len() {
			assign(out.Index(i), copyValue(v.Index(i), old, replacement), v.Index(i))
		}

		return out
	default:
		return v
	}
}

func copyPointer(v reflect.Value, old, replacement ast.Node) reflect.Value {
	if v.IsNil() {
		return v
	}

	if old != nil && v.CanInterface() {
		if node, ok := v.Interface().(ast.Node); ok && node == old {
			if replacement == nil {
				return reflect.Zero(v.Type())
			}

			return reflect.ValueOf(replacement)
		}
	}

	if v.Type() == objectType || v.Type() == scopeType || v.Elem().Kind() != reflect.Struct {
		return v
	}

	out := reflect.New(v.Elem().Type())
	out.Elem().Set(v.Elem())

	fields := out.Elem()
	for i := range fields.NumField() {
		field := fields.Field(i)
		if !field.CanSet() {
			continue
		}

		assign(field, copyValue(field, old, replacement), field)
	}

	return out
}

// assign stores value into slot, or fallback when value does not fit.
func assign(slot, value, fallback reflect.Value) {
	if value.IsValid() && value.Type().AssignableTo(slot.Type()) {
		slot.Set(value)
		return
	}

	slot.Set(fallback)
}
