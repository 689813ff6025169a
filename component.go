package uispec

import (
	"reflect"
)

// Component is a component-identity value: the subject a suite renders.
// The concrete component model (props, markup, reconciliation) belongs to
// the host application; uispec only needs to resolve a display name from
// the value, see ComponentName.
type Component any

// DisplayNamer lets a component carry an explicit display name. It is
// consulted only when the value's type has no usable structural name;
// a named Go type resolves through its type name first.
type DisplayNamer interface {
	DisplayName() string
}

// ComponentName resolves the display name of a component value.
//
// Resolution order:
//  1. the structural (type-level) name of the value,
//  2. an explicit DisplayName() method on the value's type,
//  3. an explicit DisplayName string field on the value itself.
//
// Returns a *NamingError when none of these yields a non-empty name,
// which happens for anonymous structs and closures.
//
// Example:
//
//	type Button struct{ Label string }
//
//	name, err := uispec.ComponentName(Button{Label: "ok"})
//	// name == "Button"
func ComponentName(c Component) (string, error) {
	v := reflect.ValueOf(c)
	if !v.IsValid() {
		return "", &NamingError{Component: c}
	}

	if name := structuralName(v); name != "" {
		return name, nil
	}
	if dn, ok := c.(DisplayNamer); ok {
		if name := dn.DisplayName(); name != "" {
			return name, nil
		}
	}
	if name := displayNameField(v); name != "" {
		return name, nil
	}

	return "", &NamingError{Component: c}
}

// structuralName returns the reflect type name of the component,
// dereferencing one level of pointer. Anonymous structs and unnamed
// func types have no structural name.
func structuralName(v reflect.Value) string {
	t := v.Type()
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// displayNameField reads an exported DisplayName string field off the
// component value, if it has one.
func displayNameField(v reflect.Value) string {
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return ""
	}

	field := v.FieldByName("DisplayName")
	if !field.IsValid() || field.Kind() != reflect.String {
		return ""
	}
	return field.String()
}
