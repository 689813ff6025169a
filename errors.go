package uispec

import (
	"errors"
	"fmt"
)

// ErrInvalidArgs is returned by ResolveArgs when the argument list does not
// match any of the documented call shapes. Use errors.Is to detect it:
//
//	_, _, err := uispec.ResolveArgs("not an option")
//	if errors.Is(err, uispec.ErrInvalidArgs) { ... }
var ErrInvalidArgs = errors.New("uispec: invalid argument shape")

// NamingError reports a component whose display name cannot be resolved.
// It is returned during suite registration, before any group or test is
// registered with the framework.
//
// Anonymous components (closures, anonymous structs, wrapped values that
// lose their type name) are the usual cause. Give the component a named
// type, a DisplayName() method, or a DisplayName field to fix it.
type NamingError struct {
	// Component is the value whose name could not be resolved.
	Component Component
}

func (e *NamingError) Error() string {
	return fmt.Sprintf("uispec: cannot resolve a display name for component of type %T: anonymous components need a named type, a DisplayName() method, or a DisplayName field", e.Component)
}

// MismatchError reports a test case whose component resolves to a different
// name than the suite's primary component. It is returned during suite
// registration; cases after the mismatching one are not registered.
type MismatchError struct {
	// Want is the suite's primary component name.
	Want string
	// Got is the name the offending case's component resolved to.
	Got string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("uispec: test case component %q does not match suite component %q: every case in a suite must render the same component", e.Got, e.Want)
}

// RenderError reports a render call that failed, either by returning an
// error or by panicking. The contract under test is that rendering the
// wrapped component must not fail.
type RenderError struct {
	// Title is the registered title of the failing test case.
	Title string
	// Err is the underlying render error, or a wrapped panic value.
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("uispec: %s: render must not fail: %v", e.Title, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
