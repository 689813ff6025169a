package uispec

import "context"

// RenderResult is whatever the host's render function produces. uispec
// never inspects it; the contract under test is only that rendering
// does not fail.
type RenderResult any

// RenderFunc renders a component. Supplied by the caller in Options;
// an error return (or a panic) fails the test case it runs in.
type RenderFunc func(c Component) (RenderResult, error)

// WrapFunc wraps the component under test before it is rendered, for
// example in a provider or layout shell. The default is the identity:
// the subject is rendered unwrapped.
type WrapFunc func(c Component) Component

// Hook is a per-case setup or teardown step. Hooks may block; the
// context comes from the framework running the test and carries its
// timeout or cancellation. A non-nil error fails the case.
type Hook func(ctx context.Context) error

// Mode selects which grouping primitive the suite is registered with.
// Skip and only semantics are owned entirely by the framework; uispec
// only picks the primitive to call. Individual tests are always
// registered with the plain test primitive.
type Mode int

const (
	// ModeNormal registers the group with the plain primitive.
	ModeNormal Mode = iota
	// ModeSkip registers the group with the framework's skip variant.
	ModeSkip
	// ModeOnly registers the group with the framework's only variant.
	ModeOnly
)

func (m Mode) String() string {
	switch m {
	case ModeSkip:
		return "skip"
	case ModeOnly:
		return "only"
	default:
		return "normal"
	}
}

// Options is the suite-wide configuration for BuildSuite.
type Options struct {
	// BaseTitle prefixes every test case's registered title. Required.
	BaseTitle string
	// Render renders each case's wrapped component. Required.
	Render RenderFunc
	// Mode selects the grouping primitive. Zero value is ModeNormal.
	Mode Mode
	// Inside, when set, is called once inside the group body before any
	// test case is registered. It runs synchronously at registration
	// time and exists so callers can attach framework lifecycle hooks.
	Inside func()
	// Wrap wraps each case's component before rendering. Nil means
	// render the subject unwrapped.
	Wrap WrapFunc
}
