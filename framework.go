package uispec

import "context"

// TestFunc is a registered test body. The framework running the test
// supplies the context, which carries its per-test timeout or
// cancellation. A non-nil error fails the test.
type TestFunc func(ctx context.Context) error

// Framework is the describe/test registration surface uispec drives.
// It is an injected collaborator, never a package global: pass
// GoTesting(t) under go test, a runner.Runner for standalone
// execution, or your own adapter.
//
// Group bodies execute synchronously at registration time; the tests
// registered inside them run later, under the framework's own
// scheduling and isolation model. Only groups carry skip/only
// semantics, and those semantics belong entirely to the framework.
type Framework interface {
	// Group registers a named grouping block and runs body to populate it.
	Group(name string, body func())
	// GroupSkip registers the group with the framework's skip variant.
	GroupSkip(name string, body func())
	// GroupOnly registers the group with the framework's only variant.
	GroupOnly(name string, body func())
	// Test registers a single test under the current group.
	Test(name string, fn TestFunc)
}
