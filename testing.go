package uispec

import (
	"context"
	"testing"
)

type goTesting struct {
	t *testing.T
	// cur is the *testing.T of the group currently being populated.
	cur *testing.T
}

// GoTesting adapts a *testing.T into a Framework, mapping groups and
// tests onto subtests.
//
//	func TestButton(t *testing.T) {
//	    err := uispec.BuildSuite(uispec.GoTesting(t), Button{}, opts, cases)
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	}
//
// GroupSkip registers a single skipped subtest in the group's place; its
// body is not executed, so the contained tests never register. GroupOnly
// registers the group normally, since the testing package has no "only"
// primitive; use go test -run to focus on a group.
func GoTesting(t *testing.T) Framework {
	return &goTesting{t: t}
}

func (f *goTesting) target() *testing.T {
	if f.cur != nil {
		return f.cur
	}
	return f.t
}

func (f *goTesting) Group(name string, body func()) {
	f.target().Run(name, func(t *testing.T) {
		prev := f.cur
		f.cur = t
		defer func() { f.cur = prev }()
		body()
	})
}

func (f *goTesting) GroupSkip(name string, body func()) {
	f.target().Run(name, func(t *testing.T) {
		t.Skip("suite skipped")
	})
}

func (f *goTesting) GroupOnly(name string, body func()) {
	f.Group(name, body)
}

func (f *goTesting) Test(name string, fn TestFunc) {
	f.target().Run(name, func(t *testing.T) {
		if err := fn(context.Background()); err != nil {
			t.Fatal(err)
		}
	})
}
