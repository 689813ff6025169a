package uispec

import (
	"context"
	"testing"
)

// Test components used across the package tests.

type testWidget struct {
	Label string
}

type testGadget struct {
	Label string
}

type namedByField struct {
	DisplayName string
}

// recordedTest is one Test registration captured by the recorder.
type recordedTest struct {
	name string
	fn   TestFunc
}

// recordedGroup is one Group* registration captured by the recorder.
type recordedGroup struct {
	name  string
	mode  Mode
	tests []recordedTest
}

// recorder is a fake Framework that captures registrations instead of
// running anything, so tests can assert on what BuildSuite registered
// and invoke the captured bodies directly.
type recorder struct {
	groups []*recordedGroup
	cur    *recordedGroup
}

func newRecorder() *recorder {
	return &recorder{}
}

func (r *recorder) group(name string, mode Mode, body func()) {
	g := &recordedGroup{name: name, mode: mode}
	r.groups = append(r.groups, g)
	prev := r.cur
	r.cur = g
	defer func() { r.cur = prev }()
	body()
}

func (r *recorder) Group(name string, body func())     { r.group(name, ModeNormal, body) }
func (r *recorder) GroupSkip(name string, body func()) { r.group(name, ModeSkip, body) }
func (r *recorder) GroupOnly(name string, body func()) { r.group(name, ModeOnly, body) }

func (r *recorder) Test(name string, fn TestFunc) {
	if r.cur == nil {
		panic("Test registered outside a group")
	}
	r.cur.tests = append(r.cur.tests, recordedTest{name: name, fn: fn})
}

// testTitles flattens the registered test names of a single group.
func (r *recorder) testTitles(t *testing.T) []string {
	t.Helper()
	if len(r.groups) != 1 {
		t.Fatalf("expected exactly 1 group, got %d", len(r.groups))
	}
	titles := make([]string, 0, len(r.groups[0].tests))
	for _, rt := range r.groups[0].tests {
		titles = append(titles, rt.name)
	}
	return titles
}

// runRecorded invokes the i-th registered test of the only group.
func (r *recorder) runRecorded(t *testing.T, i int) error {
	t.Helper()
	if len(r.groups) != 1 || i >= len(r.groups[0].tests) {
		t.Fatalf("no recorded test at index %d", i)
	}
	return r.groups[0].tests[i].fn(context.Background())
}

// okRender is a render function that always succeeds.
func okRender(Component) (RenderResult, error) {
	return "<div/>", nil
}
