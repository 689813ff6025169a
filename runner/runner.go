// Package runner is a reference implementation of the uispec.Framework
// contract: a small in-process test runner for component suites that
// executes registered tests outside go test, for smoke harnesses and
// demo programs.
//
// Groups run in registration order. Within a group, tests run
// sequentially by default, or bounded-parallel with WithMaxParallel.
// Groups registered through GroupOnly shadow every other group; groups
// registered through GroupSkip report their tests as skipped without
// running them.
package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/uispecx/uispec"
)

type groupMode int

const (
	modeNormal groupMode = iota
	modeSkip
	modeOnly
)

type test struct {
	name string
	fn   uispec.TestFunc
}

type group struct {
	name  string
	mode  groupMode
	tests []test
}

// Runner collects group and test registrations and executes them with
// Run. It satisfies uispec.Framework, so it can be passed straight to
// uispec.BuildSuite.
type Runner struct {
	opts   *options
	groups []*group
	cur    *group
}

// New creates a Runner. Without options it runs sequentially and writes
// its report to stdout.
func New(opts ...Option) *Runner {
	return &Runner{opts: newOptions(opts...)}
}

func (r *Runner) register(name string, mode groupMode, body func()) {
	g := &group{name: name, mode: mode}
	r.groups = append(r.groups, g)
	prev := r.cur
	r.cur = g
	defer func() { r.cur = prev }()
	body()
}

// Group registers a named group and runs body to populate it.
func (r *Runner) Group(name string, body func()) {
	r.register(name, modeNormal, body)
}

// GroupSkip registers a group whose tests are reported as skipped.
func (r *Runner) GroupSkip(name string, body func()) {
	r.register(name, modeSkip, body)
}

// GroupOnly registers a focused group. When any focused group exists,
// Run executes focused groups exclusively.
func (r *Runner) GroupOnly(name string, body func()) {
	r.register(name, modeOnly, body)
}

// Test registers a test under the group currently being populated.
// Tests registered outside any group land in an implicit unnamed group.
func (r *Runner) Test(name string, fn uispec.TestFunc) {
	g := r.cur
	if g == nil {
		g = &group{}
		r.groups = append(r.groups, g)
		r.cur = g
	}
	g.tests = append(g.tests, test{name: name, fn: fn})
}

// Run executes the registered tests and writes the report. Individual
// test failures land in the Summary; the returned error is reserved for
// harness-level problems such as context cancellation.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	runID := uuid.NewString()
	log := r.opts.log.WithField("run_id", runID)
	start := time.Now()

	var results []Result
	for _, g := range r.selected() {
		res, err := r.runGroup(ctx, log, g)
		if err != nil {
			return nil, err
		}
		results = append(results, res...)
	}

	summary := summarize(runID, results, time.Since(start))
	writeReport(r.opts.out, summary)
	return summary, nil
}

// selected applies only-group shadowing.
func (r *Runner) selected() []*group {
	var only []*group
	for _, g := range r.groups {
		if g.mode == modeOnly {
			only = append(only, g)
		}
	}
	if only != nil {
		return only
	}
	return r.groups
}

func (r *Runner) runGroup(ctx context.Context, log *logrus.Entry, g *group) ([]Result, error) {
	results := make([]Result, len(g.tests))

	if g.mode == modeSkip {
		for i, te := range g.tests {
			results[i] = newResult(g.name, te.name, StatusSkipped, 0, nil)
		}
		return results, nil
	}

	var eg errgroup.Group
	eg.SetLimit(r.opts.cfg.MaxParallel)
	for i, te := range g.tests {
		i, te := i, te
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = r.runTest(ctx, log, g.name, te)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *Runner) runTest(ctx context.Context, log *logrus.Entry, groupName string, te test) Result {
	log = log.WithFields(logrus.Fields{"group": groupName, "test": te.name})
	log.Debug("running test")

	start := time.Now()
	err := callTest(ctx, te.fn)
	elapsed := time.Since(start)

	if err != nil {
		log.WithError(err).Debug("test failed")
		return newResult(groupName, te.name, StatusFailed, elapsed, err)
	}
	log.Debug("test passed")
	return newResult(groupName, te.name, StatusPassed, elapsed, nil)
}

// callTest runs one test body, converting a panic into a failure so a
// broken test cannot take down its siblings.
func callTest(ctx context.Context, fn uispec.TestFunc) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("test panicked: %v", rec)
		}
	}()
	return fn(ctx)
}
