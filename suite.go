package uispec

import (
	"context"
	"fmt"
)

// BuildSuite registers one grouping block for component with fw,
// containing one test per supplied case (or a single default test when
// no cases are given). The variadic tail accepts the shapes documented
// on ResolveArgs: nothing, a case list, an Options value, or both.
//
// The group is titled after the component's resolved name. Each case
// registers a test titled Options.BaseTitle, or
// "BaseTitle - Suffix" when the case carries a suffix, whose body runs
// the case's Before hook, renders the (wrapped) component, and runs the
// After hook, in that order.
//
// BuildSuite returns an error, without registering further tests, when
// the component has no resolvable name (*NamingError), when a case's
// component resolves to a different name than the suite's
// (*MismatchError), or when the arguments have an invalid shape
// (ErrInvalidArgs). Tests registered before a mid-list mismatch stay
// registered; there is no rollback.
//
// Example:
//
//	err := uispec.BuildSuite(uispec.GoTesting(t), Button{},
//	    uispec.Options{BaseTitle: "renders", Render: render},
//	    []uispec.Case{
//	        {},
//	        {Suffix: "disabled", Component: Button{Disabled: true}},
//	    },
//	)
func BuildSuite(fw Framework, component Component, args ...any) error {
	opts, cases, err := ResolveArgs(args...)
	if err != nil {
		return err
	}

	suiteName, err := ComponentName(component)
	if err != nil {
		return err
	}

	if len(cases) == 0 {
		// every suite registers at least one test
		cases = []Case{{}}
	}

	group := fw.Group
	switch opts.Mode {
	case ModeSkip:
		group = fw.GroupSkip
	case ModeOnly:
		group = fw.GroupOnly
	}

	var regErr error
	group(suiteName, func() {
		if opts.Inside != nil {
			opts.Inside()
		}
		for _, c := range cases {
			subject := c.Component
			if subject == nil {
				subject = component
			}

			name, err := ComponentName(subject)
			if err != nil {
				regErr = err
				return
			}
			if name != suiteName {
				regErr = &MismatchError{Want: suiteName, Got: name}
				return
			}

			title := opts.BaseTitle
			if c.Suffix != "" {
				title = opts.BaseTitle + " - " + c.Suffix
			}

			fw.Test(title, runCase(subject, c, opts, title))
		}
	})

	return regErr
}

// runCase closes over one resolved case and returns its test body:
// Before, render, After, strictly in order, stopping at the first
// failure. Hook errors pass through untouched; render failures are
// wrapped in *RenderError.
func runCase(subject Component, c Case, opts Options, title string) TestFunc {
	return func(ctx context.Context) error {
		if c.Before != nil {
			if err := c.Before(ctx); err != nil {
				return err
			}
		}

		wrapped := subject
		if opts.Wrap != nil {
			wrapped = opts.Wrap(subject)
		}
		if err := renderSubject(opts.Render, wrapped, title); err != nil {
			return err
		}

		if c.After != nil {
			if err := c.After(ctx); err != nil {
				return err
			}
		}
		return nil
	}
}

// renderSubject invokes render and converts any failure, error return or
// panic, into a *RenderError.
func renderSubject(render RenderFunc, subject Component, title string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &RenderError{Title: title, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	if _, rerr := render(subject); rerr != nil {
		return &RenderError{Title: title, Err: rerr}
	}
	return nil
}
