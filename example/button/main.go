package main

import (
	"context"
	"fmt"
	"html"
	"log"
	"os"

	"github.com/uispecx/uispec"
	"github.com/uispecx/uispec/runner"
)

// Button is a minimal server-rendered component: a props struct with a
// render function. Its suite checks that every variant renders without
// failing.
type Button struct {
	Label    string
	Disabled bool
}

func renderButton(c uispec.Component) (uispec.RenderResult, error) {
	b, ok := c.(Button)
	if !ok {
		return nil, fmt.Errorf("expected Button, got %T", c)
	}
	if b.Label == "" {
		return nil, fmt.Errorf("button needs a label")
	}
	if b.Disabled {
		return fmt.Sprintf("<button disabled>%s</button>", html.EscapeString(b.Label)), nil
	}
	return fmt.Sprintf("<button>%s</button>", html.EscapeString(b.Label)), nil
}

func buildButtonSuite(fw uispec.Framework) error {
	return uispec.BuildSuite(fw, Button{Label: "Save"},
		uispec.Options{
			BaseTitle: "renders",
			Render:    renderButton,
		},
		[]uispec.Case{
			{},
			{Suffix: "disabled", Component: Button{Label: "Save", Disabled: true}},
			{Suffix: "long label", Component: Button{Label: "Save all open documents"}},
		},
	)
}

func main() {
	r := runner.New(runner.WithVerbose())
	if err := buildButtonSuite(r); err != nil {
		log.Fatalf("failed to build suite: %v", err)
	}

	summary, err := r.Run(context.Background())
	if err != nil {
		log.Fatalf("run failed: %v", err)
	}
	if !summary.Ok() {
		os.Exit(1)
	}
}
