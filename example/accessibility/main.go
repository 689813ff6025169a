package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/uispecx/uispec"
	"github.com/uispecx/uispec/runner"
)

// NavMenu renders a navigation list.
type NavMenu struct {
	Items      []string
	AriaLabel  string
	Landmarked bool
}

// ThemeShell wraps a subject the way the application shell would.
type ThemeShell struct {
	Theme string
	Child uispec.Component
}

func renderNav(c uispec.Component) (uispec.RenderResult, error) {
	shell, ok := c.(ThemeShell)
	if !ok {
		return nil, fmt.Errorf("expected ThemeShell, got %T", c)
	}
	menu, ok := shell.Child.(NavMenu)
	if !ok {
		return nil, fmt.Errorf("expected NavMenu child, got %T", shell.Child)
	}
	if menu.Landmarked && menu.AriaLabel == "" {
		return nil, fmt.Errorf("landmark nav needs an aria-label")
	}

	markup := "<nav>"
	for _, item := range menu.Items {
		markup += "<li>" + item + "</li>"
	}
	return markup + "</nav>", nil
}

// a11yCases is the richer, domain-specific list: each entry names the
// accessibility rule it exercises. MapCases projects it down to the
// canonical case shape while the rule name stays on Fields.
func a11yCases() []uispec.Case {
	list := []uispec.Case{
		{
			Component: NavMenu{Items: []string{"Home"}, AriaLabel: "Main", Landmarked: true},
			Fields:    map[string]any{"rule": "landmark has label"},
		},
		{
			Component: NavMenu{Items: []string{"Home", "Docs"}},
			Fields:    map[string]any{"rule": "plain list"},
		},
	}

	return uispec.MapCases(list, func(c uispec.Case) uispec.Case {
		return uispec.Case{Suffix: c.Fields["rule"].(string)}
	})
}

func buildNavSuite(fw uispec.Framework) error {
	cases := a11yCases()
	// the first case carries the bare base title
	cases[0].Suffix = ""

	return uispec.BuildSuite(fw, NavMenu{Items: []string{"Home"}},
		uispec.Options{
			BaseTitle: "renders accessibly",
			Render:    renderNav,
			Wrap: func(c uispec.Component) uispec.Component {
				return ThemeShell{Theme: "light", Child: c}
			},
			Inside: func() {
				log.Println("registering accessibility cases")
			},
		},
		cases,
	)
}

func main() {
	r := runner.New()
	if err := buildNavSuite(r); err != nil {
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
