package main

import (
	"testing"

	"github.com/uispecx/uispec"
)

func TestNavSuite(t *testing.T) {
	if err := buildNavSuite(uispec.GoTesting(t)); err != nil {
		t.Fatal(err)
	}
}

func TestA11yCases_keepRuleFields(t *testing.T) {
	for _, c := range a11yCases() {
		if _, ok := c.Fields["rule"]; !ok {
			t.Errorf("case %q lost its rule field", c.Suffix)
		}
	}
}

func TestRenderNav_requiresLabelOnLandmark(t *testing.T) {
	shell := ThemeShell{Child: NavMenu{Landmarked: true}}
	if _, err := renderNav(shell); err == nil {
		t.Fatal("expected an error for a landmark nav without a label")
	}
}
