package slug

import "testing"

func TestMake(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Simple", "renders", "renders"},
		{"Suffixed", "renders - a", "renders_a"},
		{"MixedCase", "Button Group", "button_group"},
		{"Digits", "case 2 of 3", "case_2_of_3"},
		{"LeadingPunctuation", "- weird", "weird"},
		{"TrailingPunctuation", "weird -", "weird"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Make(tt.input); got != tt.want {
				t.Fatalf("Make(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestJoin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		group string
		test  string
		want  string
	}{
		{"Both", "Button", "renders - a", "button.renders_a"},
		{"EmptyGroup", "", "renders", "renders"},
		{"EmptyTest", "Button", "", "button"},
		{"BothEmpty", "", "", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Join(tt.group, tt.test); got != tt.want {
				t.Fatalf("Join(%q, %q) = %q, want %q", tt.group, tt.test, got, tt.want)
			}
		})
	}
}
