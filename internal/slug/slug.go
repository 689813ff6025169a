package slug

import "unicode"

// Make turns a human test title into a stable machine-readable id:
// letters and digits are lowercased, every other run of characters
// collapses into a single underscore, and leading or trailing
// underscores are dropped.
//
//	Make("renders - a") == "renders_a"
func Make(title string) string {
	if title == "" {
		return title
	}

	var result []rune
	pending := false

	for _, r := range title {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pending && len(result) > 0 {
				result = append(result, '_')
			}
			pending = false
			result = append(result, unicode.ToLower(r))
		default:
			pending = true
		}
	}

	return string(result)
}

// Join combines a group title and a test title into one id.
func Join(group, test string) string {
	g, t := Make(group), Make(test)
	switch {
	case g == "":
		return t
	case t == "":
		return g
	default:
		return g + "." + t
	}
}
