package uispec

import "maps"

// Case describes one registered test within a suite.
//
// The first case of a suite usually leaves Suffix and Component empty:
// it inherits the component passed to BuildSuite and is registered under
// the bare BaseTitle. Later cases carry a Suffix to distinguish their
// titles and may carry their own Component value, which must resolve to
// the same name as the suite's primary component.
type Case struct {
	// Suffix is appended to the suite's BaseTitle as
	// "BaseTitle - Suffix". Empty means the bare BaseTitle.
	Suffix string
	// Component is this case's subject. Nil means inherit the suite's
	// primary component.
	Component Component
	// Before runs before the render step. Optional.
	Before Hook
	// After runs after the render step. Optional.
	After Hook
	// Fields carries arbitrary caller-defined data alongside the case.
	// uispec ignores it; it exists for richer case lists projected down
	// with MapCases.
	Fields map[string]any
}

// MapCases projects a case list through fn, producing a new list where
// each entry keeps the original entry's fields and takes the fields fn
// returns, fn winning where it sets one. A zero canonical field in fn's
// result means "no override"; Fields maps are merged per key with fn's
// entries taking precedence. Order and length are preserved, and a nil
// input list is returned as nil.
//
// This is how domain-specific case lists (say, accessibility cases with
// extra fields) are narrowed to the canonical shape BuildSuite consumes
// without losing the extra data.
func MapCases(list []Case, fn func(Case) Case) []Case {
	if list == nil {
		return nil
	}

	out := make([]Case, len(list))
	for i, c := range list {
		out[i] = mergeCase(c, fn(c))
	}
	return out
}

func mergeCase(base, patch Case) Case {
	merged := base
	if patch.Suffix != "" {
		merged.Suffix = patch.Suffix
	}
	if patch.Component != nil {
		merged.Component = patch.Component
	}
	if patch.Before != nil {
		merged.Before = patch.Before
	}
	if patch.After != nil {
		merged.After = patch.After
	}
	if len(base.Fields)+len(patch.Fields) > 0 {
		fields := make(map[string]any, len(base.Fields)+len(patch.Fields))
		maps.Copy(fields, base.Fields)
		maps.Copy(fields, patch.Fields)
		merged.Fields = fields
	}
	return merged
}
