package uispec

import "fmt"

// ResolveArgs normalizes the variadic tail of a BuildSuite call into its
// Options and case list. The valid shapes are:
//
//	()                  -> zero Options, no cases
//	([]Case)            -> zero Options, that list
//	(Options)           -> those options, no cases
//	(Options, []Case)   -> both
//
// Disambiguation is purely structural: a single argument that is not a
// case list is always Options, never a list. A nil second argument
// normalizes to an empty list. Pointer forms (*Options) are accepted.
// The contents of the resolved pieces are not validated here; that is
// BuildSuite's job.
//
// Anything outside these shapes returns an error wrapping ErrInvalidArgs.
func ResolveArgs(args ...any) (Options, []Case, error) {
	switch len(args) {
	case 0:
		return Options{}, nil, nil
	case 1:
		if cases, ok := asCaseList(args[0]); ok {
			return Options{}, cases, nil
		}
		opts, err := asOptions(args[0])
		return opts, nil, err
	case 2:
		opts, err := asOptions(args[0])
		if err != nil {
			return Options{}, nil, err
		}
		if args[1] == nil {
			return opts, []Case{}, nil
		}
		cases, ok := asCaseList(args[1])
		if !ok {
			return Options{}, nil, fmt.Errorf("%w: second argument must be []Case, got %T", ErrInvalidArgs, args[1])
		}
		return opts, cases, nil
	default:
		return Options{}, nil, fmt.Errorf("%w: got %d arguments, want at most 2", ErrInvalidArgs, len(args))
	}
}

func asCaseList(arg any) ([]Case, bool) {
	switch v := arg.(type) {
	case []Case:
		return v, true
	default:
		return nil, false
	}
}

func asOptions(arg any) (Options, error) {
	switch v := arg.(type) {
	case nil:
		return Options{}, nil
	case Options:
		return v, nil
	case *Options:
		if v == nil {
			return Options{}, nil
		}
		return *v, nil
	default:
		return Options{}, fmt.Errorf("%w: expected Options or []Case, got %T", ErrInvalidArgs, arg)
	}
}
