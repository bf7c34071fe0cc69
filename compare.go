package xorerrors

import (
	"cmp"
	"reflect"
)

// Compare returns a total order over errors: -1 if a sorts before b, +1 if
// after, 0 if equal.
//
// Errors of different variants are ordered by Kind; errors of the same
// variant by payload fields in declaration order. A nil Error sorts before
// every non-nil one.
//
// A type that embeds a variant shares its Kind. Such errors are ordered by
// type name against other types, and by message among themselves.
//
// Example:
//
//	slices.SortFunc(errs, xorerrors.Compare)
func Compare(a, b Error) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	if c := cmp.Compare(a.Kind(), b.Kind()); c != 0 {
		return c
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return cmp.Or(cmp.Compare(ta.PkgPath(), tb.PkgPath()), cmp.Compare(ta.String(), tb.String()))
	}
	if c, ok := a.comparePayload(b); ok {
		return c
	}
	return cmp.Compare(a.Error(), b.Error())
}

// Equal reports whether a and b are the same variant with the same payload.
func Equal(a, b Error) bool {
	return Compare(a, b) == 0
}
