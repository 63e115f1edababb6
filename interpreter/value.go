/*
File    : plox/interpreter/value.go

Runtime values have no wrapper type: nil, bool, int64, float64, and
string are Go's own types, and callables/classes/instances are the
concrete types defined in this package. A value's dynamic Go type IS
its Lox type, so truthiness/equality/stringification are plain
functions over interface{} rather than methods on a Value interface.
*/
package interpreter

import (
	"fmt"
	"strconv"
)

// isTruthy implements Lox truthiness: nil and false are falsey,
// everything else — including 0, 0.0, and "" — is truthy.
func isTruthy(v interface{}) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// isEqual compares two runtime values for Lox `==`. Numbers compare
// across the int64/float64 split by value; everything else compares
// with Go's own equality, which is exact for strings and bools and
// identity for pointers (so two distinct instances are never equal).
func isEqual(a, b interface{}) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}

	switch av := a.(type) {
	case int64:
		switch bv := b.(type) {
		case int64:
			return av == bv
		case float64:
			return float64(av) == bv
		}
		return false
	case float64:
		switch bv := b.(type) {
		case int64:
			return av == float64(bv)
		case float64:
			return av == bv
		}
		return false
	default:
		return a == b
	}
}

func isNumber(v interface{}) bool {
	switch v.(type) {
	case int64, float64:
		return true
	}
	return false
}

func asFloat(v interface{}) float64 {
	switch n := v.(type) {
	case int64:
		return float64(n)
	case float64:
		return n
	}
	return 0
}

// stringify renders a value the way `print` and the REPL's result echo
// do. A float that happens to be a whole number still prints with a
// trailing ".0" (or in exponent form such as "1e+06" once the shortest
// 'g' formatting chooses it) so it stays visibly distinct from an int
// of the same magnitude.
func stringify(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case bool:
		if val {
			return "true"
		}
		return "false"
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		s := strconv.FormatFloat(val, 'g', -1, 64)
		if !hasFloatMarker(s) {
			s += ".0"
		}
		return s
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	default:
		return ""
	}
}

// Stringify exposes stringify to other packages, for the REPL's
// bare-expression fallback to render a value the same way `print` does.
func Stringify(v interface{}) string {
	return stringify(v)
}

func hasFloatMarker(s string) bool {
	for _, c := range s {
		if c == '.' || c == 'e' || c == 'E' {
			return true
		}
	}
	return false
}
