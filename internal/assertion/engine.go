package assertion

import "axotly/internal/ast"

// Check evaluates one assertion against a response. A nil failure means
// the assertion held. The engine never returns a non-nil error: every
// failure mode is expressed as an AssertionFailure.
func Check(a ast.Assertion, resp *ast.HttpResponse) *ast.AssertionFailure {
	switch a.Kind {
	case ast.KindBinaryAssertion:
		return checkBinary(a, resp)
	case ast.KindIn:
		return checkIn(a, resp)
	case ast.KindBetween:
		return checkBetween(a, resp)
	case ast.KindExists:
		return checkExists(a, resp)
	case ast.KindUnary:
		return checkUnary(a, resp)
	default:
		return &ast.AssertionFailure{Path: a.Path, Message: "unknown assertion kind"}
	}
}

func checkBinary(a ast.Assertion, resp *ast.HttpResponse) *ast.AssertionFailure {
	actual, ok := Resolve(resp, a.Path)
	if !ok {
		return missingFailure(a.Path, a.Value)
	}

	var pass bool
	switch a.Op {
	case ast.Eq:
		pass = actual.Equal(a.Value)
	case ast.Ne:
		pass = !actual.Equal(a.Value)
	case ast.Gt, ast.Lt, ast.Gte, ast.Lte:
		cmp, comparable := actual.Compare(a.Value)
		if !comparable {
			pass = false
		} else {
			switch a.Op {
			case ast.Gt:
				pass = cmp > 0
			case ast.Lt:
				pass = cmp < 0
			case ast.Gte:
				pass = cmp >= 0
			case ast.Lte:
				pass = cmp <= 0
			}
		}
	}

	if pass {
		return nil
	}
	return comparisonFailure(a.Path, a.Op, a.Value, actual)
}

func checkIn(a ast.Assertion, resp *ast.HttpResponse) *ast.AssertionFailure {
	actual, ok := Resolve(resp, a.Path)
	if !ok {
		return &ast.AssertionFailure{
			Path:     a.Path,
			Expected: strPtr(joinValues(a.Values)),
			Actual:   strPtr("<missing>"),
			Message:  a.Path + " not found",
		}
	}
	for _, v := range a.Values {
		if actual.Equal(v) {
			return nil
		}
	}
	return &ast.AssertionFailure{
		Path:     a.Path,
		Expected: strPtr(joinValues(a.Values)),
		Actual:   strPtr(actual.String()),
		Message:  a.Path + " not in expected set",
	}
}

func checkBetween(a ast.Assertion, resp *ast.HttpResponse) *ast.AssertionFailure {
	actual, ok := Resolve(resp, a.Path)
	if !ok {
		return missingFailure(a.Path, a.Min)
	}
	if actual.Kind != ast.KindNumber || a.Min.Kind != ast.KindNumber || a.Max.Kind != ast.KindNumber {
		return &ast.AssertionFailure{
			Path:    a.Path,
			Actual:  strPtr(actual.String()),
			Message: a.Path + " is not numeric",
		}
	}
	if actual.Num >= a.Min.Num && actual.Num <= a.Max.Num {
		return nil
	}
	return &ast.AssertionFailure{
		Path:     a.Path,
		Expected: strPtr(a.Min.String() + ".." + a.Max.String()),
		Actual:   strPtr(actual.String()),
		Message:  a.Path + " out of range",
	}
}

func checkExists(a ast.Assertion, resp *ast.HttpResponse) *ast.AssertionFailure {
	if _, ok := Resolve(resp, a.Path); ok {
		return nil
	}
	return &ast.AssertionFailure{
		Path:    a.Path,
		Message: a.Path + " does not exist",
	}
}

func checkUnary(a ast.Assertion, resp *ast.HttpResponse) *ast.AssertionFailure {
	actual, ok := Resolve(resp, a.Path)
	if ok && actual.Kind == ast.KindBool && actual.Bool {
		return nil
	}
	actualStr := "<missing>"
	if ok {
		actualStr = actual.String()
	}
	return &ast.AssertionFailure{
		Path:     a.Path,
		Expected: strPtr("true"),
		Actual:   strPtr(actualStr),
		Message:  a.Path + " is not true",
	}
}

func missingFailure(path string, expected ast.Value) *ast.AssertionFailure {
	return &ast.AssertionFailure{
		Path:     path,
		Expected: strPtr(expected.String()),
		Actual:   strPtr("<missing>"),
		Message:  path + " not found",
	}
}

func comparisonFailure(path string, op ast.Operator, expected, actual ast.Value) *ast.AssertionFailure {
	return &ast.AssertionFailure{
		Path:     path,
		Expected: strPtr(expected.String()),
		Actual:   strPtr(actual.String()),
		Message:  path + " " + op.String() + " " + expected.String() + " failed",
	}
}

func strPtr(s string) *string { return &s }

func joinValues(values []ast.Value) string {
	out := "["
	for i, v := range values {
		if i > 0 {
			out += ", "
		}
		out += v.String()
	}
	return out + "]"
}
