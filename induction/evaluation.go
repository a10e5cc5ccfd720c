package induction

import (
	"github.com/go-oner/oner/pkg/errors"
)

// Interpret applies a case set to a single attribute value. It returns the
// predicted class of the first case whose value equals the argument, with
// ok == false when no case matches. Matching is structural equality only.
//
// Within a well-formed rule the case values are unique, so at most one case
// can match; if that invariant is violated the first case in slice order wins.
func Interpret[A, C comparable](cases []Case[A, C], value A) (class C, ok bool) {
	for _, c := range cases {
		if c.Value == value {
			return c.Class, true
		}
	}
	var zero C
	return zero, false
}

// Evaluate scores a case set against parallel value and class slices and
// returns the fraction of rows predicted correctly. Rows whose value matches
// no case count as incorrect, never as an error.
//
// Zero rows yield an accuracy of exactly 0.0 and fire an
// UndefinedMetricWarning through the warning handler. A length mismatch
// between values and classes is the caller's mistake and fails fast with a
// DimensionError.
func Evaluate[A, C comparable](cases []Case[A, C], values []A, classes []C) (Accuracy, error) {
	if len(values) != len(classes) {
		return 0, errors.NewDimensionError("Evaluate", len(values), len(classes), 0)
	}
	if len(values) == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("accuracy", "no samples to evaluate", 0.0))
		return 0, nil
	}

	correct := 0
	for i, v := range values {
		if class, ok := Interpret(cases, v); ok && class == classes[i] {
			correct++
		}
	}
	return Accuracy(float64(correct) / float64(len(values))), nil
}
