// Package induction implements the 1R (One Rule) rule induction algorithm.
//
// 1R, popularized by Holte (1993), builds one candidate rule per attribute:
// every distinct value of the attribute predicts the class that was most
// frequent among training rows sharing that value, and the rule is scored by
// its training accuracy. The attribute whose rule scores highest becomes the
// classifier. Despite its simplicity, 1R is a strong baseline and a standard
// point of comparison for more sophisticated learners.
//
// The package is generic over the attribute value type A and the class type C;
// both only need to be comparable. Attributes are expected to be categorical.
// Discretize numeric attributes upstream before handing them to Discover.
//
// All operations are deterministic. Equal-count classes within one attribute
// value resolve to the class appearing first in row order, and equal-accuracy
// columns resolve to the lowest column index, so repeated runs on identical
// input produce identical rules.
package induction

import (
	"math"

	"github.com/go-oner/oner/core/parallel"
	"github.com/go-oner/oner/pkg/errors"
)

// Accuracy is the fraction of correctly predicted rows, in [0.0, 1.0].
// An empty data set evaluates to exactly 0.0.
type Accuracy float64

// Case maps one attribute value to its predicted class.
type Case[A, C comparable] struct {
	Value A
	Class C
}

// Rule is the full case set induced from one attribute column, together with
// its training accuracy. The cases appear in first-occurrence order of their
// values and each value appears at most once. A Rule is a pure value: once
// built it is never mutated and holds no references to the training data.
type Rule[A, C comparable] struct {
	Cases    []Case[A, C]
	Accuracy Accuracy
}

// Discovery is the result of Discover: the zero-based index of the winning
// attribute column and its rule.
type Discovery[A, C comparable] struct {
	Column int
	Rule   Rule[A, C]
}

// parallelCellThreshold is the table size (rows x columns) above which
// per-column rule generation fans out across CPU cores.
const parallelCellThreshold = 4096

// classTally counts class occurrences for one attribute value, remembering
// the order in which classes first appeared. Relying on map iteration order
// here would make tie-breaks irreproducible.
type classTally[C comparable] struct {
	counts map[C]int
	order  []C
}

func (t *classTally[C]) add(class C) {
	if _, ok := t.counts[class]; !ok {
		t.order = append(t.order, class)
	}
	t.counts[class]++
}

// majority returns the class with the highest count. Equal counts resolve to
// the class that first appeared in row order.
func (t *classTally[C]) majority() C {
	best := t.order[0]
	bestCount := t.counts[best]
	for _, class := range t.order[1:] {
		if t.counts[class] > bestCount {
			best = class
			bestCount = t.counts[class]
		}
	}
	return best
}

// GenerateRuleForAttribute induces the rule for a single attribute column
// against the parallel class vector. Distinct values are enumerated in
// first-occurrence order, each value predicts the majority class among its
// rows, and the finished rule is scored against the same training data.
func GenerateRuleForAttribute[A, C comparable](column []A, classes []C) (Rule[A, C], error) {
	if len(column) != len(classes) {
		return Rule[A, C]{}, errors.NewDimensionError("GenerateRuleForAttribute", len(column), len(classes), 0)
	}
	return generateRule(column, classes), nil
}

func generateRule[A, C comparable](column []A, classes []C) Rule[A, C] {
	tallies := make(map[A]*classTally[C], len(column))
	var values []A // first-occurrence order

	for i, v := range column {
		t, ok := tallies[v]
		if !ok {
			t = &classTally[C]{counts: make(map[C]int)}
			tallies[v] = t
			values = append(values, v)
		}
		t.add(classes[i])
	}

	cases := make([]Case[A, C], 0, len(values))
	for _, v := range values {
		cases = append(cases, Case[A, C]{Value: v, Class: tallies[v].majority()})
	}

	accuracy, _ := Evaluate(cases, column, classes) // lengths already validated
	return Rule[A, C]{Cases: cases, Accuracy: accuracy}
}

// GenerateHypotheses induces one rule per attribute column, preserving column
// order. The attribute matrix is row-major; all rows must have the same width
// and the class vector must have one entry per row, otherwise a
// DimensionError is returned. With zero rows the column count is unknown and
// no hypotheses are generated.
//
// Columns are independent, so large tables are processed concurrently. The
// result is identical to the sequential computation: every column's rule
// lands at its own index and each column's tally order only depends on that
// column's rows.
func GenerateHypotheses[A, C comparable](attributes [][]A, classes []C) ([]Rule[A, C], error) {
	if err := validateShape("GenerateHypotheses", attributes, classes); err != nil {
		return nil, err
	}
	return generateHypotheses(attributes, classes), nil
}

func generateHypotheses[A, C comparable](attributes [][]A, classes []C) []Rule[A, C] {
	if len(attributes) == 0 || len(attributes[0]) == 0 {
		return nil
	}
	rows, cols := len(attributes), len(attributes[0])

	rules := make([]Rule[A, C], cols)
	genColumn := func(j int) {
		column := make([]A, rows)
		for i, row := range attributes {
			column[i] = row[j]
		}
		rules[j] = generateRule(column, classes)
	}

	if rows*cols > parallelCellThreshold {
		parallel.For(cols, genColumn)
	} else {
		for j := 0; j < cols; j++ {
			genColumn(j)
		}
	}
	return rules
}

// BestRule scans a hypothesis slice left to right and returns the index of
// the rule with the highest accuracy. Equal accuracies resolve to the lowest
// index. NaN accuracies are never maximal; if the slice is empty or every
// accuracy is NaN, ok is false.
func BestRule[A, C comparable](rules []Rule[A, C]) (index int, ok bool) {
	best := -1
	var bestAccuracy Accuracy
	for i, r := range rules {
		if math.IsNaN(float64(r.Accuracy)) {
			continue
		}
		if best == -1 || r.Accuracy > bestAccuracy {
			best = i
			bestAccuracy = r.Accuracy
		}
	}
	if best == -1 {
		return 0, false
	}
	return best, true
}

// Discover runs the whole 1R procedure: it induces one rule per attribute
// column and returns the winning column together with its rule. A nil result
// with a nil error means no rule exists, which happens when the table has no
// columns. A shape mismatch between the attribute matrix and the class
// vector fails fast with a DimensionError.
func Discover[A, C comparable](attributes [][]A, classes []C) (*Discovery[A, C], error) {
	if err := validateShape("Discover", attributes, classes); err != nil {
		return nil, err
	}

	rules := generateHypotheses(attributes, classes)
	index, ok := BestRule(rules)
	if !ok {
		return nil, nil
	}
	return &Discovery[A, C]{Column: index, Rule: rules[index]}, nil
}

// validateShape checks that the class vector is parallel to the attribute
// matrix and that the matrix is rectangular.
func validateShape[A, C comparable](op string, attributes [][]A, classes []C) error {
	if len(attributes) != len(classes) {
		return errors.NewDimensionError(op, len(attributes), len(classes), 0)
	}
	if len(attributes) == 0 {
		return nil
	}
	width := len(attributes[0])
	for _, row := range attributes[1:] {
		if len(row) != width {
			return errors.NewDimensionError(op, width, len(row), 1)
		}
	}
	return nil
}
