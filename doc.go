// Package oner implements the 1R (One Rule) rule induction algorithm
// described by Holte (1993), together with a 0R baseline, in a
// scikit-learn-like shape for Go backend services.
//
// 1R builds one candidate rule per attribute column by majority vote over
// the classes observed for each distinct value, then keeps the single rule
// with the highest training accuracy. The resulting model is a readable
// value-to-class table, which makes it a strong interpretable baseline
// before reaching for heavier classifiers.
//
// # Features
//
// - Generic core: rule discovery over any comparable attribute and class types
// - Deterministic tie-breaks: first-seen class wins, lowest column index wins
// - scikit-learn-like API: Fit / Predict / Score estimators over gonum matrices
// - Robust error handling: structured errors with stack traces
// - CPU-parallel rule generation for wide datasets
//
// # Installation
//
// Install oner using go get:
//
//	go get github.com/go-oner/oner
//
// # Quick Start
//
// Discover the best single-attribute rule directly on strings:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//	    "github.com/go-oner/oner/induction"
//	)
//
//	func main() {
//	    attributes := [][]string{
//	        {"sunny", "summer"},
//	        {"sunny", "summer"},
//	        {"cloudy", "winter"},
//	        {"sunny", "winter"},
//	    }
//	    temperature := []string{"hot", "hot", "cold", "cold"}
//
//	    discovery, err := induction.Discover(attributes, temperature)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // Column 1 (season) predicts temperature perfectly.
//	    fmt.Println("column:", discovery.Column)
//	    for _, c := range discovery.Rule.Cases {
//	        fmt.Printf("%s -> %s\n", c.Value, c.Class)
//	    }
//	}
//
// # Packages
//
// The library is organized into several packages:
//
//   - induction: Generic 1R core (Discover, GenerateHypotheses, Evaluate)
//   - rules: Estimators over gonum matrices (OneRClassifier, ZeroRClassifier)
//   - preprocessing: Categorical encoders (LabelEncoder, OrdinalEncoder)
//   - metrics: Evaluation metrics (Accuracy, ClassificationError)
//   - core/model: Core interfaces and fitted-state management
//   - core/parallel: Parallel processing utilities
//   - pkg/errors: Structured errors and warnings
//   - pkg/log: Structured logging
//
// # scikit-learn Compatibility
//
// The rules package mirrors the scikit-learn estimator surface:
//
//	clf := rules.NewOneRClassifier(
//	    rules.WithShowProgress(true),
//	)
//	if err := clf.Fit(X, y); err != nil {
//	    log.Fatal(err)
//	}
//	predictions, err := clf.Predict(XTest)
//
// # Performance
//
// Rule generation is independent per attribute column, and the induction
// package fans columns out across CPU cores once the table is large enough
// to pay for the goroutines. Small inputs stay on the sequential path, so
// results are identical either way.
//
// # License
//
// oner is released under the MIT License.
package oner
