// Package rules implements baseline rule-based classifiers on top of the
// induction package, shaped after scikit-learn estimators: OneRClassifier
// learns the single best attribute rule (1R), ZeroRClassifier predicts the
// majority class (0R).
package rules

import (
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/go-oner/oner/core/model"
	"github.com/go-oner/oner/core/parallel"
	"github.com/go-oner/oner/induction"
	"github.com/go-oner/oner/metrics"
	onerErrors "github.com/go-oner/oner/pkg/errors"
	"github.com/go-oner/oner/pkg/log"
)

// OneRClassifier implements the 1R rule induction algorithm (Holte, 1993).
// It generates one candidate rule per attribute column by majority vote over
// the classes observed for each distinct value, then keeps the rule with the
// highest training accuracy.
//
// Attribute values and class labels are float64 categorical codes compared
// for exact equality. Continuous features must be discretized before fitting.
type OneRClassifier struct {
	state *model.StateManager // State management (composition)

	// Hyperparameters
	showProgress bool // Whether to log fit progress

	// Model attributes (scikit-learn compatible naming)
	bestFeature_       int                              // Index of the winning attribute column
	rule_              induction.Rule[float64, float64] // Rule of the winning column
	featureAccuracies_ []float64                        // Training accuracy per column
	classes_           []float64                        // Class labels in first-seen row order
	majorityClass_     float64                          // Whole-table majority class, the fallback prediction
}

// OneROption is a functional option for OneRClassifier
type OneROption func(*OneRClassifier)

// WithShowProgress enables structured log output during Fit
func WithShowProgress(show bool) OneROption {
	return func(o *OneRClassifier) {
		o.showProgress = show
	}
}

// NewOneRClassifier creates a new 1R classifier
func NewOneRClassifier(opts ...OneROption) *OneRClassifier {
	clf := &OneRClassifier{
		state:        model.NewStateManager(),
		bestFeature_: -1,
	}

	// Apply options
	for _, opt := range opts {
		opt(clf)
	}

	return clf
}

// Fit learns one rule per attribute column and keeps the most accurate one.
// X is an n×d matrix of categorical codes, y an n×1 column of class labels.
func (o *OneRClassifier) Fit(X, y mat.Matrix) (err error) {
	defer onerErrors.Recover(&err, "OneRClassifier.Fit")

	start := time.Now()

	rows, cols := X.Dims()
	yRows, _ := y.Dims()

	// Validate input dimensions
	if rows == 0 {
		return onerErrors.NewModelError("OneRClassifier.Fit", "empty training data", onerErrors.ErrEmptyData)
	}
	if cols == 0 {
		return onerErrors.NewValueError("OneRClassifier.Fit", "attribute matrix has no columns")
	}
	if yRows != rows {
		return onerErrors.NewDimensionError("OneRClassifier.Fit", rows, yRows, 0)
	}
	if err := onerErrors.CheckVector("OneRClassifier.Fit", y); err != nil {
		return err
	}
	if err := onerErrors.CheckFinite("OneRClassifier.Fit", X); err != nil {
		return err
	}
	if err := onerErrors.CheckFinite("OneRClassifier.Fit", y); err != nil {
		return err
	}

	// Fractional codes usually mean a continuous feature that was never
	// discretized. 1R still runs, treating every distinct value as a symbol,
	// but the resulting rule rarely generalizes.
	if !onerErrors.IsIntegral(X) {
		onerErrors.Warn(onerErrors.NewDataConversionWarning(
			"float64", "categorical code",
			"attribute values have fractional parts; discretize continuous features before fitting"))
	}

	logger := log.GetLoggerWithName("rules.oner")
	if o.showProgress {
		logger.Info("Training OneRClassifier",
			log.OperationKey, log.OperationFit,
			log.SamplesKey, rows,
			log.FeaturesKey, cols)
	}

	// Copy the matrix into row slices for the rule generator
	data := make([][]float64, rows)
	classes := make([]float64, rows)

	// 並列処理の閾値（この値以下の行数では逐次処理を使用）
	const parallelThreshold = 1000

	parallel.ForWithThreshold(rows, parallelThreshold, func(i int) {
		row := make([]float64, cols)
		for j := 0; j < cols; j++ {
			row[j] = X.At(i, j)
		}
		data[i] = row
		classes[i] = y.At(i, 0)
	})

	// One candidate rule per column, most accurate column wins
	ruleSet, err := induction.GenerateHypotheses(data, classes)
	if err != nil {
		return err
	}

	o.featureAccuracies_ = make([]float64, cols)
	for j, r := range ruleSet {
		o.featureAccuracies_[j] = float64(r.Accuracy)
	}

	best, ok := induction.BestRule(ruleSet)
	if !ok {
		return onerErrors.NewModelError("OneRClassifier.Fit", "no rule discovered", nil)
	}
	o.bestFeature_ = best
	o.rule_ = ruleSet[best]

	o.extractClasses(classes)

	o.state.SetDimensions(cols, rows)
	o.state.SetFitted()

	if o.showProgress {
		logger.Info("Training completed",
			log.BestFeatureKey, o.bestFeature_,
			log.AccuracyKey, float64(o.rule_.Accuracy),
			log.RuleCasesKey, len(o.rule_.Cases),
			log.ClassesKey, len(o.classes_),
			log.DurationMsKey, time.Since(start).Milliseconds())
	}

	return nil
}

// extractClasses records the distinct labels in first-seen row order and the
// majority class used as the fallback prediction. Ties on the majority count
// resolve to the earlier label in row order, matching the rule generator.
func (o *OneRClassifier) extractClasses(classes []float64) {
	counts := make(map[float64]int, 8)
	ordered := make([]float64, 0, 8)

	for _, c := range classes {
		if _, seen := counts[c]; !seen {
			ordered = append(ordered, c)
		}
		counts[c]++
	}

	majority := ordered[0]
	majorityCount := counts[majority]
	for _, c := range ordered[1:] {
		if counts[c] > majorityCount {
			majority = c
			majorityCount = counts[c]
		}
	}

	o.classes_ = ordered
	o.majorityClass_ = majority
}

// Predict applies the learned rule to the winning attribute column.
// Values never seen during training predict the majority class.
func (o *OneRClassifier) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !o.state.IsFitted() {
		return nil, onerErrors.NewNotFittedError("OneRClassifier", "Predict")
	}

	rows, cols := X.Dims()
	nFeatures, _ := o.state.GetDimensions()
	if cols != nFeatures {
		return nil, onerErrors.NewDimensionError("OneRClassifier.Predict", nFeatures, cols, 1)
	}

	predictions := mat.NewDense(rows, 1, nil)

	// 並列処理の閾値（この値以下の行数では逐次処理を使用）
	const parallelThreshold = 1000

	parallel.ForWithThreshold(rows, parallelThreshold, func(i int) {
		class, ok := induction.Interpret(o.rule_.Cases, X.At(i, o.bestFeature_))
		if !ok {
			class = o.majorityClass_
		}
		predictions.Set(i, 0, class)
	})

	return predictions, nil
}

// Score returns the mean accuracy of Predict(X) against y.
func (o *OneRClassifier) Score(X, y mat.Matrix) (float64, error) {
	if !o.state.IsFitted() {
		return 0, onerErrors.NewNotFittedError("OneRClassifier", "Score")
	}

	yPred, err := o.Predict(X)
	if err != nil {
		return 0, err
	}

	return metrics.AccuracyMatrix(y, yPred)
}

// BestFeature returns the zero-based index of the winning attribute column,
// or -1 if the model has not been fitted.
func (o *OneRClassifier) BestFeature() int {
	if !o.state.IsFitted() {
		return -1
	}
	return o.bestFeature_
}

// Rule returns the cases of the learned rule in first-occurrence order.
func (o *OneRClassifier) Rule() []induction.Case[float64, float64] {
	if !o.state.IsFitted() {
		return nil
	}

	cases := make([]induction.Case[float64, float64], len(o.rule_.Cases))
	copy(cases, o.rule_.Cases)
	return cases
}

// RuleAccuracy returns the training accuracy of the learned rule.
func (o *OneRClassifier) RuleAccuracy() float64 {
	if !o.state.IsFitted() {
		return 0
	}
	return float64(o.rule_.Accuracy)
}

// FeatureAccuracies returns the training accuracy of every column's
// candidate rule, indexed by column.
func (o *OneRClassifier) FeatureAccuracies() []float64 {
	if !o.state.IsFitted() {
		return nil
	}

	accuracies := make([]float64, len(o.featureAccuracies_))
	copy(accuracies, o.featureAccuracies_)
	return accuracies
}

// Classes returns the class labels seen during fitting, in first-seen row order.
func (o *OneRClassifier) Classes() []float64 {
	if !o.state.IsFitted() {
		return nil
	}

	classes := make([]float64, len(o.classes_))
	copy(classes, o.classes_)
	return classes
}

// NFeatures returns the number of attribute columns seen during fitting.
func (o *OneRClassifier) NFeatures() int {
	nFeatures, _ := o.state.GetDimensions()
	return nFeatures
}

// NSamples returns the number of training samples seen during fitting.
func (o *OneRClassifier) NSamples() int {
	_, nSamples := o.state.GetDimensions()
	return nSamples
}

// IsFitted returns whether the model has been fitted
func (o *OneRClassifier) IsFitted() bool {
	return o.state.IsFitted()
}

// GetParams returns the model hyperparameters
func (o *OneRClassifier) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"show_progress": o.showProgress,
	}
}

// SetParams sets the model hyperparameters
func (o *OneRClassifier) SetParams(params map[string]interface{}) error {
	for key, value := range params {
		switch key {
		case "show_progress":
			if v, ok := value.(bool); ok {
				o.showProgress = v
			}
		default:
			return onerErrors.Newf("unknown parameter: %s", key)
		}
	}
	return nil
}
