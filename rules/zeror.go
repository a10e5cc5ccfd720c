package rules

import (
	"gonum.org/v1/gonum/mat"

	"github.com/go-oner/oner/core/model"
	"github.com/go-oner/oner/metrics"
	onerErrors "github.com/go-oner/oner/pkg/errors"
)

// ZeroRClassifier implements the 0R baseline: it always predicts the majority
// class of the training labels and ignores every attribute. Its accuracy is
// the floor any 1R rule has to beat before it carries information.
type ZeroRClassifier struct {
	model.BaseEstimator // BaseEstimatorを埋め込み

	// Model attributes (scikit-learn compatible naming)
	classes_       []float64 // Class labels in first-seen row order
	priors_        []float64 // Class frequencies aligned with classes_
	majorityClass_ float64   // The single prediction this model makes
	nSamples_      int       // Number of training samples
}

// NewZeroRClassifier creates a new 0R classifier
func NewZeroRClassifier() *ZeroRClassifier {
	return &ZeroRClassifier{}
}

// Fit records the majority class of y. X is consulted only for its row count
// and may have zero columns.
func (z *ZeroRClassifier) Fit(X, y mat.Matrix) (err error) {
	defer onerErrors.Recover(&err, "ZeroRClassifier.Fit")

	rows, _ := X.Dims()
	yRows, _ := y.Dims()

	// Validate input dimensions
	if rows == 0 {
		return onerErrors.NewModelError("ZeroRClassifier.Fit", "empty training data", onerErrors.ErrEmptyData)
	}
	if yRows != rows {
		return onerErrors.NewDimensionError("ZeroRClassifier.Fit", rows, yRows, 0)
	}
	if err := onerErrors.CheckVector("ZeroRClassifier.Fit", y); err != nil {
		return err
	}
	if err := onerErrors.CheckFinite("ZeroRClassifier.Fit", y); err != nil {
		return err
	}

	// Tally the labels in first-seen row order
	counts := make(map[float64]int, 8)
	ordered := make([]float64, 0, 8)
	for i := 0; i < rows; i++ {
		c := y.At(i, 0)
		if _, seen := counts[c]; !seen {
			ordered = append(ordered, c)
		}
		counts[c]++
	}

	// Majority vote; ties resolve to the earlier label in row order
	majority := ordered[0]
	majorityCount := counts[majority]
	for _, c := range ordered[1:] {
		if counts[c] > majorityCount {
			majority = c
			majorityCount = counts[c]
		}
	}

	priors := make([]float64, len(ordered))
	for i, c := range ordered {
		priors[i] = float64(counts[c]) / float64(rows)
	}

	z.classes_ = ordered
	z.priors_ = priors
	z.majorityClass_ = majority
	z.nSamples_ = rows

	z.SetFitted()

	return nil
}

// Predict returns the majority class for every row of X.
func (z *ZeroRClassifier) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !z.IsFitted() {
		return nil, onerErrors.NewNotFittedError("ZeroRClassifier", "Predict")
	}

	rows, _ := X.Dims()
	predictions := mat.NewDense(rows, 1, nil)
	for i := 0; i < rows; i++ {
		predictions.Set(i, 0, z.majorityClass_)
	}

	return predictions, nil
}

// PredictProba returns the training class frequencies for every row of X,
// with columns ordered as Classes().
func (z *ZeroRClassifier) PredictProba(X mat.Matrix) (mat.Matrix, error) {
	if !z.IsFitted() {
		return nil, onerErrors.NewNotFittedError("ZeroRClassifier", "PredictProba")
	}

	rows, _ := X.Dims()
	probas := mat.NewDense(rows, len(z.priors_), nil)
	for i := 0; i < rows; i++ {
		for j, p := range z.priors_ {
			probas.Set(i, j, p)
		}
	}

	return probas, nil
}

// Score returns the mean accuracy of Predict(X) against y. For 0R this is
// the frequency of the majority class in y.
func (z *ZeroRClassifier) Score(X, y mat.Matrix) (float64, error) {
	if !z.IsFitted() {
		return 0, onerErrors.NewNotFittedError("ZeroRClassifier", "Score")
	}

	yPred, err := z.Predict(X)
	if err != nil {
		return 0, err
	}

	return metrics.AccuracyMatrix(y, yPred)
}

// MajorityClass returns the label this model always predicts.
func (z *ZeroRClassifier) MajorityClass() float64 {
	if !z.IsFitted() {
		return 0
	}
	return z.majorityClass_
}

// Classes returns the class labels seen during fitting, in first-seen row order.
func (z *ZeroRClassifier) Classes() []float64 {
	if !z.IsFitted() {
		return nil
	}

	classes := make([]float64, len(z.classes_))
	copy(classes, z.classes_)
	return classes
}

// NSamples returns the number of training samples seen during fitting.
func (z *ZeroRClassifier) NSamples() int {
	return z.nSamples_
}

// GetParams returns the model hyperparameters. 0R has none.
func (z *ZeroRClassifier) GetParams() map[string]interface{} {
	return map[string]interface{}{}
}

// SetParams sets the model hyperparameters. 0R has none.
func (z *ZeroRClassifier) SetParams(params map[string]interface{}) error {
	for key := range params {
		return onerErrors.Newf("unknown parameter: %s", key)
	}
	return nil
}
