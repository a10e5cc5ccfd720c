package preprocessing

import (
	"math"

	"github.com/go-oner/oner/core/model"
	"github.com/go-oner/oner/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// LabelEncoder は文字列ラベルをカテゴリカルコード（float64）へ変換する
// scikit-learnのLabelEncoderと異なり、コードはソート順ではなく初出順に採番される。
// これにより、符号化後のデータに対するルール学習のタイブレークが元の行順と一致する。
type LabelEncoder struct {
	model.BaseEstimator

	// Classes_ は学習時に観測したラベル（初出順）
	Classes_ []string

	// index はラベルからコードへの逆引き
	index map[string]float64
}

// NewLabelEncoder は新しいLabelEncoderを作成する
//
// 使用例:
//
//	enc := preprocessing.NewLabelEncoder()
//	codes, err := enc.FitTransform([]string{"high", "high", "low"})
func NewLabelEncoder() *LabelEncoder {
	return &LabelEncoder{}
}

// Fit はラベルの語彙を初出順に学習する
//
// パラメータ:
//   - values: ラベルの列
//
// 戻り値:
//   - error: 空の入力の場合のエラー
func (e *LabelEncoder) Fit(values []string) error {
	if len(values) == 0 {
		return errors.NewModelError("LabelEncoder.Fit", "empty data", errors.ErrEmptyData)
	}

	e.Classes_ = e.Classes_[:0]
	e.index = make(map[string]float64, 8)

	for _, v := range values {
		if _, seen := e.index[v]; !seen {
			e.index[v] = float64(len(e.Classes_))
			e.Classes_ = append(e.Classes_, v)
		}
	}

	e.SetFitted()

	return nil
}

// Transform はラベルを学習済みのコードへ変換する
//
// パラメータ:
//   - values: ラベルの列
//
// 戻り値:
//   - []float64: カテゴリカルコードの列
//   - error: 未学習、または未知のラベルが含まれる場合のエラー
func (e *LabelEncoder) Transform(values []string) ([]float64, error) {
	if !e.IsFitted() {
		return nil, errors.NewNotFittedError("LabelEncoder", "Transform")
	}

	codes := make([]float64, len(values))
	for i, v := range values {
		code, ok := e.index[v]
		if !ok {
			return nil, errors.NewValueError("LabelEncoder.Transform", "unseen label "+v)
		}
		codes[i] = code
	}
	return codes, nil
}

// FitTransform はFitとTransformを連続して実行する
func (e *LabelEncoder) FitTransform(values []string) ([]float64, error) {
	if err := e.Fit(values); err != nil {
		return nil, err
	}
	return e.Transform(values)
}

// InverseTransform はコードを元のラベルへ戻す
//
// パラメータ:
//   - codes: カテゴリカルコードの列
//
// 戻り値:
//   - []string: 元のラベルの列
//   - error: 未学習、または語彙範囲外のコードが含まれる場合のエラー
func (e *LabelEncoder) InverseTransform(codes []float64) ([]string, error) {
	if !e.IsFitted() {
		return nil, errors.NewNotFittedError("LabelEncoder", "InverseTransform")
	}

	values := make([]string, len(codes))
	for i, code := range codes {
		idx := int(code)
		if code != math.Trunc(code) || idx < 0 || idx >= len(e.Classes_) {
			return nil, errors.NewValueError("LabelEncoder.InverseTransform", "code out of range")
		}
		values[i] = e.Classes_[idx]
	}
	return values, nil
}

// OrdinalEncoder は文字列属性テーブルを列ごとにカテゴリカルコードへ変換する
// 各列が独立したLabelEncoderを持ち、コードは列内の初出順に採番される。
type OrdinalEncoder struct {
	model.BaseEstimator

	// Encoders は列ごとのLabelEncoder
	Encoders []*LabelEncoder

	// NFeatures は列数
	NFeatures int
}

// NewOrdinalEncoder は新しいOrdinalEncoderを作成する
//
// 使用例:
//
//	enc := preprocessing.NewOrdinalEncoder()
//	X, err := enc.FitTransform(records)
//	err = classifier.Fit(X, y)
func NewOrdinalEncoder() *OrdinalEncoder {
	return &OrdinalEncoder{}
}

// Fit は各列の語彙を学習する
//
// パラメータ:
//   - records: 行ごとの属性値（全行同じ長さであること）
//
// 戻り値:
//   - error: 空の入力、または行の長さが不揃いの場合のエラー
func (e *OrdinalEncoder) Fit(records [][]string) error {
	if len(records) == 0 || len(records[0]) == 0 {
		return errors.NewModelError("OrdinalEncoder.Fit", "empty data", errors.ErrEmptyData)
	}

	cols := len(records[0])
	for _, row := range records[1:] {
		if len(row) != cols {
			return errors.NewDimensionError("OrdinalEncoder.Fit", cols, len(row), 1)
		}
	}

	encoders := make([]*LabelEncoder, cols)
	column := make([]string, len(records))
	for j := 0; j < cols; j++ {
		for i, row := range records {
			column[i] = row[j]
		}
		encoders[j] = NewLabelEncoder()
		if err := encoders[j].Fit(column); err != nil {
			return err
		}
	}

	e.Encoders = encoders
	e.NFeatures = cols
	e.SetFitted()

	return nil
}

// Transform は属性テーブルをコード行列へ変換する
//
// パラメータ:
//   - records: 行ごとの属性値
//
// 戻り値:
//   - *mat.Dense: n×d のカテゴリカルコード行列
//   - error: 未学習、列数不一致、未知のラベルの場合のエラー
func (e *OrdinalEncoder) Transform(records [][]string) (*mat.Dense, error) {
	if !e.IsFitted() {
		return nil, errors.NewNotFittedError("OrdinalEncoder", "Transform")
	}
	if len(records) == 0 {
		return nil, errors.NewModelError("OrdinalEncoder.Transform", "empty data", errors.ErrEmptyData)
	}

	for _, row := range records {
		if len(row) != e.NFeatures {
			return nil, errors.NewDimensionError("OrdinalEncoder.Transform", e.NFeatures, len(row), 1)
		}
	}

	X := mat.NewDense(len(records), e.NFeatures, nil)
	column := make([]string, len(records))
	for j := 0; j < e.NFeatures; j++ {
		for i, row := range records {
			column[i] = row[j]
		}
		codes, err := e.Encoders[j].Transform(column)
		if err != nil {
			return nil, err
		}
		X.SetCol(j, codes)
	}
	return X, nil
}

// FitTransform はFitとTransformを連続して実行する
func (e *OrdinalEncoder) FitTransform(records [][]string) (*mat.Dense, error) {
	if err := e.Fit(records); err != nil {
		return nil, err
	}
	return e.Transform(records)
}
