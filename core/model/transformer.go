package model

import "gonum.org/v1/gonum/mat"

// LabelTransformer はクラスラベル列と数値コードを相互変換するインターフェース
type LabelTransformer interface {
	// Fit は変換に必要な対応表を学習する
	Fit(values []string) error

	// Transform はラベル列を数値コードに変換する
	Transform(values []string) ([]float64, error)

	// FitTransform はFitとTransformを同時に実行する
	FitTransform(values []string) ([]float64, error)

	// InverseTransform は数値コードを元のラベルに戻す
	InverseTransform(codes []float64) ([]string, error)
}

// RecordTransformer は文字列レコードを数値属性行列に変換するインターフェース
type RecordTransformer interface {
	// Fit は列ごとの対応表を学習する
	Fit(records [][]string) error

	// Transform はレコードを属性行列に変換する
	Transform(records [][]string) (*mat.Dense, error)

	// FitTransform はFitとTransformを同時に実行する
	FitTransform(records [][]string) (*mat.Dense, error)
}
