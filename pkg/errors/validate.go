package errors

import (
	"fmt"
	"math"
)

// Matrix is the minimal read-only matrix surface used by the validators.
// gonumのmat.Matrixはこのインターフェースを満たします（循環依存を避けるため直接importしない）。
type Matrix interface {
	Dims() (r, c int)
	At(i, j int) float64
}

// CheckFinite は行列にNaNまたはInfが含まれていないか検査します。
// 属性コードとクラスラベルは有限値でなければなりません。
func CheckFinite(op string, m Matrix) error {
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return NewValueError(op, fmt.Sprintf("non-finite value %v at (%d, %d); attribute codes and labels must be finite", v, i, j))
			}
		}
	}
	return nil
}

// CheckVector は行列が単一列（n×1）であることを検査します。
func CheckVector(op string, v Matrix) error {
	_, c := v.Dims()
	if c != 1 {
		return NewDimensionError(op, 1, c, 1)
	}
	return nil
}

// IsIntegral は行列の全要素が整数値かどうかを報告します。
// 小数部を持つ属性コードは、離散化されていない数値属性である可能性が高いです。
func IsIntegral(m Matrix) bool {
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := m.At(i, j); v != math.Trunc(v) {
				return false
			}
		}
	}
	return true
}
