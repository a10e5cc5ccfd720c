package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestNewModelError(t *testing.T) {
	tests := []struct {
		name     string
		op       string
		kind     string
		err      error
		wantMsg  string
		hasStack bool
	}{
		{
			name:     "with original error",
			op:       "Fit",
			kind:     "invalid input",
			err:      fmt.Errorf("test error"),
			wantMsg:  "oner: Fit: invalid input: test error",
			hasStack: true,
		},
		{
			name:     "without original error",
			op:       "Predict",
			kind:     "not fitted",
			err:      nil,
			wantMsg:  "oner: Predict: not fitted",
			hasStack: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewModelError(tt.op, tt.kind, tt.err)

			// 基本的なエラーメッセージの確認
			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			// スタックトレースの存在確認
			if tt.hasStack {
				formatted := fmt.Sprintf("%+v", err)
				if !strings.Contains(formatted, "errors_test.go") {
					t.Error("Expected stack trace to contain test file name")
				}
			}

			// ModelError型にキャスト可能か確認
			var modelErr *ModelError
			if !As(err, &modelErr) {
				t.Error("Error should be castable to *ModelError")
			}
		})
	}
}

func TestNewDimensionError(t *testing.T) {
	tests := []struct {
		name     string
		op       string
		expected int
		got      int
		axis     int
		wantMsg  string
	}{
		{
			name:     "row mismatch",
			op:       "Fit",
			expected: 10,
			got:      8,
			axis:     0,
			wantMsg:  "oner: Fit: dimension mismatch on axis 0 (rows). Expected 10, got 8",
		},
		{
			name:     "feature mismatch",
			op:       "Predict",
			expected: 3,
			got:      2,
			axis:     1,
			wantMsg:  "oner: Predict: dimension mismatch on axis 1 (features). Expected 3, got 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDimensionError(tt.op, tt.expected, tt.got, tt.axis)

			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			// DimensionError型にキャスト可能か確認
			var dimErr *DimensionError
			if !As(err, &dimErr) {
				t.Error("Error should be castable to *DimensionError")
			}
			if dimErr.Axis != tt.axis {
				t.Errorf("Axis = %d, want %d", dimErr.Axis, tt.axis)
			}
		})
	}
}

func TestNewNotFittedError(t *testing.T) {
	err := NewNotFittedError("OneRClassifier", "Predict")

	// 基本的なエラーメッセージの確認
	want := "oner: OneRClassifier: this model is not fitted yet. Call Fit() before using Predict()"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	// NotFittedError型にキャスト可能か確認
	var notFittedErr *NotFittedError
	if !As(err, &notFittedErr) {
		t.Error("Error should be castable to *NotFittedError")
	}
}

func TestNewValueError(t *testing.T) {
	err := NewValueError("Fit", "attribute matrix has no columns")

	want := "oner: Fit: attribute matrix has no columns"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	// ValueError型にキャスト可能か確認
	var valErr *ValueError
	if !As(err, &valErr) {
		t.Error("Error should be castable to *ValueError")
	}
}

func TestNewUndefinedMetricWarning(t *testing.T) {
	warn := NewUndefinedMetricWarning("accuracy", "no samples to evaluate", 0.0)

	want := "'accuracy' is ill-defined and being set to 0.000000 due to no samples to evaluate."
	if warn.Error() != want {
		t.Errorf("Error() = %v, want %v", warn.Error(), want)
	}

	// UndefinedMetricWarning型へのキャスト確認
	var metricWarn *UndefinedMetricWarning
	if !As(warn, &metricWarn) {
		t.Error("Warning should be castable to *UndefinedMetricWarning")
	}
}

func TestNewDataConversionWarning(t *testing.T) {
	warn := NewDataConversionWarning("continuous float64", "categorical symbol", "non-integral attribute codes")

	want := "data converted from continuous float64 to categorical symbol. Reason: non-integral attribute codes"
	if warn.Error() != want {
		t.Errorf("Error() = %v, want %v", warn.Error(), want)
	}
}

func TestWarnHandler(t *testing.T) {
	var captured error
	SetWarningHandler(func(w error) { captured = w })
	defer SetWarningHandler(nil)

	Warn(NewUndefinedMetricWarning("accuracy", "no samples to evaluate", 0.0))

	if captured == nil {
		t.Fatal("Expected warning handler to capture the warning")
	}
	var metricWarn *UndefinedMetricWarning
	if !As(captured, &metricWarn) {
		t.Fatalf("Captured warning should be *UndefinedMetricWarning, got %T", captured)
	}
	if metricWarn.Metric != "accuracy" {
		t.Errorf("Metric = %q, want %q", metricWarn.Metric, "accuracy")
	}
}

func TestWrapAndIs(t *testing.T) {
	// 元のエラー
	baseErr := ErrNotImplemented

	// ラップ
	wrapped := Wrap(baseErr, "in OneRClassifier.Predict")

	// Is関数でチェック
	if !Is(wrapped, ErrNotImplemented) {
		t.Error("Expected Is(wrapped, ErrNotImplemented) to be true")
	}

	// エラーメッセージの確認
	if !strings.Contains(wrapped.Error(), "in OneRClassifier.Predict") {
		t.Error("Expected wrapped error to contain wrapping message")
	}
}

func TestWrapf(t *testing.T) {
	// 元のエラー
	baseErr := ErrEmptyData

	// フォーマット付きラップ
	wrapped := Wrapf(baseErr, "in %s: expected %d, got %d", "Evaluate", 10, 5)

	// Is関数でチェック
	if !Is(wrapped, ErrEmptyData) {
		t.Error("Expected Is(wrapped, ErrEmptyData) to be true")
	}

	// エラーメッセージの確認
	expectedMsg := "in Evaluate: expected 10, got 5"
	if !strings.Contains(wrapped.Error(), expectedMsg) {
		t.Errorf("Expected wrapped error to contain %q", expectedMsg)
	}
}

func TestErrorChaining(t *testing.T) {
	// エラーチェーンの作成
	err1 := fmt.Errorf("base error")
	err2 := Wrap(err1, "wrapped once")
	err3 := NewModelError("Discover", "failed", err2)

	// チェーン全体を確認
	if !strings.Contains(err3.Error(), "base error") {
		t.Error("Expected error chain to contain base error")
	}

	// スタックトレースの確認（詳細表示）
	formatted := fmt.Sprintf("%+v", err3)
	if !strings.Contains(formatted, "errors_test.go") {
		t.Error("Expected detailed error to contain stack trace")
	}
}
