package induction

import (
	"testing"

	"github.com/go-oner/oner/pkg/errors"
)

func TestInterpret(t *testing.T) {
	cases := []Case[string, string]{
		{Value: "summer", Class: "hot"},
		{Value: "winter", Class: "cold"},
	}

	tests := []struct {
		name      string
		cases     []Case[string, string]
		value     string
		wantClass string
		wantOK    bool
	}{
		{"value present", cases, "summer", "hot", true},
		{"second value present", cases, "winter", "cold", true},
		{"value absent", cases, "spring", "", false},
		{"empty case list", nil, "summer", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			class, ok := Interpret(tt.cases, tt.value)
			if ok != tt.wantOK {
				t.Fatalf("Interpret() ok = %v, want %v", ok, tt.wantOK)
			}
			if class != tt.wantClass {
				t.Errorf("Interpret() = %q, want %q", class, tt.wantClass)
			}
		})
	}
}

func TestInterpret_FirstMatchWins(t *testing.T) {
	// 値の一意性が破られた場合は先頭のケースが優先される
	cases := []Case[string, string]{
		{Value: "sunny", Class: "hot"},
		{Value: "sunny", Class: "cold"},
	}

	class, ok := Interpret(cases, "sunny")
	if !ok {
		t.Fatal("Interpret() ok = false, want true")
	}
	if class != "hot" {
		t.Errorf("Interpret() = %q, want first case's class %q", class, "hot")
	}
}

func TestEvaluate(t *testing.T) {
	cases := []Case[string, string]{
		{Value: "summer", Class: "hot"},
		{Value: "winter", Class: "cold"},
	}

	tests := []struct {
		name    string
		values  []string
		classes []string
		want    Accuracy
	}{
		{
			name:    "all correct",
			values:  []string{"summer", "summer", "winter"},
			classes: []string{"hot", "hot", "cold"},
			want:    1.0,
		},
		{
			name:    "one incorrect",
			values:  []string{"summer", "summer", "winter", "winter"},
			classes: []string{"hot", "cold", "cold", "cold"},
			want:    0.75,
		},
		{
			name:    "unpredicted rows count as incorrect",
			values:  []string{"summer", "spring", "autumn", "winter"},
			classes: []string{"hot", "hot", "cold", "cold"},
			want:    0.5,
		},
		{
			name:    "no rows evaluates to zero",
			values:  nil,
			classes: nil,
			want:    0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(cases, tt.values, tt.classes)
			if err != nil {
				t.Fatalf("Evaluate() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Evaluate() = %v, want %v", got, tt.want)
			}
			if got < 0 || got > 1 {
				t.Errorf("Evaluate() = %v, outside [0, 1]", got)
			}
		})
	}
}

func TestEvaluate_LengthMismatch(t *testing.T) {
	cases := []Case[string, string]{{Value: "summer", Class: "hot"}}

	_, err := Evaluate(cases, []string{"summer", "winter"}, []string{"hot"})
	if err == nil {
		t.Fatal("Evaluate() with mismatched lengths should fail")
	}

	var dimErr *errors.DimensionError
	if !errors.As(err, &dimErr) {
		t.Fatalf("error should be a *DimensionError, got %T", err)
	}
	if dimErr.Expected != 2 || dimErr.Got != 1 || dimErr.Axis != 0 {
		t.Errorf("DimensionError = %+v, want Expected=2 Got=1 Axis=0", dimErr)
	}
}

func TestEvaluate_EmptyFiresWarning(t *testing.T) {
	var captured error
	errors.SetWarningHandler(func(w error) { captured = w })
	defer errors.SetWarningHandler(nil)

	got, err := Evaluate([]Case[string, string]{{Value: "a", Class: "x"}}, nil, nil)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if got != 0.0 {
		t.Errorf("Evaluate() = %v, want exactly 0.0", got)
	}

	var warn *errors.UndefinedMetricWarning
	if !errors.As(captured, &warn) {
		t.Fatalf("expected an UndefinedMetricWarning, got %v", captured)
	}
	if warn.Metric != "accuracy" {
		t.Errorf("warning metric = %q, want %q", warn.Metric, "accuracy")
	}
}
