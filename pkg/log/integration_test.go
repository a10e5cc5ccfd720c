package log

import (
	"context"
	"fmt"
	"testing"
)

// TestLoggerInterface tests the TestLogger implementation of Logger
func TestLoggerInterface(t *testing.T) {
	testLogger, buffer := NewTestLogger(LevelDebug)

	testLogger.Debug("debug message", "key1", "value1", "number", 42)
	testLogger.Info("info message", OperationKey, OperationFit)
	testLogger.Warn("warning message", "warning_code", "TEST_WARNING")

	testErr := fmt.Errorf("test error")
	testLogger.Error("error message", "error", testErr, ErrorCodeKey, ErrorInvalidInput)

	output := buffer.String()
	if output == "" {
		t.Fatal("Expected log output, got empty string")
	}

	for _, msg := range []string{"debug message", "info message", "warning message", "error message"} {
		if !testLogger.ContainsMessage(msg) {
			t.Errorf("%q not found in output", msg)
		}
	}

	if !testLogger.ContainsField("key1", "value1") {
		t.Error("Expected field key1=value1 not found")
	}
	// JSON unmarshaling converts numbers to float64
	if !testLogger.ContainsField("number", 42.0) {
		t.Error("Expected field number=42 not found")
	}
	if !testLogger.ContainsField("error", "test error") {
		t.Error("Expected error field not found")
	}
}

// TestLoggerWith tests the With method for context-aware logging
func TestLoggerWith(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelDebug)

	contextLogger := testLogger.With(
		ModelNameKey, "OneRClassifier",
		ComponentKey, "rules.oner",
	)

	contextLogger.Info("contextual message", OperationKey, OperationFit)

	if !testLogger.ContainsField(ModelNameKey, "OneRClassifier") {
		t.Error("Model name context not found")
	}
	if !testLogger.ContainsField(ComponentKey, "rules.oner") {
		t.Error("Component context not found")
	}
	if !testLogger.ContainsField(OperationKey, OperationFit) {
		t.Error("Operation field not found")
	}
}

// TestLoggerEnabled tests the Enabled method
func TestLoggerEnabled(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelInfo)
	ctx := context.Background()

	if !testLogger.Enabled(ctx, LevelInfo) {
		t.Error("Logger should be enabled for Info level")
	}
	if !testLogger.Enabled(ctx, LevelError) {
		t.Error("Logger should be enabled for Error level")
	}
	if testLogger.Enabled(ctx, LevelDebug) {
		t.Error("Logger should not be enabled for Debug level")
	}

	testLogger.Debug("this should not appear")
	testLogger.Info("this should appear")

	if testLogger.ContainsMessage("this should not appear") {
		t.Error("Debug message should not appear when level is Info")
	}
	if !testLogger.ContainsMessage("this should appear") {
		t.Error("Info message should appear when level is Info")
	}
}

// TestRuleAttributeKeys tests rule-induction specific attribute keys
func TestRuleAttributeKeys(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelInfo)

	testLogger.Info("Training completed",
		OperationKey, OperationFit,
		PhaseKey, PhaseTraining,
		SamplesKey, 10,
		FeaturesKey, 3,
		BestFeatureKey, 1,
		RuleCasesKey, 3,
		AccuracyKey, 0.7,
	)

	entries, err := testLogger.GetLogEntries()
	if err != nil {
		t.Fatalf("Failed to parse log entries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 log entry, got %d", len(entries))
	}

	entry := entries[0]

	// JSON numbers are float64
	expectedFields := map[string]interface{}{
		OperationKey:   OperationFit,
		PhaseKey:       PhaseTraining,
		SamplesKey:     10.0,
		FeaturesKey:    3.0,
		BestFeatureKey: 1.0,
		RuleCasesKey:   3.0,
		AccuracyKey:    0.7,
	}

	for key, expectedValue := range expectedFields {
		if actualValue, exists := entry[key]; !exists {
			t.Errorf("Expected field %s not found", key)
		} else if actualValue != expectedValue {
			t.Errorf("Field %s: expected %v, got %v", key, expectedValue, actualValue)
		}
	}
}

// TestLoggerProviderIntegration tests the LoggerProvider interface
func TestLoggerProviderIntegration(t *testing.T) {
	provider, buffer := NewTestLoggerProvider(LevelDebug)

	logger := provider.GetLogger()
	logger.Info("provider test message")

	namedLogger := provider.GetLoggerWithName("rules.zeror")
	namedLogger.Info("named logger message")

	if buffer.String() == "" {
		t.Fatal("Expected log output from provider")
	}

	testLogger, ok := provider.GetLogger().(*TestLogger)
	if !ok {
		t.Fatal("Expected provider to hand out a *TestLogger")
	}
	if !testLogger.ContainsMessage("provider test message") {
		t.Error("Provider test message not found")
	}
	if !testLogger.ContainsMessage("named logger message") {
		t.Error("Named logger message not found")
	}
	if !testLogger.ContainsField(ComponentKey, "rules.zeror") {
		t.Error("Component name not found in named logger output")
	}
}

// TestConcurrentLogging tests that concurrent use does not lose entries wholesale
func TestConcurrentLogging(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelInfo)

	numGoroutines := 3
	messagesPerGoroutine := 3

	done := make(chan bool, numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer func() { done <- true }()

			for j := 0; j < messagesPerGoroutine; j++ {
				testLogger.Info(fmt.Sprintf("goroutine %d message %d", id, j),
					"goroutine_id", id,
					"message_id", j,
				)
			}
		}(i)
	}

	for i := 0; i < numGoroutines; i++ {
		<-done
	}

	entries, err := testLogger.GetLogEntries()
	if err != nil {
		t.Fatalf("Failed to parse log entries: %v", err)
	}

	expectedEntries := numGoroutines * messagesPerGoroutine
	if len(entries) < expectedEntries-2 { // Allow for some race condition tolerance
		t.Errorf("Expected around %d log entries, got %d", expectedEntries, len(entries))
	}
}

// BenchmarkLogging benchmarks TestLogger throughput
func BenchmarkLogging(b *testing.B) {
	testLogger, _ := NewTestLogger(LevelInfo)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		testLogger.Info("benchmark message",
			"iteration", i,
			OperationKey, OperationPredict,
			SamplesKey, 1000,
		)
	}
}
