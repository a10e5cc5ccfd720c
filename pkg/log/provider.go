// Package log wires the Logger interface to a zerolog backend.
//
// The process-wide default logger writes JSON lines to stderr. Library code
// obtains component loggers through GetLoggerWithName; applications can
// redirect or silence the output with SetOutput and SetLevel. Importing this
// package also routes pkg/errors warnings into the structured logger.

package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"

	onerErrors "github.com/go-oner/oner/pkg/errors"
)

var (
	providerMu   sync.RWMutex
	rootLevel    = LevelInfo
	rootOutput   io.Writer = os.Stderr
	rootZerolog            = newRootZerolog(rootOutput, rootLevel)
)

func init() {
	// 警告をzerolog経由で構造化ログとして出力する（pkg/errors側は循環importを避けるため関数注入）
	onerErrors.SetZerologWarnFunc(func(warning error) {
		l := currentRoot()
		ev := l.Warn()
		if m, ok := warning.(zerolog.LogObjectMarshaler); ok {
			ev.Object("warning", m).Msg(warning.Error())
			return
		}
		ev.Msg(warning.Error())
	})
}

func newRootZerolog(w io.Writer, level Level) zerolog.Logger {
	return zerolog.New(w).Level(toZerologLevel(level)).With().Timestamp().Logger()
}

func currentRoot() zerolog.Logger {
	providerMu.RLock()
	defer providerMu.RUnlock()
	return rootZerolog
}

// GetLogger returns the process-wide default logger.
func GetLogger() Logger {
	return &zerologLogger{logger: currentRoot()}
}

// GetLoggerWithName returns the default logger tagged with a component name.
func GetLoggerWithName(name string) Logger {
	return GetLogger().With(ComponentKey, name)
}

// SetLevel sets the minimum level of the default logger.
func SetLevel(level Level) {
	providerMu.Lock()
	defer providerMu.Unlock()
	rootLevel = level
	rootZerolog = newRootZerolog(rootOutput, rootLevel)
}

// SetOutput redirects the default logger. Mainly used by tests and examples.
func SetOutput(w io.Writer) {
	providerMu.Lock()
	defer providerMu.Unlock()
	rootOutput = w
	rootZerolog = newRootZerolog(rootOutput, rootLevel)
}

func toZerologLevel(level Level) zerolog.Level {
	switch {
	case level <= LevelDebug:
		return zerolog.DebugLevel
	case level <= LevelInfo:
		return zerolog.InfoLevel
	case level <= LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

// zerologLogger adapts a zerolog.Logger to the Logger interface.
type zerologLogger struct {
	logger zerolog.Logger
}

func (l *zerologLogger) Debug(msg string, fields ...any) {
	applyFields(l.logger.Debug(), fields...).Msg(msg)
}

func (l *zerologLogger) Info(msg string, fields ...any) {
	applyFields(l.logger.Info(), fields...).Msg(msg)
}

func (l *zerologLogger) Warn(msg string, fields ...any) {
	applyFields(l.logger.Warn(), fields...).Msg(msg)
}

func (l *zerologLogger) Error(msg string, fields ...any) {
	applyFields(l.logger.Error(), fields...).Msg(msg)
}

func (l *zerologLogger) With(fields ...any) Logger {
	return &zerologLogger{logger: l.logger.With().Fields(fields).Logger()}
}

func (l *zerologLogger) Enabled(_ context.Context, level Level) bool {
	return toZerologLevel(level) >= l.logger.GetLevel()
}

// applyFields maps variadic key-value pairs onto a zerolog event.
// 奇数個のフィールドが渡された場合、最後のキーは無視されます。
func applyFields(e *zerolog.Event, fields ...any) *zerolog.Event {
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", fields[i])
		}
		switch v := fields[i+1].(type) {
		case zerolog.LogObjectMarshaler:
			e = e.Object(key, v)
		case error:
			e = e.AnErr(key, v)
		default:
			e = e.Interface(key, v)
		}
	}
	return e
}
