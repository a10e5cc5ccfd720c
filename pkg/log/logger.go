package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// SetupLogger installs the process-wide slog JSON logger used by example
// binaries and services embedding the library. Library code logs through the
// Logger interface instead; this wires the application-level pathway so that
// errors carrying stack traces are rendered with a stacktrace attribute.
func SetupLogger(loglevel string) {
	slog.SetDefault(slog.New(NewAppHandler(os.Stdout, loglevel)))
}

// NewAppHandler builds a JSON slog handler with CloudLogging-style field
// names and stacktrace extraction for wrapped errors.
func NewAppHandler(w io.Writer, loglevel string) slog.Handler {
	ops := slog.HandlerOptions{
		AddSource:   true,
		Level:       ToLogLevel(loglevel),
		ReplaceAttr: renameCoreAttrs,
	}
	return WrapByErrFmtHandler(slog.NewJSONHandler(w, &ops))
}

// renameCoreAttrs はslogの標準キーをCloudLoggingのフィールド名へ変換する
func renameCoreAttrs(groups []string, attr slog.Attr) slog.Attr {
	switch attr.Key {
	case slog.LevelKey:
		attr.Key = "severity"
	case slog.MessageKey:
		attr.Key = "message"
	case slog.SourceKey:
		attr.Key = "logging.googleapis.com/sourceLocation"
	}
	return attr
}

// ToLogLevel parses a level name. Unknown names are a programming error.
func ToLogLevel(level string) slog.Level {
	switch level {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		panic(fmt.Sprintf("invalid log level :%s", level))
	}
}

const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
)

// ErrAttr is a wrapper to pass err to slog.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}
