package log

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"
)

// ErrFmtHandler はエラー属性からスタックトレースを取り出して
// レコードに付加するslogハンドラ
type ErrFmtHandler struct {
	handler slog.Handler
}

// WrapByErrFmtHandler wraps a handler so that records carrying an error
// attribute also carry the error's stack trace, when one is available.
func WrapByErrFmtHandler(h slog.Handler) slog.Handler {
	return &ErrFmtHandler{handler: h}
}

func (eh *ErrFmtHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return eh.handler.Enabled(ctx, level)
}

func (eh *ErrFmtHandler) Handle(ctx context.Context, r slog.Record) error {
	if err := attachedError(r); err != nil {
		if st := extractStacktrace(err); st != "" {
			r.AddAttrs(slog.String(StacktraceAttrKey, st))
		}
	}
	return eh.handler.Handle(ctx, r)
}

func (eh *ErrFmtHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ErrFmtHandler{handler: eh.handler.WithAttrs(attrs)}
}

func (eh *ErrFmtHandler) WithGroup(name string) slog.Handler {
	return &ErrFmtHandler{handler: eh.handler.WithGroup(name)}
}

// attachedError は最初に見つかったエラー属性を返す
func attachedError(r slog.Record) error {
	var found error
	r.Attrs(func(attr slog.Attr) bool {
		if attr.Key != ErrAttrKey {
			return true
		}
		if err, ok := attr.Value.Any().(error); ok {
			found = err
		}
		return false
	})
	return found
}

// extractStacktrace はcockroachdb/errorsが記録したスタックトレースを取り出す
func extractStacktrace(err error) string {
	details := errors.GetSafeDetails(err).SafeDetails
	if len(details) == 0 {
		return ""
	}
	return details[0]
}
