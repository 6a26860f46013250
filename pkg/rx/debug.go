package rx

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/rxkit/pkg/logger"
)

// Debug logs every subscription to src: when it starts, each event it sees
// and when it is disposed. Records carry label and a per-subscription id so
// interleaved traces can be told apart. A nil log falls back to slog.Default.
func Debug[T any](src Source[T], label string, log *slog.Logger) Observable[T] {
	if log == nil {
		log = slog.Default()
	}
	return Create(func(o Observer[T]) Disposable {
		l := log.With(
			logger.Component("rx"),
			logger.Operator("debug"),
			logger.Label(label),
			logger.SubscriptionID(uuid.NewString()),
		)
		l.Info("subscribed")

		inner := observe(src, func(e Event[T]) {
			switch e.Kind {
			case KindNext:
				l.Info("event", logger.EventKind(e.Kind.String()), logger.Value(e.Value))
			case KindError:
				l.Info("event", logger.EventKind(e.Kind.String()), logger.Error(e.Err))
			default:
				l.Info("event", logger.EventKind(e.Kind.String()))
			}
			o(e)
		})

		return NewDisposable(func() {
			inner.Dispose()
			l.Info("disposed")
		})
	})
}

// Debug is the method form of the package level Debug.
func (o Observable[T]) Debug(label string, log *slog.Logger) Observable[T] {
	return Debug[T](o, label, log)
}
