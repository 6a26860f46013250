// Package logger builds the structured loggers used across rxkit on top of
// log/slog.
//
// New returns a *slog.Logger configured with functional options: a preset
// (WithDevelopment for readable text at debug level, WithProduction for JSON
// at info level), the minimum level and the destination.
//
//	log := logger.New(
//	    logger.WithDevelopment("pipeline"),
//	    logger.WithOutput(os.Stderr),
//	)
//
//	log.Info("event",
//	    logger.Label("prices"),
//	    logger.EventKind("next"),
//	    logger.Value(42),
//	)
//
// attr.go holds constructors for the attribute keys shared by the reactive
// packages (component, operator, label, subscription_id, event_kind, value)
// so that traces of different pipelines can be filtered the same way. Error
// returns an empty attribute for a nil error, which slog drops.
package logger
