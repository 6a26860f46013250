package logger

import "log/slog"

// Error records err under "error". It returns an empty Attr for nil, which
// slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the emitting package under "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Operator records the operator name under "operator".
func Operator(name string) slog.Attr {
	return slog.String("operator", name)
}

// Label records the user supplied pipeline label under "label".
func Label(label string) slog.Attr {
	return slog.String("label", label)
}

// SubscriptionID records the subscription identifier under "subscription_id".
func SubscriptionID(id string) slog.Attr {
	return slog.String("subscription_id", id)
}

// EventKind records the event kind (next, error, completed) under "event_kind".
func EventKind(kind string) slog.Attr {
	return slog.String("event_kind", kind)
}

// Value records an element under "value".
func Value(v any) slog.Attr {
	return slog.Any("value", v)
}
