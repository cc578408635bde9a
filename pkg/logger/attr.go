package logger

import (
	"log/slog"
	"time"
)

// Attribute keys shared by every package that logs.
const (
	KeyError     = "error"
	KeyRequestID = "request_id"
	KeyVisitorID = "visitor_id"
	KeyForm      = "form"
	KeyTable     = "table"
	KeyAction    = "action"
	KeyDuration  = "duration"
	KeyComponent = "component"
	KeyEvent     = "event"
)

// Group nests attrs under name.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error is empty for a nil err, so it can be passed unconditionally.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any(KeyError, err)
}

// RequestID is empty when id is.
func RequestID(id string) slog.Attr {
	return optional(KeyRequestID, id)
}

// VisitorID is empty when id is.
func VisitorID(id string) slog.Attr {
	return optional(KeyVisitorID, id)
}

// Form names the modal form, "sale" or "customer".
func Form(id string) slog.Attr { return slog.String(KeyForm, id) }

// Table names the data table, "sales" or "customers".
func Table(name string) slog.Attr { return slog.String(KeyTable, name) }

func Action(name string) slog.Attr { return slog.String(KeyAction, name) }

func Duration(d time.Duration) slog.Attr { return slog.Duration(KeyDuration, d) }

func Component(name string) slog.Attr { return slog.String(KeyComponent, name) }

func Event(name string) slog.Attr { return slog.String(KeyEvent, name) }

func optional(key, value string) slog.Attr {
	if value == "" {
		return slog.Attr{}
	}
	return slog.String(key, value)
}
