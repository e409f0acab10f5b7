package logx

import (
	"context"
	"io"

	"pkt.systems/pslog"
)

// Ctx returns the logger bound to the provided context.
func Ctx(ctx context.Context) pslog.Logger {
	return pslog.Ctx(ctx)
}

// Discard returns a logger that drops everything. Controls use it until a host
// hands them a real one.
func Discard() pslog.Logger {
	return pslog.NewWithOptions(io.Discard, pslog.Options{
		Mode:     pslog.ModeStructured,
		NoColor:  true,
		MinLevel: pslog.ErrorLevel,
	})
}

// OrDiscard returns log, or a discarding logger when log is nil.
func OrDiscard(log pslog.Logger) pslog.Logger {
	if log == nil {
		return Discard()
	}
	return log
}

// WithControl annotates the logger with the control name if present.
func WithControl(log pslog.Logger, name string) pslog.Logger {
	log = OrDiscard(log)
	if name != "" {
		log = log.With("control", name)
	}
	return log
}
