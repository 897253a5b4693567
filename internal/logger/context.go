package logger

import (
	"context"

	"github.com/google/uuid"
)

// Context keys for logging values
type contextKey string

const (
	operationIDKey contextKey = "operation_id"
	journalKey     contextKey = "journal"
	loggerKey      contextKey = "logger"
)

// WithOperationID tags the context with an operation ID so every log line
// from one CLI invocation or report computation correlates. If id is
// empty, a new UUID is generated.
func WithOperationID(ctx context.Context, id string) context.Context {
	if id == "" {
		id = uuid.New().String()
	}
	return context.WithValue(ctx, operationIDKey, id)
}

// OperationIDFromContext extracts the operation ID from context
func OperationIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(operationIDKey).(string); ok {
		return id
	}
	return ""
}

// WithJournal tags the context with the journal path being operated on
func WithJournal(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, journalKey, path)
}

// JournalFromContext extracts the journal path from context
func JournalFromContext(ctx context.Context) string {
	if path, ok := ctx.Value(journalKey).(string); ok {
		return path
	}
	return ""
}

// WithLogger adds a logger to the context
func WithLogger(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext extracts the logger from context, or returns the default logger
func FromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(loggerKey).(Logger); ok {
		return l
	}
	return Default()
}

// extractContextFields extracts all logging-relevant fields from context
func extractContextFields(ctx context.Context) []Field {
	var fields []Field

	if id := OperationIDFromContext(ctx); id != "" {
		fields = append(fields, String("operation_id", id))
	}

	if path := JournalFromContext(ctx); path != "" {
		fields = append(fields, String("journal", path))
	}

	return fields
}

// Ctx returns a logger enriched with context values
// This is a convenience function for use in commands/services
func Ctx(ctx context.Context) Logger {
	return FromContext(ctx).WithContext(ctx)
}
