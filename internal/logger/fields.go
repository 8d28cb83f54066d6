package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldDocument is the structured log field key for the source filename.
	FieldDocument = "document"
	// FieldFormat is the structured log field key for the detected container format.
	FieldFormat = "format"
	// FieldCandidate is the structured log field key for the extracted candidate name.
	FieldCandidate = "candidate"
	// FieldRunID is the structured log field key for the screening batch identifier.
	FieldRunID = "run_id"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields safely attaches the provided fields to the logger.
// A nil logger is replaced by a no-op logger.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// DocumentFields describes a single input document.
func DocumentFields(filename, format string) []zap.Field {
	return StringFields(
		StringField{Key: FieldDocument, Value: filename},
		StringField{Key: FieldFormat, Value: format},
	)
}

// WithRunID tags every entry of a screening batch with its identifier.
func WithRunID(logger *zap.Logger, runID string) *zap.Logger {
	return WithFields(logger, StringFields(StringField{Key: FieldRunID, Value: runID})...)
}
