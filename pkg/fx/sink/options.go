package sink

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultMessage = "effect failed"

type logOptions struct {
	message string
	level   zapcore.Level
	fields  []zap.Field
}

type Option func(*logOptions)

// WithMessage sets the log message. Default "effect failed".
func WithMessage(msg string) Option {
	return func(o *logOptions) {
		o.message = msg
	}
}

// WithLevel sets the level failures are logged at. Default Error.
func WithLevel(level zapcore.Level) Option {
	return func(o *logOptions) {
		o.level = level
	}
}

// WithFields attaches fields to every entry.
func WithFields(fields ...zap.Field) Option {
	return func(o *logOptions) {
		o.fields = append(o.fields, fields...)
	}
}

func newLogOptions(opts []Option) logOptions {
	o := logOptions{
		message: defaultMessage,
		level:   zapcore.ErrorLevel,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
