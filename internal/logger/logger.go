package logger

import (
	"context"
	"io"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	userKey      contextKey = "logger.user"
	requestIDKey contextKey = "logger.request_id"
)

// Logger wraps logrus for structured logging with context support
type Logger struct {
	*logrus.Entry
}

// Setup configures the global logrus instance: JSON output at the given level
func Setup(level string, out io.Writer) {
	if out == nil {
		out = os.Stdout
	}
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(out)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// ContextWithUser stores the acting user's identity for later log lines
func ContextWithUser(ctx context.Context, user string) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// ContextWithRequestID stores the request id for later log lines
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// WithContext creates a logger with user context information
func WithContext(ctx context.Context) *Logger {
	logger := New()
	if ctx == nil {
		return logger.WithField("user", "unknown")
	}

	if user, ok := ctx.Value(userKey).(string); ok && user != "" {
		logger.Entry = logger.Entry.WithField("user", user)
	} else {
		logger.Entry = logger.Entry.WithField("user", "unknown")
	}

	if requestID, ok := ctx.Value(requestIDKey).(string); ok && requestID != "" {
		logger.Entry = logger.Entry.WithField("request_id", requestID)
	}

	return logger
}

// FromGinContext creates a logger from the request carried by a gin context
func FromGinContext(c *gin.Context) *Logger {
	if c == nil || c.Request == nil {
		return WithContext(context.Background())
	}
	return WithContext(c.Request.Context())
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}

// WithError attaches an error to the logger
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Entry: l.Entry.WithError(err),
	}
}

// Debug logs a debug message (only shown when LOG_LEVEL=debug)
func (l *Logger) Debug(args ...interface{}) {
	l.Entry.Debug(args...)
}

// Debugf logs a formatted debug message (only shown when LOG_LEVEL=debug)
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.Entry.Debugf(format, args...)
}

// Info logs an info message
func (l *Logger) Info(args ...interface{}) {
	l.Entry.Info(args...)
}

// Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Entry.Infof(format, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(args ...interface{}) {
	l.Entry.Warn(args...)
}

// Warnf logs a formatted warning message
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.Entry.Warnf(format, args...)
}

// Error logs an error message
func (l *Logger) Error(args ...interface{}) {
	l.Entry.Error(args...)
}

// Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Entry.Errorf(format, args...)
}
