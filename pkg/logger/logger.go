package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger wraps slog.Logger with additional functionality
type Logger struct {
	*slog.Logger
}

// New creates a new logger instance
func New() *Logger {
	// Get log level from environment
	level := getLogLevel(os.Getenv("LOG_LEVEL"))

	// Create handler options
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	// Create handler based on environment
	var handler slog.Handler
	if gin.Mode() == gin.DebugMode {
		// Use text handler for development (more readable)
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		// Use JSON handler for production (structured)
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// getLogLevel converts string to slog.Level
func getLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithRequestID adds request ID to logger context
func (l *Logger) WithRequestID(requestID string) *Logger {
	return &Logger{
		Logger: l.Logger.With(slog.String("request_id", requestID)),
	}
}

// WithError adds error to logger context
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Logger: l.Logger.With(slog.String("error", err.Error())),
	}
}

// HTTP logging methods

// LogHTTPRequest logs an HTTP request
func (l *Logger) LogHTTPRequest(c *gin.Context, duration time.Duration) {
	l.Logger.InfoContext(c.Request.Context(),
		"HTTP Request",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.Int("status", c.Writer.Status()),
		slog.Duration("duration", duration),
		slog.String("ip", c.ClientIP()),
		slog.String("user_agent", c.Request.UserAgent()),
		slog.Int("size", c.Writer.Size()),
	)
}

// Business logic logging methods

// LogReservationAttempt logs an incoming reservation attempt
func (l *Logger) LogReservationAttempt(ctx context.Context, dep, arr, date string, passengers int) {
	l.Logger.InfoContext(ctx,
		"Reservation Attempt",
		slog.String("dep", dep),
		slog.String("arr", arr),
		slog.String("date", date),
		slog.Int("passengers", passengers),
	)
}

// LogReservationConfirmed logs a committed reservation
func (l *Logger) LogReservationConfirmed(ctx context.Context, trainNo, seatNo, depTime string) {
	l.Logger.InfoContext(ctx,
		"Reservation Confirmed",
		slog.String("train_no", trainNo),
		slog.String("seat_no", seatNo),
		slog.String("dep_time", depTime),
	)
}

// LogNotificationSent logs a delivered confirmation SMS
func (l *Logger) LogNotificationSent(ctx context.Context, recipient, groupID string, sentCount int) {
	l.Logger.InfoContext(ctx,
		"Notification Sent",
		slog.String("recipient", recipient),
		slog.String("group_id", groupID),
		slog.Int("sent_count", sentCount),
	)
}

// LogNotificationFailed logs a failed confirmation SMS; the reservation itself stands
func (l *Logger) LogNotificationFailed(ctx context.Context, recipient, detail string) {
	l.Logger.WarnContext(ctx,
		"Notification Failed",
		slog.String("recipient", recipient),
		slog.String("detail", detail),
	)
}

// Global logger instance (can be replaced with dependency injection)
var defaultLogger = New()

// GetDefault returns the default logger instance
func GetDefault() *Logger {
	return defaultLogger
}

// SetDefault sets the default logger instance
func SetDefault(logger *Logger) {
	defaultLogger = logger
}
