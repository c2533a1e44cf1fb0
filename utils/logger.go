package utils

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/relevanceai/fetch-listings/constants"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	userLogger     *log.Logger
	userWriter     io.Writer = os.Stdout
	internalLogger *zap.SugaredLogger
	internalLevel  = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	loggerMu       sync.RWMutex
)

type requestIDKeyType struct{}

var requestIDKey = requestIDKeyType{}

func init() {
	userLogger = log.New(userWriter, "", 0)
	if os.Getenv(constants.EnvDebug) != "" {
		internalLevel.SetLevel(zapcore.DebugLevel)
	}
	initInternal(os.Stderr)
}

// initInternal builds the internal logger on top of the shared atomic level so
// SetLevel applies to loggers created before and after it.
func initInternal(w io.Writer) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(w),
		internalLevel,
	)
	loggerMu.Lock()
	internalLogger = zap.New(core).Sugar()
	loggerMu.Unlock()
}

func logger() *zap.SugaredLogger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return internalLogger
}

// SetLevel changes the minimum level of the internal logger. Unknown levels
// fall back to info.
func SetLevel(level string) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case constants.LogLevelDebug:
		internalLevel.SetLevel(zapcore.DebugLevel)
	case constants.LogLevelWarn:
		internalLevel.SetLevel(zapcore.WarnLevel)
	case constants.LogLevelError:
		internalLevel.SetLevel(zapcore.ErrorLevel)
	default:
		internalLevel.SetLevel(zapcore.InfoLevel)
	}
}

// Level reports the current internal log level.
func Level() string {
	return internalLevel.Level().String()
}

func User(format string, v ...any) {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	if userLogger != nil {
		userLogger.Printf(format, v...)
	}
}

func Info(format string, v ...any) {
	if l := logger(); l != nil {
		l.Infof(format, v...)
	}
}

func Warn(format string, v ...any) {
	if l := logger(); l != nil {
		l.Warnf(format, v...)
	}
}

func Error(format string, v ...any) {
	if l := logger(); l != nil {
		l.Errorf(format, v...)
	}
}

func Debug(format string, v ...any) {
	if l := logger(); l != nil {
		l.Debugf(format, v...)
	}
}

func SetUserOutput(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	loggerMu.Lock()
	defer loggerMu.Unlock()
	userWriter = w
	userLogger = log.New(userWriter, "", 0)
}

func SetInternalOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	initInternal(w)
}

// Errorf logs the error message and returns it as an error value.
func Errorf(format string, v ...any) error {
	err := fmt.Errorf(format, v...)
	if l := logger(); l != nil {
		l.Errorf("%s", err)
	}
	return err
}

// WithRequestID returns a new context with the given request ID.
func WithRequestID(ctx context.Context, reqID string) context.Context {
	return context.WithValue(ctx, requestIDKey, reqID)
}

// RequestIDFromContext extracts the request ID from context, if present.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(requestIDKey)
	if s, ok := v.(string); ok {
		return s, true
	}
	return "", false
}

func withRequestID(ctx context.Context, fields []any) []any {
	if reqID, ok := RequestIDFromContext(ctx); ok {
		fields = append(fields, "request_id", reqID)
	}
	return fields
}

// InfoCtx logs an info message with context, including request ID if present.
func InfoCtx(ctx context.Context, msg string, fields ...any) {
	if l := logger(); l != nil {
		l.Infow(msg, withRequestID(ctx, fields)...)
	}
}

// WarnCtx logs a warning message with context, including request ID if present.
func WarnCtx(ctx context.Context, msg string, fields ...any) {
	if l := logger(); l != nil {
		l.Warnw(msg, withRequestID(ctx, fields)...)
	}
}

// ErrorCtx logs an error message with context, including request ID if present.
func ErrorCtx(ctx context.Context, msg string, fields ...any) {
	if l := logger(); l != nil {
		l.Errorw(msg, withRequestID(ctx, fields)...)
	}
}

// DebugCtx logs a debug message with context, including request ID if present.
func DebugCtx(ctx context.Context, msg string, fields ...any) {
	if l := logger(); l != nil {
		l.Debugw(msg, withRequestID(ctx, fields)...)
	}
}
