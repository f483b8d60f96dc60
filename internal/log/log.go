// Package log provides the process-wide zap logger of the command line
// tools. Engine packages never log.
package log

import (
	"fmt"

	"go.uber.org/zap"
)

var log *zap.SugaredLogger

// Init initializes the package-level logger.
func Init(debug bool) error {
	var (
		zapLogger *zap.Logger
		err       error
	)

	if debug {
		zapLogger, err = zap.NewDevelopment(zap.AddCallerSkip(1))
	} else {
		zapLogger, err = zap.NewProduction(zap.AddCallerSkip(1))
	}

	if err != nil {
		return fmt.Errorf("can't initialize zap logger: %w", err)
	}

	log = zapLogger.Sugar()

	return nil
}

// Set replaces the package-level logger. Tests use it with an observer core.
func Set(l *zap.Logger) {
	log = l.WithOptions(zap.AddCallerSkip(1)).Sugar()
}

// Logger returns the sugared logger, falling back to a production logger
// when Init was not called.
func Logger() *zap.SugaredLogger {
	if log == nil {
		zapLogger, _ := zap.NewProduction(zap.AddCallerSkip(1))
		log = zapLogger.Sugar()
	}

	return log
}

// With returns a child logger carrying the given key-value pairs. Unlike the
// package functions it does not skip a caller frame.
func With(keysAndValues ...any) *zap.SugaredLogger {
	return Logger().Desugar().WithOptions(zap.AddCallerSkip(-1)).Sugar().With(keysAndValues...)
}

// Sync flushes any buffered log entries.
func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}

func Debugw(msg string, keysAndValues ...any) {
	Logger().Debugw(msg, keysAndValues...)
}

func Infow(msg string, keysAndValues ...any) {
	Logger().Infow(msg, keysAndValues...)
}

func Warnw(msg string, keysAndValues ...any) {
	Logger().Warnw(msg, keysAndValues...)
}

func Errorw(msg string, keysAndValues ...any) {
	Logger().Errorw(msg, keysAndValues...)
}
