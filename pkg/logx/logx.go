// Package logx is the application-wide logging facade. It keeps call sites
// free of logger plumbing while delegating formatting and output to zap.
package logx

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level mirrors the zap levels we actually use.
type Level int8

const (
	LevelDebug Level = iota - 1
	LevelInfo
	LevelWarn
	LevelError
)

var (
	mu    sync.RWMutex
	atom  = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	sugar = newSugar()
)

func newSugar() *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	cfg.Level = atom
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	logger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		// zap.NewProductionConfig cannot fail to build with a valid encoding;
		// fall back to a no-op logger rather than panic at init.
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}

// SetLevel changes the global log level.
func SetLevel(l Level) {
	atom.SetLevel(zapcore.Level(l))
}

// SetLogger replaces the backing logger, mainly for tests.
func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	sugar = l.Sugar()
}

func log() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return sugar
}

func Debug(args ...any)                 { log().Debug(args...) }
func Debugf(format string, args ...any) { log().Debugf(format, args...) }
func Info(args ...any)                  { log().Info(args...) }
func Infof(format string, args ...any)  { log().Infof(format, args...) }
func Warn(args ...any)                  { log().Warn(args...) }
func Warnf(format string, args ...any)  { log().Warnf(format, args...) }
func Error(args ...any)                 { log().Error(args...) }
func Errorf(format string, args ...any) { log().Errorf(format, args...) }
func Fatalf(format string, args ...any) { log().Fatalf(format, args...) }
