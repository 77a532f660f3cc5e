package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const TIMESTAMP = "02/Jan/2006 15:04:05"

var logger = New(os.Stderr, zapcore.InfoLevel).Sugar()

// Init replaces the package logger with a console logger at the level named by 'level'.
// 'debug' forces DEBUG regardless of 'level'.
func Init(level string, debug bool) error {
	l, err := ParseLevel(level)
	if err != nil {
		return err
	}

	if debug {
		l = zapcore.DebugLevel
	}

	SetLogger(New(os.Stderr, l))

	return nil
}

// New returns a console encoded logger that writes '[timestamp] LEVEL [caller] message' lines.
func New(w io.Writer, level zapcore.Level) *zap.Logger {
	encoder := zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		CallerKey:        "caller",
		MessageKey:       "msg",
		StacktraceKey:    "stacktrace",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeTime:       zapcore.TimeEncoderOfLayout("[" + TIMESTAMP + "]"),
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		EncodeCaller:     zapcore.ShortCallerEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " ",
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoder), zapcore.AddSync(w), level)

	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
}

func SetLogger(l *zap.Logger) {
	logger = l.Sugar()
}

// ParseLevel accepts both zap and Python style level names e.g. 'WARNING' and 'CRITICAL'.
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "":
		return zapcore.InfoLevel, nil

	case "DEBUG":
		return zapcore.DebugLevel, nil

	case "INFO":
		return zapcore.InfoLevel, nil

	case "WARN", "WARNING":
		return zapcore.WarnLevel, nil

	case "ERROR", "CRITICAL":
		return zapcore.ErrorLevel, nil
	}

	l, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log level '%v'", level)
	}

	return l, nil
}

func Sync() {
	_ = logger.Sync()
}

func Debugf(format string, args ...any) {
	logger.Debugf(format, args...)
}

func Infof(format string, args ...any) {
	logger.Infof(format, args...)
}

func Warnf(format string, args ...any) {
	logger.Warnf(format, args...)
}

func Errorf(format string, args ...any) {
	logger.Errorf(format, args...)
}
