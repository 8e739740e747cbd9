package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger printf-логгер поверх zap. Пишет в stdout и, если задан файл, в ротируемый файл.
type Logger struct {
	zl   *zap.Logger
	s    *zap.SugaredLogger
	file *lumberjack.Logger
}

// New создает логгер. file может быть пустым, тогда пишем только в stdout.
// level: debug, info, warn, error.
func New(file, level string) (*Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
			zapcore.AddSync(os.Stdout),
			lvl,
		),
	}

	var rotator *lumberjack.Logger
	if file != "" {
		if dir := filepath.Dir(file); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("logger: create log dir: %w", err)
			}
		}

		rotator = &lumberjack.Logger{
			Filename:   file,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(rotator),
			lvl,
		))
	}

	zl := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1))

	return &Logger{zl: zl, s: zl.Sugar(), file: rotator}, nil
}

// NewNop логгер, который ничего не пишет (для тестов)
func NewNop() *Logger {
	zl := zap.NewNop()
	return &Logger{zl: zl, s: zl.Sugar()}
}

// NewWithCore логгер поверх произвольного zapcore.Core
func NewWithCore(core zapcore.Core) *Logger {
	zl := zap.New(core)
	return &Logger{zl: zl, s: zl.Sugar()}
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.s.Debugf(format, v...)
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.s.Infof(format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.s.Warnf(format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.s.Errorf(format, v...)
}

// Fatal пишет сообщение и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.s.Fatalf(format, v...)
}

// Close сбрасывает буферы и закрывает файл
func (l *Logger) Close() error {
	_ = l.zl.Sync()
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

func parseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "", "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("logger: unknown level %q", level)
	}
}
