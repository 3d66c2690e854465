package log

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger *zap.Logger
	sugar  *zap.SugaredLogger
)

func init() {
	Init(zapcore.AddSync(os.Stdout), parseLevel(os.Getenv("LOG_LEVEL")))
}

// Init replaces the global logger, writing JSON entries at or above level to the given sink.
func Init(sink zapcore.WriteSyncer, level zapcore.Level) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.MessageKey = "msg"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.TimeKey = "@timestamp"
	encoderConfig.CallerKey = "logger_name"

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), sink, level)

	logger = zap.New(core,
		zap.AddCaller(),
		zap.Fields(zap.String("logName", os.Getenv("APPLICATION_NAME"))),
		zap.AddCallerSkip(1))

	sugar = logger.Sugar()
}

// parseLevel maps LOG_LEVEL values to zap levels, defaulting to info.
func parseLevel(value string) zapcore.Level {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(value)))); err != nil || value == "" {
		return zap.InfoLevel
	}
	return level
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = logger.Sync()
}

// Info logs a message at InfoLevel with the given structured fields.
func Info(message string, fields ...zap.Field) {
	logger.Info(message, fields...)
}

// Warn logs a message at WarnLevel with the given structured fields.
func Warn(message string, fields ...zap.Field) {
	logger.Warn(message, fields...)
}

// Warnf formats the message according to the format specifier and logs it at WarnLevel.
func Warnf(message string, args ...interface{}) {
	sugar.Warnf(message, args...)
}

// Error logs a message at ErrorLevel with the given structured fields.
func Error(message string, fields ...zap.Field) {
	logger.Error(message, fields...)
}

// Fatal logs a message at FatalLevel, then calls os.Exit.
func Fatal(message string, fields ...zap.Field) {
	logger.Fatal(message, fields...)
}
