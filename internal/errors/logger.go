package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Logger 扩展的日志器接口
type Logger interface {
	// 标准日志方法
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})

	// 格式化日志方法
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})

	// 结构化日志方法
	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})

	// 上下文相关方法
	WithContext(ctx context.Context) Logger
	WithField(key string, value interface{}) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
	WithRunID(runID string) Logger
	WithOperation(operation string) Logger

	// 操作和错误日志方法
	LogOperation(operation string, startTime time.Time, err error)
	LogError(err error, context ...interface{})
	LogAppError(appErr *AppError, context ...interface{})

	// 配置方法
	SetLevel(level string) error
	SetFormatter(format string) error
	SetOutput(output string) error

	// 获取底层 logrus 实例
	GetUnderlying() *logrus.Logger

	// Close 关闭日志文件；标准输出/错误不会被关闭
	Close() error
}

// Fields 日志字段
type Fields map[string]interface{}

// StructuredLogger 结构化日志器
type StructuredLogger struct {
	logger    *logrus.Logger
	runID     string
	operation string
	fields    Fields
	output    *closerRef
}

// closerRef 在克隆出的日志器之间共享当前输出
type closerRef struct {
	c io.Closer
}

// LoggerConfig 日志配置
type LoggerConfig struct {
	Level        string `json:"level" yaml:"level"`
	Format       string `json:"format" yaml:"format"`
	Output       string `json:"output" yaml:"output"`
	EnableCaller bool   `json:"enable_caller" yaml:"enable_caller"`
}

// DefaultLoggerConfig 默认日志配置；CLI 的标准输出留给结果，日志走 stderr
func DefaultLoggerConfig() *LoggerConfig {
	return &LoggerConfig{
		Level:        "warn",
		Format:       "text",
		Output:       "stderr",
		EnableCaller: false,
	}
}

// NewLogger 创建新的结构化日志器
func NewLogger(config *LoggerConfig) (Logger, error) {
	if config == nil {
		config = DefaultLoggerConfig()
	}

	output, closer, err := createOutput(config.Output)
	if err != nil {
		return nil, fmt.Errorf("failed to create output: %w", err)
	}

	logger, err := NewLoggerWithWriter(config, output)
	if err != nil {
		if closer != nil {
			_ = closer.Close()
		}
		return nil, err
	}
	logger.(*StructuredLogger).output.c = closer
	return logger, nil
}

// NewLoggerWithWriter 使用给定的 writer 创建日志器，忽略 config.Output
func NewLoggerWithWriter(config *LoggerConfig, w io.Writer) (Logger, error) {
	if config == nil {
		config = DefaultLoggerConfig()
	}

	logger := logrus.New()

	// 设置日志级别
	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %s: %w", config.Level, err)
	}
	logger.SetLevel(level)

	// 设置格式化器
	formatter, err := createFormatter(config.Format, config.EnableCaller)
	if err != nil {
		return nil, fmt.Errorf("failed to create formatter: %w", err)
	}
	logger.SetFormatter(formatter)
	logger.SetReportCaller(config.EnableCaller)
	logger.SetOutput(w)

	return &StructuredLogger{
		logger: logger,
		fields: make(Fields),
		output: &closerRef{},
	}, nil
}

// createFormatter 创建格式化器
func createFormatter(format string, enableCaller bool) (logrus.Formatter, error) {
	switch strings.ToLower(format) {
	case "json":
		return &logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
			CallerPrettyfier: func(f *runtime.Frame) (string, string) {
				if !enableCaller {
					return "", ""
				}
				filename := f.File
				if idx := strings.LastIndex(filename, "/"); idx >= 0 {
					filename = filename[idx+1:]
				}
				return fmt.Sprintf("%s:%d", filename, f.Line), f.Function
			},
		}, nil
	case "text":
		return &logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339Nano,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported log format: %s", format)
	}
}

// createOutput 创建输出；只有日志文件会返回 closer
func createOutput(output string) (io.Writer, io.Closer, error) {
	switch strings.ToLower(output) {
	case "stdout":
		return os.Stdout, nil, nil
	case "", "stderr":
		return os.Stderr, nil, nil
	default:
		// #nosec G304 - 日志文件路径来自配置
		file, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", output, err)
		}
		return file, file, nil
	}
}

// Standard logging methods 标准日志方法
func (l *StructuredLogger) Debug(args ...interface{}) {
	l.entry().Debug(args...)
}

func (l *StructuredLogger) Info(args ...interface{}) {
	l.entry().Info(args...)
}

func (l *StructuredLogger) Warn(args ...interface{}) {
	l.entry().Warn(args...)
}

func (l *StructuredLogger) Error(args ...interface{}) {
	l.entry().Error(args...)
}

// Formatted logging methods 格式化日志方法
func (l *StructuredLogger) Debugf(format string, args ...interface{}) {
	l.entry().Debugf(format, args...)
}

func (l *StructuredLogger) Infof(format string, args ...interface{}) {
	l.entry().Infof(format, args...)
}

func (l *StructuredLogger) Warnf(format string, args ...interface{}) {
	l.entry().Warnf(format, args...)
}

func (l *StructuredLogger) Errorf(format string, args ...interface{}) {
	l.entry().Errorf(format, args...)
}

// entry 带上当前字段、执行ID和操作名
func (l *StructuredLogger) entry() *logrus.Entry {
	fields := make(logrus.Fields, len(l.fields)+2)
	for k, v := range l.fields {
		fields[k] = v
	}
	if l.runID != "" {
		fields["run_id"] = l.runID
	}
	if l.operation != "" {
		fields["operation"] = l.operation
	}
	return l.logger.WithFields(fields)
}

// Structured logging methods 结构化日志方法
func (l *StructuredLogger) logWithFields(level logrus.Level, msg string, keysAndValues ...interface{}) {
	fields := make(logrus.Fields)

	// 解析键值对
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields[key] = keysAndValues[i+1]
	}

	l.entry().WithFields(fields).Log(level, msg)
}

func (l *StructuredLogger) Debugw(msg string, keysAndValues ...interface{}) {
	l.logWithFields(logrus.DebugLevel, msg, keysAndValues...)
}

func (l *StructuredLogger) Infow(msg string, keysAndValues ...interface{}) {
	l.logWithFields(logrus.InfoLevel, msg, keysAndValues...)
}

func (l *StructuredLogger) Warnw(msg string, keysAndValues ...interface{}) {
	l.logWithFields(logrus.WarnLevel, msg, keysAndValues...)
}

func (l *StructuredLogger) Errorw(msg string, keysAndValues ...interface{}) {
	l.logWithFields(logrus.ErrorLevel, msg, keysAndValues...)
}

// Context-related methods 上下文相关方法
func (l *StructuredLogger) WithContext(ctx context.Context) Logger {
	newLogger := l.clone()

	if runID := GetRunID(ctx); runID != "" {
		newLogger.runID = runID
	}
	if operation := GetOperation(ctx); operation != "" {
		newLogger.operation = operation
	}

	return newLogger
}

func (l *StructuredLogger) WithField(key string, value interface{}) Logger {
	newLogger := l.clone()
	newLogger.fields[key] = value
	return newLogger
}

func (l *StructuredLogger) WithFields(fields Fields) Logger {
	newLogger := l.clone()
	for k, v := range fields {
		newLogger.fields[k] = v
	}
	return newLogger
}

func (l *StructuredLogger) WithError(err error) Logger {
	newLogger := l.clone()
	if appErr := ConvertError(err); appErr != nil && appErr.Type != ErrorTypeInternal {
		newLogger.fields["error_type"] = string(appErr.Type)
		newLogger.fields["error_code"] = appErr.Code
		if appErr.Details != "" {
			newLogger.fields["error_details"] = appErr.Details
		}
	} else if err != nil {
		newLogger.fields["error"] = err.Error()
	}
	return newLogger
}

func (l *StructuredLogger) WithRunID(runID string) Logger {
	newLogger := l.clone()
	newLogger.runID = runID
	return newLogger
}

func (l *StructuredLogger) WithOperation(operation string) Logger {
	newLogger := l.clone()
	newLogger.operation = operation
	return newLogger
}

// LogOperation 记录一次操作的耗时和结果
func (l *StructuredLogger) LogOperation(operation string, startTime time.Time, err error) {
	duration := time.Since(startTime)

	if err != nil {
		l.Errorw("Operation failed",
			"operation", operation,
			"duration_us", duration.Microseconds(),
			"error", err.Error(),
		)
	} else {
		l.Debugw("Operation completed successfully",
			"operation", operation,
			"duration_us", duration.Microseconds(),
		)
	}
}

// Error logging methods 错误日志方法
func (l *StructuredLogger) LogError(err error, context ...interface{}) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		l.LogAppError(appErr, context...)
		return
	}

	fields := []interface{}{"error", err.Error()}
	for i := 0; i < len(context)-1; i += 2 {
		if key, ok := context[i].(string); ok {
			fields = append(fields, key, context[i+1])
		}
	}

	l.Errorw("Application error occurred", fields...)
}

func (l *StructuredLogger) LogAppError(appErr *AppError, context ...interface{}) {
	fields := []interface{}{
		"error_type", string(appErr.Type),
		"error_code", appErr.Code,
		"error_message", appErr.Message,
	}

	if appErr.Details != "" {
		fields = append(fields, "error_details", appErr.Details)
	}

	if appErr.OriginalErr != nil {
		fields = append(fields, "original_error", appErr.OriginalErr.Error())
	}

	// 添加上下文信息
	for k, v := range appErr.Context {
		fields = append(fields, fmt.Sprintf("context_%s", k), v)
	}

	// 添加额外的上下文参数
	for i := 0; i < len(context)-1; i += 2 {
		if key, ok := context[i].(string); ok {
			fields = append(fields, key, context[i+1])
		}
	}

	l.Errorw("Application error with context", fields...)
}

// Configuration methods 配置方法
func (l *StructuredLogger) SetLevel(level string) error {
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %s: %w", level, err)
	}
	l.logger.SetLevel(logLevel)
	return nil
}

func (l *StructuredLogger) SetFormatter(format string) error {
	formatter, err := createFormatter(format, l.logger.ReportCaller)
	if err != nil {
		return fmt.Errorf("failed to create formatter: %w", err)
	}
	l.logger.SetFormatter(formatter)
	return nil
}

func (l *StructuredLogger) SetOutput(output string) error {
	outputWriter, closer, err := createOutput(output)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	l.logger.SetOutput(outputWriter)

	previous := l.ref().c
	l.ref().c = closer
	if previous != nil {
		return previous.Close()
	}
	return nil
}

// Close 关闭当前的日志文件，可重复调用
func (l *StructuredLogger) Close() error {
	ref := l.ref()
	if ref.c == nil {
		return nil
	}
	err := ref.c.Close()
	ref.c = nil
	l.logger.SetOutput(io.Discard)
	return err
}

func (l *StructuredLogger) ref() *closerRef {
	if l.output == nil {
		l.output = &closerRef{}
	}
	return l.output
}

// GetUnderlying 获取底层 logrus 实例
func (l *StructuredLogger) GetUnderlying() *logrus.Logger {
	return l.logger
}

// clone 克隆日志器
func (l *StructuredLogger) clone() *StructuredLogger {
	newFields := make(Fields, len(l.fields))
	for k, v := range l.fields {
		newFields[k] = v
	}

	return &StructuredLogger{
		logger:    l.logger,
		runID:     l.runID,
		operation: l.operation,
		fields:    newFields,
		output:    l.ref(),
	}
}
