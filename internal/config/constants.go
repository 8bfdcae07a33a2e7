package config

const (
	// LogLevelDebug 调试日志级别
	LogLevelDebug = "debug"
	// LogLevelInfo 信息日志级别
	LogLevelInfo = "info"
	// LogLevelWarn 警告日志级别
	LogLevelWarn = "warn"
	// LogLevelError 错误日志级别
	LogLevelError = "error"

	// LogFormatJSON JSON 日志格式
	LogFormatJSON = "json"
	// LogFormatText 文本日志格式
	LogFormatText = "text"

	// LogOutputStdout 标准输出
	LogOutputStdout = "stdout"
	// LogOutputStderr 标准错误
	LogOutputStderr = "stderr"

	// PolicyLegacy 接受全小写/全大写地址
	PolicyLegacy = "legacy"
	// PolicyStrict 必须与规范大小写完全一致
	PolicyStrict = "strict"

	// DefaultLogLevel 默认日志级别
	DefaultLogLevel = LogLevelWarn
	// DefaultLogFormat 默认日志格式
	DefaultLogFormat = LogFormatText
	// DefaultLogOutput 默认日志输出；标准输出留给命令结果
	DefaultLogOutput = LogOutputStderr
	// DefaultChecksumPolicy 默认校验策略
	DefaultChecksumPolicy = PolicyLegacy
)

// Validator 验证器接口
type Validator interface {
	Validate() error
}

// 有效的日志级别
var validLogLevels = map[string]bool{
	LogLevelDebug: true,
	LogLevelInfo:  true,
	LogLevelWarn:  true,
	LogLevelError: true,
}

// 有效的日志格式
var validLogFormats = map[string]bool{
	LogFormatJSON: true,
	LogFormatText: true,
}

// 有效的校验策略
var validPolicies = map[string]bool{
	PolicyLegacy: true,
	PolicyStrict: true,
}
