package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorType 错误类型
type ErrorType string

const (
	// 地址编解码错误
	ErrorTypeInvalidUTF8          ErrorType = "INVALID_UTF8"
	ErrorTypeInvalidHex           ErrorType = "INVALID_HEX"
	ErrorTypeInvalidAddressLength ErrorType = "INVALID_ADDRESS_LENGTH"
	ErrorTypeInvalidEIP55         ErrorType = "INVALID_EIP55"

	// 命令行/系统级错误
	ErrorTypeInternal ErrorType = "INTERNAL_ERROR"
	ErrorTypeConfig   ErrorType = "CONFIG_ERROR"
	ErrorTypeInput    ErrorType = "INPUT_ERROR"
)

// 进程退出码，同时作为 AppError.Code
const (
	CodeOK                   = 0
	CodeInternal             = 1
	CodeConfig               = 2
	CodeInput                = 3
	CodeInvalidUTF8          = 10
	CodeInvalidHex           = 11
	CodeInvalidAddressLength = 12
	CodeInvalidEIP55         = 13
)

// Context keys used by the address error kinds.
const (
	ContextKeyGot      = "got"
	ContextKeyExpected = "expected"
	ContextKeyInput    = "input"
)

// AppError 应用统一的错误类型
type AppError struct {
	Type        ErrorType              `json:"type"`
	Code        int                    `json:"code"`
	Message     string                 `json:"message"`
	Details     string                 `json:"details,omitempty"`
	Context     map[string]interface{} `json:"context,omitempty"`
	OriginalErr error                  `json:"-"`
}

// New 创建新的应用错误
func New(errorType ErrorType, code int, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Code:    code,
		Message: message,
		Context: make(map[string]interface{}),
	}
}

// Newf 创建带格式的应用错误
func Newf(errorType ErrorType, code int, format string, args ...interface{}) *AppError {
	return New(errorType, code, fmt.Sprintf(format, args...))
}

// Wrap 包装现有错误
func Wrap(err error, errorType ErrorType, code int, message string) *AppError {
	if err == nil {
		return nil
	}

	appErr := New(errorType, code, message)
	appErr.OriginalErr = err
	appErr.Details = err.Error()
	return appErr
}

// Wrapf 包装现有错误并带格式
func Wrapf(err error, errorType ErrorType, code int, format string, args ...interface{}) *AppError {
	if err == nil {
		return nil
	}
	return Wrap(err, errorType, code, fmt.Sprintf(format, args...))
}

// NewInvalidUTF8 十六进制分组不是合法的 UTF-8 文本
func NewInvalidUTF8(cause error) *AppError {
	return Wrap(cause, ErrorTypeInvalidUTF8, CodeInvalidUTF8, "Failed to parse bytes as utf8")
}

// NewInvalidHex 十六进制分组无法按 16 进制解析
func NewInvalidHex(cause error) *AppError {
	return Wrap(cause, ErrorTypeInvalidHex, CodeInvalidHex, "Invalid hex character")
}

// NewInvalidAddressLength 字节长度与地址长度不符
func NewInvalidAddressLength(got, expected int) *AppError {
	return Newf(ErrorTypeInvalidAddressLength, CodeInvalidAddressLength,
		"Invalid address length, got %d, expected %d", got, expected).
		WithContext(ContextKeyGot, got).
		WithContext(ContextKeyExpected, expected)
}

// NewInvalidEIP55 大小写校验失败；expected 为规范的校验和形式
func NewInvalidEIP55(input, expected string) *AppError {
	return New(ErrorTypeInvalidEIP55, CodeInvalidEIP55, "Invalid EIP-55 Address encoding").
		WithContext(ContextKeyInput, input).
		WithContext(ContextKeyExpected, expected)
}

// WithContext 添加上下文信息
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// WithDetails 添加详细信息
func (e *AppError) WithDetails(details string) *AppError {
	e.Details = details
	return e
}

// Error 实现 error 接口
func (e *AppError) Error() string {
	if e.OriginalErr != nil && e.Details != "" && e.Details != e.OriginalErr.Error() {
		return fmt.Sprintf("%s [%s:%d]: %s (details: %s)", e.Message, e.Type, e.Code, e.OriginalErr.Error(), e.Details)
	}
	if e.OriginalErr != nil {
		return fmt.Sprintf("%s [%s:%d]: %s", e.Message, e.Type, e.Code, e.OriginalErr.Error())
	}
	if e.Details != "" {
		return fmt.Sprintf("%s [%s:%d] (details: %s)", e.Message, e.Type, e.Code, e.Details)
	}
	return fmt.Sprintf("%s [%s:%d]", e.Message, e.Type, e.Code)
}

// Unwrap 返回原始错误
func (e *AppError) Unwrap() error {
	return e.OriginalErr
}

// Is 按错误类型比较，使 errors.Is(err, ErrInvalidHex) 可用
func (e *AppError) Is(target error) bool {
	if targetErr, ok := target.(*AppError); ok {
		return e.Type == targetErr.Type
	}
	return false
}

// LengthMismatch 返回 InvalidAddressLength 错误携带的 got/expected
func LengthMismatch(err error) (got, expected int, ok bool) {
	var appErr *AppError
	if !stderrors.As(err, &appErr) || appErr.Type != ErrorTypeInvalidAddressLength {
		return 0, 0, false
	}
	got, ok1 := appErr.Context[ContextKeyGot].(int)
	expected, ok2 := appErr.Context[ContextKeyExpected].(int)
	return got, expected, ok1 && ok2
}

// Common errors 常用错误，仅用于 errors.Is 比较
var (
	ErrInvalidUTF8          = New(ErrorTypeInvalidUTF8, CodeInvalidUTF8, "Failed to parse bytes as utf8")
	ErrInvalidHex           = New(ErrorTypeInvalidHex, CodeInvalidHex, "Invalid hex character")
	ErrInvalidAddressLength = New(ErrorTypeInvalidAddressLength, CodeInvalidAddressLength, "Invalid address length")
	ErrInvalidEIP55         = New(ErrorTypeInvalidEIP55, CodeInvalidEIP55, "Invalid EIP-55 Address encoding")

	ErrInternal = New(ErrorTypeInternal, CodeInternal, "Internal error")
	ErrConfig   = New(ErrorTypeConfig, CodeConfig, "Configuration error")
	ErrInput    = New(ErrorTypeInput, CodeInput, "Invalid input")
)
