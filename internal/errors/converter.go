package errors

import (
	stderrors "errors"
)

// ConvertError 通用的错误转换函数
func ConvertError(err error) *AppError {
	if err == nil {
		return nil
	}

	// 如果已经是 AppError（包括被 %w 包装过的），直接返回
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}

	// 普通错误，包装为内部错误
	return Wrap(err, ErrorTypeInternal, CodeInternal, "Internal error")
}

// MustConvertError 转换错误，如果为 nil 则 panic
func MustConvertError(err error) *AppError {
	if err == nil {
		panic("MustConvertError: err cannot be nil")
	}
	return ConvertError(err)
}

// KindOf 返回错误类型；非 AppError 返回 ErrorTypeInternal，nil 返回空串
func KindOf(err error) ErrorType {
	if err == nil {
		return ""
	}
	return ConvertError(err).Type
}

// ExitCode 返回错误对应的进程退出码
func ExitCode(err error) int {
	if err == nil {
		return CodeOK
	}
	return ConvertError(err).Code
}

// IsErrorType 检查错误是否属于指定类型
func IsErrorType(err error, errorType ErrorType) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type == errorType
	}
	return false
}

// IsAddressError 检查是否是地址编解码相关的四类错误之一
func IsAddressError(err error) bool {
	switch KindOf(err) {
	case ErrorTypeInvalidUTF8, ErrorTypeInvalidHex, ErrorTypeInvalidAddressLength, ErrorTypeInvalidEIP55:
		return true
	}
	return false
}

// CanRelax 只有大小写校验失败的输入可以改用不校验 checksum 的解析重试
func CanRelax(err error) bool {
	return IsErrorType(err, ErrorTypeInvalidEIP55)
}

// IsClientError 检查是否是输入导致的错误
func IsClientError(err error) bool {
	if IsAddressError(err) {
		return true
	}
	switch KindOf(err) {
	case ErrorTypeInput, ErrorTypeConfig:
		return true
	}
	return false
}
