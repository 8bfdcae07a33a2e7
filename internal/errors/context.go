package errors

import (
	"context"

	"github.com/google/uuid"
)

// context keys
type contextKey string

const (
	// RunIDKey 单次命令执行ID的context key
	RunIDKey contextKey = "run_id"
	// OperationKey 操作名称的context key
	OperationKey contextKey = "operation"
)

// NewContextWithRunID 创建带有执行ID的context
func NewContextWithRunID(ctx context.Context, runID string) context.Context {
	if runID == "" {
		runID = GenerateRunID()
	}
	return context.WithValue(ctx, RunIDKey, runID)
}

// NewContextWithOperation 创建带有操作名称的context
func NewContextWithOperation(ctx context.Context, operation string) context.Context {
	return context.WithValue(ctx, OperationKey, operation)
}

// GetRunID 从context获取执行ID
func GetRunID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if runID, ok := ctx.Value(RunIDKey).(string); ok {
		return runID
	}
	return ""
}

// GetOperation 从context获取操作名称
func GetOperation(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if operation, ok := ctx.Value(OperationKey).(string); ok {
		return operation
	}
	return ""
}

// GenerateRunID 生成新的执行ID
func GenerateRunID() string {
	return uuid.New().String()
}
