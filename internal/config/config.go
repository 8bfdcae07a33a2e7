package config

import (
	"fmt"
	"strings"

	"github.com/mowind/eip55-go/internal/address"
	apperrors "github.com/mowind/eip55-go/internal/errors"
)

// Config 表示命令行工具的完整配置
type Config struct {
	// 日志配置
	Log LogConfig `mapstructure:"log"`

	// 校验和配置
	Checksum ChecksumConfig `mapstructure:"checksum"`
}

// LogConfig 定义日志配置
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"` // stdout、stderr 或文件路径
}

// Validate 验证日志配置
func (c *LogConfig) Validate() error {
	if !validLogLevels[strings.ToLower(c.Level)] {
		return fmt.Errorf("log-level must be one of: debug, info, warn, error, got: %s", c.Level)
	}
	if !validLogFormats[strings.ToLower(c.Format)] {
		return fmt.Errorf("log-format must be one of: json, text, got: %s", c.Format)
	}
	return nil
}

// LoggerConfig 转换为日志器配置
func (c *LogConfig) LoggerConfig() *apperrors.LoggerConfig {
	return &apperrors.LoggerConfig{
		Level:  strings.ToLower(c.Level),
		Format: strings.ToLower(c.Format),
		Output: c.Output,
	}
}

// ChecksumConfig 定义 EIP-55 校验配置
type ChecksumConfig struct {
	Policy string `mapstructure:"policy"`
}

// Validate 验证校验配置
func (c *ChecksumConfig) Validate() error {
	if !validPolicies[strings.ToLower(c.Policy)] {
		return fmt.Errorf("checksum-policy must be one of: legacy, strict, got: %s", c.Policy)
	}
	return nil
}

// AddressPolicy 转换为 address.Policy
func (c *ChecksumConfig) AddressPolicy() address.Policy {
	if strings.ToLower(c.Policy) == PolicyStrict {
		return address.PolicyStrict
	}
	return address.PolicyLegacy
}

// Validate 验证配置是否有效
func (c *Config) Validate() error {
	// 设置默认值
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
	if c.Log.Output == "" {
		c.Log.Output = DefaultLogOutput
	}
	if c.Checksum.Policy == "" {
		c.Checksum.Policy = DefaultChecksumPolicy
	}

	// 验证所有子配置
	validators := []Validator{&c.Log, &c.Checksum}
	for _, v := range validators {
		if err := v.Validate(); err != nil {
			return apperrors.Wrap(err, apperrors.ErrorTypeConfig, apperrors.CodeConfig, "Configuration error")
		}
	}

	return nil
}

// String 返回配置摘要
func (c *Config) String() string {
	return fmt.Sprintf(
		"Log: {Level: %s, Format: %s, Output: %s}, Checksum: {Policy: %s}",
		c.Log.Level, c.Log.Format, c.Log.Output,
		c.Checksum.Policy,
	)
}
