package main

import (
	"fmt"

	"github.com/mowind/eip55-go/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Flag 定义命令行标志
type Flag struct {
	Name         string
	DefaultValue interface{}
	Description  string
	BindTo       string // viper 键名
}

// flags 定义所有全局标志
var flags = []Flag{
	// 日志配置
	{
		Name:         "log-level",
		DefaultValue: config.DefaultLogLevel,
		Description:  "Log level (debug, info, warn, error)",
		BindTo:       "log.level",
	},
	{
		Name:         "log-format",
		DefaultValue: config.DefaultLogFormat,
		Description:  "Log format (text, json)",
		BindTo:       "log.format",
	},
	{
		Name:         "log-output",
		DefaultValue: config.DefaultLogOutput,
		Description:  "Log output (stdout, stderr or a file path)",
		BindTo:       "log.output",
	},

	// 校验配置
	{
		Name:         "checksum-policy",
		DefaultValue: config.DefaultChecksumPolicy,
		Description:  "EIP-55 policy: legacy accepts all-lower/all-upper input, strict requires exact casing",
		BindTo:       "checksum.policy",
	},
}

// registerFlags 注册所有全局标志并绑定到 viper
func registerFlags(cmd *cobra.Command, v *viper.Viper) error {
	fs := cmd.PersistentFlags()
	for _, flag := range flags {
		// 根据类型添加标志
		switch d := flag.DefaultValue.(type) {
		case string:
			fs.String(flag.Name, d, flag.Description)
		case int:
			fs.Int(flag.Name, d, flag.Description)
		case bool:
			fs.Bool(flag.Name, d, flag.Description)
		default:
			return fmt.Errorf("unsupported flag type: %T for flag %s", d, flag.Name)
		}

		// 绑定到 viper
		if err := v.BindPFlag(flag.BindTo, fs.Lookup(flag.Name)); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", flag.Name, err)
		}
	}

	return nil
}
