package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mowind/eip55-go/internal/config"
	apperrors "github.com/mowind/eip55-go/internal/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd 表示基础命令
var rootCmd = &cobra.Command{
	Use:   "eip55",
	Short: "eip55 parses, validates and checksums Ethereum addresses",
	Long: `eip55 works with 20-byte Ethereum addresses in hexadecimal form.

It can:
1. Render any address in its EIP-55 mixed-case checksummed form
2. Validate the checksum casing of addresses
3. Encode and decode raw hexadecimal text`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute 执行根命令，退出码由错误类型决定
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(apperrors.ExitCode(err))
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// 全局标志
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.eip55.yaml)")

	// 注册所有标志
	if err := registerFlags(rootCmd, viper.GetViper()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to register flags: %v\n", err)
		os.Exit(apperrors.CodeInternal)
	}

	rootCmd.AddCommand(checksumCmd, validateCmd, hexCmd, versionCmd)
}

// initConfig 初始化配置
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".eip55")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("EIP55")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// 配置文件是可选的
	_ = viper.ReadInConfig()
}

// loadConfig 从 viper 读取并验证配置
func loadConfig(v *viper.Viper) (*config.Config, error) {
	var cfg config.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrorTypeConfig, apperrors.CodeConfig, "Failed to load configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// appFromCommand 为子命令构建 app
func appFromCommand(cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return nil, err
	}

	logger, err := apperrors.NewLogger(cfg.Log.LoggerConfig())
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrorTypeConfig, apperrors.CodeConfig, "Failed to create logger")
	}

	if used := viper.ConfigFileUsed(); used != "" {
		logger.Debugw("Using config file", "path", used)
	}
	logger.Debugw("Loaded configuration", "config", cfg.String())

	return newApp(cfg, logger, cmd.InOrStdin(), cmd.OutOrStdout()), nil
}
