package config

import (
	"testing"

	"github.com/mowind/eip55-go/internal/address"
	apperrors "github.com/mowind/eip55-go/internal/errors"
)

func TestLogConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  LogConfig
		wantErr bool
	}{
		{
			name:    "valid debug",
			config:  LogConfig{Level: LogLevelDebug, Format: LogFormatText},
			wantErr: false,
		},
		{
			name:    "valid info json",
			config:  LogConfig{Level: LogLevelInfo, Format: LogFormatJSON},
			wantErr: false,
		},
		{
			name:    "upper case level",
			config:  LogConfig{Level: "WARN", Format: LogFormatText},
			wantErr: false,
		},
		{
			name:    "invalid level",
			config:  LogConfig{Level: "invalid", Format: LogFormatText},
			wantErr: true,
		},
		{
			name:    "fatal is not accepted",
			config:  LogConfig{Level: "fatal", Format: LogFormatText},
			wantErr: true,
		},
		{
			name:    "invalid format",
			config:  LogConfig{Level: LogLevelInfo, Format: "xml"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("LogConfig.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestChecksumConfig_Validate(t *testing.T) {
	tests := []struct {
		name       string
		config     ChecksumConfig
		wantErr    bool
		wantPolicy address.Policy
	}{
		{
			name:       "legacy",
			config:     ChecksumConfig{Policy: PolicyLegacy},
			wantPolicy: address.PolicyLegacy,
		},
		{
			name:       "strict",
			config:     ChecksumConfig{Policy: PolicyStrict},
			wantPolicy: address.PolicyStrict,
		},
		{
			name:       "strict mixed case",
			config:     ChecksumConfig{Policy: "Strict"},
			wantPolicy: address.PolicyStrict,
		},
		{
			name:    "unknown policy",
			config:  ChecksumConfig{Policy: "lenient"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("ChecksumConfig.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && tt.config.AddressPolicy() != tt.wantPolicy {
				t.Errorf("AddressPolicy() = %v, want %v", tt.config.AddressPolicy(), tt.wantPolicy)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	validConfig := Config{
		Log:      LogConfig{Level: LogLevelInfo, Format: LogFormatJSON, Output: LogOutputStdout},
		Checksum: ChecksumConfig{Policy: PolicyStrict},
	}

	t.Run("valid config", func(t *testing.T) {
		cfg := validConfig
		if err := cfg.Validate(); err != nil {
			t.Errorf("Config.Validate() error = %v", err)
		}
	})

	t.Run("sets defaults", func(t *testing.T) {
		var cfg Config
		if err := cfg.Validate(); err != nil {
			t.Fatalf("Config.Validate() error = %v", err)
		}
		if cfg.Log.Level != DefaultLogLevel {
			t.Errorf("expected log level %s, got %s", DefaultLogLevel, cfg.Log.Level)
		}
		if cfg.Log.Format != DefaultLogFormat {
			t.Errorf("expected log format %s, got %s", DefaultLogFormat, cfg.Log.Format)
		}
		if cfg.Log.Output != DefaultLogOutput {
			t.Errorf("expected log output %s, got %s", DefaultLogOutput, cfg.Log.Output)
		}
		if cfg.Checksum.Policy != DefaultChecksumPolicy {
			t.Errorf("expected policy %s, got %s", DefaultChecksumPolicy, cfg.Checksum.Policy)
		}
	})

	t.Run("invalid log config is a config error", func(t *testing.T) {
		cfg := validConfig
		cfg.Log.Level = "loud"
		err := cfg.Validate()
		if err == nil {
			t.Fatal("expected error for invalid log config")
		}
		if !apperrors.IsErrorType(err, apperrors.ErrorTypeConfig) {
			t.Errorf("expected CONFIG_ERROR, got %v", err)
		}
		if apperrors.ExitCode(err) != apperrors.CodeConfig {
			t.Errorf("expected exit code %d, got %d", apperrors.CodeConfig, apperrors.ExitCode(err))
		}
	})
}

func TestLogConfig_LoggerConfig(t *testing.T) {
	c := LogConfig{Level: "DEBUG", Format: "JSON", Output: "/tmp/eip55.log"}
	lc := c.LoggerConfig()

	if lc.Level != "debug" || lc.Format != "json" || lc.Output != "/tmp/eip55.log" {
		t.Errorf("unexpected logger config: %+v", lc)
	}
}

func TestConfig_String(t *testing.T) {
	cfg := Config{
		Log:      LogConfig{Level: "info", Format: "text", Output: "stderr"},
		Checksum: ChecksumConfig{Policy: "strict"},
	}
	want := "Log: {Level: info, Format: text, Output: stderr}, Checksum: {Policy: strict}"
	if got := cfg.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
