package main

import (
	"bytes"
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mowind/eip55-go/internal/batch"
	"github.com/mowind/eip55-go/internal/config"
	apperrors "github.com/mowind/eip55-go/internal/errors"
)

func newTestApp(t *testing.T, policy string, in string) (*app, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	cfg := &config.Config{
		Log:      config.LogConfig{Level: "debug", Format: "json"},
		Checksum: config.ChecksumConfig{Policy: policy},
	}
	require.NoError(t, cfg.Validate())

	var out, logs bytes.Buffer
	logger, err := apperrors.NewLoggerWithWriter(cfg.Log.LoggerConfig(), &logs)
	require.NoError(t, err)

	return newApp(cfg, logger, strings.NewReader(in), &out), &out, &logs
}

func testContext() context.Context {
	ctx := apperrors.NewContextWithRunID(context.Background(), "run-1")
	return apperrors.NewContextWithOperation(ctx, "test")
}

func TestApp_Checksum(t *testing.T) {
	a, out, _ := newTestApp(t, config.PolicyLegacy, "")

	entries := batch.FromArgs([]string{
		"0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed",
		"FB6916095CA1DF60BB79CE92CE3EA74C37C5D359",
	})
	require.NoError(t, a.checksum(testContext(), entries))

	assert.Equal(t,
		"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed\n0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359\n",
		out.String())
}

func TestApp_ChecksumError(t *testing.T) {
	a, out, logs := newTestApp(t, config.PolicyLegacy, "")

	entries := batch.FromArgs([]string{"0x1234", "0x0000000000000000000000000000000000000000"})
	err := a.checksum(testContext(), entries)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeInvalidAddressLength, apperrors.ExitCode(err))

	assert.Equal(t, "0x1234\terror\tINVALID_ADDRESS_LENGTH\n0x0000000000000000000000000000000000000000\n", out.String())
	assert.Contains(t, logs.String(), `"run_id":"run-1"`)
	assert.Contains(t, logs.String(), `"error_type":"INVALID_ADDRESS_LENGTH"`)
}

func TestApp_Validate(t *testing.T) {
	a, out, _ := newTestApp(t, config.PolicyLegacy, "")

	entries := batch.FromArgs([]string{
		"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		"0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed",
		"0x5AAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		"0xzz",
	})
	err := a.validate(testContext(), entries)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, apperrors.ErrInvalidEIP55), "first failure decides the error")

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed\tok", lines[0])
	assert.Equal(t, "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed\tok", lines[1])
	assert.Equal(t, "0x5AAeb6053F3E94C9b9A09f33669435E7Ef1BeAed\tinvalid\tINVALID_EIP55\texpected 0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", lines[2])
	assert.Equal(t, "0xzz\tinvalid\tINVALID_HEX", lines[3])
}

func TestApp_ValidateStrict(t *testing.T) {
	a, out, logs := newTestApp(t, config.PolicyStrict, "")

	err := a.validate(testContext(), batch.FromArgs([]string{"0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"}))
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeInvalidEIP55, apperrors.ExitCode(err))
	assert.Contains(t, out.String(), "expected 0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed")
	assert.Contains(t, logs.String(), `"policy":"strict"`)
}

func TestApp_EntriesFromStdin(t *testing.T) {
	a, out, _ := newTestApp(t, config.PolicyLegacy, `[{"address": "0xde709f2102306220921060314715629080e2fb77", "label": "cold"}]`)

	entries, err := a.entries([]string{"0x27b1fdb04752bbc536007a920d24acb045561c26"}, "-")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 1, entries[1].Index)

	require.NoError(t, a.validate(testContext(), entries))
	assert.Equal(t, "cold\tok\n0x27b1fdb04752bbc536007a920d24acb045561c26\tok\n", out.String())
}

func TestApp_EntriesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.json")
	require.NoError(t, os.WriteFile(path, []byte(`["0x0000000000000000000000000000000000000000"]`), 0600))

	a, out, _ := newTestApp(t, config.PolicyLegacy, "")
	entries, err := a.entries(nil, path)
	require.NoError(t, err)

	require.NoError(t, a.checksum(testContext(), entries))
	assert.Equal(t, "0x0000000000000000000000000000000000000000\n", out.String())
}

func TestApp_EntriesEmpty(t *testing.T) {
	a, _, _ := newTestApp(t, config.PolicyLegacy, "")

	_, err := a.entries(nil, "")
	assert.Equal(t, apperrors.CodeInput, apperrors.ExitCode(err))
}

func TestApp_Hex(t *testing.T) {
	a, out, _ := newTestApp(t, config.PolicyLegacy, "")

	a.hexEncode("hi", false)
	a.hexEncode("hi", true)
	require.NoError(t, a.hexDecode(testContext(), "0xdeadbeef"))
	require.NoError(t, a.hexDecode(testContext(), "f"))
	assert.Equal(t, "6869\n0x6869\n[222 173 190 239]\n[15]\n", out.String())

	err := a.hexDecode(testContext(), "Lorem ipsum")
	assert.True(t, stderrors.Is(err, apperrors.ErrInvalidHex))
	assert.NoError(t, a.Close())
}

func TestRegisterFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	v := viper.New()
	require.NoError(t, registerFlags(cmd, v))

	require.NoError(t, cmd.PersistentFlags().Set("checksum-policy", "strict"))
	require.NoError(t, cmd.PersistentFlags().Set("log-format", "json"))

	cfg, err := loadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, config.PolicyStrict, cfg.Checksum.Policy)
	assert.Equal(t, config.LogFormatJSON, cfg.Log.Format)
	assert.Equal(t, config.DefaultLogLevel, cfg.Log.Level)
}

func TestLoadConfig_Invalid(t *testing.T) {
	v := viper.New()
	v.Set("checksum.policy", "sloppy")

	_, err := loadConfig(v)
	assert.Equal(t, apperrors.CodeConfig, apperrors.ExitCode(err))
}
