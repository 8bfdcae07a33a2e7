package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/mowind/eip55-go/internal/address"
	"github.com/mowind/eip55-go/internal/batch"
	"github.com/mowind/eip55-go/internal/config"
	apperrors "github.com/mowind/eip55-go/internal/errors"
	"github.com/mowind/eip55-go/internal/hexutil"
)

// app 保存一次命令执行所需的依赖
type app struct {
	cfg         *config.Config
	logger      apperrors.Logger
	checksummer *address.Checksummer
	in          io.Reader
	out         io.Writer
}

func newApp(cfg *config.Config, logger apperrors.Logger, in io.Reader, out io.Writer) *app {
	return &app{
		cfg:         cfg,
		logger:      logger,
		checksummer: address.NewChecksummer(address.WithPolicy(cfg.Checksum.AddressPolicy())),
		in:          in,
		out:         out,
	}
}

// Close 释放日志输出
func (a *app) Close() error {
	return a.logger.Close()
}

// entries 合并 --input 文件和命令行参数
func (a *app) entries(args []string, input string) ([]batch.Entry, error) {
	var entries []batch.Entry
	if input != "" {
		loaded, err := batch.Load(input, a.in)
		if err != nil {
			return nil, err
		}
		entries = loaded
	}

	for _, e := range batch.FromArgs(args) {
		e.Index += len(entries)
		entries = append(entries, e)
	}

	if len(entries) == 0 {
		return nil, apperrors.New(apperrors.ErrorTypeInput, apperrors.CodeInput, "No addresses given")
	}
	return entries, nil
}

// checksum 输出每个地址的 EIP-55 形式，不校验输入大小写
func (a *app) checksum(ctx context.Context, entries []batch.Entry) error {
	logger := a.logger.WithContext(ctx)
	start := time.Now()

	var firstErr error
	for _, e := range entries {
		addr, err := address.FromHex(e.Address)
		if err != nil {
			logger.LogError(err, "index", e.Index, "input", e.Address)
			fmt.Fprintf(a.out, "%s\terror\t%s\n", e.Name(), apperrors.KindOf(err))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		if e.Label != "" {
			fmt.Fprintf(a.out, "%s\t%s\n", e.Label, addr.Checksummed())
		} else {
			fmt.Fprintln(a.out, addr.Checksummed())
		}
	}

	logger.LogOperation("checksum", start, firstErr)
	return firstErr
}

// validate 校验每个地址的 EIP-55 大小写
func (a *app) validate(ctx context.Context, entries []batch.Entry) error {
	logger := a.logger.WithContext(ctx).WithField("policy", a.checksummer.Policy().String())
	start := time.Now()

	var firstErr error
	for _, e := range entries {
		_, err := a.checksummer.Parse(e.Address)
		if err == nil {
			fmt.Fprintf(a.out, "%s\tok\n", e.Name())
			continue
		}

		logger.LogError(err, "index", e.Index, "input", e.Address)
		if firstErr == nil {
			firstErr = err
		}

		// 仅大小写错误时给出正确形式
		if apperrors.CanRelax(err) {
			expected := apperrors.ConvertError(err).Context[apperrors.ContextKeyExpected]
			fmt.Fprintf(a.out, "%s\tinvalid\t%s\texpected %v\n", e.Name(), apperrors.KindOf(err), expected)
			continue
		}
		fmt.Fprintf(a.out, "%s\tinvalid\t%s\n", e.Name(), apperrors.KindOf(err))
	}

	logger.LogOperation("validate", start, firstErr)
	return firstErr
}

// hexEncode 输出文本字节的十六进制
func (a *app) hexEncode(text string, prefix bool) {
	if prefix {
		fmt.Fprintln(a.out, hexutil.EncodeWithPrefix([]byte(text)))
		return
	}
	fmt.Fprintln(a.out, hexutil.Encode([]byte(text)))
}

// hexDecode 输出十六进制解码后的字节
func (a *app) hexDecode(ctx context.Context, text string) error {
	b, err := hexutil.Decode(text)
	if err != nil {
		a.logger.WithContext(ctx).LogError(err, "input", text)
		return err
	}
	fmt.Fprintln(a.out, b)
	return nil
}
