// Package batch reads address lists for the command line tool.
//
// The input is a JSON array whose items are either address strings or
// objects of the form {"address": "0x...", "label": "optional"}.
package batch

import (
	"fmt"
	"io"
	"os"

	apperrors "github.com/mowind/eip55-go/internal/errors"
	"github.com/valyala/fastjson"
)

// Entry 一条待处理的地址
type Entry struct {
	Index   int
	Label   string
	Address string
}

// Name 返回用于输出的标识：优先使用 label
func (e Entry) Name() string {
	if e.Label != "" {
		return e.Label
	}
	return e.Address
}

var defaultPool fastjson.ParserPool

// Parse 解析 JSON 批量输入
func Parse(data []byte) ([]Entry, error) {
	p := defaultPool.Get()
	defer defaultPool.Put(p)

	v, err := p.ParseBytes(data)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrorTypeInput, apperrors.CodeInput, "Invalid batch input")
	}

	items, err := v.Array()
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrorTypeInput, apperrors.CodeInput, "Batch input must be a JSON array")
	}

	entries := make([]Entry, 0, len(items))
	for i, item := range items {
		entry, err := parseItem(i, item)
		if err != nil {
			return nil, apperrors.Wrapf(err, apperrors.ErrorTypeInput, apperrors.CodeInput, "Invalid batch item %d", i)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func parseItem(i int, item *fastjson.Value) (Entry, error) {
	switch item.Type() {
	case fastjson.TypeString:
		// 值在 Parser 归还后失效，必须复制
		return Entry{Index: i, Address: string(item.GetStringBytes())}, nil
	case fastjson.TypeObject:
		if !item.Exists("address") {
			return Entry{}, fmt.Errorf("missing \"address\" field")
		}
		addr, err := item.Get("address").StringBytes()
		if err != nil {
			return Entry{}, fmt.Errorf("\"address\" must be a string: %w", err)
		}
		return Entry{
			Index:   i,
			Label:   string(item.GetStringBytes("label")),
			Address: string(addr),
		}, nil
	default:
		return Entry{}, fmt.Errorf("unsupported item type %s", item.Type())
	}
}

// Read 从 reader 读取并解析
func Read(r io.Reader) ([]Entry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrorTypeInput, apperrors.CodeInput, "Failed to read batch input")
	}
	return Parse(data)
}

// Load 读取文件；path 为 "-" 时读取 stdin
func Load(path string, stdin io.Reader) ([]Entry, error) {
	if path == "-" {
		return Read(stdin)
	}

	// #nosec G304 - 路径来自命令行参数
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrorTypeInput, apperrors.CodeInput, "Failed to open batch input")
	}
	defer f.Close()

	return Read(f)
}

// FromArgs 把命令行参数转换为条目
func FromArgs(args []string) []Entry {
	entries := make([]Entry, len(args))
	for i, a := range args {
		entries[i] = Entry{Index: i, Address: a}
	}
	return entries
}
