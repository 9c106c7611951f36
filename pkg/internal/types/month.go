// Package types 定义 HTTP 请求与响应结构体.
package types

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/bytedance/sonic"
)

// 响应体中的保留键，文件名与之相同时不会覆盖状态字段.
const (
	KeySuccess = "success"
	KeyError   = "error"
)

// MonthRequest 月份加载请求，month 缺省时使用配置的默认月份.
type MonthRequest struct {
	Month string `form:"month" json:"month" rule:"omitempty,max=64"`
}

// MonthFile 月份目录下的单个文件，Lines 不含行结束符.
type MonthFile struct {
	Name  string
	Lines []string
}

// MonthResponse 月份加载响应. 序列化为扁平对象:
//
//	{"success": true, "error": "...", "mermay.txt": ["May 1 - Mermaid", ...], ...}
type MonthResponse struct {
	Success bool
	Error   string
	Files   []MonthFile // 按读取顺序
}

// AddFile 追加一个已读取的文件.
func (r *MonthResponse) AddFile(name string, lines []string) {
	if lines == nil {
		lines = []string{}
	}

	r.Files = append(r.Files, MonthFile{Name: name, Lines: lines})
}

// Lines 按文件名查找内容.
func (r *MonthResponse) Lines(name string) ([]string, bool) {
	for _, f := range r.Files {
		if f.Name == name {
			return f.Lines, true
		}
	}

	return nil, false
}

// FileNames 返回已读取的文件名，顺序与读取顺序一致.
func (r *MonthResponse) FileNames() []string {
	names := make([]string, 0, len(r.Files))
	for _, f := range r.Files {
		names = append(names, f.Name)
	}

	return names
}

// MarshalJSON 输出紧凑的扁平 JSON 对象.
func (r MonthResponse) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(`{"success":`)

	if r.Success {
		buf.WriteString("true")
	} else {
		buf.WriteString("false")
	}

	if r.Error != "" {
		msg, err := sonic.Marshal(r.Error)
		if err != nil {
			return nil, err
		}

		buf.WriteString(`,"error":`)
		buf.Write(msg)
	}

	for _, f := range r.Files {
		if f.Name == KeySuccess || f.Name == KeyError {
			continue
		}

		name, err := sonic.Marshal(f.Name)
		if err != nil {
			return nil, err
		}

		lines := f.Lines
		if lines == nil {
			lines = []string{}
		}

		body, err := sonic.Marshal(lines)
		if err != nil {
			return nil, fmt.Errorf("marshal %s: %w", f.Name, err)
		}

		buf.WriteByte(',')
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(body)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON 解析扁平 JSON 对象，文件按名称排序.
func (r *MonthResponse) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return err
	}

	*r = MonthResponse{}

	names := make([]string, 0, len(raw))

	for k, v := range raw {
		switch k {
		case KeySuccess:
			b, ok := v.(bool)
			if !ok {
				return fmt.Errorf("success: expected bool, got %T", v)
			}

			r.Success = b
		case KeyError:
			s, ok := v.(string)
			if !ok {
				return fmt.Errorf("error: expected string, got %T", v)
			}

			r.Error = s
		default:
			names = append(names, k)
		}
	}

	sort.Strings(names)

	for _, name := range names {
		items, ok := raw[name].([]any)
		if !ok {
			return fmt.Errorf("%s: expected array, got %T", name, raw[name])
		}

		lines := make([]string, 0, len(items))

		for i, item := range items {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("%s[%d]: expected string, got %T", name, i, item)
			}

			lines = append(lines, s)
		}

		r.AddFile(name, lines)
	}

	return nil
}
