package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cgi"
	"net/url"
	"strings"

	"github.com/yeisme/monthvault/pkg/internal/service"
	"github.com/yeisme/monthvault/pkg/internal/types"
)

// cgiHeader CGI 响应头，空行之后为 JSON 正文.
const cgiHeader = "Content-Type: application/json\n\n"

// EnvMap 将 os.Environ 形式的环境变量转为 map.
func EnvMap(environ []string) map[string]string {
	env := make(map[string]string, len(environ))

	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}

	return env
}

// MonthFromCGI 从 CGI 请求中读取 month 参数，支持 query string 与 POST 表单. 缺失时返回空串.
// 正文最多读取 CONTENT_LENGTH 字节，服务器不会关闭 stdin.
func MonthFromCGI(env map[string]string, body io.Reader) string {
	req, err := cgi.RequestFromMap(env)
	if err != nil {
		q, _ := url.ParseQuery(env["QUERY_STRING"])
		return q.Get("month")
	}

	req.Body = http.NoBody
	if body != nil && req.ContentLength > 0 {
		req.Body = io.NopCloser(io.LimitReader(body, req.ContentLength))
	}

	if err := req.ParseForm(); err != nil {
		return req.URL.Query().Get("month")
	}

	return req.Form.Get("month")
}

// ServeCGI 处理一次 CGI 请求并把响应写到 w. 加载失败同样写在 JSON 正文中.
func ServeCGI(ctx context.Context, svc *service.MonthService, env map[string]string, body io.Reader, w io.Writer) error {
	resp := svc.Load(ctx, MonthFromCGI(env, body))

	return WriteCGI(w, resp)
}

// WriteCGI 写出 CGI 响应: Content-Type 头、空行与紧凑的 JSON 正文.
func WriteCGI(w io.Writer, resp *types.MonthResponse) error {
	b, err := resp.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}

	if _, err := io.WriteString(w, cgiHeader); err != nil {
		return err
	}

	if _, err := w.Write(append(b, '\n')); err != nil {
		return err
	}

	return nil
}
