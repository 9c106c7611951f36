// Package service 实现月份目录的加载、按日查询与月份清单，不处理 HTTP 细节.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/spf13/afero"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/yeisme/monthvault/pkg/configs"
	ctxPkg "github.com/yeisme/monthvault/pkg/context"
	"github.com/yeisme/monthvault/pkg/internal/types"
	nlog "github.com/yeisme/monthvault/pkg/log"
	"github.com/yeisme/monthvault/pkg/metrics"
	"github.com/yeisme/monthvault/pkg/rule"
	"github.com/yeisme/monthvault/pkg/tracing"
)

// 响应体中的错误消息.
const (
	MsgBasePathNotFound = "Base data path not found: %s"
	MsgMonthNotFound    = "Month directory not found: %s"
	MsgPermission       = "Permission error reading files"
	MsgUnexpected       = "Unexpected error: %v"
)

var (
	errIsDir       = errors.New("is a directory")
	errInvalidUTF8 = errors.New("invalid utf-8 content")
)

// MonthService 读取 base path 下某个月份目录中的全部文件.
type MonthService struct {
	fs           afero.Fs
	basePath     string
	defaultMonth string
}

// NewMonthService 从 context 获取数据文件系统与配置.
func NewMonthService(c context.Context) *MonthService {
	dataFS := ctxPkg.GetDataFS(c)
	if dataFS == nil {
		nlog.Logger().Fatal().Msg("data filesystem not initialized")
	}

	return NewMonthServiceWithFS(dataFS, ctxPkg.GetDataConfig(c))
}

// NewMonthServiceWithFS 使用给定文件系统创建服务.
func NewMonthServiceWithFS(dataFS afero.Fs, cfg configs.DataConfig) *MonthService {
	def := cfg.DefaultMonth
	if def == "" {
		def = configs.DefaultMonth
	}

	return &MonthService{
		fs:           dataFS,
		basePath:     cfg.BasePath,
		defaultMonth: strings.ToLower(def),
	}
}

// BasePath 返回数据根目录.
func (s *MonthService) BasePath() string {
	return s.basePath
}

// Month 规范化 month 参数: 缺省取默认月份，并转为小写.
func (s *MonthService) Month(month string) string {
	if month == "" {
		return s.defaultMonth
	}

	return strings.ToLower(month)
}

// MonthDir 返回月份目录路径. 非法的月份名不做清理，原样拼接，仅用于错误消息.
func (s *MonthService) MonthDir(month string) string {
	if !rule.IsMonthName(month) {
		return s.basePath + string(filepath.Separator) + month
	}

	return filepath.Join(s.basePath, month)
}

// Load 读取月份目录下的全部文件. 所有失败都记录在响应体中.
//
// 权限错误会停止扫描，已读取的文件保留，Success 为 true 且 Error 为权限提示；
// 其他错误同样停止扫描，但 Success 为 false.
func (s *MonthService) Load(ctx context.Context, month string) *types.MonthResponse {
	ctx, span := tracing.StartSpan(ctx, "month.load")
	defer span.End()

	month = s.Month(month)
	resp := &types.MonthResponse{}
	outcome := s.load(ctx, month, resp)

	span.SetAttributes(
		attribute.String("month", month),
		attribute.String("outcome", outcome),
		attribute.Int("files", len(resp.Files)),
	)

	if outcome != metrics.OutcomeOK {
		span.SetStatus(codes.Error, resp.Error)
	}

	metrics.ObserveMonthLoad(metricsMonth(month, outcome), outcome, len(resp.Files))

	l := ctxPkg.WithTraceContext(ctx, *nlog.Logger())
	ev := l.Debug()

	if outcome != metrics.OutcomeOK {
		ev = l.Warn()
	}

	ev.Str("month", month).
		Str("outcome", outcome).
		Int("files", len(resp.Files)).
		Str("error", resp.Error).
		Msg("month loaded")

	return resp
}

func (s *MonthService) load(ctx context.Context, month string, resp *types.MonthResponse) string {
	if !s.exists(s.basePath) {
		resp.Error = fmt.Sprintf(MsgBasePathNotFound, s.basePath)

		return metrics.OutcomeBaseMiss
	}

	dir := s.MonthDir(month)
	if !rule.IsMonthName(month) || !s.exists(dir) {
		resp.Error = fmt.Sprintf(MsgMonthNotFound, dir)

		return metrics.OutcomeMonthMiss
	}

	// 月份路径是普通文件时与 glob "*" 一致，没有任何条目
	if !s.dirExists(dir) {
		resp.Success = true

		return metrics.OutcomeOK
	}

	// ReadDir 按名称排序返回
	entries, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		return fail(resp, err)
	}

	for _, fi := range entries {
		// 与 glob "*" 一致，跳过隐藏文件
		if strings.HasPrefix(fi.Name(), ".") {
			continue
		}

		if err := ctx.Err(); err != nil {
			return fail(resp, err)
		}

		lines, err := s.readLines(filepath.Join(dir, fi.Name()), fi)
		if err != nil {
			return fail(resp, err)
		}

		resp.AddFile(fi.Name(), lines)
	}

	resp.Success = true

	return metrics.OutcomeOK
}

// readLines 读取单个文件并按行切分，文件句柄在返回前关闭.
func (s *MonthService) readLines(name string, fi fs.FileInfo) ([]string, error) {
	if fi.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: errIsDir}
	}

	f, err := s.fs.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	if !utf8.Valid(data) {
		return nil, &fs.PathError{Op: "decode", Path: name, Err: errInvalidUTF8}
	}

	return SplitLines(string(data)), nil
}

// exists 判断路径（文件或目录）是否存在，stat 失败视为不存在.
func (s *MonthService) exists(path string) bool {
	ok, err := afero.Exists(s.fs, path)

	return err == nil && ok
}

// dirExists 判断目录是否存在，stat 失败视为不存在.
func (s *MonthService) dirExists(path string) bool {
	ok, err := afero.DirExists(s.fs, path)

	return err == nil && ok
}

// fail 按错误类型填充响应并返回结果标签.
func fail(resp *types.MonthResponse, err error) string {
	if errors.Is(err, fs.ErrPermission) {
		resp.Error = MsgPermission
		resp.Success = true

		return metrics.OutcomePermission
	}

	resp.Error = fmt.Sprintf(MsgUnexpected, err)
	resp.Success = false

	return metrics.OutcomeUnexpected
}

// metricsMonth 避免任意 month 参数撑爆指标标签.
func metricsMonth(month, outcome string) string {
	if outcome == metrics.OutcomeMonthMiss || outcome == metrics.OutcomeBaseMiss {
		return "unknown"
	}

	return month
}
