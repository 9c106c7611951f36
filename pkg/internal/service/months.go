package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/yeisme/monthvault/pkg/tracing"
)

// ErrBasePathNotFound 数据根目录不存在.
var ErrBasePathNotFound = errors.New("base data path not found")

// AvailableMonths 返回 base path 下的月份目录名，按名称排序.
func (s *MonthService) AvailableMonths(ctx context.Context) ([]string, error) {
	_, span := tracing.StartSpan(ctx, "month.inventory")
	defer span.End()

	if !s.dirExists(s.basePath) {
		return nil, fmt.Errorf("%w: %s", ErrBasePathNotFound, s.basePath)
	}

	entries, err := afero.ReadDir(s.fs, s.basePath)
	if err != nil {
		return nil, fmt.Errorf("read base path: %w", err)
	}

	months := make([]string, 0, len(entries))

	for _, fi := range entries {
		if !fi.IsDir() || strings.HasPrefix(fi.Name(), ".") {
			continue
		}

		months = append(months, fi.Name())
	}

	return months, nil
}
