package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/yeisme/monthvault/pkg/internal/types"
)

var (
	// dayPattern 提取行首 "May 7" 形式中的日期.
	dayPattern = regexp.MustCompile(`^\w+\s+(\d{1,2})`)
	// entryPrefix 匹配 "May 7 - " 或 "May 07:" 形式的前缀.
	entryPrefix = regexp.MustCompile(`^\w+\s+\d+\s*[-:]?\s*`)
)

// TodayQuery 返回 t 对应的三字母小写月份缩写与两位日期.
func TodayQuery(t time.Time) (month, day string) {
	return strings.ToLower(t.Month().String()[:3]), DayOf(t)
}

// DayOf 返回两位数的日期.
func DayOf(t time.Time) string {
	return fmt.Sprintf("%02d", t.Day())
}

// Search 加载月份目录，并在每个文件中查找属于该月 day 日的条目.
// 行首三个字母需与月份缩写相同（不区分大小写），日期允许带或不带前导零.
func (s *MonthService) Search(ctx context.Context, month, day string) *types.SearchResponse {
	month = s.Month(month)
	loaded := s.Load(ctx, month)

	resp := &types.SearchResponse{
		Success:     loaded.Success,
		Error:       loaded.Error,
		Month:       month,
		Day:         day,
		Results:     []types.SearchResult{},
		LoadedFiles: loaded.FileNames(),
	}

	abbr := firstRunes(month, 3)
	short := strings.TrimLeft(day, "0")

	for _, f := range loaded.Files {
		for i, raw := range f.Lines {
			line := strings.TrimSpace(raw)
			if line == "" || strings.ToLower(firstRunes(line, 3)) != abbr {
				continue
			}

			m := dayPattern.FindStringSubmatch(line)
			if m == nil || (m[1] != day && m[1] != short) {
				continue
			}

			resp.Results = append(resp.Results, types.SearchResult{
				File:        f.Name,
				Matches:     []string{strings.TrimSpace(entryPrefix.ReplaceAllString(line, ""))},
				LineNumber:  i + 1,
				LineContent: line,
			})
		}
	}

	return resp
}

func firstRunes(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[:i]
		}
		n--
	}

	return s
}
