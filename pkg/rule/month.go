package rule

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// MonthNameTag 月份目录名规则：只能是单层目录名.
const MonthNameTag = "month_name"

// IsMonthName 判断 s 能否作为 base path 下的单层子目录名.
func IsMonthName(s string) bool {
	if s == "" || s == "." || s == ".." {
		return false
	}

	return !strings.ContainsAny(s, "/\\\x00")
}

func validateMonthName(fl validator.FieldLevel) bool {
	return IsMonthName(fl.Field().String())
}
