package handle

import "time"

// SetNow 替换当前时间，返回恢复函数.
func SetNow(t time.Time) func() {
	prev := now
	now = func() time.Time { return t }

	return func() { now = prev }
}
