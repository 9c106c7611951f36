// Package queue 定义消息主题常量，供发布/订阅使用.
package queue

// 主题命名规范：mv.<域>.<动作>，尽量稳定且向后兼容.
const (
	// TopicMonthLoaded 一次月份加载结束（无论成功与否）.
	TopicMonthLoaded = "mv.month.loaded"
	// TopicMonthsInventoried 定时任务完成一次月份目录盘点.
	TopicMonthsInventoried = "mv.months.inventoried"
)

// MonthTopics 月份相关主题集合.
var MonthTopics = []string{TopicMonthLoaded, TopicMonthsInventoried}
