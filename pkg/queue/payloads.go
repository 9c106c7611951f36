package queue

import "time"

// EventHeader 定义所有事件的通用头部元数据.
type EventHeader struct {
	// Topic 冗余记录消息主题，便于离线处理或转储后定位来源主题.
	Topic string `json:"topic"`
	// TraceID 请求 ID 或分布式追踪 ID.
	TraceID string `json:"trace_id,omitempty"`
	// Producer 生产者服务名或节点标识.
	Producer string `json:"producer,omitempty"`
	// OccurredAt 事件发生时间（UTC，RFC3339）.
	OccurredAt time.Time `json:"occurred_at"`
	// Version 事件负载版本.
	Version string `json:"version,omitempty"`
}

// Message 是统一的消息封装，Header + Payload.
type Message[T any] struct {
	Header  EventHeader `json:"header"`
	Payload T           `json:"payload"`
}

// MonthLoadedPayload 一次月份加载的结果摘要，不含文件内容.
type MonthLoadedPayload struct {
	Month   string   `json:"month"`
	Success bool     `json:"success"`
	Error   string   `json:"error,omitempty"`
	Files   []string `json:"files"`
	// Source 触发来源：http、cgi.
	Source string `json:"source,omitempty"`
}

// MonthsInventoriedPayload 月份目录盘点结果.
type MonthsInventoriedPayload struct {
	Months []string `json:"months"`
	Error  string   `json:"error,omitempty"`
}
