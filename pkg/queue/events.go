package queue

import "github.com/ThreeDotsLabs/watermill/message"

// PublishMonthLoaded 发布 mv.month.loaded 事件.
func PublishMonthLoaded(pub message.Publisher, payload MonthLoadedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicMonthLoaded, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicMonthLoaded, msg)
}

// ParseMonthLoaded 将 Watermill 消息解析为 MonthLoadedPayload 信封.
func ParseMonthLoaded(msg *message.Message) (Message[MonthLoadedPayload], error) {
	return ParseWatermillMessage[MonthLoadedPayload](msg)
}

// PublishMonthsInventoried 发布 mv.months.inventoried 事件.
func PublishMonthsInventoried(pub message.Publisher, payload MonthsInventoriedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicMonthsInventoried, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicMonthsInventoried, msg)
}

// ParseMonthsInventoried 将 Watermill 消息解析为 MonthsInventoriedPayload 信封.
func ParseMonthsInventoried(msg *message.Message) (Message[MonthsInventoriedPayload], error) {
	return ParseWatermillMessage[MonthsInventoriedPayload](msg)
}
