// Package mq 提供基于 Watermill 库的统一事件总线操作接口.
// 支持发布/订阅模式，并通过工厂模式抽象不同的实现.
//
// 支持的类型：
//   - gochannel（进程内，默认）
//   - NATS（可选 JetStream）
//
// 使用示例：
//
//	client, err := mq.New(ctx, &cfg.Events, metrics.GetRegistry())
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	err = queue.PublishMonthLoaded(client.Publisher(), payload)
//
//	err = client.Consume(ctx, queue.TopicMonthLoaded, func(msg *message.Message) error {
//		env, err := queue.ParseMonthLoaded(msg)
//		...
//	})
package mq

import (
	"context"
	"errors"
	"fmt"
	"slices"

	watermill "github.com/ThreeDotsLabs/watermill"
	wmetrics "github.com/ThreeDotsLabs/watermill/components/metrics"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/yeisme/monthvault/pkg/configs"
	nlog "github.com/yeisme/monthvault/pkg/log"
)

// Factory 定义创建 Publisher + Subscriber 的工厂函数.
type Factory func(ctx context.Context, cfg *configs.EventsConfig, logger watermill.LoggerAdapter) (message.Publisher, message.Subscriber, error)

var (
	factories = map[configs.EventsType]Factory{}
)

// RegisterFactory 注册指定 EventsType 的工厂.
func RegisterFactory(t configs.EventsType, f Factory) {
	factories[t] = f
}

// Client 封装 watermill Publisher 与 Subscriber.
type Client struct {
	publisher  message.Publisher
	subscriber message.Subscriber
	kind       configs.EventsType
}

// New 按配置创建事件客户端. reg 不为 nil 时为 Publisher 与 Subscriber 加上 Prometheus 指标.
func New(ctx context.Context, cfg *configs.EventsConfig, reg prometheus.Registerer) (*Client, error) {
	factory, ok := factories[cfg.Type]
	if !ok {
		return nil, fmt.Errorf("unsupported events type: %s", cfg.Type)
	}

	logger := &zerologAdapter{l: nlog.Logger()}

	pub, sub, err := factory(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("init events (%s): %w", cfg.Type, err)
	}

	if reg != nil {
		builder := wmetrics.NewPrometheusMetricsBuilder(reg, "monthvault", "events")

		if pub, err = builder.DecoratePublisher(pub); err != nil {
			return nil, fmt.Errorf("decorate publisher with metrics: %w", err)
		}

		if sub, err = builder.DecorateSubscriber(sub); err != nil {
			return nil, fmt.Errorf("decorate subscriber with metrics: %w", err)
		}
	}

	return &Client{publisher: pub, subscriber: sub, kind: cfg.Type}, nil
}

// Type 返回事件总线类型.
func (c *Client) Type() configs.EventsType {
	return c.kind
}

// Publisher 返回底层 Publisher.
func (c *Client) Publisher() message.Publisher {
	return c.publisher
}

// Publish 便捷发布.
func (c *Client) Publish(ctx context.Context, topic string, msgs ...*message.Message) error {
	if c == nil || c.publisher == nil {
		return fmt.Errorf("events publisher not initialized")
	}

	for _, m := range msgs {
		m.SetContext(ctx)
	}

	return c.publisher.Publish(topic, msgs...)
}

// Subscribe 便捷订阅.
func (c *Client) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	if c == nil || c.subscriber == nil {
		return nil, fmt.Errorf("events subscriber not initialized")
	}

	return c.subscriber.Subscribe(ctx, topic)
}

// Consume 订阅 topic 并逐条交给 handler，handler 出错时 Nack，否则 Ack.
// 阻塞直到 ctx 结束或订阅通道关闭.
func (c *Client) Consume(ctx context.Context, topic string, handler message.NoPublishHandlerFunc) error {
	ch, err := c.Subscribe(ctx, topic)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}

			if err := handler(msg); err != nil {
				msg.Nack()
				continue
			}

			msg.Ack()
		}
	}
}

// Close 关闭资源.
func (c *Client) Close() error {
	if c == nil {
		return nil
	}

	var errs []error

	if c.publisher != nil {
		errs = append(errs, c.publisher.Close())
	}

	// gochannel 的 Publisher 与 Subscriber 是同一实例，Close 可重复调用
	if c.subscriber != nil {
		errs = append(errs, c.subscriber.Close())
	}

	return errors.Join(errs...)
}

// GetRegisteredTypes 返回已注册的事件总线类型，按名称排序.
func GetRegisteredTypes() []configs.EventsType {
	types := make([]configs.EventsType, 0, len(factories))
	for t := range factories {
		types = append(types, t)
	}

	slices.Sort(types)

	return types
}
