package configs

import (
	"github.com/spf13/viper"
)

// EventsType 事件总线类型.
type EventsType string

const (
	EventsTypeGoChannel EventsType = "gochannel"
	EventsTypeNATS      EventsType = "nats"

	DefaultEventsURL           = "nats://localhost:4222"
	DefaultEventsClientID      = "monthvault-app"
	DefaultEventsMaxReconnects = 5  // 默认最大重连次数.
	DefaultEventsReconnectWait = 5  // 默认重连等待时间（秒）.
	DefaultEventsPingInterval  = 20 // 默认ping间隔 (秒)
	DefaultEventsBufferSize    = 32768
	DefaultEventsChannelBuffer = 64
)

// EventsConfig 月份加载事件配置.
type EventsConfig struct {
	Enabled bool       `mapstructure:"enabled"`
	Type    EventsType `mapstructure:"type"    rule:"oneof=gochannel nats"`
	// Audit 为 true 时在进程内订阅事件并写审计日志.
	Audit     bool                  `mapstructure:"audit"`
	GoChannel EventsGoChannelConfig `mapstructure:"gochannel"`
	NATS      EventsNATSConfig      `mapstructure:"nats"`
}

// EventsGoChannelConfig 进程内事件总线配置.
type EventsGoChannelConfig struct {
	OutputBuffer int64 `mapstructure:"output_buffer" rule:"min=0"`
}

// EventsNATSConfig NATS 事件总线配置.
type EventsNATSConfig struct {
	URL              string   `mapstructure:"url"`
	ClusterURLs      []string `mapstructure:"cluster_urls"`
	ClientID         string   `mapstructure:"client_id"`
	User             string   `mapstructure:"user"`
	Password         string   `mapstructure:"password"`
	JWT              string   `mapstructure:"jwt"`
	NKey             string   `mapstructure:"nkey"`
	MaxReconnects    int      `mapstructure:"max_reconnects"    rule:"min=0,max=100"`
	ReconnectWait    int      `mapstructure:"reconnect_wait"    rule:"min=1,max=300"`
	PingInterval     int      `mapstructure:"ping_interval"     rule:"min=1,max=300"`
	BufferSize       int      `mapstructure:"buffer_size"       rule:"min=1024,max=1048576"`
	JetStreamEnabled bool     `mapstructure:"jetstream_enabled"`
	AutoProvision    bool     `mapstructure:"auto_provision"`
	DurablePrefix    string   `mapstructure:"durable_prefix"`
	SubjectPrefix    string   `mapstructure:"subject_prefix"`
}

// GetEventsType 返回当前配置的事件总线类型.
func (c *EventsConfig) GetEventsType() EventsType {
	return c.Type
}

func (c *EventsConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("events.enabled", false)
	v.SetDefault("events.type", EventsTypeGoChannel)
	v.SetDefault("events.audit", true)

	v.SetDefault("events.gochannel.output_buffer", DefaultEventsChannelBuffer)

	v.SetDefault("events.nats.url", DefaultEventsURL)
	v.SetDefault("events.nats.cluster_urls", []string{})
	v.SetDefault("events.nats.client_id", DefaultEventsClientID)
	v.SetDefault("events.nats.user", "")
	v.SetDefault("events.nats.password", "")
	v.SetDefault("events.nats.jwt", "")
	v.SetDefault("events.nats.nkey", "")
	v.SetDefault("events.nats.max_reconnects", DefaultEventsMaxReconnects)
	v.SetDefault("events.nats.reconnect_wait", DefaultEventsReconnectWait)
	v.SetDefault("events.nats.ping_interval", DefaultEventsPingInterval)
	v.SetDefault("events.nats.buffer_size", DefaultEventsBufferSize)
	v.SetDefault("events.nats.jetstream_enabled", false)
	v.SetDefault("events.nats.auto_provision", true)
	v.SetDefault("events.nats.durable_prefix", "monthvault-durable")
	v.SetDefault("events.nats.subject_prefix", "")
}
