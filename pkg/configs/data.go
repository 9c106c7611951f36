package configs

import (
	"github.com/spf13/viper"
)

const (
	DefaultDataBasePath = "data" // 月份目录所在的根目录
	DefaultMonth        = "may"  // 未指定 month 参数时使用的月份
)

type (
	// DataConfig 月份数据目录配置. 每个月份对应 BasePath 下的一个子目录.
	DataConfig struct {
		BasePath     string `mapstructure:"base_path"     rule:"required"`
		DefaultMonth string `mapstructure:"default_month" rule:"required,month_name"`
	}
)

func (d *DataConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("data.base_path", DefaultDataBasePath)
	v.SetDefault("data.default_month", DefaultMonth)
}
