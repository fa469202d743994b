package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Cfg 全局可访问的配置实例
var Cfg *Config

// LoadConfig 从文件加载配置并填充到 Cfg
func LoadConfig() error {
	return LoadConfigFrom("./configs")
}

// LoadConfigFrom 从指定目录读取 config.yaml
func LoadConfigFrom(path string) error {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.SetEnvPrefix("MOOD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("config file not found: %w", err)
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	Cfg = &cfg

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("database.max_idle", 10)
	v.SetDefault("database.max_open", 50)
	v.SetDefault("database.max_lifetime", 60)
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("logstash.index", "logstash-moodmastery")
	v.SetDefault("journal.week_start", "monday")
	v.SetDefault("journal.graph_days", 14)
	v.SetDefault("journal.weekly_days", 7)
	v.SetDefault("journal.monthly_days", 30)
	v.SetDefault("journal.max_range_days", 366)
	v.SetDefault("journal.timezone", "Local")
	v.SetDefault("notification.hour", 20)
	v.SetDefault("notification.minute", 0)
}

// WeekStartDay 解析 week_start，无法识别时使用周一
func (c JournalConfig) WeekStartDay() time.Weekday {
	name := strings.ToLower(strings.TrimSpace(c.WeekStart))
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.ToLower(d.String()) == name {
			return d
		}
	}
	return time.Monday
}

// Location 解析时区，用于确定“今天”
func (c JournalConfig) Location() *time.Location {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}
