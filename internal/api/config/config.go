package config

// Config 配置主体
type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	DB           DBConfig           `mapstructure:"database"`
	Redis        RedisConfig        `mapstructure:"redis"`
	Logstash     LogstashConfig     `mapstructure:"logstash"`
	Journal      JournalConfig      `mapstructure:"journal"`
	Notification NotificationConfig `mapstructure:"notification"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port         int      `mapstructure:"port"`
	AllowOrigins []string `mapstructure:"allow_origins"` // 为空时不限制来源
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
}

// RedisConfig Redis 配置，Addr 为空时不启用 Redis
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// LogstashConfig 远程日志
type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

// JournalConfig 日记统计相关配置
type JournalConfig struct {
	WeekStart   string `mapstructure:"week_start"`
	GraphDays   int    `mapstructure:"graph_days"`
	WeeklyDays  int    `mapstructure:"weekly_days"`
	MonthlyDays int    `mapstructure:"monthly_days"`
	MaxRange    int    `mapstructure:"max_range_days"`
	Timezone    string `mapstructure:"timezone"`
}

// NotificationConfig 每日提醒
type NotificationConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Hour    int  `mapstructure:"hour"`
	Minute  int  `mapstructure:"minute"`
	Desktop bool `mapstructure:"desktop"` // 同时弹出系统桌面通知
}
