package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix 环境变量前缀，例如 YADISK_YANDEX_TOKEN 覆盖 yandex.token
const EnvPrefix = "YADISK"

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Yandex YandexConfig `mapstructure:"yandex"`
	Cache  CacheConfig  `mapstructure:"cache"`
	Log    LogConfig    `mapstructure:"log"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // debug, release, test
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxBodySize     string        `mapstructure:"max_body_size"` // 例如 1MB、512KB
}

// BodyLimit 请求体上限(字节)，未配置或无法解析时为0
func (s ServerConfig) BodyLimit() int64 {
	if s.MaxBodySize == "" {
		return 0
	}
	n, err := humanize.ParseBytes(s.MaxBodySize)
	if err != nil {
		return 0
	}
	return int64(n)
}

// Address 监听地址
func (s ServerConfig) Address() string {
	return s.Host + ":" + s.Port
}

type YandexConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	Token     string        `mapstructure:"token"`
	QPS       int           `mapstructure:"qps"`     // 出站请求每秒上限，0不限制
	Timeout   time.Duration `mapstructure:"timeout"` // 单次出站请求超时
	Limit     int           `mapstructure:"limit"`   // 列表条数，0使用上游默认值
	UserAgent string        `mapstructure:"user_agent"`
}

type CacheConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	TTL     time.Duration `mapstructure:"ttl"`
}

type LogConfig struct {
	Level     string `mapstructure:"level"`
	Output    string `mapstructure:"output"`
	Format    string `mapstructure:"format"`
	FilePath  string `mapstructure:"file_path"`
	Colorize  bool   `mapstructure:"colorize"`
	AddSource bool   `mapstructure:"add_source"`
}

// SetDefaults 写入默认值
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Minute)
	v.SetDefault("server.shutdown_timeout", 15*time.Second)
	v.SetDefault("server.max_body_size", "1MB")

	v.SetDefault("yandex.base_url", "https://cloud-api.yandex.net")
	v.SetDefault("yandex.token", "")
	v.SetDefault("yandex.qps", 10)
	v.SetDefault("yandex.timeout", 60*time.Second)
	v.SetDefault("yandex.limit", 0)
	v.SetDefault("yandex.user_agent", "yadisk-relay/1.0")

	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.ttl", 300*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.output", "console")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file_path", "./logs/yadisk-relay.log")
	v.SetDefault("log.colorize", true)
	v.SetDefault("log.add_source", false)
}

// NewViper 创建已配置搜索路径、默认值和环境变量覆盖的viper实例
// configFile非空时只读取该文件
func NewViper(configFile string) *viper.Viper {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)
	return v
}

// Load 读取配置文件（可缺省）并解析
func Load(v *viper.Viper) (*Config, error) {
	// .env 只补充尚未设置的环境变量
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadConfig 使用默认搜索路径加载配置
func LoadConfig() (*Config, error) {
	return Load(NewViper(""))
}

// Validate 校验配置
func (c *Config) Validate() error {
	if c.Yandex.BaseURL == "" {
		return errors.New("yandex.base_url is required")
	}
	if u, err := url.Parse(c.Yandex.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("yandex.base_url is not a valid absolute url: %q", c.Yandex.BaseURL)
	}
	if c.Yandex.QPS < 0 {
		return errors.New("yandex.qps must not be negative")
	}
	if c.Yandex.Limit < 0 {
		return errors.New("yandex.limit must not be negative")
	}
	if c.Yandex.Timeout <= 0 {
		return errors.New("yandex.timeout must be positive")
	}
	if c.Cache.TTL < 0 {
		return errors.New("cache.ttl must not be negative")
	}
	if c.Server.MaxBodySize != "" {
		if _, err := humanize.ParseBytes(c.Server.MaxBodySize); err != nil {
			return fmt.Errorf("server.max_body_size is invalid: %q", c.Server.MaxBodySize)
		}
	}
	port, err := strconv.Atoi(c.Server.Port)
	if err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("server.port is invalid: %q", c.Server.Port)
	}
	return nil
}
