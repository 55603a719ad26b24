package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"welcomebot/messages"
)

// DefaultPath 默认配置文件路径，可用 WELCOMEBOT_CONFIG 覆盖
const DefaultPath = "config.yaml"

// Config 结构体，用于存储配置信息
type Config struct {
	Bot struct {
		Token       string        `mapstructure:"token"`
		APIURL      string        `mapstructure:"apiURL"` // 为空时使用 api.telegram.org
		PollTimeout time.Duration `mapstructure:"pollTimeout"`
		IPv6        bool          `mapstructure:"ipv6"`
		Verbose     bool          `mapstructure:"verbose"`
	} `mapstructure:"bot"`

	Messages messages.Set `mapstructure:"messages"`

	Log struct {
		Dir        string `mapstructure:"dir"`
		File       string `mapstructure:"file"`
		MaxSizeMB  int    `mapstructure:"maxSizeMB"`
		MaxBackups int    `mapstructure:"maxBackups"`
		Level      string `mapstructure:"level"`
	} `mapstructure:"log"`

	Sentry struct {
		DSN         string `mapstructure:"dsn"`
		Environment string `mapstructure:"environment"`
	} `mapstructure:"sentry"`
}

// Path 返回配置文件路径
func Path() string {
	if p := os.Getenv("WELCOMEBOT_CONFIG"); p != "" {
		return p
	}
	return DefaultPath
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("bot.apiURL", "")
	v.SetDefault("bot.pollTimeout", 10*time.Second)
	v.SetDefault("bot.ipv6", false)
	v.SetDefault("bot.verbose", false)

	v.SetDefault("messages.start", messages.Default.Start)
	v.SetDefault("messages.help", messages.Default.Help)
	v.SetDefault("messages.welcome", messages.Default.Welcome)

	v.SetDefault("log.dir", "logs")
	v.SetDefault("log.file", "bot.log")
	v.SetDefault("log.maxSizeMB", 1)
	v.SetDefault("log.maxBackups", 5)
	v.SetDefault("log.level", "info")

	v.SetDefault("sentry.dsn", "")
	v.SetDefault("sentry.environment", "production")
}

// Load 使用 viper 读取配置：默认值 < 配置文件 < 环境变量。
// 配置文件不存在时不报错，只使用默认值和环境变量。
func Load(path string) (*Config, error) {
	// .env 可选
	_ = godotenv.Load()

	// 初始化 viper
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// BOT_TOKEN 是必需的环境变量
	if err := v.BindEnv("bot.token", "BOT_TOKEN"); err != nil {
		return nil, fmt.Errorf("绑定环境变量失败: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			if !isNotExist(err) {
				return nil, fmt.Errorf("读取配置文件失败: %w", err)
			}
		}
	}

	// 解析配置到结构体
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}
	cfg.Bot.Token = strings.TrimSpace(cfg.Bot.Token)

	if err := cfg.Messages.Validate(); err != nil {
		return nil, fmt.Errorf("消息模板无效: %w", err)
	}

	return &cfg, nil
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
}
