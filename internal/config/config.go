package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultPort          = 5000
	defaultName          = "minecloud-ai"
	defaultTitle         = "MineCloud AI"
	DefaultSessionSecret = "dev-secret-key"
	defaultLogLevel      = "info"
)

// Config 应用配置
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Session SessionConfig `yaml:"session"`
	Chat    ChatConfig    `yaml:"chat"`
	Redis   RedisConfig   `yaml:"redis"`
	Log     LogConfig     `yaml:"log"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port  int    `yaml:"port"`
	Name  string `yaml:"name"`
	Title string `yaml:"title"` // 首页标题
}

// SessionConfig 会话密钥配置（仅供页面层使用，与回复逻辑无关）
type SessionConfig struct {
	Secret string `yaml:"secret"`
}

// ChatConfig 聊天接口配置
type ChatConfig struct {
	ResponseDelay time.Duration `yaml:"responseDelay"` // 模拟处理延迟，默认不延迟
	WebSocket     bool          `yaml:"websocket"`     // 是否开放 /ws
}

// RedisConfig Redis 配置，未启用时统计数据保存在内存中
type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Addr 返回 Redis 地址
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LoadConfig 加载配置文件，文件不存在时使用默认配置
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("解析配置文件失败: %w", err)
		}
	case os.IsNotExist(err):
		// 使用默认配置
	default:
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyEnv 环境变量覆盖配置文件
func (c *Config) applyEnv() error {
	if secret := strings.TrimSpace(os.Getenv("SESSION_SECRET")); secret != "" {
		c.Session.Secret = secret
	}

	if level := strings.TrimSpace(os.Getenv("LOG_LEVEL")); level != "" {
		c.Log.Level = level
	}

	if raw := strings.TrimSpace(os.Getenv("PORT")); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("无效的 PORT %q: %w", raw, err)
		}
		c.Server.Port = port
	}

	return nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = defaultPort
	}
	if c.Server.Name == "" {
		c.Server.Name = defaultName
	}
	if c.Server.Title == "" {
		c.Server.Title = defaultTitle
	}
	if c.Session.Secret == "" {
		c.Session.Secret = DefaultSessionSecret
	}
	if c.Log.Level == "" {
		c.Log.Level = defaultLogLevel
	}
	if c.Redis.Enabled {
		if c.Redis.Host == "" {
			c.Redis.Host = "localhost"
		}
		if c.Redis.Port == 0 {
			c.Redis.Port = 6379
		}
	}
}

// Validate 校验配置
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("无效的端口: %d", c.Server.Port)
	}
	if c.Chat.ResponseDelay < 0 {
		return fmt.Errorf("responseDelay 不能为负数: %s", c.Chat.ResponseDelay)
	}
	return nil
}
