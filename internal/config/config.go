// Package config loads the YAML configuration shared by the HTTP service and
// the MQTT bridge.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
	Monitor MonitorConfig `yaml:"monitor"`
	MQTT    MQTTConfig    `yaml:"mqtt"`
	Redis   RedisConfig   `yaml:"redis"`
	Dedup   DedupConfig   `yaml:"dedup"`
}

type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// Addr is the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type LogConfig struct {
	Level    string `yaml:"level"`
	Format   string `yaml:"format"`
	Output   string `yaml:"output"`
	FilePath string `yaml:"file_path"`
}

type MonitorConfig struct {
	Enabled     bool `yaml:"enabled"`
	MetricsPort int  `yaml:"metrics_port"`
}

type MQTTConfig struct {
	Broker         string        `yaml:"broker"`
	ClientID       string        `yaml:"client_id"`
	Username       string        `yaml:"username"`
	Password       string        `yaml:"password"`
	UplinkTopic    string        `yaml:"uplink_topic"`
	ResultPrefix   string        `yaml:"result_prefix"`
	QoS            byte          `yaml:"qos"`
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
	MaxRetries     int           `yaml:"max_retries"`
}

type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	PoolSize int    `yaml:"pool_size"`
	Channel  string `yaml:"channel"`
}

type DedupConfig struct {
	TTL        time.Duration `yaml:"ttl"`
	MaxEntries int           `yaml:"max_entries"`
}

// Load reads path on top of Default, then applies environment overrides.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			Output: "stdout",
		},
		Monitor: MonitorConfig{
			Enabled:     true,
			MetricsPort: 9090,
		},
		MQTT: MQTTConfig{
			Broker:         "tcp://localhost:1883",
			ClientID:       "bob-decoder",
			UplinkTopic:    "bob/+/uplink",
			ResultPrefix:   "bob/decoded",
			QoS:            1,
			ConnectTimeout: 10 * time.Second,
			MaxRetries:     5,
		},
		Redis: RedisConfig{
			Addr:     "localhost:6379",
			PoolSize: 10,
			Channel:  "bob_decoded",
		},
		Dedup: DedupConfig{
			TTL:        10 * time.Minute,
			MaxEntries: 20000,
		},
	}
}

// ApplyEnv overrides selected settings from BOB_* variables.
func (c *Config) ApplyEnv() {
	c.Server.Port = envInt("BOB_HTTP_PORT", c.Server.Port)
	c.Log.Level = envStr("BOB_LOG_LEVEL", c.Log.Level)
	c.MQTT.Broker = envStr("BOB_MQTT_BROKER", c.MQTT.Broker)
	if addr := envStr("BOB_REDIS_ADDR", ""); addr != "" {
		c.Redis.Addr = addr
		c.Redis.Enabled = true
	}
}

// Validate rejects settings no component can run with.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.MQTT.QoS > 2 {
		return fmt.Errorf("mqtt.qos %d out of range", c.MQTT.QoS)
	}
	if c.Monitor.Enabled && (c.Monitor.MetricsPort <= 0 || c.Monitor.MetricsPort > 65535) {
		return fmt.Errorf("monitor.metrics_port %d out of range", c.Monitor.MetricsPort)
	}
	return nil
}

func envStr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
