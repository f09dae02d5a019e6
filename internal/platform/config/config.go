package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config はアプリケーション全体の設定を表現します。
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig は gRPC サーバーに関する設定です。
type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr"`
}

// DatabaseConfig は PostgreSQL 接続に関する設定です。
type DatabaseConfig struct {
	Host                 string        `yaml:"host"`
	Port                 int           `yaml:"port"`
	User                 string        `yaml:"user"`
	Password             string        `yaml:"password"`
	Name                 string        `yaml:"name"`
	SSLMode              string        `yaml:"ssl_mode"`
	ApplicationName      string        `yaml:"application_name"`
	MaxOpenConns         int           `yaml:"max_open_conns"`
	MaxIdleConns         int           `yaml:"max_idle_conns"`
	ConnMaxLifetime      time.Duration `yaml:"-"`
	ConnMaxIdleTime      time.Duration `yaml:"-"`
	HealthCheckPeriod    time.Duration `yaml:"-"`
	ConnMaxLifetimeRaw   string        `yaml:"conn_max_lifetime"`
	ConnMaxIdleTimeRaw   string        `yaml:"conn_max_idle_time"`
	HealthCheckPeriodRaw string        `yaml:"health_check_period"`
}

// RedisConfig はワークフローイベント配信先の Redis 設定です。URL が空の場合は配信しません。
type RedisConfig struct {
	URL           string `yaml:"url"`
	ChannelPrefix string `yaml:"channel_prefix"`
}

// Enabled は Redis 接続が設定されているかを返します。
func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != ""
}

// LogConfig はロガーの設定です。
type LogConfig struct {
	Level  string     `yaml:"level"`
	Format string     `yaml:"format"`
	level  slog.Level `yaml:"-"`
}

// SlogLevel は正規化済みのログレベルを返します。
func (l LogConfig) SlogLevel() slog.Level {
	return l.level
}

const (
	LogFormatText = "text"
	LogFormatJSON = "json"

	defaultChannelPrefix = "staffing."
)

// Load は指定されたパスから設定ファイルを読み込みます。
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := cfg.validateAndNormalize(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validateAndNormalize() error {
	if c.Server.ListenAddr == "" {
		return fmt.Errorf("config: server.listen_addr must be set")
	}

	if err := c.Database.validateAndNormalize(); err != nil {
		return err
	}

	if err := c.Redis.validateAndNormalize(); err != nil {
		return err
	}

	return c.Log.validateAndNormalize()
}

func (d *DatabaseConfig) validateAndNormalize() error {
	if d.Host == "" {
		return fmt.Errorf("config: database.host must be set")
	}
	if d.Port == 0 {
		return fmt.Errorf("config: database.port must be set")
	}
	if d.User == "" {
		return fmt.Errorf("config: database.user must be set")
	}
	if d.Password == "" {
		return fmt.Errorf("config: database.password must be set")
	}
	if d.Name == "" {
		return fmt.Errorf("config: database.name must be set")
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}

	lifetime, err := parseDurationAllowEmpty(d.ConnMaxLifetimeRaw)
	if err != nil {
		return fmt.Errorf("config: database.conn_max_lifetime: %w", err)
	}
	d.ConnMaxLifetime = lifetime

	idleTime, err := parseDurationAllowEmpty(d.ConnMaxIdleTimeRaw)
	if err != nil {
		return fmt.Errorf("config: database.conn_max_idle_time: %w", err)
	}
	d.ConnMaxIdleTime = idleTime

	healthCheck, err := parseDurationAllowEmpty(d.HealthCheckPeriodRaw)
	if err != nil {
		return fmt.Errorf("config: database.health_check_period: %w", err)
	}
	d.HealthCheckPeriod = healthCheck

	return nil
}

func (r *RedisConfig) validateAndNormalize() error {
	r.URL = strings.TrimSpace(r.URL)
	if r.URL == "" {
		return nil
	}
	parsed, err := url.Parse(r.URL)
	if err != nil {
		return fmt.Errorf("config: redis.url: %w", err)
	}
	if parsed.Scheme != "redis" && parsed.Scheme != "rediss" {
		return fmt.Errorf("config: redis.url must use redis:// or rediss://")
	}
	if r.ChannelPrefix == "" {
		r.ChannelPrefix = defaultChannelPrefix
	}
	return nil
}

func (l *LogConfig) validateAndNormalize() error {
	switch strings.ToLower(strings.TrimSpace(l.Format)) {
	case "", LogFormatText:
		l.Format = LogFormatText
	case LogFormatJSON:
		l.Format = LogFormatJSON
	default:
		return fmt.Errorf("config: log.format must be text or json")
	}

	raw := strings.TrimSpace(l.Level)
	if raw == "" {
		l.level = slog.LevelInfo
		return nil
	}
	if err := l.level.UnmarshalText([]byte(raw)); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	return nil
}

func parseDurationAllowEmpty(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	return d, nil
}

// DSN は pgx 用の接続文字列を返します。認証情報はエスケープされます。
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   d.Host + ":" + strconv.Itoa(d.Port),
		Path:   "/" + d.Name,
	}
	q := url.Values{}
	q.Set("sslmode", d.SSLMode)
	if d.ApplicationName != "" {
		q.Set("application_name", d.ApplicationName)
	}
	u.RawQuery = q.Encode()
	return u.String()
}
