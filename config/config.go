package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App       *App       `json:"app" yaml:"app"`
	Server    *Server    `json:"server" yaml:"server"`
	Store     *Store     `json:"store" yaml:"store"`
	Mongo     *Mongo     `json:"mongo" yaml:"mongo"`
	MySQL     *MySQL     `json:"mysql" yaml:"mysql"`
	SQLite    *SQLite    `json:"sqlite" yaml:"sqlite"`
	Snowflake *Snowflake `json:"snowflake" yaml:"snowflake"`
	Log       *Log       `json:"log" yaml:"log"`
	Metrics   *Metrics   `json:"metrics" yaml:"metrics"`
}

type Server struct {
	Http            int `json:"http" yaml:"http"`
	ShutdownTimeout int `json:"shutdown_timeout" yaml:"shutdown_timeout"` // 秒
}

type Snowflake struct {
	Node int64 `json:"node" yaml:"node"`
}

type Log struct {
	Level string `json:"level" yaml:"level"`
}

type Metrics struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// New 读取配置文件，失败直接 panic
func New(filename string) *Config {
	conf, err := Load(filename)
	if err != nil {
		panic(err)
	}
	return conf
}

// Load 读取 yaml 配置并叠加环境变量
func Load(filename string) (*Config, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", filename, err)
	}

	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", filename, err)
	}

	conf.setDefaults()
	if err := conf.applyEnv(); err != nil {
		return nil, err
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}

func (c *Config) setDefaults() {
	if c.App == nil {
		c.App = &App{Env: "dev"}
	}
	if c.Server == nil {
		c.Server = &Server{}
	}
	if c.Server.Http == 0 {
		c.Server.Http = 5000
	}
	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = 3
	}
	if c.Store == nil {
		c.Store = &Store{Driver: DriverMongo}
	}
	if c.Mongo == nil {
		c.Mongo = &Mongo{}
	}
	if c.Mongo.Database == "" {
		c.Mongo.Database = "social_mit"
	}
	if c.Mongo.ConnectTimeout <= 0 {
		c.Mongo.ConnectTimeout = 10
	}
	if c.MySQL == nil {
		c.MySQL = &MySQL{}
	}
	if c.SQLite == nil {
		c.SQLite = &SQLite{}
	}
	if c.Snowflake == nil {
		c.Snowflake = &Snowflake{Node: 1}
	}
	if c.Log == nil {
		c.Log = &Log{}
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Metrics == nil {
		c.Metrics = &Metrics{}
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("CHIRP_HTTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("CHIRP_HTTP_PORT: %w", err)
		}
		c.Server.Http = port
	}
	if v := os.Getenv("CHIRP_STORE_DRIVER"); v != "" {
		c.Store.Driver = v
	}
	if v := os.Getenv("CHIRP_MONGO_URI"); v != "" {
		c.Mongo.URI = v
	}
	if v := os.Getenv("CHIRP_MYSQL_DSN"); v != "" {
		c.MySQL.RawDsn = v
	}
	if v := os.Getenv("CHIRP_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	return nil
}

// Validate 校验存储相关配置
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverMongo:
		if c.Mongo.URI == "" {
			return errors.New("config: mongo.uri is required")
		}
	case DriverMySQL:
		if c.MySQL.RawDsn == "" && c.MySQL.Host == "" {
			return errors.New("config: mysql.host is required")
		}
	case DriverSQLite:
		if c.SQLite.Path == "" {
			return errors.New("config: sqlite.path is required")
		}
	default:
		return fmt.Errorf("config: unknown store driver %q", c.Store.Driver)
	}
	return nil
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
