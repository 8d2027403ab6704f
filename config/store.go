package config

import (
	"fmt"
	"time"
)

const (
	DriverMongo  = "mongo"
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

type Store struct {
	Driver string `json:"driver" yaml:"driver"`
}

// Mongo 文档库配置
type Mongo struct {
	URI            string `json:"uri" yaml:"uri"`
	Database       string `json:"database" yaml:"database"`
	ConnectTimeout int    `json:"connect_timeout" yaml:"connect_timeout"` // 秒
}

func (m *Mongo) Timeout() time.Duration {
	return time.Duration(m.ConnectTimeout) * time.Second
}

// MySQL 关系库配置
type MySQL struct {
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	Database string `json:"database" yaml:"database"`
	Params   string `json:"params" yaml:"params"`
	RawDsn   string `json:"dsn" yaml:"dsn"`
}

func (m *MySQL) Dsn() string {
	if m.RawDsn != "" {
		return m.RawDsn
	}
	params := m.Params
	if params == "" {
		params = "charset=utf8mb4&parseTime=True&loc=Local"
	}
	port := m.Port
	if port == 0 {
		port = 3306
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s", m.Username, m.Password, m.Host, port, m.Database, params)
}

type SQLite struct {
	Path string `json:"path" yaml:"path"`
}
