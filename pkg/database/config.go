package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// 支援的資料庫驅動
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config 定義資料庫連線與連線池的配置
type Config struct {
	Driver   string `yaml:"driver"`   // mysql | postgres | sqlite
	Host     string `yaml:"host"`     // 資料庫主機地址
	Port     int    `yaml:"port"`     // 資料庫埠號 (mysql 預設 3306, postgres 預設 5432)
	User     string `yaml:"user"`     // 使用者名稱
	Password string `yaml:"password"` // 密碼
	DBName   string `yaml:"db_name"`  // 資料庫名稱
	// DSN 若有設定則直接使用 (sqlite 例如 file:atm.db?_busy_timeout=5000&_txlock=immediate)
	DSN string `yaml:"dsn"`

	// 連線池設定 (Connection Pool)
	// 參考: https://github.com/go-sql-driver/mysql#important-settings
	MaxOpenConns    int           `yaml:"max_open_conns"`    // 最大開啟連線數
	MaxIdleConns    int           `yaml:"max_idle_conns"`    // 最大閒置連線數
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"` // 連線最大存活時間

	// Isolation 交易隔離等級: "" (資料庫預設) | "read_committed" | "repeatable_read" | "serializable"
	Isolation string `yaml:"isolation"`

	// 啟動時的重試設定
	ConnectRetries int           `yaml:"connect_retries"`
	RetryInterval  time.Duration `yaml:"retry_interval"`

	// GORM 設定
	LogLevel string `yaml:"log_level"` // Log 等級: "silent", "error", "warn", "info"
}

// DataSourceName 產生連線字串
//
//	mysql:    user:password@tcp(host:port)/dbname?charset=utf8mb4&parseTime=True&loc=Local
//	postgres: host=... port=... user=... password=... dbname=... sslmode=disable
func (c *Config) DataSourceName() string {
	if c.DSN != "" {
		return c.DSN
	}
	switch c.Driver {
	case DriverPostgres:
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			c.Host,
			c.Port,
			c.User,
			c.Password,
			c.DBName,
		)
	case DriverSQLite:
		return "file:atm.db?_busy_timeout=5000"
	default:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			c.User,
			c.Password,
			c.Host,
			c.Port,
			c.DBName,
		)
	}
}

// txOptions 將設定的隔離等級轉為 sql.TxOptions，未設定時回傳 nil
func (c *Config) txOptions() (*sql.TxOptions, error) {
	var level sql.IsolationLevel
	switch c.Isolation {
	case "":
		return nil, nil
	case "read_committed":
		level = sql.LevelReadCommitted
	case "repeatable_read":
		level = sql.LevelRepeatableRead
	case "serializable":
		level = sql.LevelSerializable
	default:
		return nil, fmt.Errorf("unknown isolation level %q", c.Isolation)
	}
	return &sql.TxOptions{Isolation: level}, nil
}

// withDefaults 補全未設定的欄位
func (c Config) withDefaults() Config {
	if c.Driver == "" {
		c.Driver = DriverMySQL
	}
	if c.Port == 0 {
		switch c.Driver {
		case DriverMySQL:
			c.Port = 3306
		case DriverPostgres:
			c.Port = 5432
		}
	}
	if c.MaxOpenConns == 0 {
		c.MaxOpenConns = 100
	}
	if c.MaxIdleConns == 0 {
		c.MaxIdleConns = 10
	}
	if c.ConnMaxLifetime == 0 {
		c.ConnMaxLifetime = 30 * time.Minute
	}
	if c.ConnectRetries <= 0 {
		c.ConnectRetries = 10
	}
	if c.RetryInterval == 0 {
		c.RetryInterval = 2 * time.Second
	}
	// SQLite 只允許單一 writer，deferred 交易在多條連線下會回 "database is locked"
	// DSN 帶 _txlock=immediate 時 BEGIN 即取得寫鎖，其他連線依 busy_timeout 等待
	if c.Driver == DriverSQLite && !c.sqliteImmediate() {
		c.MaxOpenConns = 1
		c.MaxIdleConns = 1
	}
	return c
}

// sqliteImmediate DSN 是否讓交易在 BEGIN 時就取得寫鎖
func (c *Config) sqliteImmediate() bool {
	dsn := c.DataSourceName()
	return strings.Contains(dsn, "_txlock=immediate") || strings.Contains(dsn, "_txlock=exclusive")
}
