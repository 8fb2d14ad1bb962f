package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Client 封裝 GORM DB 實例
type Client struct {
	db        *gorm.DB
	sqlx      *sqlx.DB
	driver    string
	txOptions *sql.TxOptions
}

// NewClient 建立並回傳一個新的資料庫客戶端實例 (GORM)
//
// 參數:
//
//	cfg: Config - 資料庫連線配置
//
// 回傳值:
//
//	*Client: 封裝後的資料庫客戶端
//	error: 若連線失敗則回傳錯誤
func NewClient(cfg Config) (*Client, error) {
	cfg = cfg.withDefaults()

	txOptions, err := cfg.txOptions()
	if err != nil {
		return nil, err
	}

	dialector, err := newDialector(cfg)
	if err != nil {
		return nil, err
	}

	gormConfig := &gorm.Config{
		// 預設跳過事務模式，需要交易的地方一律走 Client.Transaction
		SkipDefaultTransaction: true,
		Logger:                 newLogger(cfg.LogLevel),
	}

	var db *gorm.DB

	// Retry mechanism for database connection
	for i := 0; i < cfg.ConnectRetries; i++ {
		db, err = gorm.Open(dialector, gormConfig)
		if err == nil {
			// Try pinging to ensure connection is actually alive
			rawDB, dbErr := db.DB()
			if dbErr == nil {
				if err = rawDB.Ping(); err == nil {
					break // Connection successful
				}
			} else {
				err = dbErr
			}
		}

		if i < cfg.ConnectRetries-1 {
			slog.Warn("failed to connect to database, retrying",
				"driver", cfg.Driver,
				"attempt", i+1,
				"max_attempts", cfg.ConnectRetries,
				"retry_in", cfg.RetryInterval,
				"error", err,
			)
			time.Sleep(cfg.RetryInterval)
		}
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s after %d attempts: %w", cfg.Driver, cfg.ConnectRetries, err)
	}

	// 取得底層 sql.DB 物件以設定連線池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.db: %w", err)
	}

	// 設定連線池參數
	// 這些設定對於防止資料庫連線耗盡至關重要
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return &Client{
		db:        db,
		sqlx:      sqlx.NewDb(sqlDB, sqlxDriverName(cfg.Driver)),
		driver:    cfg.Driver,
		txOptions: txOptions,
	}, nil
}

// newDialector 根據 Driver 選擇 GORM Dialector
func newDialector(cfg Config) (gorm.Dialector, error) {
	dsn := cfg.DataSourceName()
	switch cfg.Driver {
	case DriverMySQL:
		return mysql.Open(dsn), nil
	case DriverPostgres:
		return postgres.Open(dsn), nil
	case DriverSQLite:
		return sqlite.Open(dsn), nil
	}
	return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
}

// sqlxDriverName sqlx 依 driver 名稱決定 bind 變數格式
func sqlxDriverName(driver string) string {
	switch driver {
	case DriverPostgres:
		return "pgx"
	case DriverSQLite:
		return "sqlite3"
	}
	return driver
}

// DB 回傳底層的 *gorm.DB 實例，供業務邏輯層使用
func (c *Client) DB() *gorm.DB {
	return c.db
}

// SQLX 回傳共用同一個連線池的 sqlx 實例，供唯讀報表查詢使用
func (c *Client) SQLX() *sqlx.DB {
	return c.sqlx
}

// Driver 回傳目前使用的驅動名稱
func (c *Client) Driver() string {
	return c.driver
}

// Transaction 在單一交易中執行 fn
// fn 回傳 nil 時 commit，回傳錯誤或 panic 時 rollback，連線在所有路徑上都會歸還
func (c *Client) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if c.txOptions != nil {
		return c.db.WithContext(ctx).Transaction(fn, c.txOptions)
	}
	return c.db.WithContext(ctx).Transaction(fn)
}

// Ping 檢查資料庫是否可連線
func (c *Client) Ping(ctx context.Context) error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close 關閉資料庫連線
func (c *Client) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// newLogger 根據配置建立 GORM Logger
func newLogger(level string) logger.Interface {
	var logLevel logger.LogLevel
	switch level {
	case "info":
		logLevel = logger.Info
	case "warn":
		logLevel = logger.Warn
	case "error":
		logLevel = logger.Error
	case "silent":
		logLevel = logger.Silent
	default:
		logLevel = logger.Error // 預設只記錄錯誤
	}

	return logger.Default.LogMode(logLevel)
}
