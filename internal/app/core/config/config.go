package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/JoeShih716/go-atm-ledger/pkg/database"
)

// 記憶體帳本 + WAL，其他 driver 走 pkg/database
const (
	DriverMemory = "memory" // MutexLedger
	DriverLMAX   = "lmax"   // LMAXLedger，單一 goroutine 處理所有請求
)

// DefaultMaxFailedAttempts 未設定 security.max_failed_attempts 時的預設值
const DefaultMaxFailedAttempts = 3

// DefaultPath 預設設定檔路徑
const DefaultPath = "config/config.yaml"

type Config struct {
	Store    StoreConfig    `yaml:"store"`
	Server   ServerConfig   `yaml:"server"`
	Session  SessionConfig  `yaml:"session"`
	Security SecurityConfig `yaml:"security"`
	Log      LogConfig      `yaml:"log"`
	Seed     []SeedAccount  `yaml:"seed"`
}

type StoreConfig struct {
	Driver           string          `yaml:"driver"`            // memory | lmax | mysql | postgres | sqlite
	WithdrawStrategy string          `yaml:"withdraw_strategy"` // cas | lock
	OpTimeout        time.Duration   `yaml:"op_timeout"`
	WALPath          string          `yaml:"wal_path"` // 只有 memory 與 lmax 使用
	Database         database.Config `yaml:"database"`
}

type ServerConfig struct {
	GRPCAddr string `yaml:"grpc_addr"`
	HTTPAddr string `yaml:"http_addr"` // 空字串代表不啟動 HTTP
}

type SessionConfig struct {
	Secret string        `yaml:"secret"`
	TTL    time.Duration `yaml:"ttl"`
}

type SecurityConfig struct {
	PINScheme  string `yaml:"pin_scheme"` // bcrypt | plain
	BcryptCost int    `yaml:"bcrypt_cost"`
	// MaxFailedAttempts 未設定時為 DefaultMaxFailedAttempts，0 或負數代表不鎖定
	MaxFailedAttempts *int          `yaml:"max_failed_attempts"`
	Lockout           time.Duration `yaml:"lockout"`
}

// FailureLimit 回傳鎖定前允許的失敗次數，0 代表不鎖定
func (s SecurityConfig) FailureLimit() int {
	if s.MaxFailedAttempts == nil {
		return DefaultMaxFailedAttempts
	}
	return max(*s.MaxFailedAttempts, 0)
}

type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// SeedAccount 啟動時建立的帳戶，已存在則略過
type SeedAccount struct {
	AccountNumber string `yaml:"account_number"`
	PIN           string `yaml:"pin"`
	Balance       string `yaml:"balance"`
}

// Load 讀取 .env 與 YAML 設定檔，套用 ATM_* 環境變數並補上預設值
//
// 參數:
//
//	path: YAML 設定檔路徑
//
// 回傳:
//
//	*Config: 設定
//	error: 讀檔、解析或驗證失敗
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return Parse(data, os.LookupEnv)
}

// Parse 解析 YAML 內容，lookup 用來讀取環境變數覆寫
func Parse(data []byte, lookup func(string) (string, bool)) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.applyEnv(lookup); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"ATM_STORE_DRIVER":      &c.Store.Driver,
		"ATM_WITHDRAW_STRATEGY": &c.Store.WithdrawStrategy,
		"ATM_WAL_PATH":          &c.Store.WALPath,
		"ATM_DB_HOST":           &c.Store.Database.Host,
		"ATM_DB_USER":           &c.Store.Database.User,
		"ATM_DB_PASSWORD":       &c.Store.Database.Password,
		"ATM_DB_NAME":           &c.Store.Database.DBName,
		"ATM_DB_DSN":            &c.Store.Database.DSN,
		"ATM_GRPC_ADDR":         &c.Server.GRPCAddr,
		"ATM_HTTP_ADDR":         &c.Server.HTTPAddr,
		"ATM_SESSION_SECRET":    &c.Session.Secret,
		"ATM_PIN_SCHEME":        &c.Security.PINScheme,
		"ATM_LOG_LEVEL":         &c.Log.Level,
		"ATM_LOG_FORMAT":        &c.Log.Format,
	}
	for key, dst := range strs {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}

	if v, ok := lookup("ATM_DB_PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("ATM_DB_PORT: %w", err)
		}
		c.Store.Database.Port = port
	}
	if v, ok := lookup("ATM_MAX_FAILED_ATTEMPTS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("ATM_MAX_FAILED_ATTEMPTS: %w", err)
		}
		c.Security.MaxFailedAttempts = &n
	}

	durations := map[string]*time.Duration{
		"ATM_OP_TIMEOUT":  &c.Store.OpTimeout,
		"ATM_SESSION_TTL": &c.Session.TTL,
	}
	for key, dst := range durations {
		if v, ok := lookup(key); ok {
			d, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			*dst = d
		}
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Store.Driver == "" {
		c.Store.Driver = DriverMemory
	}
	if !c.Store.InMemory() {
		c.Store.Database.Driver = c.Store.Driver
	}
	if c.Store.WithdrawStrategy == "" {
		c.Store.WithdrawStrategy = "cas"
	}
	if c.Store.OpTimeout == 0 {
		c.Store.OpTimeout = 5 * time.Second
	}
	if c.Store.WALPath == "" {
		c.Store.WALPath = "wal.log"
	}
	if c.Server.GRPCAddr == "" {
		c.Server.GRPCAddr = ":50051"
	}
	if c.Session.TTL == 0 {
		c.Session.TTL = 15 * time.Minute
	}
	if c.Security.PINScheme == "" {
		c.Security.PINScheme = "bcrypt"
	}
	if c.Security.Lockout == 0 {
		c.Security.Lockout = 5 * time.Minute
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate 檢查必要欄位
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverMemory, DriverLMAX, database.DriverMySQL, database.DriverPostgres, database.DriverSQLite:
	default:
		return fmt.Errorf("unsupported store driver: %q", c.Store.Driver)
	}
	if c.Session.Secret == "" {
		return errors.New("session.secret is required (or set ATM_SESSION_SECRET)")
	}
	if c.Store.OpTimeout < 0 || c.Session.TTL < 0 {
		return errors.New("op_timeout and session ttl must not be negative")
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("unsupported log format: %q", c.Log.Format)
	}
	return nil
}

// InMemory 是否為記憶體帳本 (memory 或 lmax)
func (s StoreConfig) InMemory() bool {
	return s.Driver == DriverMemory || s.Driver == DriverLMAX
}

// SlogLevel 將 log.level 轉為 slog.Level，無法辨識時回傳 Info
func (l LogConfig) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// NewLogger 依設定建立 slog.Logger
func (l LogConfig) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: l.SlogLevel()}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
