package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type counter struct {
	ID    int64 `gorm:"primaryKey"`
	Value int64
}

func newSQLiteClient(t *testing.T) *Client {
	t.Helper()
	client, err := NewClient(Config{
		Driver:   DriverSQLite,
		DSN:      "file:" + filepath.Join(t.TempDir(), "test.db") + "?_busy_timeout=5000",
		LogLevel: "silent",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.DB().AutoMigrate(&counter{}))
	require.NoError(t, client.DB().Create(&counter{ID: 1, Value: 10}).Error)
	return client
}

func TestDataSourceName(t *testing.T) {
	mysqlCfg := Config{Driver: DriverMySQL, User: "root", Password: "pw", Host: "db", Port: 3306, DBName: "atm_db"}
	assert.Equal(t, "root:pw@tcp(db:3306)/atm_db?charset=utf8mb4&parseTime=True&loc=Local", mysqlCfg.DataSourceName())

	pgCfg := Config{Driver: DriverPostgres, User: "atm", Password: "pw", Host: "db", Port: 5432, DBName: "atm_db"}
	assert.Equal(t, "host=db port=5432 user=atm password=pw dbname=atm_db sslmode=disable", pgCfg.DataSourceName())

	override := Config{Driver: DriverMySQL, DSN: "custom"}
	assert.Equal(t, "custom", override.DataSourceName())
}

func TestWithDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()
	assert.Equal(t, DriverMySQL, cfg.Driver)
	assert.Equal(t, 3306, cfg.Port)
	assert.Equal(t, 100, cfg.MaxOpenConns)

	lite := Config{Driver: DriverSQLite, MaxOpenConns: 50}.withDefaults()
	assert.Equal(t, 1, lite.MaxOpenConns)

	immediate := Config{
		Driver:       DriverSQLite,
		DSN:          "file:atm.db?_busy_timeout=5000&_txlock=immediate",
		MaxOpenConns: 8,
	}.withDefaults()
	assert.Equal(t, 8, immediate.MaxOpenConns)
	assert.Equal(t, 10, immediate.MaxIdleConns)
}

func TestUnknownIsolation(t *testing.T) {
	_, err := NewClient(Config{Driver: DriverSQLite, Isolation: "chaos"})
	assert.Error(t, err)
}

func TestUnsupportedDriver(t *testing.T) {
	_, err := NewClient(Config{Driver: "oracle"})
	assert.Error(t, err)
}

func TestTransactionCommitAndRollback(t *testing.T) {
	client := newSQLiteClient(t)
	ctx := context.Background()

	err := client.Transaction(ctx, func(tx *gorm.DB) error {
		return tx.Model(&counter{}).Where("id = ?", 1).Update("value", gorm.Expr("value + ?", 5)).Error
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = client.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Model(&counter{}).Where("id = ?", 1).Update("value", 0).Error; err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	assert.Panics(t, func() {
		_ = client.Transaction(ctx, func(tx *gorm.DB) error {
			tx.Model(&counter{}).Where("id = ?", 1).Update("value", -1)
			panic("kaboom")
		})
	})

	var c counter
	require.NoError(t, client.DB().First(&c, 1).Error)
	assert.Equal(t, int64(15), c.Value)
}

func TestSQLXSharesPool(t *testing.T) {
	client := newSQLiteClient(t)
	var value int64
	require.NoError(t, client.SQLX().GetContext(context.Background(), &value, "SELECT value FROM counters WHERE id = ?", 1))
	assert.Equal(t, int64(10), value)
	assert.Equal(t, DriverSQLite, client.Driver())
	assert.NoError(t, client.Ping(context.Background()))
}
