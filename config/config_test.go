package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, ":3000", cfg.Server.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 60*time.Second, cfg.Orders.DuplicateWindow)
	assert.False(t, cfg.Kafka.Enabled)
	assert.Equal(t, []string{"127.0.0.1:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "root:@tcp(127.0.0.1:3306)/order_db?charset=utf8mb4&parseTime=True&loc=UTC", cfg.DSN())
}

func TestLoadConfig_FileAndEnvironment(t *testing.T) {
	dir := t.TempDir()
	yml := []byte(`
database:
  driver: postgres
  host: db.internal
  port: "5432"
  user: orders
  password: secret
  name: shop
orders:
  duplicate_window: 90s
kafka:
  topic: orders-from-file
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), yml, 0o600))
	t.Setenv("KAFKA_TOPIC", "orders-from-env")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig(dir)

	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 90*time.Second, cfg.Orders.DuplicateWindow)
	assert.Equal(t, "orders-from-env", cfg.Kafka.Topic)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "host=db.internal port=5432 user=orders password=secret dbname=shop sslmode=disable", cfg.DSN())
}

func TestLoadConfig_ConnectionStringFromEnvironment(t *testing.T) {
	t.Setenv("SQLALCHEMY_DATABASE_URI", "user:pw@tcp(mysql:3306)/legacy?parseTime=True")

	cfg, err := LoadConfig(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, "user:pw@tcp(mysql:3306)/legacy?parseTime=True", cfg.DSN())
}

func TestLoadConfig_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "oracle")

	_, err := LoadConfig(t.TempDir())

	assert.ErrorContains(t, err, `unsupported database driver "oracle"`)
}

func TestConfig_ValidateKafka(t *testing.T) {
	var cfg Config
	cfg.Database.Driver = "sqlite"
	cfg.Orders.DuplicateWindow = time.Minute
	cfg.Kafka.Enabled = true

	assert.Error(t, cfg.Validate())

	cfg.Kafka.Brokers = []string{"localhost:9092"}
	cfg.Kafka.Topic = "orders"
	assert.NoError(t, cfg.Validate())
}
