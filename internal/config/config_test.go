package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	c, err := Load(nil)

	require.NoError(t, err)
	assert.Equal(t, DefaultServerAddr, c.ServerAddr)
	assert.Equal(t, DefaultRootPath, c.RootPath)
	assert.Equal(t, DefaultDBMaxConns, c.DBMaxConns)
	assert.Equal(t, DefaultAcquireTimeout, c.AcquireTimeout)
	assert.False(t, c.UseDatabase())
	assert.False(t, c.UseS3())
}

func TestLoad_Priority(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	file := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(file, []byte(`{
		"server_address": ":7000",
		"database_dsn": "postgres://file",
		"log_level": "debug",
		"s3": {"bucket": "from-file"}
	}`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DB_MAX_CONNS=20\nLOG_FORMAT=console\n"), 0o600))

	// godotenv пишет в окружение процесса напрямую
	t.Cleanup(func() { os.Unsetenv("DB_MAX_CONNS") })
	t.Setenv("DATABASE_DSN", "postgres://env")
	t.Setenv("DB_IDLE_TIMEOUT", "30s")
	t.Setenv("LOG_FORMAT", "json")

	c, err := Load([]string{"-c", file, "-a", ":9000"})
	require.NoError(t, err)

	// флаг важнее файла
	assert.Equal(t, ":9000", c.ServerAddr)
	// окружение важнее файла
	assert.Equal(t, "postgres://env", c.DBurl)
	// файл важнее умолчаний
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, "from-file", c.S3.Bucket)
	// .env дополняет окружение, но не перезаписывает его
	assert.Equal(t, 20, c.DBMaxConns)
	assert.Equal(t, "json", c.LogFormat)
	assert.Equal(t, 30*time.Second, c.IdleTimeout)
	assert.True(t, c.UseDatabase())
	assert.True(t, c.UseS3())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"нулевой пул", []string{"-db-max-conns", "0"}},
		{"min больше max", []string{"-db-max-conns", "2", "-db-min-conns", "3"}},
		{"корень без слэша", []string{"-r", "api"}},
		{"неизвестный флаг", []string{"-unknown"}},
		{"битая подсеть", []string{"-t", "10.0.0.0/99"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())

			_, err := Load(tt.args)
			assert.Error(t, err)
		})
	}
}

func TestLoad_BrokenConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	file := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(file, []byte("{"), 0o600))

	_, err := Load([]string{"-config", file})

	assert.Error(t, err)
}

func TestLoad_MissingConfigFileIgnored(t *testing.T) {
	t.Chdir(t.TempDir())

	c, err := Load([]string{"-c", "nope.json", "-migrate"})

	require.NoError(t, err)
	assert.True(t, c.Migrate)
}
