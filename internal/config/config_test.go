package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	os.Clearenv()

	cfg := Load("")

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, DefaultDataFile, cfg.DataFile)
	assert.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("ADDR", "127.0.0.1:9090")
	t.Setenv("ASTHMA_DATA_FILE", "/var/lib/asthma/data.json")
	t.Setenv("MAX_BODY_BYTES", "2048")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg := Load("")

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "127.0.0.1:9090", cfg.Addr)
	assert.Equal(t, "/var/lib/asthma/data.json", cfg.DataFile)
	assert.Equal(t, int64(2048), cfg.MaxBodyBytes)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestResolveDataFile_Precedence(t *testing.T) {
	t.Setenv("ASTHMA_DATA_FILE", "")
	assert.Equal(t, DefaultDataFile, ResolveDataFile(""))

	t.Setenv("ASTHMA_DATA_FILE", "from-env.json")
	assert.Equal(t, "from-env.json", ResolveDataFile(""))
	assert.Equal(t, "explicit.json", ResolveDataFile("explicit.json"))
}

func TestLoad_InvalidMaxBodyBytes(t *testing.T) {
	t.Setenv("MAX_BODY_BYTES", "invalid")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic due to invalid MAX_BODY_BYTES")
		}
	}()
	Load("")
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("MAX_BODY_BYTES", "1024")
	t.Setenv("SHUTDOWN_TIMEOUT", "invalid-duration")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic due to invalid SHUTDOWN_TIMEOUT")
		}
	}()
	Load("")
}
