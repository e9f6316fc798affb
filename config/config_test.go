package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPort(t *testing.T) {
	t.Setenv("TBS_PORT", "")
	assert.Equal(t, 5000, GetPort())

	t.Setenv("TBS_PORT", "8080")
	assert.Equal(t, 8080, GetPort())

	t.Setenv("TBS_PORT", "nope")
	assert.Equal(t, 5000, GetPort())
}

func TestGetTokenTTLMinutes(t *testing.T) {
	t.Setenv("TBS_TOKEN_TTL", "")
	assert.Equal(t, 60, GetTokenTTLMinutes())

	t.Setenv("TBS_TOKEN_TTL", "15")
	assert.Equal(t, 15, GetTokenTTLMinutes())

	t.Setenv("TBS_TOKEN_TTL", "-5")
	assert.Equal(t, 60, GetTokenTTLMinutes())
}

func TestGetDBPath(t *testing.T) {
	t.Setenv("TBS_DB_FOLDER", "")
	assert.Equal(t, "data/"+GetName()+".db", GetDBPath())

	t.Setenv("TBS_DB_FOLDER", "/tmp/tbs")
	assert.Equal(t, "/tmp/tbs/"+GetName()+".db", GetDBPath())
}

func TestGetLogLevel(t *testing.T) {
	t.Setenv("TBS_DEBUG", "")
	t.Setenv("TBS_LOG_LEVEL", "")
	assert.Equal(t, Info, GetLogLevel())

	t.Setenv("TBS_LOG_LEVEL", "warn")
	assert.Equal(t, Warn, GetLogLevel())

	t.Setenv("TBS_DEBUG", "true")
	assert.Equal(t, Debug, GetLogLevel())
}
