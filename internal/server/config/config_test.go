package config

import (
	"os"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophsecrets/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":8000", c.EndpointAddrHTTP)
	assert.Empty(t, c.DatabaseDSN)
	assert.Empty(t, c.SecretKey)
	assert.Equal(t, time.Hour, c.TokenValidityDuration)
	assert.False(t, c.CookieSecure)
	assert.Equal(t, "release", c.GinMode)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, 5*time.Second, c.ShutdownTimeout)
}

func TestValidate(t *testing.T) {
	c := &Config{}
	c.LoadDefaults()
	assert.ErrorIs(t, c.Validate(), common.ErrMissingSigningKey)

	c.SecretKey = "k"
	assert.NoError(t, c.Validate())

	c.TokenValidityDuration = 0
	assert.ErrorIs(t, c.Validate(), ErrInvalidTokenValidity)
}

func TestValidate_GinMode(t *testing.T) {
	c := &Config{}
	c.LoadDefaults()
	c.SecretKey = "k"

	for _, mode := range []string{"debug", "release", "test"} {
		c.GinMode = mode
		assert.NoError(t, c.Validate(), mode)
	}

	for _, mode := range []string{"prod", "", "Release"} {
		c.GinMode = mode
		err := c.Validate()
		assert.ErrorIs(t, err, ErrInvalidGinMode, mode)
	}
}

func TestLoadConfig_UnknownGinModeIsRejected(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	t.Chdir(t.TempDir())
	t.Setenv(envJWTSecret, "k")
	t.Setenv(envGinMode, "")
	os.Args = []string{"testbin", "-m", "prod"}

	c, err := LoadConfig()
	require.ErrorIs(t, err, ErrInvalidGinMode)
	assert.Nil(t, c)
}

func TestLoadConfig_MissingSecretIsFatal(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}
	t.Setenv(envJWTSecret, "")
	t.Chdir(t.TempDir())

	c, err := LoadConfig()
	require.ErrorIs(t, err, common.ErrMissingSigningKey)
	assert.Nil(t, c)
}

func TestLoadConfig_LayersApplyInOrder(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	t.Chdir(t.TempDir())

	path := writeTempJSON(t, "", "", map[string]any{
		"endpoint_addr_http": ":7000",
		"secret_key":         "from-json",
		"database_dsn":       "json-dsn",
	})
	t.Setenv(envJWTSecret, "from-env")
	t.Setenv(envDatabaseDSN, "")
	t.Setenv(envAddress, "")
	os.Args = []string{"testbin", "-c", path, "-a", ":9000"}

	c, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":9000", c.EndpointAddrHTTP, "flags win over json")
	assert.Equal(t, "from-env", c.SecretKey, "env wins over json")
	assert.Equal(t, "json-dsn", c.DatabaseDSN, "json wins over defaults")
	assert.Equal(t, time.Hour, c.TokenValidityDuration)
}
