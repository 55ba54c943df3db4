package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "BIND_ADDRESS", "CHECK_TIMEOUT", "SHUTDOWN_TIMEOUT", "LOG_LEVEL", "ADMIN_ADDRESS", "GRPC_HEALTH_ADDRESS"} {
		t.Setenv(key, "")
	}

	cfg := NewConfig()

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, "", cfg.BindAddress)
	assert.Equal(t, ":8000", cfg.Addr())
	assert.Equal(t, 5*time.Second, cfg.CheckTimeout)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.AdminAddress)
	assert.Empty(t, cfg.GRPCHealthAddress)
	require.NoError(t, cfg.Validate())
}

func TestNewConfig_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("BIND_ADDRESS", "127.0.0.1")
	t.Setenv("CHECK_TIMEOUT", "250ms")
	t.Setenv("SHUTDOWN_TIMEOUT", "10s")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("ADMIN_ADDRESS", "127.0.0.1:9100")
	t.Setenv("GRPC_HEALTH_ADDRESS", "127.0.0.1:9200")

	cfg := NewConfig()

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "127.0.0.1:9090", cfg.Addr())
	assert.Equal(t, 250*time.Millisecond, cfg.CheckTimeout)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "127.0.0.1:9100", cfg.AdminAddress)
	assert.Equal(t, "127.0.0.1:9200", cfg.GRPCHealthAddress)
	require.NoError(t, cfg.Validate())
}

func TestNewConfig_BadPortFallsBack(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{raw: "abc", want: DefaultPort},
		{raw: "-1", want: DefaultPort},
		{raw: "70000", want: DefaultPort},
		{raw: " 8081 ", want: 8081},
		{raw: "0", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Setenv("PORT", tt.raw)
			assert.Equal(t, tt.want, NewConfig().Port)
		})
	}
}

func TestValidate(t *testing.T) {
	valid := Config{Port: 8000, CheckTimeout: time.Second, ShutdownTimeout: time.Second, LogLevel: "info"}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "zero check timeout", mutate: func(c *Config) { c.CheckTimeout = 0 }},
		{name: "negative shutdown timeout", mutate: func(c *Config) { c.ShutdownTimeout = -time.Second }},
		{name: "unknown log level", mutate: func(c *Config) { c.LogLevel = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
