package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_parseFlags_OverridesConfig(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin",
		"-a", ":9090",
		"-m", "json",
		"-d", "postgres://flag/db",
		"-s", "flag-secret",
		"-t", "30",
		"-u", "/var/lib/taskhub/users.json",
		"-k", "/var/lib/taskhub/tasks.json",
		"-b", "12",
	}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, ":9090", cfg.EndpointAddr)
	assert.Equal(t, "json", cfg.StorageMode)
	assert.Equal(t, "postgres://flag/db", cfg.DatabaseDSN)
	assert.Equal(t, "flag-secret", cfg.SecretKey)
	assert.Equal(t, 30*time.Minute, cfg.TokenValidityDuration)
	assert.Equal(t, "/var/lib/taskhub/users.json", cfg.UsersFilePath)
	assert.Equal(t, "/var/lib/taskhub/tasks.json", cfg.TasksFilePath)
	assert.Equal(t, 12, cfg.BcryptCost)
}

func Test_parseFlags_KeepsDefaultsWithoutFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, ":8080", cfg.EndpointAddr)
	assert.Equal(t, 24*time.Hour, cfg.TokenValidityDuration)
}
