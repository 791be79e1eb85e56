package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid config",
			config: &Config{
				Database: DatabaseConfig{DSN: "file:test.db"},
				Redis:    RedisConfig{URL: "redis://localhost:6379"},
			},
		},
		{
			name:    "missing database dsn",
			config:  &Config{Redis: RedisConfig{URL: "redis://localhost:6379"}},
			wantErr: true,
			errMsg:  "database.dsn",
		},
		{
			name:    "missing both",
			config:  &Config{},
			wantErr: true,
			errMsg:  "missing required fields: database.dsn, redis.url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyAgainstEmbeddedSchema(tt.config)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestEmbeddedSchemaMatchesConfig(t *testing.T) {
	var embedded map[string]any
	require.NoError(t, json.Unmarshal([]byte(embeddedSchema), &embedded))

	defs, ok := embedded["$defs"].(map[string]any)
	require.True(t, ok)
	for _, name := range []string{"Config", "ServerConfig", "DatabaseConfig", "RedisConfig", "QueueConfig",
		"MatchingConfig", "SuggestConfig", "WorkersConfig", "DeliveryConfig"} {
		assert.Contains(t, defs, name)
	}

	root := defs["Config"].(map[string]any)
	assert.ElementsMatch(t, []any{"database", "redis"}, root["required"])
	db := defs["DatabaseConfig"].(map[string]any)
	assert.ElementsMatch(t, []any{"dsn"}, db["required"])
}

func TestGenerateSchema(t *testing.T) {
	schema, err := GenerateSchema()
	require.NoError(t, err)
	require.NotNil(t, schema)

	data, err := json.Marshal(schema)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"$defs"`)
	assert.Contains(t, string(data), `"DatabaseConfig"`)
	assert.Contains(t, string(data), `"webhook_url"`)
}
