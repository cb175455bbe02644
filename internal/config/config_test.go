package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_MapsVariables(t *testing.T) {
	t.Setenv("APP_TOKEN_SIGN_KEY", "sign-key")
	t.Setenv("APP_TOKEN_ISSUER", "secure-pass-vault")
	t.Setenv("APP_TOKEN_DURATION", "24h")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost/vault")
	t.Setenv("SERVER_ADDRESS", "localhost:8080")
	t.Setenv("ADAPTER_ADDRESS", "localhost:8080")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "10s")
	t.Setenv("WORKERS_REFRESH_INTERVAL", "2m")

	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Equal(t, "sign-key", cfg.App.TokenSignKey)
	assert.Equal(t, "secure-pass-vault", cfg.App.TokenIssuer)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "postgres://localhost/vault", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 2*time.Minute, cfg.Workers.RefreshInterval)
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		want    string
	}{
		{name: "localhost", input: "localhost:8080", want: "localhost:8080"},
		{name: "ip", input: "127.0.0.1:9090", want: "127.0.0.1:9090"},
		{name: "no port", input: "localhost", wantErr: true},
		{name: "bad port", input: "localhost:zero", wantErr: true},
		{name: "negative port", input: "localhost:-1", wantErr: true},
		{name: "bad host", input: "not-an-ip:8080", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr.String())
		})
	}
}

func TestNetAddress_String_ZeroValue(t *testing.T) {
	var addr NetAddress
	assert.Equal(t, "", addr.String())
}

func TestParseJSON_FullFile(t *testing.T) {
	raw := map[string]any{
		"app": map[string]any{
			"token_sign_key": "k",
			"token_issuer":   "vault",
			"token_duration": "12h",
		},
		"storage": map[string]any{
			"db": map[string]any{"dsn": "postgres://localhost/vault"},
		},
		"server": map[string]any{
			"http_address":    "localhost:8080",
			"request_timeout": "30s",
		},
		"adapter": map[string]any{
			"http_address":    "localhost:8080",
			"request_timeout": "10s",
		},
		"workers": map[string]any{"refresh_interval": "2m"},
	}

	data, err := json.Marshal(raw)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "k", cfg.App.TokenSignKey)
	assert.Equal(t, 12*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "postgres://localhost/vault", cfg.Storage.DB.DSN)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 2*time.Minute, cfg.Workers.RefreshInterval)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"90s"`), &d))
	assert.Equal(t, 90*time.Second, time.Duration(d))

	require.NoError(t, json.Unmarshal([]byte(`1000000000`), &d))
	assert.Equal(t, time.Second, time.Duration(d))

	assert.Error(t, json.Unmarshal([]byte(`"not-a-duration"`), &d))
}

func TestConfigBuilder_MergePriority(t *testing.T) {
	// Env wins over JSON for fields set in both: mergo keeps the first
	// non-zero value in the merge order.
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{HTTPAddress: "localhost:1111"}},
		&StructuredConfig{
			Server:  Server{HTTPAddress: "localhost:2222", RequestTimeout: 30 * time.Second},
			Storage: Storage{DB: DB{DSN: "postgres://localhost/vault"}},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "localhost:1111", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "postgres://localhost/vault", cfg.Storage.DB.DSN)
}

func TestClientConfig_Validate(t *testing.T) {
	valid := &ClientConfig{
		Adapter: ClientAdapter{HTTPAddress: "localhost:8080", RequestTimeout: 10 * time.Second},
	}
	assert.NoError(t, valid.validate())

	noAddr := &ClientConfig{
		Adapter: ClientAdapter{RequestTimeout: 10 * time.Second},
	}
	assert.ErrorIs(t, noAddr.validate(), ErrInvalidAdapterConfigs)

	noTimeout := &ClientConfig{
		Adapter: ClientAdapter{HTTPAddress: "localhost:8080"},
	}
	assert.ErrorIs(t, noTimeout.validate(), ErrInvalidAdapterConfigs)
}
