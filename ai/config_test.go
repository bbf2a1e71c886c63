package ai

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "http://localhost:11434/v1", cfg.ClassifierHost)
	assert.Equal(t, "qwen2.5:3b", cfg.ClassifierModel)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	require.NoError(t, cfg.Validate())
}

func TestNewConfig_Options(t *testing.T) {
	cfg := NewConfig(
		WithClassifierHost("http://example.com:9100/v1"),
		WithClassifierModel("gpt-4o-mini"),
		WithTimeout(3*time.Second),
	)

	assert.Equal(t, "http://example.com:9100/v1", cfg.ClassifierHost)
	assert.Equal(t, "gpt-4o-mini", cfg.ClassifierModel)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
}

func TestConfig_Normalize(t *testing.T) {
	tests := []struct {
		name string
		host string
		want string
	}{
		{
			name: "adds v1 suffix",
			host: "http://localhost:11434",
			want: "http://localhost:11434/v1",
		},
		{
			name: "strips trailing slash before adding v1",
			host: "http://localhost:11434/",
			want: "http://localhost:11434/v1",
		},
		{
			name: "keeps existing v1",
			host: "http://localhost:11434/v1",
			want: "http://localhost:11434/v1",
		},
		{
			name: "empty host untouched",
			host: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{ClassifierHost: tt.host}
			cfg.Normalize()
			assert.Equal(t, tt.want, cfg.ClassifierHost)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr string
	}{
		{
			name:    "valid",
			cfg:     &Config{ClassifierHost: "http://h", ClassifierModel: "m", Timeout: time.Second},
			wantErr: "",
		},
		{
			name:    "missing host",
			cfg:     &Config{ClassifierModel: "m", Timeout: time.Second},
			wantErr: "ClassifierHost",
		},
		{
			name:    "missing model",
			cfg:     &Config{ClassifierHost: "http://h", Timeout: time.Second},
			wantErr: "ClassifierModel",
		},
		{
			name:    "zero timeout",
			cfg:     &Config{ClassifierHost: "http://h", ClassifierModel: "m"},
			wantErr: "Timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
