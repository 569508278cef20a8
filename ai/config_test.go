package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "gpt-4o", cfg.Model)
	assert.False(t, cfg.Configured())
}

func TestNewConfigOptions(t *testing.T) {
	cfg := NewConfig(
		WithProvider("deepseek"),
		WithAPIKey("sk-test-key-12345"),
		WithModel("deepseek-chat"),
		WithProxy("http://localhost:8888"),
	)

	assert.Equal(t, "deepseek", cfg.Provider)
	assert.Equal(t, "deepseek-chat", cfg.Model)
	assert.Equal(t, "http://localhost:8888", cfg.ProxyURL)
	assert.True(t, cfg.Configured())
}

func TestNormalizeFillsProviderBaseURL(t *testing.T) {
	tests := []struct {
		provider string
		want     string
	}{
		{"openai", "https://api.openai.com/v1"},
		{"deepseek", "https://api.deepseek.com"},
		{"nvidia", "https://integrate.api.nvidia.com/v1"},
		{"siliconflow", "https://api.siliconflow.cn/v1"},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			cfg := NewConfig(WithProvider(tt.provider))
			cfg.Normalize()
			assert.Equal(t, tt.want, cfg.BaseURL)
		})
	}
}

func TestNormalizeKeepsExplicitBaseURL(t *testing.T) {
	cfg := NewConfig(
		WithProvider("openai"),
		WithBaseURL("http://localhost:11434/v1"),
	)
	cfg.Normalize()
	assert.Equal(t, "http://localhost:11434/v1", cfg.BaseURL)
}

func TestValidate(t *testing.T) {
	cfg := NewConfig(WithProvider("openai"))
	require.NoError(t, cfg.Validate())

	// Missing key is not a validation error, it is a handled state.
	assert.False(t, cfg.Configured())

	cfg = NewConfig()
	cfg.Model = ""
	assert.Error(t, cfg.Validate())

	cfg = NewConfig(WithProvider("unknown"))
	assert.Error(t, cfg.Validate())
}

func TestMaskedKey(t *testing.T) {
	cfg := NewConfig(WithAPIKey("sk-abcdefgh1234"))
	assert.Equal(t, "sk-...1234", cfg.MaskedKey())

	cfg = NewConfig(WithAPIKey("short"))
	assert.Equal(t, "", cfg.MaskedKey())

	cfg = NewConfig()
	assert.Equal(t, "", cfg.MaskedKey())
}
