package llm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		check func(t *testing.T, cfg Config)
	}{
		{
			name: "defaults to noop",
			env:  map[string]string{},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, ProviderNoop, cfg.Provider)
				assert.Equal(t, 1024, cfg.MaxTokens)
				assert.Equal(t, 60*time.Second, cfg.Timeout)
				assert.NoError(t, cfg.Validate())
			},
		},
		{
			name: "claude",
			env: map[string]string{
				"ASSISTANT_TYPE":    "Claude",
				"ANTHROPIC_API_KEY": "sk-ant",
				"ASSISTANT_TIMEOUT": "15s",
			},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, ProviderClaude, cfg.Provider)
				assert.Equal(t, "sk-ant", cfg.APIKey)
				assert.NotEmpty(t, cfg.Model)
				assert.Equal(t, 15*time.Second, cfg.Timeout)
				assert.NoError(t, cfg.Validate())
			},
		},
		{
			name: "openai with model override",
			env: map[string]string{
				"ASSISTANT_TYPE":  "openai",
				"OPENAI_API_KEY":  "sk-openai",
				"ASSISTANT_MODEL": "gpt-4o",
			},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "gpt-4o", cfg.Model)
				assert.NoError(t, cfg.Validate())
			},
		},
		{
			name: "out of range max tokens falls back",
			env:  map[string]string{"ASSISTANT_MAX_TOKENS": "10"},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, 1024, cfg.MaxTokens)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"ASSISTANT_TYPE", "ANTHROPIC_API_KEY", "OPENAI_API_KEY", "ASSISTANT_MODEL", "ASSISTANT_MAX_TOKENS", "ASSISTANT_TIMEOUT", "ASSISTANT_BASE_URL"} {
				t.Setenv(key, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			tt.check(t, LoadConfig())
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := testConfig(ProviderClaude, "")
	require.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "unknown provider", mutate: func(c *Config) { c.Provider = "gemini" }, wantErr: "invalid provider"},
		{name: "missing key", mutate: func(c *Config) { c.APIKey = "" }, wantErr: "api key is required"},
		{name: "missing model", mutate: func(c *Config) { c.Model = "" }, wantErr: "model cannot be empty"},
		{name: "zero tokens", mutate: func(c *Config) { c.MaxTokens = 0 }, wantErr: "max tokens must be positive"},
		{name: "zero timeout", mutate: func(c *Config) { c.Timeout = 0 }, wantErr: "invalid timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.wantErr)
		})
	}
}

func TestNew(t *testing.T) {
	p, err := New(Config{Provider: ProviderNoop})
	require.NoError(t, err)
	assert.Equal(t, ProviderNoop, p.Name())

	p, err = New(testConfig(ProviderOpenAI, ""))
	require.NoError(t, err)
	assert.Equal(t, ProviderOpenAI, p.Name())

	_, err = New(Config{Provider: ProviderClaude})
	assert.ErrorContains(t, err, "invalid assistant configuration")
}
