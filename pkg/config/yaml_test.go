package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/luaoutline/pkg/config"
)

func TestConfigClone(t *testing.T) {
	t.Run("nil config returns nil", func(t *testing.T) {
		var c *config.Config
		clone := c.Clone()
		assert.Nil(t, clone)
	})

	t.Run("empty config", func(t *testing.T) {
		c := &config.Config{}
		clone := c.Clone()
		require.NotNil(t, clone)
		assert.NotSame(t, c, clone)
	})

	t.Run("deep copies RequireLua", func(t *testing.T) {
		original := config.NewConfig()

		clone := original.Clone()
		require.NotNil(t, clone)
		assert.NotSame(t, original.RequireLua, clone.RequireLua)

		*clone.RequireLua = true
		assert.False(t, original.RequiresLua())
	})

	t.Run("preserves all fields", func(t *testing.T) {
		requireLua := true
		original := &config.Config{
			Parser:     config.ParserNone,
			CacheSize:  8,
			LogLevel:   "debug",
			RequireLua: &requireLua,
			Format:     config.FormatJSON,
			Jobs:       4,
			Color:      config.ColorNever,
		}

		assert.Equal(t, original, original.Clone())
	})
}

func TestConfigToYAML(t *testing.T) {
	t.Run("nil config returns nil", func(t *testing.T) {
		var cfg *config.Config
		data, err := cfg.ToYAML()
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("basic config serializes", func(t *testing.T) {
		cfg := &config.Config{
			Parser:    config.ParserNone,
			CacheSize: 16,
			Jobs:      3,
		}

		data, err := cfg.ToYAML()
		require.NoError(t, err)
		assert.Contains(t, string(data), "parser: none")
		assert.Contains(t, string(data), "cache_size: 16")
		assert.NotContains(t, string(data), "jobs")
		assert.NotContains(t, string(data), "require_lua")
	})

	t.Run("header is prepended", func(t *testing.T) {
		data, err := config.NewConfig().ToYAMLWithHeader("# generated")
		require.NoError(t, err)
		assert.Contains(t, string(data), "# generated\n\nparser: treesitter")
	})
}

func TestFromYAML(t *testing.T) {
	t.Run("parses valid YAML", func(t *testing.T) {
		yaml := []byte(`
parser: none
cache_size: 0
log_level: debug
require_lua: true
`)
		cfg, err := config.FromYAML(yaml)
		require.NoError(t, err)
		assert.Equal(t, config.ParserNone, cfg.Parser)
		assert.Equal(t, 0, cfg.CacheSize)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.True(t, cfg.RequiresLua())
	})

	t.Run("unset fields stay zero", func(t *testing.T) {
		cfg, err := config.FromYAML([]byte(`log_level: info`))
		require.NoError(t, err)
		assert.Empty(t, cfg.Parser)
		assert.Nil(t, cfg.RequireLua)
	})

	t.Run("rejects malformed YAML", func(t *testing.T) {
		_, err := config.FromYAML([]byte("parser: [\n"))
		require.Error(t, err)
	})
}

func TestGenerateTemplate(t *testing.T) {
	data := string(config.GenerateTemplate(nil))

	assert.Contains(t, data, config.DefaultTemplateHeader())
	assert.Contains(t, data, "parser: treesitter\n")
	assert.Contains(t, data, "cache_size: 64\n")
	assert.Contains(t, data, "require_lua: false\n")

	cfg, err := config.FromYAML([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, config.NewConfig().Parser, cfg.Parser)
	assert.Equal(t, config.DefaultLogLevel, cfg.LogLevel)
}
