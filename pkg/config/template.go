package config

import (
	"fmt"
	"strings"
)

// DefaultTemplateHeader returns the comment written above generated config files.
func DefaultTemplateHeader() string {
	return `# luaoutline configuration
# See: https://github.com/yaklabco/luaoutline`
}

// GenerateTemplate creates a commented configuration file holding cfg's values.
// A nil cfg writes the defaults.
func GenerateTemplate(cfg *Config) []byte {
	if cfg == nil {
		cfg = NewConfig()
	}

	var buf strings.Builder
	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString("\n\n")

	writeSetting(&buf, "Structural parser: treesitter or none.", "parser", string(cfg.Parser))
	writeSetting(&buf, "Parsed trees kept in memory; 0 disables the cache.", "cache_size", fmt.Sprint(cfg.CacheSize))
	writeSetting(&buf, "Minimum log level: debug, info, warn, or error.", "log_level", cfg.LogLevel)
	writeSetting(&buf, "Reject inputs that are not detected as Lua.", "require_lua", fmt.Sprint(cfg.RequiresLua()))

	return []byte(buf.String())
}

func writeSetting(buf *strings.Builder, comment, key, value string) {
	fmt.Fprintf(buf, "# %s\n%s: %s\n\n", comment, key, value)
}
