// Package config defines core configuration types for luaoutline.
// These types are pure data structures with no dependency on the loader.
package config

// ParserName selects the structural parser.
type ParserName string

const (
	// ParserTreeSitter uses the tree-sitter Lua grammar when the binary is built with cgo.
	ParserTreeSitter ParserName = "treesitter"
	// ParserNone disables structural resolution; every symbol takes the heuristic route.
	ParserNone ParserName = "none"
)

// IsValid returns true if the parser name is known.
func (p ParserName) IsValid() bool {
	switch p {
	case ParserTreeSitter, ParserNone:
		return true
	default:
		return false
	}
}

// Defaults used by NewConfig.
const (
	DefaultCacheSize = 64
	DefaultLogLevel  = "warn"
)

// Config is the root configuration structure for luaoutline.
type Config struct {
	// Parser names the structural parser ("treesitter" or "none").
	Parser ParserName `yaml:"parser"`

	// CacheSize is the number of parsed trees kept in memory. 0 disables the cache.
	CacheSize int `yaml:"cache_size"`

	// LogLevel is the minimum level logged to stderr.
	LogLevel string `yaml:"log_level"`

	// RequireLua rejects inputs that are not detected as Lua when true.
	// Nil means unset, so a lower-precedence source can still decide.
	RequireLua *bool `yaml:"require_lua,omitempty"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format.
	Format OutputFormat `yaml:"-"`

	// Jobs specifies the number of parallel workers.
	Jobs int `yaml:"-"`

	// Color controls styled output.
	Color ColorMode `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	requireLua := false
	return &Config{
		Parser:     ParserTreeSitter,
		CacheSize:  DefaultCacheSize,
		LogLevel:   DefaultLogLevel,
		RequireLua: &requireLua,
		Format:     FormatText,
		Jobs:       0, // 0 means use GOMAXPROCS
		Color:      ColorAuto,
	}
}

// RequiresLua reports whether non-Lua inputs are rejected.
func (c *Config) RequiresLua() bool {
	return c != nil && c.RequireLua != nil && *c.RequireLua
}
