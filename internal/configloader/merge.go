package configloader

import "github.com/yaklabco/luaoutline/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Pointer values: override overwrites base if override is non-nil
//
// CacheSize follows the scalar rule, so only LUAOUTLINE_CACHE_SIZE=0 or the
// --no-cache flag can disable the cache.
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Parser != "" {
		result.Parser = override.Parser
	}
	if override.CacheSize != 0 {
		result.CacheSize = override.CacheSize
	}
	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}
	if override.RequireLua != nil {
		requireLua := *override.RequireLua
		result.RequireLua = &requireLua
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.Color != "" {
		result.Color = override.Color
	}

	return &result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
