package configloader

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yaklabco/luaoutline/pkg/config"
)

func isolated(dir string) LoadOptions {
	return LoadOptions{
		WorkingDir:         dir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	result, err := Load(context.Background(), isolated(t.TempDir()))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config == nil {
		t.Fatal("Load() returned nil config")
	}

	if result.Config.Parser != config.ParserTreeSitter {
		t.Errorf("expected parser %q, got %q", config.ParserTreeSitter, result.Config.Parser)
	}
	if result.Config.CacheSize != config.DefaultCacheSize {
		t.Errorf("expected cache_size %d, got %d", config.DefaultCacheSize, result.Config.CacheSize)
	}
	if len(result.LoadedFrom) != 0 {
		t.Errorf("expected no loaded files, got %v", result.LoadedFrom)
	}
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	// jobs is CLI-only (yaml:"-"), so it is ignored in files.
	writeFile(t, filepath.Join(tmpDir, ".luaoutline.yml"), `
parser: none
require_lua: true
jobs: 12
`)

	result, err := Load(context.Background(), isolated(tmpDir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Parser != config.ParserNone {
		t.Errorf("expected parser %q, got %q", config.ParserNone, result.Config.Parser)
	}
	if !result.Config.RequiresLua() {
		t.Error("expected require_lua to be set")
	}
	if result.Config.Jobs != 0 {
		t.Errorf("expected jobs 0, got %d", result.Config.Jobs)
	}
	if result.Config.LogLevel != config.DefaultLogLevel {
		t.Errorf("expected default log level to survive, got %q", result.Config.LogLevel)
	}

	if len(result.LoadedFrom) != 1 {
		t.Errorf("expected 1 loaded file, got %d", len(result.LoadedFrom))
	}
}

func TestLoad_ProjectConfigFoundUpward(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	nested := filepath.Join(root, "lua", "plugin")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeFile(t, filepath.Join(root, ".luaoutline.yml"), "log_level: debug\n")

	result, err := Load(context.Background(), isolated(nested))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.LogLevel != "debug" {
		t.Errorf("expected log level from parent directory, got %q", result.Config.LogLevel)
	}
}

func TestFindProjectConfig_StopsAtVCSRoot(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	repo := filepath.Join(root, "repo")
	if err := os.MkdirAll(filepath.Join(repo, ".git"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeFile(t, filepath.Join(root, ".luaoutline.yml"), "parser: none\n")

	path, err := FindProjectConfig(context.Background(), repo)
	if err != nil {
		t.Fatalf("FindProjectConfig() error = %v", err)
	}
	if path != "" {
		t.Errorf("expected search to stop at the VCS root, found %q", path)
	}
}

func TestLoad_ExplicitConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".luaoutline.yml"), "parser: treesitter\ncache_size: 4\n")

	customPath := filepath.Join(tmpDir, "custom-config.yml")
	writeFile(t, customPath, "parser: none\n")

	opts := isolated(tmpDir)
	opts.ExplicitPath = customPath

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Parser != config.ParserNone {
		t.Errorf("expected explicit config to win, got %q", result.Config.Parser)
	}
	if result.Config.CacheSize != 4 {
		t.Errorf("expected project cache_size to survive, got %d", result.Config.CacheSize)
	}
	if len(result.LoadedFrom) != 2 || result.LoadedFrom[1] != customPath {
		t.Errorf("expected project then explicit, got %v", result.LoadedFrom)
	}
}

func TestLoad_CLIOverrides(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".luaoutline.yml"), "parser: treesitter\nrequire_lua: true\n")

	requireLua := false
	opts := isolated(tmpDir)
	opts.CLIConfig = &config.Config{
		Parser:     config.ParserNone,
		RequireLua: &requireLua,
		Jobs:       8,
		Format:     config.FormatJSON,
	}

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Parser != config.ParserNone {
		t.Errorf("expected parser %q (CLI override), got %q", config.ParserNone, result.Config.Parser)
	}
	if result.Config.RequiresLua() {
		t.Error("expected require_lua false (CLI override)")
	}
	if result.Config.Jobs != 8 {
		t.Errorf("expected jobs 8 (CLI override), got %d", result.Config.Jobs)
	}
	if result.Config.Format != config.FormatJSON {
		t.Errorf("expected format json, got %q", result.Config.Format)
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		field   string
	}{
		{"unknown parser", "parser: luaparse\n", "parser"},
		{"negative cache", "cache_size: -1\n", "cache_size"},
		{"unknown log level", "log_level: loud\n", "log_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tmpDir := t.TempDir()
			configPath := filepath.Join(tmpDir, ".luaoutline.yml")
			writeFile(t, configPath, tt.content)

			_, err := Load(context.Background(), isolated(tmpDir))
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), configPath) || !strings.Contains(err.Error(), tt.field) {
				t.Errorf("expected error naming %s and %s, got %v", configPath, tt.field, err)
			}
		})
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".luaoutline.yml"), "parser: [\n")

	if _, err := Load(context.Background(), isolated(tmpDir)); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoad_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, isolated(t.TempDir()))
	if err == nil {
		t.Fatal("expected context cancellation error")
	}
}

func TestLoadFromLookup(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		"LUAOUTLINE_PARSER":      "none",
		"LUAOUTLINE_CACHE_SIZE":  "0",
		"LUAOUTLINE_REQUIRE_LUA": "1",
		"LUAOUTLINE_FORMAT":      "yaml",
		"LUAOUTLINE_JOBS":        "3",
		"LUAOUTLINE_COLOR":       "never",
		"LUAOUTLINE_LOG_LEVEL":   "",
	}
	lookup := func(key string) (string, bool) {
		value, ok := env[key]
		return value, ok
	}

	cfg := config.NewConfig()
	if err := loadFromLookup(cfg, lookup); err != nil {
		t.Fatalf("loadFromLookup() error = %v", err)
	}

	if cfg.Parser != config.ParserNone || cfg.CacheSize != 0 || !cfg.RequiresLua() {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.Format != config.FormatYAML || cfg.Jobs != 3 || cfg.Color != config.ColorNever {
		t.Errorf("unexpected CLI fields: %+v", cfg)
	}
	if cfg.LogLevel != config.DefaultLogLevel {
		t.Errorf("empty variable should be ignored, got %q", cfg.LogLevel)
	}
}

func TestLoadFromLookup_InvalidValues(t *testing.T) {
	t.Parallel()

	for _, env := range []map[string]string{
		{"LUAOUTLINE_JOBS": "many"},
		{"LUAOUTLINE_REQUIRE_LUA": "perhaps"},
	} {
		lookup := func(key string) (string, bool) {
			value, ok := env[key]
			return value, ok
		}
		if err := loadFromLookup(config.NewConfig(), lookup); err == nil {
			t.Errorf("expected error for %v", env)
		}
	}
}

func TestEnvVarNames(t *testing.T) {
	t.Parallel()

	if got := GetEnvVarName("cache_size"); got != "LUAOUTLINE_CACHE_SIZE" {
		t.Errorf("GetEnvVarName() = %q", got)
	}
	if got := GetEnvVarName("nope"); got != "" {
		t.Errorf("GetEnvVarName() = %q, want empty", got)
	}

	names := SortedEnvVars()
	vars := ListEnvVars()
	if len(names) != len(vars) {
		t.Fatalf("SortedEnvVars() has %d names, ListEnvVars() %d", len(names), len(vars))
	}
	for i, name := range names {
		if vars[name] == "" {
			t.Errorf("missing description for %s", name)
		}
		if i > 0 && names[i-1] > name {
			t.Errorf("names not sorted: %v", names)
		}
	}
}

func TestMergeAll(t *testing.T) {
	t.Parallel()

	requireLua := true
	got := MergeAll(
		config.NewConfig(),
		&config.Config{LogLevel: "error"},
		&config.Config{RequireLua: &requireLua},
		nil,
	)

	if got.LogLevel != "error" || !got.RequiresLua() || got.Parser != config.ParserTreeSitter {
		t.Errorf("unexpected merge result: %+v", got)
	}

	requireLua = false
	if !got.RequiresLua() {
		t.Error("merge must copy pointer fields")
	}
}

func TestWriteConfig(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), ".luaoutline.yml")

	backup, err := WriteConfig(ctx, nil, path, false)
	if err != nil {
		t.Fatalf("WriteConfig() error = %v", err)
	}
	if backup != "" {
		t.Errorf("fresh write reported backup %q", backup)
	}

	if _, err := WriteConfig(ctx, nil, path, false); err == nil {
		t.Fatal("expected refusal to overwrite")
	}

	backup, err = WriteConfig(ctx, config.NewConfig(), path, true)
	if err != nil {
		t.Fatalf("WriteConfig(force) error = %v", err)
	}
	if backup != path+".bak" {
		t.Errorf("backup = %q, want %q", backup, path+".bak")
	}
	if !fileExists(backup) {
		t.Error("backup file missing")
	}

	cfg, err := loadConfigFile(ctx, path)
	if err != nil {
		t.Fatalf("loadConfigFile() error = %v", err)
	}
	if cfg.Parser != config.ParserTreeSitter {
		t.Errorf("round trip parser = %q", cfg.Parser)
	}
}
