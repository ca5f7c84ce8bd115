package langdetect_test

import (
	"testing"

	"github.com/yaklabco/luaoutline/pkg/langdetect"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		content  string
		expected string
	}{
		{
			name:     "lua extension",
			path:     "init.lua",
			content:  "return {}",
			expected: "lua",
		},
		{
			name:     "extension wins over content",
			path:     "script.py",
			content:  "local function f()\nend",
			expected: "python",
		},
		{
			name:     "shebang lua",
			content:  "#!/usr/bin/env lua\nprint('hello')",
			expected: "lua",
		},
		{
			name:     "shebang versioned lua",
			content:  "#!/usr/bin/lua5.4\nprint('hello')",
			expected: "lua",
		},
		{
			name:     "shebang env with flags",
			content:  "#!/usr/bin/env -S luajit -O3\nio.write('x')",
			expected: "lua",
		},
		{
			name:     "shebang sh",
			content:  "#!/bin/sh\necho hello",
			expected: "bash",
		},
		{
			name:     "local function snippet",
			content:  "local function add(a, b)\n  return a + b\nend",
			expected: "lua",
		},
		{
			name:     "conditional snippet",
			content:  "if x > 1 then\n  print(x)\nelseif x < 0 then\n  print(-x)\nend",
			expected: "lua",
		},
		{
			name:     "table function snippet",
			content:  "M.run = function(opts)\n  return opts\nend, nil",
			expected: "lua",
		},
		{
			name:     "plain text fallback",
			content:  "just some text without any code patterns",
			expected: "text",
		},
		{
			name:     "empty content fallback",
			content:  "",
			expected: "text",
		},
		{
			name:     "whitespace only",
			content:  " \n\t\n",
			expected: "text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := langdetect.Detect(tt.path, []byte(tt.content))

			if result != tt.expected {
				t.Errorf("Detect() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestIsLua_RubyBlocksAreNotLua(t *testing.T) {
	t.Parallel()

	content := []byte("def greet(name)\n  if name then\n    puts name\n  end\nend")
	if langdetect.IsLua("", content) {
		t.Error("IsLua() = true for a Ruby definition")
	}
}

func TestIsLua(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    string
		content string
		want    bool
	}{
		{name: "lua file", path: "a/b/mod.lua", want: true},
		{name: "go file", path: "main.go", content: "package main", want: false},
		{name: "stdin snippet", content: "function foo()\n  return 1\nend", want: true},
		{name: "end without opener", content: "the end\nend", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := langdetect.IsLua(tt.path, []byte(tt.content)); got != tt.want {
				t.Errorf("IsLua() = %v, want %v", got, tt.want)
			}
		})
	}
}
