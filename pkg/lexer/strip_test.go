package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/luaoutline/pkg/lexer"
)

func TestStripComments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "no comments",
			input: "local x = 1\n",
			want:  "local x = 1\n",
		},
		{
			name:  "line comment",
			input: "x = 1 -- end\ny = 2",
			want:  "x = 1       \ny = 2",
		},
		{
			name:  "block comment keeps newlines",
			input: "a --[[ do\nend ]] b",
			want:  "a        \n       b",
		},
		{
			name:  "leveled block comment",
			input: "--[==[ ]] ]==]x",
			want:  "              x",
		},
		{
			name:  "unterminated block comment blanks to eof",
			input: "f() --[[ end\nend",
			want:  "f()         \n   ",
		},
		{
			name:  "comment marker inside string",
			input: `s = "--not" -- yes`,
			want:  `s = "--not"       `,
		},
		{
			name:  "comment marker inside long string",
			input: "s = [[--]] --x",
			want:  "s = [[--]]    ",
		},
		{
			name:  "crlf line endings",
			input: "a -- c\r\nb",
			want:  "a     \r\nb",
		},
		{
			name:  "shebang",
			input: "#!/usr/bin/lua\nprint(1)",
			want:  "              \nprint(1)",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := lexer.StripComments([]byte(testCase.input))
			assert.Len(t, got, len(testCase.input))
			assert.Equal(t, testCase.want, string(got))
		})
	}
}

func TestStripComments_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	input := []byte("x -- y")
	_ = lexer.StripComments(input)
	assert.Equal(t, "x -- y", string(input))
}
