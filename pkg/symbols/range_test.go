package symbols_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/luaoutline/pkg/symbols"
)

func TestParseRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "full range", input: "0:9-0:12", want: "0:9-0:12"},
		{name: "multi line", input: "1:0-3:3", want: "1:0-3:3"},
		{name: "single position", input: "4:2", want: "4:2-4:2"},
		{name: "surrounding spaces", input: " 2:1-2:4 ", want: "2:1-2:4"},
		{name: "empty", input: "", wantErr: true},
		{name: "missing column", input: "3", wantErr: true},
		{name: "negative line", input: "-1:0", wantErr: true},
		{name: "letters", input: "a:b-c:d", wantErr: true},
		{name: "inverted", input: "3:0-2:0", wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got, err := symbols.ParseRange(testCase.input)
			if testCase.wantErr {
				require.ErrorIs(t, err, symbols.ErrInvalidSymbols)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.want, got.String())
		})
	}
}
