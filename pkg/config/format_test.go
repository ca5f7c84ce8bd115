package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/luaoutline/pkg/config"
)

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    config.OutputFormat
		wantErr bool
	}{
		{"text", "text", config.FormatText, false},
		{"json upper case", "JSON", config.FormatJSON, false},
		{"yaml padded", " yaml ", config.FormatYAML, false},
		{"summary", "summary", config.FormatSummary, false},
		{"sarif is unknown", "sarif", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := config.ParseOutputFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColorMode_IsValid(t *testing.T) {
	assert.True(t, config.ColorAuto.IsValid())
	assert.True(t, config.ColorNever.IsValid())
	assert.False(t, config.ColorMode("sometimes").IsValid())
}

func TestParserName_IsValid(t *testing.T) {
	assert.True(t, config.ParserTreeSitter.IsValid())
	assert.True(t, config.ParserNone.IsValid())
	assert.False(t, config.ParserName("luaparse").IsValid())
}
