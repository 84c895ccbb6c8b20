package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		allowed []Format
		want    Format
		wantErr bool
	}{
		{"text", "text", []Format{FormatText, FormatJSON}, FormatText, false},
		{"json", "json", []Format{FormatText, FormatJSON}, FormatJSON, false},
		{"not allowed here", "markdown", []Format{FormatText, FormatJSON}, "", true},
		{"unknown", "html", []Format{FormatText}, "", true},
		{"empty", "", []Format{FormatText}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.input, tt.allowed...)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unsupported format")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsTerminal_Buffer(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}

func TestNewStyles_PlainWhenPiped(t *testing.T) {
	var buf bytes.Buffer
	s := NewStyles(&buf)

	assert.Equal(t, "title", s.Title.Render("title"))
	assert.Equal(t, "found", s.Found.Render("found"))
	assert.Len(t, s.Field.Render("ClientName"), 14, "field names are padded to a fixed width")
}
