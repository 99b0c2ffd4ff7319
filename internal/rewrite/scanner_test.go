package rewrite_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"addline/internal/rewrite"
)

func insertAt(t *testing.T, content string, lineIndex int, text string) string {
	t.Helper()
	var rw rewrite.LineRewriter = rewrite.NewReaderRewriter(strings.NewReader(content))
	require.NoError(t, rw.CopyLinesUntil(lineIndex))
	require.NoError(t, rw.InsertLine(text))
	require.NoError(t, rw.CopyRemainingLines())
	return string(rw.Bytes())
}

func TestReaderRewriter_InsertLine(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		lineIndex int
		text      string
		want      string
	}{
		{
			name:      "before first line",
			content:   "alpha\nbeta\n",
			lineIndex: 0,
			text:      "new",
			want:      "new\nalpha\nbeta\n",
		},
		{
			name:      "before middle line",
			content:   "alpha\nbeta\ngamma\n",
			lineIndex: 1,
			text:      "inserted",
			want:      "alpha\ninserted\nbeta\ngamma\n",
		},
		{
			name:      "before unterminated last line",
			content:   "alpha\nbeta",
			lineIndex: 1,
			text:      "new",
			want:      "alpha\nnew\nbeta",
		},
		{
			name:      "crlf line gets crlf terminator",
			content:   "alpha\r\nbeta\r\n",
			lineIndex: 1,
			text:      "new",
			want:      "alpha\r\nnew\r\nbeta\r\n",
		},
		{
			name:      "past the end appends",
			content:   "alpha\n",
			lineIndex: 5,
			text:      "new",
			want:      "alpha\nnew\n",
		},
		{
			name:      "empty input",
			content:   "",
			lineIndex: 0,
			text:      "new",
			want:      "new\n",
		},
		{
			name:      "empty text still adds a line",
			content:   "alpha\nbeta\n",
			lineIndex: 1,
			text:      "",
			want:      "alpha\n\nbeta\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, insertAt(t, tt.content, tt.lineIndex, tt.text))
		})
	}
}

func TestReaderRewriter_CopyOnly(t *testing.T) {
	content := "alpha\r\nbeta\n\ngamma"
	rw := rewrite.NewReaderRewriter(strings.NewReader(content))
	require.NoError(t, rw.CopyLinesUntil(2))
	require.NoError(t, rw.CopyRemainingLines())
	assert.Equal(t, content, string(rw.Bytes()))
}

func TestLineIndexOfByte(t *testing.T) {
	content := []byte("ab\ncd\n\nef")
	offsets := rewrite.BuildLineOffsets(content)
	require.Equal(t, []int{0, 3, 6, 7}, offsets)

	tests := []struct {
		offset int
		want   int
	}{
		{0, 0},
		{2, 0},
		{3, 1},
		{5, 1},
		{6, 2},
		{8, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, rewrite.LineIndexOfByte(offsets, tt.offset), "offset %d", tt.offset)
	}
}
