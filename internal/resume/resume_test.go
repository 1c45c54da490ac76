package resume

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTextFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Jane Doe\r\n\r\n\r\nBackend   Engineer at Acme\n"), 0o644))

	text, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\n\nBackend Engineer at Acme", text)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)

	var inputErr *InputError
	assert.True(t, errors.As(err, &inputErr))
}

func TestLoadUnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.docx")
	require.NoError(t, os.WriteFile(path, []byte("not really a docx"), 0o644))

	_, err := Load(path)
	var inputErr *InputError
	require.True(t, errors.As(err, &inputErr))
	assert.Contains(t, inputErr.Message, "unsupported resume format")
}

func TestLoadEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("  \n\t\n"), 0o644))

	_, err := Load(path)
	var inputErr *InputError
	require.True(t, errors.As(err, &inputErr))
	assert.Contains(t, inputErr.Message, "empty")
}

func TestLoadEmptyPath(t *testing.T) {
	_, err := Load("  ")
	var inputErr *InputError
	assert.True(t, errors.As(err, &inputErr))
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"crlf normalized", "a\r\nb", "a\nb"},
		{"spaces collapsed", "a    b\tc", "a b c"},
		{"nbsp replaced", "a b", "a b"},
		{"blank runs collapsed", "a\n\n\n\nb", "a\n\nb"},
		{"surrounding whitespace trimmed", "\n\n  hello  \n\n", "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanText(tt.input))
		})
	}
}
