package input

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	t.Parallel()
	scenarios := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"only blank lines", "\n\n  \n", nil},
		{"single line", "rn=1,cm-,qp=3\n", []string{"rn=1", "cm-", "qp=3"}},
		{"no trailing newline", "rn=1,cm-", []string{"rn=1", "cm-"}},
		{"blank lines skipped", "\nrn=1,cm-\n\n", []string{"rn=1", "cm-"}},
		{"lines concatenated", "rn=1,c\nm-,qp=3", []string{"rn=1", "cm-", "qp=3"}},
		{"lines joined without separator", "rn=1,cm-\nqp=3", []string{"rn=1", "cm-qp=3"}},
		{"crlf", "rn=1,cm-\r\n", []string{"rn=1", "cm-"}},
		{"spaces trimmed", " rn=1 , cm- ", []string{"rn=1", "cm-"}},
		{"empty tokens dropped", "rn=1,,cm-,", []string{"rn=1", "cm-"}},
	}
	for _, scene := range scenarios {
		t.Run(scene.name, func(t *testing.T) {
			found, err := Read(strings.NewReader(scene.in))
			require.NoError(t, err)
			assert.Equal(t, scene.want, found)
		})
	}
}

func TestRead_InvalidUTF8(t *testing.T) {
	t.Parallel()
	_, err := Read(strings.NewReader("rn=1\nab=\xff\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDecode))
	var de *DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 2, de.Line)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, io.ErrUnexpectedEOF
}

func TestRead_ReaderFails(t *testing.T) {
	t.Parallel()
	_, err := Read(failingReader{})
	assert.True(t, errors.Is(err, ErrDecode))
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
}

func TestReadFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("rn=1,cm-,qp=3,cm=2,qp-,pc=4,ot=9,ab=5,pc=6,ot=7\n"), 0644))

	tokens, err := ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, tokens, 10)
	assert.Equal(t, "rn=1", tokens[0])
	assert.Equal(t, "ot=7", tokens[9])

	_, err = ReadFile(filepath.Join(dir, "missing.txt"))
	assert.True(t, errors.Is(err, ErrResource))
	assert.True(t, errors.Is(err, os.ErrNotExist))
	var re *ResourceError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, filepath.Join(dir, "missing.txt"), re.Path)

	_, err = ReadFile("")
	assert.True(t, errors.Is(err, ErrResource))
}
