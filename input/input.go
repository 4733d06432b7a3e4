package input

import (
	"bufio"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

const maxLineSize = 64 << 20

var errInvalidUTF8 = errors.New("invalid utf-8")

// ReadFile reads the tokens of the file at path
func ReadFile(path string) ([]string, error) {
	if len(path) == 0 {
		return nil, &ResourceError{Path: path, Err: errors.New("no input path given")}
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, &ResourceError{Path: path, Err: err}
	}
	defer f.Close()
	return Read(f)
}

// Read splits r into tokens: blank lines are skipped, the rest are
// concatenated and split on ','. Tokens are trimmed of surrounding spaces
// and empty tokens are dropped.
func Read(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	var sb strings.Builder
	n := 0
	for scanner.Scan() {
		n++
		line := scanner.Text()
		if !utf8.ValidString(line) {
			return nil, &DecodeError{Line: n, Err: errInvalidUTF8}
		}
		if len(strings.TrimSpace(line)) == 0 {
			continue
		}
		sb.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, &DecodeError{Line: n + 1, Err: err}
	}
	return Split(sb.String()), nil
}

// Split breaks s on ',' into trimmed, non-empty tokens
func Split(s string) []string {
	if len(s) == 0 {
		return nil
	}
	tokens := lo.Map(strings.Split(s, ","), func(t string, _ int) string {
		return strings.TrimSpace(t)
	})
	return lo.Filter(tokens, func(t string, _ int) bool {
		return len(t) > 0
	})
}
