package filesystem

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/bargo/internal/core/domain"
)

// ReadLines reads path as UTF-8 text split on '\n'. A trailing '\r' is
// dropped from each line and a final terminator does not produce an empty
// line.
func (f *FileSystem) ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &domain.MissingSourceError{Path: path, Err: err}
	}
	defer file.Close()

	var lines []string
	reader := bufio.NewReader(file)
	for n := 1; ; n++ {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, &domain.MalformedLineError{Path: path, Err: err}
		}
		if line == "" && err != nil {
			break
		}

		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		if !utf8.ValidString(line) {
			return nil, &domain.MalformedLineError{
				Path: path,
				Line: n,
				Err:  fmt.Errorf("invalid UTF-8 at byte %d", invalidOffset(line)),
			}
		}
		lines = append(lines, line)

		if err != nil {
			break
		}
	}
	return lines, nil
}

func invalidOffset(s string) int {
	for i, r := range s {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(s[i:]); size == 1 {
				return i
			}
		}
	}
	return len(s)
}
