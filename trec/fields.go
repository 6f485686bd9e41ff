package trec

import (
	"bufio"
	"fmt"
	"github.com/pkg/errors"
	"io"
	"os"
	"strings"
)

// maxLineLength bounds the length of a single line of any input file.
const maxLineLength = 1024 * 1024

// readFields calls fn with the whitespace separated fields of every non-blank line in r.
// Lines must contain exactly n fields.
func readFields(r io.Reader, n int, fn func(line int, text string, fields []string) error) error {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 64*1024), maxLineLength)
	line := 0
	for s.Scan() {
		line++
		text := s.Text()
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != n {
			return MalformedInputError{
				Line:   line,
				Text:   text,
				Reason: fmt.Sprintf("expected %d fields, got %d", n, len(fields)),
			}
		}
		if err := fn(line, text, fields); err != nil {
			return err
		}
	}
	if err := s.Err(); err != nil {
		if err == bufio.ErrTooLong {
			return MalformedInputError{
				Line:   line + 1,
				Reason: fmt.Sprintf("line is longer than %d bytes", maxLineLength),
			}
		}
		return err
	}
	return nil
}

// openWith opens path and hands it to read, annotating any error with the path.
func openWith(path, kind string, read func(io.Reader) error) error {
	f, err := os.OpenFile(path, os.O_RDONLY, 0664)
	if err != nil {
		return errors.Wrapf(err, "opening %s file", kind)
	}
	defer f.Close()
	return errors.Wrapf(read(f), "reading %s file %s", kind, path)
}
