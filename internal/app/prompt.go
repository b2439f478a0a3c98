package app

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Prompt is the blocking input boundary: one line of user text per call.
type Prompt interface {
	ReadLine() (string, error)
}

// LinePrompt reads newline-terminated answers from a reader.
type LinePrompt struct {
	r *bufio.Reader
}

// NewLinePrompt wraps r. There is no timeout; a read blocks until a line or EOF.
func NewLinePrompt(r io.Reader) *LinePrompt {
	return &LinePrompt{r: bufio.NewReader(r)}
}

// ReadLine returns the next line without its line ending. A final line with
// no newline is returned without error; io.EOF is returned only when nothing
// was read.
func (p *LinePrompt) ReadLine() (string, error) {
	line, err := p.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
