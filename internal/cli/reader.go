package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
)

// ErrInputCancelled is returned when input is canceled by context.
var ErrInputCancelled = errors.New("input canceled")

// lineReader reads whole input lines for the prompter, abandoning the
// wait (but not the underlying read) when the context is canceled.
type lineReader struct {
	reader *bufio.Reader
	mu     sync.Mutex
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{reader: bufio.NewReader(r)}
}

// ReadLine returns the next input line with surrounding whitespace
// trimmed, respecting context cancellation.
func (r *lineReader) ReadLine(ctx context.Context) (string, error) {
	type result struct {
		err  error
		line string
	}
	resultCh := make(chan result, 1)

	go func() {
		r.mu.Lock()
		defer r.mu.Unlock()

		line, err := r.reader.ReadString('\n')
		resultCh <- result{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		// The reading goroutine holds the lock until its read
		// completes, but the caller gets control back immediately.
		return "", ErrInputCancelled
	case res := <-resultCh:
		if res.err != nil {
			return "", res.err
		}
		return strings.TrimSpace(res.line), nil
	}
}
