package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
)

var ErrNotANumber = errors.New("input is not a number")

// MoveSource produces one integer per turn: a board width during size
// selection or a column choice during play. io.EOF means no more input.
type MoveSource interface {
	NextColumn(ctx context.Context) (int, error)
}

type lineResult struct {
	text string
	err  error
}

// LineSource reads one integer per line from a reader. Reading happens on
// a background goroutine so a cancelled context unblocks NextColumn even
// while no input arrives; a line typed after cancellation is kept for the
// next call.
type LineSource struct {
	r     io.Reader
	lines chan lineResult
	once  sync.Once
	err   error // sticky once the reader is exhausted
}

func NewLineSource(r io.Reader) *LineSource {
	return &LineSource{r: r, lines: make(chan lineResult)}
}

func (s *LineSource) start() {
	go func() {
		scanner := bufio.NewScanner(s.r)
		for scanner.Scan() {
			s.lines <- lineResult{text: scanner.Text()}
		}
		err := scanner.Err()
		if err == nil {
			err = io.EOF
		}
		s.lines <- lineResult{err: err}
	}()
}

func (s *LineSource) NextColumn(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s.err != nil {
		return 0, s.err
	}
	s.once.Do(s.start)

	var res lineResult
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case res = <-s.lines:
	}
	if res.err != nil {
		s.err = res.err
		return 0, res.err
	}

	line := strings.TrimSpace(res.text)
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", line, ErrNotANumber)
	}
	return n, nil
}
