package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

var ErrInputClosed = errors.New("input closed")

// lineReader - reads lines on its own goroutine so that a prompt can be abandoned when the context ends.
type lineReader struct {
	lines chan string
	stop  chan struct{}
	err   error
}

func newLineReader(r io.Reader) *lineReader {
	reader := &lineReader{
		lines: make(chan string),
		stop:  make(chan struct{}),
	}

	go reader.scan(r)

	return reader
}

func (that *lineReader) scan(r io.Reader) {
	defer close(that.lines)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		select {
		case that.lines <- scanner.Text():
		case <-that.stop:
			return
		}
	}

	that.err = scanner.Err()
}

func (that *lineReader) ReadLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-that.lines:
		if !ok {
			if that.err != nil {
				return "", fmt.Errorf("failed to read input: %w", that.err)
			}
			return "", ErrInputClosed
		}
		return line, nil
	}
}

func (that *lineReader) Close() {
	close(that.stop)
}

// ParseMoveLine - splits "x y", "x,y" or "x, y" into a raw coordinate.
// Anything but exactly two tokens yields empty components, which the engine rejects.
func ParseMoveLine(line string) entity.RawCoordinate {
	tokens := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	if len(tokens) != 2 {
		return entity.RawCoordinate{}
	}

	return entity.RawCoordinate{X: tokens[0], Y: tokens[1]}
}

var replayAnswers = map[string]bool{"": true, "y": true, "yes": true, "sure": true, "1": true}

// WantsReplay - a blank answer counts as yes.
func WantsReplay(answer string) bool {
	return replayAnswers[strings.ToLower(strings.TrimSpace(answer))]
}
