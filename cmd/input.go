package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/they4kman/termsweep/game"
)

var (
	inputPattern = regexp.MustCompile(`^(\d+)\s*,\s*(\d+)$`)

	errMalformedInput = errors.New("enter a cell as 'row,col', or 'q' to quit")
)

// parseInput reads one line typed by the player: either "row,col" or "q".
// Bounds are checked by the game, not here.
func parseInput(line string) (c game.Coord, quit bool, err error) {
	line = strings.TrimSpace(line)
	if line == "q" {
		return c, true, nil
	}

	match := inputPattern.FindStringSubmatch(line)
	if match == nil {
		return c, false, errMalformedInput
	}

	if c.Row, err = strconv.Atoi(match[1]); err != nil {
		return c, false, fmt.Errorf("row %s: %w", match[1], errMalformedInput)
	}
	if c.Col, err = strconv.Atoi(match[2]); err != nil {
		return c, false, fmt.Errorf("col %s: %w", match[2], errMalformedInput)
	}
	return c, false, nil
}

// maxLineLength is the longest line the terminal will parse. Anything longer
// is discarded and read back as an empty, malformed line.
const maxLineLength = 1024

type lineSplitter struct {
	discarding bool
}

// split is a bufio.SplitFunc that behaves like bufio.ScanLines, except a line
// longer than maxLineLength never fails the scan with bufio.ErrTooLong.
func (s *lineSplitter) split(data []byte, atEOF bool) (int, []byte, error) {
	advance, token, err := bufio.ScanLines(data, atEOF)
	switch {
	case err != nil:
		return advance, token, err
	case advance == 0 && len(data) < maxLineLength:
		return 0, nil, nil
	case advance == 0:
		s.discarding = true
		return len(data), nil, nil
	case s.discarding || len(token) > maxLineLength:
		s.discarding = false
		return advance, []byte{}, nil
	}
	return advance, token, nil
}
