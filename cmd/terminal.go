package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/they4kman/termsweep/game"
)

const clearSequence = "\033[H\033[2J"

type terminal struct {
	in  *bufio.Scanner
	out io.Writer

	clearScreen bool
	showMines   bool

	// shown once, under the next board drawn
	message string
}

func newTerminal(in io.Reader, out io.Writer) *terminal {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 2*maxLineLength), 2*maxLineLength)
	scanner.Split(new(lineSplitter).split)

	return &terminal{
		in:          scanner,
		out:         out,
		clearScreen: true,
	}
}

// play runs g until it is won or lost, or the player quits. Moves come from
// director if it is not nil, and from the input otherwise.
func (t *terminal) play(g *game.Game, director game.Director, delay time.Duration) (game.Outcome, error) {
	if director != nil {
		director.Init(g)
	}

	outcome := g.Outcome()
	for outcome == game.InProgress {
		t.draw(g, g.VisibleGrid())

		var (
			c    game.Coord
			quit bool
			err  error
		)
		if director != nil {
			var ok bool
			if c, ok = director.Act(); !ok {
				fmt.Fprintln(t.out, "The director has no move to make.")
				return outcome, nil
			}
			fmt.Fprintf(t.out, "Director selects %d,%d\n", c.Row, c.Col)
			time.Sleep(delay)
		} else if c, quit, err = t.prompt(); err != nil {
			return outcome, err
		} else if quit {
			fmt.Fprintln(t.out, "Bye.")
			return outcome, nil
		}

		outcome, err = g.Select(c)
		var outOfBounds *game.OutOfBoundsError
		if errors.As(err, &outOfBounds) {
			game.Log.WithField("coord", c).Debug("selection out of bounds")
			t.message = outOfBounds.Error()
			continue
		} else if err != nil {
			return outcome, err
		}
	}

	t.finish(g, outcome)
	return outcome, nil
}

// prompt asks until it gets a well-formed line. End of input counts as quit.
func (t *terminal) prompt() (game.Coord, bool, error) {
	for {
		fmt.Fprint(t.out, "Enter 'row,col' values or 'q' to quit: ")
		if !t.in.Scan() {
			fmt.Fprintln(t.out)
			return game.Coord{}, true, t.in.Err()
		}

		c, quit, err := parseInput(t.in.Text())
		if err != nil {
			fmt.Fprintln(t.out, err)
			continue
		}
		return c, quit, nil
	}
}

func (t *terminal) draw(g *game.Game, view game.View) {
	if t.clearScreen {
		fmt.Fprint(t.out, clearSequence)
	}

	fmt.Fprintf(t.out, "\nMine count: %d\n", g.NumMines())
	if t.showMines {
		fmt.Fprintf(t.out, "Mine locations: %v\n", g.Board().Mines())
	}
	render(t.out, view)

	if t.message != "" {
		fmt.Fprintln(t.out, t.message)
		t.message = ""
	}
}

func (t *terminal) finish(g *game.Game, outcome game.Outcome) {
	game.Log.WithFields(logrus.Fields{
		"outcome":  outcome,
		"seed":     g.Seed(),
		"revealed": g.NumRevealed(),
	}).Info("game over")

	switch outcome {
	case game.Lost:
		t.draw(g, g.DisclosedGrid())
		fmt.Fprintln(t.out, "Sorry, you lose. :(")
	case game.Won:
		t.draw(g, g.VisibleGrid())
		fmt.Fprintln(t.out, "Yay, you win! :)")
	}
}

// render draws view inside a frame, with column numbers above and row
// numbers to the right:
//
//	  0 1 2 3 4
//	+-----------+
//	| X X 1 _ _ | 0
//	...
//	+-----------+
func render(w io.Writer, view game.View) {
	var b strings.Builder

	b.WriteString("  ")
	for col := range view.Cols() {
		fmt.Fprintf(&b, "%d ", col%10)
	}
	b.WriteString("\n")

	border := "+" + strings.Repeat("-", view.Cols()*2+1) + "+\n"
	b.WriteString(border)
	for row := range view.Rows() {
		b.WriteString("| ")
		for _, state := range view.Row(row) {
			b.WriteString(state.String())
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "| %d\n", row)
	}
	b.WriteString(border)

	io.WriteString(w, b.String())
}
