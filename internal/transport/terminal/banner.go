package terminal

import (
	"fmt"
	"io"

	"github.com/common-nighthawk/go-figure"
	"github.com/fatih/color"
	"github.com/iamasit07/4-in-a-row/terminal/internal/domain"
)

const figletFont = "standard"

var (
	titleColor = color.New(color.FgBlue)
	winColor   = color.New(color.FgGreen)
	drawColor  = color.New(color.FgMagenta)
)

const welcome = `
Welcome to Connect 4! Connect four X disks in a row, column or diagonal to win.
Type a number from 1 to 7 to drop your disk into that column.
The column numbers are printed at the top of the board. Have fun ^^`

func figlet(text string) string {
	return figure.NewFigure(text, figletFont, true).String()
}

func printBanner(w io.Writer) {
	titleColor.Fprint(w, figlet("Connect  Four"))
	fmt.Fprintln(w, welcome)
}

// endOfGame picks the big title, its colour and the plain message for a
// finished game. ok is false while the game is still running.
func endOfGame(outcome domain.Outcome, human domain.Cell) (title string, c *color.Color, message string, ok bool) {
	switch outcome.Status {
	case domain.StatusDraw:
		return "It's a Draw!", drawColor, "The board is full.", true
	case domain.StatusWon:
		if outcome.Winner == human {
			return fmt.Sprintf("%s Wins", outcome.Winner), winColor,
				fmt.Sprintf("%s wins! You beat the bot.", outcome.Winner), true
		}
		return "You Suck", winColor,
			fmt.Sprintf("%s wins! The bot got you this time.", outcome.Winner), true
	default:
		return "", nil, "", false
	}
}

func printEndOfGame(w io.Writer, title string, c *color.Color, message string) {
	fmt.Fprintln(w)
	c.Fprint(w, figlet(title))
	fmt.Fprintln(w, message)
}
