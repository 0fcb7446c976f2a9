package terminal

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iamasit07/4-in-a-row/terminal/internal/domain"
	"github.com/olekukonko/tablewriter"
)

// writeBoard draws the board as a table with the slot numbers as header.
func writeBoard(w io.Writer, b *domain.Board) {
	header := make([]string, domain.Columns)
	for col := range header {
		header[col] = strconv.Itoa(domain.ColumnToSlot(col))
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_CENTER)
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetRowLine(true)

	for r := 0; r < domain.Rows; r++ {
		cells := make([]string, domain.Columns)
		for col := range cells {
			cells[col] = b.At(r, col).String()
		}
		table.Append(cells)
	}
	table.Render()
}

// RenderBoard returns the table writeBoard prints, without the final newline.
func RenderBoard(b *domain.Board) string {
	var sb strings.Builder
	writeBoard(&sb, b)
	return strings.TrimRight(sb.String(), "\n")
}

func printBoard(w io.Writer, b *domain.Board) {
	fmt.Fprintln(w)
	writeBoard(w, b)
	fmt.Fprintln(w)
}
