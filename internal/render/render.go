package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/ninarow/internal/board"
)

var (
	xStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	oStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	markStyle  = lipgloss.NewStyle().Bold(true)
	indexStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Faint(true)

	bannerStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 4).
			Bold(true)
)

// Plain renders the grid as bare text. Used by tests and headless runs.
type Plain struct{}

func (that *Plain) Render(b *board.Board) string {
	return grid(b, func(text, _ string) string { return text })
}

// Styled renders the same grid with lipgloss colors: marks bold, free-cell
// indices dimmed.
type Styled struct{}

func (that *Styled) Render(b *board.Board) string {
	return grid(b, func(text, mark string) string {
		switch mark {
		case board.EmptyCell:
			return indexStyle.Render(text)
		case board.PlayerX:
			return xStyle.Render(text)
		case board.PlayerO:
			return oStyle.Render(text)
		default:
			return markStyle.Render(text)
		}
	})
}

// Banner - the startup header for an interactive game.
func Banner(size int) string {
	return bannerStyle.Render(fmt.Sprintf("%d-IN-A-ROW", size))
}

// grid builds the board picture: occupied cells show their mark, free cells
// show their zero-padded index. The paint callback is applied to each
// three-character cell body after padding, so styling cannot break alignment.
func grid(b *board.Board, paint func(text, mark string) string) string {
	n := b.Size()
	separator := strings.Repeat("-", n*5+1)

	var sb strings.Builder
	sb.WriteString(separator)
	sb.WriteByte('\n')

	for r := 0; r < n; r++ {
		sb.WriteString("|")
		for c := 0; c < n; c++ {
			idx := r*n + c

			body := fmt.Sprintf("%02d ", idx)
			mark := b.Get(idx)
			if mark != board.EmptyCell {
				body = mark + "  "
			}

			sb.WriteString(" " + paint(body, mark) + "|")
		}
		sb.WriteByte('\n')
		sb.WriteString(separator)
		sb.WriteByte('\n')
	}

	return sb.String()
}
