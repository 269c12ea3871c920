package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vancomm/minesweeper/internal/mines"
)

var numberColors = [9]tcell.Color{
	tcell.ColorDefault,
	tcell.NewHexColor(0x64B5F6),
	tcell.NewHexColor(0x81C784),
	tcell.NewHexColor(0xFFB74D),
	tcell.NewHexColor(0xBA68C8),
	tcell.NewHexColor(0xF06292),
	tcell.NewHexColor(0x4DD0E1),
	tcell.NewHexColor(0xBCAAA4),
	tcell.NewHexColor(0x90A4AE),
}

var (
	flagColor = tcell.NewHexColor(0xFF7043)
	mineColor = tcell.NewHexColor(0xEF5350)
)

func cellStyle(s mines.CellState) (rune, tcell.Style) {
	style := tcell.StyleDefault
	switch {
	case s == mines.Unknown:
		return '.', style.Dim(true)
	case s == mines.Flagged:
		return 'F', style.Foreground(flagColor).Bold(true)
	case s == 0:
		return ' ', style
	case 0 < s && s <= 8:
		return rune('0' + s), style.Foreground(numberColors[s]).Bold(true)
	case s == mines.Mine:
		return '*', style.Foreground(mineColor)
	case s == mines.ExplodedMine:
		return '*', style.Foreground(tcell.ColorWhite).Background(mineColor).Bold(true)
	case s == mines.FlaggedMine:
		return '#', style.Foreground(flagColor).Bold(true)
	default:
		return '!', style
	}
}
