package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/session"
)

const (
	originX   = 4
	originY   = 2
	cellWidth = 2
)

const help = "arrows/hjkl move  space open  f flag  c chord  n new  1-3 level  q quit"

// UI is a full screen front end for a session. Every engine call is made
// from the goroutine running [UI.Run].
type UI struct {
	screen  tcell.Screen
	session *session.Session
	logger  *logrus.Logger

	row, col int
	buttons  tcell.ButtonMask
	message  string
}

func New(screen tcell.Screen, s *session.Session, logger *logrus.Logger) *UI {
	return &UI{screen: screen, session: s, logger: logger}
}

// Run draws the game and handles input until the player quits or ctx is
// done. The screen stays initialized; finalizing it is up to the caller.
func (u *UI) Run(ctx context.Context) error {
	u.screen.EnableMouse()
	defer u.screen.DisableMouse()

	for {
		u.draw()
		ev := u.screen.PollEvent()
		if ev == nil {
			return nil
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			u.screen.Sync()
		case *tcell.EventKey:
			if u.handleKey(ev) {
				return nil
			}
		case *tcell.EventMouse:
			u.handleMouse(ev)
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

// Tick wakes [UI.Run] every interval so the clock keeps moving, and once
// more when ctx is done so that Run notices.
func (u *UI) Tick(ctx context.Context, every time.Duration) error {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			_ = u.screen.PostEvent(tcell.NewEventInterrupt(nil))
			return nil
		case <-ticker.C:
			_ = u.screen.PostEvent(tcell.NewEventInterrupt(nil))
		}
	}
}

// handleKey reports whether the player asked to quit.
func (u *UI) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		u.moveCursor(-1, 0)
	case tcell.KeyDown:
		u.moveCursor(1, 0)
	case tcell.KeyLeft:
		u.moveCursor(0, -1)
	case tcell.KeyRight:
		u.moveCursor(0, 1)
	case tcell.KeyEnter:
		u.apply(session.Open, u.row, u.col)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'k':
			u.moveCursor(-1, 0)
		case 'j':
			u.moveCursor(1, 0)
		case 'h':
			u.moveCursor(0, -1)
		case 'l':
			u.moveCursor(0, 1)
		case ' ':
			u.apply(session.Open, u.row, u.col)
		case 'f':
			u.apply(session.Flag, u.row, u.col)
		case 'c':
			u.apply(session.Chord, u.row, u.col)
		case 'n':
			u.restart(u.session.Params())
		case '1':
			u.restart(mines.Easy)
		case '2':
			u.restart(mines.Normal)
		case '3':
			u.restart(mines.Hard)
		}
	}
	return false
}

func (u *UI) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	pressed := buttons &^ u.buttons
	u.buttons = buttons
	if pressed == tcell.ButtonNone {
		return
	}

	x, y := ev.Position()
	if x < originX || y < originY {
		return
	}
	r, c := y-originY, (x-originX)/cellWidth
	if !u.session.Params().InBounds(r, c) {
		return
	}
	u.row, u.col = r, c

	switch {
	case pressed&tcell.ButtonPrimary != 0:
		u.apply(session.Open, r, c)
	case pressed&tcell.ButtonSecondary != 0:
		u.apply(session.Flag, r, c)
	case pressed&tcell.ButtonMiddle != 0:
		u.apply(session.Chord, r, c)
	}
}

func (u *UI) moveCursor(dr, dc int) {
	p := u.session.Params()
	if p.InBounds(u.row+dr, u.col+dc) {
		u.row += dr
		u.col += dc
	}
}

func (u *UI) apply(move session.Move, r, c int) {
	if u.session.Status().State.Over() {
		return
	}
	status, err := u.session.Apply(move, r, c)
	if err != nil {
		u.logger.WithError(err).Warn("move failed")
		u.message = err.Error()
		return
	}
	switch status.State {
	case mines.Won:
		u.message = fmt.Sprintf("You won in %s! Press n for a new game.", u.session.Elapsed().Truncate(time.Second))
	case mines.Lost:
		u.message = "Boom! Press n for a new game."
	default:
		u.message = ""
	}
}

func (u *UI) restart(params mines.GameParams) {
	if err := u.session.Restart(params); err != nil {
		u.logger.WithError(err).Error("unable to restart")
		u.message = err.Error()
		return
	}
	u.row, u.col = params.Rows/2, params.Cols/2
	u.message = ""
}

func (u *UI) draw() {
	u.screen.Clear()

	status := u.session.Status()
	drawText(u.screen, 0, 0, tcell.StyleDefault.Bold(true), fmt.Sprintf(
		"mines: %-4d time: %-6s %s",
		status.MinesRemaining, u.session.Elapsed().Truncate(time.Second), status.State,
	))

	grid := u.session.Grid()
	for i, s := range grid {
		r, c := i/status.Cols, i%status.Cols
		glyph, style := cellStyle(s)
		if r == u.row && c == u.col && !status.State.Over() {
			style = style.Reverse(true)
		}
		u.screen.SetContent(originX+c*cellWidth, originY+r, glyph, nil, style)
	}

	y := originY + status.Rows + 1
	if u.message != "" {
		drawText(u.screen, 0, y, tcell.StyleDefault.Bold(true), u.message)
	}
	drawText(u.screen, 0, y+1, tcell.StyleDefault.Dim(true), help)

	u.screen.Show()
}

// drawText writes s from (x, y), advancing by each rune's display width.
func drawText(screen tcell.Screen, x, y int, style tcell.Style, s string) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}
