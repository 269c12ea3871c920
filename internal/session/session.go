package session

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper/internal/mines"
)

// Session is one game played on a board together with its clock. The
// clock starts on the first reveal and stops when the game is decided.
type Session struct {
	ID        uuid.UUID
	StartedAt time.Time
	EndedAt   time.Time

	board  *mines.Board
	logger *logrus.Logger
	now    func() time.Time
}

func New(params mines.GameParams, rnd *rand.Rand, logger *logrus.Logger) (*Session, error) {
	board, err := mines.New(params, rnd)
	if err != nil {
		return nil, err
	}
	s := &Session{
		ID:     uuid.New(),
		board:  board,
		logger: logger,
		now:    time.Now,
	}
	s.log().Info("game created")
	return s, nil
}

func (s *Session) log() *logrus.Entry {
	return s.logger.WithFields(s.Fields())
}

func (s *Session) Fields() logrus.Fields {
	return logrus.Fields{
		"session_id": s.ID.String(),
		"params":     s.board.Seed(),
	}
}

// Restart starts a new game with a fresh ID. On error the current game
// is left as it was.
func (s *Session) Restart(params mines.GameParams) error {
	if err := s.board.Initialize(params); err != nil {
		return err
	}
	s.ID = uuid.New()
	s.StartedAt, s.EndedAt = time.Time{}, time.Time{}
	s.log().Info("game restarted")
	return nil
}

func (s *Session) Apply(move Move, r, c int) (mines.Status, error) {
	var (
		status mines.Status
		err    error
		before = s.board.State()
	)

	switch move {
	case Open:
		status, err = s.board.Reveal(r, c)
	case Flag:
		status, err = s.board.ToggleFlag(r, c)
	case Chord:
		status, err = s.board.Chord(r, c)
	default:
		return s.board.Status(), ErrBadMove
	}
	if err != nil {
		s.log().WithError(err).WithField("move", move.String()).Debug("move rejected")
		return status, err
	}

	if before == mines.AwaitingFirstClick && status.State != mines.AwaitingFirstClick {
		s.StartedAt = s.now()
	}
	if !before.Over() && status.State.Over() {
		s.EndedAt = s.now()
		s.log().WithFields(logrus.Fields{
			"result":   status.State.String(),
			"duration": s.Elapsed().String(),
		}).Info("game over")
	}
	return status, nil
}

// Elapsed is the time on the clock: zero before the first reveal, frozen
// once the game is over.
func (s *Session) Elapsed() time.Duration {
	switch {
	case s.StartedAt.IsZero():
		return 0
	case !s.EndedAt.IsZero():
		return s.EndedAt.Sub(s.StartedAt)
	default:
		return s.now().Sub(s.StartedAt)
	}
}

func (s *Session) Params() mines.GameParams {
	return s.board.GameParams
}

func (s *Session) Status() mines.Status {
	return s.board.Status()
}

func (s *Session) CellView(r, c int) (mines.CellView, error) {
	return s.board.CellView(r, c)
}

func (s *Session) Grid() mines.Grid {
	return s.board.Grid()
}

func (s *Session) String() string {
	return s.board.String()
}
