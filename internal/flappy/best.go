package flappy

import (
	"io"

	"github.com/charmbracelet/log"
)

// BestStore persists the best score between sessions.
// Implementations may fail; the scoreboard treats every failure as
// "no best score yet" or "not persisted this time".
type BestStore interface {
	LoadBest() (int, error)
	SaveBest(best int) error
}

// Scoreboard tracks the current run's score and the best score.
// The best score is loaded once at creation and saved only when a
// finished run improves it.
type Scoreboard struct {
	score  int
	best   int
	store  BestStore
	logger *log.Logger
}

// NewScoreboard creates a scoreboard and loads the best score from store.
// A nil store, a load error or a negative value all yield a best of 0.
func NewScoreboard(store BestStore, logger *log.Logger) *Scoreboard {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	sb := &Scoreboard{store: store, logger: logger}

	if store == nil {
		return sb
	}
	best, err := store.LoadBest()
	switch {
	case err != nil:
		logger.Warn("could not load best score", "error", err)
	case best < 0:
		logger.Warn("ignoring negative best score", "value", best)
	default:
		sb.best = best
	}
	return sb
}

// Score returns the current run's score.
func (sb *Scoreboard) Score() int {
	return sb.score
}

// Best returns the best score seen so far.
func (sb *Scoreboard) Best() int {
	return sb.best
}

// Add increments the current score by n.
func (sb *Scoreboard) Add(n int) {
	sb.score += n
}

// Commit records the end of a run. If the score beats the best, the best is
// updated and persisted. Returns true when a new best was set.
func (sb *Scoreboard) Commit() bool {
	if sb.score <= sb.best {
		return false
	}
	sb.best = sb.score
	if sb.store != nil {
		if err := sb.store.SaveBest(sb.best); err != nil {
			sb.logger.Warn("could not save best score", "best", sb.best, "error", err)
		}
	}
	return true
}

// ResetScore zeroes the current score and keeps the best.
func (sb *Scoreboard) ResetScore() {
	sb.score = 0
}
